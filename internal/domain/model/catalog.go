package model

// Partner is a telecom or technology partner shown on the marketing page.
type Partner struct {
	ID               string `json:"id"                db:"id"`
	Name             string `json:"name"              db:"name"`
	Description      string `json:"description"       db:"description"`
	Industry         string `json:"industry"          db:"industry"`
	PartnershipSince int    `json:"partnership_since" db:"partnership_since"`
}

// ServiceOffering is a product line shown on the marketing page.
type ServiceOffering struct {
	ID          string   `json:"id"          db:"id"`
	Name        string   `json:"name"        db:"name"`
	Description string   `json:"description" db:"description"`
	Features    []string `json:"features"    db:"features"`
}
