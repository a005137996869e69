package httpx

import (
	"net/http"

	"github.com/xgencloud/xgen-site/internal/domain/model"
)

// heroSlides are the rotating hero messages on the landing page.
var heroSlides = []string{
	"Enterprise Telecom Services That Scale With You",
	"Secure Cloud Solutions for Modern Business",
	"Digital Marketing That Delivers Results",
}

// sitePageData is the payload for the landing page template.
type sitePageData struct {
	Title    string
	Slides   []string
	Services []model.ServiceOffering
	Partners []model.Partner
}

// SiteHandlers serves the server-rendered marketing pages.
type SiteHandlers struct {
	Renderer *TemplateRenderer
	Catalog  CatalogService
}

// Home handles GET /. Catalog read failures degrade to an empty section
// rather than failing the whole page.
func (h *SiteHandlers) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := sitePageData{
		Title:  "Xgen Cloud",
		Slides: heroSlides,
	}
	if h.Catalog != nil {
		if services, err := h.Catalog.Services(r.Context()); err == nil {
			data.Services = services
		}
		if partners, err := h.Catalog.Partners(r.Context()); err == nil {
			data.Partners = partners
		}
	}
	h.Renderer.Render(w, "site.tmpl.html", data)
}
