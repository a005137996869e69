package httpx

import (
	"context"
	"net/http"

	"github.com/xgencloud/xgen-site/internal/domain/model"
)

// ContactService is the subset of the contact service the handlers depend on.
type ContactService interface {
	Submit(ctx context.Context, req *model.ContactRequest) (*model.ContactMessage, error)
}

// ContactHandlers serves contact form submissions.
type ContactHandlers struct {
	Svc ContactService
}

// Submit handles POST /api/contact.
func (h *ContactHandlers) Submit(w http.ResponseWriter, r *http.Request) {
	var req model.ContactRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if _, err := h.Svc.Submit(r.Context(), &req); err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Thank you for contacting us. We will get back to you soon.",
	})
}
