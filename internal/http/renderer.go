package httpx

import (
	"bytes"
	"errors"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
)

// TemplateRenderer renders HTML templates for UI responses.
type TemplateRenderer struct {
	t      *template.Template
	logger *slog.Logger
}

// NewTemplateRenderer parses all templates from the provided filesystem.
func NewTemplateRenderer(templateFS fs.FS, logger *slog.Logger) (*TemplateRenderer, error) {
	if templateFS == nil {
		return nil, errors.New("template FS is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	t, err := template.ParseFS(templateFS, "*.tmpl.html")
	if err != nil {
		return nil, err
	}
	return &TemplateRenderer{t: t, logger: logger}, nil
}

// Render executes the named template into a buffer and writes it out, so a
// template error never produces a half-written page.
func (r *TemplateRenderer) Render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, name, data); err != nil {
		r.logger.Error("template render failed", "template", name, "err", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		// Client disconnects are not actionable here.
		return
	}
}
