package httpx

import (
	"log/slog"
	"net/http"

	"github.com/xgencloud/xgen-site/config"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth    AuthService
	Contact ContactService
	Catalog CatalogService
	DB      Pinger
	Cache   Pinger
	HTTP    config.HTTPConfig
	Logger  *slog.Logger
}

// NewRouter creates and configures the HTTP router with logging, panic
// recovery, and CORS applied.
func NewRouter(services RouterServices) (http.Handler, error) {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{Svc: services.Auth}
	mux.HandleFunc("POST /api/register", authHandlers.Register)
	mux.HandleFunc("POST /api/login", authHandlers.Login)
	mux.HandleFunc("GET /api/profile", authHandlers.Profile)

	contactHandlers := &ContactHandlers{Svc: services.Contact}
	mux.HandleFunc("POST /api/contact", contactHandlers.Submit)

	catalogHandlers := &CatalogHandlers{Svc: services.Catalog}
	mux.HandleFunc("GET /api/partners", catalogHandlers.Partners)
	mux.HandleFunc("GET /api/services", catalogHandlers.Services)

	healthHandlers := &HealthHandlers{DB: services.DB, Cache: services.Cache}
	mux.HandleFunc("GET /api/health", healthHandlers.Health)

	renderer, err := NewTemplateRenderer(TemplateFS(), logger)
	if err != nil {
		return nil, err
	}
	siteHandlers := &SiteHandlers{Renderer: renderer, Catalog: services.Catalog}
	mux.HandleFunc("GET /", siteHandlers.Home)

	var handler http.Handler = mux
	handler = CORS(services.HTTP)(handler)
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler, nil
}
