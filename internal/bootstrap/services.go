package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/xgencloud/xgen-site/config"
	"github.com/xgencloud/xgen-site/internal/data"
	"github.com/xgencloud/xgen-site/internal/service"
)

// ServiceContainer holds the constructed application services.
type ServiceContainer struct {
	Auth    *service.AuthService
	Contact *service.ContactService
	Catalog *service.CatalogService
	Cache   *data.RedisCacheRepo
}

// ServiceDeps groups the dependencies needed to construct services.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// NewServices wires repositories and services from the given dependencies.
func NewServices(deps *ServiceDeps) ServiceContainer {
	cfg := deps.Config

	tokens := service.NewTokenService([]byte(cfg.Auth.TokenSecret), cfg.Auth.TokenTTL)
	auth := service.NewAuthService(service.AuthServiceOptions{
		Users:      data.NewUserRepo(deps.DB),
		Tokens:     tokens,
		BcryptCost: cfg.Auth.BcryptCost,
	})

	contact := service.NewContactService(data.NewContactRepo(deps.DB))

	var cache *data.RedisCacheRepo
	if deps.RedisClient != nil {
		cache = data.NewRedisCacheRepo(deps.RedisClient)
	}
	catalogOpts := service.CatalogServiceOptions{
		Catalog: data.NewCatalogRepo(deps.DB),
		TTL:     cfg.Cache.CatalogTTL,
		Logger:  deps.Logger,
	}
	if cache != nil {
		catalogOpts.Cache = cache
	}
	catalog := service.NewCatalogService(catalogOpts)

	return ServiceContainer{
		Auth:    auth,
		Contact: contact,
		Catalog: catalog,
		Cache:   cache,
	}
}
