package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/xgencloud/xgen-site/internal/domain/model"
	apperrors "github.com/xgencloud/xgen-site/internal/errors"
	"github.com/xgencloud/xgen-site/internal/ports"
)

const (
	cacheKeyPartners = "catalog:partners"
	cacheKeyServices = "catalog:services"
)

// CatalogServiceOptions groups dependencies for CatalogService.
type CatalogServiceOptions struct {
	Catalog ports.CatalogRepository
	Cache   ports.CacheRepository
	TTL     time.Duration
	Logger  *slog.Logger
}

// CatalogService serves the partner and service catalogs through a
// cache-aside layer. Cache failures degrade to direct reads.
type CatalogService struct {
	catalog ports.CatalogRepository
	cache   ports.CacheRepository
	ttl     time.Duration
	logger  *slog.Logger
	group   singleflight.Group
}

// NewCatalogService constructs a new CatalogService.
func NewCatalogService(opts CatalogServiceOptions) *CatalogService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{
		catalog: opts.Catalog,
		cache:   opts.Cache,
		ttl:     opts.TTL,
		logger:  logger.With("component", "catalog"),
	}
}

// Partners returns the partner catalog.
func (s *CatalogService) Partners(ctx context.Context) ([]model.Partner, error) {
	return cachedList(ctx, s, cacheKeyPartners, s.catalog.ListPartners)
}

// Services returns the service offering catalog.
func (s *CatalogService) Services(ctx context.Context) ([]model.ServiceOffering, error) {
	return cachedList(ctx, s, cacheKeyServices, s.catalog.ListServices)
}

// cachedList reads a catalog list through the cache, falling back to the
// database and repopulating on a miss.
func cachedList[T any](
	ctx context.Context,
	s *CatalogService,
	key string,
	load func(context.Context) ([]T, error),
) ([]T, error) {
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.WarnContext(ctx, "cache read failed", "key", key, "err", err)
		} else if raw != nil {
			var out []T
			if err := json.Unmarshal(raw, &out); err == nil {
				return out, nil
			}
			s.logger.WarnContext(ctx, "cache entry corrupt, reloading", "key", key)
		}
	}

	// Concurrent misses for the same key share a single database read.
	v, err, _ := s.group.Do(key, func() (any, error) {
		out, err := load(ctx)
		if err != nil {
			return nil, apperrors.MapDBError(err)
		}
		if s.cache != nil {
			if raw, marshalErr := json.Marshal(out); marshalErr == nil {
				if setErr := s.cache.Set(ctx, key, raw, s.ttl); setErr != nil {
					s.logger.WarnContext(ctx, "cache write failed", "key", key, "err", setErr)
				}
			}
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]T), nil
}
