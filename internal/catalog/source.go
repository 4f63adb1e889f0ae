package catalog

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/guttosm/mary-storefront/internal/logger"
	"github.com/guttosm/mary-storefront/internal/metrics"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// ErrNotLoaded is returned by Current before the first successful load.
var ErrNotLoaded = errors.New("catalog not loaded")

// Source holds the active Catalog and replaces it on Reload. A failed reload keeps
// the previous catalog. Safe for concurrent use.
type Source struct {
	loader  Loader
	current atomic.Pointer[Catalog]
	group   singleflight.Group
	log     zerolog.Logger
}

// NewSource creates a Source reading from loader. Nothing is loaded until Reload.
func NewSource(loader Loader) *Source {
	return &Source{
		loader: loader,
		log:    logger.Logger().With().Str("component", "catalog").Str("location", loader.Location()).Logger(),
	}
}

// Current returns the active catalog.
func (s *Source) Current() (*Catalog, error) {
	c := s.current.Load()
	if c == nil {
		return nil, ErrNotLoaded
	}
	return c, nil
}

// Loaded reports whether a catalog is available.
func (s *Source) Loaded() bool {
	return s.current.Load() != nil
}

// Reload fetches and parses the feed. Concurrent callers share one fetch.
func (s *Source) Reload(ctx context.Context) (*Catalog, error) {
	v, err, shared := s.group.Do("reload", func() (any, error) {
		return s.reload(ctx)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.log.Debug().Msg("Catalog: reload shared with a concurrent caller")
	}
	return v.(*Catalog), nil
}

func (s *Source) reload(ctx context.Context) (*Catalog, error) {
	start := time.Now()

	data, err := s.loader.Load(ctx)
	if err != nil {
		metrics.RecordCatalogReload(time.Since(start), 0, err)
		s.log.Error().Err(err).Msg("Catalog: load failed")
		return nil, err
	}

	c, err := Parse(data)
	if err != nil {
		metrics.RecordCatalogReload(time.Since(start), 0, err)
		s.log.Error().Err(err).Msg("Catalog: feed rejected")
		return nil, err
	}

	s.current.Store(c)
	metrics.RecordCatalogReload(time.Since(start), c.Len(), nil)
	s.log.Info().
		Int("categories", len(c.feed.Categories)).
		Int("products", c.Len()).
		Dur("duration", time.Since(start)).
		Msg("Catalog: loaded")
	return c, nil
}
