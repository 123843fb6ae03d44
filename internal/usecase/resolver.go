package usecase

import (
	"context"
	"sync"

	"github.com/tripfinder/cheapest-trip-finder/internal/domain"
	"github.com/tripfinder/cheapest-trip-finder/internal/infrastructure/logger"
)

// UnknownAirline is returned for an empty carrier code.
const UnknownAirline = "Unknown"

// AirlineResolver maps a carrier code to a human-readable name, using an
// in-memory cache so repeated codes on common routes never incur repeated
// reference-data lookups. The cache is owned by the resolver instance and is
// never invalidated; airline identity is stable enough for a process
// lifetime.
type AirlineResolver struct {
	service domain.AirlineReferenceService
	log     *logger.Logger

	mu    sync.Mutex
	cache map[string]string
}

// NewAirlineResolver creates a resolver backed by the given reference-data
// service.
func NewAirlineResolver(service domain.AirlineReferenceService, log *logger.Logger) *AirlineResolver {
	if log == nil {
		log = logger.Nop()
	}
	return &AirlineResolver{
		service: service,
		log:     log,
		cache:   make(map[string]string),
	}
}

// Resolve returns the display name for a carrier code.
//
// An empty code resolves to UnknownAirline. A cached code returns without
// any network access. On a lookup failure of any kind the code itself is
// cached as the name, so a failing code is asked upstream at most once.
// Resolve is safe for concurrent use.
func (r *AirlineResolver) Resolve(ctx context.Context, code string) string {
	if code == "" {
		return UnknownAirline
	}

	r.mu.Lock()
	if name, ok := r.cache[code]; ok {
		r.mu.Unlock()
		return name
	}
	r.mu.Unlock()

	name, err := r.service.LookupAirline(ctx, code)
	if err != nil || name == "" {
		if err != nil {
			r.log.Warn().Err(err).Str("carrier", code).Msg("airline lookup failed, using code as name")
		}
		name = code
	}

	r.mu.Lock()
	// A concurrent resolve may have raced us here; keep the first entry so
	// repeated calls stay consistent.
	if existing, ok := r.cache[code]; ok {
		name = existing
	} else {
		r.cache[code] = name
	}
	r.mu.Unlock()

	return name
}

// CacheSize returns the number of cached carrier codes.
func (r *AirlineResolver) CacheSize() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cache)
}
