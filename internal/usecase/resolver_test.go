package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/tripfinder/cheapest-trip-finder/internal/domain"
	"github.com/tripfinder/cheapest-trip-finder/internal/infrastructure/logger"
)

func TestAirlineResolver_EmptyCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := domain.NewMockAirlineReferenceService(ctrl)
	// No lookup expected for an empty code.
	resolver := NewAirlineResolver(service, logger.Nop())

	assert.Equal(t, UnknownAirline, resolver.Resolve(context.Background(), ""))
	assert.Equal(t, 0, resolver.CacheSize())
}

func TestAirlineResolver_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := domain.NewMockAirlineReferenceService(ctrl)
	service.EXPECT().
		LookupAirline(gomock.Any(), "CI").
		Return("CHINA AIRLINES", nil).
		Times(1)

	resolver := NewAirlineResolver(service, logger.Nop())
	ctx := context.Background()

	first := resolver.Resolve(ctx, "CI")
	second := resolver.Resolve(ctx, "CI")

	assert.Equal(t, "CHINA AIRLINES", first)
	assert.Equal(t, first, second, "second call must hit the cache")
	assert.Equal(t, 1, resolver.CacheSize())
}

func TestAirlineResolver_FallbackCachesCodeAsName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := domain.NewMockAirlineReferenceService(ctrl)
	service.EXPECT().
		LookupAirline(gomock.Any(), "ZZ").
		Return("", domain.ErrAirlineNotFound).
		Times(1)

	resolver := NewAirlineResolver(service, logger.Nop())
	ctx := context.Background()

	first := resolver.Resolve(ctx, "ZZ")
	// The fallback is permanent for the cache's lifetime: the second call
	// must not trigger another lookup.
	second := resolver.Resolve(ctx, "ZZ")

	assert.Equal(t, "ZZ", first)
	assert.Equal(t, "ZZ", second)
}

func TestAirlineResolver_EmptyNameFallsBackToCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := domain.NewMockAirlineReferenceService(ctrl)
	service.EXPECT().
		LookupAirline(gomock.Any(), "XX").
		Return("", nil).
		Times(1)

	resolver := NewAirlineResolver(service, logger.Nop())

	assert.Equal(t, "XX", resolver.Resolve(context.Background(), "XX"))
}

func TestAirlineResolver_ConcurrentAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := domain.NewMockAirlineReferenceService(ctrl)
	// Concurrent first calls may race past the cache check, so more than one
	// lookup is permitted; the cached name must still be consistent.
	service.EXPECT().
		LookupAirline(gomock.Any(), "BR").
		Return("EVA AIR", nil).
		AnyTimes()

	resolver := NewAirlineResolver(service, logger.Nop())
	ctx := context.Background()

	var wg sync.WaitGroup
	names := make([]string, 10)
	for i := range names {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			names[i] = resolver.Resolve(ctx, "BR")
		}(i)
	}
	wg.Wait()

	for _, name := range names {
		assert.Equal(t, "EVA AIR", name)
	}
	assert.Equal(t, 1, resolver.CacheSize())
}
