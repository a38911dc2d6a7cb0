package routecache_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fuel-route-service/internal/domain"
	"github.com/fuel-route-service/internal/pkg/errors"
	"github.com/fuel-route-service/internal/repository/routecache"
)

type MockRouteProvider struct {
	mock.Mock
}

func (m *MockRouteProvider) Route(ctx context.Context, start, end domain.Coord) (*domain.RouteGeometry, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RouteGeometry), args.Error(1)
}

func TestFingerprint(t *testing.T) {
	la := domain.Coord{Lat: 33.94, Lon: -118.41}
	ny := domain.Coord{Lat: 40.78, Lon: -73.97}

	t.Run("stable for identical input", func(t *testing.T) {
		assert.Equal(t, routecache.Fingerprint(la, ny), routecache.Fingerprint(la, ny))
	})

	t.Run("sub-resolution difference collides", func(t *testing.T) {
		// 7th decimal is below the 6-decimal key resolution
		shifted := domain.Coord{Lat: 33.94000004, Lon: -118.41}
		assert.Equal(t, routecache.Fingerprint(la, ny), routecache.Fingerprint(shifted, ny))
	})

	t.Run("visible difference changes the key", func(t *testing.T) {
		shifted := domain.Coord{Lat: 33.940001, Lon: -118.41}
		assert.NotEqual(t, routecache.Fingerprint(la, ny), routecache.Fingerprint(shifted, ny))
	})

	t.Run("direction matters", func(t *testing.T) {
		assert.NotEqual(t, routecache.Fingerprint(la, ny), routecache.Fingerprint(ny, la))
	})
}

func TestCachedRouteProvider(t *testing.T) {
	ctx := context.Background()
	la := domain.Coord{Lat: 33.94, Lon: -118.41}
	ny := domain.Coord{Lat: 40.78, Lon: -73.97}

	geom := &domain.RouteGeometry{
		Polyline:   [][]float64{{-118.41, 33.94}, {-73.97, 40.78}},
		TotalMiles: 2789.4,
	}

	t.Run("second call served from cache", func(t *testing.T) {
		provider := new(MockRouteProvider)
		provider.On("Route", mock.Anything, la, ny).Return(geom, nil).Once()

		cached := routecache.New(provider, 16, zap.NewNop())

		first, err := cached.Route(ctx, la, ny)
		require.NoError(t, err)

		second, err := cached.Route(ctx, la, ny)
		require.NoError(t, err)

		assert.Same(t, first, second, "cache must return the stored geometry")
		provider.AssertNumberOfCalls(t, "Route", 1)
	})

	t.Run("errors are not cached", func(t *testing.T) {
		provider := new(MockRouteProvider)
		provider.On("Route", mock.Anything, la, ny).Return(nil, errors.ErrRouteUpstream).Once()
		provider.On("Route", mock.Anything, la, ny).Return(geom, nil).Once()

		cached := routecache.New(provider, 16, zap.NewNop())

		_, err := cached.Route(ctx, la, ny)
		require.Error(t, err)

		got, err := cached.Route(ctx, la, ny)
		require.NoError(t, err)
		assert.Equal(t, geom, got)
		provider.AssertNumberOfCalls(t, "Route", 2)
	})

	t.Run("different endpoints do not collide", func(t *testing.T) {
		provider := new(MockRouteProvider)
		provider.On("Route", mock.Anything, la, ny).Return(geom, nil).Once()
		other := &domain.RouteGeometry{Polyline: [][]float64{{0, 0}, {1, 1}}, TotalMiles: 97.3}
		provider.On("Route", mock.Anything, ny, la).Return(other, nil).Once()

		cached := routecache.New(provider, 16, zap.NewNop())

		a, err := cached.Route(ctx, la, ny)
		require.NoError(t, err)
		b, err := cached.Route(ctx, ny, la)
		require.NoError(t, err)

		assert.NotEqual(t, a.TotalMiles, b.TotalMiles)
		provider.AssertNumberOfCalls(t, "Route", 2)
	})
}
