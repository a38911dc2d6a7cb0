package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fuel-route-service/internal/domain"
	"github.com/fuel-route-service/internal/domain/repository"
	"github.com/fuel-route-service/internal/pkg/errors"
	"github.com/fuel-route-service/internal/repository/routecache"
	"github.com/fuel-route-service/internal/usecase"
	"github.com/fuel-route-service/internal/usecase/dto"
)

// MockGeocoder is a mock of Geocoder
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, query string) (*domain.Coord, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Coord), args.Error(1)
}

// MockRouteProvider is a mock of RouteProvider
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

// MockStationRepository is a mock of StationRepository
type MockStationRepository struct {
	mock.Mock
}

func (m *MockStationRepository) ListOnRoute(ctx context.Context, polyline [][]float64, bufferDegrees float64) ([]domain.StationOnRoute, error) {
	args := m.Called(ctx, polyline, bufferDegrees)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StationOnRoute), args.Error(1)
}

func (m *MockStationRepository) List(ctx context.Context, filter domain.StationFilter) ([]*domain.FuelStation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FuelStation), args.Error(1)
}

func (m *MockStationRepository) Count(ctx context.Context, filter domain.StationFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockStationRepository) Stats(ctx context.Context) (*domain.StationStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StationStats), args.Error(1)
}

func (m *MockStationRepository) UpsertBatch(ctx context.Context, stations []domain.FuelStation) (int, error) {
	args := m.Called(ctx, stations)
	return args.Int(0), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetCoord(ctx context.Context, query string) (*domain.Coord, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Coord), args.Error(1)
}

func (m *MockCacheRepository) SetCoord(ctx context.Context, query string, coord domain.Coord, ttl time.Duration) error {
	args := m.Called(ctx, query, coord, ttl)
	return args.Error(0)
}

const (
	startPair = "33.940000,-118.410000"
	endPair   = "40.780000,-73.970000"
)

func testGeometry(totalMiles float64) *domain.RouteGeometry {
	return &domain.RouteGeometry{
		Polyline:   [][]float64{{-118.41, 33.94}, {-100.0, 38.0}, {-73.97, 40.78}},
		TotalMiles: totalMiles,
	}
}

func newPlanUseCase(
	geocoder repository.Geocoder,
	routes repository.RouteProvider,
	stations repository.StationRepository,
	cache repository.CacheRepository,
) *usecase.PlanUseCase {
	return usecase.NewPlanUseCase(geocoder, routes, stations, cache, zap.NewNop(), time.Hour)
}

func TestPlanUseCase_Plan_CoordinatePairFastPath(t *testing.T) {
	geocoder := &MockGeocoder{}
	routes := &MockRouteProvider{}
	stations := &MockStationRepository{}
	cache := &MockCacheRepository{}

	geom := testGeometry(300)
	routes.On("Route", mock.Anything,
		domain.Coord{Lat: 33.94, Lon: -118.41},
		domain.Coord{Lat: 40.78, Lon: -73.97},
	).Return(geom, nil)
	stations.On("ListOnRoute", mock.Anything, geom.Polyline, domain.StationBufferMi*domain.DegreesPerMile).
		Return([]domain.StationOnRoute{}, nil)

	uc := newPlanUseCase(geocoder, routes, stations, cache)

	resp, err := uc.Plan(context.Background(), dto.PlanRouteRequest{Start: startPair, End: endPair})
	require.NoError(t, err)
	require.NotNil(t, resp)

	// Coordinate pairs never reach the geocoder or its cache
	geocoder.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
	cache.AssertNotCalled(t, "GetCoord", mock.Anything, mock.Anything)

	assert.Equal(t, "Feature", resp.RouteGeoJSON.Type)
	assert.Equal(t, "LineString", resp.RouteGeoJSON.Geometry.Type)
	assert.Equal(t, geom.Polyline, resp.RouteGeoJSON.Geometry.Coordinates)
	assert.NotNil(t, resp.RouteGeoJSON.Properties)
	assert.Empty(t, resp.Stops)
	assert.Equal(t, 0.0, resp.TotalFuelCost)
	assert.Equal(t, 30.0, resp.TotalGallons)
	assert.Equal(t, 300.0, resp.TotalMiles)
	assert.Equal(t, domain.VehicleMPG, resp.MPGUsed)
}

func TestPlanUseCase_Plan_SecondRequestHitsRouteCache(t *testing.T) {
	geocoder := &MockGeocoder{}
	provider := &MockRouteProvider{}
	stations := &MockStationRepository{}
	cache := &MockCacheRepository{}

	provider.On("Route", mock.Anything, mock.Anything, mock.Anything).Return(testGeometry(300), nil)
	stations.On("ListOnRoute", mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.StationOnRoute{}, nil)

	cached := routecache.New(provider, 16, zap.NewNop())
	uc := newPlanUseCase(geocoder, cached, stations, cache)

	req := dto.PlanRouteRequest{Start: startPair, End: endPair}

	first, err := uc.Plan(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Plan(context.Background(), req)
	require.NoError(t, err)

	// The provider was asked once; the repeat came from the cache
	provider.AssertNumberOfCalls(t, "Route", 1)
	assert.Equal(t, first.RouteGeoJSON, second.RouteGeoJSON)
	assert.Equal(t, first.TotalMiles, second.TotalMiles)
}

func TestPlanUseCase_Plan_OutOfBoundsPairFailsBeforeUpstream(t *testing.T) {
	geocoder := &MockGeocoder{}
	routes := &MockRouteProvider{}
	stations := &MockStationRepository{}
	cache := &MockCacheRepository{}

	uc := newPlanUseCase(geocoder, routes, stations, cache)

	resp, err := uc.Plan(context.Background(), dto.PlanRouteRequest{Start: "95.0,10.0", End: endPair})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, errors.ErrCoordsOutOfBounds)

	geocoder.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
	routes.AssertNotCalled(t, "Route", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlanUseCase_Plan_ResolutionFailures(t *testing.T) {
	t.Run("empty start", func(t *testing.T) {
		uc := newPlanUseCase(&MockGeocoder{}, &MockRouteProvider{}, &MockStationRepository{}, &MockCacheRepository{})

		_, err := uc.Plan(context.Background(), dto.PlanRouteRequest{Start: "   ", End: endPair})
		assert.ErrorIs(t, err, errors.ErrStartNotResolved)
	})

	t.Run("geocoder finds nothing", func(t *testing.T) {
		geocoder := &MockGeocoder{}
		cache := &MockCacheRepository{}
		cache.On("GetCoord", mock.Anything, "Nowhere Special").Return(nil, nil)
		geocoder.On("Geocode", mock.Anything, "Nowhere Special").Return(nil, nil)

		uc := newPlanUseCase(geocoder, &MockRouteProvider{}, &MockStationRepository{}, cache)

		_, err := uc.Plan(context.Background(), dto.PlanRouteRequest{Start: "Nowhere Special", End: endPair})
		assert.ErrorIs(t, err, errors.ErrStartNotResolved)
	})

	t.Run("geocoder transport error is recovered as not found", func(t *testing.T) {
		geocoder := &MockGeocoder{}
		cache := &MockCacheRepository{}
		cache.On("GetCoord", mock.Anything, "Los Angeles, CA").Return(nil, nil)
		geocoder.On("Geocode", mock.Anything, "Los Angeles, CA").Return(nil, fmt.Errorf("connection refused"))

		uc := newPlanUseCase(geocoder, &MockRouteProvider{}, &MockStationRepository{}, cache)

		_, err := uc.Plan(context.Background(), dto.PlanRouteRequest{Start: "Los Angeles, CA", End: endPair})
		assert.ErrorIs(t, err, errors.ErrStartNotResolved)
	})

	t.Run("end failure reported separately", func(t *testing.T) {
		geocoder := &MockGeocoder{}
		cache := &MockCacheRepository{}
		cache.On("GetCoord", mock.Anything, "Nowhere Special").Return(nil, nil)
		geocoder.On("Geocode", mock.Anything, "Nowhere Special").Return(nil, nil)

		uc := newPlanUseCase(geocoder, &MockRouteProvider{}, &MockStationRepository{}, cache)

		_, err := uc.Plan(context.Background(), dto.PlanRouteRequest{Start: startPair, End: "Nowhere Special"})
		assert.ErrorIs(t, err, errors.ErrEndNotResolved)
	})
}

func TestPlanUseCase_Plan_GeocodedStartIsCached(t *testing.T) {
	geocoder := &MockGeocoder{}
	routes := &MockRouteProvider{}
	stations := &MockStationRepository{}
	cache := &MockCacheRepository{}

	laCoord := &domain.Coord{Lat: 34.0537, Lon: -118.2428}
	cache.On("GetCoord", mock.Anything, "Los Angeles, CA").Return(nil, nil)
	geocoder.On("Geocode", mock.Anything, "Los Angeles, CA").Return(laCoord, nil)
	cache.On("SetCoord", mock.Anything, "Los Angeles, CA", *laCoord, time.Hour).Return(nil)

	routes.On("Route", mock.Anything, *laCoord, domain.Coord{Lat: 40.78, Lon: -73.97}).
		Return(testGeometry(300), nil)
	stations.On("ListOnRoute", mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.StationOnRoute{}, nil)

	uc := newPlanUseCase(geocoder, routes, stations, cache)

	resp, err := uc.Plan(context.Background(), dto.PlanRouteRequest{Start: "Los Angeles, CA", End: endPair})
	require.NoError(t, err)
	require.NotNil(t, resp)

	cache.AssertCalled(t, "SetCoord", mock.Anything, "Los Angeles, CA", *laCoord, time.Hour)
}

func TestPlanUseCase_Plan_CachedCoordSkipsGeocoder(t *testing.T) {
	geocoder := &MockGeocoder{}
	routes := &MockRouteProvider{}
	stations := &MockStationRepository{}
	cache := &MockCacheRepository{}

	laCoord := &domain.Coord{Lat: 34.0537, Lon: -118.2428}
	cache.On("GetCoord", mock.Anything, "Los Angeles, CA").Return(laCoord, nil)

	routes.On("Route", mock.Anything, mock.Anything, mock.Anything).Return(testGeometry(300), nil)
	stations.On("ListOnRoute", mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.StationOnRoute{}, nil)

	uc := newPlanUseCase(geocoder, routes, stations, cache)

	_, err := uc.Plan(context.Background(), dto.PlanRouteRequest{Start: "Los Angeles, CA", End: endPair})
	require.NoError(t, err)

	geocoder.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
}

func TestPlanUseCase_Plan_StopsComputedThroughPipeline(t *testing.T) {
	geocoder := &MockGeocoder{}
	routes := &MockRouteProvider{}
	stations := &MockStationRepository{}
	cache := &MockCacheRepository{}

	geom := testGeometry(900)
	routes.On("Route", mock.Anything, mock.Anything, mock.Anything).Return(geom, nil)

	rows := []domain.StationOnRoute{
		{OPISID: 1, Name: "EXPENSIVE EARLY", RetailPrice: decimal.RequireFromString("4.000"), Fraction: 100.0 / 900.0},
		{OPISID: 2, Name: "CHEAP MID", RetailPrice: decimal.RequireFromString("2.000"), Fraction: 0.5},
		{OPISID: 3, Name: "LATE", RetailPrice: decimal.RequireFromString("3.000"), Fraction: 800.0 / 900.0},
	}
	stations.On("ListOnRoute", mock.Anything, mock.Anything, mock.Anything).Return(rows, nil)

	uc := newPlanUseCase(geocoder, routes, stations, cache)

	resp, err := uc.Plan(context.Background(), dto.PlanRouteRequest{Start: startPair, End: endPair})
	require.NoError(t, err)

	// The mid-route $2.00 station covers the remaining 450 miles by itself
	require.Len(t, resp.Stops, 1)
	assert.Equal(t, "CHEAP MID", resp.Stops[0].Name)
	assert.Equal(t, 2, resp.Stops[0].StationID)
	assert.Equal(t, 450.0, resp.Stops[0].Mileage)
	assert.Equal(t, 45.0, resp.Stops[0].Gallons)
	assert.Equal(t, 90.0, resp.Stops[0].Cost)
	assert.Equal(t, 90.0, resp.TotalFuelCost)
	assert.Equal(t, 90.0, resp.TotalGallons)
}

func TestPlanUseCase_Plan_InfeasibleRoute(t *testing.T) {
	geocoder := &MockGeocoder{}
	routes := &MockRouteProvider{}
	stations := &MockStationRepository{}
	cache := &MockCacheRepository{}

	geom := testGeometry(1100)
	routes.On("Route", mock.Anything, mock.Anything, mock.Anything).Return(geom, nil)

	// 220 -> 880 leaves a 660 mile gap
	rows := []domain.StationOnRoute{
		{OPISID: 1, Name: "A", RetailPrice: decimal.RequireFromString("3.000"), Fraction: 0.2},
		{OPISID: 2, Name: "B", RetailPrice: decimal.RequireFromString("3.000"), Fraction: 0.8},
	}
	stations.On("ListOnRoute", mock.Anything, mock.Anything, mock.Anything).Return(rows, nil)

	uc := newPlanUseCase(geocoder, routes, stations, cache)

	resp, err := uc.Plan(context.Background(), dto.PlanRouteRequest{Start: startPair, End: endPair})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, errors.ErrInfeasibleRoute)
}

func TestPlanUseCase_Plan_UpstreamFailuresPropagate(t *testing.T) {
	t.Run("router error", func(t *testing.T) {
		routes := &MockRouteProvider{}
		routes.On("Route", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.ErrRouteUpstream)

		uc := newPlanUseCase(&MockGeocoder{}, routes, &MockStationRepository{}, &MockCacheRepository{})

		_, err := uc.Plan(context.Background(), dto.PlanRouteRequest{Start: startPair, End: endPair})
		assert.ErrorIs(t, err, errors.ErrRouteUpstream)
	})

	t.Run("database error", func(t *testing.T) {
		routes := &MockRouteProvider{}
		stations := &MockStationRepository{}
		routes.On("Route", mock.Anything, mock.Anything, mock.Anything).Return(testGeometry(300), nil)
		stations.On("ListOnRoute", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.ErrDatabaseError)

		uc := newPlanUseCase(&MockGeocoder{}, routes, stations, &MockCacheRepository{})

		_, err := uc.Plan(context.Background(), dto.PlanRouteRequest{Start: startPair, End: endPair})
		assert.ErrorIs(t, err, errors.ErrDatabaseError)
	})
}
