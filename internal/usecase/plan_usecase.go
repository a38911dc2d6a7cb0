package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/fuel-route-service/internal/domain"
	"github.com/fuel-route-service/internal/domain/repository"
	"github.com/fuel-route-service/internal/pkg/errors"
	"github.com/fuel-route-service/internal/pkg/utils"
	"github.com/fuel-route-service/internal/usecase/dto"
)

// PlanUseCase оркестрирует полный расчет плана:
// геокодирование -> маршрут -> станции вдоль маршрута -> предфильтр -> DAG
type PlanUseCase struct {
	geocoder    repository.Geocoder
	routes      repository.RouteProvider
	stationRepo repository.StationRepository
	cache       repository.CacheRepository
	logger      *zap.Logger
	geocodeTTL  time.Duration
}

func NewPlanUseCase(
	geocoder repository.Geocoder,
	routes repository.RouteProvider,
	stationRepo repository.StationRepository,
	cache repository.CacheRepository,
	logger *zap.Logger,
	geocodeTTL time.Duration,
) *PlanUseCase {
	return &PlanUseCase{
		geocoder:    geocoder,
		routes:      routes,
		stationRepo: stationRepo,
		cache:       cache,
		logger:      logger,
		geocodeTTL:  geocodeTTL,
	}
}

func (uc *PlanUseCase) Plan(ctx context.Context, req dto.PlanRouteRequest) (*dto.PlanRouteResponse, error) {
	start, err := uc.resolveLocation(ctx, req.Start, errors.ErrStartNotResolved)
	if err != nil {
		return nil, err
	}
	end, err := uc.resolveLocation(ctx, req.End, errors.ErrEndNotResolved)
	if err != nil {
		return nil, err
	}

	geom, err := uc.routes.Route(ctx, *start, *end)
	if err != nil {
		return nil, err
	}

	// Stations along the route (selector)
	rows, err := uc.stationRepo.ListOnRoute(ctx, geom.Polyline, domain.StationBufferMi*domain.DegreesPerMile)
	if err != nil {
		return nil, err
	}

	stationNodes := PrefilterStations(BuildStationNodes(rows, geom.TotalMiles))

	// Full node list: Start + stations + Finish
	nodes := make([]domain.RouteNode, 0, len(stationNodes)+2)
	nodes = append(nodes, domain.RouteNode{
		Mileage: 0,
		Price:   0,
		Lat:     start.Lat,
		Lon:     start.Lon,
		Name:    "Start",
	})
	nodes = append(nodes, stationNodes...)
	nodes = append(nodes, domain.RouteNode{
		Mileage: geom.TotalMiles,
		Price:   0,
		Lat:     end.Lat,
		Lon:     end.Lon,
		Name:    "Finish",
	})

	stops, totalCost, totalGallons, feasible := OptimizeRefuelPath(nodes)
	if !feasible {
		return nil, errors.ErrInfeasibleRoute
	}

	uc.logger.Info("Route plan computed",
		zap.Float64("total_miles", geom.TotalMiles),
		zap.Int("stations_considered", len(rows)),
		zap.Int("stations_after_prefilter", len(stationNodes)),
		zap.Int("stops", len(stops)),
		zap.String("total_fuel_cost", totalCost.String()),
	)

	return buildPlanResponse(geom, stops, totalCost, totalGallons), nil
}

// resolveLocation превращает пользовательскую строку в координаты по
// правилам:
//   - пустая строка - отказ без обращения к геокодеру;
//   - пара "lat,lon" в границах - быстрый путь без геокодера;
//   - пара вне границ - отказ без обращения к геокодеру;
//   - иначе - кэш, затем Nominatim; сбои транспорта считаются
//     "не нашлось" и не роняют запрос пятисоткой
func (uc *PlanUseCase) resolveLocation(ctx context.Context, place string, notResolved *errors.AppError) (*domain.Coord, error) {
	query := strings.TrimSpace(place)
	if query == "" {
		return nil, notResolved
	}

	lat, lon, ok, err := utils.ParseCoordPair(query)
	if err != nil {
		return nil, err
	}
	if ok {
		return &domain.Coord{Lat: lat, Lon: lon}, nil
	}

	cached, err := uc.cache.GetCoord(ctx, query)
	if err != nil {
		uc.logger.Warn("Geocode cache lookup failed", zap.String("query", query), zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	coord, err := uc.geocoder.Geocode(ctx, query)
	if err != nil {
		uc.logger.Warn("Geocoder lookup failed", zap.String("query", query), zap.Error(err))
		return nil, notResolved
	}
	if coord == nil {
		return nil, notResolved
	}

	if err := uc.cache.SetCoord(ctx, query, *coord, uc.geocodeTTL); err != nil {
		uc.logger.Warn("Failed to cache geocode result", zap.String("query", query), zap.Error(err))
	}

	return coord, nil
}

func buildPlanResponse(geom *domain.RouteGeometry, stops []domain.Stop, totalCost, totalGallons decimal.Decimal) *dto.PlanRouteResponse {
	stopDTOs := make([]dto.StopResponse, 0, len(stops))
	for _, s := range stops {
		stopDTOs = append(stopDTOs, dto.StopResponse{
			Mileage:   s.Mileage,
			Price:     s.Price,
			Lat:       s.Lat,
			Lon:       s.Lon,
			Name:      s.Name,
			Address:   s.Address,
			StationID: s.StationID,
			Gallons:   s.Gallons,
			Cost:      s.Cost,
		})
	}

	return &dto.PlanRouteResponse{
		RouteGeoJSON: dto.RouteFeature{
			Type: "Feature",
			Geometry: dto.LineStringGeometry{
				Type:        "LineString",
				Coordinates: geom.Polyline,
			},
			Properties: map[string]interface{}{},
		},
		Stops:         stopDTOs,
		TotalFuelCost: totalCost.InexactFloat64(),
		TotalGallons:  totalGallons.InexactFloat64(),
		TotalMiles:    geom.TotalMiles,
		MPGUsed:       domain.VehicleMPG,
	}
}
