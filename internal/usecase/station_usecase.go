package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/fuel-route-service/internal/domain"
	"github.com/fuel-route-service/internal/domain/repository"
	"github.com/fuel-route-service/internal/usecase/dto"
)

// StationUseCase - просмотр справочника станций и статистики по нему
type StationUseCase struct {
	stationRepo repository.StationRepository
	logger      *zap.Logger
}

func NewStationUseCase(
	stationRepo repository.StationRepository,
	logger *zap.Logger,
) *StationUseCase {
	return &StationUseCase{
		stationRepo: stationRepo,
		logger:      logger,
	}
}

// List возвращает страницу станций по фильтру и общее число подходящих
func (uc *StationUseCase) List(ctx context.Context, req dto.StationListRequest) ([]*domain.FuelStation, int, error) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.Limit == 0 {
		req.Limit = 100
	}

	filter := domain.StationFilter{
		States:   req.States,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
		Limit:    req.Limit,
		Offset:   (req.Page - 1) * req.Limit,
	}

	stations, err := uc.stationRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("Failed to list stations", zap.Error(err))
		return nil, 0, err
	}

	total, err := uc.stationRepo.Count(ctx, filter)
	if err != nil {
		uc.logger.Error("Failed to count stations", zap.Error(err))
		return nil, 0, err
	}

	return stations, total, nil
}

// Stats возвращает агрегированную статистику справочника
func (uc *StationUseCase) Stats(ctx context.Context) (*domain.StationStats, error) {
	stats, err := uc.stationRepo.Stats(ctx)
	if err != nil {
		uc.logger.Error("Failed to get station stats", zap.Error(err))
		return nil, err
	}

	return stats, nil
}
