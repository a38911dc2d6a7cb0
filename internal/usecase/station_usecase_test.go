package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fuel-route-service/internal/domain"
	"github.com/fuel-route-service/internal/pkg/errors"
	"github.com/fuel-route-service/internal/usecase"
	"github.com/fuel-route-service/internal/usecase/dto"
)

func TestStationUseCase_List_DefaultsAndOffset(t *testing.T) {
	t.Run("zero page and limit fall back to the first page of 100", func(t *testing.T) {
		repo := &MockStationRepository{}
		expected := domain.StationFilter{Limit: 100, Offset: 0}
		repo.On("List", mock.Anything, expected).Return([]*domain.FuelStation{}, nil)
		repo.On("Count", mock.Anything, expected).Return(0, nil)

		uc := usecase.NewStationUseCase(repo, zap.NewNop())

		_, total, err := uc.List(context.Background(), dto.StationListRequest{})
		require.NoError(t, err)
		assert.Equal(t, 0, total)
		repo.AssertExpectations(t)
	})

	t.Run("page translates into an offset", func(t *testing.T) {
		repo := &MockStationRepository{}
		expected := domain.StationFilter{Limit: 20, Offset: 40}
		repo.On("List", mock.Anything, expected).Return([]*domain.FuelStation{}, nil)
		repo.On("Count", mock.Anything, expected).Return(55, nil)

		uc := usecase.NewStationUseCase(repo, zap.NewNop())

		_, total, err := uc.List(context.Background(), dto.StationListRequest{Page: 3, Limit: 20})
		require.NoError(t, err)
		assert.Equal(t, 55, total)
		repo.AssertExpectations(t)
	})

	t.Run("filters pass through untouched", func(t *testing.T) {
		minPrice := 3.0
		maxPrice := 4.0
		repo := &MockStationRepository{}
		expected := domain.StationFilter{
			States:   []string{"TX", "OK"},
			MinPrice: &minPrice,
			MaxPrice: &maxPrice,
			Limit:    100,
		}
		rows := []*domain.FuelStation{
			{OPISID: 101, Name: "PILOT #1", State: "TX", RetailPrice: decimal.RequireFromString("3.459")},
		}
		repo.On("List", mock.Anything, expected).Return(rows, nil)
		repo.On("Count", mock.Anything, expected).Return(1, nil)

		uc := usecase.NewStationUseCase(repo, zap.NewNop())

		stations, total, err := uc.List(context.Background(), dto.StationListRequest{
			States:   []string{"TX", "OK"},
			MinPrice: &minPrice,
			MaxPrice: &maxPrice,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, stations, 1)
		assert.Equal(t, 101, stations[0].OPISID)
	})
}

func TestStationUseCase_List_Errors(t *testing.T) {
	t.Run("list failure skips the count", func(t *testing.T) {
		repo := &MockStationRepository{}
		repo.On("List", mock.Anything, mock.Anything).Return(nil, errors.ErrDatabaseError)

		uc := usecase.NewStationUseCase(repo, zap.NewNop())

		_, _, err := uc.List(context.Background(), dto.StationListRequest{})
		assert.ErrorIs(t, err, errors.ErrDatabaseError)
		repo.AssertNotCalled(t, "Count", mock.Anything, mock.Anything)
	})

	t.Run("count failure propagates", func(t *testing.T) {
		repo := &MockStationRepository{}
		repo.On("List", mock.Anything, mock.Anything).Return([]*domain.FuelStation{}, nil)
		repo.On("Count", mock.Anything, mock.Anything).Return(0, errors.ErrDatabaseError)

		uc := usecase.NewStationUseCase(repo, zap.NewNop())

		_, _, err := uc.List(context.Background(), dto.StationListRequest{})
		assert.ErrorIs(t, err, errors.ErrDatabaseError)
	})
}

func TestStationUseCase_Stats(t *testing.T) {
	t.Run("passes the aggregate through", func(t *testing.T) {
		repo := &MockStationRepository{}
		stats := &domain.StationStats{
			TotalStations: 42,
			MinPrice:      decimal.RequireFromString("2.899"),
			AvgPrice:      decimal.RequireFromString("3.312"),
			MaxPrice:      decimal.RequireFromString("4.105"),
			ByState:       map[string]int{"TX": 30, "OK": 12},
		}
		repo.On("Stats", mock.Anything).Return(stats, nil)

		uc := usecase.NewStationUseCase(repo, zap.NewNop())

		got, err := uc.Stats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, stats, got)
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		repo := &MockStationRepository{}
		repo.On("Stats", mock.Anything).Return(nil, errors.ErrDatabaseError)

		uc := usecase.NewStationUseCase(repo, zap.NewNop())

		_, err := uc.Stats(context.Background())
		assert.ErrorIs(t, err, errors.ErrDatabaseError)
	})
}
