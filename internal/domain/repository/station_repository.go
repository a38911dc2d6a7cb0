package repository

import (
	"context"

	"github.com/fuel-route-service/internal/domain"
)

// StationRepository определяет методы для работы с АЗС
type StationRepository interface {
	// ListOnRoute возвращает станции не дальше bufferDegrees от полилинии
	// (dwithin по индексу, без материализации буфера), каждая с долей
	// проекции на маршрут, по возрастанию доли
	ListOnRoute(ctx context.Context, polyline [][]float64, bufferDegrees float64) ([]domain.StationOnRoute, error)

	// List возвращает станции по фильтру (штаты, диапазон цен, пагинация)
	List(ctx context.Context, filter domain.StationFilter) ([]*domain.FuelStation, error)

	// Count возвращает число станций, подходящих под фильтр
	Count(ctx context.Context, filter domain.StationFilter) (int, error)

	// Stats возвращает агрегированную статистику по станциям
	Stats(ctx context.Context) (*domain.StationStats, error)

	// UpsertBatch вставляет пачку станций, обновляя цену и адрес по opis_id.
	// Возвращает число обработанных строк.
	UpsertBatch(ctx context.Context, stations []domain.FuelStation) (int, error)
}
