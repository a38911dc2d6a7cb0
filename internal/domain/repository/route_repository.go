package repository

import (
	"context"

	"github.com/fuel-route-service/internal/domain"
)

// RouteProvider определяет методы получения маршрута у внешнего провайдера
type RouteProvider interface {
	// Route возвращает геометрию и длину маршрута между двумя точками
	Route(ctx context.Context, start, end domain.Coord) (*domain.RouteGeometry, error)
}
