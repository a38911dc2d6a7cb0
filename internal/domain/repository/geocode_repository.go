package repository

import (
	"context"

	"github.com/fuel-route-service/internal/domain"
)

// Geocoder определяет методы прямого геокодирования
type Geocoder interface {
	// Geocode возвращает координаты первого результата для текстового
	// запроса или (nil, nil), если провайдер ничего не нашел
	Geocode(ctx context.Context, query string) (*domain.Coord, error)
}
