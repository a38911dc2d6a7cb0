package repository

import (
	"context"
	"time"

	"github.com/fuel-route-service/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу; (nil, nil) если ключа нет
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetCoord возвращает закешированный результат геокодирования;
	// (nil, nil) при промахе
	GetCoord(ctx context.Context, query string) (*domain.Coord, error)

	// SetCoord кеширует результат геокодирования
	SetCoord(ctx context.Context, query string, coord domain.Coord, ttl time.Duration) error
}
