package routecache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"

	"github.com/fuel-route-service/internal/domain"
	"github.com/fuel-route-service/internal/domain/repository"
)

// cachedRouteProvider - декоратор над RouteProvider с процессной LRU и TTL.
// Потокобезопасен; при гонке по одному ключу допускается повторный поход
// к провайдеру, побеждает последняя запись.
type cachedRouteProvider struct {
	next   repository.RouteProvider
	lru    *expirable.LRU[string, *domain.RouteGeometry]
	logger *zap.Logger
}

// New оборачивает провайдера кешем на size записей с TTL RouteCacheTTL
func New(next repository.RouteProvider, size int, logger *zap.Logger) repository.RouteProvider {
	return &cachedRouteProvider{
		next:   next,
		lru:    expirable.NewLRU[string, *domain.RouteGeometry](size, nil, domain.RouteCacheTTL),
		logger: logger,
	}
}

func (p *cachedRouteProvider) Route(ctx context.Context, start, end domain.Coord) (*domain.RouteGeometry, error) {
	key := Fingerprint(start, end)

	if geom, ok := p.lru.Get(key); ok {
		p.logger.Info("Route cache hit", zap.String("fingerprint", key))
		return geom, nil
	}

	geom, err := p.next.Route(ctx, start, end)
	if err != nil {
		return nil, err
	}

	p.lru.Add(key, geom)
	p.logger.Info("Route cached",
		zap.String("fingerprint", key),
		zap.Float64("total_miles", geom.TotalMiles),
	)

	return geom, nil
}

// Fingerprint строит ключ кеша: md5 от пары координат в порядке провайдера
// (lon,lat), каждое число ровно с шестью знаками после точки. Запросы,
// отличающиеся ниже этого разрешения (~11 см), делят одну запись.
func Fingerprint(start, end domain.Coord) string {
	raw := fmt.Sprintf("%.6f,%.6f|%.6f,%.6f", start.Lon, start.Lat, end.Lon, end.Lat)
	sum := md5.Sum([]byte(raw))
	return hex.EncodeToString(sum[:])
}
