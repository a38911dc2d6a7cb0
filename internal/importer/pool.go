package importer

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/fuel-route-service/internal/domain/repository"
)

// geocodePool распределяет геокодирование строк по фиксированному числу
// горутин. Все воркеры делят один Geocoder, так что лимит запросов
// провайдера соблюдается при любой конкурентности.
type geocodePool struct {
	geocoder    repository.Geocoder
	concurrency int
	logger      *zap.Logger

	stopChan chan struct{}
	stopOnce sync.Once
}

func newGeocodePool(geocoder repository.Geocoder, concurrency int, logger *zap.Logger) *geocodePool {
	if concurrency < 1 {
		concurrency = 1
	}
	return &geocodePool{
		geocoder:    geocoder,
		concurrency: concurrency,
		logger:      logger,
		stopChan:    make(chan struct{}),
	}
}

// Stop сигнализирует пулу прекратить раздачу новых строк.
// Уже взятые в работу строки доделываются.
func (p *geocodePool) Stop() {
	p.stopOnce.Do(func() {
		close(p.stopChan)
	})
}

// Run геокодирует строки на месте. Возвращает ошибку контекста,
// если обработка была прервана до конца списка.
func (p *geocodePool) Run(ctx context.Context, rows []Row) error {
	jobs := make(chan int)
	var wg sync.WaitGroup

	for i := 0; i < p.concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				p.geocodeRow(ctx, &rows[idx])
			}
		}()
	}

	var err error
feed:
	for i := range rows {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case <-p.stopChan:
			p.logger.Info("Geocode pool stopped early", zap.Int("dispatched", i))
			break feed
		case jobs <- i:
		}
	}

	close(jobs)
	wg.Wait()

	return err
}

// geocodeRow пытается геокодировать очищенный адрес, при промахе
// откатывается на центр города.
func (p *geocodePool) geocodeRow(ctx context.Context, row *Row) {
	coord, err := p.geocoder.Geocode(ctx, row.Query)
	if err != nil {
		p.logger.Warn("Address geocoding failed",
			zap.Int("opis_id", row.OPISID),
			zap.String("query", row.Query),
			zap.Error(err))
	}
	if coord != nil {
		row.Coord = coord
		row.Method = methodAddress
		return
	}

	cityQuery := fmt.Sprintf("%s, %s, USA", row.City, row.State)
	coord, err = p.geocoder.Geocode(ctx, cityQuery)
	if err != nil {
		p.logger.Warn("City geocoding failed",
			zap.Int("opis_id", row.OPISID),
			zap.String("query", cityQuery),
			zap.Error(err))
	}
	if coord == nil {
		row.Method = methodFailed
		p.logger.Warn("Station not geocoded",
			zap.Int("opis_id", row.OPISID),
			zap.String("name", row.Name))
		return
	}

	row.Coord = coord
	row.Method = methodCityFallback
}
