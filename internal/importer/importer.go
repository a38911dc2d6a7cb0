package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/fuel-route-service/internal/domain"
	"github.com/fuel-route-service/internal/domain/repository"
)

// Колонки выгрузки OPIS. Лишние колонки (Rack ID и т.п.) игнорируются.
const (
	colOPISID  = "OPIS Truckstop ID"
	colName    = "Truckstop Name"
	colAddress = "Address"
	colCity    = "City"
	colState   = "State"
	colPrice   = "Retail Price"
)

var requiredColumns = []string{colOPISID, colName, colAddress, colCity, colState, colPrice}

const defaultBatchSize = 200

// Результат геокодирования строки
const (
	methodAddress      = "address"
	methodCityFallback = "city_fallback"
	methodFailed       = "failed"
)

// Row - разобранная строка CSV, готовая к геокодированию
type Row struct {
	OPISID  int
	Name    string
	Address string
	City    string
	State   string
	Price   decimal.Decimal
	Query   string

	// Заполняются пулом геокодирования
	Coord  *domain.Coord
	Method string
}

// Summary - счетчики одного прогона импорта
type Summary struct {
	Parsed   int
	Skipped  int
	Geocoded int
	Fallback int
	Failed   int
	Saved    int
}

// Importer загружает выгрузку OPIS в базу: парсит CSV, геокодирует
// строки пулом воркеров и пишет станции пачками через upsert,
// так что повторный прогон обновляет цены вместо дублей.
type Importer struct {
	geocoder    repository.Geocoder
	stations    repository.StationRepository
	concurrency int
	batchSize   int
	logger      *zap.Logger
}

func NewImporter(
	geocoder repository.Geocoder,
	stations repository.StationRepository,
	concurrency int,
	batchSize int,
	logger *zap.Logger,
) *Importer {
	if batchSize < 1 {
		batchSize = defaultBatchSize
	}
	return &Importer{
		geocoder:    geocoder,
		stations:    stations,
		concurrency: concurrency,
		batchSize:   batchSize,
		logger:      logger,
	}
}

// ParseCSV разбирает выгрузку OPIS. Кривые строки (битый ID, пустое имя,
// дубль opis_id) пропускаются с предупреждением; вторым значением
// возвращается число пропущенных строк.
func ParseCSV(r io.Reader, logger *zap.Logger) ([]Row, int, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("read csv header: %w", err)
	}

	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := colIdx[name]; !ok {
			return nil, 0, fmt.Errorf("csv missing required column %q", name)
		}
	}

	var (
		rows    []Row
		skipped int
		seen    = make(map[int]struct{})
		line    = 1
	)

	for {
		line++
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if errors.Is(err, csv.ErrFieldCount) {
				logger.Warn("Skipping malformed csv row", zap.Int("line", line), zap.Error(err))
				skipped++
				continue
			}
			return nil, 0, fmt.Errorf("read csv row: %w", err)
		}

		opisID, err := strconv.Atoi(strings.TrimSpace(record[colIdx[colOPISID]]))
		if err != nil {
			logger.Warn("Skipping row with bad OPIS id",
				zap.Int("line", line),
				zap.String("value", record[colIdx[colOPISID]]))
			skipped++
			continue
		}
		if _, ok := seen[opisID]; ok {
			skipped++
			continue
		}
		seen[opisID] = struct{}{}

		name := strings.TrimSpace(record[colIdx[colName]])
		if name == "" {
			logger.Warn("Skipping row without name", zap.Int("line", line), zap.Int("opis_id", opisID))
			skipped++
			continue
		}

		price, err := decimal.NewFromString(strings.TrimSpace(record[colIdx[colPrice]]))
		if err != nil {
			logger.Warn("Unparsable retail price, keeping zero",
				zap.Int("opis_id", opisID),
				zap.String("value", record[colIdx[colPrice]]))
			price = decimal.Zero
		}

		address := strings.TrimSpace(record[colIdx[colAddress]])
		city := strings.TrimSpace(record[colIdx[colCity]])
		state := strings.ToUpper(strings.TrimSpace(record[colIdx[colState]]))

		rows = append(rows, Row{
			OPISID:  opisID,
			Name:    name,
			Address: address,
			City:    city,
			State:   state,
			Price:   price,
			Query:   fmt.Sprintf("%s, %s, %s, USA", CleanHighwayAddress(address), city, state),
		})
	}

	return rows, skipped, nil
}

// Run выполняет полный прогон импорта: CSV -> геокодирование -> upsert.
// limit > 0 ограничивает число обрабатываемых строк, dryRun пропускает
// запись в базу.
func (im *Importer) Run(ctx context.Context, csvPath string, limit int, dryRun bool) (*Summary, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	rows, skipped, err := ParseCSV(f, im.logger)
	if err != nil {
		return nil, err
	}

	summary := &Summary{Parsed: len(rows), Skipped: skipped}

	if limit > 0 && len(rows) > limit {
		im.logger.Info("Limiting import", zap.Int("limit", limit), zap.Int("parsed", len(rows)))
		rows = rows[:limit]
	}
	if len(rows) == 0 {
		im.logger.Info("Nothing to import")
		return summary, nil
	}

	im.logger.Info("Geocoding stations",
		zap.Int("count", len(rows)),
		zap.Int("concurrency", im.concurrency))

	pool := newGeocodePool(im.geocoder, im.concurrency, im.logger)
	if err := pool.Run(ctx, rows); err != nil {
		return nil, fmt.Errorf("geocode stations: %w", err)
	}

	batch := make([]domain.FuelStation, 0, im.batchSize)
	for _, row := range rows {
		switch row.Method {
		case methodAddress:
			summary.Geocoded++
		case methodCityFallback:
			summary.Fallback++
		default:
			summary.Failed++
			continue
		}

		batch = append(batch, domain.FuelStation{
			OPISID:      row.OPISID,
			Name:        row.Name,
			Address:     row.Address,
			City:        row.City,
			State:       row.State,
			RetailPrice: row.Price,
			Lat:         row.Coord.Lat,
			Lon:         row.Coord.Lon,
		})

		if len(batch) >= im.batchSize {
			n, err := im.flush(ctx, batch, dryRun)
			if err != nil {
				return nil, err
			}
			summary.Saved += n
			batch = batch[:0]
		}
	}

	n, err := im.flush(ctx, batch, dryRun)
	if err != nil {
		return nil, err
	}
	summary.Saved += n

	im.logger.Info("Import finished",
		zap.Int("parsed", summary.Parsed),
		zap.Int("skipped", summary.Skipped),
		zap.Int("geocoded", summary.Geocoded),
		zap.Int("city_fallback", summary.Fallback),
		zap.Int("failed", summary.Failed),
		zap.Int("saved", summary.Saved))

	return summary, nil
}

func (im *Importer) flush(ctx context.Context, batch []domain.FuelStation, dryRun bool) (int, error) {
	if len(batch) == 0 {
		return 0, nil
	}
	if dryRun {
		im.logger.Info("Dry run: batch not written", zap.Int("size", len(batch)))
		return len(batch), nil
	}

	n, err := im.stations.UpsertBatch(ctx, batch)
	if err != nil {
		return 0, fmt.Errorf("upsert stations: %w", err)
	}
	im.logger.Info("Batch saved", zap.Int("size", n))
	return n, nil
}
