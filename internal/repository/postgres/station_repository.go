package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/fuel-route-service/internal/domain"
	"github.com/fuel-route-service/internal/domain/repository"
	"github.com/fuel-route-service/internal/pkg/errors"
)

type stationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewStationRepository(db *DB) repository.StationRepository {
	return &stationRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// ListOnRoute выбирает станции в коридоре маршрута одним запросом.
// ST_DWithin по geometry в градусах идет через GiST-индекс; буферный
// полигон не материализуется. Fraction - проекция точки на полилинию.
func (r *stationRepository) ListOnRoute(
	ctx context.Context,
	polyline [][]float64,
	bufferDegrees float64,
) ([]domain.StationOnRoute, error) {
	query := `
		WITH route AS (
			SELECT ST_GeomFromText($1, 4326) AS line
		)
		SELECT
			s.opis_id,
			s.name,
			s.address,
			s.retail_price,
			ST_X(s.location) AS lon,
			ST_Y(s.location) AS lat,
			ST_LineLocatePoint(route.line, s.location) AS fraction
		FROM fuel_stations s, route
		WHERE ST_DWithin(s.location, route.line, $2)
		ORDER BY fraction
	`

	rows, err := r.db.QueryContext(ctx, query, lineWKT(polyline), bufferDegrees)
	if err != nil {
		r.logger.Error("Failed to list stations on route", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var stations []domain.StationOnRoute
	for rows.Next() {
		var s domain.StationOnRoute
		err := rows.Scan(
			&s.OPISID, &s.Name, &s.Address, &s.RetailPrice,
			&s.Lon, &s.Lat, &s.Fraction,
		)
		if err != nil {
			r.logger.Error("Failed to scan station row", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		stations = append(stations, s)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Station rows iteration failed", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return stations, nil
}

func (r *stationRepository) List(
	ctx context.Context,
	filter domain.StationFilter,
) ([]*domain.FuelStation, error) {
	query := `
		SELECT
			id, opis_id, name, address, city, state, retail_price,
			ST_X(location) AS lon,
			ST_Y(location) AS lat,
			created_at, updated_at
		FROM fuel_stations
		WHERE 1=1
	`

	where, args := buildStationFilter(filter)
	query += where

	argIdx := len(args) + 1
	query += fmt.Sprintf(" ORDER BY retail_price, opis_id LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list stations", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var stations []*domain.FuelStation
	for rows.Next() {
		var s domain.FuelStation
		err := rows.Scan(
			&s.ID, &s.OPISID, &s.Name, &s.Address, &s.City, &s.State,
			&s.RetailPrice, &s.Lon, &s.Lat, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			r.logger.Error("Failed to scan station", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		stations = append(stations, &s)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Station rows iteration failed", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return stations, nil
}

func (r *stationRepository) Count(ctx context.Context, filter domain.StationFilter) (int, error) {
	query := `SELECT COUNT(*) FROM fuel_stations WHERE 1=1`

	where, args := buildStationFilter(filter)
	query += where

	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.logger.Error("Failed to count stations", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}

	return total, nil
}

func (r *stationRepository) Stats(ctx context.Context) (*domain.StationStats, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COALESCE(MIN(retail_price), 0) AS min_price,
			COALESCE(ROUND(AVG(retail_price), 3), 0) AS avg_price,
			COALESCE(MAX(retail_price), 0) AS max_price,
			COALESCE(MAX(updated_at), 'epoch'::timestamptz) AS last_updated
		FROM fuel_stations
	`

	stats := &domain.StationStats{ByState: make(map[string]int)}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&stats.TotalStations, &stats.MinPrice, &stats.AvgPrice,
		&stats.MaxPrice, &stats.LastUpdated,
	)
	if err != nil {
		r.logger.Error("Failed to get station stats", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT state, COUNT(*)
		FROM fuel_stations
		GROUP BY state
		ORDER BY COUNT(*) DESC
	`)
	if err != nil {
		r.logger.Error("Failed to get per-state stats", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	for rows.Next() {
		var state string
		var count int
		if err := rows.Scan(&state, &count); err != nil {
			r.logger.Error("Failed to scan state row", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		stats.ByState[state] = count
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("State rows iteration failed", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return stats, nil
}

// UpsertBatch пишет пачку станций одним INSERT ... ON CONFLICT.
// Дубликаты opis_id внутри пачки должны быть убраны вызывающей стороной.
func (r *stationRepository) UpsertBatch(ctx context.Context, stations []domain.FuelStation) (int, error) {
	if len(stations) == 0 {
		return 0, nil
	}

	var sb strings.Builder
	sb.WriteString(`
		INSERT INTO fuel_stations
			(opis_id, name, address, city, state, retail_price, location)
		VALUES
	`)

	args := make([]interface{}, 0, len(stations)*8)
	for i, s := range stations {
		if i > 0 {
			sb.WriteString(",")
		}
		base := i * 8
		sb.WriteString(fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d, $%d, ST_SetSRID(ST_MakePoint($%d, $%d), 4326))",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8,
		))
		args = append(args, s.OPISID, s.Name, s.Address, s.City, s.State, s.RetailPrice, s.Lon, s.Lat)
	}

	sb.WriteString(`
		ON CONFLICT (opis_id) DO UPDATE SET
			name = EXCLUDED.name,
			address = EXCLUDED.address,
			city = EXCLUDED.city,
			state = EXCLUDED.state,
			retail_price = EXCLUDED.retail_price,
			location = EXCLUDED.location,
			updated_at = NOW()
	`)

	res, err := r.db.ExecContext(ctx, sb.String(), args...)
	if err != nil {
		r.logger.Error("Failed to upsert stations", zap.Int("batch", len(stations)), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return len(stations), nil
	}
	return int(affected), nil
}

// lineWKT собирает WKT LINESTRING из полилинии провайдера (порядок lon, lat)
func lineWKT(polyline [][]float64) string {
	var sb strings.Builder
	sb.WriteString("LINESTRING(")
	for i, pt := range polyline {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(pt[0], 'f', -1, 64))
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatFloat(pt[1], 'f', -1, 64))
	}
	sb.WriteByte(')')
	return sb.String()
}

func buildStationFilter(filter domain.StationFilter) (string, []interface{}) {
	var where string
	var args []interface{}
	argIdx := 1

	if len(filter.States) > 0 {
		where += fmt.Sprintf(" AND state = ANY($%d)", argIdx)
		args = append(args, pq.Array(filter.States))
		argIdx++
	}
	if filter.MinPrice != nil {
		where += fmt.Sprintf(" AND retail_price >= $%d", argIdx)
		args = append(args, *filter.MinPrice)
		argIdx++
	}
	if filter.MaxPrice != nil {
		where += fmt.Sprintf(" AND retail_price <= $%d", argIdx)
		args = append(args, *filter.MaxPrice)
		argIdx++
	}

	return where, args
}
