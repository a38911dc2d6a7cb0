package testhelpers

import (
	"context"
	"database/sql"
	"fmt"
)

// GetStationIDByOPISID returns the internal ID for a station given its OPIS ID
func GetStationIDByOPISID(db *sql.DB, opisID int) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		"SELECT id FROM fuel_stations WHERE opis_id = $1", opisID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("get station ID by OPIS ID %d: %w", opisID, err)
	}
	return id, nil
}
