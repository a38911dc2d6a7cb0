package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FuelStation - АЗС из набора OPIS. Строки создаются импортером и
// только читаются при планировании.
type FuelStation struct {
	ID          int64           `json:"id" db:"id"`
	OPISID      int             `json:"opis_id" db:"opis_id"`
	Name        string          `json:"name" db:"name"`
	Address     string          `json:"address" db:"address"`
	City        string          `json:"city" db:"city"`
	State       string          `json:"state" db:"state"`
	RetailPrice decimal.Decimal `json:"retail_price" db:"retail_price"`
	Lat         float64         `json:"lat" db:"lat"`
	Lon         float64         `json:"lon" db:"lon"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}

// StationOnRoute - станция в коридоре маршрута с долей проекции на полилинию.
// Fraction в [0,1]; мили из нее считает уже сборщик узлов.
type StationOnRoute struct {
	OPISID      int             `db:"opis_id"`
	Name        string          `db:"name"`
	Address     string          `db:"address"`
	RetailPrice decimal.Decimal `db:"retail_price"`
	Lat         float64         `db:"lat"`
	Lon         float64         `db:"lon"`
	Fraction    float64         `db:"fraction"`
}

// StationFilter - фильтры списка станций
type StationFilter struct {
	States   []string
	MinPrice *float64
	MaxPrice *float64
	Limit    int
	Offset   int
}

// StationStats - агрегированная статистика по загруженным станциям
type StationStats struct {
	TotalStations int             `json:"total_stations"`
	MinPrice      decimal.Decimal `json:"min_price"`
	AvgPrice      decimal.Decimal `json:"avg_price"`
	MaxPrice      decimal.Decimal `json:"max_price"`
	ByState       map[string]int  `json:"by_state"`
	LastUpdated   time.Time       `json:"last_updated"`
}
