package domain

// Coord - координаты WGS84 в градусах
type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid проверяет границы широты и долготы
func (c Coord) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// RouteGeometry - геометрия маршрута от внешнего роутера
type RouteGeometry struct {
	// Polyline в порядке (lon, lat), как возвращает провайдер (GeoJSON LineString)
	Polyline   [][]float64 `json:"polyline"`
	TotalMiles float64     `json:"total_miles"`
}

// RouteNode - узел DAG заправок: Start, станция или Finish.
// Живет в рамках одного запроса; у синтетических узлов Price = 0.
type RouteNode struct {
	Mileage   float64 `json:"mileage"`
	Price     float64 `json:"price"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	StationID int     `json:"station_id"`
}

// Stop - точка заправки в оптимальном пути: узел плюс объем и стоимость
// топлива, купленного на этой станции
type Stop struct {
	RouteNode
	Gallons float64 `json:"gallons"`
	Cost    float64 `json:"cost"`
}

