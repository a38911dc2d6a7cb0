package dto

// PlanRouteRequest - запрос на план маршрута. Start и End принимают либо
// пару "lat,lon", либо текстовый адрес для геокодера
type PlanRouteRequest struct {
	Start string `json:"start" query:"start" validate:"required"`
	End   string `json:"end" query:"end" validate:"required"`
}

// LineStringGeometry - геометрия маршрута (GeoJSON LineString, пары lon/lat)
type LineStringGeometry struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

// RouteFeature - маршрут как GeoJSON Feature с пустыми properties
type RouteFeature struct {
	Type       string                 `json:"type"`
	Geometry   LineStringGeometry     `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

// StopResponse - заправка в оптимальном плане. Gallons и Cost относятся
// к плечу от этой остановки до следующего узла пути
type StopResponse struct {
	Mileage   float64 `json:"mileage"`
	Price     float64 `json:"price"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	StationID int     `json:"station_id,omitempty"`
	Gallons   float64 `json:"gallons"`
	Cost      float64 `json:"cost"`
}

// PlanRouteResponse - полный план поездки: геометрия, остановки и итоги
type PlanRouteResponse struct {
	RouteGeoJSON  RouteFeature   `json:"route_geojson"`
	Stops         []StopResponse `json:"stops"`
	TotalFuelCost float64        `json:"total_fuel_cost"`
	TotalGallons  float64        `json:"total_gallons"`
	TotalMiles    float64        `json:"total_miles"`
	MPGUsed       int            `json:"mpg_used"`
}
