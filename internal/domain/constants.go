package domain

import "time"

// Константы задачи планирования заправок. Значения фиксированы условием
// задачи и не настраиваются через окружение.
const (
	// VehicleRangeMi - запас хода автомобиля на полном баке, мили
	VehicleRangeMi = 500.0

	// VehicleMPG - расход топлива, миль на галлон
	VehicleMPG = 10

	// StationBufferMi - ширина коридора поиска станций вдоль маршрута, мили
	StationBufferMi = 10.0

	// DegreesPerMile - приближение градусы/мили для dwithin по SRID 4326
	DegreesPerMile = 1.0 / 69.0

	// PrefilterSegmentMi - ширина корзины предфильтра, мили
	PrefilterSegmentMi = 50.0

	// MetersToMiles - перевод метров (ответ роутера) в мили
	MetersToMiles = 0.000621371
)

// RouteCacheTTL - время жизни записи в кэше маршрутов
const RouteCacheTTL = 3600 * time.Second
