package utils

import (
	"regexp"
	"strconv"

	"github.com/fuel-route-service/internal/pkg/errors"
)

// Пара десятичных координат "lat,lon" с необязательными пробелами вокруг запятой
var coordPairRe = regexp.MustCompile(`^(-?\d+\.?\d*)\s*,\s*(-?\d+\.?\d*)$`)

// ParseCoordPair разбирает строку вида "34.05,-118.24".
// ok=false - строка не похожа на пару координат (нужен геокодер);
// ok=true, err!=nil - пара распознана, но значения вне границ WGS84.
func ParseCoordPair(s string) (lat, lon float64, ok bool, err error) {
	m := coordPairRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false, nil
	}

	lat, errLat := strconv.ParseFloat(m[1], 64)
	lon, errLon := strconv.ParseFloat(m[2], 64)
	if errLat != nil || errLon != nil {
		// Совпало с шаблоном, но не разобралось - пусть решает геокодер
		return 0, 0, false, nil
	}

	if !ValidateCoordinates(lat, lon) {
		return lat, lon, true, errors.ErrCoordsOutOfBounds
	}
	return lat, lon, true, nil
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
