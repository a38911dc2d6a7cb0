package usecase

import (
	"sort"

	"github.com/fuel-route-service/internal/domain"
)

// BuildStationNodes превращает строки селектора (станция + доля проекции
// на маршрут) в узлы DAG. Порядок строк сохраняется: селектор отдает их
// по возрастанию доли, значит mileage не убывает
func BuildStationNodes(rows []domain.StationOnRoute, totalMiles float64) []domain.RouteNode {
	nodes := make([]domain.RouteNode, 0, len(rows))
	for _, row := range rows {
		nodes = append(nodes, domain.RouteNode{
			Mileage:   row.Fraction * totalMiles,
			Price:     row.RetailPrice.InexactFloat64(),
			Lat:       row.Lat,
			Lon:       row.Lon,
			Name:      row.Name,
			Address:   row.Address,
			StationID: row.OPISID,
		})
	}
	return nodes
}

// PrefilterStations группирует станции по сегментам длиной
// PrefilterSegmentMi и оставляет самую дешевую в каждом сегменте.
// При равных ценах выигрывает первая встреченная станция.
// Сокращает число узлов DAG, убирая микро-остановки
func PrefilterStations(nodes []domain.RouteNode) []domain.RouteNode {
	if len(nodes) == 0 {
		return []domain.RouteNode{}
	}

	cheapest := make(map[int]domain.RouteNode)
	for _, node := range nodes {
		bucket := int(node.Mileage / domain.PrefilterSegmentMi)
		best, ok := cheapest[bucket]
		if !ok || node.Price < best.Price {
			cheapest[bucket] = node
		}
	}

	buckets := make([]int, 0, len(cheapest))
	for bucket := range cheapest {
		buckets = append(buckets, bucket)
	}
	sort.Ints(buckets)

	filtered := make([]domain.RouteNode, 0, len(buckets))
	for _, bucket := range buckets {
		filtered = append(filtered, cheapest[bucket])
	}
	return filtered
}
