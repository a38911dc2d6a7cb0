package usecase

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/fuel-route-service/internal/domain"
)

// OptimizeRefuelPath ищет путь минимальной стоимости Start -> Finish по DAG
// заправок динамическим программированием.
//
// nodes отсортированы по Mileage: nodes[0] = Start, nodes[len-1] = Finish.
// Ребро i -> j существует при mileage[j] - mileage[i] <= VehicleRangeMi,
// его вес = (dist / VehicleMPG) * price[i].
//
// Возвращает остановки без Start/Finish и итоговые суммы. Внутренний цикл
// релаксации работает на float64, итоги пересчитываются в decimal по плечам
// найденного пути. feasible = false, если пути Start -> Finish нет.
func OptimizeRefuelPath(nodes []domain.RouteNode) (stops []domain.Stop, totalCost, totalGallons decimal.Decimal, feasible bool) {
	if len(nodes) < 2 {
		return []domain.Stop{}, decimal.Zero, decimal.Zero, true
	}

	n := len(nodes)
	mileages := make([]float64, n)
	prices := make([]float64, n)
	for i, node := range nodes {
		mileages[i] = node.Mileage
		prices[i] = node.Price
	}
	// стартовый узел топливо не продает
	prices[0] = 0

	minCost := make([]float64, n)
	parent := make([]int, n)
	for i := range minCost {
		minCost[i] = math.Inf(1)
		parent[i] = -1
	}
	minCost[0] = 0

	// Топологический порядок совпадает с порядком индексов
	for i := 0; i < n; i++ {
		if math.IsInf(minCost[i], 1) {
			continue
		}
		for j := i + 1; j < n; j++ {
			dist := mileages[j] - mileages[i]
			if dist > domain.VehicleRangeMi {
				break
			}
			gallons := dist / domain.VehicleMPG
			newCost := minCost[i] + gallons*prices[i]
			if newCost < minCost[j] {
				minCost[j] = newCost
				parent[j] = i
			}
		}
	}

	// Восстановление пути Finish -> Start
	path := make([]int, 0, n)
	for cur := n - 1; cur != -1; cur = parent[cur] {
		path = append(path, cur)
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	if path[0] != 0 {
		return nil, decimal.Zero, decimal.Zero, false
	}

	mpg := decimal.NewFromInt(domain.VehicleMPG)
	totalCost = decimal.Zero
	totalGallons = decimal.Zero
	stops = make([]domain.Stop, 0, len(path))

	for idx := 0; idx < len(path)-1; idx++ {
		i, j := path[idx], path[idx+1]
		dist := mileages[j] - mileages[i]
		gallonsLeg := decimal.NewFromFloat(dist).Div(mpg)
		costLeg := gallonsLeg.Mul(decimal.NewFromFloat(prices[i]))
		totalGallons = totalGallons.Add(gallonsLeg)
		totalCost = totalCost.Add(costLeg)

		// Плечо Start -> первая остановка не порождает Stop: это топливо
		// из стартового бака, оно входит только в итоговые галлоны
		if i > 0 {
			stops = append(stops, domain.Stop{
				RouteNode: nodes[i],
				Gallons:   gallonsLeg.InexactFloat64(),
				Cost:      costLeg.InexactFloat64(),
			})
		}
	}

	return stops, totalCost, totalGallons, true
}
