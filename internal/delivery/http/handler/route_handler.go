package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fuel-route-service/internal/pkg/errors"
	"github.com/fuel-route-service/internal/pkg/utils"
	"github.com/fuel-route-service/internal/pkg/validator"
	"github.com/fuel-route-service/internal/usecase"
	"github.com/fuel-route-service/internal/usecase/dto"
)

// RouteHandler - обработчик планирования маршрута с заправками
type RouteHandler struct {
	planUC *usecase.PlanUseCase
	logger *zap.Logger
}

// NewRouteHandler - создание нового RouteHandler
func NewRouteHandler(planUC *usecase.PlanUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		planUC: planUC,
		logger: logger,
	}
}

// PlanGET godoc
// @Summary План маршрута с заправками
// @Description Строит автомобильный маршрут между двумя точками и подбирает остановки для заправки с минимальной суммарной стоимостью топлива (бак на 500 миль, расход 10 миль на галлон). Точка задается парой "lat,lon" или текстовым адресом.
// @Tags Route
// @Produce json
// @Param start query string true "Начало: пара \"lat,lon\" или адрес"
// @Param end query string true "Конец: пара \"lat,lon\" или адрес"
// @Success 200 {object} dto.PlanRouteResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/route/ [get]
func (h *RouteHandler) PlanGET(c *fiber.Ctx) error {
	req := dto.PlanRouteRequest{
		Start: c.Query("start"),
		End:   c.Query("end"),
	}
	return h.plan(c, req)
}

// PlanPOST godoc
// @Summary План маршрута с заправками (POST)
// @Description То же, что GET /api/route/, но точки передаются JSON-телом
// @Tags Route
// @Accept json
// @Produce json
// @Param request body dto.PlanRouteRequest true "Начальная и конечная точки"
// @Success 200 {object} dto.PlanRouteResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/route/ [post]
func (h *RouteHandler) PlanPOST(c *fiber.Ctx) error {
	var req dto.PlanRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	return h.plan(c, req)
}

func (h *RouteHandler) plan(c *fiber.Ctx, req dto.PlanRouteRequest) error {
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	resp, err := h.planUC.Plan(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	// Ответ без конверта: корневые поля route_geojson, stops и итоги
	return c.JSON(resp)
}
