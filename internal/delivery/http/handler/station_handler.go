package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fuel-route-service/internal/pkg/errors"
	"github.com/fuel-route-service/internal/pkg/utils"
	"github.com/fuel-route-service/internal/pkg/validator"
	"github.com/fuel-route-service/internal/usecase"
	"github.com/fuel-route-service/internal/usecase/dto"
)

// StationHandler - обработчик справочника станций
type StationHandler struct {
	stationUC *usecase.StationUseCase
	logger    *zap.Logger
}

// NewStationHandler - создание нового StationHandler
func NewStationHandler(stationUC *usecase.StationUseCase, logger *zap.Logger) *StationHandler {
	return &StationHandler{
		stationUC: stationUC,
		logger:    logger,
	}
}

// List godoc
// @Summary Список станций
// @Description Постраничный список станций с фильтрами по штатам и диапазону цены
// @Tags Stations
// @Produce json
// @Param states query string false "Коды штатов через запятую, например CA,TX"
// @Param min_price query number false "Минимальная розничная цена"
// @Param max_price query number false "Максимальная розничная цена"
// @Param page query int false "Номер страницы" default(1)
// @Param limit query int false "Размер страницы" default(100)
// @Success 200 {object} utils.SuccessResponse{data=[]domain.FuelStation}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/stations [get]
func (h *StationHandler) List(c *fiber.Ctx) error {
	req := dto.StationListRequest{
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", 100),
	}
	if states := c.Query("states"); states != "" {
		req.States = strings.Split(strings.ToUpper(states), ",")
	}
	if v := c.QueryFloat("min_price", -1); v >= 0 {
		req.MinPrice = &v
	}
	if v := c.QueryFloat("max_price", -1); v >= 0 {
		req.MaxPrice = &v
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	stations, total, err := h.stationUC.List(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stations, &utils.Meta{
		Total: total,
		Page:  req.Page,
		Limit: req.Limit,
	})
}

// Stats godoc
// @Summary Статистика справочника станций
// @Description Агрегаты по станциям: число, разброс цен, распределение по штатам
// @Tags Stations
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.StationStats}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/stations/stats [get]
func (h *StationHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.stationUC.Stats(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, nil)
}
