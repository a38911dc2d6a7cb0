package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fuel-route-service/internal/repository/cache"
	"github.com/fuel-route-service/internal/repository/postgres"
)

// HealthHandler отвечает за проверку живости сервиса и его зависимостей.
type HealthHandler struct {
	db     *postgres.DB
	redis  *cache.Redis
	logger *zap.Logger
}

func NewHealthHandler(db *postgres.DB, redis *cache.Redis, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		redis:  redis,
		logger: logger,
	}
}

// Health проверяет доступность PostgreSQL и Redis.
// @Summary Проверка здоровья сервиса
// @Description Возвращает состояние сервиса и его зависимостей
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx := c.Context()

	checks := fiber.Map{
		"postgres": "ok",
		"redis":    "ok",
	}
	healthy := true

	if err := h.db.Health(ctx); err != nil {
		h.logger.Error("Health check: postgres unavailable", zap.Error(err))
		checks["postgres"] = "unavailable"
		healthy = false
	}

	if err := h.redis.Health(ctx); err != nil {
		h.logger.Error("Health check: redis unavailable", zap.Error(err))
		checks["redis"] = "unavailable"
		healthy = false
	}

	status := "healthy"
	code := fiber.StatusOK
	if !healthy {
		status = "degraded"
		code = fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status": status,
		"checks": checks,
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
