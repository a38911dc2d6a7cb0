package middleware

import (
	"github.com/google/uuid"

	"github.com/gofiber/fiber/v2"
)

// RequestIDKey - ключ идентификатора запроса в Locals
const RequestIDKey = "request_id"

const requestIDHeader = "X-Request-ID"

// RequestID - middleware сквозного идентификатора запроса: берет входящий
// X-Request-ID или генерирует новый UUID, кладет его в Locals и в ответ
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(RequestIDKey, id)
		c.Set(requestIDHeader, id)

		return c.Next()
	}
}
