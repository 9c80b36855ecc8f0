package middleware

import (
	"github.com/gofiber/fiber/v2"

	"venturedesk/infrastructure/gateway"
)

const DataSourceHeader = "X-Data-Source"

// DataSourceMiddleware plants a gateway recorder in the request context and
// tags the response with the store that served it (primary or fallback).
func DataSourceMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec := &gateway.Recorder{}
		c.SetUserContext(gateway.ContextWithRecorder(c.UserContext(), rec))

		err := c.Next()

		c.Set(DataSourceHeader, rec.Source())
		return err
	}
}
