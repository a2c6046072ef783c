package api

import (
	"strings"

	"github.com/Deepak1230987/meetAI/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func authMiddleware(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid authentication token")
	}

	account, err := services.DecodeAccessToken(parts[1])
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid authentication token")
	}

	c.Locals("user", account)
	return c.Next()
}
