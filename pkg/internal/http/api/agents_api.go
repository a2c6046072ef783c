package api

import (
	"github.com/Deepak1230987/meetAI/pkg/internal/http/exts"
	"github.com/Deepak1230987/meetAI/pkg/internal/models"
	"github.com/Deepak1230987/meetAI/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func listAgent(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	agents, err := services.ListAgent(user)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(agents)
}

func getAgent(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id := c.Params("agentId")

	agent, err := services.GetAgent(id, user)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Agent not found")
	}

	return c.JSON(agent)
}

func createAgent(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	var data struct {
		Name         string `json:"name" validate:"required,max=256"`
		Instructions string `json:"instructions" validate:"required"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	agent, err := services.NewAgent(user, data.Name, data.Instructions)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(agent)
}
