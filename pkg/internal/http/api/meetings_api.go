package api

import (
	"errors"
	"time"

	"github.com/Deepak1230987/meetAI/pkg/internal/http/exts"
	"github.com/Deepak1230987/meetAI/pkg/internal/models"
	"github.com/Deepak1230987/meetAI/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

func listMeeting(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	filter := services.MeetingFilter{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("pageSize", services.DefaultPageSize),
		Search:   c.Query("search"),
		AgentID:  c.Query("agentId"),
	}
	if raw := c.Query("status"); len(raw) > 0 {
		status, err := models.ParseMeetingStatus(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		filter.Status = &status
	}

	if err := filter.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	items, total, err := services.ListMeeting(user, filter)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"items":       items,
		"total":       total,
		"total_pages": services.PageCount(total, filter.PageSize),
	})
}

func getMeeting(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id := c.Params("meetingId")

	meeting, err := services.GetMeeting(id, user)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Meeting not found")
	}

	return c.JSON(meeting)
}

func createMeeting(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	var data struct {
		Name    string `json:"name" validate:"required,max=256"`
		AgentID string `json:"agent_id" validate:"required"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	meeting, err := services.NewMeeting(c.UserContext(), user, data.Name, data.AgentID)
	if err != nil {
		if errors.Is(err, services.ErrAgentNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Agent not found")
		}
		if errors.Is(err, services.ErrCallProvider) {
			return fiber.NewError(fiber.StatusBadGateway, err.Error())
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(meeting)
}

func editMeeting(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id := c.Params("meetingId")

	var data struct {
		Name      *string               `json:"name" validate:"omitempty,max=256"`
		AgentID   *string               `json:"agent_id"`
		Status    *models.MeetingStatus `json:"status" validate:"omitempty,oneof=upcoming active completed processing cancelled"`
		StartedAt *time.Time            `json:"started_at"`
		EndedAt   *time.Time            `json:"ended_at"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	patch := map[string]any{}
	if data.Name != nil {
		patch["name"] = *data.Name
	}
	if data.AgentID != nil {
		patch["agent_id"] = *data.AgentID
	}
	if data.Status != nil {
		patch["status"] = *data.Status
	}
	if data.StartedAt != nil {
		patch["started_at"] = *data.StartedAt
	}
	if data.EndedAt != nil {
		patch["ended_at"] = *data.EndedAt
	}
	if len(patch) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "nothing to update")
	}

	meeting, err := services.UpdateMeeting(id, user, patch)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Meeting not found")
	}

	return c.JSON(meeting)
}

func deleteMeeting(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)
	id := c.Params("meetingId")

	meeting, err := services.DeleteMeeting(id, user)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Meeting not found")
	}

	return c.JSON(meeting)
}

func exchangeCallToken(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	tk, err := services.EncodeCallToken(c.UserContext(), user)
	if err != nil {
		if errors.Is(err, services.ErrCallProvider) {
			return fiber.NewError(fiber.StatusBadGateway, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"token":    tk,
		"endpoint": viper.GetString("calling.endpoint"),
	})
}
