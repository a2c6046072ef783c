package api

import (
	"github.com/Deepak1230987/meetAI/pkg/internal/http/exts"
	"github.com/Deepak1230987/meetAI/pkg/internal/models"
	"github.com/Deepak1230987/meetAI/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func signUp(c *fiber.Ctx) error {
	var data struct {
		Name     string `json:"name" validate:"required,max=256"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8,max=72"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.NewAccount(data.Name, data.Email, data.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	tk, err := services.EncodeAccessToken(account)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"token":   tk,
		"account": account,
	})
}

func signIn(c *fiber.Ctx) error {
	var data struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.AuthenticateAccount(data.Email, data.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	tk, err := services.EncodeAccessToken(account)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"token":   tk,
		"account": account,
	})
}

func getUserinfo(c *fiber.Ctx) error {
	user := c.Locals("user").(models.Account)

	account, err := services.GetAccount(user.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(account)
}
