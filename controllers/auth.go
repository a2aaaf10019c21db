package controllers

import (
	"github.com/gofiber/fiber/v2"

	"fashionstore/config"
	"fashionstore/utils"
)

type loginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var in loginInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "username and password are required"})
	}

	username, password := config.AdminCredentials()
	if in.Username != username || in.Password != password {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
	}

	if err := h.Session.SetLoggedIn(c.Context(), true); err != nil {
		return fail(c, err)
	}

	token, err := utils.GenerateJWTToken(in.Username)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to generate token"})
	}
	utils.SetJWTCookie(c, token)

	h.Log.WithField("username", in.Username).Info("login")

	return c.JSON(fiber.Map{
		"message": "login successful",
		"token":   token,
	})
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	if err := h.Session.SetLoggedIn(c.Context(), false); err != nil {
		return fail(c, err)
	}
	utils.ClearJWTCookie(c)

	return c.JSON(fiber.Map{"message": "logged out"})
}
