package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"fashionstore/store"
)

func errStatus(err error) int {
	switch {
	case errors.Is(err, store.ErrProductNotFound),
		errors.Is(err, store.ErrCustomerNotFound),
		errors.Is(err, store.ErrSaleNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, store.ErrInsufficientStock),
		errors.Is(err, store.ErrInvalidInput):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func fail(c *fiber.Ctx, err error) error {
	return c.Status(errStatus(err)).JSON(fiber.Map{"error": err.Error()})
}
