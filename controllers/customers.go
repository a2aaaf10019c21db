package controllers

import (
	"github.com/gofiber/fiber/v2"

	"fashionstore/models"
)

func (h *Handler) GetCustomers(c *fiber.Ctx) error {
	customers, err := h.Customers.List(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(customers)
}

func (h *Handler) GetCustomerByID(c *fiber.Ctx) error {
	customer, err := h.Customers.Get(c.Context(), c.Params("customer_id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(customer)
}

func (h *Handler) CreateCustomer(c *fiber.Ctx) error {
	var in models.CustomerInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	customer, err := h.Customers.Create(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

func (h *Handler) UpdateCustomer(c *fiber.Ctx) error {
	var in models.CustomerInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	customer, err := h.Customers.Update(c.Context(), c.Params("customer_id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(customer)
}

func (h *Handler) DeleteCustomer(c *fiber.Ctx) error {
	if err := h.Customers.Delete(c.Context(), c.Params("customer_id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Customer deleted successfully"})
}

// ToggleCustomerStatus flips paid <-> pending from the customer roster.
func (h *Handler) ToggleCustomerStatus(c *fiber.Ctx) error {
	customer, err := h.Customers.ToggleStatus(c.Context(), c.Params("customer_id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(customer)
}
