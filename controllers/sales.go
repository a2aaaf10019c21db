package controllers

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"fashionstore/models"
	"fashionstore/reports"
)

func (h *Handler) CreateSale(c *fiber.Ctx) error {
	var in models.SaleInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	sale, err := h.Engine.RecordSale(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}

func (h *Handler) GetSales(c *fiber.Ctx) error {
	sales, err := h.Ledger.List(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(sales)
}

func (h *Handler) GetSaleByID(c *fiber.Ctx) error {
	sale, err := h.Ledger.Get(c.Context(), c.Params("sale_id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(sale)
}

// GetSaleReceipt renders the stored sale as a plain-text receipt. The engine
// itself never generates documents; this reads from the ledger after the fact.
func (h *Handler) GetSaleReceipt(c *fiber.Ctx) error {
	sale, err := h.Ledger.Get(c.Context(), c.Params("sale_id"))
	if err != nil {
		return fail(c, err)
	}

	var buf bytes.Buffer
	if err := reports.Receipt(&buf, *sale); err != nil {
		return fail(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return c.SendString(buf.String())
}
