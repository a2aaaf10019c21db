package controllers

import (
	"bytes"
	"time"

	"github.com/gofiber/fiber/v2"

	"fashionstore/reports"
)

func (h *Handler) GetDebtors(c *fiber.Ctx) error {
	debtors, total, err := h.Reports.Debtors(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"debtors":   debtors,
		"totalDebt": total,
	})
}

// GetDebtorSales lists a customer's fiado sales together with their debt.
func (h *Handler) GetDebtorSales(c *fiber.Ctx) error {
	customerID := c.Params("customer_id")

	if _, err := h.Customers.Get(c.Context(), customerID); err != nil {
		return fail(c, err)
	}

	creditSales, err := h.Reports.CustomerCreditSales(c.Context(), customerID)
	if err != nil {
		return fail(c, err)
	}
	debt, err := h.Reports.CustomerDebt(c.Context(), customerID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"sales": creditSales,
		"debt":  debt,
	})
}

func (h *Handler) SettleDebt(c *fiber.Ctx) error {
	if err := h.Engine.SettleDebt(c.Context(), c.Params("customer_id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "customer marked as paid"})
}

func (h *Handler) ExportDebtors(c *fiber.Ctx) error {
	debtors, _, err := h.Reports.Debtors(c.Context())
	if err != nil {
		return fail(c, err)
	}

	var buf bytes.Buffer
	if err := reports.DebtorsCSV(&buf, debtors); err != nil {
		return fail(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="devedores-`+time.Now().Format("2006-01-02")+`.csv"`)
	return c.SendString(buf.String())
}
