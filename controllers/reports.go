package controllers

import (
	"bytes"
	"time"

	"github.com/gofiber/fiber/v2"

	"fashionstore/reports"
)

func parseFilter(c *fiber.Ctx) (reports.Filter, error) {
	f := reports.Filter{
		Period: reports.Period(c.Query("filter", string(reports.PeriodToday))),
		Start:  c.Query("start"),
		End:    c.Query("end"),
	}
	if !reports.ValidPeriod(f.Period) {
		return reports.Filter{}, fiber.NewError(fiber.StatusBadRequest, "unknown filter: "+string(f.Period))
	}
	return f, nil
}

func (h *Handler) GetReport(c *fiber.Ctx) error {
	filter, err := parseFilter(c)
	if err != nil {
		return err
	}

	summary, err := h.Reports.Summary(c.Context(), filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(summary)
}

func (h *Handler) ExportReport(c *fiber.Ctx) error {
	filter, err := parseFilter(c)
	if err != nil {
		return err
	}

	sales, err := h.Reports.SalesInPeriod(c.Context(), filter)
	if err != nil {
		return fail(c, err)
	}

	var buf bytes.Buffer
	if err := reports.SalesCSV(&buf, sales); err != nil {
		return fail(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="relatorio-vendas-`+time.Now().Format("2006-01-02")+`.csv"`)
	return c.SendString(buf.String())
}

func (h *Handler) GetDashboard(c *fiber.Ctx) error {
	stats, err := h.Reports.DashboardStats(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(stats)
}
