package handler

import (
	"fmt"
	"time"

	"go-pos-ledger/internal/report"
	"go-pos-ledger/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ReportHandler struct {
	reportService service.ReportService
	log           *logrus.Logger
}

func NewReportHandler(reportService service.ReportService, log *logrus.Logger) *ReportHandler {
	return &ReportHandler{reportService: reportService, log: log}
}

// GetSalesReport groups sales by period (daily, weekly, monthly, yearly)
// GET /api/reports/sales?period=monthly
func (h *ReportHandler) GetSalesReport(c *fiber.Ctx) error {
	return c.JSON(h.reportService.SalesReport(c.Query("period")))
}

// GET /api/reports/loans
func (h *ReportHandler) GetLoansReport(c *fiber.Ctx) error {
	return c.JSON(h.reportService.LoansReport())
}

// GET /api/reports/payments?startDate=...&endDate=...
func (h *ReportHandler) GetPaymentsReport(c *fiber.Ctx) error {
	rep, err := h.reportService.PaymentsReport(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return fail(c, h.log, "GetPaymentsReport", err)
	}
	return c.JSON(rep)
}

// GET /api/reports/users
func (h *ReportHandler) GetUsersReport(c *fiber.Ctx) error {
	return c.JSON(h.reportService.UsersReport())
}

// ExportReport downloads one report (or "all") as an xlsx workbook
// GET /api/reports/:kind/export
func (h *ReportHandler) ExportReport(c *fiber.Ctx) error {
	var q service.ReportQuery
	if err := c.QueryParser(&q); err != nil {
		return fail(c, h.log, "ExportReport", ErrInvalidQuery)
	}

	kind := c.Params("kind")
	data, err := h.reportService.Export(kind, q)
	if err != nil {
		return fail(c, h.log, "ExportReport", err)
	}

	filename := fmt.Sprintf("%s-report-%s.xlsx", kind, time.Now().UTC().Format("20060102"))
	c.Set(fiber.HeaderContentType, report.XLSXContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}
