package handler

import (
	"go-pos-ledger/internal/model"
	"go-pos-ledger/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PaymentHandler struct {
	paymentService service.PaymentService
	log            *logrus.Logger
}

func NewPaymentHandler(paymentService service.PaymentService, log *logrus.Logger) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, log: log}
}

// GET /api/payments
func (h *PaymentHandler) GetPayments(c *fiber.Ctx) error {
	return c.JSON(h.paymentService.GetAllPayments())
}

// GetPaymentsByDateRange lists payments dated inside [startDate, endDate]
// GET /api/payments/range?startDate=...&endDate=...
func (h *PaymentHandler) GetPaymentsByDateRange(c *fiber.Ctx) error {
	payments, err := h.paymentService.GetPaymentsByDateRange(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return fail(c, h.log, "GetPaymentsByDateRange", err)
	}
	return c.JSON(payments)
}

// GET /api/payments/:id
func (h *PaymentHandler) GetPayment(c *fiber.Ctx) error {
	id, err := parseID(c, service.ErrPaymentNotFound)
	if err != nil {
		return fail(c, h.log, "GetPayment", err)
	}
	payment, err := h.paymentService.GetPaymentByID(id)
	if err != nil {
		return fail(c, h.log, "GetPayment", err)
	}
	return c.JSON(payment)
}

// POST /api/payments
func (h *PaymentHandler) CreatePayment(c *fiber.Ctx) error {
	var req service.CreatePaymentRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, h.log, "CreatePayment", err)
	}
	payment, err := h.paymentService.CreatePayment(&req)
	if err != nil {
		return fail(c, h.log, "CreatePayment", err)
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}

// PUT /api/payments/:id
func (h *PaymentHandler) UpdatePayment(c *fiber.Ctx) error {
	id, err := parseID(c, service.ErrPaymentNotFound)
	if err != nil {
		return fail(c, h.log, "UpdatePayment", err)
	}
	var patch model.PaymentPatch
	if err := parseBody(c, &patch); err != nil {
		return fail(c, h.log, "UpdatePayment", err)
	}
	payment, err := h.paymentService.UpdatePayment(id, &patch)
	if err != nil {
		return fail(c, h.log, "UpdatePayment", err)
	}
	return c.JSON(payment)
}

// DELETE /api/payments/:id
func (h *PaymentHandler) DeletePayment(c *fiber.Ctx) error {
	id, err := parseID(c, service.ErrPaymentNotFound)
	if err != nil {
		return fail(c, h.log, "DeletePayment", err)
	}
	if err := h.paymentService.DeletePayment(id); err != nil {
		return fail(c, h.log, "DeletePayment", err)
	}
	return message(c, "Payment successfully deleted")
}
