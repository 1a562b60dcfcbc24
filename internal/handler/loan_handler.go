package handler

import (
	"go-pos-ledger/internal/model"
	"go-pos-ledger/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type LoanHandler struct {
	loanService service.LoanService
	log         *logrus.Logger
}

func NewLoanHandler(loanService service.LoanService, log *logrus.Logger) *LoanHandler {
	return &LoanHandler{loanService: loanService, log: log}
}

// GetLoans returns every loan
// GET /api/loans
func (h *LoanHandler) GetLoans(c *fiber.Ctx) error {
	return c.JSON(h.loanService.GetAllLoans())
}

// GetLoanStats returns the dashboard totals
// GET /api/loans/stats
func (h *LoanHandler) GetLoanStats(c *fiber.Ctx) error {
	return c.JSON(h.loanService.GetLoanStats())
}

// GET /api/loans/:id
func (h *LoanHandler) GetLoan(c *fiber.Ctx) error {
	id, err := parseID(c, service.ErrLoanNotFound)
	if err != nil {
		return fail(c, h.log, "GetLoan", err)
	}
	loan, err := h.loanService.GetLoanByID(id)
	if err != nil {
		return fail(c, h.log, "GetLoan", err)
	}
	return c.JSON(loan)
}

// POST /api/loans
func (h *LoanHandler) CreateLoan(c *fiber.Ctx) error {
	var req service.CreateLoanRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, h.log, "CreateLoan", err)
	}
	loan, err := h.loanService.CreateLoan(&req)
	if err != nil {
		return fail(c, h.log, "CreateLoan", err)
	}
	return c.Status(fiber.StatusCreated).JSON(loan)
}

// PUT /api/loans/:id
func (h *LoanHandler) UpdateLoan(c *fiber.Ctx) error {
	id, err := parseID(c, service.ErrLoanNotFound)
	if err != nil {
		return fail(c, h.log, "UpdateLoan", err)
	}
	var patch model.LoanPatch
	if err := parseBody(c, &patch); err != nil {
		return fail(c, h.log, "UpdateLoan", err)
	}
	loan, err := h.loanService.UpdateLoan(id, &patch)
	if err != nil {
		return fail(c, h.log, "UpdateLoan", err)
	}
	return c.JSON(loan)
}

// DELETE /api/loans/:id
func (h *LoanHandler) DeleteLoan(c *fiber.Ctx) error {
	id, err := parseID(c, service.ErrLoanNotFound)
	if err != nil {
		return fail(c, h.log, "DeleteLoan", err)
	}
	if err := h.loanService.DeleteLoan(id); err != nil {
		return fail(c, h.log, "DeleteLoan", err)
	}
	return message(c, "Loan successfully deleted")
}

// RecordPayment counts one installment against the loan
// POST /api/loans/:id/payment
func (h *LoanHandler) RecordPayment(c *fiber.Ctx) error {
	id, err := parseID(c, service.ErrLoanNotFound)
	if err != nil {
		return fail(c, h.log, "RecordPayment", err)
	}
	var req service.RecordPaymentRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, h.log, "RecordPayment", err)
	}
	loan, err := h.loanService.RecordPayment(id, &req)
	if err != nil {
		return fail(c, h.log, "RecordPayment", err)
	}
	return c.JSON(fiber.Map{
		"message": "Payment recorded successfully",
		"loan":    loan,
	})
}

// GET /api/loans/:id/schedule
func (h *LoanHandler) GetPaymentSchedule(c *fiber.Ctx) error {
	id, err := parseID(c, service.ErrLoanNotFound)
	if err != nil {
		return fail(c, h.log, "GetPaymentSchedule", err)
	}
	schedule, err := h.loanService.GetPaymentSchedule(id)
	if err != nil {
		return fail(c, h.log, "GetPaymentSchedule", err)
	}
	return c.JSON(schedule)
}
