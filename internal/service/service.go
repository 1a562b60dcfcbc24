package service

import (
	"errors"
	"time"

	"go-pos-ledger/internal/model"
	"go-pos-ledger/internal/report"
	"go-pos-ledger/internal/repository"
	"go-pos-ledger/pkg/apperror"
	"go-pos-ledger/pkg/validator"
)

var (
	ErrLoanNotFound    = apperror.NotFound("Loan not found")
	ErrPaymentNotFound = apperror.NotFound("Payment not found")
	ErrSaleNotFound    = apperror.NotFound("Sale not found")
	ErrProductNotFound = apperror.NotFound("Product not found")
	ErrUserNotFound    = apperror.NotFound("User not found")

	ErrRequiredFields      = apperror.Validation(validator.MsgRequiredFieldsMissing)
	ErrBarcodeExists       = apperror.Validation("Barcode already exists")
	ErrEmailExists         = apperror.Validation("Email already in use")
	ErrNewPasswordRequired = apperror.Validation("New password is required")
	ErrDateRangeRequired   = apperror.Validation("Start date and end date are required")
	ErrInvalidStatus       = model.ErrInvalidUserStatus
	ErrInvalidDateRange    = report.ErrInvalidDateRange

	ErrAllPaymentsMade = model.ErrAllPaymentsMade
)

// Publisher receives a change event after every successful mutation
type Publisher interface {
	Publish(eventType, action string, data any)
}

// events wraps an optional Publisher
type events struct {
	p Publisher
}

func (e events) emit(eventType, action string, data any) {
	if e.p != nil {
		e.p.Publish(eventType, action, data)
	}
}

// translate maps repository errors onto the caller-facing ones
func translate(err, notFound, duplicate error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrRecordNotFound):
		return notFound
	case duplicate != nil && errors.Is(err, repository.ErrDuplicate):
		return duplicate
	}
	return err
}

func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
