package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RelatedKind names the entity a payment settles
type RelatedKind string

const (
	RelatedLoan RelatedKind = "Loan"
	RelatedSale RelatedKind = "Sale"
)

// RelatedTo points at a loan or sale by id. The target is never looked up.
type RelatedTo struct {
	Type RelatedKind `json:"type" validate:"required,oneof=Loan Sale"`
	ID   int         `json:"id"`
}

type Payment struct {
	ID         int             `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
	RelatedTo  RelatedTo       `json:"relatedTo"`
	Date       time.Time       `json:"date"`
	ReceivedBy int             `json:"receivedBy"`
	Notes      string          `json:"notes"`
}

// InRange reports whether the payment date lies in [start, end]
func (p Payment) InRange(start, end time.Time) bool {
	return !p.Date.Before(start) && !p.Date.After(end)
}

// PaymentPatch is a partial payment update; zero values mean "keep"
// except for notes, which applies whenever present.
type PaymentPatch struct {
	Amount     *decimal.Decimal `json:"amount"`
	Method     *string          `json:"method"`
	RelatedTo  *RelatedTo       `json:"relatedTo"`
	ReceivedBy *int             `json:"receivedBy"`
	Notes      *string          `json:"notes"`
}

func (p PaymentPatch) Apply(pay Payment) Payment {
	if p.Amount != nil && !p.Amount.IsZero() {
		pay.Amount = *p.Amount
	}
	if p.Method != nil && *p.Method != "" {
		pay.Method = *p.Method
	}
	if p.RelatedTo != nil {
		pay.RelatedTo = *p.RelatedTo
	}
	if p.ReceivedBy != nil && *p.ReceivedBy != 0 {
		pay.ReceivedBy = *p.ReceivedBy
	}
	if p.Notes != nil {
		pay.Notes = *p.Notes
	}
	return pay
}
