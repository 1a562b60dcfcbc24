package model

import (
	"go-pos-ledger/pkg/apperror"

	"github.com/shopspring/decimal"
)

type LoanStatus string

const (
	LoanActive    LoanStatus = "Active"
	LoanOverdue   LoanStatus = "Overdue"
	LoanCompleted LoanStatus = "Completed"
)

// LoanStatuses lists every status in report order
var LoanStatuses = []LoanStatus{LoanActive, LoanOverdue, LoanCompleted}

func (s LoanStatus) Valid() bool {
	switch s {
	case LoanActive, LoanOverdue, LoanCompleted:
		return true
	}
	return false
}

var (
	ErrAllPaymentsMade     = apperror.BusinessRule("All payments for this loan have already been made")
	ErrInvalidLoanStatus   = apperror.Validation("Invalid status")
	ErrPaymentsExceedTotal = apperror.Validation("Payments made cannot exceed total payments")
	ErrNegativePayments    = apperror.Validation("Payments made cannot be negative")
	ErrInvalidTotal        = apperror.Validation("Total payments must be at least 1")
)

// Loan is a customer credit line repaid in a fixed number of installments.
// Status is set by callers; only payment completion changes it automatically.
type Loan struct {
	ID            int             `json:"id"`
	CustomerName  string          `json:"customerName"`
	Amount        decimal.Decimal `json:"amount"`
	IssuedDate    string          `json:"issuedDate"`
	DueDate       string          `json:"dueDate"`
	Status        LoanStatus      `json:"status"`
	PaymentsMade  int             `json:"paymentsMade"`
	TotalPayments int             `json:"totalPayments"`
	InterestRate  decimal.Decimal `json:"interestRate"`
	Phone         string          `json:"phone"`
	Notes         string          `json:"notes"`
}

// Outstanding is the interest-free remaining principal.
// Completed loans owe nothing.
func (l Loan) Outstanding() decimal.Decimal {
	if l.Status == LoanCompleted || l.TotalPayments <= 0 {
		return decimal.Zero
	}
	remaining := decimal.NewFromInt(int64(l.TotalPayments - l.PaymentsMade))
	return l.Amount.Mul(remaining).Div(decimal.NewFromInt(int64(l.TotalPayments)))
}

// TotalWithInterest is amount * (1 + interestRate/100)
func (l Loan) TotalWithInterest() decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(l.InterestRate.Div(decimal.NewFromInt(100)))
	return l.Amount.Mul(factor)
}

// InstallmentAmount splits the interest-inclusive total evenly
func (l Loan) InstallmentAmount() decimal.Decimal {
	if l.TotalPayments <= 0 {
		return decimal.Zero
	}
	return l.TotalWithInterest().Div(decimal.NewFromInt(int64(l.TotalPayments)))
}

// RemainingWithInterest is what the installment schedule still expects.
// It is independent of Outstanding and the two are not meant to agree.
func (l Loan) RemainingWithInterest() decimal.Decimal {
	paid := l.InstallmentAmount().Mul(decimal.NewFromInt(int64(l.PaymentsMade)))
	return l.TotalWithInterest().Sub(paid)
}

// RecordInstallment returns the loan with one more installment paid
func (l Loan) RecordInstallment() (Loan, error) {
	if l.PaymentsMade >= l.TotalPayments {
		return l, ErrAllPaymentsMade
	}
	l.PaymentsMade++
	if l.PaymentsMade == l.TotalPayments {
		l.Status = LoanCompleted
	}
	return l, nil
}

// Installment is one row of a loan's repayment schedule
type Installment struct {
	Number int             `json:"number"`
	Amount decimal.Decimal `json:"amount"`
	Paid   bool            `json:"paid"`
}

type LoanSchedule struct {
	LoanID            int             `json:"loanId"`
	TotalWithInterest decimal.Decimal `json:"totalWithInterest"`
	PerPayment        decimal.Decimal `json:"perPayment"`
	Remaining         decimal.Decimal `json:"remaining"`
	Installments      []Installment   `json:"installments"`
}

func (l Loan) Schedule() LoanSchedule {
	per := l.InstallmentAmount()
	rows := make([]Installment, 0, l.TotalPayments)
	for i := 1; i <= l.TotalPayments; i++ {
		rows = append(rows, Installment{Number: i, Amount: per, Paid: i <= l.PaymentsMade})
	}
	return LoanSchedule{
		LoanID:            l.ID,
		TotalWithInterest: l.TotalWithInterest(),
		PerPayment:        per,
		Remaining:         l.RemainingWithInterest(),
		Installments:      rows,
	}
}

// LoanStats are the dashboard counters for the loans page
type LoanStats struct {
	ActiveLoans      int             `json:"activeLoans"`
	OverdueLoans     int             `json:"overdueLoans"`
	CompletedLoans   int             `json:"completedLoans"`
	TotalOutstanding decimal.Decimal `json:"totalOutstanding"`
}

func ComputeLoanStats(loans []Loan) LoanStats {
	stats := LoanStats{TotalOutstanding: decimal.Zero}
	for _, l := range loans {
		switch l.Status {
		case LoanActive:
			stats.ActiveLoans++
		case LoanOverdue:
			stats.OverdueLoans++
		case LoanCompleted:
			stats.CompletedLoans++
		}
		stats.TotalOutstanding = stats.TotalOutstanding.Add(l.Outstanding())
	}
	return stats
}

// LoanPatch is a partial loan update. Empty or zero values for the
// identifying and numeric fields mean "keep"; paymentsMade, phone and notes
// apply whenever they are present.
type LoanPatch struct {
	CustomerName  *string          `json:"customerName"`
	Amount        *decimal.Decimal `json:"amount"`
	IssuedDate    *string          `json:"issuedDate"`
	DueDate       *string          `json:"dueDate"`
	Status        *LoanStatus      `json:"status"`
	PaymentsMade  *Int             `json:"paymentsMade"`
	TotalPayments *Int             `json:"totalPayments"`
	InterestRate  *decimal.Decimal `json:"interestRate"`
	Phone         *string          `json:"phone"`
	Notes         *string          `json:"notes"`
}

// Apply merges the patch into l and returns the result. The loan invariant
// (paymentsMade <= totalPayments, Completed when equal) is enforced here.
func (p LoanPatch) Apply(l Loan) (Loan, error) {
	if p.CustomerName != nil && *p.CustomerName != "" {
		l.CustomerName = *p.CustomerName
	}
	if p.Amount != nil && !p.Amount.IsZero() {
		l.Amount = *p.Amount
	}
	if p.IssuedDate != nil && *p.IssuedDate != "" {
		l.IssuedDate = *p.IssuedDate
	}
	if p.DueDate != nil && *p.DueDate != "" {
		l.DueDate = *p.DueDate
	}
	if p.Status != nil && *p.Status != "" {
		if !p.Status.Valid() {
			return l, ErrInvalidLoanStatus
		}
		l.Status = *p.Status
	}
	if p.PaymentsMade != nil {
		l.PaymentsMade = int(*p.PaymentsMade)
	}
	if p.TotalPayments != nil && *p.TotalPayments != 0 {
		l.TotalPayments = int(*p.TotalPayments)
	}
	if p.InterestRate != nil && !p.InterestRate.IsZero() {
		l.InterestRate = *p.InterestRate
	}
	if p.Phone != nil {
		l.Phone = *p.Phone
	}
	if p.Notes != nil {
		l.Notes = *p.Notes
	}

	if l.PaymentsMade < 0 {
		return l, ErrNegativePayments
	}
	if l.TotalPayments < 1 {
		return l, ErrInvalidTotal
	}
	if l.PaymentsMade > l.TotalPayments {
		return l, ErrPaymentsExceedTotal
	}
	if l.PaymentsMade == l.TotalPayments {
		l.Status = LoanCompleted
	}
	return l, nil
}
