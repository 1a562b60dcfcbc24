package service

import (
	"go-pos-ledger/internal/model"
	"go-pos-ledger/internal/repository"
	"go-pos-ledger/pkg/validator"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type LoanService interface {
	GetAllLoans() []model.Loan
	GetLoanStats() model.LoanStats
	GetLoanByID(id int) (model.Loan, error)
	CreateLoan(req *CreateLoanRequest) (model.Loan, error)
	UpdateLoan(id int, patch *model.LoanPatch) (model.Loan, error)
	DeleteLoan(id int) error
	RecordPayment(id int, req *RecordPaymentRequest) (model.Loan, error)
	GetPaymentSchedule(id int) (model.LoanSchedule, error)
}

type CreateLoanRequest struct {
	CustomerName  string          `json:"customerName" validate:"required"`
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	IssuedDate    string          `json:"issuedDate" validate:"required"`
	DueDate       string          `json:"dueDate" validate:"required"`
	TotalPayments model.Int       `json:"totalPayments" validate:"required,min=1"`
	InterestRate  decimal.Decimal `json:"interestRate" validate:"required"`
	Phone         string          `json:"phone"`
	Notes         string          `json:"notes"`
}

// RecordPaymentRequest carries the amount the customer handed over.
// The amount is logged only; every recorded payment counts as one installment.
type RecordPaymentRequest struct {
	Amount *decimal.Decimal `json:"amount"`
}

type loanService struct {
	loanRepo repository.LoanRepository
	events   events
	log      *logrus.Logger
}

func NewLoanService(loanRepo repository.LoanRepository, publisher Publisher, log *logrus.Logger) LoanService {
	return &loanService{
		loanRepo: loanRepo,
		events:   events{publisher},
		log:      log,
	}
}

func (s *loanService) GetAllLoans() []model.Loan {
	return s.loanRepo.FindAll()
}

func (s *loanService) GetLoanStats() model.LoanStats {
	return model.ComputeLoanStats(s.loanRepo.FindAll())
}

func (s *loanService) GetLoanByID(id int) (model.Loan, error) {
	loan, err := s.loanRepo.FindByID(id)
	return loan, translate(err, ErrLoanNotFound, nil)
}

func (s *loanService) CreateLoan(req *CreateLoanRequest) (model.Loan, error) {
	if err := validator.Check(req); err != nil {
		return model.Loan{}, err
	}

	loan, err := s.loanRepo.Create(model.Loan{
		CustomerName:  req.CustomerName,
		Amount:        req.Amount,
		IssuedDate:    req.IssuedDate,
		DueDate:       req.DueDate,
		Status:        model.LoanActive,
		PaymentsMade:  0,
		TotalPayments: int(req.TotalPayments),
		InterestRate:  req.InterestRate,
		Phone:         req.Phone,
		Notes:         req.Notes,
	})
	if err != nil {
		return model.Loan{}, err
	}

	s.log.WithFields(logrus.Fields{"loanId": loan.ID, "customer": loan.CustomerName}).Info("loan created")
	s.events.emit("loan", "created", loan)
	return loan, nil
}

func (s *loanService) UpdateLoan(id int, patch *model.LoanPatch) (model.Loan, error) {
	if patch == nil {
		patch = &model.LoanPatch{}
	}
	loan, err := s.loanRepo.Mutate(id, patch.Apply)
	if err != nil {
		return model.Loan{}, translate(err, ErrLoanNotFound, nil)
	}

	s.log.WithFields(logrus.Fields{"loanId": id, "status": loan.Status}).Info("loan updated")
	s.events.emit("loan", "updated", loan)
	return loan, nil
}

func (s *loanService) DeleteLoan(id int) error {
	if err := s.loanRepo.Delete(id); err != nil {
		return translate(err, ErrLoanNotFound, nil)
	}
	s.log.WithField("loanId", id).Info("loan deleted")
	s.events.emit("loan", "deleted", map[string]int{"id": id})
	return nil
}

func (s *loanService) RecordPayment(id int, req *RecordPaymentRequest) (model.Loan, error) {
	loan, err := s.loanRepo.Mutate(id, model.Loan.RecordInstallment)
	if err != nil {
		return model.Loan{}, translate(err, ErrLoanNotFound, nil)
	}

	fields := logrus.Fields{"loanId": id, "paymentsMade": loan.PaymentsMade, "status": loan.Status}
	if req != nil && req.Amount != nil {
		fields["amount"] = req.Amount.String()
	}
	s.log.WithFields(fields).Info("loan payment recorded")
	s.events.emit("loan", "payment_recorded", loan)
	return loan, nil
}

func (s *loanService) GetPaymentSchedule(id int) (model.LoanSchedule, error) {
	loan, err := s.GetLoanByID(id)
	if err != nil {
		return model.LoanSchedule{}, err
	}
	return loan.Schedule(), nil
}
