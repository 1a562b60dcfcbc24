package service

import (
	"time"

	"go-pos-ledger/internal/model"
	"go-pos-ledger/internal/report"
	"go-pos-ledger/internal/repository"
	"go-pos-ledger/pkg/validator"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type PaymentService interface {
	GetAllPayments() []model.Payment
	GetPaymentsByDateRange(startDate, endDate string) ([]model.Payment, error)
	GetPaymentByID(id int) (model.Payment, error)
	CreatePayment(req *CreatePaymentRequest) (model.Payment, error)
	UpdatePayment(id int, patch *model.PaymentPatch) (model.Payment, error)
	DeletePayment(id int) error
}

type CreatePaymentRequest struct {
	Amount     decimal.Decimal  `json:"amount" validate:"required"`
	Method     string           `json:"method" validate:"required"`
	RelatedTo  *model.RelatedTo `json:"relatedTo" validate:"required"`
	ReceivedBy int              `json:"receivedBy" validate:"required"`
	Notes      string           `json:"notes"`
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	events      events
	log         *logrus.Logger
	now         func() time.Time
}

func NewPaymentService(paymentRepo repository.PaymentRepository, publisher Publisher, log *logrus.Logger) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		events:      events{publisher},
		log:         log,
		now:         utcNow,
	}
}

func (s *paymentService) GetAllPayments() []model.Payment {
	return s.paymentRepo.FindAll()
}

func (s *paymentService) GetPaymentsByDateRange(startDate, endDate string) ([]model.Payment, error) {
	if startDate == "" || endDate == "" {
		return nil, ErrDateRangeRequired
	}
	window, err := report.ParseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.paymentRepo.FindByDateRange(window.Start, window.End), nil
}

func (s *paymentService) GetPaymentByID(id int) (model.Payment, error) {
	payment, err := s.paymentRepo.FindByID(id)
	return payment, translate(err, ErrPaymentNotFound, nil)
}

func (s *paymentService) CreatePayment(req *CreatePaymentRequest) (model.Payment, error) {
	if err := validator.Check(req); err != nil {
		return model.Payment{}, err
	}

	payment, err := s.paymentRepo.Create(model.Payment{
		Amount:     req.Amount,
		Method:     req.Method,
		RelatedTo:  *req.RelatedTo,
		Date:       s.now(),
		ReceivedBy: req.ReceivedBy,
		Notes:      req.Notes,
	})
	if err != nil {
		return model.Payment{}, err
	}

	s.log.WithFields(logrus.Fields{
		"paymentId": payment.ID,
		"method":    payment.Method,
		"related":   payment.RelatedTo.Type,
	}).Info("payment created")
	s.events.emit("payment", "created", payment)
	return payment, nil
}

func (s *paymentService) UpdatePayment(id int, patch *model.PaymentPatch) (model.Payment, error) {
	if patch == nil {
		patch = &model.PaymentPatch{}
	}
	if err := validator.Check(patch); err != nil {
		return model.Payment{}, err
	}

	payment, err := s.paymentRepo.Mutate(id, func(p model.Payment) (model.Payment, error) {
		return patch.Apply(p), nil
	})
	if err != nil {
		return model.Payment{}, translate(err, ErrPaymentNotFound, nil)
	}

	s.log.WithField("paymentId", id).Info("payment updated")
	s.events.emit("payment", "updated", payment)
	return payment, nil
}

func (s *paymentService) DeletePayment(id int) error {
	if err := s.paymentRepo.Delete(id); err != nil {
		return translate(err, ErrPaymentNotFound, nil)
	}
	s.log.WithField("paymentId", id).Info("payment deleted")
	s.events.emit("payment", "deleted", map[string]int{"id": id})
	return nil
}
