package repository

import (
	"time"

	"go-pos-ledger/internal/model"
)

type PaymentRepository interface {
	FindAll() []model.Payment
	FindByID(id int) (model.Payment, error)
	FindByDateRange(start, end time.Time) []model.Payment
	Create(payment model.Payment) (model.Payment, error)
	Update(payment model.Payment) (model.Payment, error)
	Mutate(id int, fn func(model.Payment) (model.Payment, error)) (model.Payment, error)
	Delete(id int) error
	SeedDefaults()
}

type paymentRepo struct {
	t *table[model.Payment]
}

func NewPaymentRepo() PaymentRepository {
	return &paymentRepo{t: newTable(
		func(p model.Payment) int { return p.ID },
		func(p *model.Payment, id int) { p.ID = id },
	)}
}

func (r *paymentRepo) FindAll() []model.Payment {
	return r.t.all()
}

func (r *paymentRepo) FindByID(id int) (model.Payment, error) {
	return r.t.find(id)
}

// FindByDateRange returns payments dated within [start, end], in store order
func (r *paymentRepo) FindByDateRange(start, end time.Time) []model.Payment {
	return r.t.filter(func(p model.Payment) bool { return p.InRange(start, end) })
}

func (r *paymentRepo) Create(payment model.Payment) (model.Payment, error) {
	return r.t.insert(payment)
}

func (r *paymentRepo) Update(payment model.Payment) (model.Payment, error) {
	return r.t.mutate(payment.ID, func(model.Payment) (model.Payment, error) { return payment, nil })
}

func (r *paymentRepo) Mutate(id int, fn func(model.Payment) (model.Payment, error)) (model.Payment, error) {
	return r.t.mutate(id, fn)
}

func (r *paymentRepo) Delete(id int) error {
	return r.t.remove(id)
}

func (r *paymentRepo) SeedDefaults() {
	r.t.reset(model.DefaultPayments())
}
