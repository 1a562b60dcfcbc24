package repository

import "go-pos-ledger/internal/model"

type LoanRepository interface {
	FindAll() []model.Loan
	FindByID(id int) (model.Loan, error)
	Create(loan model.Loan) (model.Loan, error)
	Update(loan model.Loan) (model.Loan, error)
	Mutate(id int, fn func(model.Loan) (model.Loan, error)) (model.Loan, error)
	Delete(id int) error
	SeedDefaults()
}

type loanRepo struct {
	t *table[model.Loan]
}

func NewLoanRepo() LoanRepository {
	return &loanRepo{t: newTable(
		func(l model.Loan) int { return l.ID },
		func(l *model.Loan, id int) { l.ID = id },
	)}
}

func (r *loanRepo) FindAll() []model.Loan {
	return r.t.all()
}

func (r *loanRepo) FindByID(id int) (model.Loan, error) {
	return r.t.find(id)
}

func (r *loanRepo) Create(loan model.Loan) (model.Loan, error) {
	return r.t.insert(loan)
}

func (r *loanRepo) Update(loan model.Loan) (model.Loan, error) {
	return r.t.mutate(loan.ID, func(model.Loan) (model.Loan, error) { return loan, nil })
}

func (r *loanRepo) Mutate(id int, fn func(model.Loan) (model.Loan, error)) (model.Loan, error) {
	return r.t.mutate(id, fn)
}

func (r *loanRepo) Delete(id int) error {
	return r.t.remove(id)
}

func (r *loanRepo) SeedDefaults() {
	r.t.reset(model.DefaultLoans())
}
