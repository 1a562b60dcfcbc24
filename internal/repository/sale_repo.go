package repository

import "go-pos-ledger/internal/model"

type SaleRepository interface {
	FindAll() []model.Sale
	FindByID(id int) (model.Sale, error)
	Create(sale model.Sale) (model.Sale, error)
	Update(sale model.Sale) (model.Sale, error)
	Mutate(id int, fn func(model.Sale) (model.Sale, error)) (model.Sale, error)
	Delete(id int) error
	SeedDefaults()
}

type saleRepo struct {
	t *table[model.Sale]
}

func NewSaleRepo() SaleRepository {
	t := newTable(
		func(s model.Sale) int { return s.ID },
		func(s *model.Sale, id int) { s.ID = id },
	)
	t.clone = model.Sale.Clone
	return &saleRepo{t: t}
}

func (r *saleRepo) FindAll() []model.Sale {
	return r.t.all()
}

func (r *saleRepo) FindByID(id int) (model.Sale, error) {
	return r.t.find(id)
}

func (r *saleRepo) Create(sale model.Sale) (model.Sale, error) {
	return r.t.insert(sale)
}

func (r *saleRepo) Update(sale model.Sale) (model.Sale, error) {
	return r.t.mutate(sale.ID, func(model.Sale) (model.Sale, error) { return sale, nil })
}

func (r *saleRepo) Mutate(id int, fn func(model.Sale) (model.Sale, error)) (model.Sale, error) {
	return r.t.mutate(id, fn)
}

func (r *saleRepo) Delete(id int) error {
	return r.t.remove(id)
}

func (r *saleRepo) SeedDefaults() {
	r.t.reset(model.DefaultSales())
}
