package repository

import "go-pos-ledger/internal/model"

// ProductRepository keeps barcodes unique: Create and Mutate fail with
// ErrDuplicate when another product already holds the barcode.
type ProductRepository interface {
	FindAll() []model.Product
	FindByID(id int) (model.Product, error)
	FindByBarcode(barcode string) (model.Product, error)
	Create(product model.Product) (model.Product, error)
	Update(product model.Product) (model.Product, error)
	Mutate(id int, fn func(model.Product) (model.Product, error)) (model.Product, error)
	Delete(id int) error
	SeedDefaults()
}

type productRepo struct {
	t *table[model.Product]
}

func NewProductRepo() ProductRepository {
	t := newTable(
		func(p model.Product) int { return p.ID },
		func(p *model.Product, id int) { p.ID = id },
	)
	t.key = func(p model.Product) string { return p.Barcode }
	return &productRepo{t: t}
}

func (r *productRepo) FindAll() []model.Product {
	return r.t.all()
}

func (r *productRepo) FindByID(id int) (model.Product, error) {
	return r.t.find(id)
}

func (r *productRepo) FindByBarcode(barcode string) (model.Product, error) {
	found := r.t.filter(func(p model.Product) bool { return p.Barcode == barcode })
	if len(found) == 0 {
		return model.Product{}, ErrRecordNotFound
	}
	return found[0], nil
}

func (r *productRepo) Create(product model.Product) (model.Product, error) {
	return r.t.insert(product)
}

func (r *productRepo) Update(product model.Product) (model.Product, error) {
	return r.t.mutate(product.ID, func(model.Product) (model.Product, error) { return product, nil })
}

func (r *productRepo) Mutate(id int, fn func(model.Product) (model.Product, error)) (model.Product, error) {
	return r.t.mutate(id, fn)
}

func (r *productRepo) Delete(id int) error {
	return r.t.remove(id)
}

func (r *productRepo) SeedDefaults() {
	r.t.reset(model.DefaultProducts())
}
