package model

import "github.com/shopspring/decimal"

type Product struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Barcode  string          `json:"barcode"`
}

// ProductPatch is a partial product update; empty values mean "keep"
type ProductPatch struct {
	Name     *string          `json:"name"`
	Category *string          `json:"category"`
	Price    *decimal.Decimal `json:"price"`
	Barcode  *string          `json:"barcode"`
}

// NewBarcode returns the barcode the patch sets, or "" when it keeps the old one
func (p ProductPatch) NewBarcode() string {
	if p.Barcode == nil {
		return ""
	}
	return *p.Barcode
}

func (p ProductPatch) Apply(prod Product) Product {
	if p.Name != nil && *p.Name != "" {
		prod.Name = *p.Name
	}
	if p.Category != nil && *p.Category != "" {
		prod.Category = *p.Category
	}
	if p.Price != nil && !p.Price.IsZero() {
		prod.Price = *p.Price
	}
	if b := p.NewBarcode(); b != "" {
		prod.Barcode = b
	}
	return prod
}
