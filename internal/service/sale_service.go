package service

import (
	"errors"
	"strconv"
	"time"

	"go-pos-ledger/internal/model"
	"go-pos-ledger/internal/repository"
	"go-pos-ledger/pkg/validator"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// barcodeAttempts bounds how many successive millisecond stamps are tried
// when a generated barcode collides
const barcodeAttempts = 16

// SaleService covers the checkout: sales and the product catalogue
type SaleService interface {
	GetAllSales() []model.Sale
	GetSalesStats() model.SalesStats
	GetSaleByID(id int) (model.Sale, error)
	CreateSale(req *CreateSaleRequest) (model.Sale, error)
	UpdateSale(id int, patch *model.SalePatch) (model.Sale, error)
	DeleteSale(id int) error

	GetAllProducts() []model.Product
	GetProductByID(id int) (model.Product, error)
	CreateProduct(req *CreateProductRequest) (model.Product, error)
	UpdateProduct(id int, patch *model.ProductPatch) (model.Product, error)
	DeleteProduct(id int) error
}

type CreateSaleRequest struct {
	Items          []model.SaleItem      `json:"items" validate:"required"`
	PaymentMethod  string                `json:"paymentMethod" validate:"required"`
	PaymentDetails *model.PaymentDetails `json:"paymentDetails" validate:"required"`
}

type CreateProductRequest struct {
	Name     string          `json:"name" validate:"required"`
	Category string          `json:"category" validate:"required"`
	Price    decimal.Decimal `json:"price" validate:"required"`
	Barcode  string          `json:"barcode"`
}

type saleService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	events      events
	log         *logrus.Logger
	now         func() time.Time
}

func NewSaleService(saleRepo repository.SaleRepository, productRepo repository.ProductRepository, publisher Publisher, log *logrus.Logger) SaleService {
	return &saleService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		events:      events{publisher},
		log:         log,
		now:         utcNow,
	}
}

func (s *saleService) GetAllSales() []model.Sale {
	return s.saleRepo.FindAll()
}

func (s *saleService) GetSalesStats() model.SalesStats {
	return model.ComputeSalesStats(s.saleRepo.FindAll())
}

func (s *saleService) GetSaleByID(id int) (model.Sale, error) {
	sale, err := s.saleRepo.FindByID(id)
	return sale, translate(err, ErrSaleNotFound, nil)
}

func (s *saleService) CreateSale(req *CreateSaleRequest) (model.Sale, error) {
	if len(req.Items) == 0 || req.PaymentDetails == nil || req.PaymentDetails.IsZero() {
		return model.Sale{}, ErrRequiredFields
	}
	if err := validator.Check(req); err != nil {
		return model.Sale{}, err
	}

	sale := model.Sale{
		PaymentMethod:  req.PaymentMethod,
		PaymentDetails: req.PaymentDetails.Clone(),
		Timestamp:      s.now(),
	}.WithItems(req.Items)

	sale, err := s.saleRepo.Create(sale)
	if err != nil {
		return model.Sale{}, err
	}

	s.log.WithFields(logrus.Fields{
		"saleId": sale.ID,
		"total":  sale.Total.String(),
		"method": sale.PaymentMethod,
	}).Info("sale created")
	s.events.emit("sale", "created", sale)
	return sale, nil
}

func (s *saleService) UpdateSale(id int, patch *model.SalePatch) (model.Sale, error) {
	if patch == nil {
		patch = &model.SalePatch{}
	}
	sale, err := s.saleRepo.Mutate(id, func(existing model.Sale) (model.Sale, error) {
		return patch.Apply(existing), nil
	})
	if err != nil {
		return model.Sale{}, translate(err, ErrSaleNotFound, nil)
	}

	s.log.WithFields(logrus.Fields{"saleId": id, "total": sale.Total.String()}).Info("sale updated")
	s.events.emit("sale", "updated", sale)
	return sale, nil
}

func (s *saleService) DeleteSale(id int) error {
	if err := s.saleRepo.Delete(id); err != nil {
		return translate(err, ErrSaleNotFound, nil)
	}
	s.log.WithField("saleId", id).Info("sale deleted")
	s.events.emit("sale", "deleted", map[string]int{"id": id})
	return nil
}

func (s *saleService) GetAllProducts() []model.Product {
	return s.productRepo.FindAll()
}

func (s *saleService) GetProductByID(id int) (model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	return product, translate(err, ErrProductNotFound, nil)
}

func (s *saleService) CreateProduct(req *CreateProductRequest) (model.Product, error) {
	if err := validator.Check(req); err != nil {
		return model.Product{}, err
	}

	product := model.Product{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Barcode:  req.Barcode,
	}

	var (
		created model.Product
		err     error
	)
	if product.Barcode != "" {
		created, err = s.productRepo.Create(product)
	} else {
		created, err = s.createWithGeneratedBarcode(product)
	}
	if err != nil {
		return model.Product{}, translate(err, ErrProductNotFound, ErrBarcodeExists)
	}

	s.log.WithFields(logrus.Fields{"productId": created.ID, "barcode": created.Barcode}).Info("product created")
	s.events.emit("product", "created", created)
	return created, nil
}

// createWithGeneratedBarcode stamps the product with the current time in
// milliseconds, moving forward one millisecond per collision
func (s *saleService) createWithGeneratedBarcode(product model.Product) (model.Product, error) {
	stamp := s.now().UnixMilli()
	var err error
	for i := 0; i < barcodeAttempts; i++ {
		product.Barcode = strconv.FormatInt(stamp+int64(i), 10)
		var created model.Product
		created, err = s.productRepo.Create(product)
		if !errors.Is(err, repository.ErrDuplicate) {
			return created, err
		}
	}
	return model.Product{}, err
}

func (s *saleService) UpdateProduct(id int, patch *model.ProductPatch) (model.Product, error) {
	if patch == nil {
		patch = &model.ProductPatch{}
	}
	product, err := s.productRepo.Mutate(id, func(existing model.Product) (model.Product, error) {
		return patch.Apply(existing), nil
	})
	if err != nil {
		return model.Product{}, translate(err, ErrProductNotFound, ErrBarcodeExists)
	}

	s.log.WithField("productId", id).Info("product updated")
	s.events.emit("product", "updated", product)
	return product, nil
}

func (s *saleService) DeleteProduct(id int) error {
	if err := s.productRepo.Delete(id); err != nil {
		return translate(err, ErrProductNotFound, nil)
	}
	s.log.WithField("productId", id).Info("product deleted")
	s.events.emit("product", "deleted", map[string]int{"id": id})
	return nil
}
