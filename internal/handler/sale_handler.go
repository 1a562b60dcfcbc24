package handler

import (
	"go-pos-ledger/internal/model"
	"go-pos-ledger/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// SaleHandler serves both the sales ledger and the product catalogue
type SaleHandler struct {
	saleService service.SaleService
	log         *logrus.Logger
}

func NewSaleHandler(saleService service.SaleService, log *logrus.Logger) *SaleHandler {
	return &SaleHandler{saleService: saleService, log: log}
}

// GET /api/sales
func (h *SaleHandler) GetSales(c *fiber.Ctx) error {
	return c.JSON(h.saleService.GetAllSales())
}

// GET /api/sales/stats
func (h *SaleHandler) GetSalesStats(c *fiber.Ctx) error {
	return c.JSON(h.saleService.GetSalesStats())
}

// GET /api/sales/:id
func (h *SaleHandler) GetSale(c *fiber.Ctx) error {
	id, err := parseID(c, service.ErrSaleNotFound)
	if err != nil {
		return fail(c, h.log, "GetSale", err)
	}
	sale, err := h.saleService.GetSaleByID(id)
	if err != nil {
		return fail(c, h.log, "GetSale", err)
	}
	return c.JSON(sale)
}

// CreateSale records a checkout; totals are computed from the items
// POST /api/sales
func (h *SaleHandler) CreateSale(c *fiber.Ctx) error {
	var req service.CreateSaleRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, h.log, "CreateSale", err)
	}
	sale, err := h.saleService.CreateSale(&req)
	if err != nil {
		return fail(c, h.log, "CreateSale", err)
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}

// PUT /api/sales/:id
func (h *SaleHandler) UpdateSale(c *fiber.Ctx) error {
	id, err := parseID(c, service.ErrSaleNotFound)
	if err != nil {
		return fail(c, h.log, "UpdateSale", err)
	}
	var patch model.SalePatch
	if err := parseBody(c, &patch); err != nil {
		return fail(c, h.log, "UpdateSale", err)
	}
	sale, err := h.saleService.UpdateSale(id, &patch)
	if err != nil {
		return fail(c, h.log, "UpdateSale", err)
	}
	return c.JSON(sale)
}

// DELETE /api/sales/:id
func (h *SaleHandler) DeleteSale(c *fiber.Ctx) error {
	id, err := parseID(c, service.ErrSaleNotFound)
	if err != nil {
		return fail(c, h.log, "DeleteSale", err)
	}
	if err := h.saleService.DeleteSale(id); err != nil {
		return fail(c, h.log, "DeleteSale", err)
	}
	return message(c, "Sale successfully deleted")
}

// GET /api/sales/products
func (h *SaleHandler) GetProducts(c *fiber.Ctx) error {
	return c.JSON(h.saleService.GetAllProducts())
}

// GET /api/sales/products/:id
func (h *SaleHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseID(c, service.ErrProductNotFound)
	if err != nil {
		return fail(c, h.log, "GetProduct", err)
	}
	product, err := h.saleService.GetProductByID(id)
	if err != nil {
		return fail(c, h.log, "GetProduct", err)
	}
	return c.JSON(product)
}

// CreateProduct adds a catalogue entry, generating a barcode when none is given
// POST /api/sales/products
func (h *SaleHandler) CreateProduct(c *fiber.Ctx) error {
	var req service.CreateProductRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, h.log, "CreateProduct", err)
	}
	product, err := h.saleService.CreateProduct(&req)
	if err != nil {
		return fail(c, h.log, "CreateProduct", err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// PUT /api/sales/products/:id
func (h *SaleHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c, service.ErrProductNotFound)
	if err != nil {
		return fail(c, h.log, "UpdateProduct", err)
	}
	var patch model.ProductPatch
	if err := parseBody(c, &patch); err != nil {
		return fail(c, h.log, "UpdateProduct", err)
	}
	product, err := h.saleService.UpdateProduct(id, &patch)
	if err != nil {
		return fail(c, h.log, "UpdateProduct", err)
	}
	return c.JSON(product)
}

// DELETE /api/sales/products/:id
func (h *SaleHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c, service.ErrProductNotFound)
	if err != nil {
		return fail(c, h.log, "DeleteProduct", err)
	}
	if err := h.saleService.DeleteProduct(id); err != nil {
		return fail(c, h.log, "DeleteProduct", err)
	}
	return message(c, "Product successfully deleted")
}
