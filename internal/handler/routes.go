package handler

import (
	"github.com/gofiber/fiber/v2"
)

// Handlers groups every route handler mounted under /api
type Handlers struct {
	Loan    *LoanHandler
	Payment *PaymentHandler
	Sale    *SaleHandler
	User    *UserHandler
	Report  *ReportHandler
}

// RegisterRoutes mounts the API on router. Fixed segments such as /stats and
// /products are registered before /:id so they are never read as ids.
func RegisterRoutes(router fiber.Router, h Handlers) {
	router.Get("/health", Health)

	loans := router.Group("/loans")
	loans.Get("/", h.Loan.GetLoans)
	loans.Post("/", h.Loan.CreateLoan)
	loans.Get("/stats", h.Loan.GetLoanStats)
	loans.Get("/:id", h.Loan.GetLoan)
	loans.Put("/:id", h.Loan.UpdateLoan)
	loans.Delete("/:id", h.Loan.DeleteLoan)
	loans.Post("/:id/payment", h.Loan.RecordPayment)
	loans.Get("/:id/schedule", h.Loan.GetPaymentSchedule)

	payments := router.Group("/payments")
	payments.Get("/", h.Payment.GetPayments)
	payments.Post("/", h.Payment.CreatePayment)
	payments.Get("/range", h.Payment.GetPaymentsByDateRange)
	payments.Get("/:id", h.Payment.GetPayment)
	payments.Put("/:id", h.Payment.UpdatePayment)
	payments.Delete("/:id", h.Payment.DeletePayment)

	sales := router.Group("/sales")
	sales.Get("/", h.Sale.GetSales)
	sales.Post("/", h.Sale.CreateSale)
	sales.Get("/stats", h.Sale.GetSalesStats)
	sales.Get("/products", h.Sale.GetProducts)
	sales.Post("/products", h.Sale.CreateProduct)
	sales.Get("/products/:id", h.Sale.GetProduct)
	sales.Put("/products/:id", h.Sale.UpdateProduct)
	sales.Delete("/products/:id", h.Sale.DeleteProduct)
	sales.Get("/:id", h.Sale.GetSale)
	sales.Put("/:id", h.Sale.UpdateSale)
	sales.Delete("/:id", h.Sale.DeleteSale)

	users := router.Group("/users")
	users.Get("/", h.User.GetUsers)
	users.Post("/", h.User.CreateUser)
	users.Get("/:id", h.User.GetUser)
	users.Put("/:id", h.User.UpdateUser)
	users.Delete("/:id", h.User.DeleteUser)
	users.Patch("/:id/status", h.User.UpdateUserStatus)
	users.Post("/:id/reset-password", h.User.ResetPassword)

	reports := router.Group("/reports")
	reports.Get("/sales", h.Report.GetSalesReport)
	reports.Get("/loans", h.Report.GetLoansReport)
	reports.Get("/payments", h.Report.GetPaymentsReport)
	reports.Get("/users", h.Report.GetUsersReport)
	reports.Get("/:kind/export", h.Report.ExportReport)
}
