package repository

// Store owns one repository per entity. Build it once in main and pass it down.
type Store struct {
	Loans    LoanRepository
	Payments PaymentRepository
	Sales    SaleRepository
	Products ProductRepository
	Users    UserRepository
}

// NewStore returns a store with empty tables
func NewStore() *Store {
	return &Store{
		Loans:    NewLoanRepo(),
		Payments: NewPaymentRepo(),
		Sales:    NewSaleRepo(),
		Products: NewProductRepo(),
		Users:    NewUserRepo(),
	}
}

// SeedDefaults replaces every table with the demo data
func (s *Store) SeedDefaults() {
	s.Loans.SeedDefaults()
	s.Payments.SeedDefaults()
	s.Sales.SeedDefaults()
	s.Products.SeedDefaults()
	s.Users.SeedDefaults()
}
