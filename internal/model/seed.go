package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultLoans returns the demo loans
func DefaultLoans() []Loan {
	return []Loan{
		{ID: 1, CustomerName: "Jane Smith", Amount: dec("500"), IssuedDate: "2023-05-15", DueDate: "2023-06-15", Status: LoanActive, PaymentsMade: 0, TotalPayments: 2, InterestRate: dec("5"), Phone: "555-1234", Notes: "Regular customer, first loan"},
		{ID: 2, CustomerName: "John Doe", Amount: dec("1200"), IssuedDate: "2023-04-10", DueDate: "2023-07-10", Status: LoanActive, PaymentsMade: 1, TotalPayments: 3, InterestRate: dec("5"), Phone: "555-5678", Notes: "Grocery supplier"},
		{ID: 3, CustomerName: "Alice Johnson", Amount: dec("300"), IssuedDate: "2023-03-20", DueDate: "2023-04-20", Status: LoanOverdue, PaymentsMade: 0, TotalPayments: 1, InterestRate: dec("5"), Phone: "555-9012", Notes: "First-time customer"},
		{ID: 4, CustomerName: "Robert Chen", Amount: dec("850"), IssuedDate: "2023-05-01", DueDate: "2023-08-01", Status: LoanActive, PaymentsMade: 1, TotalPayments: 3, InterestRate: dec("5"), Phone: "555-3456", Notes: "Regular customer"},
		{ID: 5, CustomerName: "Maria Garcia", Amount: dec("600"), IssuedDate: "2023-02-15", DueDate: "2023-05-15", Status: LoanCompleted, PaymentsMade: 3, TotalPayments: 3, InterestRate: dec("5"), Phone: "555-7890", Notes: "Prompt payments"},
	}
}

// DefaultPayments returns the demo payments
func DefaultPayments() []Payment {
	return []Payment{
		{ID: 1, Amount: dec("150"), Method: "Cash", RelatedTo: RelatedTo{Type: RelatedLoan, ID: 1}, Date: at("2023-09-05T14:30:00Z"), ReceivedBy: 2, Notes: "First payment for loan #1"},
		{ID: 2, Amount: dec("400"), Method: "Bank Transfer", RelatedTo: RelatedTo{Type: RelatedLoan, ID: 2}, Date: at("2023-09-07T11:15:00Z"), ReceivedBy: 1, Notes: "First payment for loan #2"},
		{ID: 3, Amount: dec("75.50"), Method: "Cash", RelatedTo: RelatedTo{Type: RelatedSale, ID: 1}, Date: at("2023-09-10T10:30:00Z"), ReceivedBy: 3, Notes: "Payment for sale #1"},
	}
}

// DefaultSales returns the demo sales with their recorded (rounded) totals
func DefaultSales() []Sale {
	return []Sale{
		{
			ID: 1,
			Items: []SaleItem{
				{ID: 1, Name: "Milk 1L", Price: dec("3.99"), Quantity: 2},
				{ID: 2, Name: "Bread", Price: dec("2.49"), Quantity: 1},
			},
			Subtotal:       dec("10.47"),
			Tax:            dec("0.73"),
			Total:          dec("11.20"),
			PaymentMethod:  MethodCash,
			PaymentDetails: CashPayment(dec("15"), dec("3.80")),
			Timestamp:      at("2023-09-10T10:30:00Z"),
		},
		{
			ID: 2,
			Items: []SaleItem{
				{ID: 3, Name: "Eggs (12pk)", Price: dec("4.99"), Quantity: 1},
				{ID: 4, Name: "Bananas 1kg", Price: dec("1.99"), Quantity: 2},
			},
			Subtotal:       dec("8.97"),
			Tax:            dec("0.63"),
			Total:          dec("9.60"),
			PaymentMethod:  MethodCard,
			PaymentDetails: CardPayment("Visa", "1234"),
			Timestamp:      at("2023-09-11T14:45:00Z"),
		},
	}
}

// DefaultProducts returns the demo catalogue
func DefaultProducts() []Product {
	return []Product{
		{ID: 1, Name: "Milk 1L", Category: "Dairy", Price: dec("3.99"), Barcode: "5901234123457"},
		{ID: 2, Name: "Bread", Category: "Bakery", Price: dec("2.49"), Barcode: "4901234123458"},
		{ID: 3, Name: "Eggs (12pk)", Category: "Dairy", Price: dec("4.99"), Barcode: "3901234123459"},
		{ID: 4, Name: "Bananas 1kg", Category: "Produce", Price: dec("1.99"), Barcode: "2901234123450"},
		{ID: 5, Name: "Chicken Breast", Category: "Meat", Price: dec("7.99"), Barcode: "1901234123451"},
		{ID: 6, Name: "Rice 2kg", Category: "Grains", Price: dec("6.99"), Barcode: "6901234123452"},
		{ID: 7, Name: "Pasta 500g", Category: "Grains", Price: dec("1.49"), Barcode: "7901234123453"},
		{ID: 8, Name: "Tomatoes 1kg", Category: "Produce", Price: dec("3.49"), Barcode: "8901234123454"},
		{ID: 9, Name: "Cheese 200g", Category: "Dairy", Price: dec("4.49"), Barcode: "9901234123455"},
		{ID: 10, Name: "Yogurt 500g", Category: "Dairy", Price: dec("2.99"), Barcode: "0901234123456"},
	}
}

// DefaultUsers returns the demo staff accounts
func DefaultUsers() []User {
	return []User{
		{ID: 1, Name: "John Doe", Email: "john@example.com", Role: "Admin", Status: UserActive, LastActive: "Today, 2:30 PM", Password: "hashed_password_1"},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Role: "Manager", Status: UserActive, LastActive: "Today, 10:15 AM", Password: "hashed_password_2"},
		{ID: 3, Name: "Robert Johnson", Email: "robert@example.com", Role: "Cashier", Status: UserActive, LastActive: "Yesterday, 5:42 PM", Password: "hashed_password_3"},
		{ID: 4, Name: "Emily Davis", Email: "emily@example.com", Role: "Cashier", Status: UserInactive, LastActive: "Aug 15, 2023", Password: "hashed_password_4"},
		{ID: 5, Name: "Michael Wilson", Email: "michael@example.com", Role: "Inventory", Status: UserActive, LastActive: "Today, 12:05 PM", Password: "hashed_password_5"},
	}
}
