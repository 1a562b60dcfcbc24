package model

import (
	"encoding/json"
	"errors"
	"maps"
	"time"

	"github.com/shopspring/decimal"
)

const (
	MethodCash = "Cash"
	MethodCard = "Card"
)

// TaxRate applied to every sale subtotal
var TaxRate = decimal.RequireFromString("0.07")

type SaleItem struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type Sale struct {
	ID             int             `json:"id"`
	Items          []SaleItem      `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Tax            decimal.Decimal `json:"tax"`
	Total          decimal.Decimal `json:"total"`
	PaymentMethod  string          `json:"paymentMethod"`
	PaymentDetails PaymentDetails  `json:"paymentDetails"`
	Timestamp      time.Time       `json:"timestamp"`
}

// ComputeTotals derives subtotal, tax and total from the line items
func ComputeTotals(items []SaleItem) (subtotal, tax, total decimal.Decimal) {
	subtotal = decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	tax = subtotal.Mul(TaxRate)
	total = subtotal.Add(tax)
	return subtotal, tax, total
}

// WithItems replaces the items and recomputes the totals
func (s Sale) WithItems(items []SaleItem) Sale {
	s.Items = append([]SaleItem(nil), items...)
	s.Subtotal, s.Tax, s.Total = ComputeTotals(s.Items)
	return s
}

// Clone copies the slices and maps a sale owns
func (s Sale) Clone() Sale {
	s.Items = append([]SaleItem(nil), s.Items...)
	s.PaymentDetails = s.PaymentDetails.Clone()
	return s
}

// PaymentDetails holds the method-specific payload of a sale. Exactly one of
// Cash, Card or Other is set; the variant is chosen by the "method" field.
type PaymentDetails struct {
	Cash  *CashDetails
	Card  *CardDetails
	Other map[string]any
}

type CashDetails struct {
	Method     string          `json:"method"`
	AmountPaid decimal.Decimal `json:"amountPaid"`
	Change     decimal.Decimal `json:"change"`
}

type CardDetails struct {
	Method   string `json:"method"`
	CardType string `json:"cardType"`
	LastFour string `json:"lastFour"`
}

var errDetailsNotObject = errors.New("paymentDetails must be an object")

func CashPayment(amountPaid, change decimal.Decimal) PaymentDetails {
	return PaymentDetails{Cash: &CashDetails{Method: MethodCash, AmountPaid: amountPaid, Change: change}}
}

func CardPayment(cardType, lastFour string) PaymentDetails {
	return PaymentDetails{Card: &CardDetails{Method: MethodCard, CardType: cardType, LastFour: lastFour}}
}

func (d PaymentDetails) IsZero() bool {
	return d.Cash == nil && d.Card == nil && d.Other == nil
}

// Method returns the method recorded in the payload
func (d PaymentDetails) Method() string {
	switch {
	case d.Cash != nil:
		return d.Cash.Method
	case d.Card != nil:
		return d.Card.Method
	case d.Other != nil:
		m, _ := d.Other["method"].(string)
		return m
	}
	return ""
}

func (d PaymentDetails) Clone() PaymentDetails {
	if d.Cash != nil {
		c := *d.Cash
		d.Cash = &c
	}
	if d.Card != nil {
		c := *d.Card
		d.Card = &c
	}
	if d.Other != nil {
		d.Other = maps.Clone(d.Other)
	}
	return d
}

func (d PaymentDetails) MarshalJSON() ([]byte, error) {
	switch {
	case d.Cash != nil:
		return json.Marshal(d.Cash)
	case d.Card != nil:
		return json.Marshal(d.Card)
	case d.Other != nil:
		return json.Marshal(d.Other)
	}
	return []byte("null"), nil
}

func (d *PaymentDetails) UnmarshalJSON(data []byte) error {
	*d = PaymentDetails{}
	if string(data) == "null" {
		return nil
	}

	var probe struct {
		Method any `json:"method"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return errDetailsNotObject
	}

	switch probe.Method {
	case MethodCash:
		var cash CashDetails
		if err := json.Unmarshal(data, &cash); err != nil {
			return err
		}
		d.Cash = &cash
	case MethodCard:
		var card CardDetails
		if err := json.Unmarshal(data, &card); err != nil {
			return err
		}
		d.Card = &card
	default:
		other := map[string]any{}
		if err := json.Unmarshal(data, &other); err != nil {
			return errDetailsNotObject
		}
		d.Other = other
	}
	return nil
}

// SalePatch replaces items (recomputing totals), method and details when given
type SalePatch struct {
	Items          []SaleItem      `json:"items"`
	PaymentMethod  *string         `json:"paymentMethod"`
	PaymentDetails *PaymentDetails `json:"paymentDetails"`
}

func (p SalePatch) Apply(s Sale) Sale {
	s = s.Clone()
	if len(p.Items) > 0 {
		s = s.WithItems(p.Items)
	}
	if p.PaymentMethod != nil && *p.PaymentMethod != "" {
		s.PaymentMethod = *p.PaymentMethod
	}
	if p.PaymentDetails != nil && !p.PaymentDetails.IsZero() {
		s.PaymentDetails = p.PaymentDetails.Clone()
	}
	return s
}

// SalesStats are the dashboard counters for the sales page
type SalesStats struct {
	TotalSales       int             `json:"totalSales"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	AverageSaleValue decimal.Decimal `json:"averageSaleValue"`
	PaymentMethods   MethodCounts    `json:"paymentMethods"`
}

type MethodCounts struct {
	Cash int `json:"cash"`
	Card int `json:"card"`
}

func ComputeSalesStats(sales []Sale) SalesStats {
	stats := SalesStats{TotalSales: len(sales), TotalRevenue: decimal.Zero, AverageSaleValue: decimal.Zero}
	for _, s := range sales {
		stats.TotalRevenue = stats.TotalRevenue.Add(s.Total)
		switch s.PaymentMethod {
		case MethodCash:
			stats.PaymentMethods.Cash++
		case MethodCard:
			stats.PaymentMethods.Card++
		}
	}
	if len(sales) > 0 {
		stats.AverageSaleValue = stats.TotalRevenue.Div(decimal.NewFromInt(int64(len(sales))))
	}
	return stats
}
