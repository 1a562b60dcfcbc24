package model

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputeTotals(t *testing.T) {
	items := []SaleItem{
		{ID: 1, Name: "Milk 1L", Price: decimal.RequireFromString("3.99"), Quantity: 2},
		{ID: 2, Name: "Bread", Price: decimal.RequireFromString("2.49"), Quantity: 1},
	}
	subtotal, tax, total := ComputeTotals(items)
	if !subtotal.Equal(decimal.RequireFromString("10.47")) {
		t.Errorf("Expected subtotal 10.47, got %s", subtotal)
	}
	if !tax.Equal(decimal.RequireFromString("0.7329")) {
		t.Errorf("Expected tax 0.7329, got %s", tax)
	}
	if !total.Equal(decimal.RequireFromString("11.2029")) {
		t.Errorf("Expected total 11.2029, got %s", total)
	}
}

func TestPaymentDetails_DecodeVariants(t *testing.T) {
	var cash PaymentDetails
	if err := json.Unmarshal([]byte(`{"method":"Cash","amountPaid":15,"change":3.8}`), &cash); err != nil {
		t.Fatalf("Failed to decode cash details: %v", err)
	}
	if cash.Cash == nil || !cash.Cash.Change.Equal(decimal.RequireFromString("3.8")) {
		t.Errorf("Expected cash variant, got %+v", cash)
	}

	var card PaymentDetails
	if err := json.Unmarshal([]byte(`{"method":"Card","cardType":"Visa","lastFour":"1234"}`), &card); err != nil {
		t.Fatalf("Failed to decode card details: %v", err)
	}
	if card.Card == nil || card.Card.LastFour != "1234" {
		t.Errorf("Expected card variant, got %+v", card)
	}

	var other PaymentDetails
	if err := json.Unmarshal([]byte(`{"method":"Voucher","code":"XMAS","extra":{"a":1}}`), &other); err != nil {
		t.Fatalf("Failed to decode other details: %v", err)
	}
	if other.Other == nil || other.Method() != "Voucher" || other.Other["code"] != "XMAS" {
		t.Errorf("Expected other variant kept verbatim, got %+v", other)
	}

	var bad PaymentDetails
	if err := json.Unmarshal([]byte(`"cash"`), &bad); err == nil {
		t.Error("Expected error for non-object details")
	}
}

func TestSale_MarshalsMoneyAsNumbers(t *testing.T) {
	body, err := json.Marshal(DefaultSales()[0])
	if err != nil {
		t.Fatalf("Failed to marshal sale: %v", err)
	}
	s := string(body)
	for _, want := range []string{`"total":11.2`, `"paymentDetails":{"method":"Cash","amountPaid":15,"change":3.8}`, `"timestamp":"2023-09-10T10:30:00Z"`} {
		if !strings.Contains(s, want) {
			t.Errorf("Expected %s in %s", want, s)
		}
	}
}

func TestSalePatch_Apply(t *testing.T) {
	sale := DefaultSales()[0]
	items := []SaleItem{{ID: 5, Name: "Chicken Breast", Price: decimal.RequireFromString("10"), Quantity: 1}}
	method := "Card"
	details := CardPayment("Visa", "9999")

	got := SalePatch{Items: items, PaymentMethod: &method, PaymentDetails: &details}.Apply(sale)
	if !got.Total.Equal(decimal.RequireFromString("10.7")) {
		t.Errorf("Expected recomputed total 10.7, got %s", got.Total)
	}
	if got.PaymentMethod != "Card" || got.PaymentDetails.Card == nil {
		t.Errorf("Expected card payment, got %+v", got)
	}
	if sale.PaymentMethod != "Cash" || len(sale.Items) != 2 {
		t.Error("Expected original sale to be untouched")
	}

	kept := SalePatch{}.Apply(sale)
	if !kept.Total.Equal(sale.Total) {
		t.Errorf("Expected empty patch to keep total %s, got %s", sale.Total, kept.Total)
	}
}

func TestComputeSalesStats(t *testing.T) {
	stats := ComputeSalesStats(DefaultSales())
	if stats.TotalSales != 2 || !stats.TotalRevenue.Equal(decimal.RequireFromString("20.8")) {
		t.Errorf("Unexpected stats %+v", stats)
	}
	if !stats.AverageSaleValue.Equal(decimal.RequireFromString("10.4")) {
		t.Errorf("Expected average 10.4, got %s", stats.AverageSaleValue)
	}
	if stats.PaymentMethods.Cash != 1 || stats.PaymentMethods.Card != 1 {
		t.Errorf("Unexpected method counts %+v", stats.PaymentMethods)
	}

	empty := ComputeSalesStats(nil)
	if !empty.AverageSaleValue.IsZero() {
		t.Errorf("Expected zero average with no sales, got %s", empty.AverageSaleValue)
	}
}

func TestUser_ResponseHidesPassword(t *testing.T) {
	u := DefaultUsers()[0]
	body, _ := json.Marshal(u.ToResponse())
	if strings.Contains(string(body), "password") || strings.Contains(string(body), "hashed_") {
		t.Errorf("Expected no password in %s", body)
	}
}
