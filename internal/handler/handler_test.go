package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-pos-ledger/internal/logger"
	"go-pos-ledger/internal/report"
	"go-pos-ledger/internal/repository"
	"go-pos-ledger/internal/service"

	"github.com/gofiber/fiber/v2"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	log := logger.Discard()

	store := repository.NewStore()
	store.SeedDefaults()

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(log)})
	RegisterRoutes(app.Group("/api"), Handlers{
		Loan:    NewLoanHandler(service.NewLoanService(store.Loans, nil, log), log),
		Payment: NewPaymentHandler(service.NewPaymentService(store.Payments, nil, log), log),
		Sale:    NewSaleHandler(service.NewSaleService(store.Sales, store.Products, nil, log), log),
		User:    NewUserHandler(service.NewUserService(store.Users, nil, nil, log), log),
		Report:  NewReportHandler(service.NewReportService(store), log),
	})
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, data
}

func decode(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Expected JSON object, got %s", data)
	}
	return out
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)
	status, body := do(t, app, "GET", "/api/health", "")
	if status != 200 {
		t.Fatalf("Expected 200, got %d", status)
	}
	got := decode(t, body)
	if got["status"] != "ok" || got["message"] != "Server is running" {
		t.Errorf("Unexpected health body %v", got)
	}
}

func TestLoans_RecordPaymentLifecycle(t *testing.T) {
	app := newTestApp(t)

	status, body := do(t, app, "POST", "/api/loans/1/payment", `{"amount": 250}`)
	if status != 200 {
		t.Fatalf("Expected 200, got %d: %s", status, body)
	}
	got := decode(t, body)
	if got["message"] != "Payment recorded successfully" {
		t.Errorf("Expected success message, got %v", got["message"])
	}
	loan := got["loan"].(map[string]any)
	if loan["paymentsMade"] != float64(1) || loan["status"] != "Active" {
		t.Errorf("Expected 1 payment and Active, got %v", loan)
	}

	// empty body is accepted
	status, body = do(t, app, "POST", "/api/loans/1/payment", "")
	if status != 200 {
		t.Fatalf("Expected 200, got %d: %s", status, body)
	}
	loan = decode(t, body)["loan"].(map[string]any)
	if loan["status"] != "Completed" {
		t.Errorf("Expected Completed, got %v", loan["status"])
	}

	status, body = do(t, app, "POST", "/api/loans/1/payment", "")
	if status != 400 {
		t.Fatalf("Expected 400, got %d", status)
	}
	if msg := decode(t, body)["message"]; msg != "All payments for this loan have already been made" {
		t.Errorf("Unexpected message %v", msg)
	}
}

func TestLoans_NotFound(t *testing.T) {
	app := newTestApp(t)
	for _, path := range []string{"/api/loans/99", "/api/loans/abc"} {
		status, body := do(t, app, "GET", path, "")
		if status != 404 {
			t.Errorf("%s: expected 404, got %d", path, status)
		}
		if msg := decode(t, body)["message"]; msg != "Loan not found" {
			t.Errorf("%s: expected 'Loan not found', got %v", path, msg)
		}
	}
}

func TestLoans_CreateAndDelete(t *testing.T) {
	app := newTestApp(t)

	status, body := do(t, app, "POST", "/api/loans", `{"customerName":"Sam"}`)
	if status != 400 || decode(t, body)["message"] != "Required fields missing" {
		t.Errorf("Expected 400 Required fields missing, got %d %s", status, body)
	}

	status, body = do(t, app, "POST", "/api/loans", `{
		"customerName":"Sam","amount":900,"issuedDate":"2023-10-01","dueDate":"2023-12-01",
		"totalPayments":3,"interestRate":5}`)
	if status != 201 {
		t.Fatalf("Expected 201, got %d: %s", status, body)
	}
	created := decode(t, body)
	if created["id"] != float64(6) || created["status"] != "Active" || created["amount"] != float64(900) {
		t.Errorf("Unexpected created loan %v", created)
	}

	status, body = do(t, app, "DELETE", "/api/loans/6", "")
	if status != 200 || decode(t, body)["message"] != "Loan successfully deleted" {
		t.Errorf("Expected delete confirmation, got %d %s", status, body)
	}
}

func TestLoans_AcceptsNumericStrings(t *testing.T) {
	app := newTestApp(t)

	status, body := do(t, app, "POST", "/api/loans", `{
		"customerName":"Sam","amount":"500","issuedDate":"2023-10-01","dueDate":"2023-12-01",
		"totalPayments":"2","interestRate":"5"}`)
	if status != 201 {
		t.Fatalf("Expected 201, got %d: %s", status, body)
	}
	created := decode(t, body)
	if created["totalPayments"] != float64(2) || created["amount"] != float64(500) {
		t.Errorf("Expected numeric fields to be coerced, got %v", created)
	}

	status, body = do(t, app, "PUT", "/api/loans/6", `{"paymentsMade":"2","totalPayments":"2"}`)
	if status != 200 {
		t.Fatalf("Expected 200, got %d: %s", status, body)
	}
	updated := decode(t, body)
	if updated["paymentsMade"] != float64(2) || updated["status"] != "Completed" {
		t.Errorf("Expected 2 payments and Completed, got %v", updated)
	}

	status, body = do(t, app, "PUT", "/api/loans/6", `{"paymentsMade":"many"}`)
	if status != 400 || decode(t, body)["message"] != "Invalid JSON" {
		t.Errorf("Expected 400 Invalid JSON, got %d %s", status, body)
	}
}

func TestLoans_StatsAndSchedule(t *testing.T) {
	app := newTestApp(t)

	status, body := do(t, app, "GET", "/api/loans/stats", "")
	if status != 200 {
		t.Fatalf("Expected 200, got %d", status)
	}
	stats := decode(t, body)
	if stats["activeLoans"] != float64(3) || stats["overdueLoans"] != float64(1) {
		t.Errorf("Unexpected stats %v", stats)
	}

	status, body = do(t, app, "GET", "/api/loans/1/schedule", "")
	if status != 200 {
		t.Fatalf("Expected 200, got %d", status)
	}
	schedule := decode(t, body)
	if schedule["totalWithInterest"] != float64(525) {
		t.Errorf("Expected totalWithInterest 525, got %v", schedule["totalWithInterest"])
	}
}

func TestLoans_UpdateRejectsBadStatus(t *testing.T) {
	app := newTestApp(t)
	status, body := do(t, app, "PUT", "/api/loans/1", `{"status":"Paid"}`)
	if status != 400 {
		t.Errorf("Expected 400, got %d: %s", status, body)
	}

	status, body = do(t, app, "PUT", "/api/loans/1", `{not json`)
	if status != 400 || decode(t, body)["message"] != "Invalid JSON" {
		t.Errorf("Expected 400 Invalid JSON, got %d %s", status, body)
	}
}

func TestPayments_Range(t *testing.T) {
	app := newTestApp(t)

	status, body := do(t, app, "GET", "/api/payments/range?startDate=2023-09-01", "")
	if status != 400 || decode(t, body)["message"] != "Start date and end date are required" {
		t.Errorf("Expected 400 for missing bound, got %d %s", status, body)
	}

	status, body = do(t, app, "GET", "/api/payments/range?startDate=2023-09-06&endDate=2023-09-30", "")
	if status != 200 {
		t.Fatalf("Expected 200, got %d: %s", status, body)
	}
	var payments []map[string]any
	json.Unmarshal(body, &payments)
	if len(payments) != 2 {
		t.Errorf("Expected 2 payments in range, got %d", len(payments))
	}
}

func TestPayments_CreateAssignsDate(t *testing.T) {
	app := newTestApp(t)
	status, body := do(t, app, "POST", "/api/payments",
		`{"amount":20,"method":"Cash","relatedTo":{"type":"Sale","id":2},"receivedBy":3}`)
	if status != 201 {
		t.Fatalf("Expected 201, got %d: %s", status, body)
	}
	created := decode(t, body)
	if created["id"] != float64(4) || created["date"] == "" {
		t.Errorf("Unexpected created payment %v", created)
	}
}

func TestSales_ProductsRoutesBeforeID(t *testing.T) {
	app := newTestApp(t)

	status, body := do(t, app, "GET", "/api/sales/products", "")
	if status != 200 {
		t.Fatalf("Expected 200, got %d", status)
	}
	var products []map[string]any
	json.Unmarshal(body, &products)
	if len(products) != 10 {
		t.Errorf("Expected 10 products, got %d", len(products))
	}

	status, body = do(t, app, "POST", "/api/sales/products",
		`{"name":"Water","category":"Drinks","price":0.99,"barcode":"5901234123457"}`)
	if status != 400 || decode(t, body)["message"] != "Barcode already exists" {
		t.Errorf("Expected duplicate barcode rejection, got %d %s", status, body)
	}

	status, body = do(t, app, "DELETE", "/api/sales/products/3", "")
	if status != 200 || decode(t, body)["message"] != "Product successfully deleted" {
		t.Errorf("Expected delete confirmation, got %d %s", status, body)
	}
	status, _ = do(t, app, "GET", "/api/sales/products/3", "")
	if status != 404 {
		t.Errorf("Expected 404 after delete, got %d", status)
	}
}

func TestSales_CreateComputesTotals(t *testing.T) {
	app := newTestApp(t)
	status, body := do(t, app, "POST", "/api/sales", `{
		"items":[{"id":1,"name":"Milk 1L","price":10,"quantity":2}],
		"paymentMethod":"Card",
		"paymentDetails":{"method":"Card","cardType":"Visa","lastFour":"4242"}}`)
	if status != 201 {
		t.Fatalf("Expected 201, got %d: %s", status, body)
	}
	sale := decode(t, body)
	if sale["subtotal"] != float64(20) || sale["tax"] != 1.4 || sale["total"] != 21.4 {
		t.Errorf("Unexpected totals %v", sale)
	}

	status, body = do(t, app, "POST", "/api/sales", `{"items":[],"paymentMethod":"Cash"}`)
	if status != 400 || decode(t, body)["message"] != "Required fields missing" {
		t.Errorf("Expected Required fields missing, got %d %s", status, body)
	}
}

func TestUsers_StatusAndPasswordReset(t *testing.T) {
	app := newTestApp(t)

	status, body := do(t, app, "PATCH", "/api/users/2/status", `{"status":"Suspended"}`)
	if status != 400 || decode(t, body)["message"] != "Invalid status" {
		t.Errorf("Expected Invalid status, got %d %s", status, body)
	}

	status, body = do(t, app, "PATCH", "/api/users/2/status", `{"status":"Inactive"}`)
	if status != 200 || decode(t, body)["status"] != "Inactive" {
		t.Errorf("Expected Inactive user, got %d %s", status, body)
	}

	status, body = do(t, app, "POST", "/api/users/2/reset-password", `{}`)
	if status != 400 || decode(t, body)["message"] != "New password is required" {
		t.Errorf("Expected missing password rejection, got %d %s", status, body)
	}

	status, body = do(t, app, "POST", "/api/users/2/reset-password", `{"newPassword":"s3cret"}`)
	if status != 200 || decode(t, body)["message"] != "Password reset successfully" {
		t.Errorf("Expected reset confirmation, got %d %s", status, body)
	}
}

func TestUsers_NeverExposePassword(t *testing.T) {
	app := newTestApp(t)
	status, body := do(t, app, "POST", "/api/users",
		`{"name":"Kim","email":"kim@example.com","role":"Cashier","password":"pw"}`)
	if status != 201 {
		t.Fatalf("Expected 201, got %d: %s", status, body)
	}
	if strings.Contains(string(body), "password") {
		t.Errorf("Expected no password in response, got %s", body)
	}

	status, body = do(t, app, "POST", "/api/users",
		`{"name":"Kim","email":"kim@example.com","role":"Cashier","password":"pw"}`)
	if status != 400 || decode(t, body)["message"] != "Email already in use" {
		t.Errorf("Expected duplicate email rejection, got %d %s", status, body)
	}
}

func TestReports_Loans(t *testing.T) {
	app := newTestApp(t)
	status, body := do(t, app, "GET", "/api/reports/loans", "")
	if status != 200 {
		t.Fatalf("Expected 200, got %d", status)
	}
	summary := decode(t, body)["summary"].(map[string]any)
	if summary["totalLoans"] != float64(5) {
		t.Errorf("Expected 5 loans, got %v", summary["totalLoans"])
	}
}

func TestReports_PaymentsInvalidRange(t *testing.T) {
	app := newTestApp(t)
	status, body := do(t, app, "GET", "/api/reports/payments?startDate=yesterday&endDate=2023-09-30", "")
	if status != 400 || decode(t, body)["message"] != "Invalid date range" {
		t.Errorf("Expected Invalid date range, got %d %s", status, body)
	}
}

func TestReports_Export(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/reports/sales/export?period=monthly", nil), -1)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != report.XLSXContentType {
		t.Errorf("Expected xlsx content type, got %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.HasPrefix(cd, `attachment; filename="sales-report-`) {
		t.Errorf("Unexpected Content-Disposition %q", cd)
	}

	status, body := do(t, app, "GET", "/api/reports/inventory/export", "")
	if status != 404 || decode(t, body)["message"] != "Report not found" {
		t.Errorf("Expected Report not found, got %d %s", status, body)
	}
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApp(t)
	status, body := do(t, app, "GET", "/api/nope", "")
	if status != 404 {
		t.Errorf("Expected 404, got %d", status)
	}
	if _, ok := decode(t, body)["message"]; !ok {
		t.Errorf("Expected a message field, got %s", body)
	}
}
