package middleware

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func newTestApp(buf *bytes.Buffer) *fiber.App {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(buf)

	app := fiber.New()
	app.Use(RequestID())
	app.Use(RequestLogger(log))
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"id": GetRequestID(c)})
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})
	return app
}

func TestRequestID_GeneratedAndEchoed(t *testing.T) {
	var buf bytes.Buffer
	app := newTestApp(&buf)

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	id := resp.Header.Get(HeaderRequestID)
	if len(id) != 36 {
		t.Errorf("Expected a uuid request id, got %q", id)
	}

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected one JSON log line, got %q", buf.String())
	}
	if entry["requestId"] != id || entry["path"] != "/ok" || entry["status"] != float64(200) {
		t.Errorf("Unexpected log entry %v", entry)
	}
}

func TestRequestID_ReusesCallerID(t *testing.T) {
	var buf bytes.Buffer
	app := newTestApp(&buf)

	req := httptest.NewRequest("GET", "/ok", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	resp, _ := app.Test(req)
	if got := resp.Header.Get(HeaderRequestID); got != "abc-123" {
		t.Errorf("Expected caller id to be reused, got %q", got)
	}
}

func TestRequestLogger_LogsErrorStatus(t *testing.T) {
	var buf bytes.Buffer
	app := newTestApp(&buf)

	resp, _ := app.Test(httptest.NewRequest("GET", "/missing", nil))
	if resp.StatusCode != 404 {
		t.Errorf("Expected 404, got %d", resp.StatusCode)
	}
	var entry map[string]any
	json.Unmarshal(buf.Bytes(), &entry)
	if entry["status"] != float64(404) || entry["level"] != "warning" {
		t.Errorf("Unexpected log entry %v", entry)
	}
}
