package bootstrap

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func TestHealthz(t *testing.T) {
	mainApp := newFiberApp()

	res, err := mainApp.Test(httptest.NewRequest("GET", "/healthz", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", res.StatusCode)
	}
}

func TestErrorHandlerSurfacesMessage(t *testing.T) {
	mainApp := newFiberApp()
	mainApp.Get("/boom", func(fctx fiber.Ctx) error {
		return errors.New("backend exploded")
	})

	res, err := mainApp.Test(httptest.NewRequest("GET", "/boom", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != fiber.StatusInternalServerError {
		t.Errorf("status = %d, want 500", res.StatusCode)
	}

	raw, _ := io.ReadAll(res.Body)
	var body map[string]string
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("body %q is not JSON: %v", raw, err)
	}
	if body["error"] != "backend exploded" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestErrorHandlerKeepsExplicitStatus(t *testing.T) {
	mainApp := newFiberApp()

	res, err := mainApp.Test(httptest.NewRequest("GET", "/no-such-route", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404", res.StatusCode)
	}
}
