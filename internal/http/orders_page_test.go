package handlers_test

import (
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestOrdersPageAppendAndList(t *testing.T) {
	app, _ := newApp(t)

	// no session required for the order/stock page
	status, loc, err := postForm(app, "/orders", url.Values{
		"customer": {"Carmen López"}, "product": {"Pan Blanco"}, "qty": {"12"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if status != fiber.StatusFound || loc != "/orders" {
		t.Fatalf("add order: want 302 /orders, got %d %q", status, loc)
	}

	status, _, err = postForm(app, "/stock", url.Values{"name": {"Levadura"}, "stock": {"40"}})
	if err != nil {
		t.Fatal(err)
	}
	if status != fiber.StatusFound {
		t.Fatalf("add stock: want 302, got %d", status)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/orders", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	s := string(body)
	for _, want := range []string{"Carmen López", "Pan Blanco", "Levadura"} {
		if !strings.Contains(s, want) {
			t.Fatalf("orders page missing %q", want)
		}
	}
}

func TestOrdersRejectMissingFields(t *testing.T) {
	app, _ := newApp(t)

	status, _, err := postForm(app, "/orders", url.Values{"customer": {""}, "product": {"Pan"}})
	if err != nil {
		t.Fatal(err)
	}
	if status != fiber.StatusBadRequest {
		t.Fatalf("want 400, got %d", status)
	}
}
