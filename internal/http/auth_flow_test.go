package handlers_test

import (
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"github.com/Maicol0120/dulce-bendicion/internal/http/handlers"
	"github.com/Maicol0120/dulce-bendicion/internal/repos"
	"github.com/Maicol0120/dulce-bendicion/internal/store"
)

// newApp wires the real handlers over a seeded in-memory store, without the
// CSRF/limiter middleware so tests exercise the handlers themselves.
func newApp(t *testing.T) (*fiber.App, *handlers.Deps) {
	t.Helper()
	st, err := store.OpenSQLite(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })
	if err := repos.Seed(st); err != nil {
		t.Fatal(err)
	}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(requestid.New())

	deps := handlers.NewDeps(st)
	app.Get("/login", deps.AuthHandler.LoginForm)
	app.Post("/login", deps.AuthHandler.Login)
	app.Post("/logout", deps.AuthHandler.Logout)
	app.Get("/admin", handlers.RequireAdmin(deps.Auth), deps.DashboardHandler.Admin)
	app.Get("/panel", handlers.RequireEmployee(deps.Auth), deps.DashboardHandler.Employee)
	app.Post("/products", deps.ProductHandler.Add)
	app.Post("/products/:id", handlers.RequireAdmin(deps.Auth), deps.ProductHandler.Edit)
	app.Post("/products/:id/delete", handlers.RequireAdmin(deps.Auth), deps.ProductHandler.Delete)
	app.Post("/products/:id/increment", handlers.RequireEmployee(deps.Auth), deps.ProductHandler.Increment)
	app.Post("/employees", handlers.RequireAdmin(deps.Auth), deps.EmployeeHandler.Add)
	app.Post("/employees/:username/delete", handlers.RequireAdmin(deps.Auth), deps.EmployeeHandler.Delete)
	app.Get("/orders", deps.OrderHandler.Page)
	app.Post("/orders", deps.OrderHandler.AddOrder)
	app.Post("/stock", deps.OrderHandler.AddStock)
	return app, deps
}

func postForm(app *fiber.App, path string, form url.Values) (int, string, error) {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	if err != nil {
		return 0, "", err
	}
	return resp.StatusCode, resp.Header.Get("Location"), nil
}

func TestLoginRoutesByRole(t *testing.T) {
	app, _ := newApp(t)

	status, loc, err := postForm(app, "/login", url.Values{"username": {"admin"}, "password": {"admin"}})
	if err != nil {
		t.Fatal(err)
	}
	if status != fiber.StatusFound || loc != "/admin" {
		t.Fatalf("admin login: want 302 /admin, got %d %q", status, loc)
	}

	status, loc, err = postForm(app, "/login", url.Values{"username": {"maria"}, "password": {"123456"}})
	if err != nil {
		t.Fatal(err)
	}
	if status != fiber.StatusFound || loc != "/panel" {
		t.Fatalf("employee login: want 302 /panel, got %d %q", status, loc)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app, _ := newApp(t)

	status, _, err := postForm(app, "/login", url.Values{"username": {"maria"}, "password": {"admin"}})
	if err != nil {
		t.Fatal(err)
	}
	if status != fiber.StatusUnauthorized {
		t.Fatalf("want 401, got %d", status)
	}
}

func TestDashboardGatesRedirectToLogin(t *testing.T) {
	app, deps := newApp(t)

	// nobody logged in
	for _, path := range []string{"/admin", "/panel"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != fiber.StatusFound || resp.Header.Get("Location") != "/login" {
			t.Fatalf("%s without session: want redirect to /login, got %d %q", path, resp.StatusCode, resp.Header.Get("Location"))
		}
	}

	// the wrong role is also a hard redirect, not a 403 page
	if _, err := deps.Auth.Login("maria", "123456"); err != nil {
		t.Fatal(err)
	}
	resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusFound || resp.Header.Get("Location") != "/login" {
		t.Fatalf("employee on /admin: want redirect, got %d", resp.StatusCode)
	}
}

func TestAdminDashboardRenders(t *testing.T) {
	app, deps := newApp(t)
	if _, err := deps.Auth.Login("admin", "admin"); err != nil {
		t.Fatal(err)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	s := string(body)
	for _, want := range []string{"Bienvenido, Dueño", "Harina", "María García", "Inicio sesión"} {
		if !strings.Contains(s, want) {
			t.Fatalf("admin dashboard missing %q", want)
		}
	}
}

func TestLogoutClosesTheSession(t *testing.T) {
	app, deps := newApp(t)
	if _, err := deps.Auth.Login("admin", "admin"); err != nil {
		t.Fatal(err)
	}

	status, loc, err := postForm(app, "/logout", url.Values{})
	if err != nil {
		t.Fatal(err)
	}
	if status != fiber.StatusFound || loc != "/login" {
		t.Fatalf("logout: want 302 /login, got %d %q", status, loc)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("dashboard after logout must redirect, got %d", resp.StatusCode)
	}
}
