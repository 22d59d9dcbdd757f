package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"github.com/Maicol0120/dulce-bendicion/internal/config"
	"github.com/Maicol0120/dulce-bendicion/internal/http/handlers"
	applog "github.com/Maicol0120/dulce-bendicion/internal/log"
	"github.com/Maicol0120/dulce-bendicion/internal/repos"
	"github.com/Maicol0120/dulce-bendicion/internal/store"
)

func openStore(cfg config.Config) (store.Store, error) {
	if cfg.RedisAddr != "" {
		log.Printf("[store] redis %s", cfg.RedisAddr)
		return store.OpenRedis(cfg.RedisAddr, cfg.RedisPass)
	}
	log.Printf("[store] sqlite %s", cfg.StoreDSN)
	return store.OpenSQLite(cfg.StoreDSN)
}

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	st, err := openStore(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer st.Close()

	if err := repos.Seed(st); err != nil {
		log.Fatal(err)
	}

	// Templates & app
	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			// Avoid leaking internals; best-effort render
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Algo salió mal. Inténtalo de nuevo.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Algo salió mal. Inténtalo de nuevo.")
			}
			return nil
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ContextKey:     "csrf", // without this the middleware never fills Locals
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", nil)
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Verificación de seguridad fallida. Actualiza la página."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// ---------- App handlers ----------
	deps := handlers.NewDeps(st)

	app.Get("/", func(c *fiber.Ctx) error { return c.Redirect("/login") })

	// Auth (login throttled)
	app.Get("/login", deps.AuthHandler.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{"Err": "Demasiados intentos. Inténtalo más tarde."})
		},
	}), deps.AuthHandler.Login)
	app.Post("/logout", deps.AuthHandler.Logout)

	// Dashboards (hard role gates: redirect to /login on mismatch)
	app.Get("/admin", handlers.RequireAdmin(deps.Auth), deps.DashboardHandler.Admin)
	app.Get("/panel", handlers.RequireEmployee(deps.Auth), deps.DashboardHandler.Employee)

	// Products
	app.Post("/products", deps.ProductHandler.Add)
	app.Post("/products/:id", handlers.RequireAdmin(deps.Auth), deps.ProductHandler.Edit)
	app.Post("/products/:id/delete", handlers.RequireAdmin(deps.Auth), deps.ProductHandler.Delete)
	app.Post("/products/:id/increment", handlers.RequireEmployee(deps.Auth), deps.ProductHandler.Increment)

	// Employees (admin only)
	app.Post("/employees", handlers.RequireAdmin(deps.Auth), deps.EmployeeHandler.Add)
	app.Post("/employees/:username/delete", handlers.RequireAdmin(deps.Auth), deps.EmployeeHandler.Delete)

	// Standalone order/stock page
	app.Get("/orders", deps.OrderHandler.Page)
	app.Post("/orders", deps.OrderHandler.AddOrder)
	app.Post("/stock", deps.OrderHandler.AddStock)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Página no encontrada"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
