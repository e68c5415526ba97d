package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bistro-service/internal/api/http/handlers"
	"github.com/spec-kit/bistro-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Menu           *handlers.MenuHandler
	Reviews        *handlers.ReviewsHandler
	Carts          *handlers.CartsHandler
	Payments       *handlers.PaymentsHandler
	Stats          *handlers.StatsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Each route declares its required
// checks here: none, Authenticate, or Authenticate+RequireAdmin;
// ownership checks live in the handlers that know the resource owner.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	authenticate := cfg.AuthMiddleware.Authenticate
	requireAdmin := cfg.AuthMiddleware.RequireAdmin

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("boss is serving at bistro restaurant")
	})
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/jwt", cfg.Users.IssueToken)

	app.Get("/users", authenticate, requireAdmin, cfg.Users.List)
	app.Post("/users", cfg.Users.Create)
	app.Get("/users/admin/:email", authenticate, cfg.Users.AdminStatus)
	app.Patch("/users/admin/:id", cfg.Users.Promote)

	app.Get("/menu", cfg.Menu.List)
	app.Get("/menu/:id", cfg.Menu.Get)
	app.Post("/menu", authenticate, requireAdmin, cfg.Menu.Create)
	app.Patch("/menu/:id", authenticate, requireAdmin, cfg.Menu.Update)
	app.Delete("/menu/:id", authenticate, requireAdmin, cfg.Menu.Delete)

	app.Get("/reviews", cfg.Reviews.List)
	app.Post("/reviews", authenticate, cfg.Reviews.Create)

	app.Get("/carts", authenticate, cfg.Carts.List)
	app.Post("/carts", cfg.Carts.Add)
	app.Delete("/carts/:id", cfg.Carts.Remove)

	app.Post("/create-payment-intent", authenticate, cfg.Payments.CreateIntent)
	app.Post("/payments", authenticate, cfg.Payments.Record)
	app.Get("/payments/:email", authenticate, cfg.Payments.History)

	app.Get("/admin-stats", authenticate, requireAdmin, cfg.Stats.AdminStats)
	app.Get("/orders-stats", authenticate, requireAdmin, cfg.Stats.OrdersStats)
}
