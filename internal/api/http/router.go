package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/thecoders/cartunn-backend/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Orders         *handlers.OrdersHandler
	Profiles       *handlers.ProfilesHandler
	ProductRefunds *handlers.ProductRefundsHandler
	Notifications  *handlers.NotificationsHandler
	Authentication *handlers.AuthenticationHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api/v1")

	orders := api.Group("/orders")
	orders.Post("/", cfg.Orders.CreateOrder)
	orders.Get("/", cfg.Orders.ListOrders)
	orders.Get("/:orderId", cfg.Orders.GetOrder)
	orders.Put("/:orderId", cfg.Orders.UpdateOrder)
	orders.Delete("/:orderId", cfg.Orders.DeleteOrder)
	orders.Get("/:orderId/notifications", cfg.Notifications.ListOrderNotifications)

	profiles := api.Group("/profiles")
	profiles.Post("/", cfg.Profiles.CreateProfile)
	profiles.Get("/", cfg.Profiles.ListProfiles)
	profiles.Get("/:profileId", cfg.Profiles.GetProfile)
	profiles.Put("/:profileId", cfg.Profiles.UpdateProfile)
	profiles.Delete("/:profileId", cfg.Profiles.DeleteProfile)

	refunds := api.Group("/product-refund")
	refunds.Post("/", cfg.ProductRefunds.CreateProductRefund)
	refunds.Get("/", cfg.ProductRefunds.ListProductRefunds)
	refunds.Get("/:productRefundId", cfg.ProductRefunds.GetProductRefund)
	refunds.Put("/:productRefundId", cfg.ProductRefunds.UpdateProductRefund)
	refunds.Delete("/:productRefundId", cfg.ProductRefunds.DeleteProductRefund)

	notifications := api.Group("/notifications")
	notifications.Get("/", cfg.Notifications.ListNotifications)
	notifications.Get("/:notificationId", cfg.Notifications.GetNotification)

	authentication := api.Group("/authentication")
	authentication.Post("/sign-up", cfg.Authentication.SignUp)
	authentication.Post("/sign-in", cfg.Authentication.SignIn)
}
