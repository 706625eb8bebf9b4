package internal

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const bodyLimit = 1024 * 1024

func NewApp(h *Handlers, gatherer prometheus.Gatherer) *fiber.App {
	app := fiber.New(fiber.Config{BodyLimit: bodyLimit})
	app.Use(logger.New())

	app.Post("/orders", h.CreateOrder)
	app.Get("/orders", h.GetOrders)
	app.Get("/orders/:id", h.GetOrder)

	wh := app.Group("/webhook")
	wh.Post("/stripe", h.StripeWebhook)
	wh.Post("/docusign", h.DocuSignWebhook)

	app.Get("/health", h.Health)
	if gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	return app
}
