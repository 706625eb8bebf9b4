package internal

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const orderProcessingFailed = "Order processing failed"

type Handlers struct {
	Service IService
	logger  *zap.SugaredLogger
	metrics *Metrics

	stripeWebhookSecret string
}

func NewHandlers(service IService, stripeWebhookSecret string, logger *zap.SugaredLogger, metrics *Metrics) *Handlers {
	return &Handlers{Service: service, stripeWebhookSecret: stripeWebhookSecret, logger: logger, metrics: metrics}
}

func (h *Handlers) CreateOrder(c *fiber.Ctx) error {
	var i OrderInput

	if err := c.BodyParser(&i); err != nil {
		h.logger.Errorf("Error on create order request: %s", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidBody.Message})
	}

	out, err := h.Service.ProcessOrder(c.UserContext(), i)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Message})
		}
		h.logger.Errorf("Error in /orders: %s", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": orderProcessingFailed, "details": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *Handlers) GetOrders(c *fiber.Ctx) error {
	orders, err := h.Service.GetOrders(c.UserContext())
	if err != nil {
		h.logger.Errorf("Error on get orders request: %s", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Listing orders failed", "details": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(orders)
}

func (h *Handlers) GetOrder(c *fiber.Ctx) error {
	order, err := h.Service.GetOrderByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrNoRecords) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found."})
		}
		h.logger.Errorf("Error on get order request: %s", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Loading order failed", "details": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(order)
}

func (h *Handlers) Health(c *fiber.Ctx) error {
	return c.SendString("OK")
}
