package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/raflyryhnsyh/sea-catering/internal/dto"
	"github.com/raflyryhnsyh/sea-catering/internal/pkg/serverutils"
	"github.com/raflyryhnsyh/sea-catering/internal/service"
)

type IPaymentController interface {
	RegisterRoutes(r fiber.Router)
	Checkout(ctx *fiber.Ctx) error
	Webhook(ctx *fiber.Ctx) error
}

type paymentController struct {
	service service.IPaymentService
}

func NewPaymentController(service service.IPaymentService) IPaymentController {
	return &paymentController{service: service}
}

func (c *paymentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/payment")
	// Midtrans calls this server to server, no auth header
	h.Post("/midtrans/notification", c.Webhook)
	h.Post("/checkout/:id", serverutils.JwtMiddleware, c.Checkout)
}

func (c *paymentController) Checkout(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}
	subId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid subscription id")
	}

	res, err := c.service.Checkout(ctx.Context(), userId, subId)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Checkout created", res))
}

func (c *paymentController) Webhook(ctx *fiber.Ctx) error {
	var req dto.MidtransWebhookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid notification body"))
	}

	if err := c.service.HandleNotification(ctx.Context(), &req); err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("OK", nil))
}
