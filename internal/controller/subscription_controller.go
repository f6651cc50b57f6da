package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/raflyryhnsyh/sea-catering/internal/dto"
	"github.com/raflyryhnsyh/sea-catering/internal/pkg/serverutils"
	"github.com/raflyryhnsyh/sea-catering/internal/service"
)

type ISubscriptionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	GetActive(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
	Pause(ctx *fiber.Ctx) error
	PreviewPause(ctx *fiber.Ctx) error
	Resume(ctx *fiber.Ctx) error
}

type subscriptionController struct {
	service service.ISubscriptionService
}

func NewSubscriptionController(service service.ISubscriptionService) ISubscriptionController {
	return &subscriptionController{service: service}
}

func (c *subscriptionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/subscriptions", serverutils.JwtMiddleware)
	h.Post("/", c.Create)
	h.Get("/", c.List)
	h.Get("/active", c.GetActive)
	h.Post("/:id/cancel", c.Cancel)
	h.Post("/:id/pause", c.Pause)
	h.Post("/:id/pause/preview", c.PreviewPause)
	h.Post("/:id/resume", c.Resume)
}

func (c *subscriptionController) Create(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateSubscriptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	res, err := c.service.Create(ctx.Context(), userId, &req)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Subscription created", res))
}

func (c *subscriptionController) List(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListForUser(ctx.Context(), userId)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching subscriptions", res))
}

func (c *subscriptionController) GetActive(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetActive(ctx.Context(), userId)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "No active subscription"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching active subscription", res))
}

func (c *subscriptionController) Cancel(ctx *fiber.Ctx) error {
	userId, subId, err := c.pathIds(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Cancel(ctx.Context(), userId, subId)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscription cancelled", res))
}

func (c *subscriptionController) Pause(ctx *fiber.Ctx) error {
	userId, subId, err := c.pathIds(ctx)
	if err != nil {
		return err
	}

	var req dto.PauseSubscriptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	res, err := c.service.Pause(ctx.Context(), userId, subId, &req)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscription paused", res))
}

func (c *subscriptionController) PreviewPause(ctx *fiber.Ctx) error {
	userId, subId, err := c.pathIds(ctx)
	if err != nil {
		return err
	}

	var req dto.PauseSubscriptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	res, err := c.service.PreviewPause(ctx.Context(), userId, subId, &req)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Pause preview", res))
}

func (c *subscriptionController) Resume(ctx *fiber.Ctx) error {
	userId, subId, err := c.pathIds(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Resume(ctx.Context(), userId, subId)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscription resumed", res))
}

func (c *subscriptionController) pathIds(ctx *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	subId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid subscription id")
	}
	return userId, subId, nil
}
