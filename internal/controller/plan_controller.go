package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/raflyryhnsyh/sea-catering/internal/dto"
	"github.com/raflyryhnsyh/sea-catering/internal/pkg/serverutils"
	"github.com/raflyryhnsyh/sea-catering/internal/service"
)

type IPlanController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	CalculatePrice(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type planController struct {
	service service.IPlanService
}

func NewPlanController(service service.IPlanService) IPlanController {
	return &planController{service: service}
}

func (c *planController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/plans")
	h.Get("/", c.List)
	h.Post("/price", c.CalculatePrice)
	h.Get("/:id", c.Get)

	// Catalog management is admin only
	h.Post("/", serverutils.JwtMiddleware, serverutils.AdminMiddleware, c.Create)
	h.Put("/:id", serverutils.JwtMiddleware, serverutils.AdminMiddleware, c.Update)
	h.Delete("/:id", serverutils.JwtMiddleware, serverutils.AdminMiddleware, c.Delete)
}

func (c *planController) List(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.Context())
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching meal plans", res))
}

func (c *planController) Get(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid plan id")
	}

	res, err := c.service.Get(ctx.Context(), id)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching meal plan", res))
}

func (c *planController) CalculatePrice(ctx *fiber.Ctx) error {
	var req dto.CalculatePriceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	res, err := c.service.CalculatePrice(ctx.Context(), &req)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Price calculated", res))
}

func (c *planController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateMealPlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Meal plan created", res))
}

func (c *planController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid plan id")
	}

	var req dto.UpdateMealPlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	res, err := c.service.Update(ctx.Context(), id, &req)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Meal plan updated", res))
}

func (c *planController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid plan id")
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Meal plan deleted", nil))
}
