package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/raflyryhnsyh/sea-catering/internal/dto"
	"github.com/raflyryhnsyh/sea-catering/internal/pkg/serverutils"
	"github.com/raflyryhnsyh/sea-catering/internal/service"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Profile(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/register", c.Register)
	h.Post("/login", c.Login)
	h.Get("/me", serverutils.JwtMiddleware, c.Profile)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	res, err := c.service.Register(ctx.Context(), &req)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Registration successful", res))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *authController) Profile(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Profile(ctx.Context(), userId)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching profile", res))
}
