package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/raflyryhnsyh/sea-catering/internal/dto"
	"github.com/raflyryhnsyh/sea-catering/internal/pkg/serverutils"
	"github.com/raflyryhnsyh/sea-catering/internal/service"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	DashboardStats(ctx *fiber.Ctx) error
	ListOrders(ctx *fiber.Ctx) error
	ListUsers(ctx *fiber.Ctx) error
}

type adminController struct {
	service service.IAdminService
}

func NewAdminController(service service.IAdminService) IAdminController {
	return &adminController{service: service}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin", serverutils.JwtMiddleware, serverutils.AdminMiddleware)
	h.Get("/dashboard", c.DashboardStats)
	h.Get("/orders", c.ListOrders)
	h.Get("/users", c.ListUsers)
}

func (c *adminController) DashboardStats(ctx *fiber.Ctx) error {
	req := dto.DashboardStatsRequest{
		From: ctx.Query("from"),
		To:   ctx.Query("to"),
	}

	res, err := c.service.DashboardStats(ctx.Context(), &req)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching dashboard stats", res))
}

func (c *adminController) ListOrders(ctx *fiber.Ctx) error {
	res, err := c.service.ListOrders(ctx.Context(),
		ctx.Query("status"),
		ctx.QueryInt("limit", 20),
		ctx.QueryInt("offset", 0),
	)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching orders", res))
}

func (c *adminController) ListUsers(ctx *fiber.Ctx) error {
	res, err := c.service.ListUsers(ctx.Context())
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching users", res))
}
