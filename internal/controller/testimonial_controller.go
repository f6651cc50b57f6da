package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/raflyryhnsyh/sea-catering/internal/dto"
	"github.com/raflyryhnsyh/sea-catering/internal/pkg/serverutils"
	"github.com/raflyryhnsyh/sea-catering/internal/service"
)

type ITestimonialController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type testimonialController struct {
	service service.ITestimonialService
}

func NewTestimonialController(service service.ITestimonialService) ITestimonialController {
	return &testimonialController{service: service}
}

func (c *testimonialController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/testimonials")
	h.Get("/", c.List)
	h.Post("/", serverutils.JwtMiddleware, c.Create)
}

func (c *testimonialController) Create(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateTestimonialRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	res, err := c.service.Create(ctx.Context(), userId, &req)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Testimonial created", res))
}

func (c *testimonialController) List(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.Context())
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching testimonials", res))
}
