package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/raflyryhnsyh/sea-catering/internal/dto"
	"github.com/raflyryhnsyh/sea-catering/internal/entity"
	"github.com/raflyryhnsyh/sea-catering/internal/repository/specification"
	"github.com/raflyryhnsyh/sea-catering/internal/repository/unitofwork"
	"github.com/raflyryhnsyh/sea-catering/pkg/pricing"
)

const planCatalogCacheKey = "meal_plans:catalog"

type IPlanService interface {
	List(ctx context.Context) ([]*dto.MealPlanResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.MealPlanResponse, error)
	Create(ctx context.Context, req *dto.CreateMealPlanRequest) (*dto.MealPlanResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateMealPlanRequest) (*dto.MealPlanResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CalculatePrice(ctx context.Context, req *dto.CalculatePriceRequest) (*dto.PriceQuoteResponse, error)
}

type planService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
}

func NewPlanService(uowFactory unitofwork.RepositoryFactory) IPlanService {
	return &planService{
		uowFactory: uowFactory,
		cache:      gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func (s *planService) List(ctx context.Context) ([]*dto.MealPlanResponse, error) {
	if cached, found := s.cache.Get(planCatalogCacheKey); found {
		return cached.([]*dto.MealPlanResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	plans, err := uow.MealPlanRepository().FindAll(ctx, specification.OrderBy{Field: "price"})
	if err != nil {
		return nil, dto.NewUpstreamError("list meal plans", err)
	}

	responses := make([]*dto.MealPlanResponse, len(plans))
	for i, plan := range plans {
		responses[i] = dto.NewMealPlanResponse(plan)
	}
	s.cache.Set(planCatalogCacheKey, responses, gocache.DefaultExpiration)
	return responses, nil
}

func (s *planService) Get(ctx context.Context, id uuid.UUID) (*dto.MealPlanResponse, error) {
	plan, err := s.findPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewMealPlanResponse(plan), nil
}

func (s *planService) Create(ctx context.Context, req *dto.CreateMealPlanRequest) (*dto.MealPlanResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, dto.NewValidationError("invalid meal plan request: %v", err)
	}

	plan := &entity.MealPlan{
		Id:          uuid.New(),
		Name:        req.Name,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
		Benefits:    req.Benefits,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.MealPlanRepository().Create(ctx, plan); err != nil {
		return nil, dto.NewUpstreamError("create meal plan", err)
	}
	s.cache.Delete(planCatalogCacheKey)
	return dto.NewMealPlanResponse(plan), nil
}

func (s *planService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateMealPlanRequest) (*dto.MealPlanResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, dto.NewValidationError("invalid meal plan request: %v", err)
	}

	plan, err := s.findPlan(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.Price != nil {
		plan.Price = *req.Price
	}
	if req.Image != nil {
		plan.Image = *req.Image
	}
	if req.Description != nil {
		plan.Description = *req.Description
	}
	if req.Benefits != nil {
		plan.Benefits = req.Benefits
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.MealPlanRepository().Update(ctx, plan); err != nil {
		return nil, dto.NewUpstreamError("update meal plan", err)
	}
	s.cache.Delete(planCatalogCacheKey)
	return dto.NewMealPlanResponse(plan), nil
}

func (s *planService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findPlan(ctx, id); err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.MealPlanRepository().Delete(ctx, id); err != nil {
		return dto.NewUpstreamError("delete meal plan", err)
	}
	s.cache.Delete(planCatalogCacheKey)
	return nil
}

func (s *planService) CalculatePrice(ctx context.Context, req *dto.CalculatePriceRequest) (*dto.PriceQuoteResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, dto.NewValidationError("invalid price request: %v", err)
	}

	planId, err := uuid.Parse(req.PlanId)
	if err != nil {
		return nil, dto.NewValidationError("invalid plan id")
	}

	plan, err := s.findPlan(ctx, planId)
	if err != nil {
		return nil, err
	}

	monthlyPrice, err := pricing.MonthlyPrice(plan.Price, req.MealTypes, req.DeliveryDays)
	if err != nil {
		return nil, dto.NewValidationError("%v", err)
	}

	return &dto.PriceQuoteResponse{
		PlanId:        plan.Id,
		PlanName:      plan.Name,
		PricePerMeal:  plan.Price,
		MealsPerDay:   len(req.MealTypes),
		DaysPerWeek:   len(req.DeliveryDays),
		WeeksPerMonth: pricing.WeeksPerMonth,
		MonthlyPrice:  monthlyPrice,
	}, nil
}

func (s *planService) findPlan(ctx context.Context, id uuid.UUID) (*entity.MealPlan, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	plan, err := uow.MealPlanRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, dto.NewUpstreamError("find meal plan", err)
	}
	if plan == nil {
		return nil, &dto.NotFoundError{Resource: "meal plan"}
	}
	return plan, nil
}
