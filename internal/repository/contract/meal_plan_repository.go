package contract

import (
	"context"

	"github.com/google/uuid"

	"github.com/raflyryhnsyh/sea-catering/internal/entity"
	"github.com/raflyryhnsyh/sea-catering/internal/repository/specification"
)

type MealPlanRepository interface {
	Create(ctx context.Context, plan *entity.MealPlan) error
	Update(ctx context.Context, plan *entity.MealPlan) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MealPlan, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MealPlan, error)
}
