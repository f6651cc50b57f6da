package mapper

import (
	"github.com/raflyryhnsyh/sea-catering/internal/entity"
	"github.com/raflyryhnsyh/sea-catering/internal/model"
)

type MealPlanMapper struct{}

func NewMealPlanMapper() *MealPlanMapper {
	return &MealPlanMapper{}
}

func (m *MealPlanMapper) ToEntity(p *model.MealPlan) *entity.MealPlan {
	if p == nil {
		return nil
	}
	return &entity.MealPlan{
		Id:          p.Id,
		Name:        p.Name,
		Price:       p.Price,
		Image:       p.Image,
		Description: p.Description,
		Benefits:    []string(p.Benefits),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *MealPlanMapper) ToModel(p *entity.MealPlan) *model.MealPlan {
	if p == nil {
		return nil
	}
	return &model.MealPlan{
		Id:          p.Id,
		Name:        p.Name,
		Price:       p.Price,
		Image:       p.Image,
		Description: p.Description,
		Benefits:    p.Benefits,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
