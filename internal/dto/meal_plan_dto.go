package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/raflyryhnsyh/sea-catering/internal/entity"
)

type MealPlanResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Price       int       `json:"price"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	Benefits    []string  `json:"benefits"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateMealPlanRequest struct {
	Name        string   `json:"name" validate:"required"`
	Price       int      `json:"price" validate:"required,gt=0"`
	Image       string   `json:"image,omitempty"`
	Description string   `json:"description,omitempty"`
	Benefits    []string `json:"benefits,omitempty"`
}

type UpdateMealPlanRequest struct {
	Name        *string  `json:"name,omitempty"`
	Price       *int     `json:"price,omitempty" validate:"omitempty,gt=0"`
	Image       *string  `json:"image,omitempty"`
	Description *string  `json:"description,omitempty"`
	Benefits    []string `json:"benefits,omitempty"`
}

func NewMealPlanResponse(p *entity.MealPlan) *MealPlanResponse {
	if p == nil {
		return nil
	}
	benefits := p.Benefits
	if benefits == nil {
		benefits = []string{}
	}
	return &MealPlanResponse{
		Id:          p.Id,
		Name:        p.Name,
		Price:       p.Price,
		Image:       p.Image,
		Description: p.Description,
		Benefits:    benefits,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
