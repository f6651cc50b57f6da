package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/raflyryhnsyh/sea-catering/internal/entity"
)

type CreateTestimonialRequest struct {
	Name    string `json:"name" validate:"required"`
	Message string `json:"message" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
}

type TestimonialResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

func NewTestimonialResponse(t *entity.Testimonial) *TestimonialResponse {
	if t == nil {
		return nil
	}
	return &TestimonialResponse{
		Id:        t.Id,
		Name:      t.Name,
		Message:   t.Message,
		Rating:    t.Rating,
		CreatedAt: t.CreatedAt,
	}
}
