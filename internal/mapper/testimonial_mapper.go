package mapper

import (
	"github.com/raflyryhnsyh/sea-catering/internal/entity"
	"github.com/raflyryhnsyh/sea-catering/internal/model"
)

type TestimonialMapper struct{}

func NewTestimonialMapper() *TestimonialMapper {
	return &TestimonialMapper{}
}

func (m *TestimonialMapper) ToEntity(t *model.Testimonial) *entity.Testimonial {
	if t == nil {
		return nil
	}
	return &entity.Testimonial{
		Id:        t.Id,
		UserId:    t.UserId,
		Name:      t.Name,
		Message:   t.Message,
		Rating:    t.Rating,
		CreatedAt: t.CreatedAt,
	}
}

func (m *TestimonialMapper) ToModel(t *entity.Testimonial) *model.Testimonial {
	if t == nil {
		return nil
	}
	return &model.Testimonial{
		Id:        t.Id,
		UserId:    t.UserId,
		Name:      t.Name,
		Message:   t.Message,
		Rating:    t.Rating,
		CreatedAt: t.CreatedAt,
	}
}
