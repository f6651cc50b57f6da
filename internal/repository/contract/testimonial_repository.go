package contract

import (
	"context"

	"github.com/raflyryhnsyh/sea-catering/internal/entity"
	"github.com/raflyryhnsyh/sea-catering/internal/repository/specification"
)

type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *entity.Testimonial) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Testimonial, error)
}
