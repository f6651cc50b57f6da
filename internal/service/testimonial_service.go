package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/raflyryhnsyh/sea-catering/internal/dto"
	"github.com/raflyryhnsyh/sea-catering/internal/entity"
	"github.com/raflyryhnsyh/sea-catering/internal/repository/specification"
	"github.com/raflyryhnsyh/sea-catering/internal/repository/unitofwork"
)

type ITestimonialService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTestimonialRequest) (*dto.TestimonialResponse, error)
	List(ctx context.Context) ([]*dto.TestimonialResponse, error)
}

type testimonialService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTestimonialService(uowFactory unitofwork.RepositoryFactory) ITestimonialService {
	return &testimonialService{uowFactory: uowFactory}
}

func (s *testimonialService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTestimonialRequest) (*dto.TestimonialResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, dto.NewValidationError("invalid testimonial request: %v", err)
	}

	testimonial := &entity.Testimonial{
		Id:      uuid.New(),
		UserId:  &userId,
		Name:    req.Name,
		Message: req.Message,
		Rating:  req.Rating,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.TestimonialRepository().Create(ctx, testimonial); err != nil {
		return nil, dto.NewUpstreamError("create testimonial", err)
	}
	return dto.NewTestimonialResponse(testimonial), nil
}

func (s *testimonialService) List(ctx context.Context) ([]*dto.TestimonialResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	testimonials, err := uow.TestimonialRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, dto.NewUpstreamError("list testimonials", err)
	}

	responses := make([]*dto.TestimonialResponse, len(testimonials))
	for i, t := range testimonials {
		responses[i] = dto.NewTestimonialResponse(t)
	}
	return responses, nil
}
