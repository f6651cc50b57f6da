package implementation

import (
	"context"

	"gorm.io/gorm"

	"github.com/raflyryhnsyh/sea-catering/internal/entity"
	"github.com/raflyryhnsyh/sea-catering/internal/mapper"
	"github.com/raflyryhnsyh/sea-catering/internal/model"
	"github.com/raflyryhnsyh/sea-catering/internal/repository/contract"
	"github.com/raflyryhnsyh/sea-catering/internal/repository/specification"
)

type TestimonialRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TestimonialMapper
}

func NewTestimonialRepository(db *gorm.DB) contract.TestimonialRepository {
	return &TestimonialRepositoryImpl{
		db:     db,
		mapper: mapper.NewTestimonialMapper(),
	}
}

func (r *TestimonialRepositoryImpl) Create(ctx context.Context, testimonial *entity.Testimonial) error {
	m := r.mapper.ToModel(testimonial)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*testimonial = *r.mapper.ToEntity(m)
	return nil
}

func (r *TestimonialRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Testimonial, error) {
	var models []*model.Testimonial
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Testimonial, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
