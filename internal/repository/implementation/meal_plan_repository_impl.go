package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/raflyryhnsyh/sea-catering/internal/entity"
	"github.com/raflyryhnsyh/sea-catering/internal/mapper"
	"github.com/raflyryhnsyh/sea-catering/internal/model"
	"github.com/raflyryhnsyh/sea-catering/internal/repository/contract"
	"github.com/raflyryhnsyh/sea-catering/internal/repository/specification"
)

type MealPlanRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MealPlanMapper
}

func NewMealPlanRepository(db *gorm.DB) contract.MealPlanRepository {
	return &MealPlanRepositoryImpl{
		db:     db,
		mapper: mapper.NewMealPlanMapper(),
	}
}

func (r *MealPlanRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MealPlanRepositoryImpl) Create(ctx context.Context, plan *entity.MealPlan) error {
	m := r.mapper.ToModel(plan)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*plan = *r.mapper.ToEntity(m)
	return nil
}

func (r *MealPlanRepositoryImpl) Update(ctx context.Context, plan *entity.MealPlan) error {
	m := r.mapper.ToModel(plan)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*plan = *r.mapper.ToEntity(m)
	return nil
}

func (r *MealPlanRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.MealPlan{}, id).Error
}

func (r *MealPlanRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MealPlan, error) {
	var m model.MealPlan
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MealPlanRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MealPlan, error) {
	var models []*model.MealPlan
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.MealPlan, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
