package implementation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/raflyryhnsyh/sea-catering/internal/entity"
	"github.com/raflyryhnsyh/sea-catering/internal/mapper"
	"github.com/raflyryhnsyh/sea-catering/internal/model"
	"github.com/raflyryhnsyh/sea-catering/internal/repository/contract"
	"github.com/raflyryhnsyh/sea-catering/internal/repository/specification"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SubscriptionMapper
}

func NewSubscriptionRepository(db *gorm.DB) contract.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSubscriptionMapper(),
	}
}

func (r *SubscriptionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, sub *entity.Subscription) error {
	m := r.mapper.ToModel(sub)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*sub = *r.mapper.ToEntity(m)
	return nil
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, sub *entity.Subscription) error {
	m := r.mapper.ToModel(sub)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*sub = *r.mapper.ToEntity(m)
	return nil
}

func (r *SubscriptionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscription, error) {
	var m model.Subscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SubscriptionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subscription, error) {
	var models []*model.Subscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Subscription, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *SubscriptionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Subscription{}), specs...)
	err := query.Count(&count).Error
	return count, err
}

func (r *SubscriptionRepositoryImpl) FindOrders(ctx context.Context, status string, limit, offset int) ([]*entity.SubscriptionOrder, error) {
	var results []*entity.SubscriptionOrder

	query := r.db.WithContext(ctx).Table("subscriptions").
		Select(`
			subscriptions.id,
			subscriptions.user_id,
			users.email as user_email,
			users.full_name as user_full_name,
			meal_plans.name as plan_name,
			meal_plans.price as plan_price,
			subscriptions.status,
			subscriptions.start_date,
			subscriptions.end_date,
			subscriptions.created_at
		`).
		Joins("JOIN users ON subscriptions.user_id = users.id").
		Joins("JOIN meal_plans ON subscriptions.plan_id = meal_plans.id")

	if status != "" {
		query = query.Where("subscriptions.status = ?", status)
	}

	err := query.Order("subscriptions.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}
