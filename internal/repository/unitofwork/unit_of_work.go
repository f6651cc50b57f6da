package unitofwork

import (
	"context"

	"github.com/raflyryhnsyh/sea-catering/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	MealPlanRepository() contract.MealPlanRepository
	SubscriptionRepository() contract.SubscriptionRepository
	TestimonialRepository() contract.TestimonialRepository
}
