package contract

import (
	"context"

	"github.com/raflyryhnsyh/sea-catering/internal/entity"
	"github.com/raflyryhnsyh/sea-catering/internal/repository/specification"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, sub *entity.Subscription) error
	Update(ctx context.Context, sub *entity.Subscription) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscription, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subscription, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// FindOrders returns the joined user+plan view for the admin orders table.
	FindOrders(ctx context.Context, status string, limit, offset int) ([]*entity.SubscriptionOrder, error)
}
