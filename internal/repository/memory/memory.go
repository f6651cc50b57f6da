// Package memory provides in-memory repository implementations used by
// service unit tests. Query specifications are interpreted by type switch,
// mirroring the SQL the GORM implementations would generate.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/raflyryhnsyh/sea-catering/internal/entity"
	"github.com/raflyryhnsyh/sea-catering/internal/repository/contract"
	"github.com/raflyryhnsyh/sea-catering/internal/repository/specification"
	"github.com/raflyryhnsyh/sea-catering/internal/repository/unitofwork"
)

// Store holds every table in one lockable struct so a UnitOfWork view stays
// consistent across repositories.
type Store struct {
	mu            sync.Mutex
	users         []*entity.User
	mealPlans     []*entity.MealPlan
	subscriptions []*entity.Subscription
	testimonials  []*entity.Testimonial
}

func NewStore() *Store {
	return &Store{}
}

// NewRepositoryFactory returns a unitofwork.RepositoryFactory backed by the
// store. Begin/Commit/Rollback are accepted but not transactional.
func (s *Store) NewRepositoryFactory() unitofwork.RepositoryFactory {
	return &factory{store: s}
}

type factory struct {
	store *Store
}

func (f *factory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &uow{store: f.store}
}

type uow struct {
	store *Store
}

func (u *uow) Begin(ctx context.Context) error { return nil }
func (u *uow) Commit() error                   { return nil }
func (u *uow) Rollback() error                 { return nil }

func (u *uow) UserRepository() contract.UserRepository {
	return &userRepository{store: u.store}
}

func (u *uow) MealPlanRepository() contract.MealPlanRepository {
	return &mealPlanRepository{store: u.store}
}

func (u *uow) SubscriptionRepository() contract.SubscriptionRepository {
	return &subscriptionRepository{store: u.store}
}

func (u *uow) TestimonialRepository() contract.TestimonialRepository {
	return &testimonialRepository{store: u.store}
}

// matchSubscription interprets the subscription-relevant specifications.
func matchSubscription(s *entity.Subscription, spec specification.Specification) bool {
	switch v := spec.(type) {
	case specification.ByID:
		return s.Id == v.ID
	case specification.OwnedBy:
		return s.UserId == v.UserID
	case specification.WithStatus:
		return string(s.Status) == v.Status
	case specification.AutoRenewing:
		return s.AutoRenewal
	case specification.EndsOnOrBefore:
		return !s.EndDate.After(v.Date)
	case specification.EndsBefore:
		return s.EndDate.Before(v.Date)
	case specification.EndsOnOrAfter:
		return !s.EndDate.Before(v.Date)
	case specification.CreatedBetween:
		return !s.CreatedAt.Before(v.From) && s.CreatedAt.Before(v.To.AddDate(0, 0, 1))
	case specification.OrderBy, specification.Pagination:
		return true
	}
	return true
}

func orderSpecs(specs []specification.Specification) (ordered bool, field string, desc bool) {
	for _, spec := range specs {
		if v, ok := spec.(specification.OrderBy); ok {
			return true, v.Field, v.Desc
		}
	}
	return false, "", false
}

func sortSubscriptions(subs []*entity.Subscription, field string, desc bool) {
	sort.SliceStable(subs, func(i, j int) bool {
		var less bool
		switch field {
		case "start_date":
			less = subs[i].StartDate.Before(subs[j].StartDate)
		case "end_date":
			less = subs[i].EndDate.Before(subs[j].EndDate)
		default:
			less = subs[i].CreatedAt.Before(subs[j].CreatedAt)
		}
		if desc {
			return !less
		}
		return less
	})
}

type subscriptionRepository struct {
	store *Store
}

func (r *subscriptionRepository) Create(ctx context.Context, sub *entity.Subscription) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if sub.Id == uuid.Nil {
		sub.Id = uuid.New()
	}
	cp := *sub
	r.store.subscriptions = append(r.store.subscriptions, &cp)
	return nil
}

func (r *subscriptionRepository) Update(ctx context.Context, sub *entity.Subscription) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, existing := range r.store.subscriptions {
		if existing.Id == sub.Id {
			cp := *sub
			r.store.subscriptions[i] = &cp
			return nil
		}
	}
	cp := *sub
	r.store.subscriptions = append(r.store.subscriptions, &cp)
	return nil
}

func (r *subscriptionRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscription, error) {
	results, err := r.FindAll(ctx, specs...)
	if err != nil || len(results) == 0 {
		return nil, err
	}
	return results[0], nil
}

func (r *subscriptionRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subscription, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var results []*entity.Subscription
	for _, sub := range r.store.subscriptions {
		ok := true
		for _, spec := range specs {
			if !matchSubscription(sub, spec) {
				ok = false
				break
			}
		}
		if ok {
			cp := *sub
			results = append(results, &cp)
		}
	}
	if ordered, field, desc := orderSpecs(specs); ordered {
		sortSubscriptions(results, field, desc)
	}
	return results, nil
}

func (r *subscriptionRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	results, err := r.FindAll(ctx, specs...)
	return int64(len(results)), err
}

func (r *subscriptionRepository) FindOrders(ctx context.Context, status string, limit, offset int) ([]*entity.SubscriptionOrder, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var orders []*entity.SubscriptionOrder
	for _, sub := range r.store.subscriptions {
		if status != "" && string(sub.Status) != status {
			continue
		}
		order := &entity.SubscriptionOrder{
			Id:        sub.Id,
			UserId:    sub.UserId,
			Status:    sub.Status,
			StartDate: sub.StartDate,
			EndDate:   sub.EndDate,
			CreatedAt: sub.CreatedAt,
		}
		for _, u := range r.store.users {
			if u.Id == sub.UserId {
				order.UserEmail = u.Email
				order.UserFullName = u.FullName
			}
		}
		for _, p := range r.store.mealPlans {
			if p.Id == sub.PlanId {
				order.PlanName = p.Name
				order.PlanPrice = p.Price
			}
		}
		orders = append(orders, order)
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	if offset > len(orders) {
		offset = len(orders)
	}
	orders = orders[offset:]
	if limit > 0 && limit < len(orders) {
		orders = orders[:limit]
	}
	return orders, nil
}
