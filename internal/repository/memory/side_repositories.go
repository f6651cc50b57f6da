package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/raflyryhnsyh/sea-catering/internal/entity"
	"github.com/raflyryhnsyh/sea-catering/internal/repository/specification"
)

type userRepository struct {
	store *Store
}

func matchUser(u *entity.User, spec specification.Specification) bool {
	switch v := spec.(type) {
	case specification.ByID:
		return u.Id == v.ID
	case specification.FilterBy:
		switch v.Field {
		case "email":
			return u.Email == v.Value
		case "role":
			return string(u.Role) == v.Value
		}
	}
	return true
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if user.Id == uuid.Nil {
		user.Id = uuid.New()
	}
	cp := *user
	r.store.users = append(r.store.users, &cp)
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, existing := range r.store.users {
		if existing.Id == user.Id {
			cp := *user
			r.store.users[i] = &cp
			return nil
		}
	}
	cp := *user
	r.store.users = append(r.store.users, &cp)
	return nil
}

func (r *userRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	users, err := r.FindAll(ctx, specs...)
	if err != nil || len(users) == 0 {
		return nil, err
	}
	return users[0], nil
}

func (r *userRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var results []*entity.User
	for _, user := range r.store.users {
		ok := true
		for _, spec := range specs {
			if !matchUser(user, spec) {
				ok = false
				break
			}
		}
		if ok {
			cp := *user
			results = append(results, &cp)
		}
	}
	return results, nil
}

func (r *userRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	users, err := r.FindAll(ctx, specs...)
	return int64(len(users)), err
}

type mealPlanRepository struct {
	store *Store
}

func (r *mealPlanRepository) Create(ctx context.Context, plan *entity.MealPlan) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if plan.Id == uuid.Nil {
		plan.Id = uuid.New()
	}
	cp := *plan
	r.store.mealPlans = append(r.store.mealPlans, &cp)
	return nil
}

func (r *mealPlanRepository) Update(ctx context.Context, plan *entity.MealPlan) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, existing := range r.store.mealPlans {
		if existing.Id == plan.Id {
			cp := *plan
			r.store.mealPlans[i] = &cp
			return nil
		}
	}
	cp := *plan
	r.store.mealPlans = append(r.store.mealPlans, &cp)
	return nil
}

func (r *mealPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, existing := range r.store.mealPlans {
		if existing.Id == id {
			r.store.mealPlans = append(r.store.mealPlans[:i], r.store.mealPlans[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *mealPlanRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MealPlan, error) {
	plans, err := r.FindAll(ctx, specs...)
	if err != nil || len(plans) == 0 {
		return nil, err
	}
	return plans[0], nil
}

func (r *mealPlanRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MealPlan, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var results []*entity.MealPlan
	for _, plan := range r.store.mealPlans {
		ok := true
		for _, spec := range specs {
			if v, isByID := spec.(specification.ByID); isByID && plan.Id != v.ID {
				ok = false
				break
			}
		}
		if ok {
			cp := *plan
			results = append(results, &cp)
		}
	}
	return results, nil
}

type testimonialRepository struct {
	store *Store
}

func (r *testimonialRepository) Create(ctx context.Context, testimonial *entity.Testimonial) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if testimonial.Id == uuid.Nil {
		testimonial.Id = uuid.New()
	}
	cp := *testimonial
	r.store.testimonials = append(r.store.testimonials, &cp)
	return nil
}

func (r *testimonialRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Testimonial, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	results := make([]*entity.Testimonial, 0, len(r.store.testimonials))
	for _, t := range r.store.testimonials {
		cp := *t
		results = append(results, &cp)
	}
	return results, nil
}
