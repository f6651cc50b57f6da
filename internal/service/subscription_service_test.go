package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raflyryhnsyh/sea-catering/internal/dto"
	"github.com/raflyryhnsyh/sea-catering/internal/entity"
	"github.com/raflyryhnsyh/sea-catering/internal/repository/memory"
)

var testToday = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*subscriptionService, *memory.Store, *entity.MealPlan, uuid.UUID) {
	t.Helper()
	store := memory.NewStore()
	svc := NewSubscriptionService(store.NewRepositoryFactory(), nil, nil, nil).(*subscriptionService)
	svc.now = func() time.Time { return testToday }

	ctx := context.Background()
	plan := &entity.MealPlan{
		Id:    uuid.New(),
		Name:  "Protein Plan",
		Price: 40000,
	}
	require.NoError(t, store.NewRepositoryFactory().NewUnitOfWork(ctx).MealPlanRepository().Create(ctx, plan))

	userId := uuid.New()
	return svc, store, plan, userId
}

func seedSubscription(t *testing.T, store *memory.Store, sub *entity.Subscription) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, store.NewRepositoryFactory().NewUnitOfWork(ctx).SubscriptionRepository().Create(ctx, sub))
}

func createRequest(planId uuid.UUID) *dto.CreateSubscriptionRequest {
	return &dto.CreateSubscriptionRequest{
		PhoneNumber:  "081234567890",
		PlanId:       planId.String(),
		MealTypes:    []string{"breakfast", "dinner"},
		DeliveryDays: []string{"monday", "wednesday", "friday"},
	}
}

func TestCreateSubscription(t *testing.T) {
	ctx := context.Background()

	t.Run("sets a thirty day window starting today", func(t *testing.T) {
		svc, _, plan, userId := newTestService(t)

		res, err := svc.Create(ctx, userId, createRequest(plan.Id))
		require.NoError(t, err)

		assert.Equal(t, "2024-06-15", res.StartDate)
		assert.Equal(t, "2024-07-15", res.EndDate)
		assert.Equal(t, string(entity.SubscriptionStatusActive), res.Status)
		assert.True(t, res.AutoRenewal)
		assert.Equal(t, string(entity.PaymentStatusPending), res.PaymentStatus)
	})

	t.Run("rejects a second active subscription", func(t *testing.T) {
		svc, _, plan, userId := newTestService(t)

		_, err := svc.Create(ctx, userId, createRequest(plan.Id))
		require.NoError(t, err)

		_, err = svc.Create(ctx, userId, createRequest(plan.Id))
		var conflict *dto.ConflictError
		assert.True(t, errors.As(err, &conflict))
	})

	t.Run("unknown plan yields not found", func(t *testing.T) {
		svc, _, _, userId := newTestService(t)

		_, err := svc.Create(ctx, userId, createRequest(uuid.New()))
		var notFound *dto.NotFoundError
		assert.True(t, errors.As(err, &notFound))
	})

	t.Run("empty meal types fail validation", func(t *testing.T) {
		svc, _, plan, userId := newTestService(t)

		req := createRequest(plan.Id)
		req.MealTypes = nil
		_, err := svc.Create(ctx, userId, req)
		var validation *dto.ValidationError
		assert.True(t, errors.As(err, &validation))
	})

	t.Run("auto renewal can be disabled", func(t *testing.T) {
		svc, _, plan, userId := newTestService(t)

		off := false
		req := createRequest(plan.Id)
		req.AutoRenewal = &off
		res, err := svc.Create(ctx, userId, req)
		require.NoError(t, err)
		assert.False(t, res.AutoRenewal)
	})
}

func TestCancelSubscription(t *testing.T) {
	ctx := context.Background()

	t.Run("cancels and disables auto renewal", func(t *testing.T) {
		svc, _, plan, userId := newTestService(t)
		created, err := svc.Create(ctx, userId, createRequest(plan.Id))
		require.NoError(t, err)

		res, err := svc.Cancel(ctx, userId, created.Id)
		require.NoError(t, err)
		assert.Equal(t, string(entity.SubscriptionStatusCancelled), res.Status)
		assert.False(t, res.AutoRenewal)
	})

	t.Run("is idempotent", func(t *testing.T) {
		svc, _, plan, userId := newTestService(t)
		created, err := svc.Create(ctx, userId, createRequest(plan.Id))
		require.NoError(t, err)

		_, err = svc.Cancel(ctx, userId, created.Id)
		require.NoError(t, err)
		res, err := svc.Cancel(ctx, userId, created.Id)
		require.NoError(t, err)
		assert.Equal(t, string(entity.SubscriptionStatusCancelled), res.Status)
	})

	t.Run("cannot cancel another user's subscription", func(t *testing.T) {
		svc, _, plan, userId := newTestService(t)
		created, err := svc.Create(ctx, userId, createRequest(plan.Id))
		require.NoError(t, err)

		_, err = svc.Cancel(ctx, uuid.New(), created.Id)
		var notFound *dto.NotFoundError
		assert.True(t, errors.As(err, &notFound))
	})
}

func TestPauseSubscription(t *testing.T) {
	ctx := context.Background()

	t.Run("accepts a window inside the subscription", func(t *testing.T) {
		svc, _, plan, userId := newTestService(t)
		created, err := svc.Create(ctx, userId, createRequest(plan.Id))
		require.NoError(t, err)

		res, err := svc.Pause(ctx, userId, created.Id, &dto.PauseSubscriptionRequest{
			PauseStart: "2024-06-20",
			PauseEnd:   "2024-06-25",
		})
		require.NoError(t, err)
		assert.Equal(t, "2024-06-20", *res.PauseStart)
		assert.Equal(t, "2024-06-25", *res.PauseEnd)
		assert.Equal(t, "UPCOMING", res.PauseState)
		// pausing never shifts the window
		assert.Equal(t, created.EndDate, res.EndDate)
	})

	t.Run("a window covering today reads as active", func(t *testing.T) {
		svc, _, plan, userId := newTestService(t)
		created, err := svc.Create(ctx, userId, createRequest(plan.Id))
		require.NoError(t, err)

		res, err := svc.Pause(ctx, userId, created.Id, &dto.PauseSubscriptionRequest{
			PauseStart: "2024-06-15",
			PauseEnd:   "2024-06-18",
		})
		require.NoError(t, err)
		assert.Equal(t, "ACTIVE", res.PauseState)
	})

	t.Run("rejects a start in the past", func(t *testing.T) {
		svc, _, plan, userId := newTestService(t)
		created, err := svc.Create(ctx, userId, createRequest(plan.Id))
		require.NoError(t, err)

		_, err = svc.Pause(ctx, userId, created.Id, &dto.PauseSubscriptionRequest{
			PauseStart: "2024-06-14",
			PauseEnd:   "2024-06-18",
		})
		var validation *dto.ValidationError
		assert.True(t, errors.As(err, &validation))
	})

	t.Run("rejects an end beyond the subscription window", func(t *testing.T) {
		svc, _, plan, userId := newTestService(t)
		created, err := svc.Create(ctx, userId, createRequest(plan.Id))
		require.NoError(t, err)

		_, err = svc.Pause(ctx, userId, created.Id, &dto.PauseSubscriptionRequest{
			PauseStart: "2024-07-10",
			PauseEnd:   "2024-07-16",
		})
		var validation *dto.ValidationError
		assert.True(t, errors.As(err, &validation))
	})

	t.Run("rejects a reversed window", func(t *testing.T) {
		svc, _, plan, userId := newTestService(t)
		created, err := svc.Create(ctx, userId, createRequest(plan.Id))
		require.NoError(t, err)

		_, err = svc.Pause(ctx, userId, created.Id, &dto.PauseSubscriptionRequest{
			PauseStart: "2024-06-25",
			PauseEnd:   "2024-06-20",
		})
		var validation *dto.ValidationError
		assert.True(t, errors.As(err, &validation))
	})

	t.Run("resume reactivates a cancelled subscription", func(t *testing.T) {
		svc, store, plan, userId := newTestService(t)
		pauseStart := testToday.AddDate(0, 0, 2)
		pauseEnd := testToday.AddDate(0, 0, 5)
		sub := &entity.Subscription{
			Id:           uuid.New(),
			UserId:       userId,
			PlanId:       plan.Id,
			MealTypes:    []string{"lunch"},
			DeliveryDays: []string{"monday"},
			Status:       entity.SubscriptionStatusCancelled,
			StartDate:    testToday.AddDate(0, 0, -5),
			EndDate:      testToday.AddDate(0, 0, 25),
			PauseStart:   &pauseStart,
			PauseEnd:     &pauseEnd,
			AutoRenewal:  false,
		}
		seedSubscription(t, store, sub)

		res, err := svc.Resume(ctx, userId, sub.Id)
		require.NoError(t, err)
		assert.Equal(t, string(entity.SubscriptionStatusActive), res.Status)
		assert.Nil(t, res.PauseStart)
		assert.Nil(t, res.PauseEnd)
	})

	t.Run("resume clears the window", func(t *testing.T) {
		svc, _, plan, userId := newTestService(t)
		created, err := svc.Create(ctx, userId, createRequest(plan.Id))
		require.NoError(t, err)

		_, err = svc.Pause(ctx, userId, created.Id, &dto.PauseSubscriptionRequest{
			PauseStart: "2024-06-15",
			PauseEnd:   "2024-06-18",
		})
		require.NoError(t, err)

		res, err := svc.Resume(ctx, userId, created.Id)
		require.NoError(t, err)
		assert.Nil(t, res.PauseStart)
		assert.Nil(t, res.PauseEnd)
		assert.Equal(t, "NONE", res.PauseState)
	})
}

func TestPreviewPause(t *testing.T) {
	ctx := context.Background()
	svc, _, plan, userId := newTestService(t)
	created, err := svc.Create(ctx, userId, createRequest(plan.Id))
	require.NoError(t, err)

	// monday, wednesday, friday between 2024-06-17 and 2024-06-23 is one
	// occurrence of each
	res, err := svc.PreviewPause(ctx, userId, created.Id, &dto.PauseSubscriptionRequest{
		PauseStart: "2024-06-17",
		PauseEnd:   "2024-06-23",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, res.SkippedDeliveries)
}

func TestRenewalSweep(t *testing.T) {
	ctx := context.Background()

	t.Run("renews an auto renewing subscription at its end date", func(t *testing.T) {
		svc, store, plan, userId := newTestService(t)
		old := &entity.Subscription{
			Id:           uuid.New(),
			UserId:       userId,
			PlanId:       plan.Id,
			PhoneNumber:  "081234567890",
			MealTypes:    []string{"lunch"},
			DeliveryDays: []string{"monday"},
			Status:       entity.SubscriptionStatusActive,
			StartDate:    testToday.AddDate(0, 0, -30),
			EndDate:      testToday,
			AutoRenewal:  true,
		}
		seedSubscription(t, store, old)

		renewed, err := svc.SweepRenewals(ctx, userId)
		require.NoError(t, err)
		require.Len(t, renewed, 1)

		assert.Equal(t, testToday, renewed[0].StartDate)
		assert.Equal(t, testToday.AddDate(0, 0, 30), renewed[0].EndDate)
		assert.Equal(t, entity.SubscriptionStatusActive, renewed[0].Status)
		assert.True(t, renewed[0].AutoRenewal)
		assert.NotEqual(t, old.Id, renewed[0].Id)

		subs, err := svc.ListForUser(ctx, userId)
		require.NoError(t, err)
		require.Len(t, subs, 2)

		active, err := svc.ResolveActive(ctx, userId)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, renewed[0].Id, active.Id)
	})

	t.Run("does not renew when auto renewal is off", func(t *testing.T) {
		svc, store, plan, userId := newTestService(t)
		seedSubscription(t, store, &entity.Subscription{
			Id:           uuid.New(),
			UserId:       userId,
			PlanId:       plan.Id,
			MealTypes:    []string{"lunch"},
			DeliveryDays: []string{"monday"},
			Status:       entity.SubscriptionStatusActive,
			StartDate:    testToday.AddDate(0, 0, -31),
			EndDate:      testToday.AddDate(0, 0, -1),
			AutoRenewal:  false,
		})

		renewed, err := svc.SweepRenewals(ctx, userId)
		require.NoError(t, err)
		assert.Empty(t, renewed)
	})
}

func TestExpirationSweep(t *testing.T) {
	ctx := context.Background()
	svc, store, plan, userId := newTestService(t)

	stale := &entity.Subscription{
		Id:           uuid.New(),
		UserId:       userId,
		PlanId:       plan.Id,
		MealTypes:    []string{"lunch"},
		DeliveryDays: []string{"monday"},
		Status:       entity.SubscriptionStatusActive,
		StartDate:    testToday.AddDate(0, 0, -31),
		EndDate:      testToday.AddDate(0, 0, -1),
		AutoRenewal:  false,
	}
	seedSubscription(t, store, stale)

	expired, err := svc.SweepExpirations(ctx, userId)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, stale.Id, expired[0])

	active, err := svc.ResolveActive(ctx, userId)
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestResolveActive(t *testing.T) {
	ctx := context.Background()

	t.Run("a window ending today is still active", func(t *testing.T) {
		svc, store, plan, userId := newTestService(t)
		sub := &entity.Subscription{
			Id:           uuid.New(),
			UserId:       userId,
			PlanId:       plan.Id,
			MealTypes:    []string{"lunch"},
			DeliveryDays: []string{"monday"},
			Status:       entity.SubscriptionStatusActive,
			StartDate:    testToday.AddDate(0, 0, -30),
			EndDate:      testToday,
			AutoRenewal:  false,
		}
		seedSubscription(t, store, sub)

		active, err := svc.ResolveActive(ctx, userId)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, sub.Id, active.Id)
	})

	t.Run("latest start date wins a tie", func(t *testing.T) {
		svc, store, plan, userId := newTestService(t)
		older := &entity.Subscription{
			Id:           uuid.New(),
			UserId:       userId,
			PlanId:       plan.Id,
			MealTypes:    []string{"lunch"},
			DeliveryDays: []string{"monday"},
			Status:       entity.SubscriptionStatusActive,
			StartDate:    testToday.AddDate(0, 0, -10),
			EndDate:      testToday.AddDate(0, 0, 20),
			AutoRenewal:  false,
		}
		newer := &entity.Subscription{
			Id:           uuid.New(),
			UserId:       userId,
			PlanId:       plan.Id,
			MealTypes:    []string{"lunch"},
			DeliveryDays: []string{"monday"},
			Status:       entity.SubscriptionStatusActive,
			StartDate:    testToday.AddDate(0, 0, -2),
			EndDate:      testToday.AddDate(0, 0, 28),
			AutoRenewal:  false,
		}
		seedSubscription(t, store, older)
		seedSubscription(t, store, newer)

		active, err := svc.ResolveActive(ctx, userId)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, newer.Id, active.Id)
	})

	t.Run("cancelled subscriptions are never resolved", func(t *testing.T) {
		svc, _, plan, userId := newTestService(t)
		created, err := svc.Create(ctx, userId, createRequest(plan.Id))
		require.NoError(t, err)
		_, err = svc.Cancel(ctx, userId, created.Id)
		require.NoError(t, err)

		active, err := svc.ResolveActive(ctx, userId)
		require.NoError(t, err)
		assert.Nil(t, active)
	})
}
