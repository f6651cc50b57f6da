package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/raflyryhnsyh/sea-catering/internal/dto"
	"github.com/raflyryhnsyh/sea-catering/internal/entity"
	"github.com/raflyryhnsyh/sea-catering/internal/pkg/logger"
	"github.com/raflyryhnsyh/sea-catering/internal/repository/specification"
	"github.com/raflyryhnsyh/sea-catering/internal/repository/unitofwork"
	"github.com/raflyryhnsyh/sea-catering/pkg/events"
	pktNats "github.com/raflyryhnsyh/sea-catering/pkg/nats"
	"github.com/raflyryhnsyh/sea-catering/pkg/pricing"
	"github.com/raflyryhnsyh/sea-catering/pkg/schedule"
)

var validate = validator.New()

type ISubscriptionService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error)
	Cancel(ctx context.Context, userId, subscriptionId uuid.UUID) (*dto.SubscriptionResponse, error)
	Pause(ctx context.Context, userId, subscriptionId uuid.UUID, req *dto.PauseSubscriptionRequest) (*dto.SubscriptionResponse, error)
	PreviewPause(ctx context.Context, userId, subscriptionId uuid.UUID, req *dto.PauseSubscriptionRequest) (*dto.PausePreviewResponse, error)
	Resume(ctx context.Context, userId, subscriptionId uuid.UUID) (*dto.SubscriptionResponse, error)
	ListForUser(ctx context.Context, userId uuid.UUID) ([]*dto.SubscriptionResponse, error)
	GetActive(ctx context.Context, userId uuid.UUID) (*dto.SubscriptionResponse, error)

	// Sweeps run synchronously from the read paths; there is no background
	// scheduler. A subscription can therefore stay expiry-eligible in storage
	// until the owner's next dashboard load.
	SweepRenewals(ctx context.Context, userId uuid.UUID) ([]*entity.Subscription, error)
	SweepExpirations(ctx context.Context, userId uuid.UUID) ([]uuid.UUID, error)
	ResolveActive(ctx context.Context, userId uuid.UUID) (*entity.Subscription, error)
}

type subscriptionService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	notifier       IPublisherService
	log            logger.ILogger
	now            func() time.Time
}

func NewSubscriptionService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	notifier IPublisherService,
	log logger.ILogger,
) ISubscriptionService {
	return &subscriptionService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		notifier:       notifier,
		log:            log,
		now:            time.Now,
	}
}

func (s *subscriptionService) today() time.Time {
	return schedule.DateOnly(s.now())
}

func (s *subscriptionService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, dto.NewValidationError("invalid subscription request: %v", err)
	}

	planId, err := uuid.Parse(req.PlanId)
	if err != nil {
		return nil, dto.NewValidationError("invalid plan id")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.MealPlanRepository().FindOne(ctx, specification.ByID{ID: planId})
	if err != nil {
		return nil, dto.NewUpstreamError("find meal plan", err)
	}
	if plan == nil {
		return nil, &dto.NotFoundError{Resource: "meal plan"}
	}

	// Single-active invariant is enforced here, not by a DB constraint, so it
	// holds regardless of which caller invokes create.
	active, err := s.ResolveActive(ctx, userId)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, &dto.ConflictError{Message: "user already has an active subscription"}
	}

	autoRenewal := true
	if req.AutoRenewal != nil {
		autoRenewal = *req.AutoRenewal
	}

	today := s.today()
	sub := &entity.Subscription{
		Id:            uuid.New(),
		UserId:        userId,
		PlanId:        planId,
		PhoneNumber:   req.PhoneNumber,
		MealTypes:     req.MealTypes,
		DeliveryDays:  req.DeliveryDays,
		Allergies:     req.Allergies,
		Status:        entity.SubscriptionStatusActive,
		StartDate:     today,
		EndDate:       today.AddDate(0, 0, entity.SubscriptionDurationDays),
		AutoRenewal:   autoRenewal,
		PaymentStatus: entity.PaymentStatusPending,
	}

	if err := uow.SubscriptionRepository().Create(ctx, sub); err != nil {
		return nil, dto.NewUpstreamError("create subscription", err)
	}

	monthlyPrice, _ := pricing.MonthlyPrice(plan.Price, sub.MealTypes, sub.DeliveryDays)
	s.publishEvent(ctx, events.SubscriptionCreated, sub, plan, monthlyPrice)
	s.queueNotification(ctx, uow, sub, plan, monthlyPrice, NotificationKindCreated)

	return dto.NewSubscriptionResponse(sub, string(schedule.ClassifyPause(sub.PauseStart, sub.PauseEnd, s.today()))), nil
}

func (s *subscriptionService) Cancel(ctx context.Context, userId, subscriptionId uuid.UUID) (*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := s.findOwned(ctx, uow, userId, subscriptionId)
	if err != nil {
		return nil, err
	}

	// Idempotent: cancelling an already-cancelled subscription is a no-op
	// success, so a double-clicking UI cannot produce an error.
	if sub.Status != entity.SubscriptionStatusCancelled {
		sub.Status = entity.SubscriptionStatusCancelled
		sub.AutoRenewal = false
		if err := uow.SubscriptionRepository().Update(ctx, sub); err != nil {
			return nil, dto.NewUpstreamError("cancel subscription", err)
		}
		s.publishEvent(ctx, events.SubscriptionCancelled, sub, nil, 0)
	}

	return dto.NewSubscriptionResponse(sub, string(schedule.ClassifyPause(sub.PauseStart, sub.PauseEnd, s.today()))), nil
}

func (s *subscriptionService) Pause(ctx context.Context, userId, subscriptionId uuid.UUID, req *dto.PauseSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := s.findOwned(ctx, uow, userId, subscriptionId)
	if err != nil {
		return nil, err
	}

	pauseStart, pauseEnd, err := s.validatePauseWindow(sub, req)
	if err != nil {
		return nil, err
	}

	sub.PauseStart = &pauseStart
	sub.PauseEnd = &pauseEnd
	if err := uow.SubscriptionRepository().Update(ctx, sub); err != nil {
		return nil, dto.NewUpstreamError("pause subscription", err)
	}
	s.publishEvent(ctx, events.SubscriptionPaused, sub, nil, 0)

	return dto.NewSubscriptionResponse(sub, string(schedule.ClassifyPause(sub.PauseStart, sub.PauseEnd, s.today()))), nil
}

func (s *subscriptionService) PreviewPause(ctx context.Context, userId, subscriptionId uuid.UUID, req *dto.PauseSubscriptionRequest) (*dto.PausePreviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := s.findOwned(ctx, uow, userId, subscriptionId)
	if err != nil {
		return nil, err
	}

	pauseStart, pauseEnd, err := s.validatePauseWindow(sub, req)
	if err != nil {
		return nil, err
	}

	return &dto.PausePreviewResponse{
		PauseStart:        pauseStart.Format(dto.DateLayout),
		PauseEnd:          pauseEnd.Format(dto.DateLayout),
		SkippedDeliveries: schedule.SkippedDeliveries(pauseStart, pauseEnd, sub.DeliveryDays),
	}, nil
}

func (s *subscriptionService) validatePauseWindow(sub *entity.Subscription, req *dto.PauseSubscriptionRequest) (time.Time, time.Time, error) {
	if err := validate.Struct(req); err != nil {
		return time.Time{}, time.Time{}, dto.NewValidationError("invalid pause request: %v", err)
	}

	pauseStart, err := time.Parse(dto.DateLayout, req.PauseStart)
	if err != nil {
		return time.Time{}, time.Time{}, dto.NewValidationError("invalid pause_start date")
	}
	pauseEnd, err := time.Parse(dto.DateLayout, req.PauseEnd)
	if err != nil {
		return time.Time{}, time.Time{}, dto.NewValidationError("invalid pause_end date")
	}

	if pauseEnd.Before(pauseStart) {
		return time.Time{}, time.Time{}, dto.NewValidationError("pause_end must not be before pause_start")
	}

	earliest := s.today()
	if sub.StartDate.After(earliest) {
		earliest = schedule.DateOnly(sub.StartDate)
	}
	if pauseStart.Before(earliest) {
		return time.Time{}, time.Time{}, dto.NewValidationError("pause_start must not be before %s", earliest.Format(dto.DateLayout))
	}
	if pauseEnd.After(schedule.DateOnly(sub.EndDate)) {
		return time.Time{}, time.Time{}, dto.NewValidationError("pause_end must not be after the subscription end date")
	}

	return pauseStart, pauseEnd, nil
}

func (s *subscriptionService) Resume(ctx context.Context, userId, subscriptionId uuid.UUID) (*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := s.findOwned(ctx, uow, userId, subscriptionId)
	if err != nil {
		return nil, err
	}

	// Resume reactivates unconditionally: the window is cleared and the
	// status forced back to ACTIVE even when no pause was set.
	wasPaused := sub.Paused()
	sub.PauseStart = nil
	sub.PauseEnd = nil
	sub.Status = entity.SubscriptionStatusActive
	if err := uow.SubscriptionRepository().Update(ctx, sub); err != nil {
		return nil, dto.NewUpstreamError("resume subscription", err)
	}
	if wasPaused {
		s.publishEvent(ctx, events.SubscriptionResumed, sub, nil, 0)
	}

	return dto.NewSubscriptionResponse(sub, string(schedule.ClassifyPause(sub.PauseStart, sub.PauseEnd, s.today()))), nil
}

func (s *subscriptionService) ListForUser(ctx context.Context, userId uuid.UUID) ([]*dto.SubscriptionResponse, error) {
	if _, err := s.SweepExpirations(ctx, userId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	subs, err := uow.SubscriptionRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "start_date", Desc: true},
	)
	if err != nil {
		return nil, dto.NewUpstreamError("list subscriptions", err)
	}

	today := s.today()
	responses := make([]*dto.SubscriptionResponse, len(subs))
	for i, sub := range subs {
		responses[i] = dto.NewSubscriptionResponse(sub, string(schedule.ClassifyPause(sub.PauseStart, sub.PauseEnd, today)))
	}
	return responses, nil
}

func (s *subscriptionService) GetActive(ctx context.Context, userId uuid.UUID) (*dto.SubscriptionResponse, error) {
	sub, err := s.ResolveActive(ctx, userId)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, nil
	}
	return dto.NewSubscriptionResponse(sub, string(schedule.ClassifyPause(sub.PauseStart, sub.PauseEnd, s.today()))), nil
}

// SweepRenewals clones every ACTIVE auto-renewing subscription whose window
// closed (end date <= today) into a fresh 30-day window and expires the
// original. It must run before SweepExpirations so a subscription eligible
// for both is renewed rather than expired without a successor.
func (s *subscriptionService) SweepRenewals(ctx context.Context, userId uuid.UUID) ([]*entity.Subscription, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	today := s.today()

	due, err := uow.SubscriptionRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.WithStatus{Status: string(entity.SubscriptionStatusActive)},
		specification.AutoRenewing{},
		specification.EndsOnOrBefore{Date: today},
	)
	if err != nil {
		return nil, dto.NewUpstreamError("find renewable subscriptions", err)
	}

	var renewed []*entity.Subscription
	for _, old := range due {
		old.Status = entity.SubscriptionStatusExpired
		if err := uow.SubscriptionRepository().Update(ctx, old); err != nil {
			return renewed, dto.NewUpstreamError("expire renewed subscription", err)
		}

		clone := &entity.Subscription{
			Id:            uuid.New(),
			UserId:        old.UserId,
			PlanId:        old.PlanId,
			PhoneNumber:   old.PhoneNumber,
			MealTypes:     old.MealTypes,
			DeliveryDays:  old.DeliveryDays,
			Allergies:     old.Allergies,
			Status:        entity.SubscriptionStatusActive,
			StartDate:     today,
			EndDate:       today.AddDate(0, 0, entity.SubscriptionDurationDays),
			AutoRenewal:   old.AutoRenewal,
			PaymentStatus: entity.PaymentStatusPending,
		}
		if err := uow.SubscriptionRepository().Create(ctx, clone); err != nil {
			return renewed, dto.NewUpstreamError("create renewal subscription", err)
		}
		renewed = append(renewed, clone)

		plan, planErr := uow.MealPlanRepository().FindOne(ctx, specification.ByID{ID: clone.PlanId})
		if planErr != nil || plan == nil {
			if s.log != nil {
				s.log.Warn("subscription", "skipping renewal notification, plan lookup failed", map[string]interface{}{
					"subscription_id": clone.Id,
					"plan_id":         clone.PlanId,
					"error":           errString(planErr),
				})
			}
			continue
		}
		monthlyPrice, _ := pricing.MonthlyPrice(plan.Price, clone.MealTypes, clone.DeliveryDays)
		s.publishEvent(ctx, events.SubscriptionRenewed, clone, plan, monthlyPrice)
		s.queueNotification(ctx, uow, clone, plan, monthlyPrice, NotificationKindRenewed)
	}
	return renewed, nil
}

// SweepExpirations marks every ACTIVE subscription with end date strictly
// before today as EXPIRED and returns the changed ids.
func (s *subscriptionService) SweepExpirations(ctx context.Context, userId uuid.UUID) ([]uuid.UUID, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	stale, err := uow.SubscriptionRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.WithStatus{Status: string(entity.SubscriptionStatusActive)},
		specification.EndsBefore{Date: s.today()},
	)
	if err != nil {
		return nil, dto.NewUpstreamError("find expired subscriptions", err)
	}

	var expired []uuid.UUID
	for _, sub := range stale {
		sub.Status = entity.SubscriptionStatusExpired
		if err := uow.SubscriptionRepository().Update(ctx, sub); err != nil {
			return expired, dto.NewUpstreamError("expire subscription", err)
		}
		expired = append(expired, sub.Id)
	}
	return expired, nil
}

// ResolveActive renews, expires, then returns the single currently-active
// subscription. Should more than one qualify, the latest start date wins; a
// defensive tie-break that creation-time checking normally makes unreachable.
func (s *subscriptionService) ResolveActive(ctx context.Context, userId uuid.UUID) (*entity.Subscription, error) {
	if _, err := s.SweepRenewals(ctx, userId); err != nil {
		return nil, err
	}
	if _, err := s.SweepExpirations(ctx, userId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	candidates, err := uow.SubscriptionRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.WithStatus{Status: string(entity.SubscriptionStatusActive)},
		specification.EndsOnOrAfter{Date: s.today()},
		specification.OrderBy{Field: "start_date", Desc: true},
	)
	if err != nil {
		return nil, dto.NewUpstreamError("resolve active subscription", err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	return candidates[0], nil
}

func errString(err error) string {
	if err == nil {
		return "plan not found"
	}
	return err.Error()
}

func (s *subscriptionService) findOwned(ctx context.Context, uow unitofwork.UnitOfWork, userId, subscriptionId uuid.UUID) (*entity.Subscription, error) {
	sub, err := uow.SubscriptionRepository().FindOne(ctx,
		specification.ByID{ID: subscriptionId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, dto.NewUpstreamError("find subscription", err)
	}
	if sub == nil {
		return nil, &dto.NotFoundError{Resource: "subscription"}
	}
	return sub, nil
}

func (s *subscriptionService) publishEvent(ctx context.Context, eventType string, sub *entity.Subscription, plan *entity.MealPlan, monthlyPrice float64) {
	if s.eventPublisher == nil {
		return
	}
	data := map[string]interface{}{
		"subscription_id": sub.Id,
		"user_id":         sub.UserId,
		"plan_id":         sub.PlanId,
		"status":          sub.Status,
		"end_date":        sub.EndDate.Format(dto.DateLayout),
	}
	if plan != nil {
		data["plan_name"] = plan.Name
		data["monthly_price"] = monthlyPrice
		data["currency"] = "IDR"
	}
	if err := s.eventPublisher.Publish(ctx, events.NewSubscriptionEvent(eventType, data)); err != nil && s.log != nil {
		s.log.Warn("subscription", "failed to publish lifecycle event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}

func (s *subscriptionService) queueNotification(ctx context.Context, uow unitofwork.UnitOfWork, sub *entity.Subscription, plan *entity.MealPlan, monthlyPrice float64, kind string) {
	if s.notifier == nil {
		return
	}
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: sub.UserId})
	if err != nil || user == nil {
		return
	}
	msg := &dto.SubscriptionNotificationMessage{
		Kind:         kind,
		Email:        user.Email,
		FullName:     user.FullName,
		PlanName:     plan.Name,
		MonthlyPrice: monthlyPrice,
		EndDate:      sub.EndDate.Format(dto.DateLayout),
	}
	if err := s.notifier.PublishSubscriptionNotification(ctx, msg); err != nil && s.log != nil {
		s.log.Warn("subscription", "failed to queue notification email", map[string]interface{}{
			"kind":  kind,
			"error": err.Error(),
		})
	}
}
