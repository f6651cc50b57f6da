package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/raflyryhnsyh/sea-catering/internal/dto"
	"github.com/raflyryhnsyh/sea-catering/internal/entity"
	"github.com/raflyryhnsyh/sea-catering/internal/pkg/logger"
	"github.com/raflyryhnsyh/sea-catering/internal/repository/specification"
	"github.com/raflyryhnsyh/sea-catering/internal/repository/unitofwork"
	"github.com/raflyryhnsyh/sea-catering/pkg/pricing"
	"github.com/raflyryhnsyh/sea-catering/pkg/schedule"
)

const dashboardCacheTTL = 60 * time.Second

type IAdminService interface {
	DashboardStats(ctx context.Context, req *dto.DashboardStatsRequest) (*dto.DashboardStatsResponse, error)
	ListOrders(ctx context.Context, status string, limit, offset int) ([]*dto.OrderResponse, error)
	ListUsers(ctx context.Context) ([]*dto.UserResponse, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	redis      *redis.Client
	log        logger.ILogger
	now        func() time.Time
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, redisClient *redis.Client, log logger.ILogger) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		redis:      redisClient,
		log:        log,
		now:        time.Now,
	}
}

// DashboardStats aggregates the admin dashboard numbers over an inclusive
// date range. Results are cached in Redis for a minute; the cache is
// best-effort and a missing Redis never fails the request.
func (s *adminService) DashboardStats(ctx context.Context, req *dto.DashboardStatsRequest) (*dto.DashboardStatsResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, dto.NewValidationError("invalid stats request: %v", err)
	}

	today := schedule.DateOnly(s.now())
	from := today.AddDate(0, -1, 0)
	to := today
	var err error
	if req.From != "" {
		if from, err = time.Parse(dto.DateLayout, req.From); err != nil {
			return nil, dto.NewValidationError("invalid from date")
		}
	}
	if req.To != "" {
		if to, err = time.Parse(dto.DateLayout, req.To); err != nil {
			return nil, dto.NewValidationError("invalid to date")
		}
	}
	if to.Before(from) {
		return nil, dto.NewValidationError("to must not be before from")
	}

	cacheKey := fmt.Sprintf("dashboard:stats:%s:%s", from.Format(dto.DateLayout), to.Format(dto.DateLayout))
	if cached := s.cacheGet(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	subRepo := uow.SubscriptionRepository()

	newSubscriptions, err := subRepo.Count(ctx, specification.CreatedBetween{From: from, To: to})
	if err != nil {
		return nil, dto.NewUpstreamError("count new subscriptions", err)
	}

	active, err := subRepo.FindAll(ctx,
		specification.WithStatus{Status: string(entity.SubscriptionStatusActive)},
		specification.EndsOnOrAfter{Date: today},
	)
	if err != nil {
		return nil, dto.NewUpstreamError("find active subscriptions", err)
	}

	planPrices := map[string]int{}
	plans, err := uow.MealPlanRepository().FindAll(ctx)
	if err != nil {
		return nil, dto.NewUpstreamError("list meal plans", err)
	}
	for _, plan := range plans {
		planPrices[plan.Id.String()] = plan.Price
	}

	var mrr float64
	for _, sub := range active {
		price, ok := planPrices[sub.PlanId.String()]
		if !ok {
			continue
		}
		if monthly, priceErr := pricing.MonthlyPrice(price, sub.MealTypes, sub.DeliveryDays); priceErr == nil {
			mrr += monthly
		}
	}

	reactivations, err := s.countReactivations(ctx, uow, from, to)
	if err != nil {
		return nil, err
	}

	stats := &dto.DashboardStatsResponse{
		From:                    from.Format(dto.DateLayout),
		To:                      to.Format(dto.DateLayout),
		NewSubscriptions:        int(newSubscriptions),
		MonthlyRecurringRevenue: mrr,
		Reactivations:           reactivations,
		ActiveSubscriptions:     len(active),
	}
	s.cacheSet(ctx, cacheKey, stats)
	return stats, nil
}

// countReactivations counts subscriptions created in the range by users who
// had already cancelled an earlier one.
func (s *adminService) countReactivations(ctx context.Context, uow unitofwork.UnitOfWork, from, to time.Time) (int, error) {
	created, err := uow.SubscriptionRepository().FindAll(ctx, specification.CreatedBetween{From: from, To: to})
	if err != nil {
		return 0, dto.NewUpstreamError("find created subscriptions", err)
	}

	cancelled, err := uow.SubscriptionRepository().FindAll(ctx,
		specification.WithStatus{Status: string(entity.SubscriptionStatusCancelled)},
	)
	if err != nil {
		return 0, dto.NewUpstreamError("find cancelled subscriptions", err)
	}

	earliestCancel := map[string]time.Time{}
	for _, sub := range cancelled {
		key := sub.UserId.String()
		if existing, ok := earliestCancel[key]; !ok || sub.CreatedAt.Before(existing) {
			earliestCancel[key] = sub.CreatedAt
		}
	}

	count := 0
	for _, sub := range created {
		if cancelAt, ok := earliestCancel[sub.UserId.String()]; ok && cancelAt.Before(sub.CreatedAt) {
			count++
		}
	}
	return count, nil
}

func (s *adminService) ListOrders(ctx context.Context, status string, limit, offset int) ([]*dto.OrderResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	orders, err := uow.SubscriptionRepository().FindOrders(ctx, status, limit, offset)
	if err != nil {
		return nil, dto.NewUpstreamError("list orders", err)
	}

	responses := make([]*dto.OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = dto.NewOrderResponse(order)
	}
	return responses, nil
}

func (s *adminService) ListUsers(ctx context.Context) ([]*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	users, err := uow.UserRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, dto.NewUpstreamError("list users", err)
	}

	responses := make([]*dto.UserResponse, len(users))
	for i, user := range users {
		responses[i] = dto.NewUserResponse(user)
	}
	return responses, nil
}

func (s *adminService) cacheGet(ctx context.Context, key string) *dto.DashboardStatsResponse {
	if s.redis == nil {
		return nil
	}
	raw, err := s.redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	var stats dto.DashboardStatsResponse
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil
	}
	return &stats
}

func (s *adminService) cacheSet(ctx context.Context, key string, stats *dto.DashboardStatsResponse) {
	if s.redis == nil {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, key, raw, dashboardCacheTTL).Err(); err != nil && s.log != nil {
		s.log.Warn("admin", "failed to cache dashboard stats", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}
