package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/raflyryhnsyh/sea-catering/internal/entity"
)

// DashboardStatsRequest carries the date range selected in the admin
// dashboard. Dates are inclusive and date-only.
type DashboardStatsRequest struct {
	From string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

type DashboardStatsResponse struct {
	From                    string  `json:"from"`
	To                      string  `json:"to"`
	NewSubscriptions        int     `json:"new_subscriptions"`
	MonthlyRecurringRevenue float64 `json:"monthly_recurring_revenue"`
	Reactivations           int     `json:"reactivations"`
	ActiveSubscriptions     int     `json:"active_subscriptions"`
}

type OrderResponse struct {
	Id           uuid.UUID `json:"id"`
	UserId       uuid.UUID `json:"user_id"`
	UserEmail    string    `json:"user_email"`
	UserFullName string    `json:"user_full_name"`
	PlanName     string    `json:"plan_name"`
	PlanPrice    int       `json:"plan_price"`
	Status       string    `json:"status"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewOrderResponse(o *entity.SubscriptionOrder) *OrderResponse {
	if o == nil {
		return nil
	}
	return &OrderResponse{
		Id:           o.Id,
		UserId:       o.UserId,
		UserEmail:    o.UserEmail,
		UserFullName: o.UserFullName,
		PlanName:     o.PlanName,
		PlanPrice:    o.PlanPrice,
		Status:       string(o.Status),
		StartDate:    o.StartDate.Format(DateLayout),
		EndDate:      o.EndDate.Format(DateLayout),
		CreatedAt:    o.CreatedAt,
	}
}
