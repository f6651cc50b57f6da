package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/raflyryhnsyh/sea-catering/internal/entity"
)

// DateLayout is the wire format for all date-only fields.
const DateLayout = "2006-01-02"

type CreateSubscriptionRequest struct {
	PhoneNumber  string   `json:"phone_number" validate:"required,min=8,max=20"`
	PlanId       string   `json:"plan_id" validate:"required,uuid"`
	MealTypes    []string `json:"meal_types" validate:"required,min=1,dive,oneof=breakfast lunch dinner"`
	DeliveryDays []string `json:"delivery_days" validate:"required,min=1,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	Allergies    *string  `json:"allergies,omitempty"`
	AutoRenewal  *bool    `json:"auto_renewal,omitempty"` // defaults to true
}

type PauseSubscriptionRequest struct {
	PauseStart string `json:"pause_start" validate:"required,datetime=2006-01-02"`
	PauseEnd   string `json:"pause_end" validate:"required,datetime=2006-01-02"`
}

type CalculatePriceRequest struct {
	PlanId       string   `json:"plan_id" validate:"required,uuid"`
	MealTypes    []string `json:"meal_types" validate:"required,min=1,dive,oneof=breakfast lunch dinner"`
	DeliveryDays []string `json:"delivery_days" validate:"required,min=1,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
}

type PriceQuoteResponse struct {
	PlanId        uuid.UUID `json:"plan_id"`
	PlanName      string    `json:"plan_name"`
	PricePerMeal  int       `json:"price_per_meal"`
	MealsPerDay   int       `json:"meals_per_day"`
	DaysPerWeek   int       `json:"days_per_week"`
	WeeksPerMonth float64   `json:"weeks_per_month"`
	MonthlyPrice  float64   `json:"monthly_price"`
}

type SubscriptionResponse struct {
	Id              uuid.UUID `json:"id"`
	PlanId          uuid.UUID `json:"plan_id"`
	PhoneNumber     string    `json:"phone_number"`
	MealTypes       []string  `json:"meal_types"`
	DeliveryDays    []string  `json:"delivery_days"`
	Allergies       *string   `json:"allergies,omitempty"`
	Status          string    `json:"status"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	PauseStart      *string   `json:"pause_start,omitempty"`
	PauseEnd        *string   `json:"pause_end,omitempty"`
	PauseState      string    `json:"pause_state"`
	AutoRenewal     bool      `json:"auto_renewal"`
	PaymentStatus   string    `json:"payment_status"`
	CreatedAt       time.Time `json:"created_at"`
}

// PausePreviewResponse tells the user how many deliveries a pause window
// would skip. Preview only: the end date is never extended to compensate.
type PausePreviewResponse struct {
	PauseStart        string `json:"pause_start"`
	PauseEnd          string `json:"pause_end"`
	SkippedDeliveries int    `json:"skipped_deliveries"`
}

type CheckoutResponse struct {
	SubscriptionId  uuid.UUID `json:"subscription_id"`
	SnapToken       string    `json:"snap_token"`
	SnapRedirectUrl string    `json:"snap_redirect_url"`
	GrossAmount     int64     `json:"gross_amount"`
}

type MidtransWebhookRequest struct {
	OrderId           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
}

// NewSubscriptionResponse maps a subscription entity onto the wire shape,
// classifying the pause window against today.
func NewSubscriptionResponse(s *entity.Subscription, pauseState string) *SubscriptionResponse {
	if s == nil {
		return nil
	}
	res := &SubscriptionResponse{
		Id:            s.Id,
		PlanId:        s.PlanId,
		PhoneNumber:   s.PhoneNumber,
		MealTypes:     s.MealTypes,
		DeliveryDays:  s.DeliveryDays,
		Allergies:     s.Allergies,
		Status:        string(s.Status),
		StartDate:     s.StartDate.Format(DateLayout),
		EndDate:       s.EndDate.Format(DateLayout),
		PauseState:    pauseState,
		AutoRenewal:   s.AutoRenewal,
		PaymentStatus: string(s.PaymentStatus),
		CreatedAt:     s.CreatedAt,
	}
	if s.PauseStart != nil {
		v := s.PauseStart.Format(DateLayout)
		res.PauseStart = &v
	}
	if s.PauseEnd != nil {
		v := s.PauseEnd.Format(DateLayout)
		res.PauseEnd = &v
	}
	return res
}

// SubscriptionNotificationMessage is the payload queued on the notification
// topic for the email worker.
type SubscriptionNotificationMessage struct {
	Kind         string  `json:"kind"`
	Email        string  `json:"email"`
	FullName     string  `json:"full_name"`
	PlanName     string  `json:"plan_name"`
	MonthlyPrice float64 `json:"monthly_price"`
	EndDate      string  `json:"end_date"`
}
