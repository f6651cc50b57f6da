package entity

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionStatus string
type PaymentStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "ACTIVE"
	SubscriptionStatusCancelled SubscriptionStatus = "CANCELLED"
	SubscriptionStatusExpired   SubscriptionStatus = "EXPIRED"

	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "success" // Must match Midtrans settlement mapping
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Meal type and delivery day values as stored in the subscriptions table.
const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
)

var MealTypes = []string{MealTypeBreakfast, MealTypeLunch, MealTypeDinner}

var DeliveryDays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// SubscriptionDurationDays is the fixed subscription length. Renewal opens a
// fresh window of the same length.
const SubscriptionDurationDays = 30

// Subscription is a single 30-day meal subscription window. Records are never
// deleted; cancellation and expiry only change Status, and renewal spawns a
// new record while the old one becomes EXPIRED.
//
// A pause window (PauseStart/PauseEnd, both set or both nil) is orthogonal to
// Status: a paused subscription is still ACTIVE. PaymentStatus tracks the
// Midtrans transaction for the window and is likewise orthogonal to Status.
type Subscription struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	PlanId          uuid.UUID
	PhoneNumber     string
	MealTypes       []string
	DeliveryDays    []string
	Allergies       *string
	Status          SubscriptionStatus
	StartDate       time.Time
	EndDate         time.Time
	PauseStart      *time.Time
	PauseEnd        *time.Time
	AutoRenewal     bool
	PaymentStatus   PaymentStatus
	MidtransOrderId *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Paused reports whether the subscription has a pause window set, regardless
// of whether today falls inside it.
func (s *Subscription) Paused() bool {
	return s.PauseStart != nil && s.PauseEnd != nil
}

// SubscriptionOrder is a joined view of a subscription with its owner and
// plan, used by the admin orders table.
type SubscriptionOrder struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	UserEmail    string
	UserFullName string
	PlanName     string
	PlanPrice    int
	Status       SubscriptionStatus
	StartDate    time.Time
	EndDate      time.Time
	CreatedAt    time.Time
}
