package mapper

import (
	"github.com/raflyryhnsyh/sea-catering/internal/entity"
	"github.com/raflyryhnsyh/sea-catering/internal/model"
)

type SubscriptionMapper struct{}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{}
}

func (m *SubscriptionMapper) ToEntity(s *model.Subscription) *entity.Subscription {
	if s == nil {
		return nil
	}
	return &entity.Subscription{
		Id:              s.Id,
		UserId:          s.UserId,
		PlanId:          s.PlanId,
		PhoneNumber:     s.PhoneNumber,
		MealTypes:       []string(s.MealTypes),
		DeliveryDays:    []string(s.DeliveryDays),
		Allergies:       s.Allergies,
		Status:          entity.SubscriptionStatus(s.Status),
		StartDate:       s.StartDate,
		EndDate:         s.EndDate,
		PauseStart:      s.PauseStart,
		PauseEnd:        s.PauseEnd,
		AutoRenewal:     s.AutoRenewal,
		PaymentStatus:   entity.PaymentStatus(s.PaymentStatus),
		MidtransOrderId: s.MidtransOrderId,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func (m *SubscriptionMapper) ToModel(s *entity.Subscription) *model.Subscription {
	if s == nil {
		return nil
	}
	return &model.Subscription{
		Id:              s.Id,
		UserId:          s.UserId,
		PlanId:          s.PlanId,
		PhoneNumber:     s.PhoneNumber,
		MealTypes:       s.MealTypes,
		DeliveryDays:    s.DeliveryDays,
		Allergies:       s.Allergies,
		Status:          string(s.Status),
		StartDate:       s.StartDate,
		EndDate:         s.EndDate,
		PauseStart:      s.PauseStart,
		PauseEnd:        s.PauseEnd,
		AutoRenewal:     s.AutoRenewal,
		PaymentStatus:   string(s.PaymentStatus),
		MidtransOrderId: s.MidtransOrderId,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
