package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Subscription struct {
	Id              uuid.UUID                     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId          uuid.UUID                     `gorm:"type:uuid;not null;index"`
	PlanId          uuid.UUID                     `gorm:"type:uuid;not null;index"`
	PhoneNumber     string                        `gorm:"type:varchar(20);not null"`
	MealTypes       datatypes.JSONSlice[string]   `gorm:"not null"`
	DeliveryDays    datatypes.JSONSlice[string]   `gorm:"not null"`
	Allergies       *string                       `gorm:"type:text"`
	Status          string                        `gorm:"type:varchar(20);not null;index"`
	StartDate       time.Time                     `gorm:"type:date;not null"`
	EndDate         time.Time                     `gorm:"type:date;not null"`
	PauseStart      *time.Time                    `gorm:"type:date"`
	PauseEnd        *time.Time                    `gorm:"type:date"`
	AutoRenewal     bool                          `gorm:"not null;default:true"`
	PaymentStatus   string                        `gorm:"type:varchar(20);not null;default:'pending'"`
	MidtransOrderId *string                       `gorm:"type:varchar(255)"`
	CreatedAt       time.Time                     `gorm:"autoCreateTime"`
	UpdatedAt       time.Time                     `gorm:"autoUpdateTime"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
