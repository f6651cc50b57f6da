package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MealPlan struct {
	Id          uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string                      `gorm:"type:varchar(255);not null"`
	Price       int                         `gorm:"not null"`
	Image       string                      `gorm:"type:text"`
	Description string                      `gorm:"type:text"`
	Benefits    datatypes.JSONSlice[string] `gorm:""`
	CreatedAt   time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt   time.Time                   `gorm:"autoUpdateTime"`
}

func (MealPlan) TableName() string {
	return "meal_plans"
}
