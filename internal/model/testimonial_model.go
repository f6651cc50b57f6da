package model

import (
	"time"

	"github.com/google/uuid"
)

type Testimonial struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    *uuid.UUID `gorm:"type:uuid;index"`
	Name      string     `gorm:"type:varchar(255);not null"`
	Message   string     `gorm:"type:text;not null"`
	Rating    int        `gorm:"not null"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}
