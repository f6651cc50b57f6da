package entity

import (
	"time"

	"github.com/google/uuid"
)

// Testimonial is a customer review shown on the landing page.
type Testimonial struct {
	Id        uuid.UUID
	UserId    *uuid.UUID
	Name      string
	Message   string
	Rating    int
	CreatedAt time.Time
}
