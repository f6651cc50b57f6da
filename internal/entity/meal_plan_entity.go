package entity

import (
	"time"

	"github.com/google/uuid"
)

// MealPlan is admin-managed reference data. Price is Rupiah per meal; the
// monthly subscription price is derived from it, never stored.
type MealPlan struct {
	Id          uuid.UUID
	Name        string
	Price       int
	Image       string
	Description string
	Benefits    []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
