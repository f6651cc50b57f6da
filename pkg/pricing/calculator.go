// Package pricing computes monthly subscription prices from a meal plan's
// per-meal price and the customer's selections.
package pricing

import "errors"

// WeeksPerMonth approximates the average number of weeks in a month. The
// subscription window is 30 days, billed as 4.3 delivery weeks.
const WeeksPerMonth = 4.3

var (
	// ErrInvalidSelection is returned when either selection set is empty.
	// An empty set is a caller bug, not a zero-cost subscription.
	ErrInvalidSelection = errors.New("pricing: meal types and delivery days must not be empty")

	// ErrInvalidPrice is returned for a non-positive per-meal price.
	ErrInvalidPrice = errors.New("pricing: price per meal must be positive")
)

// MonthlyPrice returns pricePerMeal x len(mealTypes) x len(deliveryDays) x
// WeeksPerMonth. The result is intentionally not rounded; rounding happens
// once at the presentation boundary so repeated quotes never compound error.
func MonthlyPrice(pricePerMeal int, mealTypes, deliveryDays []string) (float64, error) {
	if pricePerMeal <= 0 {
		return 0, ErrInvalidPrice
	}
	if len(mealTypes) == 0 || len(deliveryDays) == 0 {
		return 0, ErrInvalidSelection
	}
	return float64(pricePerMeal) * float64(len(mealTypes)) * float64(len(deliveryDays)) * WeeksPerMonth, nil
}
