package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyPrice(t *testing.T) {
	// Rp 25.000 x 2 meals x 3 days x 4.3 weeks
	price, err := MonthlyPrice(25000, []string{"breakfast", "lunch"}, []string{"monday", "wednesday", "friday"})
	assert.NoError(t, err)
	assert.InDelta(t, 645000, price, 0.0001)
}

func TestMonthlyPriceSingleSelection(t *testing.T) {
	price, err := MonthlyPrice(30000, []string{"dinner"}, []string{"sunday"})
	assert.NoError(t, err)
	assert.InDelta(t, 129000, price, 0.0001)
}

func TestMonthlyPriceEmptyMealTypes(t *testing.T) {
	_, err := MonthlyPrice(25000, nil, []string{"monday"})
	assert.ErrorIs(t, err, ErrInvalidSelection)
}

func TestMonthlyPriceEmptyDeliveryDays(t *testing.T) {
	_, err := MonthlyPrice(25000, []string{"lunch"}, []string{})
	assert.ErrorIs(t, err, ErrInvalidSelection)
}

func TestMonthlyPriceInvalidPrice(t *testing.T) {
	_, err := MonthlyPrice(0, []string{"lunch"}, []string{"monday"})
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = MonthlyPrice(-100, []string{"lunch"}, []string{"monday"})
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestMonthlyPriceMonotonicInSelections(t *testing.T) {
	meals := []string{"breakfast", "lunch", "dinner"}
	days := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

	prev := 0.0
	for i := 1; i <= len(meals); i++ {
		price, err := MonthlyPrice(17000, meals[:i], days)
		assert.NoError(t, err)
		assert.Greater(t, price, prev)
		prev = price
	}

	prev = 0.0
	for i := 1; i <= len(days); i++ {
		price, err := MonthlyPrice(17000, meals, days[:i])
		assert.NoError(t, err)
		assert.Greater(t, price, prev)
		prev = price
	}
}
