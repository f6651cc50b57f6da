package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassifyPause(t *testing.T) {
	start := date(2024, time.June, 10)
	end := date(2024, time.June, 15)

	assert.Equal(t, PauseActive, ClassifyPause(&start, &end, date(2024, time.June, 12)))
	assert.Equal(t, PauseActive, ClassifyPause(&start, &end, date(2024, time.June, 10)))
	assert.Equal(t, PauseActive, ClassifyPause(&start, &end, date(2024, time.June, 15)))
	assert.Equal(t, PausePast, ClassifyPause(&start, &end, date(2024, time.June, 20)))
	assert.Equal(t, PauseUpcoming, ClassifyPause(&start, &end, date(2024, time.June, 1)))
}

func TestClassifyPauseNoWindow(t *testing.T) {
	start := date(2024, time.June, 10)

	assert.Equal(t, PauseNone, ClassifyPause(nil, nil, date(2024, time.June, 12)))
	assert.Equal(t, PauseNone, ClassifyPause(&start, nil, date(2024, time.June, 12)))
	assert.Equal(t, PauseNone, ClassifyPause(nil, &start, date(2024, time.June, 12)))
}

func TestClassifyPauseIgnoresTimeOfDay(t *testing.T) {
	start := date(2024, time.June, 10)
	end := date(2024, time.June, 15)
	lateEvening := time.Date(2024, time.June, 15, 23, 45, 0, 0, time.UTC)

	assert.Equal(t, PauseActive, ClassifyPause(&start, &end, lateEvening))
}

func TestSkippedDeliveriesFullWeek(t *testing.T) {
	// 2024-06-10 is a Monday; one full week holds one of each weekday.
	got := SkippedDeliveries(date(2024, time.June, 10), date(2024, time.June, 16), []string{"monday", "wednesday"})
	assert.Equal(t, 2, got)
}

func TestSkippedDeliveriesSingleDay(t *testing.T) {
	monday := date(2024, time.June, 10)

	assert.Equal(t, 1, SkippedDeliveries(monday, monday, []string{"monday"}))
	assert.Equal(t, 0, SkippedDeliveries(monday, monday, []string{"tuesday"}))
}

func TestSkippedDeliveriesMultipleWeeks(t *testing.T) {
	// Three full weeks starting Monday 2024-06-03.
	got := SkippedDeliveries(date(2024, time.June, 3), date(2024, time.June, 23), []string{"monday", "wednesday", "friday"})
	assert.Equal(t, 9, got)
}

func TestSkippedDeliveriesReversedWindow(t *testing.T) {
	got := SkippedDeliveries(date(2024, time.June, 16), date(2024, time.June, 10), []string{"monday"})
	assert.Equal(t, 0, got)
}

func TestSkippedDeliveriesNormalizesNames(t *testing.T) {
	got := SkippedDeliveries(date(2024, time.June, 10), date(2024, time.June, 16), []string{" Monday ", "WEDNESDAY"})
	assert.Equal(t, 2, got)
}
