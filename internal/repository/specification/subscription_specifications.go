package specification

import (
	"time"

	"gorm.io/gorm"
)

// WithStatus filters subscriptions by lifecycle status.
type WithStatus struct {
	Status string
}

func (s WithStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// AutoRenewing filters subscriptions with auto-renewal enabled.
type AutoRenewing struct{}

func (s AutoRenewing) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("auto_renewal = ?", true)
}

// EndsOnOrBefore matches subscriptions whose end date is <= the given date.
// Renewal eligibility: a window ending today is renewed, not expired.
type EndsOnOrBefore struct {
	Date time.Time
}

func (s EndsOnOrBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("end_date <= ?", s.Date)
}

// EndsBefore matches subscriptions whose end date is strictly before the
// given date. Expiry eligibility.
type EndsBefore struct {
	Date time.Time
}

func (s EndsBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("end_date < ?", s.Date)
}

// EndsOnOrAfter matches subscriptions still inside their window.
type EndsOnOrAfter struct {
	Date time.Time
}

func (s EndsOnOrAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("end_date >= ?", s.Date)
}

// CreatedBetween matches records created inside an inclusive date range.
type CreatedBetween struct {
	From time.Time
	To   time.Time
}

func (s CreatedBetween) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_at >= ? AND created_at < ?", s.From, s.To.AddDate(0, 0, 1))
}
