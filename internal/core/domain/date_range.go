package domain

import "time"

// DateRange is an optional inclusive window of calendar dates.
// A nil bound leaves that side open.
type DateRange struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// NewDateRange builds a range from optional bounds.
func NewDateRange(from, to *time.Time) DateRange {
	return DateRange{From: from, To: to}
}

// IsZero reports whether neither bound is set.
func (r DateRange) IsZero() bool {
	return r.From == nil && r.To == nil
}

// IsInverted reports whether both bounds are set and From falls after To.
func (r DateRange) IsInverted() bool {
	if r.From == nil || r.To == nil {
		return false
	}
	return calendarDate(*r.From).After(calendarDate(*r.To))
}

// Contains reports whether t falls inside the range. Only the calendar date of
// each value is compared, so a bound of 2024-03-10 includes 2024-03-10T23:59.
func (r DateRange) Contains(t time.Time) bool {
	day := calendarDate(t)
	if r.From != nil && day.Before(calendarDate(*r.From)) {
		return false
	}
	if r.To != nil && day.After(calendarDate(*r.To)) {
		return false
	}
	return true
}

// Before reports whether t falls on a calendar date earlier than From.
// It is false for ranges without a lower bound.
func (r DateRange) Before(t time.Time) bool {
	if r.From == nil {
		return false
	}
	return calendarDate(t).Before(calendarDate(*r.From))
}

// calendarDate drops the time of day, keeping the date as seen in t's own location.
func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
