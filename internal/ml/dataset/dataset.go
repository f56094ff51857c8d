// Package dataset turns raw sale line-items into the feature tables the
// three forecasting models train on. Builders are pure functions over a
// slice of lines: same snapshot in, byte-identical tables out.
package dataset

import (
	"time"
)

// Line is one flattened sale line-item from the transaction store.
type Line struct {
	SaleID        uint
	ProductID     uint
	SubcategoryID uint
	Quantity      uint
	Date          time.Time
}

// monthStart normalizes t to the first instant of its calendar month, UTC.
func monthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func nextMonth(t time.Time) time.Time {
	return t.AddDate(0, 1, 0)
}

// weekStart normalizes t to the Monday of its ISO week, UTC midnight.
func weekStart(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	wd := int(day.Weekday())
	if wd == 0 {
		wd = 7 // Sunday closes the ISO week
	}
	return day.AddDate(0, 0, -(wd - 1))
}

func nextWeek(t time.Time) time.Time {
	return t.AddDate(0, 0, 7)
}
