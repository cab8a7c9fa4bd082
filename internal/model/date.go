// Package model defines the domain types shared across the application.
package model

import (
	"fmt"
	"time"

	"github.com/yunz06/quan-li-chi-tieu/internal/common"
)

const (
	// DateLayout is the expense date format, DD-MM-YYYY.
	DateLayout = "02-01-2006"
	// MonthLayout is the month key format, MM-YYYY.
	MonthLayout = "01-2006"
)

// ParseDate parses an expense date in DD-MM-YYYY form. Out-of-range days
// (such as 31-02) are rejected.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (want DD-MM-YYYY)", common.ErrInvalidDate, s)
	}
	return t, nil
}

// ParseMonth parses a month key in MM-YYYY form. The month component must
// be a two-digit value between 01 and 12.
func ParseMonth(s string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (want MM-YYYY)", common.ErrInvalidMonth, s)
	}
	return t, nil
}

// MonthKey derives the MM-YYYY month key for a point in time.
func MonthKey(t time.Time) string {
	return t.Format(MonthLayout)
}

// CurrentMonth returns the month key for the current calendar month.
func CurrentMonth() string {
	return MonthKey(time.Now())
}
