package services

import (
	"time"

	"github.com/shopspring/decimal"

	apperrors "fintrack/internal/errors"
)

var hundred = decimal.NewFromInt(100)

// startOfDay truncates t to midnight UTC.
func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// monthBounds returns [first day of month, first day of next month) in UTC.
func monthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// daysLeftInMonth counts today and the remaining days of its month.
func daysLeftInMonth(today time.Time) int {
	_, next := monthBounds(today.Year(), today.Month())
	lastDay := next.AddDate(0, 0, -1).Day()
	left := lastDay - today.Day() + 1
	if left < 0 {
		return 0
	}
	return left
}

// monthKey formats the YYYY-MM bucket used by alerts.
func monthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// resolveMonth validates an optional month/year pair. Both or neither must
// be given; when neither is, the month containing now is used.
func resolveMonth(month, year *int, now time.Time) (int, time.Month, bool, error) {
	if month == nil && year == nil {
		now = now.UTC()
		return now.Year(), now.Month(), false, nil
	}
	if month == nil || year == nil {
		return 0, 0, false, apperrors.WithMessage(apperrors.ErrInvalidInput, "month and year must be provided together")
	}
	if *month < 1 || *month > 12 {
		return 0, 0, false, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}
	if *year < 1900 || *year > 9999 {
		return 0, 0, false, apperrors.WithMessage(apperrors.ErrInvalidInput, "year must be between 1900 and 9999")
	}
	return *year, time.Month(*month), true, nil
}

// percentOf returns part/whole*100 rounded to two places, or zero when
// whole is not positive.
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred).Round(2)
}
