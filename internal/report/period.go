package report

import (
	"fmt"
	"strconv"
	"time"

	"go-pos-ledger/pkg/apperror"
)

type Period string

const (
	Daily   Period = "daily"
	Weekly  Period = "weekly"
	Monthly Period = "monthly"
	Yearly  Period = "yearly"
)

// ParsePeriod maps a query value to a period; anything unknown is yearly
func ParsePeriod(s string) Period {
	switch p := Period(s); p {
	case Daily, Weekly, Monthly:
		return p
	}
	return Yearly
}

// Key returns the bucket a timestamp falls into. Keys are computed in UTC.
// Weeks are 1-indexed: Jan 1 is "Week 1", where a plain ceil(days/7) would
// give "Week 0".
func (p Period) Key(t time.Time) string {
	t = t.UTC()
	switch p {
	case Daily:
		return t.Format("2006-01-02")
	case Weekly:
		startOfYear := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		days := int(t.Sub(startOfYear) / (24 * time.Hour))
		week := (days + 6) / 7
		if week < 1 {
			week = 1
		}
		return fmt.Sprintf("Week %d, %d", week, t.Year())
	case Monthly:
		return fmt.Sprintf("%d-%d", t.Year(), int(t.Month()))
	default:
		return strconv.Itoa(t.Year())
	}
}

var ErrInvalidDateRange = apperror.Validation("Invalid date range")

var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseInstant accepts RFC 3339 timestamps and date-only values.
// Values without a zone are read as UTC.
func ParseInstant(s string) (time.Time, error) {
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDateRange
}

// DateRange is an inclusive [Start, End] window
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ParseDateRange returns nil when either bound is missing, which means "everything"
func ParseDateRange(start, end string) (*DateRange, error) {
	if start == "" || end == "" {
		return nil, nil
	}
	s, err := ParseInstant(start)
	if err != nil {
		return nil, err
	}
	e, err := ParseInstant(end)
	if err != nil {
		return nil, err
	}
	return &DateRange{Start: s, End: e}, nil
}
