package models

import (
	"fmt"
	"time"
)

// TimeRange identifies one of the rollup windows computed per outlet.
type TimeRange string

const (
	RangeToday TimeRange = "today"
	Range7d    TimeRange = "7d"
	Range30d   TimeRange = "30d"
	Range90d   TimeRange = "90d"
)

// BusinessZone is the fixed UTC+5:30 offset used for every business-day
// boundary. Windows are anchored to IST midnight regardless of server zone.
var BusinessZone = time.FixedZone("IST", 5*3600+30*60)

func NewTimeRangeFromString(s string) (TimeRange, error) {
	switch TimeRange(s) {
	case RangeToday, Range7d, Range30d, Range90d:
		return TimeRange(s), nil
	}
	return "", fmt.Errorf("invalid time range: %q", s)
}

// Days returns the number of business days the range spans.
func (r TimeRange) Days() int {
	switch r {
	case RangeToday:
		return 1
	case Range7d:
		return 7
	case Range30d:
		return 30
	case Range90d:
		return 90
	default:
		panic(fmt.Sprintf("invalid TimeRange: %q", r))
	}
}

// Window returns the [start, end) interval for the range ending at now.
// The start is business midnight (IST) Days()-1 calendar days back, so the
// window always spans Days() business days including the current partial one.
func (r TimeRange) Window(now time.Time) (time.Time, time.Time) {
	bizNow := now.In(BusinessZone)
	midnight := time.Date(bizNow.Year(), bizNow.Month(), bizNow.Day(), 0, 0, 0, 0, BusinessZone)
	start := midnight.AddDate(0, 0, -(r.Days() - 1))
	return start.UTC(), now.UTC()
}

// PreviousWindow returns the window of identical duration immediately
// preceding [start, end). It is duration-aligned, not calendar-aligned.
func PreviousWindow(start, end time.Time) (time.Time, time.Time) {
	d := end.Sub(start)
	return start.Add(-d), start
}

// BusinessDay formats t as its IST calendar date, used as the daily
// time-series key.
func BusinessDay(t time.Time) string {
	return t.In(BusinessZone).Format("2006-01-02")
}

// BusinessHour returns the IST hour-of-day slot (0-23) for t.
func BusinessHour(t time.Time) int {
	return t.In(BusinessZone).Hour()
}
