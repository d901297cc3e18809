package util

import (
	"time"
)

const layout = "2006-01-02"

// All market data is formatted in New York time, regardless of where
// the process runs.
var MarketLocation = mustLoadLocation("America/New_York")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, MarketLocation)
}

func DateLte(t1, t2 time.Time) bool {
	return t1.Before(t2) || t1.Format(layout) == t2.Format(layout)
}

// FormatDate renders t as YYYY-MM-DD in New York time.
func FormatDate(t time.Time) string {
	return t.In(MarketLocation).Format(layout)
}

// FormatDateTime renders t as a full timestamp in New York time, used
// for news items in model prompts.
func FormatDateTime(t time.Time) string {
	return t.In(MarketLocation).Format("2006-01-02 15:04:05") + " (New_York Time)"
}

func IsWeekend(t time.Time) bool {
	wd := t.In(MarketLocation).Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// PriorMidnight returns midnight New York time on the day before t.
// Bars queries end here so the evaluation day's own bar is excluded.
func PriorMidnight(t time.Time) time.Time {
	nyt := t.In(MarketLocation)
	return time.Date(nyt.Year(), nyt.Month(), nyt.Day()-1, 0, 0, 0, 0, MarketLocation)
}

// AtDecisionTime normalizes t to the simulated decision time, shortly
// after market open.
func AtDecisionTime(t time.Time) time.Time {
	nyt := t.In(MarketLocation)
	return time.Date(nyt.Year(), nyt.Month(), nyt.Day(), 9, 32, 0, 0, MarketLocation)
}
