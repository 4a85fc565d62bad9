package util

import (
	"time"
)

const layout = "2006-01-02"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func DateKey(t time.Time) string {
	return t.UTC().Format(layout)
}

func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layout, s, time.UTC)
}
