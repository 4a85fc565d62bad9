package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidRange = errors.New("invalid range")

type AnalysisRange string

const (
	Range24H AnalysisRange = "24H"
	Range7D  AnalysisRange = "7D"
	Range1W  AnalysisRange = "1W"
	Range30D AnalysisRange = "30D"
	Range1M  AnalysisRange = "1M"
	Range3M  AnalysisRange = "3M"
	RangeYTD AnalysisRange = "YTD"
	Range1Y  AnalysisRange = "1Y"
	RangeALL AnalysisRange = "ALL"
)

// DefaultAllRangeDays bounds the ALL range when no config overrides it.
const DefaultAllRangeDays = 730

func ParseAnalysisRange(s string) (AnalysisRange, error) {
	r := AnalysisRange(strings.ToUpper(strings.TrimSpace(s)))
	switch r {
	case Range24H, Range7D, Range1W, Range30D, Range1M, Range3M, RangeYTD, Range1Y, RangeALL:
		return r, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRange, s)
}

// Window is an inclusive range of UTC calendar days.
type Window struct {
	Start time.Time
	End   time.Time
	Days  int
}

// Window maps the range onto calendar days ending on now's day.
func (r AnalysisRange) Window(now time.Time, allRangeDays int) Window {
	end := StartOfDay(now)
	if allRangeDays <= 0 {
		allRangeDays = DefaultAllRangeDays
	}

	days := 30
	switch r {
	case Range24H:
		days = 2
	case Range7D, Range1W:
		days = 7
	case Range30D, Range1M:
		days = 30
	case Range3M:
		days = 90
	case Range1Y:
		days = 365
	case RangeALL:
		days = allRangeDays
	case RangeYTD:
		jan1 := time.Date(end.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		days = int(end.Sub(jan1).Hours()/24) + 1
	}

	return NewWindow(end.AddDate(0, 0, -(days - 1)), end)
}

func NewWindow(start, end time.Time) Window {
	start = StartOfDay(start)
	end = StartOfDay(end)
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 0 {
		days = 0
	}
	return Window{Start: start, End: end, Days: days}
}

func (w Window) Dates() []time.Time {
	out := make([]time.Time, 0, w.Days)
	for d := w.Start; !d.After(w.End); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

func (w Window) Contains(t time.Time) bool {
	d := StartOfDay(t)
	return !d.Before(w.Start) && !d.After(w.End)
}

// StartOfDay truncates to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay is the exclusive upper bound of t's day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1)
}
