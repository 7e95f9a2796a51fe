// Package daterange resolves the named date-range presets used by list filters
// into concrete calendar-day bounds.
package daterange

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const Layout = "2006-01-02"

// Preset names a relative date window.
type Preset string

const (
	Today       Preset = "today"
	Yesterday   Preset = "yesterday"
	LastWeek    Preset = "last-week"
	LastMonth   Preset = "last-month"
	LastQuarter Preset = "last-quarter"
	LastYear    Preset = "last-year"
	Custom      Preset = "custom"
)

var aliases = map[string]Preset{
	"lw": LastWeek,
	"lm": LastMonth,
	"lq": LastQuarter,
	"ly": LastYear,
}

var (
	ErrUnknownPreset = errors.New("unknown date range")
	ErrCustomBounds  = errors.New("start and end dates are required")
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvertedRange = errors.New("start date is after end date")
)

// ParsePreset accepts canonical names and the short aliases lw, lm, lq, ly.
func ParsePreset(s string) (Preset, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if p, ok := aliases[key]; ok {
		return p, nil
	}
	switch p := Preset(key); p {
	case Today, Yesterday, LastWeek, LastMonth, LastQuarter, LastYear, Custom:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPreset, s)
}

// Range is an inclusive span of calendar days.
type Range struct {
	From time.Time
	To   time.Time
}

func (r Range) FromDate() string { return r.From.Format(Layout) }
func (r Range) ToDate() string   { return r.To.Format(Layout) }

// Resolver turns presets into ranges relative to its clock.
type Resolver struct {
	now func() time.Time
}

// NewResolver returns a Resolver reading the current day from now; nil means time.Now.
func NewResolver(now func() time.Time) *Resolver {
	if now == nil {
		now = time.Now
	}
	return &Resolver{now: now}
}

// Resolve computes the range for preset. startDate and endDate (YYYY-MM-DD) are
// only read for the custom preset.
func (r *Resolver) Resolve(preset, startDate, endDate string) (Range, error) {
	p, err := ParsePreset(preset)
	if err != nil {
		return Range{}, err
	}

	today := truncateDay(r.now())
	switch p {
	case Today:
		return Range{From: today, To: today}, nil
	case Yesterday:
		y := today.AddDate(0, 0, -1)
		return Range{From: y, To: y}, nil
	case LastWeek:
		return Range{From: today.AddDate(0, 0, -7), To: today}, nil
	case LastMonth:
		return Range{From: today.AddDate(0, -1, 0), To: today}, nil
	case LastQuarter:
		return Range{From: today.AddDate(0, -3, 0), To: today}, nil
	case LastYear:
		return Range{From: today.AddDate(-1, 0, 0), To: today}, nil
	}
	return customRange(startDate, endDate, today.Location())
}

func customRange(startDate, endDate string, loc *time.Location) (Range, error) {
	startDate, endDate = strings.TrimSpace(startDate), strings.TrimSpace(endDate)
	if startDate == "" || endDate == "" {
		return Range{}, ErrCustomBounds
	}
	from, err := time.ParseInLocation(Layout, startDate, loc)
	if err != nil {
		return Range{}, fmt.Errorf("%w: startDate %q", ErrInvalidDate, startDate)
	}
	to, err := time.ParseInLocation(Layout, endDate, loc)
	if err != nil {
		return Range{}, fmt.Errorf("%w: endDate %q", ErrInvalidDate, endDate)
	}
	if from.After(to) {
		return Range{}, ErrInvertedRange
	}
	return Range{From: from, To: to}, nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
