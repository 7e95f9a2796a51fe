// Package timeconv converts interview times between the 12-hour form shown to
// users ("2:00 PM") and the 24-hour form stored in Postgres ("14:00:00").
// Times are naive wall-clock values; no timezone is attached.
package timeconv

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var ErrInvalidTime = errors.New("invalid time")

var (
	clock12Pattern = regexp.MustCompile(`(?i)^(1[0-2]|0?[1-9]):([0-5][0-9])\s?(AM|PM)$`)
	clock24Pattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])(?::([0-5][0-9]))?$`)
)

// Valid12 reports whether s is a 12-hour clock value such as "9:30 am" or "12:00PM".
func Valid12(s string) bool {
	return clock12Pattern.MatchString(strings.TrimSpace(s))
}

// To24 converts "H:MM AM|PM" into "HH:MM:00".
func To24(s string) (string, error) {
	m := clock12Pattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", fmt.Errorf("%w: %q is not a 12-hour time", ErrInvalidTime, s)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])

	pm := strings.EqualFold(m[3], "PM")
	switch {
	case pm && hour != 12:
		hour += 12
	case !pm && hour == 12:
		hour = 0
	}
	return fmt.Sprintf("%02d:%02d:00", hour, minute), nil
}

// To12 converts "HH:MM" or "HH:MM:SS" into the canonical display form "H:MM AM|PM".
// Seconds are dropped.
func To12(s string) (string, error) {
	m := clock24Pattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", fmt.Errorf("%w: %q is not a 24-hour time", ErrInvalidTime, s)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, suffix), nil
}

// Normalize12 rewrites any accepted 12-hour value into the canonical display form.
func Normalize12(s string) (string, error) {
	t, err := To24(s)
	if err != nil {
		return "", err
	}
	return To12(t)
}

// MustTo12 is To12 for values read back from storage, which are always well formed.
// Malformed input is returned unchanged.
func MustTo12(s string) string {
	out, err := To12(s)
	if err != nil {
		return s
	}
	return out
}
