// Package puzzle maps puzzle numbers to calendar days.
package puzzle

import (
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

const dateLayout = "2006-01-02"

// Epoch is the day of puzzle 0.
var Epoch = time.Date(2021, time.June, 19, 0, 0, 0, 0, time.UTC)

// Date returns the calendar day a puzzle was published.
func Date(number int) time.Time {
	return Epoch.AddDate(0, 0, number)
}

// NumberOn returns the puzzle published on the given day.
func NumberOn(day time.Time) int {
	d := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(Epoch).Hours() / 24)
}

// Truncate drops the clock part of t, keeping its calendar day.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate reads a YYYY-MM-DD date or a natural-language phrase such as
// "yesterday" relative to now. An empty input yields today.
func ParseDate(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Truncate(now), nil
	}
	if parsed, err := time.ParseInLocation(dateLayout, input, time.UTC); err == nil {
		return parsed, nil
	}

	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	r, err := w.Parse(strings.ToLower(input), now)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", input, err)
	}
	if r == nil {
		return time.Time{}, fmt.Errorf("invalid date %q", input)
	}
	return Truncate(r.Time), nil
}

// FormatDate renders a day as YYYY-MM-DD, or an empty string for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
