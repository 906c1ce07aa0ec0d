package matchday

import (
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/racha-league/internal/domain/match"
)

// DayLayout is the calendar-day key format used by every bucketing path.
const DayLayout = "2006-01-02"

var matchDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// Buckets groups matches by calendar day in a reference location.
type Buckets struct {
	Days  []string
	ByDay map[string][]match.Match
}

func (b Buckets) Matches(day string) []match.Match {
	return b.ByDay[day]
}

func (b Buckets) Len() int {
	return len(b.Days)
}

// DayKey renders t as a calendar date in loc.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(location(loc)).Format(DayLayout)
}

// Bucketize groups matches per calendar day in loc. Matches without a date are dropped.
// Days are sorted ascending; order inside a day follows input order.
func Bucketize(matches []match.Match, loc *time.Location) Buckets {
	loc = location(loc)
	out := Buckets{ByDay: make(map[string][]match.Match)}
	for _, item := range matches {
		if !item.HasDate() {
			continue
		}
		key := DayKey(item.PlayedAt, loc)
		if _, seen := out.ByDay[key]; !seen {
			out.Days = append(out.Days, key)
		}
		out.ByDay[key] = append(out.ByDay[key], item)
	}
	sort.Strings(out.Days)

	return out
}

// ParseMatchDate parses the ISO-8601 shapes found in stored match rows. Values without an offset
// are read in loc. A bare date is placed at noon so that any offset keeps it on the same day.
func ParseMatchDate(raw string, loc *time.Location) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, false
	}
	loc = location(loc)

	for _, layout := range matchDateLayouts {
		var (
			parsed time.Time
			err    error
		)
		if layout == time.RFC3339 || layout == time.RFC3339Nano {
			parsed, err = time.Parse(layout, value)
		} else {
			parsed, err = time.ParseInLocation(layout, value, loc)
		}
		if err == nil {
			return parsed, true
		}
	}

	if day, err := time.ParseInLocation(DayLayout, value, loc); err == nil {
		return day.Add(12 * time.Hour), true
	}

	return time.Time{}, false
}

// ParseDay validates a day key and returns the [start, end) range it covers in loc.
func ParseDay(day string, loc *time.Location) (time.Time, time.Time, bool) {
	start, err := time.ParseInLocation(DayLayout, strings.TrimSpace(day), location(loc))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, start.AddDate(0, 0, 1), true
}

func location(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
