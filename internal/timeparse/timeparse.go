// Package timeparse resolves loosely structured natural-language time
// phrases ("tomorrow at 8 AM", "in 45 minutes", "Jan 15 2026 9 PM") into
// absolute UTC instants.
//
// Resolution is a deterministic precedence ladder, not NLP: rules are tried
// top to bottom from most specific to least, and the first rule that
// produces a usable instant wins. Resolve never fails; when nothing can be
// extracted it falls back to one hour from now.
package timeparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultHour is the hour of day assumed when a date is given without a
// time ("tomorrow", "Jan 15").
const DefaultHour = 9

var (
	// Conversational noise stripped before matching.
	noiseRe = regexp.MustCompile(`(?i)(?:remind(?:s)?\s+me(?:\s+to)?|i have a|i need to)\s*`)

	// Rule 1: absolute timestamp, e.g. "2025-12-31 23:59".
	fullTimestampRe = regexp.MustCompile(`(\d{4}-\d{2}-\d{2}\s+\d{2}:\d{2})`)

	// Rule 2: month name + day, optional year and time,
	// e.g. "Jan 15 2026 at 9 PM", "Dec 25 10:30am", "March 3".
	monthDayRe = regexp.MustCompile(`(?i)(?:on|at|by)?\s*(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)(?:[a-z]*)\s+(\d{1,2})(?:\s+(\d{4}))?(?:\s+(?:at|by)\s+(\d{1,2}(?::\d{2})?\s*(?:am|pm)?))?`)

	// 12-hour clock fragment, matched against a time phrase with spaces
	// removed.
	clockRe = regexp.MustCompile(`(?i)^(\d{1,2})(?::(\d{2}))?\s*(am|pm)`)

	// Rule 3: time phrase following "today"/"tomorrow".
	relTimeRe = regexp.MustCompile(`(?i)(?:at|by)?\s*(\d{1,2}(?::\d{2})?\s*(?:am|pm)?)`)

	bareNumberRe = regexp.MustCompile(`(\d{1,2})`)

	// Rule 4: relative offsets.
	inMinutesRe = regexp.MustCompile(`(?i)in (\d+) min(?:ute)?s?`)
	inHoursRe   = regexp.MustCompile(`(?i)in (\d+) hour(?:s)?`)
	inDaysRe    = regexp.MustCompile(`(?i)in (\d+) day(?:s)?`)
)

var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// Resolve converts a free-text time phrase into an absolute UTC instant.
// Every branch guarantees the result is in the future relative to now; if
// no time can be extracted the fallback is now plus one hour with minutes
// and seconds zeroed.
func Resolve(text string, now time.Time) time.Time {
	now = now.UTC()
	clean := strings.TrimSpace(noiseRe.ReplaceAllString(text, ""))

	if t, ok := resolveFullTimestamp(clean, now); ok {
		return t
	}
	if t, ok := resolveMonthDay(clean, now); ok {
		return t
	}
	if t, ok := resolveRelativeDay(clean, now); ok {
		return t
	}
	if t, ok := resolveOffset(clean, now); ok {
		return t
	}

	return fallback(now)
}

// fallback is the designed degradation: one hour from now, truncated to
// the hour.
func fallback(now time.Time) time.Time {
	t := now.Add(time.Hour)
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, time.UTC)
}

func resolveFullTimestamp(text string, now time.Time) (time.Time, bool) {
	m := fullTimestampRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", m[1], time.UTC)
	if err != nil || !t.After(now) {
		return time.Time{}, false
	}
	return t, true
}

func resolveMonthDay(text string, now time.Time) (time.Time, bool) {
	m := monthDayRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}

	month := months[strings.ToLower(m[1])]
	day, _ := strconv.Atoi(m[2])

	year := now.Year()
	explicitYear := m[3] != ""
	if explicitYear {
		year, _ = strconv.Atoi(m[3])
	}

	// Default to 9 AM when no time phrase was given.
	hour, minute := DefaultHour, 0
	if m[4] != "" {
		if h, min, ok := parseClock(m[4]); ok {
			hour, minute = h, min
		}
	}

	t := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
	if t.Month() != month || t.Day() != day {
		// Impossible calendar date, e.g. "Feb 30".
		return time.Time{}, false
	}

	// A past date with no explicit year means the next occurrence.
	if t.Before(now) && !explicitYear {
		t = t.AddDate(1, 0, 0)
	}

	if !t.After(now) {
		return time.Time{}, false
	}
	return t, true
}

// parseClock parses a 12-hour clock phrase such as "9 PM" or "10:30am".
// 12 AM maps to midnight, 12 PM stays noon.
func parseClock(phrase string) (hour, minute int, ok bool) {
	m := clockRe.FindStringSubmatch(strings.ReplaceAll(phrase, " ", ""))
	if m == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	switch strings.ToLower(m[3]) {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	return hour, minute, true
}

func resolveRelativeDay(text string, now time.Time) (time.Time, bool) {
	lower := strings.ToLower(text)

	// "tomorrow" is checked first: it contains no "today" and the two
	// keywords are mutually exclusive.
	var dayOffset int
	switch {
	case strings.Contains(lower, "tomorrow"):
		dayOffset = 1
	case strings.Contains(lower, "today"):
		dayOffset = 0
	default:
		return time.Time{}, false
	}

	base := now.AddDate(0, 0, dayOffset)
	target := time.Date(base.Year(), base.Month(), base.Day(), 0, 0, 0, 0, time.UTC)

	if m := relTimeRe.FindStringSubmatch(text); m != nil {
		hour, minute := parseRelativeClock(m[1], now, dayOffset)

		t := target.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)

		// A time already gone today means the same time tomorrow.
		if !t.After(now) && dayOffset == 0 {
			t = t.AddDate(0, 0, 1)
		}
		if t.After(now) {
			return t, true
		}
	}

	// No usable time phrase: default to 9 AM on the target day, or one
	// hour from now when that default has already passed.
	def := target.Add(DefaultHour * time.Hour)
	if !def.After(now) {
		return fallback(now), true
	}
	return def, true
}

// parseRelativeClock interprets the time phrase after "today"/"tomorrow".
// A bare number with no AM/PM marker is disambiguated heuristically: an
// hour already gone today, or an hour before 7, is assumed to be PM.
func parseRelativeClock(phrase string, now time.Time, dayOffset int) (hour, minute int) {
	if h, m, ok := parseClock(phrase); ok {
		return h, m
	}
	m := bareNumberRe.FindStringSubmatch(phrase)
	if m == nil {
		return 0, 0
	}
	hour, _ = strconv.Atoi(m[1])
	if hour < now.Hour() && dayOffset == 0 {
		hour += 12
	}
	if hour < 7 {
		hour += 12
	}
	return hour, 0
}

func resolveOffset(text string, now time.Time) (time.Time, bool) {
	if !strings.Contains(strings.ToLower(text), "in ") {
		return time.Time{}, false
	}
	if m := inMinutesRe.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		return now.Add(time.Duration(n) * time.Minute), true
	}
	if m := inHoursRe.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		return now.Add(time.Duration(n) * time.Hour), true
	}
	if m := inDaysRe.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		return now.AddDate(0, 0, n), true
	}
	return time.Time{}, false
}
