// Package dateutils resolves the date conventions found in hand-maintained
// Thai spreadsheets: slash- or dash-separated components, Buddhist or
// Gregorian era years, short-form two-digit years, and free-text labels that
// embed a date.
package dateutils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// buddhistEraOffset converts between Buddhist Era and Gregorian years.
	buddhistEraOffset = 543

	// Years above this are assumed Buddhist Era.
	buddhistYearFloor = 2400

	// Two-digit years above the pivot are short-form Buddhist years (41-99 →
	// 25xx); at or below they are short-form Gregorian years (0-40 → 20xx).
	shortYearPivot = 40
)

// DisplayLayout is the Buddhist-era presentation format, DD/MM/YYYY.
const DisplayLayout = "02/01/2006"

// datePattern matches a day-month-year shaped substring anywhere in free
// text, with /, - or . as separator.
var datePattern = regexp.MustCompile(`(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{2,4})`)

// now is stubbed in tests.
var now = time.Now

// Resolve parses a raw date cell plus an optional time cell into an instant.
// Slash-separated input reads as day/month/year. Dash-separated input is
// tried year-month-day first and falls back to day-month-year when that does
// not form a real calendar date. Unparseable input resolves to the current
// instant; callers that need "no date" semantics must check the raw cell for
// emptiness before calling.
func Resolve(dateStr, timeStr string) time.Time {
	dateStr = strings.TrimSpace(dateStr)
	hour, minute := parseClock(timeStr)

	var (
		day time.Time
		ok  bool
	)
	switch {
	case strings.Contains(dateStr, "/"):
		if parts, numeric := splitNumeric(dateStr, "/"); numeric {
			day, ok = dayMonthYear(parts)
		}
	case strings.Contains(dateStr, "-"):
		if parts, numeric := splitNumeric(dateStr, "-"); numeric {
			day, ok = yearMonthDay(parts)
			if !ok {
				day, ok = dayMonthYear(parts)
			}
		}
	}
	if !ok {
		return now()
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
}

// Scan searches free text, such as a sheet tab name, for the first embedded
// day-month-year date. It reports false when the text carries no
// recognizable date.
func Scan(label string) (time.Time, bool) {
	for _, m := range datePattern.FindAllStringSubmatch(label, -1) {
		d, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		y, _ := strconv.Atoi(m[3])
		if t, ok := calendarDate(normalizeYear(y), mo, d); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatBuddhist renders an instant as DD/MM/YYYY using the Buddhist year.
// Presentation only; sorting and grouping always use the Gregorian instant.
func FormatBuddhist(t time.Time) string {
	return fmt.Sprintf("%02d/%02d/%d", t.Day(), int(t.Month()), t.Year()+buddhistEraOffset)
}

// splitNumeric splits a date string on the separator and parses exactly
// three numeric components.
func splitNumeric(s, sep string) ([3]int, bool) {
	var parts [3]int
	fields := strings.Split(s, sep)
	if len(fields) != 3 {
		return parts, false
	}
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return parts, false
		}
		parts[i] = n
	}
	return parts, true
}

func dayMonthYear(p [3]int) (time.Time, bool) {
	return calendarDate(normalizeYear(p[2]), p[1], p[0])
}

func yearMonthDay(p [3]int) (time.Time, bool) {
	return calendarDate(normalizeYear(p[0]), p[1], p[2])
}

// normalizeYear expands short-form years around the pivot and converts
// Buddhist Era years to Gregorian.
func normalizeYear(year int) int {
	if year < 100 {
		if year > shortYearPivot {
			year += 2500
		} else {
			year += 2000
		}
	}
	if year > buddhistYearFloor {
		year -= buddhistEraOffset
	}
	return year
}

// calendarDate builds a date and verifies it exists on the calendar, so
// day 31 in a 30-day month is rejected rather than normalized forward.
func calendarDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// parseClock parses an optional hour:minute cell. Absent, malformed, or
// out-of-range components default to zero.
func parseClock(timeStr string) (hour, minute int) {
	fields := strings.Split(strings.TrimSpace(timeStr), ":")
	if len(fields) > 0 {
		hour, _ = strconv.Atoi(strings.TrimSpace(fields[0]))
	}
	if len(fields) > 1 {
		minute, _ = strconv.Atoi(strings.TrimSpace(fields[1]))
	}
	if hour < 0 || hour > 23 {
		hour = 0
	}
	if minute < 0 || minute > 59 {
		minute = 0
	}
	return hour, minute
}
