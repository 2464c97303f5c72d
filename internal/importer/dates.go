package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// The schedule spans an academic-style year: November and December belong to
// the "start" year, January through October to the year after. Week axis
// fallback bounds below follow the same convention.
const (
	fallbackStartMonth = time.November
	fallbackStartDay   = 14
	fallbackEndMonth   = time.May
	fallbackEndDay     = 8
)

// FiscalStartYear returns the start year of the schedule that contains now.
// From November onward the start year is the current year; before November
// it is the previous year.
func FiscalStartYear(now time.Time) int {
	if now.Month() >= time.November {
		return now.Year()
	}
	return now.Year() - 1
}

// ResolveHeader turns a spreadsheet column header such as "Nov 14" or
// "11/14" into an absolute calendar date, inferring the year from now.
// Headers with month November or December resolve to the fiscal start year;
// all other months resolve to the year after.
func ResolveHeader(header string, now time.Time) (time.Time, error) {
	month, day, err := parseMonthDay(header)
	if err != nil {
		return time.Time{}, err
	}

	startYear := FiscalStartYear(now)
	year := startYear + 1
	if month >= time.November {
		year = startYear
	}

	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if date.Month() != month || date.Day() != day {
		return time.Time{}, fmt.Errorf("day %d is out of range for %s", day, month)
	}

	return date, nil
}

// parseMonthDay extracts a month and day from a short date header.
// Accepted forms: "<month abbreviation> <day>" and "<month>/<day>".
func parseMonthDay(header string) (time.Month, int, error) {
	trimmed := strings.TrimSpace(header)
	if trimmed == "" {
		return 0, 0, fmt.Errorf("empty header")
	}

	if strings.Contains(trimmed, "/") {
		parts := strings.Split(trimmed, "/")
		if len(parts) != 2 {
			return 0, 0, fmt.Errorf("malformed numeric header %q", header)
		}
		monthNum, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil || monthNum < 1 || monthNum > 12 {
			return 0, 0, fmt.Errorf("invalid month in header %q", header)
		}
		day, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || day < 1 || day > 31 {
			return 0, 0, fmt.Errorf("invalid day in header %q", header)
		}
		return time.Month(monthNum), day, nil
	}

	fields := strings.Fields(trimmed)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("malformed header %q", header)
	}

	month, err := parseMonthName(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month in header %q: %w", header, err)
	}
	day, err := strconv.Atoi(fields[1])
	if err != nil || day < 1 || day > 31 {
		return 0, 0, fmt.Errorf("invalid day in header %q", header)
	}

	return month, day, nil
}

// parseMonthName matches a case-insensitive English month abbreviation of at
// least three letters ("Nov", "Nove", "November").
func parseMonthName(name string) (time.Month, error) {
	lowered := strings.ToLower(name)
	if len(lowered) < 3 {
		return 0, fmt.Errorf("month %q too short", name)
	}
	for m := time.January; m <= time.December; m++ {
		if strings.HasPrefix(strings.ToLower(m.String()), lowered) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown month %q", name)
}

// FallbackWeeks generates the weekly date sequence used as the grid axis
// before any events exist: November 14 of the fiscal start year, stepping by
// seven days, through May 8 of the following year.
func FallbackWeeks(now time.Time) []time.Time {
	startYear := FiscalStartYear(now)
	start := time.Date(startYear, fallbackStartMonth, fallbackStartDay, 0, 0, 0, 0, time.UTC)
	end := time.Date(startYear+1, fallbackEndMonth, fallbackEndDay, 0, 0, 0, 0, time.UTC)

	var weeks []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 7) {
		weeks = append(weeks, d)
	}
	return weeks
}
