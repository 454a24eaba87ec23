// ABOUTME: Filename timestamp parsing and local date formatting
// ABOUTME: Converts year-month-day-hour-minute stems to epoch seconds and back to dates
package importer

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// ParseStem parses a filename stem of the form "year-month-day-hour-minute"
// (no leading zeroes, e.g. "2023-2-3-15-59") into its five integer fields.
func ParseStem(stem string) (year, month, day, hour, minute int, err error) {
	parts := strings.Split(stem, "-")
	if len(parts) != 5 {
		return 0, 0, 0, 0, 0, fmt.Errorf("expected 5 fields in %q, got %d", stem, len(parts))
	}

	fields := make([]int, 5)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, 0, 0, 0, 0, fmt.Errorf("non-numeric field %q in %q", part, stem)
		}
		fields[i] = n
	}

	return fields[0], fields[1], fields[2], fields[3], fields[4], nil
}

// TimestampFor converts local wall-clock fields in loc to epoch seconds.
// Times inside a DST spring-forward gap normalize forward per time.Date;
// times inside a fall-back overlap resolve to the instant time.Date picks,
// deterministically for a given tzdata.
func TimestampFor(year, month, day, hour, minute int, loc *time.Location) (int64, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("month %d out of range", month)
	}
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hour %d out of range", hour)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("minute %d out of range", minute)
	}

	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc)

	// time.Date normalizes impossible dates (Feb 30 becomes Mar 2); reject
	// anything that moved off the requested calendar day.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return 0, fmt.Errorf("invalid calendar date %d-%d-%d", year, month, day)
	}

	return t.Unix(), nil
}

// LocalDate formats an epoch-seconds timestamp as the YYYY-MM-DD calendar
// date in loc.
func LocalDate(timestamp int64, loc *time.Location) string {
	return time.Unix(timestamp, 0).In(loc).Format("2006-01-02")
}

// Stem returns the base filename with its extension removed, the part that
// encodes the timestamp.
func Stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
