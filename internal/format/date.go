package format

import (
	"strings"
	"time"
)

// Missing is rendered in place of absent or unparsable values.
const Missing = "-"

const (
	DateLayout     = "Jan 02, 2006"
	DateTimeLayout = "Jan 02, 2006 15:04"
)

// DateInput lists the shapes a date can arrive in. Nil pointers, empty
// strings and zero times all count as missing.
type DateInput interface {
	time.Time | *time.Time | string | *string
}

// localLayouts are ISO-8601 forms without an offset; they are read in local time.
var localLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// ParseISO parses an ISO-8601 date or date-time. Values carrying an offset
// keep it; values without one are interpreted in time.Local.
func ParseISO(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, true
	}
	for _, layout := range localLayouts {
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders value as "Mar 05, 2024", or Missing.
func FormatDate[T DateInput](value T) string {
	return render(value, DateLayout)
}

// FormatDateTime renders value as "Mar 05, 2024 14:30", or Missing.
func FormatDateTime[T DateInput](value T) string {
	return render(value, DateTimeLayout)
}

func render[T DateInput](value T, layout string) string {
	parsed, ok := toTime(value)
	if !ok {
		return Missing
	}
	return parsed.Format(layout)
}

func toTime[T DateInput](value T) (time.Time, bool) {
	switch v := any(value).(type) {
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil || v.IsZero() {
			return time.Time{}, false
		}
		return *v, true
	case string:
		return ParseISO(v)
	case *string:
		if v == nil {
			return time.Time{}, false
		}
		return ParseISO(*v)
	}
	return time.Time{}, false
}

// YearsBetween counts whole years from start to now. A year only counts once
// its anniversary (month and day) has been reached. Starts after now give 0.
func YearsBetween(start, now time.Time) int {
	years := now.Year() - start.Year()
	if now.Month() < start.Month() || (now.Month() == start.Month() && now.Day() < start.Day()) {
		years--
	}
	return max(years, 0)
}

// Age returns the age in whole years of someone born on dateOfBirth.
// Missing or unparsable input yields 0.
func Age[T DateInput](dateOfBirth T) int {
	return AgeAt(dateOfBirth, time.Now())
}

func AgeAt[T DateInput](dateOfBirth T, now time.Time) int {
	dob, ok := toTime(dateOfBirth)
	if !ok {
		return 0
	}
	return YearsBetween(dob, now)
}

// YearsOfExperience returns the whole years elapsed since startDate.
func YearsOfExperience[T DateInput](startDate T) int {
	return YearsOfExperienceAt(startDate, time.Now())
}

func YearsOfExperienceAt[T DateInput](startDate T, now time.Time) int {
	start, ok := toTime(startDate)
	if !ok {
		return 0
	}
	return YearsBetween(start, now)
}
