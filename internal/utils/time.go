package utils

import (
	"time"

	"github.com/marcelomendesnai/medpet/internal/constants"
)

// Today returns today's date string (YYYY-MM-DD).
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// DayOf returns the calendar date string (YYYY-MM-DD) of the given instant.
func DayOf(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// TimeOfDay returns the time-of-day string (HH:MM) of the given instant.
func TimeOfDay(t time.Time) string {
	return t.Format(constants.TimeFormat)
}

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(constants.DateFormat, dateStr)
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := ParseTime(timeStr)
	return err == nil
}

// ValidateDateFormat checks if the string matches the standard date format.
func ValidateDateFormat(dateStr string) bool {
	_, err := ParseDate(dateStr)
	return err == nil
}
