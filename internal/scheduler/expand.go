package scheduler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/marcelomendesnai/medpet/internal/constants"
)

// ExpandSlots derives the full set of daily dose times from the first dose
// time and the dosing interval in hours. It is pure: the same inputs always
// produce the same slots, so the live preview and the persisted schedule
// never diverge.
//
// A non-positive interval or an unparsable first time degrades to a
// single-slot schedule containing firstTime unchanged; the result is never
// empty.
func ExpandSlots(firstTime string, frequencyHours int) []string {
	t, err := time.Parse(constants.TimeFormat, firstTime)
	if err != nil || frequencyHours <= 0 {
		return []string{firstTime}
	}

	count := constants.HoursPerDay / frequencyHours
	if count < 1 {
		count = 1
	}
	if count > constants.MaxSlotsPerDay {
		count = constants.MaxSlotsPerDay
	}

	slots := make([]string, 0, count)
	for i := 0; i < count; i++ {
		hour := (t.Hour() + i*frequencyHours) % constants.HoursPerDay
		slots = append(slots, fmt.Sprintf("%02d:%02d", hour, t.Minute()))
	}
	return slots
}

// ParseFrequency normalizes a user-supplied dosing interval ("12h", "12")
// into a positive number of hours.
func ParseFrequency(s string) (int, error) {
	trimmed := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "h")
	hours, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("invalid frequency %q: expected a number of hours like \"12h\"", s)
	}
	if hours <= 0 {
		return 0, fmt.Errorf("frequency must be a positive number of hours, got %d", hours)
	}
	return hours, nil
}
