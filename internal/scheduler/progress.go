package scheduler

import (
	"math"

	"github.com/marcelomendesnai/medpet/internal/constants"
	"github.com/marcelomendesnai/medpet/internal/models"
)

// TreatmentProgress is the cumulative doses-taken accounting for one
// medication over its full course.
type TreatmentProgress struct {
	Taken   int
	Total   int
	Percent float64
}

// Progress computes treatment progress for a medication from the full,
// unfiltered dose log. Skipped entries never advance Taken: the dose is
// still owed, so completion is pushed later rather than the course ending
// early. Percent is clamped at 100 even when more doses were logged than
// the current schedule predicts (e.g. after a mid-treatment frequency
// change).
func Progress(medicationID string, periodDays, frequencyHours int, logs []models.DoseLog) TreatmentProgress {
	var timesPerDay float64
	if frequencyHours > 0 {
		// Real division: a non-dividing frequency still yields a fractional
		// expected count per day.
		timesPerDay = float64(constants.HoursPerDay) / float64(frequencyHours)
	}

	total := int(math.Round(float64(periodDays) * timesPerDay))
	if total < 1 {
		total = 1
	}

	taken := 0
	for _, entry := range logs {
		if entry.MedicationID == medicationID && entry.Status == models.DoseTaken {
			taken++
		}
	}

	percent := math.Min(100, float64(taken)/float64(total)*100)
	return TreatmentProgress{Taken: taken, Total: total, Percent: percent}
}
