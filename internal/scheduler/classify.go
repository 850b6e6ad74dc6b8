package scheduler

import (
	"sort"
	"time"

	"github.com/marcelomendesnai/medpet/internal/constants"
	"github.com/marcelomendesnai/medpet/internal/models"
)

// Dose is one expected dose occurrence for today: a medication paired with
// one of its time slots, plus today's log entry for that slot if one exists.
type Dose struct {
	Medication models.Medication
	Slot       string
	Log        *models.DoseLog // nil when the slot has no entry today
}

// DayDoses partitions today's expected doses by fulfillment state. Taken
// holds every logged slot regardless of whether the entry is taken or
// skipped; the distinction is carried on the entry itself.
type DayDoses struct {
	Late  []Dose
	Next  []Dose
	Taken []Dose
}

// Classify partitions today's expected doses for the given medications into
// late, next and taken buckets relative to now. Only active medications
// participate; paused ones contribute nothing. Persisted time slots are used
// as-is, without re-expansion. The classification is a derived view,
// recomputed fresh on every call.
func Classify(meds []models.Medication, logs []models.DoseLog, now time.Time) DayDoses {
	today := now.Format(constants.DateFormat)
	current := now.Format(constants.TimeFormat)

	// Index today's entries by (medication, slot); first entry wins if an
	// old snapshot carries duplicates the store would now reject.
	logged := make(map[string]*models.DoseLog)
	for i := range logs {
		if logs[i].Day() != today {
			continue
		}
		key := logs[i].MedicationID + "|" + logs[i].TimeSlot
		if _, ok := logged[key]; !ok {
			logged[key] = &logs[i]
		}
	}

	var day DayDoses
	for _, med := range meds {
		if !med.IsActive() {
			continue
		}
		for _, slot := range med.TimeSlots {
			dose := Dose{Medication: med, Slot: slot}
			if entry, ok := logged[med.ID+"|"+slot]; ok {
				dose.Log = entry
				day.Taken = append(day.Taken, dose)
			} else if slot < current {
				// Zero-padded HH:MM compares correctly as a string.
				day.Late = append(day.Late, dose)
			} else {
				day.Next = append(day.Next, dose)
			}
		}
	}

	sortBySlot(day.Late)
	sortBySlot(day.Next)
	sortBySlot(day.Taken)
	return day
}

func sortBySlot(doses []Dose) {
	sort.SliceStable(doses, func(i, j int) bool {
		return doses[i].Slot < doses[j].Slot
	})
}
