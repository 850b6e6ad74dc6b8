package validation

import (
	"fmt"

	"github.com/marcelomendesnai/medpet/internal/models"
	"github.com/marcelomendesnai/medpet/internal/utils"
)

// Medication checks a medication record before it is written to the
// registry. TimeSlots are not validated individually beyond the first slot;
// they are always recomputed from it on write.
func Medication(m models.Medication) error {
	if m.ID == "" {
		return fmt.Errorf("medication id cannot be empty")
	}
	if m.SubjectName == "" {
		return fmt.Errorf("subject name cannot be empty")
	}
	if m.Name == "" {
		return fmt.Errorf("medication name cannot be empty")
	}
	if m.Dosage == "" {
		return fmt.Errorf("dosage cannot be empty")
	}
	if m.FrequencyHours <= 0 {
		return fmt.Errorf("frequency must be a positive number of hours, got %d", m.FrequencyHours)
	}
	if m.PeriodDays <= 0 {
		return fmt.Errorf("treatment period must be a positive number of days, got %d", m.PeriodDays)
	}
	if len(m.TimeSlots) == 0 {
		return fmt.Errorf("medication must have at least one time slot")
	}
	if !utils.ValidateTimeFormat(m.TimeSlots[0]) {
		return fmt.Errorf("invalid time slot %q: expected HH:MM", m.TimeSlots[0])
	}
	if m.StartDate != "" && !utils.ValidateDateFormat(m.StartDate) {
		return fmt.Errorf("invalid start date %q: expected YYYY-MM-DD", m.StartDate)
	}
	switch m.Status {
	case models.MedicationActive, models.MedicationPaused:
	default:
		return fmt.Errorf("invalid status %q: expected active or paused", m.Status)
	}
	return nil
}
