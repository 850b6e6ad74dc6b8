package models

type MedicationStatus string

const (
	MedicationActive MedicationStatus = "active"
	MedicationPaused MedicationStatus = "paused"
)

// Medication is a schedule template for one treatment course.
type Medication struct {
	ID             string           `json:"id"`
	SubjectName    string           `json:"subject_name"`
	Name           string           `json:"name"`
	Dosage         string           `json:"dosage"`
	FrequencyHours int              `json:"frequency_hours"`
	TimeSlots      []string         `json:"time_slots"` // HH:MM, always recomputed from the first slot + frequency
	Obs1           string           `json:"obs1,omitempty"`
	Obs2           string           `json:"obs2,omitempty"`
	PeriodDays     int              `json:"period_days"`
	StartDate      string           `json:"start_date"` // YYYY-MM-DD, informational only
	Status         MedicationStatus `json:"status"`
}

// IsActive reports whether the medication participates in today's scheduling.
func (m Medication) IsActive() bool {
	return m.Status == MedicationActive
}
