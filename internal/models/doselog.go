package models

import "time"

type DoseStatus string

const (
	DoseTaken   DoseStatus = "taken"
	DoseSkipped DoseStatus = "skipped"
)

// DoseLog records a single taken or skipped dose. MedicationName and
// SubjectName are snapshots taken at logging time so history stays readable
// after the medication is edited or deleted.
type DoseLog struct {
	ID             string     `json:"id"`
	MedicationID   string     `json:"medication_id"`
	MedicationName string     `json:"medication_name"`
	SubjectName    string     `json:"subject_name"`
	Timestamp      time.Time  `json:"timestamp"`
	TimeSlot       string     `json:"time_slot"` // HH:MM scheduled slot this entry fulfills or skips
	Status         DoseStatus `json:"status"`
}

// Day returns the calendar date (YYYY-MM-DD) the entry was recorded on.
func (l DoseLog) Day() string {
	return l.Timestamp.Format("2006-01-02")
}
