package storage

import (
	"errors"

	"github.com/marcelomendesnai/medpet/internal/models"
)

var (
	// ErrNotFound is returned when a medication does not exist in the registry.
	ErrNotFound = errors.New("medication not found")
	// ErrDuplicateDoseLog is returned when a dose log already exists for the
	// same medication, slot and calendar day.
	ErrDuplicateDoseLog = errors.New("dose already logged for this slot today")
)

// Provider is the persistence boundary: a registry of medications plus a
// newest-first log of dose events, loaded at startup and saved wholesale
// after every mutation.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Medication registry
	AddMedication(models.Medication) error
	GetMedication(id string) (models.Medication, error)
	GetAllMedications() ([]models.Medication, error)
	UpdateMedication(models.Medication) error
	DeleteMedication(id string) error

	// Dose log. AppendDoseLog keeps the log newest-first and rejects a
	// second entry for the same (medication, slot, day) with
	// ErrDuplicateDoseLog. RemoveDoseLog only touches entries recorded on
	// the given day; history from prior days is immutable.
	AppendDoseLog(models.DoseLog) error
	RemoveDoseLog(medicationID, timeSlot, day string) error
	GetDoseLogs() ([]models.DoseLog, error)
	GetDoseLogsForMedication(medicationID string) ([]models.DoseLog, error)

	// Utils
	GetConfigPath() string
}
