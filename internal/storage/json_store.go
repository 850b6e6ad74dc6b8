package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/marcelomendesnai/medpet/internal/logger"
	"github.com/marcelomendesnai/medpet/internal/models"
	"github.com/marcelomendesnai/medpet/internal/seed"
	"github.com/marcelomendesnai/medpet/internal/utils"
)

type snapshot struct {
	Version     int                 `json:"version"`
	Medications []models.Medication `json:"medications"`
	DoseLogs    []models.DoseLog    `json:"dose_logs"` // newest first
}

// JSONStore persists the whole dataset as a single JSON snapshot,
// overwritten after every mutation.
type JSONStore struct {
	path string
	snap *snapshot
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.snap = &snapshot{
		Version:     1,
		Medications: seed.Medications(),
		DoseLogs:    []models.DoseLog{},
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'medpet init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.snap = &snapshot{}
	if err := json.Unmarshal(data, s.snap); err != nil {
		// A corrupt snapshot must not block startup. Recover with the seed
		// dataset; the bad file is only overwritten on the next mutation.
		logger.Warn("Snapshot is unreadable, falling back to seed dataset", "path", s.path, "error", err)
		s.snap = &snapshot{
			Version:     1,
			Medications: seed.Medications(),
			DoseLogs:    []models.DoseLog{},
		}
		return nil
	}

	if s.snap.Medications == nil {
		s.snap.Medications = []models.Medication{}
	}
	if s.snap.DoseLogs == nil {
		s.snap.DoseLogs = []models.DoseLog{}
	}

	// Older snapshots predate the status and start date fields.
	for i := range s.snap.Medications {
		if s.snap.Medications[i].Status == "" {
			s.snap.Medications[i].Status = models.MedicationPaused
		}
		if s.snap.Medications[i].StartDate == "" {
			s.snap.Medications[i].StartDate = utils.Today()
		}
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) AddMedication(med models.Medication) error {
	if s.snap == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.snap.Medications = append(s.snap.Medications, med)
	return s.save()
}

func (s *JSONStore) GetMedication(id string) (models.Medication, error) {
	if s.snap == nil {
		return models.Medication{}, fmt.Errorf("storage not loaded")
	}

	for _, med := range s.snap.Medications {
		if med.ID == id {
			return med, nil
		}
	}
	return models.Medication{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

func (s *JSONStore) GetAllMedications() ([]models.Medication, error) {
	if s.snap == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	meds := make([]models.Medication, len(s.snap.Medications))
	copy(meds, s.snap.Medications)
	return meds, nil
}

func (s *JSONStore) UpdateMedication(med models.Medication) error {
	if s.snap == nil {
		return fmt.Errorf("storage not loaded")
	}

	for i := range s.snap.Medications {
		if s.snap.Medications[i].ID == med.ID {
			s.snap.Medications[i] = med
			return s.save()
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, med.ID)
}

// DeleteMedication removes the medication only. Dose history is kept; the
// denormalized name/subject on each entry keeps it meaningful.
func (s *JSONStore) DeleteMedication(id string) error {
	if s.snap == nil {
		return fmt.Errorf("storage not loaded")
	}

	kept := s.snap.Medications[:0]
	found := false
	for _, med := range s.snap.Medications {
		if med.ID == id {
			found = true
			continue
		}
		kept = append(kept, med)
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.snap.Medications = kept
	return s.save()
}

func (s *JSONStore) AppendDoseLog(entry models.DoseLog) error {
	if s.snap == nil {
		return fmt.Errorf("storage not loaded")
	}

	for _, existing := range s.snap.DoseLogs {
		if existing.MedicationID == entry.MedicationID &&
			existing.TimeSlot == entry.TimeSlot &&
			existing.Day() == entry.Day() {
			return fmt.Errorf("%w: %s %s on %s", ErrDuplicateDoseLog, entry.MedicationID, entry.TimeSlot, entry.Day())
		}
	}

	// Newest first, so recency-ordered consumers never need to sort.
	s.snap.DoseLogs = append([]models.DoseLog{entry}, s.snap.DoseLogs...)
	return s.save()
}

func (s *JSONStore) RemoveDoseLog(medicationID, timeSlot, day string) error {
	if s.snap == nil {
		return fmt.Errorf("storage not loaded")
	}

	kept := s.snap.DoseLogs[:0]
	for _, entry := range s.snap.DoseLogs {
		if entry.MedicationID == medicationID && entry.TimeSlot == timeSlot && entry.Day() == day {
			continue
		}
		kept = append(kept, entry)
	}
	s.snap.DoseLogs = kept
	return s.save()
}

func (s *JSONStore) GetDoseLogs() ([]models.DoseLog, error) {
	if s.snap == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	logs := make([]models.DoseLog, len(s.snap.DoseLogs))
	copy(logs, s.snap.DoseLogs)
	return logs, nil
}

func (s *JSONStore) GetDoseLogsForMedication(medicationID string) ([]models.DoseLog, error) {
	if s.snap == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	var logs []models.DoseLog
	for _, entry := range s.snap.DoseLogs {
		if entry.MedicationID == medicationID {
			logs = append(logs, entry)
		}
	}
	return logs, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
