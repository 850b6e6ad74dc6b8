package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/marcelomendesnai/medpet/internal/models"
	"github.com/marcelomendesnai/medpet/internal/storage"
)

const medicationColumns = "id, subject_name, name, dosage, frequency_hours, time_slots, obs1, obs2, period_days, start_date, status"

func (s *Store) AddMedication(med models.Medication) error {
	slots, err := json.Marshal(med.TimeSlots)
	if err != nil {
		return fmt.Errorf("failed to encode time slots: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO medications (`+medicationColumns+`, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
			(SELECT COALESCE(MAX(position), 0) + 1 FROM medications))`,
		med.ID, med.SubjectName, med.Name, med.Dosage, med.FrequencyHours,
		string(slots), med.Obs1, med.Obs2, med.PeriodDays, med.StartDate, string(med.Status))
	if err != nil {
		return fmt.Errorf("failed to add medication: %w", err)
	}
	return nil
}

func (s *Store) GetMedication(id string) (models.Medication, error) {
	row := s.db.QueryRow(`SELECT `+medicationColumns+` FROM medications WHERE id = ?`, id)

	med, err := scanMedication(row)
	if err == sql.ErrNoRows {
		return models.Medication{}, fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}
	return med, err
}

func (s *Store) GetAllMedications() ([]models.Medication, error) {
	rows, err := s.db.Query(`SELECT ` + medicationColumns + ` FROM medications ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query medications: %w", err)
	}
	defer rows.Close()

	var meds []models.Medication
	for rows.Next() {
		med, err := scanMedication(rows)
		if err != nil {
			return nil, err
		}
		meds = append(meds, med)
	}
	return meds, rows.Err()
}

func (s *Store) UpdateMedication(med models.Medication) error {
	slots, err := json.Marshal(med.TimeSlots)
	if err != nil {
		return fmt.Errorf("failed to encode time slots: %w", err)
	}

	res, err := s.db.Exec(`
		UPDATE medications
		SET subject_name = ?, name = ?, dosage = ?, frequency_hours = ?,
			time_slots = ?, obs1 = ?, obs2 = ?, period_days = ?,
			start_date = ?, status = ?
		WHERE id = ?`,
		med.SubjectName, med.Name, med.Dosage, med.FrequencyHours,
		string(slots), med.Obs1, med.Obs2, med.PeriodDays,
		med.StartDate, string(med.Status), med.ID)
	if err != nil {
		return fmt.Errorf("failed to update medication: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, med.ID)
	}
	return nil
}

// DeleteMedication never cascades into dose_logs; history is kept.
func (s *Store) DeleteMedication(id string) error {
	res, err := s.db.Exec(`DELETE FROM medications WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete medication: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMedication(row rowScanner) (models.Medication, error) {
	var med models.Medication
	var slots, status string

	err := row.Scan(&med.ID, &med.SubjectName, &med.Name, &med.Dosage,
		&med.FrequencyHours, &slots, &med.Obs1, &med.Obs2,
		&med.PeriodDays, &med.StartDate, &status)
	if err != nil {
		return models.Medication{}, err
	}

	if err := json.Unmarshal([]byte(slots), &med.TimeSlots); err != nil {
		return models.Medication{}, fmt.Errorf("failed to parse time slots for %s: %w", med.ID, err)
	}

	// Rows migrated from older snapshots may predate these fields.
	med.Status = models.MedicationStatus(status)
	if med.Status == "" {
		med.Status = models.MedicationPaused
	}
	if med.StartDate == "" {
		med.StartDate = time.Now().Format("2006-01-02")
	}

	return med, nil
}
