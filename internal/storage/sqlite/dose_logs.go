package sqlite

import (
	"fmt"
	"strings"
	"time"

	"github.com/marcelomendesnai/medpet/internal/models"
	"github.com/marcelomendesnai/medpet/internal/storage"
)

func (s *Store) AppendDoseLog(entry models.DoseLog) error {
	_, err := s.db.Exec(`
		INSERT INTO dose_logs (id, medication_id, medication_name, subject_name, timestamp, day, time_slot, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.MedicationID, entry.MedicationName, entry.SubjectName,
		entry.Timestamp.Format(time.RFC3339), entry.Day(), entry.TimeSlot, string(entry.Status))
	if err != nil {
		// The unique (medication_id, time_slot, day) index enforces the
		// one-entry-per-slot-per-day contract.
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("%w: %s %s on %s", storage.ErrDuplicateDoseLog, entry.MedicationID, entry.TimeSlot, entry.Day())
		}
		return fmt.Errorf("failed to append dose log: %w", err)
	}
	return nil
}

func (s *Store) RemoveDoseLog(medicationID, timeSlot, day string) error {
	_, err := s.db.Exec(`
		DELETE FROM dose_logs
		WHERE medication_id = ? AND time_slot = ? AND day = ?`,
		medicationID, timeSlot, day)
	if err != nil {
		return fmt.Errorf("failed to remove dose log: %w", err)
	}
	return nil
}

func (s *Store) GetDoseLogs() ([]models.DoseLog, error) {
	return s.queryDoseLogs(`
		SELECT id, medication_id, medication_name, subject_name, timestamp, time_slot, status
		FROM dose_logs ORDER BY timestamp DESC`)
}

func (s *Store) GetDoseLogsForMedication(medicationID string) ([]models.DoseLog, error) {
	return s.queryDoseLogs(`
		SELECT id, medication_id, medication_name, subject_name, timestamp, time_slot, status
		FROM dose_logs WHERE medication_id = ? ORDER BY timestamp DESC`, medicationID)
}

func (s *Store) queryDoseLogs(query string, args ...any) ([]models.DoseLog, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query dose logs: %w", err)
	}
	defer rows.Close()

	var logs []models.DoseLog
	for rows.Next() {
		var entry models.DoseLog
		var timestamp, status string

		err := rows.Scan(&entry.ID, &entry.MedicationID, &entry.MedicationName,
			&entry.SubjectName, &timestamp, &entry.TimeSlot, &status)
		if err != nil {
			return nil, err
		}

		entry.Timestamp, err = time.Parse(time.RFC3339, timestamp)
		if err != nil {
			return nil, fmt.Errorf("failed to parse timestamp for entry %s: %w", entry.ID, err)
		}
		entry.Status = models.DoseStatus(status)

		logs = append(logs, entry)
	}
	return logs, rows.Err()
}
