package sqlite

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/marcelomendesnai/medpet/internal/models"
	"github.com/marcelomendesnai/medpet/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "medpet.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testMedication(id string) models.Medication {
	return models.Medication{
		ID:             id,
		SubjectName:    "Sijugrino",
		Name:           "MED-" + id,
		Dosage:         "1/2 comprimido",
		FrequencyHours: 8,
		TimeSlots:      []string{"08:00", "16:00", "00:00"},
		Obs1:           "em JEJUM",
		PeriodDays:     30,
		StartDate:      "2025-03-01",
		Status:         models.MedicationActive,
	}
}

func testEntry(id, medID, slot string, ts time.Time) models.DoseLog {
	return models.DoseLog{
		ID:             id,
		MedicationID:   medID,
		MedicationName: "MED-" + medID,
		SubjectName:    "Sijugrino",
		Timestamp:      ts,
		TimeSlot:       slot,
		Status:         models.DoseTaken,
	}
}

func TestStore_InitSeedsRegistryOnce(t *testing.T) {
	store := newTestStore(t)

	meds, err := store.GetAllMedications()
	if err != nil {
		t.Fatalf("GetAllMedications failed: %v", err)
	}
	seeded := len(meds)
	if seeded == 0 {
		t.Fatal("expected the seed dataset after init")
	}

	// Re-opening must not seed again.
	path := store.GetConfigPath()
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	reopened := NewStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer reopened.Close()

	meds, err = reopened.GetAllMedications()
	if err != nil {
		t.Fatalf("GetAllMedications failed: %v", err)
	}
	if len(meds) != seeded {
		t.Errorf("expected %d medications after reload, got %d", seeded, len(meds))
	}
}

func TestStore_MedicationCRUD(t *testing.T) {
	store := newTestStore(t)
	med := testMedication("m1")

	if err := store.AddMedication(med); err != nil {
		t.Fatalf("AddMedication failed: %v", err)
	}

	got, err := store.GetMedication("m1")
	if err != nil {
		t.Fatalf("GetMedication failed: %v", err)
	}
	if got.Name != med.Name || got.Obs1 != med.Obs1 || len(got.TimeSlots) != 3 {
		t.Errorf("unexpected medication: %+v", got)
	}

	med.Status = models.MedicationPaused
	med.PeriodDays = 14
	if err := store.UpdateMedication(med); err != nil {
		t.Fatalf("UpdateMedication failed: %v", err)
	}
	got, _ = store.GetMedication("m1")
	if got.Status != models.MedicationPaused || got.PeriodDays != 14 {
		t.Errorf("update was not persisted: %+v", got)
	}

	if err := store.DeleteMedication("m1"); err != nil {
		t.Fatalf("DeleteMedication failed: %v", err)
	}
	if _, err := store.GetMedication("m1"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestStore_UpdateMissingMedication(t *testing.T) {
	store := newTestStore(t)
	err := store.UpdateMedication(testMedication("ghost"))
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_DoseLogsNewestFirst(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC)

	if err := store.AppendDoseLog(testEntry("l1", "m1", "06:00", base)); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := store.AppendDoseLog(testEntry("l2", "m1", "18:00", base.Add(12*time.Hour))); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	logs, err := store.GetDoseLogs()
	if err != nil {
		t.Fatalf("GetDoseLogs failed: %v", err)
	}
	if len(logs) != 2 || logs[0].ID != "l2" {
		t.Errorf("expected newest-first order, got %+v", logs)
	}
}

func TestStore_DuplicateDoseLogRejected(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC)

	if err := store.AppendDoseLog(testEntry("l1", "m1", "06:00", base)); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	err := store.AppendDoseLog(testEntry("l2", "m1", "06:00", base.Add(2*time.Hour)))
	if !errors.Is(err, storage.ErrDuplicateDoseLog) {
		t.Errorf("expected ErrDuplicateDoseLog, got %v", err)
	}

	if err := store.AppendDoseLog(testEntry("l3", "m1", "06:00", base.AddDate(0, 0, 1))); err != nil {
		t.Errorf("next-day entry should be accepted: %v", err)
	}
}

func TestStore_RemoveDoseLogIsSameDayOnly(t *testing.T) {
	store := newTestStore(t)
	yesterday := time.Date(2025, 3, 9, 6, 10, 0, 0, time.UTC)
	today := time.Date(2025, 3, 10, 6, 5, 0, 0, time.UTC)

	if err := store.AppendDoseLog(testEntry("old", "m1", "06:00", yesterday)); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := store.AppendDoseLog(testEntry("new", "m1", "06:00", today)); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	if err := store.RemoveDoseLog("m1", "06:00", "2025-03-10"); err != nil {
		t.Fatalf("RemoveDoseLog failed: %v", err)
	}

	logs, _ := store.GetDoseLogs()
	if len(logs) != 1 || logs[0].ID != "old" {
		t.Errorf("expected only yesterday's entry to survive, got %+v", logs)
	}
}

func TestStore_GetDoseLogsForMedication(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC)

	if err := store.AppendDoseLog(testEntry("l1", "m1", "06:00", base)); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := store.AppendDoseLog(testEntry("l2", "m2", "06:00", base)); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	logs, err := store.GetDoseLogsForMedication("m1")
	if err != nil {
		t.Fatalf("GetDoseLogsForMedication failed: %v", err)
	}
	if len(logs) != 1 || logs[0].MedicationID != "m1" {
		t.Errorf("expected only m1 entries, got %+v", logs)
	}
}
