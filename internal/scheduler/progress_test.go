package scheduler

import (
	"fmt"
	"testing"
	"time"

	"github.com/marcelomendesnai/medpet/internal/models"
)

func takenLogs(medID string, taken, skipped int) []models.DoseLog {
	var logs []models.DoseLog
	base := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < taken; i++ {
		logs = append(logs, models.DoseLog{
			ID:           fmt.Sprintf("t-%d", i),
			MedicationID: medID,
			Timestamp:    base.AddDate(0, 0, i),
			TimeSlot:     "08:00",
			Status:       models.DoseTaken,
		})
	}
	for i := 0; i < skipped; i++ {
		logs = append(logs, models.DoseLog{
			ID:           fmt.Sprintf("s-%d", i),
			MedicationID: medID,
			Timestamp:    base.AddDate(0, 0, taken+i),
			TimeSlot:     "08:00",
			Status:       models.DoseSkipped,
		})
	}
	return logs
}

func TestProgress_SkippedDosesDoNotAdvance(t *testing.T) {
	// 10-day 24h course: total 10. 3 taken + 2 skipped = 3/10 at 30%.
	logs := takenLogs("m1", 3, 2)

	progress := Progress("m1", 10, 24, logs)
	if progress.Taken != 3 {
		t.Errorf("expected 3 taken, got %d", progress.Taken)
	}
	if progress.Total != 10 {
		t.Errorf("expected total 10, got %d", progress.Total)
	}
	if progress.Percent != 30 {
		t.Errorf("expected 30%%, got %v", progress.Percent)
	}
}

func TestProgress_PercentClamp(t *testing.T) {
	logs := takenLogs("m1", 15, 0)

	progress := Progress("m1", 10, 24, logs)
	if progress.Total != 10 {
		t.Errorf("expected total 10, got %d", progress.Total)
	}
	if progress.Percent != 100 {
		t.Errorf("percent must be clamped at 100, got %v", progress.Percent)
	}
}

func TestProgress_DegenerateInputsFloorTotalAtOne(t *testing.T) {
	cases := []struct {
		name       string
		periodDays int
		frequency  int
	}{
		{"zero days", 0, 24},
		{"zero frequency", 10, 0},
		{"both zero", 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			progress := Progress("m1", tc.periodDays, tc.frequency, nil)
			if progress.Total != 1 {
				t.Errorf("expected total floored at 1, got %d", progress.Total)
			}
			if progress.Percent != 0 {
				t.Errorf("expected 0%% with no logs, got %v", progress.Percent)
			}
		})
	}
}

func TestProgress_NonDividingFrequencyRoundsTotal(t *testing.T) {
	// 24/7 = 3.43 times per day; over 7 days that rounds to 24 doses.
	progress := Progress("m1", 7, 7, nil)
	if progress.Total != 24 {
		t.Errorf("expected total 24, got %d", progress.Total)
	}
}

func TestProgress_OtherMedicationsIgnored(t *testing.T) {
	logs := append(takenLogs("m1", 2, 0), takenLogs("m2", 5, 0)...)

	progress := Progress("m1", 10, 24, logs)
	if progress.Taken != 2 {
		t.Errorf("expected only m1 entries counted, got %d", progress.Taken)
	}
}

func TestProgress_AggregatesFullLogAcrossDays(t *testing.T) {
	// Entries from any day count; the calculator never scopes by date.
	logs := takenLogs("m1", 4, 0)
	logs[0].Timestamp = time.Date(2024, 12, 25, 8, 0, 0, 0, time.UTC)

	progress := Progress("m1", 10, 12, logs)
	if progress.Taken != 4 {
		t.Errorf("expected 4 taken across all days, got %d", progress.Taken)
	}
	if progress.Total != 20 {
		t.Errorf("expected total 20, got %d", progress.Total)
	}
}
