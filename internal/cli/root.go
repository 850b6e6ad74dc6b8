package cli

import (
	"fmt"
	"time"

	"github.com/marcelomendesnai/medpet/internal/backup"
	"github.com/marcelomendesnai/medpet/internal/idgen"
	"github.com/marcelomendesnai/medpet/internal/logger"
	"github.com/marcelomendesnai/medpet/internal/models"
	"github.com/marcelomendesnai/medpet/internal/scheduler"
	"github.com/marcelomendesnai/medpet/internal/storage"
)

type Context struct {
	Store storage.Provider
	IDs   idgen.Generator
	// Now is injectable so command tests can pin the clock.
	Now func() time.Time
}

// Clock returns the current instant via the injected clock, defaulting to
// time.Now.
func (c *Context) Clock() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// MedProgress computes treatment progress for a medication from the store.
func (c *Context) MedProgress(med models.Medication) (scheduler.TreatmentProgress, error) {
	logs, err := c.Store.GetDoseLogsForMedication(med.ID)
	if err != nil {
		return scheduler.TreatmentProgress{}, err
	}
	return scheduler.Progress(med.ID, med.PeriodDays, med.FrequencyHours, logs), nil
}

// FormatProgress renders a "3/20 (15%)" progress string.
func FormatProgress(p scheduler.TreatmentProgress) string {
	return fmt.Sprintf("%d/%d (%.0f%%)", p.Taken, p.Total, p.Percent)
}

// FormatStatus renders a medication status marker for list output.
func FormatStatus(status models.MedicationStatus) string {
	if status == models.MedicationActive {
		return "active"
	}
	return "paused"
}
