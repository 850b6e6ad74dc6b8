package doses

import (
	"fmt"

	"github.com/marcelomendesnai/medpet/internal/cli"
	"github.com/marcelomendesnai/medpet/internal/models"
	"github.com/marcelomendesnai/medpet/internal/utils"
)

type DoseCmd struct {
	Take DoseTakeCmd `cmd:"" help:"Log a dose as taken."`
	Skip DoseSkipCmd `cmd:"" help:"Log a dose as skipped (progress is not advanced)."`
	Undo DoseUndoCmd `cmd:"" help:"Remove today's entry for a slot."`
}

type DoseTakeCmd struct {
	MedID string `arg:"" help:"Medication ID."`
	Slot  string `arg:"" help:"Scheduled slot (HH:MM)."`
}

func (c *DoseTakeCmd) Run(ctx *cli.Context) error {
	return logDose(ctx, c.MedID, c.Slot, models.DoseTaken)
}

type DoseSkipCmd struct {
	MedID string `arg:"" help:"Medication ID."`
	Slot  string `arg:"" help:"Scheduled slot (HH:MM)."`
}

func (c *DoseSkipCmd) Run(ctx *cli.Context) error {
	return logDose(ctx, c.MedID, c.Slot, models.DoseSkipped)
}

type DoseUndoCmd struct {
	MedID string `arg:"" help:"Medication ID."`
	Slot  string `arg:"" help:"Scheduled slot (HH:MM)."`
}

// Run removes today's entry only. Entries from prior days are immutable by
// design, even for the same medication and slot.
func (c *DoseUndoCmd) Run(ctx *cli.Context) error {
	today := utils.DayOf(ctx.Clock())
	if err := ctx.Store.RemoveDoseLog(c.MedID, c.Slot, today); err != nil {
		return err
	}

	fmt.Printf("Removed today's entry for slot %s.\n", c.Slot)
	return nil
}

func logDose(ctx *cli.Context, medID, slot string, status models.DoseStatus) error {
	med, err := ctx.Store.GetMedication(medID)
	if err != nil {
		return err
	}

	if !slotExists(med.TimeSlots, slot) {
		return fmt.Errorf("%s has no %s slot (slots: %v)", med.Name, slot, med.TimeSlots)
	}

	entry := models.DoseLog{
		ID:             ctx.IDs.NewID(),
		MedicationID:   med.ID,
		MedicationName: med.Name,
		SubjectName:    med.SubjectName,
		Timestamp:      ctx.Clock(),
		TimeSlot:       slot,
		Status:         status,
	}

	if err := ctx.Store.AppendDoseLog(entry); err != nil {
		return err
	}

	if status == models.DoseSkipped {
		fmt.Printf("Skipped %s at %s. The dose is still owed, so progress was not advanced.\n", med.Name, slot)
	} else {
		progress, err := ctx.MedProgress(med)
		if err != nil {
			return err
		}
		fmt.Printf("Took %s at %s. Progress: %s\n", med.Name, slot, cli.FormatProgress(progress))
	}
	return nil
}

func slotExists(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
