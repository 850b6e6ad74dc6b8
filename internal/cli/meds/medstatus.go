package meds

import (
	"fmt"

	"github.com/marcelomendesnai/medpet/internal/cli"
	"github.com/marcelomendesnai/medpet/internal/models"
)

type MedPauseCmd struct {
	ID string `arg:"" help:"Medication ID."`
}

func (c *MedPauseCmd) Run(ctx *cli.Context) error {
	return setStatus(ctx, c.ID, models.MedicationPaused)
}

type MedResumeCmd struct {
	ID string `arg:"" help:"Medication ID."`
}

func (c *MedResumeCmd) Run(ctx *cli.Context) error {
	return setStatus(ctx, c.ID, models.MedicationActive)
}

func setStatus(ctx *cli.Context, id string, status models.MedicationStatus) error {
	med, err := ctx.Store.GetMedication(id)
	if err != nil {
		return err
	}

	if med.Status == status {
		fmt.Printf("%s is already %s.\n", med.Name, cli.FormatStatus(status))
		return nil
	}

	med.Status = status
	if err := ctx.Store.UpdateMedication(med); err != nil {
		return err
	}

	fmt.Printf("%s is now %s.\n", med.Name, cli.FormatStatus(status))
	return nil
}
