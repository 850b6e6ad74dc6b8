package meds

import (
	"fmt"

	"github.com/marcelomendesnai/medpet/internal/cli"
)

type MedDeleteCmd struct {
	ID string `arg:"" help:"Medication ID."`
}

func (c *MedDeleteCmd) Run(ctx *cli.Context) error {
	med, err := ctx.Store.GetMedication(c.ID)
	if err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()
	if err := ctx.Store.DeleteMedication(c.ID); err != nil {
		return err
	}

	// History is intentionally left in place; each entry carries its own
	// snapshot of the medication name and subject.
	fmt.Printf("Deleted %s. Dose history was kept.\n", med.Name)
	return nil
}
