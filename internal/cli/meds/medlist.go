package meds

import (
	"fmt"
	"strings"

	"github.com/marcelomendesnai/medpet/internal/cli"
	"github.com/marcelomendesnai/medpet/internal/models"
)

type MedListCmd struct {
	Subject string `short:"s" help:"Only show medications for this subject."`
	Active  bool   `help:"Only show active medications."`
}

func (c *MedListCmd) Run(ctx *cli.Context) error {
	meds, err := ctx.Store.GetAllMedications()
	if err != nil {
		return err
	}

	var shown []models.Medication
	for _, med := range meds {
		if c.Subject != "" && med.SubjectName != c.Subject {
			continue
		}
		if c.Active && !med.IsActive() {
			continue
		}
		shown = append(shown, med)
	}

	if len(shown) == 0 {
		fmt.Println("No medications found.")
		return nil
	}

	for _, med := range shown {
		progress, err := ctx.MedProgress(med)
		if err != nil {
			return err
		}

		fmt.Printf("%s  %s [%s] %s\n", med.ID, med.Name, med.SubjectName, cli.FormatStatus(med.Status))
		fmt.Printf("    %s every %dh at %s, %d days from %s\n",
			med.Dosage, med.FrequencyHours, strings.Join(med.TimeSlots, ", "), med.PeriodDays, med.StartDate)
		if med.Obs1 != "" || med.Obs2 != "" {
			fmt.Printf("    notes: %s\n", strings.TrimSpace(med.Obs1+" "+med.Obs2))
		}
		fmt.Printf("    progress: %s\n", cli.FormatProgress(progress))
	}

	return nil
}
