package meds

import (
	"fmt"
	"strings"

	"github.com/marcelomendesnai/medpet/internal/cli"
	"github.com/marcelomendesnai/medpet/internal/scheduler"
	"github.com/marcelomendesnai/medpet/internal/utils"
	"github.com/marcelomendesnai/medpet/internal/validation"
)

type MedEditCmd struct {
	ID        string  `arg:"" help:"Medication ID."`
	Subject   *string `short:"s" help:"New subject name."`
	Name      *string `help:"New medication name."`
	Dosage    *string `short:"d" help:"New dose description."`
	Frequency *string `short:"f" help:"New dosing interval in hours, e.g. 8h."`
	Time      *string `short:"t" help:"New first dose time (HH:MM)."`
	Period    *int    `short:"p" help:"New treatment duration in days."`
	StartDate *string `help:"New treatment start date (YYYY-MM-DD)."`
	Obs1      *string `help:"New first administration note."`
	Obs2      *string `help:"New second administration note."`
}

func (c *MedEditCmd) Run(ctx *cli.Context) error {
	med, err := ctx.Store.GetMedication(c.ID)
	if err != nil {
		return err
	}

	if c.Subject != nil {
		med.SubjectName = *c.Subject
	}
	if c.Name != nil {
		med.Name = *c.Name
	}
	if c.Dosage != nil {
		med.Dosage = *c.Dosage
	}
	if c.Period != nil {
		med.PeriodDays = *c.Period
	}
	if c.StartDate != nil {
		med.StartDate = *c.StartDate
	}
	if c.Obs1 != nil {
		med.Obs1 = *c.Obs1
	}
	if c.Obs2 != nil {
		med.Obs2 = *c.Obs2
	}

	if c.Frequency != nil {
		frequency, err := scheduler.ParseFrequency(*c.Frequency)
		if err != nil {
			return err
		}
		med.FrequencyHours = frequency
	}

	// Slots are never edited directly: any frequency or first-time change
	// recomputes the whole schedule from scratch.
	firstTime := "08:00"
	if len(med.TimeSlots) > 0 {
		firstTime = med.TimeSlots[0]
	}
	if c.Time != nil {
		if !utils.ValidateTimeFormat(*c.Time) {
			return fmt.Errorf("invalid time %q: expected HH:MM", *c.Time)
		}
		firstTime = *c.Time
	}
	med.TimeSlots = scheduler.ExpandSlots(firstTime, med.FrequencyHours)

	if err := validation.Medication(med); err != nil {
		return err
	}
	if err := ctx.Store.UpdateMedication(med); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()

	fmt.Printf("Updated %s: %s\n", med.Name, strings.Join(med.TimeSlots, ", "))
	return nil
}
