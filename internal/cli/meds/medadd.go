package meds

import (
	"fmt"
	"strings"

	"github.com/marcelomendesnai/medpet/internal/cli"
	"github.com/marcelomendesnai/medpet/internal/models"
	"github.com/marcelomendesnai/medpet/internal/scheduler"
	"github.com/marcelomendesnai/medpet/internal/utils"
	"github.com/marcelomendesnai/medpet/internal/validation"
)

type MedAddCmd struct {
	Name      string `arg:"" help:"Medication name."`
	Subject   string `short:"s" help:"Who the medication is for (person or pet)." required:""`
	Dosage    string `short:"d" help:"Dose description, e.g. '1/2 comprimido'." required:""`
	Frequency string `short:"f" help:"Dosing interval in hours, e.g. 12h." default:"24h"`
	Time      string `short:"t" help:"First dose time (HH:MM)." default:"08:00"`
	Period    int    `short:"p" help:"Treatment duration in days." default:"10"`
	StartDate string `help:"Treatment start date (YYYY-MM-DD, default today)."`
	Obs1      string `help:"Administration note, e.g. 'em JEJUM'."`
	Obs2      string `help:"Second administration note."`
	Active    bool   `help:"Start the medication active instead of paused."`
}

func (c *MedAddCmd) Run(ctx *cli.Context) error {
	frequency, err := scheduler.ParseFrequency(c.Frequency)
	if err != nil {
		return err
	}
	if !utils.ValidateTimeFormat(c.Time) {
		return fmt.Errorf("invalid time %q: expected HH:MM", c.Time)
	}

	startDate := c.StartDate
	if startDate == "" {
		startDate = utils.DayOf(ctx.Clock())
	}

	status := models.MedicationPaused
	if c.Active {
		status = models.MedicationActive
	}

	med := models.Medication{
		ID:             ctx.IDs.NewID(),
		SubjectName:    c.Subject,
		Name:           c.Name,
		Dosage:         c.Dosage,
		FrequencyHours: frequency,
		TimeSlots:      scheduler.ExpandSlots(c.Time, frequency),
		Obs1:           c.Obs1,
		Obs2:           c.Obs2,
		PeriodDays:     c.Period,
		StartDate:      startDate,
		Status:         status,
	}

	if err := validation.Medication(med); err != nil {
		return err
	}
	if err := ctx.Store.AddMedication(med); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()

	fmt.Printf("Added %s for %s (%s): %s\n", med.Name, med.SubjectName, cli.FormatStatus(med.Status), strings.Join(med.TimeSlots, ", "))
	return nil
}
