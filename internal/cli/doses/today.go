package doses

import (
	"fmt"

	"github.com/marcelomendesnai/medpet/internal/cli"
	"github.com/marcelomendesnai/medpet/internal/models"
	"github.com/marcelomendesnai/medpet/internal/scheduler"
	"github.com/marcelomendesnai/medpet/internal/utils"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	meds, err := ctx.Store.GetAllMedications()
	if err != nil {
		return err
	}
	logs, err := ctx.Store.GetDoseLogs()
	if err != nil {
		return err
	}

	now := ctx.Clock()
	day := scheduler.Classify(meds, logs, now)

	fmt.Printf("Today %s, now %s\n\n", utils.DayOf(now), utils.TimeOfDay(now))

	if len(day.Late) > 0 {
		fmt.Println("LATE")
		printDoses(ctx, day.Late)
	}

	fmt.Println("NEXT")
	if len(day.Next) == 0 {
		if len(day.Late) == 0 {
			fmt.Println("  All caught up!")
		} else {
			fmt.Println("  No upcoming doses.")
		}
	} else {
		printDoses(ctx, day.Next)
	}

	if len(day.Taken) > 0 {
		fmt.Println("DONE")
		printDoses(ctx, day.Taken)
	}

	return nil
}

func printDoses(ctx *cli.Context, doses []scheduler.Dose) {
	for _, dose := range doses {
		progress, err := ctx.MedProgress(dose.Medication)
		if err != nil {
			fmt.Printf("  %s  %s [%s]\n", dose.Slot, dose.Medication.Name, dose.Medication.SubjectName)
			continue
		}

		marker := ""
		if dose.Log != nil {
			if dose.Log.Status == models.DoseSkipped {
				marker = " (skipped)"
			} else {
				marker = " (taken)"
			}
		}

		fmt.Printf("  %s  %s [%s] %s%s  dose %d/%d\n",
			dose.Slot, dose.Medication.Name, dose.Medication.SubjectName,
			dose.Medication.Dosage, marker, progress.Taken, progress.Total)
		if dose.Medication.Obs1 != "" {
			fmt.Printf("         %s\n", dose.Medication.Obs1)
		}
	}
	fmt.Println()
}
