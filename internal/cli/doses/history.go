package doses

import (
	"fmt"

	"github.com/marcelomendesnai/medpet/internal/cli"
	"github.com/marcelomendesnai/medpet/internal/constants"
	"github.com/marcelomendesnai/medpet/internal/models"
)

type HistoryCmd struct {
	Limit   int    `short:"n" help:"Maximum number of entries to show." default:"20"`
	Subject string `short:"s" help:"Only show entries for this subject."`
}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	logs, err := ctx.Store.GetDoseLogs()
	if err != nil {
		return err
	}

	shown := 0
	for _, entry := range logs {
		if c.Subject != "" && entry.SubjectName != c.Subject {
			continue
		}
		if c.Limit > 0 && shown >= c.Limit {
			break
		}
		shown++

		marker := "taken"
		if entry.Status == models.DoseSkipped {
			marker = "skipped"
		}
		fmt.Printf("%s %s  %s [%s] slot %s  %s\n",
			entry.Timestamp.Format(constants.DateFormat),
			entry.Timestamp.Format(constants.TimeFormat),
			entry.MedicationName, entry.SubjectName, entry.TimeSlot, marker)
	}

	if shown == 0 {
		fmt.Println("No entries yet.")
	}
	return nil
}
