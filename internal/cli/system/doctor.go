package system

import (
	"fmt"
	"os"

	"github.com/marcelomendesnai/medpet/internal/cli"
	"github.com/marcelomendesnai/medpet/internal/constants"
	"github.com/marcelomendesnai/medpet/internal/keyring"
)

type DoctorCmd struct{}

// Run reports the health of the store, the keyring and the assistant key.
// It never fails; every check prints a status line instead.
func (c *DoctorCmd) Run(ctx *cli.Context) error {
	storePath := ctx.Store.GetConfigPath()
	if _, err := os.Stat(storePath); err != nil {
		fmt.Printf("store:      missing (%s) — run 'medpet init'\n", storePath)
	} else {
		fmt.Printf("store:      ok (%s)\n", storePath)
	}

	meds, err := ctx.Store.GetAllMedications()
	if err != nil {
		fmt.Printf("registry:   unreadable: %v\n", err)
	} else {
		active := 0
		for _, med := range meds {
			if med.IsActive() {
				active++
			}
		}
		fmt.Printf("registry:   %d medications (%d active)\n", len(meds), active)
	}

	logs, err := ctx.Store.GetDoseLogs()
	if err != nil {
		fmt.Printf("dose log:   unreadable: %v\n", err)
	} else {
		fmt.Printf("dose log:   %d entries\n", len(logs))
	}

	if keyring.IsAvailable() {
		fmt.Println("keyring:    available")
	} else {
		fmt.Println("keyring:    unavailable")
	}

	if os.Getenv(constants.APIKeyEnvVar) != "" {
		fmt.Printf("assistant:  API key set via %s\n", constants.APIKeyEnvVar)
	} else if _, err := keyring.GetAPIKey(); err == nil {
		fmt.Println("assistant:  API key stored in keyring")
	} else {
		fmt.Println("assistant:  no API key — 'medpet ask --set-key' to store one")
	}

	return nil
}
