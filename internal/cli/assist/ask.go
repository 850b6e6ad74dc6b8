package assist

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/marcelomendesnai/medpet/internal/assistant"
	"github.com/marcelomendesnai/medpet/internal/cli"
	"github.com/marcelomendesnai/medpet/internal/constants"
	"github.com/marcelomendesnai/medpet/internal/keyring"
)

type AskCmd struct {
	Question  []string `arg:"" optional:"" help:"Question for the assistant."`
	SetKey    string   `help:"Store the assistant API key in the OS keyring and exit."`
	DeleteKey bool     `help:"Remove the assistant API key from the OS keyring and exit."`
}

func (c *AskCmd) Run(ctx *cli.Context) error {
	if c.SetKey != "" {
		if err := keyring.SetAPIKey(c.SetKey); err != nil {
			return err
		}
		fmt.Println("Assistant API key stored in the OS keyring.")
		return nil
	}
	if c.DeleteKey {
		if err := keyring.DeleteAPIKey(); err != nil {
			return err
		}
		fmt.Println("Assistant API key removed from the OS keyring.")
		return nil
	}

	question := strings.TrimSpace(strings.Join(c.Question, " "))
	if question == "" {
		return fmt.Errorf("nothing to ask: pass a question or use --set-key")
	}

	apiKey, err := resolveAPIKey()
	if err != nil {
		return err
	}

	meds, err := ctx.Store.GetAllMedications()
	if err != nil {
		return err
	}

	client := assistant.NewGeminiClient(apiKey)
	fmt.Println(client.Ask(context.Background(), question, meds))
	return nil
}

func resolveAPIKey() (string, error) {
	if key := os.Getenv(constants.APIKeyEnvVar); key != "" {
		return key, nil
	}
	key, err := keyring.GetAPIKey()
	if err != nil {
		return "", fmt.Errorf("no assistant API key: set %s or run 'medpet ask --set-key <key>'", constants.APIKeyEnvVar)
	}
	return key, nil
}
