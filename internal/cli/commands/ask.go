package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/westmead-kiosk/kiosk-apiserver/internal/cli/client"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/cli/config"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/cli/ui"
)

var askLanguage string

// askCmd asks a single question without the full TUI
var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "ask the kiosk a single question",
	Example: `  # Ask in English
  $ kioskctl ask "What courses are offered?"

  # Ask in Tagalog
  $ kioskctl ask -l tagalog "Magkano ang matrikula?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askLanguage, "language", "l", "", "Answer language: english or tagalog")
	askCmd.SilenceUsage = true
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return fmt.Errorf("config load failed")
	}

	language := cfg.Language
	if askLanguage != "" {
		language = askLanguage
	}

	apiClient, err := client.NewAPIClient(cfg.Server, cfg.AccessToken)
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return fmt.Errorf("client creation failed")
	}

	question := strings.Join(args, " ")
	sessionID := uuid.New().String()

	reply, err := apiClient.Chat(ctx, sessionID, question, language)
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("chat failed")
	}

	fmt.Println(reply.Message.Content)
	return nil
}
