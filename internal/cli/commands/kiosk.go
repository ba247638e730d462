package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/westmead-kiosk/kiosk-apiserver/internal/cli/client"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/cli/config"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/cli/kiosk"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/cli/speech"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/cli/ui"
)

var kioskLanguage string

// kioskCmd runs the full-screen kiosk terminal
var kioskCmd = &cobra.Command{
	Use:   "kiosk",
	Short: "run the full-screen kiosk terminal",
	Long: `Run the interactive school information kiosk in this terminal.

The kiosk answers questions about Westmead International School, speaks
the answers aloud when a text-to-speech backend is available (espeak or
say), and resets the conversation after 30 seconds without input.`,
	Example: `  # Run the kiosk in English
  $ kioskctl kiosk

  # Run the kiosk in Tagalog
  $ kioskctl kiosk -l tagalog

  # Keyboard controls:
  • Type a question and press Enter
  • Enter while the answer plays stops playback
  • Esc exits`,
	RunE: runKiosk,
}

func init() {
	kioskCmd.Flags().StringVarP(&kioskLanguage, "language", "l", "", "Answer language: english or tagalog")
	kioskCmd.SilenceUsage = true
}

func runKiosk(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return fmt.Errorf("config load failed")
	}

	language := cfg.Language
	if kioskLanguage != "" {
		language = kioskLanguage
	}
	if language != "english" && language != "tagalog" {
		ui.PrintError("unsupported language: %s (use english or tagalog)", language)
		return fmt.Errorf("invalid arguments")
	}

	// The kiosk surface is public; no login required.
	apiClient, err := client.NewAPIClient(cfg.Server, cfg.AccessToken)
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return fmt.Errorf("client creation failed")
	}

	synth, err := speech.Detect(cfg.SpeechCommand)
	if err != nil {
		ui.PrintWarning("speech disabled: %v", err)
	}
	speechCtrl := speech.NewController(synth)

	program := kiosk.NewProgram(apiClient, speechCtrl, language)
	if err := program.Run(); err != nil {
		return fmt.Errorf("failed to run kiosk TUI: %w", err)
	}

	return nil
}
