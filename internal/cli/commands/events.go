package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/westmead-kiosk/kiosk-apiserver/internal/cli/client"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/cli/config"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/cli/ui"
)

// eventsCmd lists upcoming school events
var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "show upcoming school events",
	Example: `  # Show events from today onward
  $ kioskctl events`,
	RunE: runEvents,
}

func init() {
	eventsCmd.SilenceUsage = true
}

func runEvents(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return fmt.Errorf("config load failed")
	}

	apiClient, err := client.NewAPIClient(cfg.Server, cfg.AccessToken)
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return fmt.Errorf("client creation failed")
	}

	events, err := apiClient.UpcomingEvents(ctx)
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("events failed")
	}

	if len(events) == 0 {
		ui.PrintInfo("No upcoming events.")
		return nil
	}

	ui.PrintBold("UPCOMING EVENTS")
	for _, event := range events {
		date := event.EventDate
		if parsed, err := time.Parse(time.RFC3339, event.EventDate); err == nil {
			date = parsed.Format("January 2, 2006")
		}

		line := fmt.Sprintf("  %s - %s", date, event.Title)
		if event.Location != "" {
			line += fmt.Sprintf(" @ %s", event.Location)
		}
		fmt.Println(line)
	}

	return nil
}
