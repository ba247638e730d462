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

var faqsLimit int

// faqsCmd lists the most frequently asked questions
var faqsCmd = &cobra.Command{
	Use:   "faqs",
	Short: "show the most frequently asked questions",
	Example: `  # Show the top 10 questions
  $ kioskctl faqs

  # Show the top 25 questions
  $ kioskctl faqs -n 25`,
	RunE: runFaqs,
}

func init() {
	faqsCmd.Flags().IntVarP(&faqsLimit, "limit", "n", 10, "Number of questions to show")
	faqsCmd.SilenceUsage = true
}

func runFaqs(cmd *cobra.Command, args []string) error {
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

	faqs, err := apiClient.TopFaqs(ctx, faqsLimit)
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("faqs failed")
	}

	if len(faqs) == 0 {
		ui.PrintInfo("No questions tracked yet.")
		return nil
	}

	ui.PrintBold("MOST ASKED QUESTIONS")
	for i, faq := range faqs {
		fmt.Printf("%3d. %s  (asked %d times)\n", i+1, faq.Question, faq.Count)
	}

	return nil
}
