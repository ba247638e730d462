package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/westmead-kiosk/kiosk-apiserver/internal/cli/client"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/cli/config"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/cli/ui"
)

var (
	loginUsername string
)

// loginCmd is the login command
var loginCmd = &cobra.Command{
	Use:   "login [server]",
	Short: "authenticate with the kiosk API server",
	Long: `Authenticate with the kiosk API server and save credentials locally.

Your authentication token will be stored in ~/.kioskctl/config.json and
used automatically for admin commands. The token remains valid until it
expires or you login again.

If server is not provided, defaults to http://localhost:8080.`,
	Example: `  # Login to default server (localhost:8080)
  $ kioskctl login

  # Login to custom server
  $ kioskctl login http://kiosk.westmead.edu.ph:8080

  # Login with username (will prompt for password)
  $ kioskctl login http://localhost:8080 -u admin`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Username for authentication")

	// Silence usage to avoid showing help on every error
	loginCmd.SilenceUsage = true
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Get server from positional argument or use default
	loginServer := "http://localhost:8080"
	if len(args) > 0 {
		loginServer = args[0]
	}

	// 1. Prompt for username if not provided
	if loginUsername == "" {
		prompt := &survey.Input{
			Message: "Username:",
		}
		if err := survey.AskOne(prompt, &loginUsername, survey.WithValidator(survey.Required)); err != nil {
			ui.PrintError("failed to read username: %v", err)
			return fmt.Errorf("input failed")
		}
	}

	// 2. Prompt for password (hidden input)
	var password string
	prompt := &survey.Password{
		Message: "Password:",
	}
	if err := survey.AskOne(prompt, &password, survey.WithValidator(survey.Required)); err != nil {
		ui.PrintError("failed to read password: %v", err)
		return fmt.Errorf("input failed")
	}

	// 3. Create API client
	apiClient, err := client.NewAPIClient(loginServer, "")
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return fmt.Errorf("client creation failed")
	}

	ui.PrintInfo("Connecting to %s...", loginServer)

	// 4. Call login API
	resp, err := apiClient.Login(ctx, loginUsername, password)
	if err != nil {
		ui.PrintErrorBox("Login Failed", err.Error())
		return fmt.Errorf("authentication failed")
	}

	// 5. Save config to local file, keeping kiosk preferences intact
	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{}
	}
	cfg.Server = loginServer
	cfg.AccessToken = resp.Data.Token
	cfg.Username = resp.Data.User.Username
	cfg.UserID = resp.Data.User.ID

	if err := cfg.Save(); err != nil {
		ui.PrintError("failed to save config: %v", err)
		return fmt.Errorf("config save failed")
	}

	// 6. Display success message
	configPath, _ := config.GetConfigPath()
	successContent := fmt.Sprintf(`Username:       %s
User ID:        %s
Token expires:  %s
Config saved:   %s`,
		resp.Data.User.Username,
		resp.Data.User.ID,
		resp.Data.Expire,
		configPath,
	)

	ui.PrintSuccessBox("✓ Login Successful", successContent)

	// 7. Display usage hints
	fmt.Println()
	ui.PrintInfo("You can now use the following commands:")
	ui.PrintBold("  kioskctl kiosk          # Run the kiosk terminal")
	ui.PrintBold("  kioskctl faqs           # Show most asked questions")

	return nil
}
