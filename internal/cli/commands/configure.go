package commands

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/Raeus1901/wine-bot/internal/cli/config"
	"github.com/Raeus1901/wine-bot/internal/cli/ui"
)

// configureCmd is the configure command
var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "set the server address and API mode",
	Long: `Configure which wine recommender server the CLI talks to and which API
shape it speaks. Settings are stored in ~/.winectl/config.json together
with the anonymous user ID that identifies your session.`,
	Example: `  # Interactive configuration
  $ winectl configure`,
	RunE: runConfigure,
}

func init() {
	configureCmd.SilenceUsage = true
}

func runConfigure(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return fmt.Errorf("config load failed")
	}

	serverPrompt := &survey.Input{
		Message: "Server address:",
		Default: cfg.Server,
	}
	if err := survey.AskOne(serverPrompt, &cfg.Server, survey.WithValidator(survey.Required)); err != nil {
		return fmt.Errorf("input failed")
	}

	modePrompt := &survey.Select{
		Message: "API mode:",
		Options: []string{config.ModeConversation, config.ModeWizard},
		Default: cfg.Mode,
	}
	if err := survey.AskOne(modePrompt, &cfg.Mode); err != nil {
		return fmt.Errorf("input failed")
	}

	cfg.EnsureUserID()
	if err := cfg.Save(); err != nil {
		ui.PrintError("failed to save config: %v", err)
		return fmt.Errorf("config save failed")
	}

	configPath, _ := config.GetConfigPath()
	ui.PrintSuccessBox("✓ Configuration Saved", fmt.Sprintf(`Server:        %s
Mode:          %s
User ID:       %s
Config saved:  %s`,
		cfg.Server,
		cfg.Mode,
		cfg.UserID,
		configPath,
	))

	return nil
}
