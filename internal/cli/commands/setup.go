package commands

import (
	"fmt"

	"github.com/Raeus1901/wine-bot/internal/cli/client"
	"github.com/Raeus1901/wine-bot/internal/cli/config"
	"github.com/Raeus1901/wine-bot/internal/cli/controller"
	"github.com/Raeus1901/wine-bot/internal/cli/ui"
)

// loadSession loads the CLI config, making sure a user ID exists and is
// persisted so the server keeps recognizing this install across runs.
func loadSession() (*config.Config, *client.APIClient, error) {
	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return nil, nil, fmt.Errorf("config load failed")
	}

	if cfg.EnsureUserID() {
		if err := cfg.Save(); err != nil {
			ui.PrintError("failed to save config: %v", err)
			return nil, nil, fmt.Errorf("config save failed")
		}
	}

	apiClient, err := client.NewAPIClient(cfg.Server, cfg.UserID)
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return nil, nil, fmt.Errorf("client creation failed")
	}

	return cfg, apiClient, nil
}

// resolveMode maps the config and the --wizard flag to a controller mode.
func resolveMode(cfg *config.Config, wizardFlag bool) controller.Mode {
	if wizardFlag || cfg.Mode == config.ModeWizard {
		return controller.ModeWizard
	}
	return controller.ModeConversation
}
