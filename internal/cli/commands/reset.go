package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Raeus1901/wine-bot/internal/cli/config"
	"github.com/Raeus1901/wine-bot/internal/cli/ui"
)

// resetCmd is the reset command
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "discard the current recommendation session",
	Long: `Discard the server-side session for this install. The next chat or ask
starts from the first question again.`,
	Example: `  $ winectl reset`,
	RunE:    runReset,
}

func init() {
	resetCmd.SilenceUsage = true
}

func runReset(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, apiClient, err := loadSession()
	if err != nil {
		return err
	}

	if cfg.Mode == config.ModeWizard {
		resp, err := apiClient.Reset(ctx)
		if err != nil {
			ui.PrintErrorBox("Reset Failed", err.Error())
			return fmt.Errorf("reset failed")
		}
		ui.PrintSuccess("%s", resp.Message)
		return nil
	}

	resp, err := apiClient.Converse(ctx, "reset")
	if err != nil {
		ui.PrintErrorBox("Reset Failed", err.Error())
		return fmt.Errorf("reset failed")
	}
	if resp.Error != "" {
		ui.PrintError("%s", resp.Error)
		return fmt.Errorf("reset failed")
	}
	ui.PrintSuccess("%s", resp.Message)
	return nil
}
