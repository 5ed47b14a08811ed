package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Raeus1901/wine-bot/internal/cli/tui"
	"github.com/Raeus1901/wine-bot/internal/cli/ui"
)

var chatWizard bool

// chatCmd is the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "start an interactive chat with the wine advisor",
	Long: `Start an interactive chat session with the wine advisor.

Tell it what you feel like in free text, or pick one of the quick replies
it offers for each question. After four answers you get a bottle
recommendation. Type "reset" (or press Ctrl+R) to start over.`,
	Example: `  # Start interactive chat
  $ winectl chat

  # Use the question-by-question wizard API instead
  $ winectl chat --wizard

  # Keyboard controls:
  • Enter sends your message, Tab cycles the quick replies
  • Ctrl+R resets the session, Esc quits`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().BoolVar(&chatWizard, "wizard", false, "use the wizard question/answer API")
	chatCmd.SilenceUsage = true
}

func runChat(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		ui.PrintError("unexpected argument: %s", args[0])
		fmt.Println("\nRun 'winectl chat' to start an interactive session.")
		return fmt.Errorf("invalid arguments")
	}

	cfg, apiClient, err := loadSession()
	if err != nil {
		return err
	}

	program := tui.NewChatProgram(resolveMode(cfg, chatWizard), apiClient, nil)
	if err := program.Run(); err != nil {
		return fmt.Errorf("failed to run chat TUI: %w", err)
	}

	return nil
}
