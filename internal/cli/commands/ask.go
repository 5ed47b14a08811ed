package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/Raeus1901/wine-bot/internal/cli/controller"
	"github.com/Raeus1901/wine-bot/internal/cli/ui"
)

var askWizard bool

const freeTextChoice = "(type my own answer)"

// consoleRenderer prints transcript lines straight to the terminal. The
// option set is held back for the survey prompt instead of being drawn.
type consoleRenderer struct {
	options []string
}

func (r *consoleRenderer) AppendMessage(sender, text string) { ui.PrintChatMessage(sender, text) }
func (r *consoleRenderer) SetOptions(options []string)       { r.options = options }
func (r *consoleRenderer) ClearTranscript()                  { ui.ClearScreen() }
func (r *consoleRenderer) ClearInput()                       {}
func (r *consoleRenderer) SetBusy(busy bool)                 {}

// askCmd is the ask command
var askCmd = &cobra.Command{
	Use:   "ask [message]",
	Short: "chat from the shell without entering the TUI",
	Long: `Run a recommendation session as plain terminal prompts. Each question's
quick replies become a selection list; pick one or type your own answer.
The session ends when the advisor produces a recommendation.`,
	Example: `  # Start with a free-text preference
  $ winectl ask "something red and not too strong"

  # Start empty and answer the questions one by one
  $ winectl ask`,
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askWizard, "wizard", false, "use the wizard question/answer API")
	askCmd.SilenceUsage = true
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, apiClient, err := loadSession()
	if err != nil {
		return err
	}

	mode := resolveMode(cfg, askWizard)
	rend := &consoleRenderer{}
	ctrl := controller.New(mode, apiClient, rend, nil)

	ui.PrintChatWelcomeBanner()

	if mode == controller.ModeWizard {
		ctrl.Start(ctx)
	} else {
		text := strings.TrimSpace(strings.Join(args, " "))
		if text == "" {
			prompt := &survey.Input{Message: "What do you feel like drinking?"}
			if err := survey.AskOne(prompt, &text, survey.WithValidator(survey.Required)); err != nil {
				return fmt.Errorf("input failed")
			}
		}
		ctrl.Submit(ctx, text)
	}

	// Keep answering until the advisor stops offering choices, which is
	// when it has produced a recommendation (or an error ended the
	// session).
	for len(rend.options) > 0 {
		choices := append(append([]string{}, rend.options...), freeTextChoice)

		var choice string
		prompt := &survey.Select{
			Message: "Your answer:",
			Options: choices,
		}
		if err := survey.AskOne(prompt, &choice); err != nil {
			// Ctrl+C during the prompt just ends the session.
			return nil
		}

		if choice == freeTextChoice {
			input := &survey.Input{Message: "Answer:"}
			if err := survey.AskOne(input, &choice, survey.WithValidator(survey.Required)); err != nil {
				return nil
			}
		}

		ctrl.Submit(ctx, choice)
	}

	return nil
}
