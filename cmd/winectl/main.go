package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Raeus1901/wine-bot/internal/cli/commands"
	"github.com/Raeus1901/wine-bot/internal/cli/ui"
)

func main() {
	if err := commands.Execute(); err != nil {
		// Handle unknown command errors specially
		errMsg := err.Error()
		if strings.Contains(errMsg, "unknown command") {
			ui.PrintError("%s", errMsg)
			fmt.Println("\nRun 'winectl --help' for usage.")
		}
		os.Exit(1)
	}
}
