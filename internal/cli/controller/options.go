package controller

import (
	"regexp"
	"strings"
)

// The wizard API embeds quick replies in the message text, e.g.
// "2. How strong do you want it? Options: 11-12%, 12-13%, 14-15%".
// The marker is matched case-insensitively and the capture stops at the
// end of the line.
var optionsMarker = regexp.MustCompile(`(?i)options:\s*(.+)`)

// ExtractOptions pulls the quick-reply set out of a wizard message.
// Returns nil when the message carries no options, which is how the final
// recommendation clears the option row.
func ExtractOptions(message string) []string {
	m := optionsMarker.FindStringSubmatch(message)
	if m == nil {
		return nil
	}

	var options []string
	for _, part := range strings.Split(m[1], ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			options = append(options, part)
		}
	}
	return options
}
