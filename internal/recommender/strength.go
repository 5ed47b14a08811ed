package recommender

import (
	"regexp"
	"strconv"
	"strings"
)

var lessThanRe = regexp.MustCompile(`less\s+than\s+(\d+)%`)

// interpretStrength maps loose phrasing like "light", "strong" or
// "less than 13%" onto one of the fixed ABV ranges. Returns "" when nothing
// matched.
func interpretStrength(userText string) string {
	text := strings.ToLower(userText)

	if m := lessThanRe.FindStringSubmatch(text); m != nil {
		limit, err := strconv.Atoi(m[1])
		if err == nil {
			switch {
			case limit <= 12:
				return "11-12%"
			case limit <= 13:
				return "12-13%"
			case limit <= 14:
				return "13-14%"
			default:
				return "14-15%"
			}
		}
	}

	for _, word := range []string{"strong", "heavy", "high"} {
		if strings.Contains(text, word) {
			return "14-15%"
		}
	}
	for _, word := range []string{"light", "low"} {
		if strings.Contains(text, word) {
			return "11-12%"
		}
	}
	if strings.Contains(text, "medium") {
		return "12-13%"
	}

	return ""
}
