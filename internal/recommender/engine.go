package recommender

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Raeus1901/wine-bot/internal/domain"
	"github.com/Raeus1901/wine-bot/internal/domain/entity"
)

// Engine turns user messages into replies against a fixed wine catalog.
// It is pure: all conversation state lives in the session passed in, so the
// same engine instance serves every user.
type Engine struct {
	catalog []entity.Wine
}

// NewEngine creates an engine over catalog.
func NewEngine(catalog []entity.Wine) *Engine {
	return &Engine{catalog: catalog}
}

var underPriceRe = regexp.MustCompile(`under\s+(\d+)`)

// HandleMessage runs one structured conversation turn: resolve a pending
// slot choice, mine the free text for criteria, then either ask the next
// unfilled question or produce a recommendation.
func (e *Engine) HandleMessage(sess *entity.Session, userText string) domain.Reply {
	if sess.PendingSlot != "" {
		choice, errText := validateSlotChoice(userText, sess.PendingSlot)
		if errText != "" {
			step := stepByKey(sess.PendingSlot)
			return domain.Reply{Message: errText, Options: append([]string(nil), step.Options...)}
		}
		sess.Criteria[sess.PendingSlot] = choice
		sess.PendingSlot = ""
	}

	e.parseFreeText(sess, userText)

	filled := sess.FilledCount()

	if filled == 0 {
		first := steps[0]
		sess.PendingSlot = first.Key
		return domain.Reply{
			Message: "Hello! Let's start with your preference.\n" + first.Question,
			Options: append([]string(nil), first.Options...),
		}
	}

	if filled < len(steps) {
		if next := firstUnfilled(sess.Criteria); next != nil {
			sess.PendingSlot = next.Key
			return domain.Reply{
				Message: fmt.Sprintf("Got it. %s", next.Question),
				Options: append([]string(nil), next.Options...),
			}
		}
	}

	matches := filterWithFallback(e.catalog, sess.Criteria)
	if len(matches) == 0 {
		return domain.Reply{Message: noMatchMessage(sess.Criteria), Options: []string{}}
	}
	return domain.Reply{
		Message: formatRecommendation("Based on your current preferences, here's a suggestion:", matches[0]),
		Options: []string{},
	}
}

// parseFreeText fills any empty criteria slots it can recognize in the text.
// Already-filled slots are never overwritten.
func (e *Engine) parseFreeText(sess *entity.Session, userText string) {
	text := strings.ToLower(userText)

	if sess.Criteria[entity.SlotAlcoholLevel] == "" {
		if guess := interpretStrength(userText); guess != "" {
			sess.Criteria[entity.SlotAlcoholLevel] = guess
		} else {
			for _, opt := range stepByKey(entity.SlotAlcoholLevel).Options {
				if strings.Contains(text, opt) {
					sess.Criteria[entity.SlotAlcoholLevel] = opt
					break
				}
			}
		}
	}

	if sess.Criteria[entity.SlotColor] == "" {
		switch {
		case strings.Contains(text, "red"):
			sess.Criteria[entity.SlotColor] = "Red"
		case strings.Contains(text, "white"):
			sess.Criteria[entity.SlotColor] = "White"
		case strings.Contains(text, "rosé"), strings.Contains(text, "rose"):
			sess.Criteria[entity.SlotColor] = "Rosé"
		case strings.Contains(text, "sparkling"):
			sess.Criteria[entity.SlotColor] = "Sparkling"
		}
	}

	if sess.Criteria[entity.SlotCountry] == "" {
		switch {
		case strings.Contains(text, "france"):
			sess.Criteria[entity.SlotCountry] = "France"
		case strings.Contains(text, "spain"):
			sess.Criteria[entity.SlotCountry] = "Spain"
		case strings.Contains(text, "italy"):
			sess.Criteria[entity.SlotCountry] = "Italy"
		case strings.Contains(text, "other"):
			sess.Criteria[entity.SlotCountry] = "Others"
		}
	}

	if sess.Criteria[entity.SlotPriceRange] == "" {
		for _, opt := range stepByKey(entity.SlotPriceRange).Options {
			if strings.Contains(text, opt) {
				sess.Criteria[entity.SlotPriceRange] = opt
				break
			}
		}
		if sess.Criteria[entity.SlotPriceRange] == "" {
			if m := underPriceRe.FindStringSubmatch(text); m != nil {
				num, err := strconv.Atoi(m[1])
				if err == nil {
					switch {
					case num <= 20:
						sess.Criteria[entity.SlotPriceRange] = "$10-20"
					case num <= 30:
						sess.Criteria[entity.SlotPriceRange] = "$20-30"
					case num <= 40:
						sess.Criteria[entity.SlotPriceRange] = "$30-40"
					default:
						sess.Criteria[entity.SlotPriceRange] = "$40-50"
					}
				}
			}
		}
	}
}

// validateSlotChoice matches the user's text against the slot's options,
// accepting a 1-based index or a case-insensitive label. Returns the chosen
// canonical label, or a re-ask message when nothing matched.
func validateSlotChoice(userText, slotKey string) (choice, errText string) {
	step := stepByKey(slotKey)
	t := strings.ToLower(strings.TrimSpace(userText))

	if idx, err := strconv.Atoi(t); err == nil {
		if idx >= 1 && idx <= len(step.Options) {
			return step.Options[idx-1], ""
		}
		return "", fmt.Sprintf("Invalid choice. Choose one of: %s", strings.Join(step.Options, ", "))
	}

	for _, opt := range step.Options {
		if strings.ToLower(opt) == t {
			return opt, ""
		}
	}

	return "", fmt.Sprintf("I didn't understand. Please choose one of: %s", strings.Join(step.Options, ", "))
}

func noMatchMessage(criteria map[string]string) string {
	orNone := func(key string) string {
		if v := criteria[key]; v != "" {
			return v
		}
		return "None"
	}
	return "No wines matched your preferences, even with partial relaxation.\n" +
		fmt.Sprintf("(Color=%s, ABV=%s, Country=%s, Price=%s)\n",
			orNone(entity.SlotColor), orNone(entity.SlotAlcoholLevel),
			orNone(entity.SlotCountry), orNone(entity.SlotPriceRange)) +
		"Try changing or removing a constraint (e.g. 'Change ABV to 13-14%' or 'Remove country filter')."
}

func formatRecommendation(header string, w entity.Wine) string {
	abv := ""
	if w.ABV >= 0 {
		abv = strconv.FormatFloat(w.ABV, 'f', -1, 64)
	}
	lines := []string{
		header,
		fmt.Sprintf("Winery: %s, %s", w.Winery, w.Country),
		strings.TrimSpace(fmt.Sprintf("%s %s", w.Name, w.Vintage)),
		fmt.Sprintf("%s%% Alc./vol.", abv),
		fmt.Sprintf("$%s", w.Price),
	}
	return strings.Join(lines, "\n")
}
