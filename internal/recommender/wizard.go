package recommender

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Raeus1901/wine-bot/internal/domain"
	"github.com/Raeus1901/wine-bot/internal/domain/entity"
)

// The wizard flow is the older fixed-sequence API: numbered questions with
// the options embedded in the message text after an "Options:" marker, and a
// done flag once the sequence has been exhausted.

// CurrentQuestion returns the wizard prompt for the session's current step.
// Reaching the end of the sequence finalizes the session with a
// recommendation.
func (e *Engine) CurrentQuestion(sess *entity.Session) domain.Prompt {
	if sess.Done {
		return domain.Prompt{
			Message: "Based on your preferences, here is your recommended wine.",
			Done:    true,
		}
	}

	if sess.Step >= len(steps) {
		sess.Done = true
		return domain.Prompt{Message: e.wizardRecommend(sess), Done: true}
	}

	step := steps[sess.Step]
	return domain.Prompt{
		Message: fmt.Sprintf("%d. %s\nOptions: %s", sess.Step+1, step.Question, strings.Join(step.Options, ", ")),
	}
}

// ProcessAnswer validates the answer for the current step, advances the
// sequence and returns the follow-up: a re-ask on invalid input, the next
// question, or the final recommendation.
func (e *Engine) ProcessAnswer(sess *entity.Session, userAnswer string) domain.Prompt {
	if sess.Done {
		return domain.Prompt{
			Message: "We're already done. Reset if you want to start over.",
			Done:    true,
		}
	}

	step := steps[sess.Step]
	answer := strings.ToLower(strings.TrimSpace(userAnswer))

	// "1".."4" select by position.
	if idx, err := strconv.Atoi(answer); err == nil && idx >= 1 && idx <= len(step.Options) {
		answer = strings.ToLower(step.Options[idx-1])
	}

	matched := ""
	for _, opt := range step.Options {
		if strings.ToLower(opt) == answer {
			matched = opt
			break
		}
	}
	if matched == "" {
		return domain.Prompt{
			Message: fmt.Sprintf("Invalid choice. Please pick one of these: %s", strings.Join(step.Options, ", ")),
		}
	}

	sess.Criteria[step.Key] = matched
	sess.Step++

	if sess.Step >= len(steps) {
		sess.Done = true
		return domain.Prompt{Message: e.wizardRecommend(sess), Done: true}
	}
	return e.CurrentQuestion(sess)
}

func (e *Engine) wizardRecommend(sess *entity.Session) string {
	matches := strictFilter(e.catalog, sess.Criteria)
	if len(matches) == 0 {
		return "No wines matched your preferences. Try different criteria!"
	}
	return formatRecommendation("Based on your preferences, we recommend:", matches[0])
}
