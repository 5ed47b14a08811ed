package recommender

import (
	"strings"
	"testing"

	"github.com/Raeus1901/wine-bot/internal/domain/entity"
)

func TestWizardQuestionEmbedsOptions(t *testing.T) {
	e := NewEngine(testCatalog())
	sess := entity.NewSession("u1")

	prompt := e.CurrentQuestion(sess)

	if prompt.Done {
		t.Fatal("fresh session must not be done")
	}
	if !strings.HasPrefix(prompt.Message, "1. What color wine do you prefer?") {
		t.Errorf("unexpected question: %q", prompt.Message)
	}
	if !strings.Contains(prompt.Message, "Options: Red, White, Rosé, Sparkling") {
		t.Errorf("options marker missing: %q", prompt.Message)
	}
}

func TestWizardFullSequence(t *testing.T) {
	e := NewEngine(testCatalog())
	sess := entity.NewSession("u1")

	answers := []string{"Red", "14-15%", "Spain", "$30-40"}
	var last string
	for i, a := range answers {
		prompt := e.ProcessAnswer(sess, a)
		last = prompt.Message
		wantDone := i == len(answers)-1
		if prompt.Done != wantDone {
			t.Fatalf("after answer %d: done = %v, want %v", i+1, prompt.Done, wantDone)
		}
	}

	if !strings.Contains(last, "we recommend") || !strings.Contains(last, "Juan Gil") {
		t.Errorf("expected final recommendation, got %q", last)
	}
	if !sess.Done {
		t.Error("session must be marked done")
	}
}

func TestWizardInvalidAnswerReasks(t *testing.T) {
	e := NewEngine(testCatalog())
	sess := entity.NewSession("u1")

	prompt := e.ProcessAnswer(sess, "orange")

	if !strings.Contains(prompt.Message, "Invalid choice. Please pick one of these:") {
		t.Errorf("expected re-ask, got %q", prompt.Message)
	}
	if sess.Step != 0 {
		t.Errorf("invalid answer must not advance, step = %d", sess.Step)
	}

	// Numeric answers select by position.
	prompt = e.ProcessAnswer(sess, "1")
	if sess.Criteria[entity.SlotColor] != "Red" {
		t.Errorf("numeric answer = %q, want Red", sess.Criteria[entity.SlotColor])
	}
	if !strings.HasPrefix(prompt.Message, "2.") {
		t.Errorf("expected second question, got %q", prompt.Message)
	}
}

func TestWizardAfterDone(t *testing.T) {
	e := NewEngine(testCatalog())
	sess := entity.NewSession("u1")
	sess.Done = true

	if got := e.ProcessAnswer(sess, "Red"); !strings.Contains(got.Message, "already done") {
		t.Errorf("expected already-done message, got %q", got.Message)
	}
	if got := e.CurrentQuestion(sess); !got.Done {
		t.Errorf("done session must keep reporting done")
	}
}
