package entity

import "time"

// Slot keys for the recommendation criteria.
const (
	SlotColor        = "Color"
	SlotAlcoholLevel = "AlcoholLevel"
	SlotCountry      = "Country"
	SlotPriceRange   = "PriceRange"
)

// Session is the per-user conversation state. The structured flow fills
// Criteria and tracks the slot it asked about last; the wizard flow walks a
// fixed question sequence by index. A session serves whichever API shape the
// client uses.
type Session struct {
	UserID string `json:"user_id"`

	// Structured flow state.
	Criteria    map[string]string `json:"criteria"`
	PendingSlot string            `json:"pending_slot"`

	// Wizard flow state.
	Step int  `json:"step"`
	Done bool `json:"done"`

	UpdatedAt time.Time `json:"updated_at"`
}

// NewSession returns a fresh session for userID.
func NewSession(userID string) *Session {
	return &Session{
		UserID:    userID,
		Criteria:  make(map[string]string),
		UpdatedAt: time.Now(),
	}
}

// FilledCount reports how many criteria slots hold a value.
func (s *Session) FilledCount() int {
	n := 0
	for _, v := range s.Criteria {
		if v != "" {
			n++
		}
	}
	return n
}

// Reset clears all conversation progress but keeps the user binding.
func (s *Session) Reset() {
	s.Criteria = make(map[string]string)
	s.PendingSlot = ""
	s.Step = 0
	s.Done = false
	s.UpdatedAt = time.Now()
}
