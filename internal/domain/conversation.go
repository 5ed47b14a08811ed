package domain

import (
	"context"

	"github.com/Raeus1901/wine-bot/internal/domain/entity"
)

// Reply is one structured conversation turn: the text to show plus the
// quick-reply options that replace whatever was offered before. Options is
// never nil so an exhausted flow clears the previous set.
type Reply struct {
	Message string
	Options []string
}

// Prompt is one wizard turn. Done flips once the question sequence is
// exhausted and a recommendation has been produced.
type Prompt struct {
	Message string
	Done    bool
}

// SessionRepository stores per-user conversation state keyed by the opaque
// client identifier. Get returns ErrNotFound for unknown users.
type SessionRepository interface {
	Get(ctx context.Context, userID string) (*entity.Session, error)
	Save(ctx context.Context, session *entity.Session) error
	Delete(ctx context.Context, userID string) error
}

// ConversationUsecase drives both API shapes over the same session state.
type ConversationUsecase interface {
	// Converse handles one structured turn (POST /conversation).
	Converse(ctx context.Context, userID, message string) (*Reply, error)

	// NextQuestion returns the current wizard question (GET /next_question).
	NextQuestion(ctx context.Context, userID string) (*Prompt, error)

	// Answer records a wizard answer and returns the follow-up prompt
	// (POST /answer).
	Answer(ctx context.Context, userID, answer string) (*Prompt, error)

	// Reset discards the user's session (POST /reset).
	Reset(ctx context.Context, userID string) error
}
