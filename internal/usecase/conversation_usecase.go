package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Raeus1901/wine-bot/internal/domain"
	"github.com/Raeus1901/wine-bot/internal/domain/entity"
	"github.com/Raeus1901/wine-bot/internal/recommender"
)

// conversationUsecase implements domain.ConversationUsecase. It owns the
// session lifecycle and delegates the actual Q&A logic to the engine.
type conversationUsecase struct {
	engine      *recommender.Engine
	sessionRepo domain.SessionRepository
	logger      *slog.Logger
}

// NewConversationUsecase wires the recommendation engine to a session store.
func NewConversationUsecase(
	engine *recommender.Engine,
	sessionRepo domain.SessionRepository,
	logger *slog.Logger,
) domain.ConversationUsecase {
	return &conversationUsecase{
		engine:      engine,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Converse handles one structured turn. The literal message "reset" clears
// the session instead of being forwarded to the engine.
func (u *conversationUsecase) Converse(ctx context.Context, userID, message string) (*domain.Reply, error) {
	if userID == "" {
		return nil, domain.NewInvalidInputError("Missing user_id")
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, domain.NewInvalidInputError("Empty message")
	}

	sess, err := u.getOrCreateSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(message, "reset") {
		sess.Reset()
		if err := u.sessionRepo.Save(ctx, sess); err != nil {
			return nil, fmt.Errorf("failed to save session: %w", err)
		}
		u.logger.Info("session reset via conversation", "user_id", userID)
		return &domain.Reply{Message: "Session reset. Let's start fresh!", Options: []string{}}, nil
	}

	reply := u.engine.HandleMessage(sess, message)
	if err := u.sessionRepo.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return &reply, nil
}

// NextQuestion returns the wizard prompt for the user's current step.
func (u *conversationUsecase) NextQuestion(ctx context.Context, userID string) (*domain.Prompt, error) {
	if userID == "" {
		return nil, domain.NewInvalidInputError("Missing user_id")
	}

	sess, err := u.getOrCreateSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	prompt := u.engine.CurrentQuestion(sess)
	if err := u.sessionRepo.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return &prompt, nil
}

// Answer records one wizard answer and returns the follow-up prompt.
func (u *conversationUsecase) Answer(ctx context.Context, userID, answer string) (*domain.Prompt, error) {
	if userID == "" {
		return nil, domain.NewInvalidInputError("Missing user_id")
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, domain.NewInvalidInputError("Must provide 'answer' in JSON body")
	}

	sess, err := u.getOrCreateSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	prompt := u.engine.ProcessAnswer(sess, answer)
	if err := u.sessionRepo.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return &prompt, nil
}

// Reset discards the user's session entirely; the next request starts a
// fresh flow. Resetting an unknown user succeeds.
func (u *conversationUsecase) Reset(ctx context.Context, userID string) error {
	if userID == "" {
		return domain.NewInvalidInputError("Missing user_id")
	}
	if err := u.sessionRepo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	u.logger.Info("session reset", "user_id", userID)
	return nil
}

func (u *conversationUsecase) getOrCreateSession(ctx context.Context, userID string) (*entity.Session, error) {
	sess, err := u.sessionRepo.Get(ctx, userID)
	if err == nil {
		return sess, nil
	}
	if !domain.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	u.logger.Info("new conversation started", "user_id", userID)
	return entity.NewSession(userID), nil
}
