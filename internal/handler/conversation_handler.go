package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/Raeus1901/wine-bot/internal/domain"
	"github.com/Raeus1901/wine-bot/internal/handler/dto"
)

// ConversationHandler serves both API shapes: the structured /conversation
// endpoint and the older wizard trio (/next_question, /answer, /reset).
type ConversationHandler struct {
	usecase domain.ConversationUsecase
	logger  *slog.Logger
}

// NewConversationHandler creates the handler.
func NewConversationHandler(usecase domain.ConversationUsecase, logger *slog.Logger) *ConversationHandler {
	return &ConversationHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// Converse handles POST /conversation?user_id={id}.
func (h *ConversationHandler) Converse(ctx context.Context, c *app.RequestContext) {
	userID := c.Query("user_id")
	if userID == "" {
		BadRequestResponse(c, "Missing user_id")
		return
	}

	var req dto.ConversationRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Warn("failed to bind conversation request", "error", err)
		BadRequestResponse(c, "Empty message")
		return
	}

	reply, err := h.usecase.Converse(ctx, userID, req.Message)
	if err != nil {
		h.logger.Error("conversation turn failed", "user_id", userID, "error", err)
		ErrorResponse(c, err)
		return
	}

	c.JSON(consts.StatusOK, dto.ConversationResponse{
		Message: reply.Message,
		Options: reply.Options,
	})
}

// NextQuestion handles GET /next_question?user_id={id}.
func (h *ConversationHandler) NextQuestion(ctx context.Context, c *app.RequestContext) {
	userID := c.Query("user_id")
	if userID == "" {
		BadRequestResponse(c, "Missing user_id")
		return
	}

	prompt, err := h.usecase.NextQuestion(ctx, userID)
	if err != nil {
		h.logger.Error("next question failed", "user_id", userID, "error", err)
		ErrorResponse(c, err)
		return
	}

	c.JSON(consts.StatusOK, dto.QuestionResponse{
		Done:    prompt.Done,
		Message: prompt.Message,
	})
}

// Answer handles POST /answer?user_id={id}.
func (h *ConversationHandler) Answer(ctx context.Context, c *app.RequestContext) {
	userID := c.Query("user_id")
	if userID == "" {
		BadRequestResponse(c, "Missing user_id")
		return
	}

	var req dto.AnswerRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Warn("failed to bind answer request", "error", err)
		BadRequestResponse(c, "Must provide 'answer' in JSON body")
		return
	}

	prompt, err := h.usecase.Answer(ctx, userID, req.Answer)
	if err != nil {
		h.logger.Error("answer failed", "user_id", userID, "error", err)
		ErrorResponse(c, err)
		return
	}

	c.JSON(consts.StatusOK, dto.QuestionResponse{
		Done:    prompt.Done,
		Message: prompt.Message,
	})
}

// Reset handles POST /reset?user_id={id}. Resetting an unknown user still
// succeeds, matching the original server.
func (h *ConversationHandler) Reset(ctx context.Context, c *app.RequestContext) {
	userID := c.Query("user_id")
	if userID == "" {
		BadRequestResponse(c, "Missing user_id")
		return
	}

	if err := h.usecase.Reset(ctx, userID); err != nil {
		h.logger.Error("reset failed", "user_id", userID, "error", err)
		ErrorResponse(c, err)
		return
	}

	c.JSON(consts.StatusOK, dto.ResetResponse{
		Message: "Session reset. Call /next_question to begin again.",
	})
}
