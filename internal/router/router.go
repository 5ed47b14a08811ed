package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/Raeus1901/wine-bot/internal/handler"
	"github.com/Raeus1901/wine-bot/internal/middleware"
)

// Setup registers all routes. Both API shapes stay at the root so existing
// clients of either variant keep working unchanged.
func Setup(
	h *server.Hertz,
	conversationHandler *handler.ConversationHandler,
	healthHandler *handler.HealthHandler,
) {
	h.Use(middleware.Recovery())
	h.Use(middleware.Logger())
	h.Use(middleware.CORS())

	// Health checks
	h.GET("/ping", healthHandler.Ping)
	h.GET("/health/live", healthHandler.Liveness)
	h.GET("/health/ready", healthHandler.Readiness)

	// Structured conversation API
	h.POST("/conversation", conversationHandler.Converse)

	// Wizard API
	h.GET("/next_question", conversationHandler.NextQuestion)
	h.POST("/answer", conversationHandler.Answer)
	h.POST("/reset", conversationHandler.Reset)
}
