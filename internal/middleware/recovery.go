package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/Raeus1901/wine-bot/internal/handler/dto"
)

// Recovery converts panics into 500 responses instead of dropped
// connections.
func Recovery() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		defer func() {
			if err := recover(); err != nil {
				slog.Default().Error("panic recovered",
					"request_id", GetRequestID(c),
					"method", string(c.Method()),
					"path", string(c.Path()),
					"panic", fmt.Sprintf("%v", err),
					"stack", string(debug.Stack()),
				)

				c.JSON(consts.StatusInternalServerError, dto.ErrorResponse{
					Error: "internal server error",
				})
				c.Abort()
			}
		}()

		c.Next(ctx)
	}
}
