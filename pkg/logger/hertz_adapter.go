package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// HertzSlogAdapter routes Hertz framework logs through slog so the server
// emits a single log stream.
type HertzSlogAdapter struct {
	logger *slog.Logger
}

// NewHertzSlogAdapter creates a Hertz logger backed by logger.
func NewHertzSlogAdapter(logger *slog.Logger) *HertzSlogAdapter {
	return &HertzSlogAdapter{logger: logger}
}

func (h *HertzSlogAdapter) log(level slog.Level, v ...interface{}) {
	h.logger.Log(context.Background(), level, fmt.Sprint(v...))
}

func (h *HertzSlogAdapter) logf(level slog.Level, format string, v ...interface{}) {
	h.logger.Log(context.Background(), level, fmt.Sprintf(format, v...))
}

func (h *HertzSlogAdapter) Trace(v ...interface{})  { h.log(slog.LevelDebug, v...) }
func (h *HertzSlogAdapter) Debug(v ...interface{})  { h.log(slog.LevelDebug, v...) }
func (h *HertzSlogAdapter) Info(v ...interface{})   { h.log(slog.LevelInfo, v...) }
func (h *HertzSlogAdapter) Notice(v ...interface{}) { h.log(slog.LevelInfo, v...) }
func (h *HertzSlogAdapter) Warn(v ...interface{})   { h.log(slog.LevelWarn, v...) }
func (h *HertzSlogAdapter) Error(v ...interface{})  { h.log(slog.LevelError, v...) }
func (h *HertzSlogAdapter) Fatal(v ...interface{})  { h.log(slog.LevelError, v...) }

func (h *HertzSlogAdapter) Tracef(format string, v ...interface{}) {
	h.logf(slog.LevelDebug, format, v...)
}

func (h *HertzSlogAdapter) Debugf(format string, v ...interface{}) {
	h.logf(slog.LevelDebug, format, v...)
}

func (h *HertzSlogAdapter) Infof(format string, v ...interface{}) {
	h.logf(slog.LevelInfo, format, v...)
}

func (h *HertzSlogAdapter) Noticef(format string, v ...interface{}) {
	h.logf(slog.LevelInfo, format, v...)
}

func (h *HertzSlogAdapter) Warnf(format string, v ...interface{}) {
	h.logf(slog.LevelWarn, format, v...)
}

func (h *HertzSlogAdapter) Errorf(format string, v ...interface{}) {
	h.logf(slog.LevelError, format, v...)
}

func (h *HertzSlogAdapter) Fatalf(format string, v ...interface{}) {
	h.logf(slog.LevelError, format, v...)
}

func (h *HertzSlogAdapter) CtxTracef(ctx context.Context, format string, v ...interface{}) {
	h.logger.Log(ctx, slog.LevelDebug, fmt.Sprintf(format, v...))
}

func (h *HertzSlogAdapter) CtxDebugf(ctx context.Context, format string, v ...interface{}) {
	h.logger.Log(ctx, slog.LevelDebug, fmt.Sprintf(format, v...))
}

func (h *HertzSlogAdapter) CtxInfof(ctx context.Context, format string, v ...interface{}) {
	h.logger.Log(ctx, slog.LevelInfo, fmt.Sprintf(format, v...))
}

func (h *HertzSlogAdapter) CtxNoticef(ctx context.Context, format string, v ...interface{}) {
	h.logger.Log(ctx, slog.LevelInfo, fmt.Sprintf(format, v...))
}

func (h *HertzSlogAdapter) CtxWarnf(ctx context.Context, format string, v ...interface{}) {
	h.logger.Log(ctx, slog.LevelWarn, fmt.Sprintf(format, v...))
}

func (h *HertzSlogAdapter) CtxErrorf(ctx context.Context, format string, v ...interface{}) {
	h.logger.Log(ctx, slog.LevelError, fmt.Sprintf(format, v...))
}

func (h *HertzSlogAdapter) CtxFatalf(ctx context.Context, format string, v ...interface{}) {
	h.logger.Log(ctx, slog.LevelError, fmt.Sprintf(format, v...))
}

// SetLevel is a no-op; the level is controlled by the slog handler.
func (h *HertzSlogAdapter) SetLevel(level hlog.Level) {}

// SetOutput is a no-op; output is controlled by the slog handler.
func (h *HertzSlogAdapter) SetOutput(w io.Writer) {}
