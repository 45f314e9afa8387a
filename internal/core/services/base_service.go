package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/abase_form_kit/internal/middleware"
)

// BaseService gives services a request-scoped logger tagged with the
// service's component name.
type BaseService struct {
	component string
}

// GetLogger gets the request-scoped logger from ctx, or the default one.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if s.component != "" {
		logger = logger.With(slog.String("component", s.component))
	}
	return logger
}

func (s *BaseService) LogError(ctx context.Context, err error, msg string, attrs ...any) {
	s.log(ctx, slog.LevelError, msg, append([]any{slog.String("error", err.Error())}, attrs...)...)
}

func (s *BaseService) LogWarn(ctx context.Context, msg string, attrs ...any) {
	s.log(ctx, slog.LevelWarn, msg, attrs...)
}

func (s *BaseService) LogInfo(ctx context.Context, msg string, attrs ...any) {
	s.log(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *BaseService) LogDebug(ctx context.Context, msg string, attrs ...any) {
	s.log(ctx, slog.LevelDebug, msg, attrs...)
}

func (s *BaseService) log(ctx context.Context, level slog.Level, msg string, attrs ...any) {
	s.GetLogger(ctx).Log(ctx, level, msg, attrs...)
}
