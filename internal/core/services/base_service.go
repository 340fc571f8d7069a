package services

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ark_management_app/internal/apperrors"
	"github.com/SscSPs/ark_management_app/internal/middleware"
)

// BaseService provides the logging helpers shared by all services.
// Every record carries the name of the service that wrote it.
type BaseService struct {
	component string
}

func newBaseService(component string) BaseService {
	return BaseService{component: component}
}

// GetLogger returns the request logger tagged with the service name.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if s.component == "" {
		return logger
	}
	return logger.With(slog.String("service", s.component))
}

// LogError logs err under msg.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := append([]any{slog.String("error", err.Error())}, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// isExpected reports whether err is a client error that needs no error log.
func isExpected(err error) bool {
	code, _ := apperrors.HTTPStatus(err)
	return code < http.StatusInternalServerError
}
