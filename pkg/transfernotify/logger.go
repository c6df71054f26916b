package transfernotify

import (
	"context"
	"fmt"
	"log/slog"
)

// Logger is the severity-conditional logging channel used by
// listeners. InfoEnabled reports whether informational severity is
// active for the backing logger; callers that want exactly one
// emission per event check it before choosing between Infof and
// Debugf.
type Logger interface {
	InfoEnabled() bool
	Infof(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// SlogLogger adapts a *slog.Logger to the Logger interface.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger wraps the given slog logger. A nil logger falls back
// to slog.Default().
func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogLogger{logger: logger}
}

func (l *SlogLogger) InfoEnabled() bool {
	return l.logger.Enabled(context.Background(), slog.LevelInfo)
}

func (l *SlogLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *SlogLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}
