package logger

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
)

type contextKey string

// EventTypeKey identifies the event kind currently being processed.
const EventTypeKey contextKey = "event_type"

// MessageIDKey identifies the stream entry the event arrived in.
const MessageIDKey contextKey = "message_id"

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// Setup configures the global logrus instance: JSON output to stdout at the
// configured level.
func Setup(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// WithContext creates a logger carrying the event identifiers stored in ctx
func WithContext(ctx context.Context) *Logger {
	logger := New()

	if eventType, ok := ctx.Value(EventTypeKey).(string); ok && eventType != "" {
		logger.Entry = logger.Entry.WithField("event_type", eventType)
	}
	if messageID, ok := ctx.Value(MessageIDKey).(string); ok && messageID != "" {
		logger.Entry = logger.Entry.WithField("message_id", messageID)
	}

	return logger
}

// WithEventType stores the event kind in ctx for WithContext to pick up
func WithEventType(ctx context.Context, eventType string) context.Context {
	return context.WithValue(ctx, EventTypeKey, eventType)
}

// WithMessageID stores the stream entry id in ctx for WithContext to pick up
func WithMessageID(ctx context.Context, messageID string) context.Context {
	return context.WithValue(ctx, MessageIDKey, messageID)
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError adds an error field to the logger
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}
