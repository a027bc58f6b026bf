package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger wraps slog.Logger with the planner's domain logging helpers
type Logger struct {
	*slog.Logger
}

// New creates a logger writing to stdout, leveled by LOG_LEVEL
func New() *Logger {
	return NewWithWriter(os.Stdout, os.Getenv("LOG_LEVEL"))
}

// NewWithWriter creates a logger writing to w. Text output in gin debug
// mode, JSON otherwise.
func NewWithWriter(w io.Writer, levelStr string) *Logger {
	level := getLogLevel(levelStr)
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler
	if gin.Mode() == gin.DebugMode {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return &Logger{Logger: slog.New(handler)}
}

// getLogLevel converts string to slog.Level
func getLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID adds request ID to logger context
func (l *Logger) WithRequestID(requestID string) *Logger {
	if requestID == "" {
		return l
	}
	return &Logger{Logger: l.Logger.With(slog.String("request_id", requestID))}
}

// WithEventID scopes the logger to one event's plan
func (l *Logger) WithEventID(eventID string) *Logger {
	return &Logger{Logger: l.Logger.With(slog.String("event_id", eventID))}
}

// WithError adds error to logger context
func (l *Logger) WithError(err error) *Logger {
	return &Logger{Logger: l.Logger.With(slog.String("error", err.Error()))}
}

// HTTP logging methods

// LogHTTPRequest logs an HTTP request
func (l *Logger) LogHTTPRequest(c *gin.Context, duration time.Duration) {
	l.Logger.InfoContext(c.Request.Context(),
		"HTTP Request",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("query", c.Request.URL.RawQuery),
		slog.Int("status", c.Writer.Status()),
		slog.Duration("duration", duration),
		slog.String("ip", c.ClientIP()),
		slog.Int("size", c.Writer.Size()),
	)
}

// LogHTTPError logs an HTTP error
func (l *Logger) LogHTTPError(c *gin.Context, err error, statusCode int) {
	l.Logger.ErrorContext(c.Request.Context(),
		"HTTP Error",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.Int("status", statusCode),
		slog.String("error", err.Error()),
	)
}

// Floor plan logging methods

// LogPlanLoaded logs where a plan came from: cache, store or a fresh default.
func (l *Logger) LogPlanLoaded(ctx context.Context, eventID, source string, stands, zones int) {
	l.Logger.InfoContext(ctx,
		"Plan Loaded",
		slog.String("event_id", eventID),
		slog.String("source", source),
		slog.Int("stands", stands),
		slog.Int("zones", zones),
	)
}

// LogPlanSaved logs a whole-document save
func (l *Logger) LogPlanSaved(ctx context.Context, eventID string, stands, zones, newlyAssigned int) {
	l.Logger.InfoContext(ctx,
		"Plan Saved",
		slog.String("event_id", eventID),
		slog.Int("stands", stands),
		slog.Int("zones", zones),
		slog.Int("newly_assigned", newlyAssigned),
	)
}

// LogPlanWarnings logs invariant issues found in a loaded plan
func (l *Logger) LogPlanWarnings(ctx context.Context, eventID string, issues []string) {
	if len(issues) == 0 {
		return
	}
	l.Logger.WarnContext(ctx,
		"Plan Has Issues",
		slog.String("event_id", eventID),
		slog.Int("count", len(issues)),
		slog.Any("issues", issues),
	)
}

// LogLayoutMutation logs one editor operation and whether it changed anything
func (l *Logger) LogLayoutMutation(ctx context.Context, eventID, operation string, applied bool) {
	l.Logger.DebugContext(ctx,
		"Layout Mutation",
		slog.String("event_id", eventID),
		slog.String("operation", operation),
		slog.Bool("applied", applied),
	)
}

// LogStandAssigned logs an exhibitor being bound to a stand
func (l *Logger) LogStandAssigned(ctx context.Context, eventID, standID, exhibitorID string) {
	l.Logger.InfoContext(ctx,
		"Stand Assigned",
		slog.String("event_id", eventID),
		slog.String("stand_id", standID),
		slog.String("exhibitor_id", exhibitorID),
	)
}

// LogRateLimitExceeded logs rate limit exceeded
func (l *Logger) LogRateLimitExceeded(ctx context.Context, ip, endpoint string) {
	l.Logger.WarnContext(ctx,
		"Rate Limit Exceeded",
		slog.String("ip", ip),
		slog.String("endpoint", endpoint),
	)
}

// Global logger instance (can be replaced with dependency injection)
var defaultLogger = New()

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	defaultLogger = logger
}
