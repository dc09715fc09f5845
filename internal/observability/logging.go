package observability

import (
	"context"
	"log/slog"
	"os"
)

// RepoLogger provides structured logging for repository writes.
type RepoLogger struct {
	tableName string
	logger    *slog.Logger
	enabled   bool
}

// RepoLoggingEnabled switches repository write logging on or off process-wide.
var RepoLoggingEnabled = os.Getenv("APP_ENV") != "test"

// NewRepoLogger creates a RepoLogger for the given table writing through logger.
func NewRepoLogger(tableName string, logger *slog.Logger) *RepoLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &RepoLogger{tableName: tableName, logger: logger, enabled: RepoLoggingEnabled}
}

// LogWrite logs a successful create, update or delete.
func (l *RepoLogger) LogWrite(ctx context.Context, operation string, id any) {
	if !l.enabled {
		return
	}
	l.logger.InfoContext(ctx, "repository "+operation,
		slog.String("table", l.tableName),
		slog.String("operation", operation),
		slog.Any("id", id),
	)
}

// LogError logs a failed repository operation.
func (l *RepoLogger) LogError(ctx context.Context, operation string, err error) {
	if !l.enabled {
		return
	}
	l.logger.ErrorContext(ctx, "repository error",
		slog.String("table", l.tableName),
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)
}
