package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/savdoplus/savdo_backend/internal/apperrors"
	"github.com/savdoplus/savdo_backend/internal/middleware"
)

const (
	maxConflictAttempts = 3
	conflictBackoff     = 25 * time.Millisecond
)

// withConflictRetry re-runs fn when it fails with apperrors.ErrConflict,
// which the repositories return for serialization failures, deadlocks and
// lock timeouts. Any other error is returned as-is.
func withConflictRetry[T any](ctx context.Context, op string, fn func() (T, error)) (T, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var result T
	var err error
	for attempt := 1; attempt <= maxConflictAttempts; attempt++ {
		result, err = fn()
		if err == nil || !errors.Is(err, apperrors.ErrConflict) {
			return result, err
		}
		if attempt == maxConflictAttempts {
			break
		}
		logger.Warn("Retrying after lock conflict",
			slog.String("operation", op),
			slog.Int("attempt", attempt))
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(time.Duration(attempt) * conflictBackoff):
		}
	}
	logger.Error("Giving up after repeated lock conflicts", slog.String("operation", op))
	return result, err
}
