package logging

import (
	"log/slog"

	"github.com/google/uuid"
)

// WithRunID tags logger with a fresh run identifier and returns both.
func WithRunID(logger *slog.Logger) (*slog.Logger, string) {
	if logger == nil {
		logger = NewNop()
	}
	id := uuid.NewString()
	return logger.With(slog.String(FieldRunID, id)), id
}
