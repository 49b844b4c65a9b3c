package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/go-admin-workflow/internal/domain"
)

// ExceptionTranslator decides what happens to recoverable persistence
// failures. In debug mode the error is handed back so the caller propagates
// it to the diagnostic page; otherwise it is logged and swallowed, and the
// caller picks the user-facing feedback.
type ExceptionTranslator struct {
	debug  bool
	logger *slog.Logger
}

// NewExceptionTranslator creates an ExceptionTranslator.
func NewExceptionTranslator(debug bool, logger *slog.Logger) *ExceptionTranslator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ExceptionTranslator{debug: debug, logger: logger}
}

// Translate returns err unchanged in debug mode and nil otherwise.
func (t *ExceptionTranslator) Translate(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if t.debug {
		return err
	}

	attrs := []any{slog.Any("error", err)}

	var perr *domain.PersistenceError
	if errors.As(err, &perr) {
		attrs = append(attrs, slog.String("operation", perr.Op))
		if cause := perr.Cause(); cause != nil {
			attrs = append(attrs, slog.String("previous_error_message", cause.Error()))
		}
	} else if cause := errors.Unwrap(err); cause != nil {
		attrs = append(attrs, slog.String("previous_error_message", cause.Error()))
	}

	t.logger.ErrorContext(ctx, err.Error(), attrs...)
	return nil
}
