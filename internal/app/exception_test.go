package app

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/go-admin-workflow/internal/domain"
)

func TestExceptionTranslator_Translate(t *testing.T) {
	t.Parallel()

	cause := errors.New("unique constraint failed")
	perr := &domain.PersistenceError{Op: "create", Err: cause}

	t.Run("debug propagates", func(t *testing.T) {
		t.Parallel()
		tr := NewExceptionTranslator(true, discardLogger())
		if err := tr.Translate(context.Background(), perr); !errors.Is(err, cause) {
			t.Errorf("Translate() = %v, want original error", err)
		}
	})

	t.Run("production logs and swallows", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))

		tr := NewExceptionTranslator(false, logger)
		if err := tr.Translate(context.Background(), perr); err != nil {
			t.Fatalf("Translate() = %v, want nil", err)
		}

		out := buf.String()
		for _, want := range []string{`"level":"ERROR"`, `"operation":"create"`, `"previous_error_message":"unique constraint failed"`} {
			if !strings.Contains(out, want) {
				t.Errorf("log output missing %s: %s", want, out)
			}
		}
	})

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		if err := NewExceptionTranslator(true, nil).Translate(context.Background(), nil); err != nil {
			t.Errorf("Translate(nil) = %v", err)
		}
	})
}
