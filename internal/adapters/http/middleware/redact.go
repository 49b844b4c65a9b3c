package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/jsamuelsen11/go-admin-workflow/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders converts request headers into slog attributes sorted by name.
// Credential headers are replaced with "[REDACTED]"; multi-value headers are
// joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	return redactValues(headers)
}

// RedactQuery converts query parameters (list filters, sort, pagination and
// flow markers) into slog attributes sorted by name. Token-bearing parameters
// are replaced with "[REDACTED]".
func RedactQuery(query url.Values) []slog.Attr {
	return redactValues(query)
}

func redactValues(values map[string][]string) []slog.Attr {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, key := range keys {
		if logging.IsSensitiveField(key) {
			attrs = append(attrs, slog.String(key, redacted))
			continue
		}
		attrs = append(attrs, slog.String(key, strings.Join(values[key], ",")))
	}
	return attrs
}
