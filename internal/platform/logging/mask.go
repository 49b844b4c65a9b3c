package logging

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/m-mizutani/masq"
)

// maskedNames are field names whose values never reach the log, compared
// in lower case. They cover credential headers, the admin CSRF form field
// and the usual secret names.
var maskedNames = []string{
	"authorization", "cookie", "set-cookie", "x-api-key",
	"_csrf_token", "csrf_token", "csrftoken",
	"password", "secret", "token",
}

// maskedPrefixes catch variants such as secret_key or api_key_v2.
var maskedPrefixes = []string{"secret_", "api_key"}

// maskedValues match credentials that were logged under an innocent name.
// JWT segments need at least ten characters so version strings pass.
var maskedValues = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
}

// IsSensitiveField reports whether a header, query or form field name carries
// a credential or an anti-forgery token. Matching ignores case.
func IsSensitiveField(name string) bool {
	lower := strings.ToLower(name)
	for _, n := range maskedNames {
		if lower == n {
			return true
		}
	}
	for _, p := range maskedPrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

// newRedactAttr builds the masq ReplaceAttr shared by every handler New
// returns. masq compares field names exactly, so the camel-case CSRF name is
// registered in its original spelling as well.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(maskedNames)+len(maskedPrefixes)+len(maskedValues)+1)
	for _, n := range maskedNames {
		opts = append(opts, masq.WithFieldName(n))
	}
	opts = append(opts, masq.WithFieldName("csrfToken"))
	for _, p := range maskedPrefixes {
		opts = append(opts, masq.WithFieldPrefix(p))
	}
	for _, re := range maskedValues {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
