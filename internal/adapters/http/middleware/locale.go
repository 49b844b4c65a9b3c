package middleware

import (
	"context"
	"net/http"
)

const localeParam = "_locale"

type localeKey struct{}

// WithLocale returns a new context carrying the resolved locale.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeKey{}, locale)
}

// LocaleFromContext returns the resolved locale, or "" when none is set.
func LocaleFromContext(ctx context.Context) string {
	if l, ok := ctx.Value(localeKey{}).(string); ok {
		return l
	}
	return ""
}

// Locale returns middleware that resolves the request locale. An explicit
// _locale query parameter wins over Accept-Language; match maps either to a
// supported locale.
func Locale(match func(accept string) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accept := r.URL.Query().Get(localeParam)
			if accept == "" {
				accept = r.Header.Get("Accept-Language")
			}
			next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), match(accept))))
		})
	}
}
