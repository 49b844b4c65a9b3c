package middleware

import (
	"net/http"

	appctx "github.com/jsamuelsen11/go-admin-workflow/internal/app/context"
)

// AppContext returns middleware that attaches a fresh appctx.RequestContext
// to each admin request. Revision and ACL loads made while one action runs are
// memoized on it and dropped with the request.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := appctx.New(r.Context())
			ctx := appctx.WithRequestContext(r.Context(), rc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
