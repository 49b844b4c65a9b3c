package middleware

import "net/http"

// Chain composes middleware into one. The first argument is the outermost:
//
//	Chain(Session(opts), Actor(), Locale(match))(admin)
//
// runs Session first on the way in and last on the way out.
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}

// AdminStack returns the middleware every admin route needs and health
// probes do not: the browser session, the acting user, the locale and the
// per-request memoization context, in that order.
func AdminStack(session SessionOptions, matchLocale func(accept string) string) func(http.Handler) http.Handler {
	return Chain(
		Session(session),
		Actor(),
		Locale(matchLocale),
		AppContext(),
	)
}
