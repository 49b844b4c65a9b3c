package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/go-admin-workflow/internal/domain"
)

// Headers set by the authenticating reverse proxy.
const (
	headerForwardedUser  = "X-Forwarded-User"
	headerForwardedRoles = "X-Forwarded-Roles"
)

type actorKey struct{}

// WithActor returns a new context carrying the acting user.
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the acting user. The zero Actor is anonymous.
func ActorFromContext(ctx context.Context) domain.Actor {
	if a, ok := ctx.Value(actorKey{}).(domain.Actor); ok {
		return a
	}
	return domain.Actor{}
}

// Actor returns middleware that resolves the acting user from the trusted
// proxy headers. Roles are comma separated.
func Actor() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor := domain.Actor{Username: strings.TrimSpace(r.Header.Get(headerForwardedUser))}
			for _, role := range strings.Split(r.Header.Get(headerForwardedRoles), ",") {
				if role = strings.TrimSpace(role); role != "" {
					actor.Roles = append(actor.Roles, role)
				}
			}
			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}
