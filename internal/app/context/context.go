// Package appctx memoizes store lookups for the lifetime of one HTTP request.
//
// The AppContext middleware puts a RequestContext on every request. The admin
// engine loads revisions through GetOrFetch, so comparing two revisions of a
// subject and then rendering one of them touches the audit store once per
// revision:
//
//	rc := appctx.Ensure(ctx)
//	rev, err := appctx.GetOrFetch(rc, appctx.Key("revision", class, id, revID), load)
package appctx

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrTypeMismatch means one key was fetched with two different result types.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

type ctxKey struct{}

// RequestContext is a context.Context carrying a per-request memo table.
// Lookups may run from several goroutines; fetches for distinct keys are not
// serialized against each other.
type RequestContext struct {
	context.Context

	mu   sync.Mutex
	memo map[string]result
}

type result struct {
	value any
	err   error
}

// New wraps ctx with an empty memo table.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{Context: ctx, memo: map[string]result{}}
}

// WithRequestContext stores rc in ctx.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, rc)
}

// FromContext returns the RequestContext stored in ctx, or nil.
func FromContext(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(ctxKey{}).(*RequestContext)
	return rc
}

// Ensure returns the stored RequestContext, or a throwaway one for callers
// outside the HTTP stack.
func Ensure(ctx context.Context) *RequestContext {
	if rc := FromContext(ctx); rc != nil {
		return rc
	}
	return New(ctx)
}

// Key joins parts with ':'.
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}

// GetOrFetch returns the memoized outcome for key, calling fetch on a miss.
// Errors are memoized too: a revision that was missing a moment ago is still
// missing for the rest of the request.
func GetOrFetch[T any](rc *RequestContext, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	rc.mu.Lock()
	hit, ok := rc.memo[key]
	rc.mu.Unlock()

	if !ok {
		v, err := fetch(rc.Context)
		rc.mu.Lock()
		rc.memo[key] = result{value: v, err: err}
		rc.mu.Unlock()
		return v, err
	}

	if hit.err != nil {
		return zero, hit.err
	}
	v, ok := hit.value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, hit.value, zero)
	}
	return v, nil
}
