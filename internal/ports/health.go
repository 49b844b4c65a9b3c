package ports

import "context"

// HealthChecker is a dependency that readiness depends on: the sqlite
// store, the session backend or the remote article API.
type HealthChecker interface {
	// Name keys the checker in readiness output.
	Name() string
	// HealthCheck returns nil when the dependency can serve traffic. It must
	// give up when ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry aggregates checkers for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll maps each checker name to its error, nil meaning healthy.
	CheckAll(ctx context.Context) map[string]error
}
