package ports

import (
	"context"

	"github.com/jsamuelsen11/go-admin-workflow/internal/domain"
)

// AdminService defines the service port for one admin resource.
// Implemented by the application layer; called by the HTTP admin handler.
// Every operation terminates in a domain.Result or an error wrapping one of
// the domain sentinels.
type AdminService interface {
	// Name returns the resource name used in routes ("article").
	Name() string

	List(ctx context.Context, req *domain.Request) (domain.Result, error)
	Create(ctx context.Context, req *domain.Request) (domain.Result, error)
	Edit(ctx context.Context, req *domain.Request, id string) (domain.Result, error)
	Show(ctx context.Context, req *domain.Request, id string) (domain.Result, error)
	Delete(ctx context.Context, req *domain.Request, id string) (domain.Result, error)

	// Batch runs a batch action. Non-POST requests fail with domain.ErrNotFound.
	Batch(ctx context.Context, req *domain.Request) (domain.Result, error)

	History(ctx context.Context, req *domain.Request, id string) (domain.Result, error)
	HistoryViewRevision(ctx context.Context, req *domain.Request, id, revision string) (domain.Result, error)
	HistoryCompareRevisions(ctx context.Context, req *domain.Request, id, base, compare string) (domain.Result, error)

	Export(ctx context.Context, req *domain.Request) (domain.Result, error)
	ACL(ctx context.Context, req *domain.Request, id string) (domain.Result, error)

	// Flashes drains the feedback pending for a session.
	Flashes(ctx context.Context, sessionID string) []domain.Flash
}
