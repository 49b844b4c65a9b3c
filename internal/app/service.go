package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/go-admin-workflow/internal/domain"
	"github.com/jsamuelsen11/go-admin-workflow/internal/ports"
)

// Compile-time check that AdminService implements ports.AdminService.
var _ ports.AdminService = (*AdminService[any])(nil)

// AdminService implements ports.AdminService for one resource by routing
// each action to the orchestrator, the batch dispatcher or the history
// comparator.
type AdminService[T any] struct {
	res          *Resource
	orchestrator *Orchestrator[T]
	batch        *BatchDispatcher[T]
	history      *HistoryComparator[T]
	session      ports.SessionStore
	logger       *slog.Logger
}

// NewAdminService wires the three engines over one collaborator bundle.
func NewAdminService[T any](res *Resource, c Collaborators[T], specs []domain.BatchActionSpec, handlers map[string]BatchHandler) (*AdminService[T], error) {
	batch, err := NewBatchDispatcher(res, c, specs, handlers)
	if err != nil {
		return nil, err
	}
	e := newEngine(res, c)
	return &AdminService[T]{
		res:          res,
		orchestrator: NewOrchestrator(res, c, batch),
		batch:        batch,
		history:      NewHistoryComparator(res, c),
		session:      c.Session,
		logger:       e.logger,
	}, nil
}

// Name returns the resource name.
func (s *AdminService[T]) Name() string { return s.res.Name }

// Resource returns the resource metadata.
func (s *AdminService[T]) Resource() *Resource { return s.res }

func (s *AdminService[T]) List(ctx context.Context, req *domain.Request) (domain.Result, error) {
	res, err := s.orchestrator.List(ctx, req)
	s.orchestrator.recordAction(ctx, domain.ActionList, err)
	return res, err
}

func (s *AdminService[T]) Create(ctx context.Context, req *domain.Request) (domain.Result, error) {
	res, err := s.orchestrator.Create(ctx, req)
	s.orchestrator.recordAction(ctx, domain.ActionCreate, err)
	return res, err
}

func (s *AdminService[T]) Edit(ctx context.Context, req *domain.Request, id string) (domain.Result, error) {
	res, err := s.orchestrator.Edit(ctx, req, id)
	s.orchestrator.recordAction(ctx, domain.ActionEdit, err)
	return res, err
}

func (s *AdminService[T]) Show(ctx context.Context, req *domain.Request, id string) (domain.Result, error) {
	res, err := s.orchestrator.Show(ctx, req, id)
	s.orchestrator.recordAction(ctx, domain.ActionShow, err)
	return res, err
}

func (s *AdminService[T]) Delete(ctx context.Context, req *domain.Request, id string) (domain.Result, error) {
	res, err := s.orchestrator.Delete(ctx, req, id)
	s.orchestrator.recordAction(ctx, domain.ActionDelete, err)
	return res, err
}

func (s *AdminService[T]) Batch(ctx context.Context, req *domain.Request) (domain.Result, error) {
	res, err := s.batch.Handle(ctx, req)
	s.orchestrator.recordAction(ctx, domain.ActionBatch, err)
	return res, err
}

func (s *AdminService[T]) History(ctx context.Context, req *domain.Request, id string) (domain.Result, error) {
	res, err := s.history.History(ctx, req, id)
	s.orchestrator.recordAction(ctx, domain.ActionHistory, err)
	return res, err
}

func (s *AdminService[T]) HistoryViewRevision(ctx context.Context, req *domain.Request, id, revision string) (domain.Result, error) {
	res, err := s.history.ViewRevision(ctx, req, id, revision)
	s.orchestrator.recordAction(ctx, domain.ActionHistoryViewRevision, err)
	return res, err
}

func (s *AdminService[T]) HistoryCompareRevisions(ctx context.Context, req *domain.Request, id, base, compare string) (domain.Result, error) {
	res, err := s.history.CompareRevisions(ctx, req, id, base, compare)
	s.orchestrator.recordAction(ctx, domain.ActionHistoryCompareRevisions, err)
	return res, err
}

func (s *AdminService[T]) Export(ctx context.Context, req *domain.Request) (domain.Result, error) {
	res, err := s.orchestrator.Export(ctx, req)
	s.orchestrator.recordAction(ctx, domain.ActionExport, err)
	return res, err
}

func (s *AdminService[T]) ACL(ctx context.Context, req *domain.Request, id string) (domain.Result, error) {
	res, err := s.orchestrator.ACL(ctx, req, id)
	s.orchestrator.recordAction(ctx, domain.ActionACL, err)
	return res, err
}

// Flashes drains pending feedback. Failures are logged and yield none.
func (s *AdminService[T]) Flashes(ctx context.Context, sessionID string) []domain.Flash {
	if s.session == nil || sessionID == "" {
		return nil
	}
	flashes, err := s.session.DrainFlashes(ctx, sessionID)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to drain flash messages", slog.Any("error", err))
		return nil
	}
	return flashes
}
