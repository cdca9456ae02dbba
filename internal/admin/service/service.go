package service

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"bizadmin/internal/admin/cache"
	"bizadmin/internal/admin/metrics"
	"bizadmin/internal/admin/model"
	"bizadmin/internal/admin/policy"
	"bizadmin/internal/admin/repository"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrBadRequest   = errors.New("bad request")
)

const (
	defaultCacheTTL       = 30 * time.Second
	defaultUpcomingWindow = 30 * 24 * time.Hour
	topCustomers          = 10
)

type Service struct {
	Store  *repository.Store
	Policy *policy.Engine
	Cache  cache.Cache
	// Metrics is optional; cache hits and misses are counted when set
	Metrics        *metrics.Metrics
	CacheTTL       time.Duration
	UpcomingWindow time.Duration
	Now            func() time.Time

	// bumped by every dashboard invalidation
	generation atomic.Uint64
}

type Options struct {
	Cache          cache.Cache
	Metrics        *metrics.Metrics
	CacheTTL       time.Duration
	UpcomingWindow time.Duration
}

func NewService(store *repository.Store, opts Options) *Service {
	policyEngine, err := policy.NewEngine()
	if err != nil {
		// Policy engine is essential, panic if it fails to load
		panic("failed to initialize policy engine: " + err.Error())
	}

	s := &Service{
		Store:          store,
		Policy:         policyEngine,
		Cache:          opts.Cache,
		Metrics:        opts.Metrics,
		CacheTTL:       opts.CacheTTL,
		UpcomingWindow: opts.UpcomingWindow,
		Now:            func() time.Time { return time.Now().UTC() },
	}
	if s.Cache == nil {
		s.Cache = cache.Noop{}
	}
	if s.CacheTTL <= 0 {
		s.CacheTTL = defaultCacheTTL
	}
	if s.UpcomingWindow <= 0 {
		s.UpcomingWindow = defaultUpcomingWindow
	}
	return s
}

type ctxKey struct{}

// WithRequestID attaches the request id that activity entries are tagged with.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// mapRepoErr translates repository errors to service errors.
func mapRepoErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrDuplicate), errors.Is(err, repository.ErrConstraint):
		return ErrConflict
	}
	return err
}

// afterWrite runs the bookkeeping every successful write shares: audit log line,
// activity entry and dashboard cache invalidation.
func (s *Service) afterWrite(ctx context.Context, op, collection, docID, callerID, summary string) {
	slog.Info("Audit",
		"operation", op,
		"collection", collection,
		"document_id", docID,
		"caller", callerID,
		"summary", summary,
	)
	s.recordActivity(&model.ActivityLog{
		Operation:  op,
		Collection: collection,
		DocumentID: docID,
		CallerID:   callerID,
		Summary:    summary,
		RequestID:  requestID(ctx),
		CreatedAt:  s.Now(),
	})
	s.invalidateDashboards(ctx)
}

// recordActivity is a helper to record activity asynchronously (fire-and-forget)
func (s *Service) recordActivity(entry *model.ActivityLog) {
	if s.Store == nil || s.Store.Activity == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Store.Activity.CreateActivity(ctx, entry); err != nil {
			slog.Warn("failed to record activity", "operation", entry.Operation, "error", err)
		}
	}()
}
