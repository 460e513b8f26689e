package verdict

import (
	"context"
	"log/slog"

	"github.com/playforge/bangate/internal/background"
	"github.com/playforge/bangate/internal/cache"
	"github.com/playforge/bangate/internal/model"
	"github.com/playforge/bangate/internal/services/audit"
	"github.com/playforge/bangate/internal/services/match"
)

// Service orchestrates the check pipeline: validate, consult the verdict
// cache, match against the blacklist on a miss, then schedule the cache
// write and the audit write off the response path.
type Service struct {
	cache   cache.Cache
	matcher *match.Service
	audit   *audit.Service
	tasks   *background.Runner
	logger  *slog.Logger
}

// New creates a new verdict service
func New(verdictCache cache.Cache, matcher *match.Service, auditSvc *audit.Service, tasks *background.Runner, logger *slog.Logger) *Service {
	return &Service{
		cache:   verdictCache,
		matcher: matcher,
		audit:   auditSvc,
		tasks:   tasks,
		logger:  logger,
	}
}

// Check returns the verdict for a submitted identity.
//
// Cache reads and writes are best-effort: a read failure degrades to a
// miss, a write failure is swallowed by the background runner. Two
// concurrent requests for the same identity may both reach the matcher
// and both write the cache; matching is idempotent and side-effect-free
// on the store, so the race is accepted rather than locked away.
func (s *Service) Check(ctx context.Context, id model.IdentityTuple) (model.Verdict, error) {
	if id.PlayerID == "" {
		return model.VerdictNone, model.ErrMissingPlayerID
	}
	if id.PlayerName == "" {
		return model.VerdictNone, model.ErrMissingPlayerName
	}

	key := cache.Key(id)

	cached, ok, err := s.cache.Lookup(ctx, key)
	if err != nil {
		s.logger.Warn("cache lookup failed", slog.String("error", err.Error()))
	} else if ok {
		return cached, nil
	}

	verdict, err := s.matcher.Match(ctx, id.Normalized())
	if err != nil {
		return model.VerdictNone, err
	}

	s.tasks.Go("cache-store", func(ctx context.Context) error {
		return s.cache.Store(ctx, key, verdict)
	})
	s.tasks.Go("audit-record", func(ctx context.Context) error {
		return s.audit.Record(ctx, id, verdict)
	})

	return verdict, nil
}
