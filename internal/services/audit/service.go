package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/playforge/bangate/internal/dependencies/clock"
	"github.com/playforge/bangate/internal/model"
	"github.com/playforge/bangate/internal/storage"
)

// Service appends raw submissions to the audit log. It runs off the
// response path: callers schedule Record as a detached task and swallow
// its error.
type Service struct {
	store  storage.Store
	clock  clock.Clock
	logger *slog.Logger
}

// New creates a new audit service
func New(store storage.Store, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		clock:  clk,
		logger: logger,
	}
}

// Record persists the raw, non-normalized identity with a server-side
// timestamp. The verdict is logged for observability but is not part of
// the audit row.
func (s *Service) Record(ctx context.Context, identity model.IdentityTuple, verdict model.Verdict) error {
	rec := &model.AuditRecord{
		Timestamp: s.clock.Now().UTC(),
		Identity:  identity,
	}

	if err := s.store.InsertAudit(ctx, rec); err != nil {
		return fmt.Errorf("audit write: %w", err)
	}

	s.logger.Debug("audit recorded",
		slog.Int64("id", rec.ID),
		slog.String("player_id", identity.PlayerID),
		slog.String("verdict", verdict.String()),
	)
	return nil
}

// List returns recent audit records, newest first
func (s *Service) List(ctx context.Context, limit int) ([]model.AuditRecord, error) {
	records, err := s.store.ListAudit(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}
	return records, nil
}
