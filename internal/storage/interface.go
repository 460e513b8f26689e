package storage

import (
	"context"

	"github.com/playforge/bangate/internal/model"
)

// Store defines the interface for the blacklist backing store
type Store interface {
	// FindCandidates returns every blacklist entry where ANY populated field
	// matches the corresponding non-nil identity field, compared
	// case-insensitively. A row may be returned because a single field
	// matched; classifying it is the matcher's job.
	FindCandidates(ctx context.Context, id model.NormalizedIdentity) ([]model.BlacklistEntry, error)

	// Entry administration
	AddEntry(ctx context.Context, entry *model.BlacklistEntry) error
	ListEntries(ctx context.Context) ([]model.BlacklistEntry, error)
	DeleteEntry(ctx context.Context, id string) error

	// Audit log operations
	InsertAudit(ctx context.Context, rec *model.AuditRecord) error
	ListAudit(ctx context.Context, limit int) ([]model.AuditRecord, error)
}
