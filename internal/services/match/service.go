package match

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/playforge/bangate/internal/model"
	"github.com/playforge/bangate/internal/storage"
)

// Service matches normalized identities against the blacklist
type Service struct {
	store  storage.Store
	logger *slog.Logger
}

// New creates a new match service
func New(store storage.Store, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Match reduces the blacklist rows matching any field of the identity to a
// single verdict. The reduction is a priority max over System > Player >
// None and is commutative in row order: every returned row is classified,
// and a Player row seen early can never suppress a System row seen later.
func (s *Service) Match(ctx context.Context, id model.NormalizedIdentity) (model.Verdict, error) {
	// Mandatory fields make this unreachable in practice, but an empty
	// identity must not turn into an unconstrained query.
	if id.IsEmpty() {
		return model.VerdictNone, nil
	}

	candidates, err := s.store.FindCandidates(ctx, id)
	if err != nil {
		return model.VerdictNone, fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}

	verdict := model.VerdictNone
	for _, entry := range candidates {
		verdict = verdict.Max(classify(entry, id))
	}

	if verdict != model.VerdictNone {
		s.logger.Info("blacklist hit",
			slog.String("verdict", verdict.String()),
			slog.Int("candidates", len(candidates)),
		)
	}

	return verdict, nil
}

// classify determines what a single candidate row contributes. A row
// matching on a system identifier (username hash, hardware hash) is a
// system-level ban; one matching only in-game identity (player id, name,
// license key) is player-level. A row returned by the OR-query that
// matches neither set here contributes nothing.
func classify(entry model.BlacklistEntry, id model.NormalizedIdentity) model.Verdict {
	if fieldMatches(entry.SystemUsernameHash, id.SystemUsernameHash) ||
		fieldMatches(entry.SystemHardwareHash, id.SystemHardwareHash) {
		return model.VerdictSystem
	}

	playerID := optional(id.PlayerID)
	playerName := optional(id.PlayerName)
	if fieldMatches(entry.PlayerID, playerID) ||
		fieldMatches(entry.PlayerName, playerName) ||
		fieldMatches(entry.LicenseKey, id.LicenseKey) {
		return model.VerdictPlayer
	}

	return model.VerdictNone
}

// fieldMatches compares a stored column against a normalized request
// field. The stored side is normalized here; the request side already is.
func fieldMatches(stored, requested *string) bool {
	if stored == nil || requested == nil {
		return false
	}
	return *model.NormalizeField(stored) == *requested
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
