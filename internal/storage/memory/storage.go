package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/playforge/bangate/internal/model"
	"github.com/playforge/bangate/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	entries map[string]*model.BlacklistEntry
	audit   []*model.AuditRecord
	nextID  int64
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		entries: make(map[string]*model.BlacklistEntry),
		nextID:  1,
	}
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

func (s *Storage) FindCandidates(ctx context.Context, id model.NormalizedIdentity) ([]model.BlacklistEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []model.BlacklistEntry
	for _, entry := range s.entries {
		if anyFieldMatches(entry, id) {
			matched = append(matched, *entry)
		}
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched, nil
}

// anyFieldMatches mirrors the OR-query the SQL store issues: any populated
// entry column equal (case-insensitively) to the corresponding non-nil
// request field makes the entry a candidate.
func anyFieldMatches(entry *model.BlacklistEntry, id model.NormalizedIdentity) bool {
	if fieldEq(entry.LicenseKey, id.LicenseKey) {
		return true
	}
	if id.PlayerID != "" && fieldEq(entry.PlayerID, &id.PlayerID) {
		return true
	}
	if id.PlayerName != "" && fieldEq(entry.PlayerName, &id.PlayerName) {
		return true
	}
	if fieldEq(entry.SystemUsernameHash, id.SystemUsernameHash) {
		return true
	}
	return fieldEq(entry.SystemHardwareHash, id.SystemHardwareHash)
}

// fieldEq compares a stored column against a normalized (lowercase) request
// field; the stored side is folded here to match LOWER(col) in SQL.
func fieldEq(stored, requested *string) bool {
	if stored == nil || requested == nil {
		return false
	}
	return strings.ToLower(*stored) == *requested
}

func (s *Storage) AddEntry(ctx context.Context, entry *model.BlacklistEntry) error {
	if entry.IsEmpty() {
		return model.ErrEmptyEntry
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *entry
	s.entries[entry.ID] = &copied
	return nil
}

func (s *Storage) ListEntries(ctx context.Context) ([]model.BlacklistEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]model.BlacklistEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		entries = append(entries, *entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}

func (s *Storage) DeleteEntry(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[id]; !ok {
		return model.ErrEntryNotFound
	}
	delete(s.entries, id)
	return nil
}

func (s *Storage) InsertAudit(ctx context.Context, rec *model.AuditRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.ID = s.nextID
	s.nextID++
	copied := *rec
	s.audit = append(s.audit, &copied)
	return nil
}

func (s *Storage) ListAudit(ctx context.Context, limit int) ([]model.AuditRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]model.AuditRecord, 0, len(s.audit))
	// Newest first
	for i := len(s.audit) - 1; i >= 0; i-- {
		if limit > 0 && len(records) >= limit {
			break
		}
		records = append(records, *s.audit[i])
	}
	return records, nil
}
