package cache

import (
	"context"
	"time"

	"github.com/playforge/bangate/internal/model"
)

// VerdictTTL is how long a computed verdict stays cached. The HTTP
// Cache-Control max-age sent to clients must be this same value; the two
// are one contract, so both read this constant.
const VerdictTTL = 30 * time.Second

// Cache defines the interface for the shared verdict cache. It is
// best-effort: a Store is not guaranteed to be visible to concurrent
// requests already in flight, and two requests for the same identity may
// both compute and both write. The cache sheds repeated load; it does not
// provide mutual exclusion.
type Cache interface {
	// Lookup returns the cached verdict for the key if present and
	// unexpired. Absence is not an error.
	Lookup(ctx context.Context, key string) (model.Verdict, bool, error)

	// Store caches a verdict under the key for VerdictTTL.
	Store(ctx context.Context, key string, verdict model.Verdict) error
}
