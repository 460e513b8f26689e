package cache

import (
	"strings"

	"github.com/playforge/bangate/internal/model"
)

// Key builds the canonical cache key for an identity. Only license key,
// player id and hardware hash participate: player name and username hash
// are less stable identifiers and are excluded on purpose. Nil fields are
// omitted from the encoding entirely, never written as a placeholder, so
// two requests differing only in an absent field collide to the same key.
// Values are the raw submitted ones, pre-normalization.
func Key(id model.IdentityTuple) string {
	parts := make([]string, 0, 3)
	if id.LicenseKey != nil {
		parts = append(parts, "lk="+*id.LicenseKey)
	}
	if id.PlayerID != "" {
		parts = append(parts, "pid="+id.PlayerID)
	}
	if id.SystemHardwareHash != nil {
		parts = append(parts, "hw="+*id.SystemHardwareHash)
	}
	return strings.Join(parts, "&")
}
