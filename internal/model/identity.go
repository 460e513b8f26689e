package model

import "strings"

// IdentityTuple is the raw identity a client submits for checking.
// PlayerID and PlayerName are mandatory; the remaining fields are optional
// and stay nil when the client did not send them. The raw (non-normalized)
// form is what gets persisted to the audit log.
type IdentityTuple struct {
	LicenseKey         *string
	PlayerID           string
	PlayerName         string
	SystemUsernameHash *string
	SystemHardwareHash *string
}

// NormalizedIdentity is the case-folded projection of an IdentityTuple used
// for matching and nothing else. It is never persisted.
type NormalizedIdentity struct {
	LicenseKey         *string
	PlayerID           string
	PlayerName         string
	SystemUsernameHash *string
	SystemHardwareHash *string
}

// NormalizeField lowercases an optional identity field. Nil passes through
// unchanged. No trimming or Unicode normalization beyond case folding: the
// store is queried case-insensitively, and this is the matching projection
// of that. Idempotent.
func NormalizeField(v *string) *string {
	if v == nil {
		return nil
	}
	folded := strings.ToLower(*v)
	return &folded
}

// Normalized returns the case-folded projection of the tuple
func (t IdentityTuple) Normalized() NormalizedIdentity {
	return NormalizedIdentity{
		LicenseKey:         NormalizeField(t.LicenseKey),
		PlayerID:           strings.ToLower(t.PlayerID),
		PlayerName:         strings.ToLower(t.PlayerName),
		SystemUsernameHash: NormalizeField(t.SystemUsernameHash),
		SystemHardwareHash: NormalizeField(t.SystemHardwareHash),
	}
}

// IsEmpty reports whether no field of the identity is populated
func (n NormalizedIdentity) IsEmpty() bool {
	return n.LicenseKey == nil &&
		n.PlayerID == "" &&
		n.PlayerName == "" &&
		n.SystemUsernameHash == nil &&
		n.SystemHardwareHash == nil
}
