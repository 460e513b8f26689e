package model

import "time"

// AuditRecord is an append-only record of a raw submission. Identity fields
// are stored exactly as received, with no normalization applied.
type AuditRecord struct {
	ID        int64
	Timestamp time.Time
	Identity  IdentityTuple
}
