package model

import "time"

// BlacklistEntry is a row in the blacklist. Any subset of identity columns
// may be populated: an entry with only SystemHardwareHash set bans that
// hardware id regardless of what the rest of the identity looks like.
type BlacklistEntry struct {
	ID                 string
	LicenseKey         *string
	PlayerID           *string
	PlayerName         *string
	SystemUsernameHash *string
	SystemHardwareHash *string
	CreatedAt          time.Time
}

// IsEmpty reports whether the entry has no identity column populated
func (e BlacklistEntry) IsEmpty() bool {
	return e.LicenseKey == nil &&
		e.PlayerID == nil &&
		e.PlayerName == nil &&
		e.SystemUsernameHash == nil &&
		e.SystemHardwareHash == nil
}
