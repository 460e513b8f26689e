package request

import "github.com/playforge/bangate/internal/model"

// CheckRequest is the canonical identity submission
type CheckRequest struct {
	LicenseKey         *string `json:"license_key"`
	PlayerID           string  `json:"player_id"`
	PlayerName         string  `json:"player_name"`
	SystemUsernameHash *string `json:"system_username_hash"`
	SystemHardwareHash *string `json:"system_hardware_hash"`
}

// Identity maps the canonical shape onto the identity tuple
func (r CheckRequest) Identity() model.IdentityTuple {
	return model.IdentityTuple{
		LicenseKey:         r.LicenseKey,
		PlayerID:           r.PlayerID,
		PlayerName:         r.PlayerName,
		SystemUsernameHash: r.SystemUsernameHash,
		SystemHardwareHash: r.SystemHardwareHash,
	}
}

// CheckRequestV1 is the oldest historical wire shape: camelCase-ish field
// names, with the hashed system identifiers called username/hwid.
type CheckRequestV1 struct {
	LicenseKey *string `json:"licenseKey"`
	UUID       string  `json:"uuid"`
	Name       string  `json:"name"`
	Username   *string `json:"username"`
	HWID       *string `json:"hwid"`
}

// Identity maps the v1 shape onto the identity tuple
func (r CheckRequestV1) Identity() model.IdentityTuple {
	return model.IdentityTuple{
		LicenseKey:         r.LicenseKey,
		PlayerID:           r.UUID,
		PlayerName:         r.Name,
		SystemUsernameHash: r.Username,
		SystemHardwareHash: r.HWID,
	}
}

// CheckRequestV2 renamed the hash fields but sent them as plain strings,
// using the empty string where the canonical shape uses null.
type CheckRequestV2 struct {
	LicenseKey   *string `json:"license_key"`
	PlayerUUID   string  `json:"player_uuid"`
	PlayerName   string  `json:"player_name"`
	UsernameHash string  `json:"username_hash"`
	HardwareHash string  `json:"hardware_hash"`
}

// Identity maps the v2 shape onto the identity tuple. Empty-string hashes
// become absent fields so they stay out of cache keys and predicates.
func (r CheckRequestV2) Identity() model.IdentityTuple {
	return model.IdentityTuple{
		LicenseKey:         r.LicenseKey,
		PlayerID:           r.PlayerUUID,
		PlayerName:         r.PlayerName,
		SystemUsernameHash: emptyToNil(r.UsernameHash),
		SystemHardwareHash: emptyToNil(r.HardwareHash),
	}
}

// AddEntryRequest is the request body for creating a blacklist entry
type AddEntryRequest struct {
	LicenseKey         *string `json:"license_key"`
	PlayerID           *string `json:"player_id"`
	PlayerName         *string `json:"player_name"`
	SystemUsernameHash *string `json:"system_username_hash"`
	SystemHardwareHash *string `json:"system_hardware_hash"`
}

// Entry converts the request to a blacklist entry
func (r AddEntryRequest) Entry() model.BlacklistEntry {
	return model.BlacklistEntry{
		LicenseKey:         r.LicenseKey,
		PlayerID:           r.PlayerID,
		PlayerName:         r.PlayerName,
		SystemUsernameHash: r.SystemUsernameHash,
		SystemHardwareHash: r.SystemHardwareHash,
	}
}

func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
