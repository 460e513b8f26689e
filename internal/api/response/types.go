package response

import (
	"time"

	"github.com/playforge/bangate/internal/model"
)

// CheckResponse is the verdict returned to a client. "system" outranks
// "player"; a clean identity gets an explicit null.
type CheckResponse struct {
	Blacklisted *string `json:"blacklisted"`
}

// CheckResponseFromVerdict converts a verdict to the wire response
func CheckResponseFromVerdict(v model.Verdict) CheckResponse {
	if v == model.VerdictNone {
		return CheckResponse{}
	}
	s := v.String()
	return CheckResponse{Blacklisted: &s}
}

// Entry represents a blacklist entry in API responses
type Entry struct {
	ID                 string    `json:"id"`
	LicenseKey         *string   `json:"license_key"`
	PlayerID           *string   `json:"player_id"`
	PlayerName         *string   `json:"player_name"`
	SystemUsernameHash *string   `json:"system_username_hash"`
	SystemHardwareHash *string   `json:"system_hardware_hash"`
	CreatedAt          time.Time `json:"created_at"`
}

// EntryFromModel converts a model.BlacklistEntry to a response Entry
func EntryFromModel(e model.BlacklistEntry) Entry {
	return Entry{
		ID:                 e.ID,
		LicenseKey:         e.LicenseKey,
		PlayerID:           e.PlayerID,
		PlayerName:         e.PlayerName,
		SystemUsernameHash: e.SystemUsernameHash,
		SystemHardwareHash: e.SystemHardwareHash,
		CreatedAt:          e.CreatedAt,
	}
}

// EntryList wraps a list of entries
type EntryList struct {
	Entries []Entry `json:"entries"`
}

// EntryListFromModel converts a slice of entries
func EntryListFromModel(entries []model.BlacklistEntry) EntryList {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = EntryFromModel(e)
	}
	return EntryList{Entries: out}
}

// AuditRecord represents an audit log row in API responses
type AuditRecord struct {
	ID                 int64     `json:"id"`
	Timestamp          time.Time `json:"timestamp"`
	LicenseKey         *string   `json:"license_key"`
	PlayerID           string    `json:"player_id"`
	PlayerName         string    `json:"player_name"`
	SystemUsernameHash *string   `json:"system_username_hash"`
	SystemHardwareHash *string   `json:"system_hardware_hash"`
}

// AuditRecordFromModel converts a model.AuditRecord
func AuditRecordFromModel(r model.AuditRecord) AuditRecord {
	return AuditRecord{
		ID:                 r.ID,
		Timestamp:          r.Timestamp,
		LicenseKey:         r.Identity.LicenseKey,
		PlayerID:           r.Identity.PlayerID,
		PlayerName:         r.Identity.PlayerName,
		SystemUsernameHash: r.Identity.SystemUsernameHash,
		SystemHardwareHash: r.Identity.SystemHardwareHash,
	}
}

// AuditList wraps a list of audit records
type AuditList struct {
	Records []AuditRecord `json:"records"`
}

// AuditListFromModel converts a slice of audit records
func AuditListFromModel(records []model.AuditRecord) AuditList {
	out := make([]AuditRecord, len(records))
	for i, r := range records {
		out[i] = AuditRecordFromModel(r)
	}
	return AuditList{Records: out}
}
