package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case CheckResult:
		o.printCheckResult(v)
	case Entry:
		o.printEntry(v)
	case EntryList:
		o.printEntryList(v)
	case AuditList:
		o.printAuditList(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// CheckResult response type (matches API)
type CheckResult struct {
	Blacklisted *string `json:"blacklisted"`
}

// Entry response type
type Entry struct {
	ID                 string    `json:"id"`
	LicenseKey         *string   `json:"license_key"`
	PlayerID           *string   `json:"player_id"`
	PlayerName         *string   `json:"player_name"`
	SystemUsernameHash *string   `json:"system_username_hash"`
	SystemHardwareHash *string   `json:"system_hardware_hash"`
	CreatedAt          time.Time `json:"created_at"`
}

// EntryList response type
type EntryList struct {
	Entries []Entry `json:"entries"`
}

// AuditRecord response type
type AuditRecord struct {
	ID                 int64     `json:"id"`
	Timestamp          time.Time `json:"timestamp"`
	LicenseKey         *string   `json:"license_key"`
	PlayerID           string    `json:"player_id"`
	PlayerName         string    `json:"player_name"`
	SystemUsernameHash *string   `json:"system_username_hash"`
	SystemHardwareHash *string   `json:"system_hardware_hash"`
}

// AuditList response type
type AuditList struct {
	Records []AuditRecord `json:"records"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printCheckResult(c CheckResult) {
	if c.Blacklisted == nil {
		fmt.Println("Verdict: clean")
		return
	}
	fmt.Printf("Verdict: blacklisted (%s)\n", *c.Blacklisted)
}

func (o *Output) printEntry(e Entry) {
	fmt.Printf("Entry: %s\n", e.ID)
	printField := func(label string, v *string) {
		if v != nil {
			fmt.Printf("%s: %s\n", label, *v)
		}
	}
	printField("License Key", e.LicenseKey)
	printField("Player ID", e.PlayerID)
	printField("Player Name", e.PlayerName)
	printField("Username Hash", e.SystemUsernameHash)
	printField("Hardware Hash", e.SystemHardwareHash)
	fmt.Printf("Created: %s\n", e.CreatedAt.Format(time.RFC3339))
}

func (o *Output) printEntryList(l EntryList) {
	fmt.Printf("Entries (%d):\n", len(l.Entries))
	for _, e := range l.Entries {
		fmt.Printf("  - %s", e.ID)
		if e.PlayerName != nil {
			fmt.Printf(" name=%s", *e.PlayerName)
		}
		if e.PlayerID != nil {
			fmt.Printf(" player=%s", *e.PlayerID)
		}
		if e.SystemHardwareHash != nil {
			fmt.Printf(" hwid=%s", *e.SystemHardwareHash)
		}
		fmt.Println()
	}
}

func (o *Output) printAuditList(l AuditList) {
	fmt.Printf("Audit records (%d):\n", len(l.Records))
	for _, r := range l.Records {
		fmt.Printf("  [%s] %s (%s)\n", r.Timestamp.Format(time.RFC3339), r.PlayerName, r.PlayerID)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
