package model

import "fmt"

// Verdict is the outcome of matching an identity against the blacklist.
// Ordering matters: System outranks Player outranks None.
type Verdict int

const (
	VerdictNone Verdict = iota
	VerdictPlayer
	VerdictSystem
)

// String returns the wire representation of the verdict
func (v Verdict) String() string {
	switch v {
	case VerdictSystem:
		return "system"
	case VerdictPlayer:
		return "player"
	default:
		return "none"
	}
}

// Max returns the more severe of the two verdicts
func (v Verdict) Max(other Verdict) Verdict {
	if other > v {
		return other
	}
	return v
}

// ParseVerdict converts a wire representation back to a Verdict
func ParseVerdict(s string) (Verdict, error) {
	switch s {
	case "system":
		return VerdictSystem, nil
	case "player":
		return VerdictPlayer, nil
	case "none":
		return VerdictNone, nil
	default:
		return VerdictNone, fmt.Errorf("unknown verdict %q", s)
	}
}
