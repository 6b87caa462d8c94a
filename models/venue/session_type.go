package venue

import "strings"

// SessionType is the kind of training offered in a session. Values outside
// the canonical set are sheet labels carried through unchanged.
type SessionType string

const (
	Gi   SessionType = "gi"
	NoGi SessionType = "nogi"
	Both SessionType = "both"
	MMA  SessionType = "mma"
)

var sessionTypeTokens = map[string]SessionType{
	"gi":           Gi,
	"g":            Gi,
	"nogi":         NoGi,
	"no-gi":        NoGi,
	"no gi":        NoGi,
	"n":            NoGi,
	"both":         Both,
	"b":            Both,
	"mma":          MMA,
	"mma sparring": MMA,
	"sparring":     MMA,
}

// NormalizeSessionType maps a sheet token onto the canonical set. Tokens it
// does not recognise are returned trimmed but otherwise verbatim.
func NormalizeSessionType(token string) SessionType {
	trimmed := strings.TrimSpace(token)
	key := strings.Join(strings.Fields(strings.ToLower(trimmed)), " ")
	if t, ok := sessionTypeTokens[key]; ok {
		return t
	}
	return SessionType(trimmed)
}

// IsCanonical reports whether t is one of gi, nogi, both or mma.
func (t SessionType) IsCanonical() bool {
	switch t {
	case Gi, NoGi, Both, MMA:
		return true
	}
	return false
}
