package colony

import (
	"fmt"
	"strings"
)

// Plan is the approach chosen for a whole mission.
type Plan int

const (
	Reconnaissance Plan = iota // search for a weak spot
	Breach                     // gnaw a passage through the wall
)

// Plans lists every valid plan.
var Plans = []Plan{Reconnaissance, Breach}

func (p Plan) String() string {
	switch p {
	case Reconnaissance:
		return "reconnaissance"
	case Breach:
		return "breach"
	default:
		return fmt.Sprintf("plan(%d)", int(p))
	}
}

func (p Plan) Valid() bool {
	return p == Reconnaissance || p == Breach
}

// ParsePlan accepts the names produced by String, case-insensitively.
func ParsePlan(s string) (Plan, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reconnaissance", "recon":
		return Reconnaissance, nil
	case "breach":
		return Breach, nil
	default:
		return 0, fmt.Errorf("unknown plan %q: %w", s, ErrUnknownPlan)
	}
}
