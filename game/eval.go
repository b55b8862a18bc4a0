package game

import "fmt"

// Cause explains why a game ended.
type Cause int

const (
	CauseNone Cause = iota
	CausePieces
	CauseImmobilized
)

func (c Cause) String() string {
	switch c {
	case CausePieces:
		return "pieces"
	case CauseImmobilized:
		return "immobilized"
	default:
		return "none"
	}
}

// MarshalText encodes the cause by name.
func (c Cause) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a cause name.
func (c *Cause) UnmarshalText(b []byte) error {
	for _, cause := range []Cause{CauseNone, CausePieces, CauseImmobilized} {
		if cause.String() == string(b) {
			*c = cause
			return nil
		}
	}
	return fmt.Errorf("unknown cause %q", b)
}

// Outcome is the verdict of the win evaluator.
type Outcome struct {
	Over   bool
	Winner Player
	Cause  Cause
}

var ongoing = Outcome{Winner: NoPlayer}

// Evaluate decides whether the position is terminal. A player with no
// pieces left loses first; otherwise a player without a single legal move
// loses. If neither side can move, toMove loses.
func Evaluate(pos Position, remaining [2]int, toMove Player) Outcome {
	for _, player := range Players {
		if remaining[player] <= 0 {
			return Outcome{Over: true, Winner: player.Opponent(), Cause: CausePieces}
		}
	}

	var canMove [2]bool
	for _, p := range pos.Board.Pieces() {
		if (p.Owner != Red && p.Owner != Blue) || canMove[p.Owner] {
			continue
		}
		if len(Destinations(pos, p)) == 0 {
			continue
		}
		canMove[p.Owner] = true
		if canMove[Red] && canMove[Blue] {
			return ongoing
		}
	}

	switch {
	case !canMove[Red] && !canMove[Blue]:
		return Outcome{Over: true, Winner: toMove.Opponent(), Cause: CauseImmobilized}
	case !canMove[Red]:
		return Outcome{Over: true, Winner: Blue, Cause: CauseImmobilized}
	case !canMove[Blue]:
		return Outcome{Over: true, Winner: Red, Cause: CauseImmobilized}
	}
	return ongoing
}
