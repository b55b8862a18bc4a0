package game

import "fmt"

// Player is one of the two sides of the game.
type Player int

const (
	Red Player = iota
	Blue
	NoPlayer Player = -1
)

// Players lists both sides in turn order.
var Players = []Player{Red, Blue}

// Opponent returns the other side.
func (p Player) Opponent() Player {
	switch p {
	case Red:
		return Blue
	case Blue:
		return Red
	default:
		return NoPlayer
	}
}

// Forward is the row delta a non-crowned piece of this player moves by.
func (p Player) Forward() int {
	if p == Red {
		return 1
	}
	return -1
}

// CrownRow is the rank that crowns this player's pieces.
func (p Player) CrownRow() int {
	if p == Red {
		return Size - 1
	}
	return 0
}

// HomeRows returns the three ranks nearest to this player's edge, back rank first.
func (p Player) HomeRows() []int {
	if p == Red {
		return []int{0, 1, 2}
	}
	return []int{7, 6, 5}
}

func (p Player) String() string {
	switch p {
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return "none"
	}
}

// Variant is the closed set of piece kinds.
type Variant int

const (
	Normal Variant = iota
	Bagel
	Pancake
	Bomb
	Vinyl
	FlyingDisk
	numVariants
)

// Variants lists every variant in declaration order.
var Variants = []Variant{Normal, Bagel, Pancake, Bomb, Vinyl, FlyingDisk}

func (v Variant) String() string {
	switch v {
	case Normal:
		return "normal"
	case Bagel:
		return "bagel"
	case Pancake:
		return "pancake"
	case Bomb:
		return "bomb"
	case Vinyl:
		return "vinyl"
	case FlyingDisk:
		return "flying-disk"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// Valid reports whether v is one of the declared variants.
func (v Variant) Valid() bool {
	return v >= Normal && v < numVariants
}

// ParseVariant maps a variant name back to its value.
func ParseVariant(s string) (Variant, error) {
	for _, v := range Variants {
		if v.String() == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown variant %q", s)
}

// MarshalText encodes the variant by name.
func (v Variant) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("unknown variant %d", int(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText decodes a variant name.
func (v *Variant) UnmarshalText(b []byte) error {
	parsed, err := ParseVariant(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// PieceID identifies a piece for the whole game.
type PieceID int

// Piece is a single game piece. Pieces on a Board are treated as immutable
// values: moving or crowning a piece stores a fresh copy.
type Piece struct {
	ID       PieceID `json:"id"`
	Variant  Variant `json:"variant"`
	Owner    Player  `json:"owner"`
	Crowned  bool    `json:"crowned"`
	Position Square  `json:"position"`
}

func (p Piece) String() string {
	crown := ""
	if p.Crowned {
		crown = "*"
	}
	return fmt.Sprintf("%s %s#%d%s@%s", p.Owner, p.Variant, p.ID, crown, p.Position)
}
