package game

import "fmt"

// Phase is a stage of the game, from the menu to game over.
type Phase int

const (
	MenuPhase Phase = iota
	DraftPhase
	PlacementPhase
	PlayPhase
	GameOverPhase
)

var phaseNames = []string{"menu", "draft", "placement", "play", "game-over"}

func (p Phase) String() string {
	if p < MenuPhase || int(p) >= len(phaseNames) {
		return fmt.Sprintf("phase(%d)", int(p))
	}
	return phaseNames[p]
}

// MarshalText encodes the phase by name.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a phase name.
func (p *Phase) UnmarshalText(b []byte) error {
	for i, name := range phaseNames {
		if name == string(b) {
			*p = Phase(i)
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", b)
}

// GameState is the whole state of one game. Values are never modified once
// built: every transition returns a new state with Version incremented and
// leaves the receiver untouched, so a GameState can be shared freely.
type GameState struct {
	Version    int          `json:"version"`
	Phase      Phase        `json:"phase"`
	Active     Player       `json:"active"`   // The player to move
	Board      Board        `json:"board"`
	Captured   [2][]Piece   `json:"captured"` // Pieces taken, indexed by the capturing player
	Remaining  [2]int       `json:"remaining"`
	Scores     [2]int       `json:"scores"`
	History    []Move       `json:"history"`
	Selections [2]Selection `json:"selections"`
	Rosters    [2][]Piece   `json:"rosters"` // Drafted pieces still waiting to be placed
	Started    bool         `json:"started"` // True while the Play phase is running
	Winner     Player       `json:"winner"`
	Cause      Cause        `json:"cause"`
}

// NewGameState returns the initial state, sitting at the menu.
func NewGameState() *GameState {
	return &GameState{
		Phase:  MenuPhase,
		Active: Red,
		Winner: NoPlayer,
	}
}

// Copy returns a deep copy that shares no slices with gs.
func (gs GameState) Copy() *GameState {
	next := gs
	for _, p := range Players {
		next.Captured[p] = append([]Piece(nil), gs.Captured[p]...)
		next.Rosters[p] = append([]Piece(nil), gs.Rosters[p]...)
	}
	next.History = append([]Move(nil), gs.History...)
	return &next
}

// next starts a transition: a fresh copy with the version bumped.
func (gs GameState) next() *GameState {
	n := gs.Copy()
	n.Version++
	return n
}

// Position returns the board together with the last move played.
func (gs GameState) Position() Position {
	pos := Position{Board: gs.Board}
	if n := len(gs.History); n > 0 {
		last := gs.History[n-1]
		pos.Last = &last
	}
	return pos
}

// LastMove returns the most recent move, if any.
func (gs GameState) LastMove() (Move, bool) {
	if len(gs.History) == 0 {
		return Move{}, false
	}
	return gs.History[len(gs.History)-1], true
}

// IsOver reports whether the game has ended.
func (gs GameState) IsOver() bool {
	return gs.Phase == GameOverPhase
}

func (gs GameState) expect(phases ...Phase) error {
	for _, p := range phases {
		if gs.Phase == p {
			return nil
		}
	}
	return fmt.Errorf("%w: currently %s", ErrWrongPhase, gs.Phase)
}

func checkPlayer(p Player) error {
	if p != Red && p != Blue {
		return fmt.Errorf("%w: %d", ErrUnknownPlayer, int(p))
	}
	return nil
}

// StartGame leaves the menu, or a finished game, for a fresh draft.
func (gs GameState) StartGame() (*GameState, error) {
	if err := gs.expect(MenuPhase, GameOverPhase); err != nil {
		return nil, fmt.Errorf("start game: %w", err)
	}
	n := &GameState{
		Version: gs.Version + 1,
		Phase:   DraftPhase,
		Active:  Red,
		Winner:  NoPlayer,
	}
	return n, nil
}

// Reset returns to the menu from any phase, discarding the game.
func (gs GameState) Reset() *GameState {
	n := NewGameState()
	n.Version = gs.Version + 1
	return n
}

// AdjustDraft changes one variant count of player's selection by delta.
func (gs GameState) AdjustDraft(player Player, v Variant, delta int) (*GameState, error) {
	if err := gs.expect(DraftPhase); err != nil {
		return nil, fmt.Errorf("adjust draft: %w", err)
	}
	if err := checkPlayer(player); err != nil {
		return nil, fmt.Errorf("adjust draft: %w", err)
	}
	if !v.Valid() {
		return nil, fmt.Errorf("adjust draft: %w: %d", ErrUnknownVariant, int(v))
	}
	sel := gs.Selections[player]
	sel[v] += delta
	if err := sel.Check(); err != nil {
		return nil, fmt.Errorf("adjust draft for %s: %w", player, err)
	}
	n := gs.next()
	n.Selections[player] = sel
	return n, nil
}

// SetDraft replaces player's whole selection.
func (gs GameState) SetDraft(player Player, sel Selection) (*GameState, error) {
	if err := gs.expect(DraftPhase); err != nil {
		return nil, fmt.Errorf("set draft: %w", err)
	}
	if err := checkPlayer(player); err != nil {
		return nil, fmt.Errorf("set draft: %w", err)
	}
	if err := sel.Check(); err != nil {
		return nil, fmt.Errorf("set draft for %s: %w", player, err)
	}
	n := gs.next()
	n.Selections[player] = sel
	return n, nil
}

// FinishDraft moves to placement once both rosters are complete, creating
// every drafted piece off the board.
func (gs GameState) FinishDraft() (*GameState, error) {
	if err := gs.expect(DraftPhase); err != nil {
		return nil, fmt.Errorf("finish draft: %w", err)
	}
	for _, p := range Players {
		if total := gs.Selections[p].Total(); total != RosterSize {
			return nil, fmt.Errorf("finish draft: %w: %s selected %d of %d", ErrRosterIncomplete, p, total, RosterSize)
		}
	}
	n := gs.next()
	n.Phase = PlacementPhase
	n.Board = Board{}
	nextID := PieceID(1)
	for _, p := range Players {
		n.Rosters[p] = NewRoster(p, gs.Selections[p], nextID)
		nextID += PieceID(len(n.Rosters[p]))
	}
	return n, nil
}

// Unplaced returns the drafted pieces player still has to place.
func (gs GameState) Unplaced(player Player) []Piece {
	if checkPlayer(player) != nil {
		return nil
	}
	return append([]Piece(nil), gs.Rosters[player]...)
}

func (gs GameState) findUnplaced(id PieceID) (Player, int, bool) {
	for _, p := range Players {
		for i, piece := range gs.Rosters[p] {
			if piece.ID == id {
				return p, i, true
			}
		}
	}
	return NoPlayer, -1, false
}

// Place puts a drafted piece on an empty dark square of its owner's home ranks.
func (gs GameState) Place(id PieceID, s Square) (*GameState, error) {
	if err := gs.expect(PlacementPhase); err != nil {
		return nil, fmt.Errorf("place: %w", err)
	}
	owner, idx, ok := gs.findUnplaced(id)
	if !ok {
		return nil, fmt.Errorf("place piece %d: %w", id, ErrPieceNotFound)
	}
	if !IsHomeSquare(owner, s) {
		return nil, fmt.Errorf("place piece %d at %s: %w: outside %s territory", id, s, ErrIneligibleSquare, owner)
	}
	if !gs.Board.IsEmpty(s) {
		return nil, fmt.Errorf("place piece %d at %s: %w: occupied", id, s, ErrIneligibleSquare)
	}
	n := gs.next()
	piece := n.Rosters[owner][idx]
	piece.Position = s
	n.Rosters[owner] = append(n.Rosters[owner][:idx], n.Rosters[owner][idx+1:]...)
	n.Board = n.Board.Put(piece)
	return n, nil
}

// StartPlay begins the Play phase with Red to move. Pieces left unplaced are
// dropped from the game.
func (gs GameState) StartPlay() (*GameState, error) {
	if err := gs.expect(PlacementPhase); err != nil {
		return nil, fmt.Errorf("start play: %w", err)
	}
	n := gs.next()
	n.Phase = PlayPhase
	n.Active = Red
	n.Started = true
	for _, p := range Players {
		n.Rosters[p] = nil
		n.Remaining[p] = n.Board.Count(p)
	}
	n.conclude()
	return n, nil
}

// Move plays the piece id standing on from to the destination to.
func (gs GameState) Move(id PieceID, from, to Square) (*GameState, error) {
	if err := gs.expect(PlayPhase); err != nil {
		return nil, fmt.Errorf("move: %w", err)
	}
	piece, ok := gs.Board.At(from)
	if !ok || piece.ID != id {
		if _, elsewhere := gs.Board.Find(id); elsewhere {
			return nil, fmt.Errorf("move piece %d from %s: %w", id, from, ErrPieceMisplaced)
		}
		return nil, fmt.Errorf("move piece %d: %w", id, ErrPieceNotFound)
	}
	if piece.Owner != gs.Active {
		return nil, fmt.Errorf("move piece %d: %w: %s to move", id, ErrNotYourTurn, gs.Active)
	}
	pos := gs.Position()
	if !IsLegal(pos, from, to, piece) {
		return nil, fmt.Errorf("move %s to %s: %w", piece, to, ErrIllegalMove)
	}

	board, mv, ok := ApplyMove(pos, piece, to)
	if !ok {
		return nil, fmt.Errorf("move %s to %s: %w", piece, to, ErrIllegalMove)
	}
	n := gs.next()
	n.Board = board
	if mv.Captured != nil {
		n.Scores[piece.Owner]++
		n.Captured[piece.Owner] = append(n.Captured[piece.Owner], *mv.Captured)
		n.Remaining[piece.Owner.Opponent()]--
	}
	n.History = append(n.History, mv)
	n.Active = piece.Owner.Opponent()
	n.conclude()
	return n, nil
}

// DeclareImmobilized ends the game against player when it has no legal move.
func (gs GameState) DeclareImmobilized(player Player) (*GameState, error) {
	if err := gs.expect(PlayPhase); err != nil {
		return nil, fmt.Errorf("declare immobilized: %w", err)
	}
	if err := checkPlayer(player); err != nil {
		return nil, fmt.Errorf("declare immobilized: %w", err)
	}
	if len(gs.LegalMoves(player)) > 0 {
		return nil, fmt.Errorf("declare %s immobilized: %w", player, ErrPlayerCanMove)
	}
	n := gs.next()
	n.finish(Outcome{Over: true, Winner: player.Opponent(), Cause: CauseImmobilized})
	return n, nil
}

// conclude runs the win evaluator on a state under construction.
func (gs *GameState) conclude() {
	if outcome := Evaluate(gs.Position(), gs.Remaining, gs.Active); outcome.Over {
		gs.finish(outcome)
	}
}

func (gs *GameState) finish(outcome Outcome) {
	gs.Phase = GameOverPhase
	gs.Started = false
	gs.Winner = outcome.Winner
	gs.Cause = outcome.Cause
}

// PieceMoves lists the legal destinations of the piece id in the current
// position. Outside the Play phase no piece may move.
func (gs GameState) PieceMoves(id PieceID) ([]Square, error) {
	piece, ok := gs.Board.Find(id)
	if !ok {
		return nil, fmt.Errorf("piece %d: %w", id, ErrPieceNotFound)
	}
	if gs.Phase != PlayPhase {
		return nil, nil
	}
	return Destinations(gs.Position(), piece), nil
}

// LegalMoves lists every (piece, destination) pair player could play if it
// were its turn, with the piece each one would capture.
func (gs GameState) LegalMoves(player Player) []Candidate {
	if gs.Phase != PlayPhase {
		return nil
	}
	pos := gs.Position()
	var out []Candidate
	for _, p := range gs.Board.PiecesOf(player) {
		for _, to := range Destinations(pos, p) {
			c := Candidate{Piece: p, To: to}
			if victim, ok := ResolveCapture(pos.Board, p, p.Position, to); ok {
				c.Captured = &victim
			}
			out = append(out, c)
		}
	}
	return out
}
