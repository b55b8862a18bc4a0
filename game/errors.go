package game

import (
	"errors"
	"fmt"
)

// Root error classes. Every error returned by a GameState transition wraps
// exactly one of them.
var (
	// ErrRejected marks an ordinary rejected command. The state is unchanged.
	ErrRejected = errors.New("rejected")
	// ErrContract marks a caller passing a stale or corrupt reference.
	ErrContract = errors.New("contract violation")
)

var (
	ErrWrongPhase       = fmt.Errorf("%w: command not allowed in this phase", ErrRejected)
	ErrNotYourTurn      = fmt.Errorf("%w: not this player's turn", ErrRejected)
	ErrIllegalMove      = fmt.Errorf("%w: destination is not a legal move", ErrRejected)
	ErrRosterIncomplete = fmt.Errorf("%w: roster does not have the required size", ErrRejected)
	ErrDraftLimit       = fmt.Errorf("%w: draft selection out of bounds", ErrRejected)
	ErrIneligibleSquare = fmt.Errorf("%w: square is not eligible", ErrRejected)
	ErrPlayerCanMove    = fmt.Errorf("%w: player still has a legal move", ErrRejected)
	ErrUnknownPlayer    = fmt.Errorf("%w: unknown player", ErrContract)
	ErrUnknownVariant   = fmt.Errorf("%w: unknown variant", ErrContract)
	ErrPieceNotFound    = fmt.Errorf("%w: piece not found", ErrContract)
	ErrPieceMisplaced   = fmt.Errorf("%w: piece is not at its recorded square", ErrContract)
)

// IsRejected reports whether err is an ordinary rejection.
func IsRejected(err error) bool {
	return errors.Is(err, ErrRejected)
}

// IsContractViolation reports whether err signals a stale or corrupt reference.
func IsContractViolation(err error) bool {
	return errors.Is(err, ErrContract)
}
