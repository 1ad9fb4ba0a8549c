package game

import "errors"

// Sentinel errors for caller-facing action rejections. Each leaves the hand
// state unchanged; callers match with errors.Is.
var (
	// ErrInsufficientChips is returned when a commitment exceeds a player's
	// remaining stack.
	ErrInsufficientChips = errors.New("insufficient chips")

	// ErrInvalidAction is returned for actions that are illegal in the
	// current state, like checking while facing a bet or raising when a
	// short all-in has not reopened the betting.
	ErrInvalidAction = errors.New("invalid action")

	// ErrOutOfTurn is returned when the acting seat is not the seat the
	// round is waiting on.
	ErrOutOfTurn = errors.New("out of turn")

	// ErrInvalidRaiseAmount is returned when a raise increment is below the
	// round minimum and the raiser is not going all-in.
	ErrInvalidRaiseAmount = errors.New("invalid raise amount")

	// ErrHandComplete is returned for actions applied after the hand ended.
	ErrHandComplete = errors.New("hand already complete")

	// ErrNotEnoughPlayers is returned by StartHand when fewer than two
	// seats can fund the minimum stack.
	ErrNotEnoughPlayers = errors.New("not enough players")
)
