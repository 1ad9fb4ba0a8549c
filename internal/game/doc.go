// Package game implements the no-limit Texas Hold'em engine: per-seat player
// state, the street betting state machine, side-pot accounting and the
// hand-by-hand orchestration that ties them together.
//
// The GameEngine owns a persistent seat list and drives one Hand at a time:
// blinds, hole cards, the four betting streets, showdown and payout. Callers
// apply validated player actions with ApplyAction and read state through
// by-value Snapshots; the engine holds no reference to any caller object.
// Caller mistakes (acting out of turn, checking a pending bet, raising short)
// come back as sentinel errors and leave the hand untouched. Chip conservation
// is asserted after every payout; a violation is a bug and panics.
//
// Everything is single-threaded and synchronous. One goroutine drives an
// engine instance; there are no suspension points and no timeouts in the
// core.
package game
