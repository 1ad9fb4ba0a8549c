package game

import (
	"fmt"

	"github.com/lox/holdem-engine/poker"
)

// Status represents a player's standing within the current hand.
type Status int

const (
	StatusActive Status = iota
	StatusFolded
	StatusAllIn
	StatusSittingOut
)

func (s Status) String() string {
	return [...]string{"active", "folded", "allin", "sittingout"}[s]
}

// Player is the mutable per-seat state. Only the BettingRound and GameEngine
// mutate it; players have no behaviour of their own.
type Player struct {
	Seat      int
	Name      string
	Chips     int
	Bet       int // committed this street
	TotalBet  int // committed this hand
	HoleCards []poker.Card
	Status    Status
}

// Commit moves amount from the player's stack into their street contribution.
// Committing the final chip sets StatusAllIn. Amounts above the stack are
// rejected with ErrInsufficientChips and leave the player unchanged.
func (p *Player) Commit(amount int) error {
	if amount < 0 {
		panic(fmt.Sprintf("negative commit %d for seat %d", amount, p.Seat))
	}
	if amount > p.Chips {
		return fmt.Errorf("%w: seat %d has %d, needs %d", ErrInsufficientChips, p.Seat, p.Chips, amount)
	}
	p.Chips -= amount
	p.Bet += amount
	p.TotalBet += amount
	if p.Chips == 0 && p.Status == StatusActive {
		p.Status = StatusAllIn
	}
	return nil
}

// mustCommit is Commit for amounts already validated against the stack.
func (p *Player) mustCommit(amount int) {
	if err := p.Commit(amount); err != nil {
		panic(err)
	}
}

// Fold takes the player out of the hand. Chips already committed stay in the
// pot.
func (p *Player) Fold() {
	p.Status = StatusFolded
}

// InHand reports whether the player still has a claim on the pot.
func (p *Player) InHand() bool {
	return p.Status == StatusActive || p.Status == StatusAllIn
}

// CanAct reports whether the player can still take betting actions.
func (p *Player) CanAct() bool {
	return p.Status == StatusActive
}
