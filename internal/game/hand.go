package game

import (
	"fmt"

	"github.com/lox/holdem-engine/poker"
)

// Hand drives one hand of no-limit hold'em from blinds to payout. It owns
// the deck, the board, the betting round and the pot layers; the GameEngine
// constructs one per hand and feeds it validated seat actions.
type Hand struct {
	ID      string
	Players []*Player
	Button  int
	Street  Street
	Board   []poker.Card
	Deck    *poker.Deck
	Betting *BettingRound
	Pots    *PotManager

	sbSeat int
	bbSeat int
	actor  int      // seat to act, -1 when none
	dealt  []Street // streets dealt since the last drain; run-outs deal several

	complete bool
	showdown bool // reached showdown with two or more hands
	payouts  []Payout
}

// ActionResult reports what an applied action did to the hand.
type ActionResult struct {
	Seat           int
	Action         Action
	Amount         int      // chips the action moved into the pot
	Street         Street   // street after the action
	StreetsDealt   []Street // streets dealt by this action, oldest first
	StreetAdvanced bool
	HandComplete   bool
}

// newHand posts blinds, deals hole cards and opens preflop betting. The seat
// slice covers every seat; sitting-out players are skipped for blinds, cards
// and turn order. The caller guarantees at least two players in the hand.
func newHand(id string, players []*Player, button int, smallBlind, bigBlind int, deck *poker.Deck) *Hand {
	h := &Hand{
		ID:      id,
		Players: players,
		Button:  button,
		Street:  Preflop,
		Deck:    deck,
		Betting: NewBettingRound(len(players), bigBlind),
		Pots:    NewPotManager(),
		actor:   -1,
	}

	if !players[button].InHand() {
		panic(fmt.Sprintf("button on seat %d which is not in the hand", button))
	}

	// Heads-up the button posts the small blind and acts first preflop.
	if h.inHandCount() == 2 {
		h.sbSeat = button
		h.bbSeat = h.nextInHand(button + 1)
	} else {
		h.sbSeat = h.nextInHand(button + 1)
		h.bbSeat = h.nextInHand(h.sbSeat + 1)
	}

	h.postBlind(h.sbSeat, smallBlind)
	h.postBlind(h.bbSeat, bigBlind)
	h.Betting.CurrentBet = bigBlind

	h.dealHoleCards()

	h.actor = h.nextToAct(h.bbSeat + 1)
	if h.actor == -1 || h.Betting.Complete(h.Players, h.Street, h.bbSeat) {
		// Blinds put everyone all-in; run the board out.
		h.nextStreet()
	}
	return h
}

// postBlind commits the blind, clamped to the stack for short seats.
func (h *Hand) postBlind(seat, amount int) {
	p := h.Players[seat]
	if amount > p.Chips {
		amount = p.Chips
	}
	p.mustCommit(amount)
}

func (h *Hand) dealHoleCards() {
	for _, p := range h.Players {
		if !p.InHand() {
			continue
		}
		cards, err := h.Deck.Draw(2)
		if err != nil {
			panic(fmt.Sprintf("dealing hole cards: %v", err))
		}
		p.HoleCards = cards
	}
}

// Complete reports whether the hand has been paid out.
func (h *Hand) Complete() bool {
	return h.complete
}

// ReachedShowdown reports whether two or more hands were revealed at the end.
func (h *Hand) ReachedShowdown() bool {
	return h.showdown
}

// SeatToAct returns the seat the hand is waiting on, -1 when none.
func (h *Hand) SeatToAct() int {
	if h.complete {
		return -1
	}
	return h.actor
}

// Payouts returns the per-seat winnings once the hand is complete.
func (h *Hand) Payouts() []Payout {
	return h.payouts
}

// PotTotal returns all chips committed to the hand so far, including live
// street bets.
func (h *Hand) PotTotal() int {
	total := h.Pots.Total()
	for _, p := range h.Players {
		total += p.Bet
	}
	return total
}

// ValidActions returns the actions legal for the given seat right now. Seats
// not due to act get nothing.
func (h *Hand) ValidActions(seat int) []ValidAction {
	if h.complete || seat != h.actor {
		return nil
	}
	return h.Betting.ValidActions(h.Players[seat])
}

// ApplyAction validates and applies one action for the acting seat. For
// Raise, amount is the increment above the current bet; other actions ignore
// it. Rejected actions leave the hand unchanged.
func (h *Hand) ApplyAction(seat int, action Action, amount int) (ActionResult, error) {
	if h.complete {
		return ActionResult{}, fmt.Errorf("%w: hand %s", ErrHandComplete, h.ID)
	}
	if seat < 0 || seat >= len(h.Players) {
		return ActionResult{}, fmt.Errorf("%w: no seat %d", ErrOutOfTurn, seat)
	}
	if seat != h.actor {
		return ActionResult{}, fmt.Errorf("%w: seat %d to act, not %d", ErrOutOfTurn, h.actor, seat)
	}

	p := h.Players[seat]
	br := h.Betting
	toCall := br.CurrentBet - p.Bet
	moved := 0

	switch action {
	case Fold:
		p.Fold()

	case Check:
		if toCall != 0 {
			return ActionResult{}, fmt.Errorf("%w: cannot check facing a bet of %d", ErrInvalidAction, br.CurrentBet)
		}

	case Call:
		moved = toCall
		if moved > p.Chips {
			moved = p.Chips // partial call, player goes all-in
		}
		p.mustCommit(moved)

	case Raise:
		if amount <= 0 {
			return ActionResult{}, fmt.Errorf("%w: raise increment must be positive", ErrInvalidRaiseAmount)
		}
		if br.Acted[seat] {
			return ActionResult{}, fmt.Errorf("%w: betting was not reopened", ErrInvalidAction)
		}
		needed := toCall + amount
		if needed > p.Chips {
			return ActionResult{}, fmt.Errorf("%w: raise needs %d, seat %d has %d", ErrInsufficientChips, needed, seat, p.Chips)
		}
		if amount < br.MinRaise && needed < p.Chips {
			return ActionResult{}, fmt.Errorf("%w: minimum raise is %d, got %d", ErrInvalidRaiseAmount, br.MinRaise, amount)
		}
		p.mustCommit(needed)
		moved = needed
		br.raise(seat, p.Bet)

	case AllIn:
		if p.Chips == 0 {
			return ActionResult{}, fmt.Errorf("%w: seat %d has no chips", ErrInvalidAction, seat)
		}
		if p.Bet+p.Chips > br.CurrentBet && br.Acted[seat] {
			return ActionResult{}, fmt.Errorf("%w: betting was not reopened", ErrInvalidAction)
		}
		moved = p.Chips
		p.mustCommit(p.Chips)
		if p.Bet > br.CurrentBet {
			br.raise(seat, p.Bet)
		}
	}

	br.Acted[seat] = true
	if h.Street == Preflop && seat == h.bbSeat {
		br.BBActed = true
	}

	streetBefore := h.Street
	h.advance(seat)

	return ActionResult{
		Seat:           seat,
		Action:         action,
		Amount:         moved,
		Street:         h.Street,
		StreetsDealt:   h.takeDealtStreets(),
		StreetAdvanced: h.Street != streetBefore,
		HandComplete:   h.complete,
	}, nil
}

// takeDealtStreets drains the streets dealt since the last call, oldest
// first. Blinds putting everyone all-in can deal streets before any action;
// the engine drains those at hand start.
func (h *Hand) takeDealtStreets() []Street {
	if len(h.dealt) == 0 {
		return nil
	}
	out := make([]Street, len(h.dealt))
	copy(out, h.dealt)
	h.dealt = h.dealt[:0]
	return out
}

// advance recomputes the next seat to act after an action by seat, finishing
// the hand or the street when the action closed it.
func (h *Hand) advance(seat int) {
	if h.inHandCount() <= 1 {
		// Everyone else folded; remaining streets are skipped.
		h.finish()
		return
	}

	h.actor = h.nextToAct(seat + 1)
	if h.actor == -1 || h.Betting.Complete(h.Players, h.Street, h.bbSeat) {
		h.nextStreet()
	}
}

// nextStreet collects bets into pot layers and deals the next board cards,
// running straight through to showdown when nobody can bet.
func (h *Hand) nextStreet() {
	h.Pots.Collect(h.Players)
	h.Betting.Reset(len(h.Players))

	switch h.Street {
	case Preflop:
		h.Street = Flop
		h.dealBoard(3)
		h.dealt = append(h.dealt, h.Street)
	case Flop:
		h.Street = Turn
		h.dealBoard(1)
		h.dealt = append(h.dealt, h.Street)
	case Turn:
		h.Street = River
		h.dealBoard(1)
		h.dealt = append(h.dealt, h.Street)
	case River:
		h.Street = Showdown
		h.finish()
		return
	case Showdown:
		return
	}

	h.actor = h.nextToAct(h.Button + 1)
	if h.actor == -1 || h.Betting.Complete(h.Players, h.Street, h.bbSeat) {
		h.nextStreet()
	}
}

// dealBoard burns one card and deals n to the board.
func (h *Hand) dealBoard(n int) {
	if err := h.Deck.Burn(); err != nil {
		panic(fmt.Sprintf("burning before %s: %v", h.Street, err))
	}
	cards, err := h.Deck.Draw(n)
	if err != nil {
		panic(fmt.Sprintf("dealing %s: %v", h.Street, err))
	}
	h.Board = append(h.Board, cards...)
}

// finish collects outstanding bets, resolves the pots and pays the winners.
func (h *Hand) finish() {
	h.Pots.Collect(h.Players)
	h.showdown = h.Street == Showdown && h.inHandCount() > 1
	h.payouts = h.Pots.Payout(h.Players, h.Board, h.Button)
	for _, payout := range h.payouts {
		h.Players[payout.Seat].Chips += payout.Amount
	}
	h.actor = -1
	h.complete = true
}

// nextToAct returns the first seat from `from` (wrapping) that can act.
func (h *Hand) nextToAct(from int) int {
	n := len(h.Players)
	for i := 0; i < n; i++ {
		seat := (from + i) % n
		if h.Players[seat].CanAct() {
			return seat
		}
	}
	return -1
}

// nextInHand returns the first seat from `from` (wrapping) still in the hand.
func (h *Hand) nextInHand(from int) int {
	n := len(h.Players)
	for i := 0; i < n; i++ {
		seat := (from + i) % n
		if h.Players[seat].InHand() {
			return seat
		}
	}
	panic("no seats in hand")
}

func (h *Hand) inHandCount() int {
	count := 0
	for _, p := range h.Players {
		if p.InHand() {
			count++
		}
	}
	return count
}
