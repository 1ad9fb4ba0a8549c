package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-engine/internal/config"
	"github.com/lox/holdem-engine/internal/handid"
	"github.com/lox/holdem-engine/poker"
)

// GameEngine drives hands over a persistent seat list: blind posting, button
// rotation, busted players sitting out, and the per-hand flow delegated to
// Hand. Exactly one caller goroutine drives an engine.
type GameEngine struct {
	players       []*Player
	button        int
	smallBlind    int
	bigBlind      int
	startingChips int
	minChips      int

	rng    *rand.Rand
	clock  quartz.Clock
	logger *log.Logger
	bus    EventBus
	ids    *handid.Generator

	hand        *Hand
	handsPlayed int
	handStarted time.Time
	chipTotal   int
	chipsSet    bool        // per-seat stacks were set explicitly
	nextDeck    *poker.Deck // deterministic deck for the next hand, tests only
}

// EngineOption configures a GameEngine during construction.
type EngineOption func(*GameEngine)

// WithBlinds sets the small and big blind.
func WithBlinds(small, big int) EngineOption {
	return func(ge *GameEngine) {
		ge.smallBlind = small
		ge.bigBlind = big
	}
}

// WithStartingChips sets every seat's starting stack.
func WithStartingChips(chips int) EngineOption {
	return func(ge *GameEngine) {
		ge.startingChips = chips
	}
}

// WithChips sets individual starting stacks. The length must match the
// number of seats.
func WithChips(chips []int) EngineOption {
	return func(ge *GameEngine) {
		if len(chips) != len(ge.players) {
			panic("chip counts must match number of seats")
		}
		for i, p := range ge.players {
			p.Chips = chips[i]
		}
		ge.chipsSet = true
	}
}

// WithMinChips sets the minimum stack to be dealt in.
func WithMinChips(chips int) EngineOption {
	return func(ge *GameEngine) {
		ge.minChips = chips
	}
}

// WithConfig applies table stakes from configuration.
func WithConfig(table config.Table) EngineOption {
	return func(ge *GameEngine) {
		ge.smallBlind = table.SmallBlind
		ge.bigBlind = table.BigBlind
		ge.startingChips = table.StartingChips
		ge.minChips = table.MinChips
	}
}

// WithRNG sets the random source used for shuffling.
func WithRNG(rng *rand.Rand) EngineOption {
	return func(ge *GameEngine) {
		ge.rng = rng
	}
}

// WithClock sets the clock used for event timestamps; tests inject a mock.
func WithClock(clock quartz.Clock) EngineOption {
	return func(ge *GameEngine) {
		ge.clock = clock
	}
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(logger *log.Logger) EngineOption {
	return func(ge *GameEngine) {
		ge.logger = logger
	}
}

// WithDeck arranges a specific deck for the next hand, for deterministic
// tests. It is consumed by the first StartHand.
func WithDeck(deck *poker.Deck) EngineOption {
	return func(ge *GameEngine) {
		ge.nextDeck = deck
	}
}

// NewGameEngine seats one player per name with the default stakes: 10/20
// blinds and 10 000 starting chips.
func NewGameEngine(names []string, opts ...EngineOption) *GameEngine {
	if len(names) < 2 {
		panic("at least 2 seats required")
	}

	ge := &GameEngine{
		smallBlind:    10,
		bigBlind:      20,
		startingChips: 10000,
		minChips:      10,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
		clock:         quartz.NewReal(),
		logger:        log.New(io.Discard),
		bus:           NewEventBus(),
		ids:           handid.NewGenerator(nil),
	}
	for i, name := range names {
		ge.players = append(ge.players, &Player{Seat: i, Name: name, Status: StatusSittingOut})
	}
	for _, opt := range opts {
		opt(ge)
	}
	if !ge.chipsSet {
		for _, p := range ge.players {
			p.Chips = ge.startingChips
		}
	}

	for _, p := range ge.players {
		ge.chipTotal += p.Chips
	}
	return ge
}

// EventBus returns the bus hand events are published on.
func (ge *GameEngine) EventBus() EventBus {
	return ge.bus
}

// Button returns the current dealer seat.
func (ge *GameEngine) Button() int {
	return ge.button
}

// HandInProgress reports whether a hand is being played.
func (ge *GameEngine) HandInProgress() bool {
	return ge.hand != nil && !ge.hand.Complete()
}

// SeatToAct returns the seat the engine is waiting on, -1 when none.
func (ge *GameEngine) SeatToAct() int {
	if ge.hand == nil {
		return -1
	}
	return ge.hand.SeatToAct()
}

// StartHand resets per-hand state and deals a new hand: the button advances
// to the next funded seat, short stacks sit out, blinds post and hole cards
// go out. Fails with ErrNotEnoughPlayers when fewer than two seats can cover
// the minimum stack.
func (ge *GameEngine) StartHand() error {
	if ge.HandInProgress() {
		return fmt.Errorf("%w: hand %s still in progress", ErrInvalidAction, ge.hand.ID)
	}

	participants := 0
	for _, p := range ge.players {
		p.Bet = 0
		p.TotalBet = 0
		p.HoleCards = nil
		if p.Chips >= ge.minChips {
			p.Status = StatusActive
			participants++
		} else {
			p.Status = StatusSittingOut
		}
	}
	if participants < 2 {
		return fmt.Errorf("%w: %d seats can post, need 2", ErrNotEnoughPlayers, participants)
	}

	if ge.handsPlayed > 0 {
		ge.button = ge.nextParticipant(ge.button + 1)
	} else if !ge.players[ge.button].CanAct() {
		ge.button = ge.nextParticipant(ge.button + 1)
	}

	deck := ge.nextDeck
	ge.nextDeck = nil
	if deck == nil {
		deck = poker.NewDeck(ge.rng)
	}

	id := ge.ids.Generate()
	ge.logger.Debug("Starting hand",
		"handID", id,
		"button", ge.button,
		"players", participants,
		"blinds", fmt.Sprintf("%d/%d", ge.smallBlind, ge.bigBlind))

	ge.handStarted = ge.clock.Now()
	ge.hand = newHand(id, ge.players, ge.button, ge.smallBlind, ge.bigBlind, deck)
	ge.handsPlayed++

	ge.bus.Publish(HandStartEvent{
		HandID:     id,
		Button:     ge.button,
		SmallBlind: ge.smallBlind,
		BigBlind:   ge.bigBlind,
		Seats:      ge.Snapshot().Seats,
		timestamp:  ge.handStarted,
	})

	// Blinds can put every player all-in and run the hand out immediately.
	ge.publishStreets(ge.hand.takeDealtStreets())
	if ge.hand.Complete() {
		ge.finishHand()
	}
	return nil
}

// LegalActions returns the actions currently legal for a seat, with the
// bounds for Raise. Seats not due to act get nothing.
func (ge *GameEngine) LegalActions(seat int) []ValidAction {
	if ge.hand == nil || seat < 0 || seat >= len(ge.players) {
		return nil
	}
	return ge.hand.ValidActions(seat)
}

// ApplyAction validates and applies one action for a seat, publishing the
// resulting events. Rejected actions leave all state unchanged.
func (ge *GameEngine) ApplyAction(seat int, action Action, amount int) (ActionResult, error) {
	if ge.hand == nil {
		return ActionResult{}, fmt.Errorf("%w: no hand started", ErrHandComplete)
	}

	res, err := ge.hand.ApplyAction(seat, action, amount)
	if err != nil {
		return ActionResult{}, err
	}

	p := ge.players[seat]
	ge.logger.Debug("Player action",
		"handID", ge.hand.ID,
		"seat", seat,
		"player", p.Name,
		"action", action,
		"amount", res.Amount,
		"pot", ge.hand.PotTotal())

	ge.bus.Publish(PlayerActionEvent{
		HandID:    ge.hand.ID,
		Seat:      seat,
		Name:      p.Name,
		Action:    action,
		Amount:    res.Amount,
		Street:    res.Street,
		Pot:       ge.hand.PotTotal(),
		timestamp: ge.clock.Now(),
	})

	ge.publishStreets(res.StreetsDealt)
	if res.HandComplete {
		ge.finishHand()
	}

	return res, nil
}

// publishStreets emits one StreetChangeEvent per dealt street with the board
// as it stood on that street. All-in run-outs deal several streets from a
// single action.
func (ge *GameEngine) publishStreets(streets []Street) {
	for _, street := range streets {
		ge.bus.Publish(StreetChangeEvent{
			HandID:    ge.hand.ID,
			Street:    street,
			Board:     append([]poker.Card{}, ge.hand.Board[:boardCards(street)]...),
			Pot:       ge.hand.PotTotal(),
			timestamp: ge.clock.Now(),
		})
	}
}

// boardCards returns how many community cards are out on a street.
func boardCards(s Street) int {
	switch s {
	case Flop:
		return 3
	case Turn:
		return 4
	default:
		return 5
	}
}

// finishHand verifies conservation and publishes the hand result.
func (ge *GameEngine) finishHand() {
	h := ge.hand

	total := 0
	for _, p := range ge.players {
		total += p.Chips
	}
	if total != ge.chipTotal {
		panic(fmt.Sprintf("chip conservation violated: %d chips on the table, started with %d", total, ge.chipTotal))
	}

	pot := 0
	for _, payout := range h.Payouts() {
		pot += payout.Amount
	}

	ge.logger.Debug("Hand complete",
		"handID", h.ID,
		"pot", pot,
		"showdown", h.ReachedShowdown(),
		"payouts", len(h.Payouts()))

	ge.bus.Publish(HandEndEvent{
		HandID:    h.ID,
		Payouts:   h.Payouts(),
		Pot:       pot,
		Showdown:  h.ReachedShowdown(),
		Board:     append([]poker.Card{}, h.Board...),
		Duration:  ge.clock.Now().Sub(ge.handStarted),
		timestamp: ge.clock.Now(),
	})
}

// nextParticipant returns the first seat from `from` (wrapping) dealt into
// the next hand.
func (ge *GameEngine) nextParticipant(from int) int {
	n := len(ge.players)
	for i := 0; i < n; i++ {
		seat := (from + i) % n
		if ge.players[seat].Status != StatusSittingOut {
			return seat
		}
	}
	panic("no participants seated")
}
