package game

import (
	"time"

	"github.com/lox/holdem-engine/poker"
)

// EventType identifies a game event.
type EventType string

const (
	EventTypeHandStart    EventType = "hand_start"
	EventTypeHandEnd      EventType = "hand_end"
	EventTypeStreetChange EventType = "street_change"
	EventTypePlayerAction EventType = "player_action"
)

func (et EventType) String() string {
	return string(et)
}

// GameEvent is any event published during a hand. Timestamps come from the
// engine's clock.
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// HandStartEvent is published when a new hand begins.
type HandStartEvent struct {
	HandID     string
	Button     int
	SmallBlind int
	BigBlind   int
	Seats      []SeatView
	timestamp  time.Time
}

func (e HandStartEvent) EventType() EventType { return EventTypeHandStart }
func (e HandStartEvent) Timestamp() time.Time { return e.timestamp }

// PlayerActionEvent is published after each applied action.
type PlayerActionEvent struct {
	HandID    string
	Seat      int
	Name      string
	Action    Action
	Amount    int // chips the action moved into the pot
	Street    Street
	Pot       int // pot total after the action
	timestamp time.Time
}

func (e PlayerActionEvent) EventType() EventType { return EventTypePlayerAction }
func (e PlayerActionEvent) Timestamp() time.Time { return e.timestamp }

// StreetChangeEvent is published when the hand moves to a new street.
type StreetChangeEvent struct {
	HandID    string
	Street    Street
	Board     []poker.Card
	Pot       int
	timestamp time.Time
}

func (e StreetChangeEvent) EventType() EventType { return EventTypeStreetChange }
func (e StreetChangeEvent) Timestamp() time.Time { return e.timestamp }

// HandEndEvent is published once the pots are paid.
type HandEndEvent struct {
	HandID    string
	Payouts   []Payout
	Pot       int
	Showdown  bool // decided by evaluation rather than folds
	Board     []poker.Card
	Duration  time.Duration
	timestamp time.Time
}

func (e HandEndEvent) EventType() EventType { return EventTypeHandEnd }
func (e HandEndEvent) Timestamp() time.Time { return e.timestamp }

// EventSubscriber receives game events.
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventBus manages event publishing and subscription.
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a synchronous in-memory event bus.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus.
func NewEventBus() EventBus {
	return &SimpleEventBus{}
}

// Subscribe adds a subscriber to receive events.
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber.
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish delivers an event to all subscribers in subscription order.
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
