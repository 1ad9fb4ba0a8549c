package game

import "github.com/lox/holdem-engine/poker"

// SeatView is one seat's state as seen by a snapshot reader. HoleCards is nil
// when the cards are hidden from the reader.
type SeatView struct {
	Seat      int
	Name      string
	Chips     int
	Bet       int
	TotalBet  int
	Status    Status
	HoleCards []poker.Card
}

// PotView is one pot layer's total and eligible seats.
type PotView struct {
	Amount   int
	Eligible []int
}

// Snapshot is a by-value view of the engine for rendering. It shares no
// mutable state with the engine; readers may hold it as long as they like.
type Snapshot struct {
	HandID       string
	Street       Street
	Board        []poker.Card
	Button       int
	SeatToAct    int // -1 when no action is pending
	Pots         []PotView
	Seats        []SeatView
	HandComplete bool
}

// snapshotFor builds a snapshot from the perspective of forSeat. Hole cards
// are included for the owning seat, and for every revealed hand once the
// hand reaches showdown. Pass -1 for an observer's view.
func (ge *GameEngine) snapshotFor(forSeat int) Snapshot {
	s := Snapshot{
		Button:       ge.button,
		SeatToAct:    -1,
		HandComplete: true,
	}

	h := ge.hand
	if h != nil {
		s.HandID = h.ID
		s.Street = h.Street
		s.Board = append([]poker.Card{}, h.Board...)
		s.SeatToAct = h.SeatToAct()
		s.HandComplete = h.Complete()
		for _, pot := range h.Pots.PotsWithLiveBets(h.Players) {
			s.Pots = append(s.Pots, PotView{
				Amount:   pot.Amount,
				Eligible: append([]int{}, pot.Eligible...),
			})
		}
	}

	for _, p := range ge.players {
		view := SeatView{
			Seat:     p.Seat,
			Name:     p.Name,
			Chips:    p.Chips,
			Bet:      p.Bet,
			TotalBet: p.TotalBet,
			Status:   p.Status,
		}
		if len(p.HoleCards) > 0 && ge.holeCardsVisible(p, forSeat) {
			view.HoleCards = append([]poker.Card{}, p.HoleCards...)
		}
		s.Seats = append(s.Seats, view)
	}
	return s
}

// holeCardsVisible implements the reveal rule: a seat always sees its own
// cards; everyone sees the cards of players still in at showdown.
func (ge *GameEngine) holeCardsVisible(p *Player, forSeat int) bool {
	if p.Seat == forSeat {
		return true
	}
	return ge.hand != nil && ge.hand.ReachedShowdown() && p.InHand()
}

// Snapshot returns an observer's view: every seat's hole cards hidden unless
// revealed at showdown.
func (ge *GameEngine) Snapshot() Snapshot {
	return ge.snapshotFor(-1)
}

// SnapshotFor returns the view from one seat: that seat's own hole cards
// plus any showdown reveals.
func (ge *GameEngine) SnapshotFor(seat int) Snapshot {
	return ge.snapshotFor(seat)
}
