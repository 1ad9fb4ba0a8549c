package game

import (
	"fmt"
	"sort"

	"github.com/lox/holdem-engine/poker"
)

// Pot is one layer of the pot: an amount and the seats with a claim on it.
// Folded players fund layers up to their own contribution but are never
// eligible.
type Pot struct {
	Amount   int
	Eligible []int // seat numbers, ascending
}

// PotManager layers the hand's contributions into a main pot and side pots.
// Layers are rebuilt from scratch after every street from the players' total
// contributions, one layer per distinct in-hand contribution level.
type PotManager struct {
	pots []Pot
}

// NewPotManager creates an empty pot manager.
func NewPotManager() *PotManager {
	return &PotManager{}
}

// Collect sweeps the street bets into the pot layers. Player street bets are
// zeroed; total contributions drive the layering.
func (pm *PotManager) Collect(players []*Player) {
	for _, p := range players {
		p.Bet = 0
	}
	pm.rebuild(players)
}

// rebuild layers the pot by the level sweep: distinct contribution levels of
// in-hand players ascending, each layer holding every player's contribution
// clamped between the previous level and this one.
func (pm *PotManager) rebuild(players []*Player) {
	levels := make([]int, 0, len(players))
	for _, p := range players {
		if p.InHand() && p.TotalBet > 0 {
			levels = append(levels, p.TotalBet)
		}
	}
	sort.Ints(levels)
	levels = dedupe(levels)

	pm.pots = pm.pots[:0]
	prev := 0
	for _, level := range levels {
		pot := Pot{}
		for _, p := range players {
			pot.Amount += clamp(p.TotalBet, level) - clamp(p.TotalBet, prev)
			if p.InHand() && p.TotalBet >= level {
				pot.Eligible = append(pot.Eligible, p.Seat)
			}
		}
		if pot.Amount > 0 {
			pm.pots = append(pm.pots, pot)
		}
		prev = level
	}

	// Every contributed chip must land in exactly one layer.
	contributed := 0
	for _, p := range players {
		contributed += p.TotalBet
	}
	if pm.Total() != contributed {
		panic(fmt.Sprintf("pot layers hold %d of %d contributed chips", pm.Total(), contributed))
	}
}

// Pots returns the current layers, main pot first.
func (pm *PotManager) Pots() []Pot {
	return pm.pots
}

// Total returns the chips across all layers.
func (pm *PotManager) Total() int {
	total := 0
	for _, pot := range pm.pots {
		total += pot.Amount
	}
	return total
}

// PotsWithLiveBets returns a copy of the layers with the street's uncollected
// bets added to the layer being bet into, for display while betting runs.
func (pm *PotManager) PotsWithLiveBets(players []*Player) []Pot {
	live := 0
	for _, p := range players {
		live += p.Bet
	}
	if live == 0 && len(pm.pots) > 0 {
		return pm.pots
	}

	result := make([]Pot, len(pm.pots))
	copy(result, pm.pots)
	if live > 0 {
		if len(result) == 0 {
			result = append(result, Pot{})
		}
		result[len(result)-1].Amount += live
	}
	return result
}

// Payout holds one seat's winnings for the hand. Hand is the evaluated best
// hand when the pot was decided at showdown, zero for wins by fold or
// uncalled layers.
type Payout struct {
	Seat   int
	Amount int
	Hand   poker.Hand
}

// Payout resolves every layer and returns the winnings per seat, ordered by
// seat. When more than one player remains, each layer goes to its best
// eligible hand using hole cards plus board; ties split the layer equally
// with remainder chips handed out one each clockwise from the button's left.
// A hand ending in folds skips evaluation entirely.
func (pm *PotManager) Payout(players []*Player, board []poker.Card, button int) []Payout {
	inHand := 0
	last := -1
	for _, p := range players {
		if p.InHand() {
			inHand++
			last = p.Seat
		}
	}
	if inHand == 0 {
		panic("payout with no players in hand")
	}

	winnings := make(map[int]int)
	hands := make(map[int]poker.Hand)

	if inHand == 1 {
		winnings[last] = pm.Total()
	} else {
		for _, p := range players {
			if !p.InHand() {
				continue
			}
			hand, err := poker.Evaluate(append(append([]poker.Card{}, p.HoleCards...), board...))
			if err != nil {
				panic(fmt.Sprintf("evaluating seat %d at showdown: %v", p.Seat, err))
			}
			hands[p.Seat] = hand
		}

		for _, pot := range pm.pots {
			winners := bestSeats(pot.Eligible, hands)
			share := pot.Amount / len(winners)
			remainder := pot.Amount % len(winners)

			// Odd chips go one each starting left of the button.
			sortClockwiseFrom(winners, button+1, len(players))
			for i, seat := range winners {
				amount := share
				if i < remainder {
					amount++
				}
				winnings[seat] += amount
			}
		}
	}

	seats := make([]int, 0, len(winnings))
	for seat := range winnings {
		seats = append(seats, seat)
	}
	sort.Ints(seats)

	payouts := make([]Payout, 0, len(seats))
	for _, seat := range seats {
		payouts = append(payouts, Payout{Seat: seat, Amount: winnings[seat], Hand: hands[seat]})
	}
	return payouts
}

// bestSeats returns the eligible seats holding the strongest hand.
func bestSeats(eligible []int, hands map[int]poker.Hand) []int {
	var winners []int
	var best poker.Hand
	for _, seat := range eligible {
		hand, ok := hands[seat]
		if !ok {
			continue
		}
		if len(winners) == 0 {
			winners = []int{seat}
			best = hand
			continue
		}
		switch hand.Compare(best) {
		case 1:
			winners = []int{seat}
			best = hand
		case 0:
			winners = append(winners, seat)
		}
	}
	if len(winners) == 0 {
		panic("pot layer with no evaluable players")
	}
	return winners
}

// sortClockwiseFrom orders seats by table position starting at from.
func sortClockwiseFrom(seats []int, from, numSeats int) {
	sort.Slice(seats, func(i, j int) bool {
		return (seats[i]-from+numSeats)%numSeats < (seats[j]-from+numSeats)%numSeats
	})
}

func dedupe(sorted []int) []int {
	out := sorted[:0]
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			out = append(out, v)
		}
	}
	return out
}

func clamp(v, max int) int {
	if v > max {
		return max
	}
	return v
}
