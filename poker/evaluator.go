package poker

import (
	"fmt"
	"math/bits"
)

// Evaluate returns the best five-card hand that can be made from the given
// cards. Between five and seven cards may be supplied (two hole cards plus
// up to five board cards). The result is identical to brute-forcing every
// five-card subset.
func Evaluate(cards []Card) (Hand, error) {
	if len(cards) < 5 {
		return Hand{}, fmt.Errorf("%w: need at least 5 cards, got %d", ErrInsufficientCards, len(cards))
	}
	if len(cards) > 7 {
		return Hand{}, fmt.Errorf("too many cards: %d (at most 7)", len(cards))
	}

	var suitMasks [4]uint16
	var rankMask uint16
	var counts [15]int
	for _, c := range cards {
		suitMasks[c.Suit] |= rankBit(c.Rank)
		rankMask |= rankBit(c.Rank)
		counts[c.Rank]++
	}

	distinct := 0
	for _, m := range suitMasks {
		distinct += bits.OnesCount16(m)
	}
	if distinct != len(cards) {
		panic("duplicate cards in evaluation")
	}

	// At most one suit can hold five of seven cards
	flushSuit := Suit(-1)
	for s := Spades; s <= Clubs; s++ {
		if bits.OnesCount16(suitMasks[s]) >= 5 {
			flushSuit = s
			break
		}
	}

	if flushSuit >= 0 {
		if high := straightHigh(suitMasks[flushSuit]); high != 0 {
			rank := StraightFlush
			if high == Ace {
				rank = RoyalFlush
			}
			return Hand{
				Rank:    rank,
				Cards:   straightCards(cards, high, flushSuit),
				Kickers: []Rank{high},
			}, nil
		}
	}

	for r := Ace; r >= Two; r-- {
		if counts[r] == 4 {
			kicker := topRanks(rankMask, 1, rankBit(r))
			hand := cardsOfRank(cards, r, 4)
			hand = append(hand, firstOfRank(cards, kicker[0]))
			return Hand{
				Rank:    FourOfAKind,
				Cards:   hand,
				Kickers: append([]Rank{r}, kicker...),
			}, nil
		}
	}

	trip := Rank(0)
	for r := Ace; r >= Two; r-- {
		if counts[r] == 3 {
			trip = r
			break
		}
	}

	if trip != 0 {
		// A second set counts as the pair of a full house
		pair := Rank(0)
		for r := Ace; r >= Two; r-- {
			if r != trip && counts[r] >= 2 {
				pair = r
				break
			}
		}
		if pair != 0 {
			hand := cardsOfRank(cards, trip, 3)
			hand = append(hand, cardsOfRank(cards, pair, 2)...)
			return Hand{
				Rank:    FullHouse,
				Cards:   hand,
				Kickers: []Rank{trip, pair},
			}, nil
		}
	}

	if flushSuit >= 0 {
		ranks := topRanks(suitMasks[flushSuit], 5, 0)
		hand := make([]Card, 0, 5)
		for _, r := range ranks {
			hand = append(hand, Card{Suit: flushSuit, Rank: r})
		}
		return Hand{Rank: Flush, Cards: hand, Kickers: ranks}, nil
	}

	if high := straightHigh(rankMask); high != 0 {
		return Hand{
			Rank:    Straight,
			Cards:   straightCards(cards, high, -1),
			Kickers: []Rank{high},
		}, nil
	}

	if trip != 0 {
		kickers := topRanks(rankMask, 2, rankBit(trip))
		hand := cardsOfRank(cards, trip, 3)
		for _, k := range kickers {
			hand = append(hand, firstOfRank(cards, k))
		}
		return Hand{
			Rank:    ThreeOfAKind,
			Cards:   hand,
			Kickers: append([]Rank{trip}, kickers...),
		}, nil
	}

	var pairs []Rank
	for r := Ace; r >= Two; r-- {
		if counts[r] == 2 {
			pairs = append(pairs, r)
		}
	}

	if len(pairs) >= 2 {
		// With three pairs the third pair rank can still play as the kicker
		high, low := pairs[0], pairs[1]
		kicker := topRanks(rankMask, 1, rankBit(high)|rankBit(low))
		hand := cardsOfRank(cards, high, 2)
		hand = append(hand, cardsOfRank(cards, low, 2)...)
		hand = append(hand, firstOfRank(cards, kicker[0]))
		return Hand{
			Rank:    TwoPair,
			Cards:   hand,
			Kickers: []Rank{high, low, kicker[0]},
		}, nil
	}

	if len(pairs) == 1 {
		p := pairs[0]
		kickers := topRanks(rankMask, 3, rankBit(p))
		hand := cardsOfRank(cards, p, 2)
		for _, k := range kickers {
			hand = append(hand, firstOfRank(cards, k))
		}
		return Hand{
			Rank:    OnePair,
			Cards:   hand,
			Kickers: append([]Rank{p}, kickers...),
		}, nil
	}

	ranks := topRanks(rankMask, 5, 0)
	hand := make([]Card, 0, 5)
	for _, r := range ranks {
		hand = append(hand, firstOfRank(cards, r))
	}
	return Hand{Rank: HighCard, Cards: hand, Kickers: ranks}, nil
}

func rankBit(r Rank) uint16 {
	return 1 << uint(r-Two)
}

// straightHigh returns the high rank of the best straight present in the
// rank mask, or 0 when there is none. The wheel counts as five-high.
func straightHigh(mask uint16) Rank {
	const wheelMask = 0x100F // Ace + 2-3-4-5

	// Bitwise cascade identifies five consecutive ranks in one pass.
	seq := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4)
	if seq != 0 {
		low := Rank(bits.Len16(seq)-1) + Two
		return low + 4
	}

	if mask&wheelMask == wheelMask {
		return Five
	}

	return 0
}

// topRanks returns the n highest ranks in the mask, descending, skipping any
// ranks present in exclude.
func topRanks(mask uint16, n int, exclude uint16) []Rank {
	out := make([]Rank, 0, n)
	avail := mask &^ exclude
	for len(out) < n && avail != 0 {
		top := bits.Len16(avail) - 1
		out = append(out, Rank(top)+Two)
		avail &^= 1 << uint(top)
	}
	return out
}

// straightCards picks one card per rank of the straight, preferring the given
// suit for straight flushes. The wheel lists its ace last.
func straightCards(cards []Card, high Rank, suit Suit) []Card {
	ranks := make([]Rank, 0, 5)
	if high == Five {
		ranks = append(ranks, Five, Four, Three, Two, Ace)
	} else {
		for r := high; r > high-5; r-- {
			ranks = append(ranks, r)
		}
	}

	out := make([]Card, 0, 5)
	for _, r := range ranks {
		if suit >= 0 {
			out = append(out, Card{Suit: suit, Rank: r})
			continue
		}
		out = append(out, firstOfRank(cards, r))
	}
	return out
}

func cardsOfRank(cards []Card, r Rank, n int) []Card {
	out := make([]Card, 0, n)
	for _, c := range cards {
		if c.Rank == r {
			out = append(out, c)
			if len(out) == n {
				break
			}
		}
	}
	return out
}

func firstOfRank(cards []Card, r Rank) Card {
	for _, c := range cards {
		if c.Rank == r {
			return c
		}
	}
	panic(fmt.Sprintf("no card of rank %s", r))
}
