package poker

import (
	"fmt"
	"strings"
)

// HandRank represents the ranking of a poker hand. Higher values are
// stronger.
type HandRank int

const (
	HighCard HandRank = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the string representation of a hand rank
func (hr HandRank) String() string {
	switch hr {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Hand represents an evaluated poker hand: its ranking, the five cards that
// make it, and the ranks that break ties within the ranking.
type Hand struct {
	Rank    HandRank
	Cards   []Card // The 5 cards that make up the hand
	Kickers []Rank // Tie-break ranks in descending significance
}

// String returns a string representation of the hand
func (h Hand) String() string {
	var cardStrs []string
	for _, card := range h.Cards {
		cardStrs = append(cardStrs, card.String())
	}
	return fmt.Sprintf("%s [%s]", h.Rank, strings.Join(cardStrs, " "))
}

// Compare compares two hands and returns:
//
//	-1 if h is weaker than other
//	 0 if h equals other
//	 1 if h is stronger than other
func (h Hand) Compare(other Hand) int {
	if h.Rank < other.Rank {
		return -1
	}
	if h.Rank > other.Rank {
		return 1
	}

	// Same rank, compare kickers in order
	for i := 0; i < len(h.Kickers) && i < len(other.Kickers); i++ {
		if h.Kickers[i] < other.Kickers[i] {
			return -1
		}
		if h.Kickers[i] > other.Kickers[i] {
			return 1
		}
	}

	return 0
}

// Beats returns true if this hand beats the other hand
func (h Hand) Beats(other Hand) bool {
	return h.Compare(other) > 0
}

// Ties returns true if both hands are equal in strength
func (h Hand) Ties(other Hand) bool {
	return h.Compare(other) == 0
}
