package poker

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrInsufficientCards is returned when a draw requests more cards than the
// deck has left. Draws never return fewer cards than asked for.
var ErrInsufficientCards = errors.New("insufficient cards")

// Deck represents a standard 52-card deck
type Deck struct {
	cards [52]Card // Fixed size array
	next  int
	rng   *rand.Rand // Random source for deterministic shuffling
}

// NewDeck creates a new shuffled deck with explicit RNG
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		panic("rng is required for deck creation")
	}

	d := &Deck{rng: rng}
	i := 0
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards[i] = Card{Suit: suit, Rank: rank}
			i++
		}
	}

	d.Shuffle()
	return d
}

// NewArrangedDeck creates a deck with the given cards on top, in order, and
// the rest of the 52 below them in canonical order. Shuffling is skipped so
// deals are fully deterministic. Panics on duplicate cards.
func NewArrangedDeck(top ...Card) *Deck {
	if len(top) > 52 {
		panic("more than 52 cards arranged")
	}

	seen := make(map[Card]bool, len(top))
	d := &Deck{}
	i := 0
	for _, c := range top {
		if seen[c] {
			panic(fmt.Sprintf("duplicate card %s in arranged deck", c))
		}
		seen[c] = true
		d.cards[i] = c
		i++
	}
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			c := Card{Suit: suit, Rank: rank}
			if !seen[c] {
				d.cards[i] = c
				i++
			}
		}
	}

	return d
}

// Shuffle reshuffles the full deck using Fisher-Yates and rewinds the cursor
func (d *Deck) Shuffle() {
	if d.rng == nil {
		panic("deck has no rng to shuffle with")
	}
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the next n cards from the deck
func (d *Deck) Draw(n int) ([]Card, error) {
	if d.next+n > len(d.cards) {
		return nil, fmt.Errorf("%w: requested %d with %d remaining", ErrInsufficientCards, n, d.Remaining())
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards, nil
}

// DrawOne removes and returns the next card from the deck
func (d *Deck) DrawOne() (Card, error) {
	if d.next >= len(d.cards) {
		return Card{}, fmt.Errorf("%w: deck is empty", ErrInsufficientCards)
	}
	card := d.cards[d.next]
	d.next++
	return card, nil
}

// Burn discards the next card face down
func (d *Deck) Burn() error {
	_, err := d.DrawOne()
	return err
}

// Reset resets and reshuffles the deck
func (d *Deck) Reset() {
	d.Shuffle()
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}
