package poker

import (
	"fmt"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// CardSet is a 52-bit set of cards, one bit per (rank, suit) pair.
type CardSet uint64

func cardIndex(c Card) int {
	return int(c.Rank-Two)*4 + int(c.Suit)
}

// Add adds a card to the set.
func (cs *CardSet) Add(c Card) {
	*cs |= 1 << cardIndex(c)
}

// Contains reports whether the card is in the set.
func (cs CardSet) Contains(c Card) bool {
	return cs&(1<<cardIndex(c)) != 0
}

// NewCardSet builds a CardSet from a slice of cards.
func NewCardSet(cards []Card) CardSet {
	var cs CardSet
	for _, c := range cards {
		cs.Add(c)
	}
	return cs
}

// Equity holds Monte Carlo results for one hand in a multiway matchup.
// A tied runout counts once in Ties for every tied hand.
type Equity struct {
	Wins    int
	Ties    int
	Samples int
}

// WinPct returns the share of runouts won outright.
func (e Equity) WinPct() float64 {
	if e.Samples == 0 {
		return 0
	}
	return float64(e.Wins) / float64(e.Samples)
}

// TiePct returns the share of runouts tied.
func (e Equity) TiePct() float64 {
	if e.Samples == 0 {
		return 0
	}
	return float64(e.Ties) / float64(e.Samples)
}

// Total returns win percentage plus half the tie percentage, the usual
// single-number equity figure.
func (e Equity) Total() float64 {
	if e.Samples == 0 {
		return 0
	}
	return (float64(e.Wins) + float64(e.Ties)/2) / float64(e.Samples)
}

// SimulateEquity estimates each hand's equity against the others by dealing
// random board runouts. Each hole hand must have exactly two cards and the
// board at most five; all cards must be distinct. Work is split across
// errgroup workers, each with an RNG derived from rng so results are
// reproducible for a given seed.
func SimulateEquity(holes [][]Card, board []Card, samples int, rng *rand.Rand) ([]Equity, error) {
	if len(holes) < 2 {
		return nil, fmt.Errorf("need at least 2 hands, got %d", len(holes))
	}
	if len(board) > 5 {
		return nil, fmt.Errorf("board cannot have more than 5 cards, got %d", len(board))
	}
	if samples < 1 {
		return nil, fmt.Errorf("samples must be positive, got %d", samples)
	}

	var used CardSet
	for i, hole := range holes {
		if len(hole) != 2 {
			return nil, fmt.Errorf("hand %d: must have exactly 2 cards, got %d", i+1, len(hole))
		}
		for _, c := range hole {
			if used.Contains(c) {
				return nil, fmt.Errorf("duplicate card %s", c)
			}
			used.Add(c)
		}
	}
	for _, c := range board {
		if used.Contains(c) {
			return nil, fmt.Errorf("duplicate card %s", c)
		}
		used.Add(c)
	}

	// Stock of cards still available for runouts, shared read-only.
	var stock []Card
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			c := Card{Suit: suit, Rank: rank}
			if !used.Contains(c) {
				stock = append(stock, c)
			}
		}
	}
	if need := 5 - len(board); len(stock) < need {
		return nil, fmt.Errorf("%w: need %d more board cards with %d unused", ErrInsufficientCards, need, len(stock))
	}

	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8
	}
	if workers > samples {
		workers = samples
	}

	results := make([][]Equity, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		share := samples / workers
		if w < samples%workers {
			share++
		}
		seed := rng.Int63()
		g.Go(func() error {
			results[w] = runEquityWorker(holes, board, stock, share, rand.New(rand.NewSource(seed)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]Equity, len(holes))
	for _, part := range results {
		for i, eq := range part {
			merged[i].Wins += eq.Wins
			merged[i].Ties += eq.Ties
			merged[i].Samples += eq.Samples
		}
	}
	return merged, nil
}

func runEquityWorker(holes [][]Card, board, stock []Card, samples int, rng *rand.Rand) []Equity {
	out := make([]Equity, len(holes))
	need := 5 - len(board)

	// Reusable buffers across samples.
	pool := make([]Card, len(stock))
	runout := make([]Card, 0, 5)
	cards := make([]Card, 7)
	best := make([]Hand, len(holes))

	for s := 0; s < samples; s++ {
		copy(pool, stock)
		runout = append(runout[:0], board...)
		for i := 0; i < need; i++ {
			j := i + rng.Intn(len(pool)-i)
			pool[i], pool[j] = pool[j], pool[i]
			runout = append(runout, pool[i])
		}

		for i, hole := range holes {
			copy(cards[:2], hole)
			copy(cards[2:], runout)
			hand, err := Evaluate(cards)
			if err != nil {
				panic(fmt.Sprintf("evaluating %v: %v", cards, err))
			}
			best[i] = hand
		}

		winner := 0
		tied := false
		for i := 1; i < len(best); i++ {
			switch best[i].Compare(best[winner]) {
			case 1:
				winner = i
				tied = false
			case 0:
				tied = true
			}
		}

		if tied {
			for i := range best {
				if best[i].Ties(best[winner]) {
					out[i].Ties++
				}
			}
		} else {
			out[winner].Wins++
		}
		for i := range out {
			out[i].Samples++
		}
	}
	return out
}
