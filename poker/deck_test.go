package poker

import (
	"errors"
	"math/rand"
	"testing"
)

func TestDeckDrawsAllDistinct(t *testing.T) {
	t.Parallel()

	d := NewDeck(rand.New(rand.NewSource(1)))
	seen := make(map[Card]bool, 52)
	for i := 0; i < 52; i++ {
		c, err := d.DrawOne()
		if err != nil {
			t.Fatalf("draw %d failed: %v", i+1, err)
		}
		if seen[c] {
			t.Fatalf("card %s drawn twice", c)
		}
		seen[c] = true
	}
	if len(seen) != 52 {
		t.Fatalf("expected 52 distinct cards, got %d", len(seen))
	}

	// The 53rd draw must fail, never return a short result.
	if _, err := d.DrawOne(); !errors.Is(err, ErrInsufficientCards) {
		t.Errorf("expected ErrInsufficientCards, got %v", err)
	}
}

func TestDeckDrawTooMany(t *testing.T) {
	t.Parallel()

	d := NewDeck(rand.New(rand.NewSource(1)))
	if _, err := d.Draw(50); err != nil {
		t.Fatalf("drawing 50 failed: %v", err)
	}
	if _, err := d.Draw(3); !errors.Is(err, ErrInsufficientCards) {
		t.Errorf("expected ErrInsufficientCards drawing 3 of 2, got %v", err)
	}
	// The failed draw must not consume cards.
	if d.Remaining() != 2 {
		t.Errorf("expected 2 remaining after failed draw, got %d", d.Remaining())
	}
}

func TestDeckShuffleDeterministic(t *testing.T) {
	t.Parallel()

	a := NewDeck(rand.New(rand.NewSource(42)))
	b := NewDeck(rand.New(rand.NewSource(42)))
	for i := 0; i < 52; i++ {
		ca, _ := a.DrawOne()
		cb, _ := b.DrawOne()
		if ca != cb {
			t.Fatalf("decks with same seed diverged at card %d: %s vs %s", i, ca, cb)
		}
	}
}

func TestDeckReset(t *testing.T) {
	t.Parallel()

	d := NewDeck(rand.New(rand.NewSource(7)))
	if _, err := d.Draw(10); err != nil {
		t.Fatal(err)
	}
	d.Reset()
	if d.Remaining() != 52 {
		t.Errorf("expected 52 remaining after reset, got %d", d.Remaining())
	}
}

func TestDeckBurn(t *testing.T) {
	t.Parallel()

	d := NewDeck(rand.New(rand.NewSource(7)))
	if err := d.Burn(); err != nil {
		t.Fatal(err)
	}
	if d.Remaining() != 51 {
		t.Errorf("expected 51 remaining after burn, got %d", d.Remaining())
	}
}

func TestArrangedDeck(t *testing.T) {
	t.Parallel()

	top := MustParseCards("AsKsQs")
	d := NewArrangedDeck(top...)
	drawn, err := d.Draw(3)
	if err != nil {
		t.Fatal(err)
	}
	for i, c := range drawn {
		if c != top[i] {
			t.Errorf("card %d: got %s, want %s", i, c, top[i])
		}
	}
	if d.Remaining() != 49 {
		t.Errorf("expected 49 remaining, got %d", d.Remaining())
	}
}

func TestArrangedDeckRejectsDuplicates(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("expected panic for duplicate arranged cards")
		}
	}()
	NewArrangedDeck(MustParseCards("AsAs")...)
}
