package game

import (
	"errors"
	"testing"
)

func TestPlayerCommit(t *testing.T) {
	t.Parallel()

	p := &Player{Seat: 0, Chips: 100, Status: StatusActive}

	if err := p.Commit(30); err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	if p.Chips != 70 || p.Bet != 30 || p.TotalBet != 30 {
		t.Errorf("after commit: chips=%d bet=%d total=%d", p.Chips, p.Bet, p.TotalBet)
	}
	if p.Status != StatusActive {
		t.Errorf("partial commit should stay active, got %s", p.Status)
	}

	// Committing the rest is an all-in.
	if err := p.Commit(70); err != nil {
		t.Fatalf("all-in commit failed: %v", err)
	}
	if p.Status != StatusAllIn {
		t.Errorf("expected allin status, got %s", p.Status)
	}
	if p.Chips != 0 || p.TotalBet != 100 {
		t.Errorf("after all-in: chips=%d total=%d", p.Chips, p.TotalBet)
	}
}

func TestPlayerCommitInsufficient(t *testing.T) {
	t.Parallel()

	p := &Player{Seat: 0, Chips: 50, Status: StatusActive}
	err := p.Commit(51)
	if !errors.Is(err, ErrInsufficientChips) {
		t.Fatalf("expected ErrInsufficientChips, got %v", err)
	}
	// The failed commit must not move chips.
	if p.Chips != 50 || p.Bet != 0 || p.TotalBet != 0 {
		t.Errorf("state changed on failed commit: chips=%d bet=%d total=%d", p.Chips, p.Bet, p.TotalBet)
	}
}

func TestPlayerFold(t *testing.T) {
	t.Parallel()

	p := &Player{Seat: 0, Chips: 80, Bet: 20, TotalBet: 20, Status: StatusActive}
	p.Fold()
	if p.Status != StatusFolded {
		t.Errorf("expected folded, got %s", p.Status)
	}
	// Committed chips stay committed.
	if p.Bet != 20 || p.TotalBet != 20 {
		t.Errorf("fold should not return contributions: bet=%d total=%d", p.Bet, p.TotalBet)
	}
	if p.InHand() || p.CanAct() {
		t.Error("folded player should be out of the hand")
	}
}

func TestPlayerStatusPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status Status
		inHand bool
		canAct bool
	}{
		{StatusActive, true, true},
		{StatusAllIn, true, false},
		{StatusFolded, false, false},
		{StatusSittingOut, false, false},
	}
	for _, tt := range tests {
		p := &Player{Status: tt.status, Chips: 10}
		if p.InHand() != tt.inHand {
			t.Errorf("%s: InHand() = %v, want %v", tt.status, p.InHand(), tt.inHand)
		}
		if p.CanAct() != tt.canAct {
			t.Errorf("%s: CanAct() = %v, want %v", tt.status, p.CanAct(), tt.canAct)
		}
	}
}
