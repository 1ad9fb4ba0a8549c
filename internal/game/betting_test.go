package game

import "testing"

func activePlayers(chips ...int) []*Player {
	players := make([]*Player, len(chips))
	for i, c := range chips {
		players[i] = &Player{Seat: i, Chips: c, Status: StatusActive}
	}
	return players
}

func hasAction(actions []ValidAction, a Action) (ValidAction, bool) {
	for _, va := range actions {
		if va.Action == a {
			return va, true
		}
	}
	return ValidAction{}, false
}

func TestValidActionsNoBet(t *testing.T) {
	t.Parallel()

	br := NewBettingRound(3, 20)
	br.CurrentBet = 0
	p := &Player{Seat: 0, Chips: 500, Status: StatusActive}

	actions := br.ValidActions(p)
	if _, ok := hasAction(actions, Check); !ok {
		t.Error("expected Check with no bet pending")
	}
	if _, ok := hasAction(actions, Call); ok {
		t.Error("Call should not be offered with nothing to call")
	}
	raise, ok := hasAction(actions, Raise)
	if !ok {
		t.Fatal("expected Raise to be available")
	}
	if raise.Min != 20 || raise.Max != 500 {
		t.Errorf("raise bounds [%d,%d], want [20,500]", raise.Min, raise.Max)
	}
}

func TestValidActionsFacingBet(t *testing.T) {
	t.Parallel()

	br := NewBettingRound(3, 20)
	br.CurrentBet = 100
	br.MinRaise = 80
	p := &Player{Seat: 0, Chips: 500, Status: StatusActive}

	actions := br.ValidActions(p)
	if _, ok := hasAction(actions, Check); ok {
		t.Error("Check should not be offered facing a bet")
	}
	call, ok := hasAction(actions, Call)
	if !ok {
		t.Fatal("expected Call facing a bet")
	}
	if call.Min != 100 {
		t.Errorf("call amount %d, want 100", call.Min)
	}
	raise, ok := hasAction(actions, Raise)
	if !ok {
		t.Fatal("expected Raise facing a bet")
	}
	if raise.Min != 80 || raise.Max != 400 {
		t.Errorf("raise bounds [%d,%d], want [80,400]", raise.Min, raise.Max)
	}
	allin, ok := hasAction(actions, AllIn)
	if !ok {
		t.Fatal("expected AllIn")
	}
	if allin.Min != 500 {
		t.Errorf("all-in amount %d, want 500", allin.Min)
	}
}

func TestValidActionsPartialCallOnly(t *testing.T) {
	t.Parallel()

	br := NewBettingRound(2, 20)
	br.CurrentBet = 1000
	p := &Player{Seat: 0, Chips: 300, Status: StatusActive}

	actions := br.ValidActions(p)
	call, ok := hasAction(actions, Call)
	if !ok {
		t.Fatal("expected partial call to be offered")
	}
	if call.Min != 300 {
		t.Errorf("partial call clamps to stack: got %d, want 300", call.Min)
	}
	if _, ok := hasAction(actions, Raise); ok {
		t.Error("Raise should not be offered without chips beyond the call")
	}
}

func TestValidActionsBettingNotReopened(t *testing.T) {
	t.Parallel()

	// Seat 0 already acted since the last full raise; a short all-in has
	// bumped the price. They may call but not raise.
	br := NewBettingRound(3, 20)
	br.CurrentBet = 130
	br.MinRaise = 80
	br.Acted[0] = true
	p := &Player{Seat: 0, Chips: 900, Bet: 100, Status: StatusActive}

	actions := br.ValidActions(p)
	if _, ok := hasAction(actions, Call); !ok {
		t.Error("expected Call after a short all-in")
	}
	if _, ok := hasAction(actions, Raise); ok {
		t.Error("Raise should not be offered when betting was not reopened")
	}
}

func TestValidActionsAllInNotReopened(t *testing.T) {
	t.Parallel()

	// Same spot: seat 0 acted, then a short all-in bumped the price. With
	// chips enough to raise, going all-in would be a raise, so it cannot be
	// offered either.
	br := NewBettingRound(3, 20)
	br.CurrentBet = 130
	br.MinRaise = 80
	br.Acted[0] = true
	p := &Player{Seat: 0, Chips: 900, Bet: 100, Status: StatusActive}

	if _, ok := hasAction(br.ValidActions(p), AllIn); ok {
		t.Error("AllIn should not be offered when it would raise unreopened betting")
	}

	// A stack that cannot cover the call goes all-in as a call; that stays
	// legal regardless of the acted flag.
	short := &Player{Seat: 0, Chips: 25, Bet: 100, Status: StatusActive}
	allin, ok := hasAction(br.ValidActions(short), AllIn)
	if !ok {
		t.Fatal("expected AllIn for a stack below the call amount")
	}
	if allin.Min != 25 {
		t.Errorf("all-in amount %d, want 25", allin.Min)
	}
}

func TestCompleteAllMatchedAndActed(t *testing.T) {
	t.Parallel()

	players := activePlayers(100, 100, 100)
	br := NewBettingRound(3, 20)
	br.CurrentBet = 20
	for _, p := range players {
		p.Bet = 20
	}

	// Nobody has acted yet.
	if br.Complete(players, Flop, 2) {
		t.Error("round should not complete before everyone acts")
	}

	br.Acted[0], br.Acted[1] = true, true
	if br.Complete(players, Flop, 2) {
		t.Error("round should not complete with one player still to act")
	}

	br.Acted[2] = true
	if !br.Complete(players, Flop, 2) {
		t.Error("round should complete once all matched and acted")
	}
}

func TestCompleteUnmatchedBet(t *testing.T) {
	t.Parallel()

	players := activePlayers(100, 100, 100)
	br := NewBettingRound(3, 20)
	br.CurrentBet = 50
	players[0].Bet = 50
	players[1].Bet = 50
	players[2].Bet = 20
	br.Acted[0], br.Acted[1], br.Acted[2] = true, true, true

	if br.Complete(players, Flop, 2) {
		t.Error("round should not complete with an unmatched bet")
	}
}

func TestCompleteBigBlindOption(t *testing.T) {
	t.Parallel()

	players := activePlayers(100, 100, 100)
	br := NewBettingRound(3, 20)
	br.CurrentBet = 20
	for _, p := range players {
		p.Bet = 20
	}
	br.Acted[0], br.Acted[1], br.Acted[2] = true, true, true

	// Limped preflop pot: the big blind still has the option.
	if br.Complete(players, Preflop, 2) {
		t.Error("unraised preflop round should wait for the big blind option")
	}

	br.BBActed = true
	if !br.Complete(players, Preflop, 2) {
		t.Error("round should complete once the big blind acted")
	}

	// A raised pot has no option.
	br.BBActed = false
	br.LastRaiser = 0
	if !br.Complete(players, Preflop, 2) {
		t.Error("raised preflop round should not wait for the option")
	}
}

func TestCompleteLoneActivePlayer(t *testing.T) {
	t.Parallel()

	// Two all-in players and one with chips behind: no betting possible.
	players := activePlayers(0, 0, 500)
	players[0].Status = StatusAllIn
	players[1].Status = StatusAllIn
	br := NewBettingRound(3, 20)

	if !br.Complete(players, Flop, 2) {
		t.Error("round with a single bettable player should complete immediately")
	}

	// Unless they still owe a call.
	br.CurrentBet = 200
	if br.Complete(players, Preflop, 2) {
		t.Error("lone active player still owes a call")
	}
}

func TestCompleteEveryoneFoldedOrAllIn(t *testing.T) {
	t.Parallel()

	players := activePlayers(0, 0, 100)
	players[0].Status = StatusAllIn
	players[1].Status = StatusAllIn
	players[2].Status = StatusFolded
	br := NewBettingRound(3, 20)

	if !br.Complete(players, Turn, 1) {
		t.Error("round with nobody able to act should be complete")
	}
}

func TestResetRestoresMinRaise(t *testing.T) {
	t.Parallel()

	br := NewBettingRound(3, 20)
	br.CurrentBet = 500
	br.MinRaise = 300
	br.LastRaiser = 1
	br.Acted[1] = true

	br.Reset(3)
	if br.CurrentBet != 0 || br.MinRaise != 20 || br.LastRaiser != -1 {
		t.Errorf("reset left bet=%d minRaise=%d lastRaiser=%d", br.CurrentBet, br.MinRaise, br.LastRaiser)
	}
	for i, acted := range br.Acted {
		if acted {
			t.Errorf("seat %d still marked acted after reset", i)
		}
	}
}
