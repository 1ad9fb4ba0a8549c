package game

// Street represents the betting round
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
)

func (s Street) String() string {
	return [...]string{"preflop", "flop", "turn", "river", "showdown"}[s]
}

// Action represents a player action. The set is closed; every switch over it
// is exhaustive so a new action is a compile-visible change.
type Action int

const (
	Fold Action = iota
	Check
	Call
	Raise
	AllIn
)

func (a Action) String() string {
	return [...]string{"fold", "check", "call", "raise", "allin"}[a]
}

// ValidAction is one currently legal action. For Call, Min and Max carry the
// chips required to match. For Raise they bound the legal increment above the
// current bet so callers can clamp an input control.
type ValidAction struct {
	Action Action
	Min    int
	Max    int
}

// BettingRound holds the state for one street of betting.
type BettingRound struct {
	CurrentBet int    // bet-to-call for the street
	MinRaise   int    // minimum legal raise increment
	LastRaiser int    // seat of the last full raise, -1 when unraised
	BBActed    bool   // big blind has taken their preflop option
	Acted      []bool // acted since the last full raise, by seat
	BigBlind   int    // restores MinRaise on new streets
}

// NewBettingRound creates the preflop betting round.
func NewBettingRound(numSeats, bigBlind int) *BettingRound {
	return &BettingRound{
		MinRaise:   bigBlind,
		LastRaiser: -1,
		Acted:      make([]bool, numSeats),
		BigBlind:   bigBlind,
	}
}

// Reset prepares the round for a new street.
func (br *BettingRound) Reset(numSeats int) {
	br.CurrentBet = 0
	br.MinRaise = br.BigBlind
	br.LastRaiser = -1
	br.Acted = make([]bool, numSeats)
	// BBActed survives: it only matters preflop
}

// raise applies a bet increase by seat to newBet. A full raise (increment at
// or above MinRaise) restarts the action: everyone else must act again and
// the increment becomes the new minimum. A short all-in raises the price
// without reopening betting; players who already acted keep their flags and
// may only call or fold.
func (br *BettingRound) raise(seat, newBet int) {
	incr := newBet - br.CurrentBet
	br.CurrentBet = newBet
	if incr >= br.MinRaise {
		br.MinRaise = incr
		br.LastRaiser = seat
		for i := range br.Acted {
			br.Acted[i] = false
		}
	}
}

// ValidActions returns the actions legal for the player facing this round.
func (br *BettingRound) ValidActions(p *Player) []ValidAction {
	if !p.CanAct() {
		return nil
	}

	actions := []ValidAction{{Action: Fold}}
	toCall := br.CurrentBet - p.Bet

	if toCall == 0 {
		actions = append(actions, ValidAction{Action: Check})
	} else {
		call := toCall
		if call > p.Chips {
			call = p.Chips // partial call goes all-in
		}
		actions = append(actions, ValidAction{Action: Call, Min: call, Max: call})
	}

	// Raising requires chips beyond the call and betting open to this seat.
	maxIncr := p.Chips + p.Bet - br.CurrentBet
	if maxIncr > 0 && !br.Acted[p.Seat] {
		if maxIncr >= br.MinRaise {
			actions = append(actions, ValidAction{Action: Raise, Min: br.MinRaise, Max: maxIncr})
		} else {
			// Only a short all-in raise is possible.
			actions = append(actions, ValidAction{Action: Raise, Min: maxIncr, Max: maxIncr})
		}
	}
	// All-in is a raise whenever the stack clears the current bet, so it
	// needs betting open to the seat; at or below the bet it is just a call.
	if p.Chips > 0 && (p.Bet+p.Chips <= br.CurrentBet || !br.Acted[p.Seat]) {
		actions = append(actions, ValidAction{Action: AllIn, Min: p.Chips, Max: p.Chips})
	}
	return actions
}

// Complete reports whether the street's betting is finished: every player who
// can still act has matched the bet and acted since the last full raise, or
// nobody is left to act. Preflop the big blind keeps the option to raise an
// unraised pot.
func (br *BettingRound) Complete(players []*Player, street Street, bbSeat int) bool {
	active := 0
	for _, p := range players {
		if p.CanAct() {
			active++
		}
	}
	if active == 0 {
		return true
	}

	if active == 1 {
		// A lone player with chips cannot be called by anyone; the street
		// ends once their contribution is matched.
		for _, p := range players {
			if p.CanAct() && p.Bet != br.CurrentBet {
				return false
			}
		}
		return true
	}

	for _, p := range players {
		if p.CanAct() && (p.Bet != br.CurrentBet || !br.Acted[p.Seat]) {
			return false
		}
	}

	// Unraised preflop: the big blind still has the option.
	if street == Preflop && br.LastRaiser == -1 {
		if bb := players[bbSeat]; bb.CanAct() && !br.BBActed {
			return false
		}
	}

	return true
}
