package holdem

// bettingRound owns the state of a single betting round: the per-seat wagers,
// the current bet to match, the anchor seat whose completed action signals
// the round may close, and which seats have acted since the last raise.
// Closure is decided from this state incrementally; the move log is never
// rescanned.
type bettingRound struct {
	wagers     map[int]int
	acted      map[int]bool
	currentBet int
	anchor     int
	turn       int
}

func newBettingRound(anchor, currentBet int) *bettingRound {
	return &bettingRound{
		wagers:     make(map[int]int),
		acted:      make(map[int]bool),
		currentBet: currentBet,
		anchor:     anchor,
		turn:       anchor,
	}
}

// noteAction records that the seat completed an action. A raise re-opens the
// round: every other seat must act again before the round can close.
func (r *bettingRound) noteAction(seat int, raised bool) {
	if raised {
		r.acted = make(map[int]bool)
	}

	r.acted[seat] = true
}

// closed returns true if every live seat has acted since the last raise and
// has matched the current bet
func (g *Game) roundClosed() bool {
	for seat := 0; seat < NumSeats; seat++ {
		if !g.isLive(seat) {
			continue
		}

		if !g.round.acted[seat] || g.round.wagers[seat] != g.round.currentBet {
			return false
		}
	}

	return true
}

// openRound starts a fresh betting round with the anchor on the first live
// seat after the small blind
func (g *Game) openRound() {
	anchor := g.nextLiveSeat(g.smallBlindSeat)
	if anchor == NoSeat {
		// everyone is all-in or folded; the round closes untouched
		g.round = newBettingRound(NoSeat, 0)
		return
	}

	g.round = newBettingRound(anchor, 0)
}
