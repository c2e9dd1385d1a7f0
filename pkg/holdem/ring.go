package holdem

// The eight seats form a fixed ring. Every walk over the table (blind
// assignment, turn advancement, round closure) goes through these helpers so
// the wraparound arithmetic lives in exactly one place.

// nextOccupiedSeat returns the first occupied seat strictly after from,
// walking the ring circularly. Returns NoSeat if no other seat is occupied.
func (g *Game) nextOccupiedSeat(from int) int {
	return g.nextSeat(from, func(seat int) bool {
		return g.seats[seat] != nil
	})
}

// nextLiveSeat returns the first seat strictly after from that can still
// act: occupied, not folded, and not all-in.
func (g *Game) nextLiveSeat(from int) int {
	return g.nextSeat(from, g.isLive)
}

func (g *Game) nextSeat(from int, ok func(seat int) bool) int {
	for i := 1; i <= NumSeats; i++ {
		seat := (from + i) % NumSeats
		if ok(seat) {
			return seat
		}
	}

	return NoSeat
}

func (g *Game) isLive(seat int) bool {
	return g.seats[seat] != nil && !g.folded[seat] && !g.allIn[seat]
}

// isContesting returns true if the seat is still in the running for the
// hand: occupied and not folded. All-in seats contest even though they can
// no longer act.
func (g *Game) isContesting(seat int) bool {
	return g.seats[seat] != nil && !g.folded[seat]
}

func (g *Game) occupiedCount() int {
	return g.countSeats(func(seat int) bool {
		return g.seats[seat] != nil
	})
}

func (g *Game) liveCount() int {
	return g.countSeats(g.isLive)
}

func (g *Game) contestingCount() int {
	return g.countSeats(g.isContesting)
}

func (g *Game) countSeats(ok func(seat int) bool) int {
	count := 0
	for seat := 0; seat < NumSeats; seat++ {
		if ok(seat) {
			count++
		}
	}

	return count
}

// seatOf returns the seat occupied by the player, or NoSeat
func (g *Game) seatOf(playerID int64) int {
	for seat, s := range g.seats {
		if s != nil && s.PlayerID == playerID {
			return seat
		}
	}

	return NoSeat
}
