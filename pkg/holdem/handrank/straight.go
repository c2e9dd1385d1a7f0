package handrank

import "holdem-engine/pkg/deck"

// straightHigh returns the top rank of the best five-card run in ranks.
// An ace plays at both ends: it starts the A-2-3-4-5 wheel (high card 5)
// and completes the 10-J-Q-K-A run (high card 14).
func straightHigh(ranks []int) (int, bool) {
	var present [deck.Ace + 1]bool
	for _, rank := range ranks {
		present[rank] = true
		if rank == deck.Ace {
			present[deck.LowAce] = true
		}
	}

	for high := deck.Ace; high >= 5; high-- {
		run := true
		for r := high; r > high-5; r-- {
			if !present[r] {
				run = false
				break
			}
		}

		if run {
			return high, true
		}
	}

	return 0, false
}
