package handrank

import (
	"fmt"

	"holdem-engine/pkg/deck"
)

// Rank is the result of evaluating a hand: the category of the best hand the
// cards can make and a tiebreak value for comparing hands within a category.
//
// The tiebreak is the rank of the primary scoring card or group. Aces count
// low (rank 1), except in a straight or straight flush where an ace may also
// complete the top-end run (10-J-Q-K-A), in which case the tiebreak is 14.
type Rank struct {
	Category Category `json:"category"`
	Tiebreak int      `json:"tiebreak"`
}

// Compare returns a negative value if r is the weaker hand, a positive value
// if r is the stronger hand, and 0 if the hands tie
func (r Rank) Compare(other Rank) int {
	if r.Category != other.Category {
		return int(r.Category) - int(other.Category)
	}

	return r.Tiebreak - other.Tiebreak
}

// Beats returns true if r is strictly stronger than other
func (r Rank) Beats(other Rank) bool {
	return r.Compare(other) > 0
}

func (r Rank) String() string {
	return fmt.Sprintf("%s (%d)", r.Category, r.Tiebreak)
}

// Evaluate returns the best Rank the cards can make. It is a pure function;
// the cards are not modified. Evaluate expects between five and seven cards
// (a player's hole cards plus the visible community cards) but will grade
// any non-empty set.
func Evaluate(cards deck.Hand) Rank {
	rankCounts := make(map[int]int)
	suitRanks := make(map[deck.Suit][]int)

	for _, card := range cards {
		rankCounts[card.Rank]++
		suitRanks[card.Suit] = append(suitRanks[card.Suit], card.Rank)
	}

	if high, ok := bestStraightFlush(suitRanks); ok {
		return Rank{Category: StraightFlush, Tiebreak: high}
	}

	quads, trips, pairs := groupRanks(rankCounts)

	if len(quads) > 0 {
		return Rank{Category: FourOfAKind, Tiebreak: bestAceLow(quads)}
	}

	if len(trips) > 0 && len(trips)+len(pairs) >= 2 {
		return Rank{Category: FullHouse, Tiebreak: bestAceLow(trips)}
	}

	if ranks, ok := flushRanks(suitRanks); ok {
		return Rank{Category: Flush, Tiebreak: bestAceLow(ranks)}
	}

	if high, ok := straightHigh(allRanks(rankCounts)); ok {
		return Rank{Category: Straight, Tiebreak: high}
	}

	if len(trips) > 0 {
		return Rank{Category: ThreeOfAKind, Tiebreak: bestAceLow(trips)}
	}

	if len(pairs) >= 2 {
		return Rank{Category: TwoPair, Tiebreak: bestAceLow(pairs)}
	}

	if len(pairs) == 1 {
		return Rank{Category: OnePair, Tiebreak: aceLow(pairs[0])}
	}

	return Rank{Category: HighCard, Tiebreak: bestAceLow(allRanks(rankCounts))}
}

func groupRanks(rankCounts map[int]int) (quads, trips, pairs []int) {
	for rank, count := range rankCounts {
		switch count {
		case 4:
			quads = append(quads, rank)
		case 3:
			trips = append(trips, rank)
		case 2:
			pairs = append(pairs, rank)
		}
	}

	return
}

func allRanks(rankCounts map[int]int) []int {
	ranks := make([]int, 0, len(rankCounts))
	for rank := range rankCounts {
		ranks = append(ranks, rank)
	}

	return ranks
}

func flushRanks(suitRanks map[deck.Suit][]int) ([]int, bool) {
	for _, ranks := range suitRanks {
		if len(ranks) >= 5 {
			return ranks, true
		}
	}

	return nil, false
}

func bestStraightFlush(suitRanks map[deck.Suit][]int) (int, bool) {
	best := 0
	for _, ranks := range suitRanks {
		if len(ranks) < 5 {
			continue
		}

		if high, ok := straightHigh(ranks); ok && high > best {
			best = high
		}
	}

	return best, best > 0
}

func aceLow(rank int) int {
	if rank == deck.Ace {
		return deck.LowAce
	}

	return rank
}

// bestAceLow returns the highest rank with aces counted low
func bestAceLow(ranks []int) int {
	best := 0
	for _, rank := range ranks {
		if r := aceLow(rank); r > best {
			best = r
		}
	}

	return best
}
