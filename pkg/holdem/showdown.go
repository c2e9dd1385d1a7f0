package holdem

import (
	"sort"

	"holdem-engine/pkg/deck"
	"holdem-engine/pkg/holdem/handrank"
	"holdem-engine/pkg/holdem/potledger"

	"github.com/sirupsen/logrus"
)

// showdown settles every live pot independently: the eligible, non-folded
// seats compare hands and the best (category, tiebreak) pair splits the pot
func (g *Game) showdown() {
	g.settlePots(func(contenders []int) []int {
		best := handrank.Rank{}
		winners := make([]int, 0, len(contenders))

		for _, seat := range contenders {
			rank := g.rankFor(seat)
			if len(winners) == 0 || rank.Beats(best) {
				best = rank
				winners = winners[:0]
				winners = append(winners, seat)
			} else if rank.Compare(best) == 0 {
				winners = append(winners, seat)
			}
		}

		return winners
	})
}

// settleFoldOut ends the hand early when a single contesting seat remains.
// The round's pending wagers sweep into the pots first, then each pot pays
// out by its own eligibility.
func (g *Game) settleFoldOut() {
	g.ledger.Sweep(g.round.wagers, g.allIn, g.folded)

	g.settlePots(func(contenders []int) []int {
		return contenders
	})
}

// settlePots pays out every live pot. winnersFor picks the winning subset of
// a pot's contenders. A pot whose contenders all folded refunds to its
// remaining seated funders; a pot whose funders all left the table is
// forfeited.
func (g *Game) settlePots(winnersFor func(contenders []int) []int) {
	wonBy := make(map[int]bool)

	for _, pot := range g.ledger.Pots() {
		if pot.Amount() == 0 {
			continue
		}

		contenders := make([]int, 0, NumSeats)
		refundable := make([]int, 0, NumSeats)
		for _, seat := range pot.EligibleSeats() {
			if g.isContesting(seat) {
				contenders = append(contenders, seat)
			} else if g.seats[seat] != nil {
				refundable = append(refundable, seat)
			}
		}

		var paid []int
		if len(contenders) > 0 {
			paid = winnersFor(contenders)
			for _, seat := range paid {
				wonBy[seat] = true
			}
		} else {
			paid = refundable
		}

		amount := pot.Drain()
		if len(paid) == 0 {
			g.log.WithField("amount", amount).Warn("pot forfeited: every funder left the table")
			continue
		}

		g.payOut(pot, amount, paid)
	}

	g.status = StatusOver
	g.street = StreetShowdown

	if len(wonBy) == 1 {
		for seat := range wonBy {
			g.winnerSeat = seat
			g.winnerPlayer = g.seats[seat].PlayerID
		}

		g.log.WithFields(logrus.Fields{
			"seat":   g.winnerSeat,
			"player": g.winnerPlayer,
		}).Info("hand won")
	} else {
		g.log.Info("hand settled with no single winner")
	}
}

// payOut splits the amount evenly among the winning seats. Remainder chips
// are handed out one at a time walking the ring from the small blind, so
// uneven chips land on the seats nearest the button.
func (g *Game) payOut(pot *potledger.Pot, amount int, seats []int) {
	ordered := make([]int, len(seats))
	copy(ordered, seats)
	sort.Slice(ordered, func(i, j int) bool {
		return g.ringDistance(ordered[i]) < g.ringDistance(ordered[j])
	})

	share := amount / len(ordered)
	remainder := amount % len(ordered)

	for i, seat := range ordered {
		winnings := share
		if i < remainder {
			winnings++
		}

		g.seats[seat].Balance += winnings

		g.log.WithFields(logrus.Fields{
			"seat":     seat,
			"winnings": winnings,
			"eligible": pot.EligibleSeats(),
		}).Debug("pot paid")
	}
}

func (g *Game) ringDistance(seat int) int {
	return (seat - g.smallBlindSeat + NumSeats) % NumSeats
}

// rankFor evaluates the seat's best hand from its hole cards and the
// community cards
func (g *Game) rankFor(seat int) handrank.Rank {
	s := g.seats[seat]
	cards := make(deck.Hand, 0, len(s.cards)+len(g.community))
	cards = append(cards, s.cards...)
	cards = append(cards, g.community...)

	return handrank.Evaluate(cards)
}

// Winner returns the winning player and true if the hand settled with a
// single seat winning every pot it contested
func (g *Game) Winner() (int64, bool) {
	if g.winnerSeat == NoSeat {
		return 0, false
	}

	return g.winnerPlayer, true
}
