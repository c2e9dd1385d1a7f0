package holdem

import (
	"holdem-engine/pkg/deck"
	"holdem-engine/pkg/holdem/action"

	"github.com/sirupsen/logrus"
)

// Apply performs a player action. The move is validated in full before any
// state changes: a returned error means balances, pots, and the move log are
// untouched.
func (g *Game) Apply(playerID int64, act action.Action, amount int) error {
	if g.status != StatusInProgress {
		return ErrNotInProgress
	}

	seat := g.seatOf(playerID)
	if seat == NoSeat {
		return ErrNotSeated
	}

	if seat != g.round.turn {
		return ErrNotYourTurn
	}

	switch act {
	case action.Call:
		if err := g.applyCall(seat); err != nil {
			return err
		}
	case action.Check:
		if err := g.applyCheck(seat); err != nil {
			return err
		}
	case action.Fold:
		terminal := g.applyFold(seat)
		if terminal {
			return nil
		}
	case action.Raise:
		if err := g.applyRaise(seat, amount); err != nil {
			return err
		}
	default:
		return ErrInvalidAction
	}

	g.log.WithFields(logrus.Fields{
		"player": playerID,
		"seat":   seat,
	}).Debug(act.LogMessage(amount))

	if g.roundClosed() {
		g.closeRound()
		return nil
	}

	g.round.turn = g.nextLiveSeat(seat)
	return nil
}

// applyCall settles the seat's outstanding difference against the current
// bet. A balance too short to cover the difference goes all-in: the seat
// contributes everything it has and participates in the pot up to that
// amount.
func (g *Game) applyCall(seat int) error {
	deficit := g.round.currentBet - g.round.wagers[seat]
	if deficit <= 0 {
		return ErrInvalidAction
	}

	s := g.seats[seat]
	pay := deficit
	if pay > s.Balance {
		pay = s.Balance
	}

	s.Balance -= pay
	g.round.wagers[seat] += pay
	g.ledger.Add(pay)
	if s.Balance == 0 {
		g.allIn[seat] = true
	}

	g.appendMove(seat, action.Call, nil, pay)
	g.round.noteAction(seat, false)
	return nil
}

// applyCheck is valid only when the seat has already matched the current
// bet, or as an acknowledgment from a seat that is already all-in
func (g *Game) applyCheck(seat int) error {
	if g.round.wagers[seat] != g.round.currentBet && g.seats[seat].Balance > 0 {
		return ErrInvalidAction
	}

	g.appendMove(seat, action.Check, nil, 0)
	g.round.noteAction(seat, false)
	return nil
}

// applyFold removes the seat from contention. Returns true if the fold ended
// the hand (a single contesting seat remained and collected the pots).
func (g *Game) applyFold(seat int) bool {
	g.folded[seat] = true
	g.appendMove(seat, action.Fold, nil, 0)

	if g.contestingCount() == 1 {
		g.settleFoldOut()
		return true
	}

	if g.round.anchor == seat {
		g.round.anchor = g.nextLiveSeat(seat)
	}

	g.round.noteAction(seat, false)
	return false
}

// applyRaise settles the seat's deficit like a call, then adds amount on top
// of the current bet. The balance must cover the full deficit plus the raise;
// there is no partial raise.
func (g *Game) applyRaise(seat, amount int) error {
	if amount <= 0 {
		return ErrInvalidAction
	}

	deficit := g.round.currentBet - g.round.wagers[seat]
	if deficit < 0 {
		deficit = 0
	}

	s := g.seats[seat]
	if s.Balance < deficit+amount {
		return ErrInvalidAction
	}

	s.Balance -= deficit + amount
	g.round.wagers[seat] += deficit + amount
	g.ledger.Add(deficit + amount)
	g.round.currentBet += amount
	if s.Balance == 0 {
		g.allIn[seat] = true
	}

	g.appendMove(seat, action.Raise, nil, amount)
	g.round.noteAction(seat, true)
	return nil
}

// closeRound sweeps the round's wagers into the pots and advances the
// street, dealing community cards as needed. Streets where nobody is left to
// act close immediately, so a table of all-in seats runs out to showdown.
func (g *Game) closeRound() {
	for {
		g.ledger.Sweep(g.round.wagers, g.allIn, g.folded)

		if g.street == StreetRiver {
			g.street = StreetShowdown
			g.showdown()
			return
		}

		count := 1
		if g.street == StreetPreFlop {
			count = 3
		}

		if err := g.dealCommunity(count); err != nil {
			// the source cannot run dry mid-hand with 8 seats and 5
			// community cards off a full shuffle
			panic(err)
		}

		g.street++
		g.openRound()

		if g.round.turn != NoSeat && !g.roundClosed() {
			return
		}
	}
}

func (g *Game) dealCommunity(count int) error {
	for i := 0; i < count; i++ {
		card, err := g.source.Draw()
		if err != nil {
			return err
		}

		g.community.AddCard(card)
		g.appendMove(NoSeat, action.Deal, card, 0)
	}

	return nil
}

// Community returns the shared community cards dealt so far
func (g *Game) Community() deck.Hand {
	return g.community.Clone()
}
