package holdem

import (
	"testing"

	"holdem-engine/pkg/holdem/action"

	"github.com/stretchr/testify/assert"
)

func TestGame_Apply_errors(t *testing.T) {
	a := assert.New(t)

	g := setupGame(t, anyCards, 1, 2)
	a.Equal(ErrNotInProgress, g.Apply(1, action.Call, 0))

	startGame(t, g, 1, 2)

	a.Equal(ErrNotSeated, g.Apply(99, action.Call, 0))

	// heads-up: the small blind acts first pre-flop
	a.Equal(0, g.round.turn)
	a.Equal(ErrNotYourTurn, g.Apply(2, action.Check, 0))

	a.Equal(ErrInvalidAction, g.Apply(1, action.Check, 0), "cannot check behind a bet")
	a.Equal(ErrInvalidAction, g.Apply(1, action.Raise, 0), "raise must be positive")
	a.Equal(ErrInvalidAction, g.Apply(1, action.Raise, 5000), "raise cannot exceed the balance")
	a.Equal(ErrInvalidAction, g.Apply(1, action.Deal, 0), "deal is not a player action")

	// a rejected action leaves the hand untouched
	a.Equal(0, g.round.turn)
	a.Equal(1990, g.seats[0].Balance)
	a.Equal(4000, chipTotal(g))

	a.NoError(g.Apply(1, action.Call, 0))
	a.Equal(ErrInvalidAction, g.Apply(2, action.Call, 0), "nothing to call")
}

func TestGame_Apply_callAdvancesTurn(t *testing.T) {
	a := assert.New(t)

	g := setupGame(t, anyCards, 1, 2, 3)
	startGame(t, g, 1, 2, 3)

	// seats 0 and 1 posted the blinds; seat 2 is first to act
	a.Equal(2, g.round.turn)

	a.NoError(g.Apply(3, action.Call, 0))
	a.Equal(1980, g.seats[2].Balance)
	a.Equal(0, g.round.turn)

	a.NoError(g.Apply(1, action.Call, 0))
	a.Equal(1980, g.seats[0].Balance)
	a.Equal(1, g.round.turn)

	a.Equal(60, g.ledger.Total(), "calls land in the pot immediately")
	a.Equal(6000, chipTotal(g))
}

func TestGame_Apply_raiseReopensRound(t *testing.T) {
	a := assert.New(t)

	g := setupGame(t, anyCards, 1, 2, 3)
	startGame(t, g, 1, 2, 3)

	a.NoError(g.Apply(3, action.Call, 0))
	a.NoError(g.Apply(1, action.Call, 0))

	// the big blind raises; everyone must act again
	a.NoError(g.Apply(2, action.Raise, 30))
	a.Equal(50, g.round.currentBet)
	a.Equal(StreetPreFlop, g.street)
	a.Equal(2, g.round.turn)

	a.NoError(g.Apply(3, action.Call, 0))
	a.Equal(StreetPreFlop, g.street, "the raiser's round is not closed by a single call")

	a.NoError(g.Apply(1, action.Fold, 0))
	a.Equal(StreetFlop, g.street, "the fold leaves every live seat matched and closes the round")

	a.Equal(120, g.ledger.Total())
	pots := g.ledger.Pots()
	a.Equal(1, len(pots))
	a.Equal([]int{1, 2}, pots[0].EligibleSeats(), "a folded seat funds the pot but is not eligible")

	// post-flop the first live seat after the small blind acts first
	a.Equal(1, g.round.turn)

	a.NoError(g.Apply(2, action.Raise, 40))
	a.Equal(40, g.round.currentBet)
	a.NoError(g.Apply(3, action.Call, 0))
	a.Equal(StreetTurn, g.street)
	a.Equal(200, g.ledger.Total())

	a.NoError(g.Apply(2, action.Check, 0))
	a.NoError(g.Apply(3, action.Check, 0))
	a.Equal(StreetRiver, g.street)

	a.NoError(g.Apply(2, action.Check, 0))
	a.NoError(g.Apply(3, action.Check, 0))

	// both remaining seats play the board's straight flush and split the pot
	a.Equal(StatusOver, g.Status())
	a.Equal(StreetShowdown, g.street)
	assertBalances(t, g, map[int]int{0: 1980, 1: 2010, 2: 2010})

	_, ok := g.Winner()
	a.False(ok, "a split pot has no single winner")

	a.Equal(6000, chipTotal(g))
}

func TestGame_Apply_foldAdvancesAnchor(t *testing.T) {
	a := assert.New(t)

	g := setupGame(t, anyCards, 1, 2, 3, 4)
	startGame(t, g, 1, 2, 3, 4)

	// seat 2 is the pre-flop anchor; folding it moves the anchor along
	a.Equal(2, g.round.anchor)
	a.NoError(g.Apply(3, action.Fold, 0))
	a.Equal(3, g.round.anchor)
	a.Equal(3, g.round.turn)

	a.NoError(g.Apply(4, action.Call, 0))
	a.NoError(g.Apply(1, action.Call, 0))
	a.NoError(g.Apply(2, action.Check, 0))

	a.Equal(StreetFlop, g.street)
	a.Equal(60, g.ledger.Total())
}

func TestGame_Leave_midHand(t *testing.T) {
	a := assert.New(t)

	g := setupGame(t, anyCards, 1, 2, 3, 4)
	startGame(t, g, 1, 2, 3, 4)

	a.NoError(g.Apply(3, action.Call, 0))

	// seat 3 leaves on its turn: the seat folds and play continues
	a.NoError(g.Leave(4))
	a.Equal(NoSeat, g.seatOf(4))
	a.Equal(StatusInProgress, g.Status())
	a.Equal(0, g.round.turn)

	moves := g.Moves()
	a.Equal(action.Fold, moves[len(moves)-1].Action)
	a.Equal(3, moves[len(moves)-1].Seat)

	a.NoError(g.Apply(1, action.Call, 0))
	a.NoError(g.Apply(2, action.Check, 0))
	a.Equal(StreetFlop, g.street)
	a.Equal(60, g.ledger.Total())

	// seat 1 leaves off turn; the flop anchor and turn move past it
	a.Equal(1, g.round.turn)
	a.NoError(g.Leave(2))
	a.Equal(2, g.round.anchor)
	a.Equal(2, g.round.turn)

	// one contesting seat remains: the hand settles for it
	a.NoError(g.Leave(1))
	a.Equal(StatusOver, g.Status())

	winner, ok := g.Winner()
	a.True(ok)
	a.Equal(int64(3), winner)
	a.Equal(2040, g.seats[2].Balance, "the leavers' chips stay in the pot")

	// leaving a finished hand keeps the seat so the result stays readable
	a.NoError(g.Leave(3))
	a.NotNil(g.seats[2])
}

func TestGame_Apply_foldOutEndsHand(t *testing.T) {
	a := assert.New(t)

	g := setupGame(t, anyCards, 1, 2)
	startGame(t, g, 1, 2)

	a.NoError(g.Apply(1, action.Fold, 0))
	a.Equal(StatusOver, g.Status())

	winner, ok := g.Winner()
	a.True(ok)
	a.Equal(int64(2), winner)

	// the big blind collects both blinds without showing a hand
	assertBalances(t, g, map[int]int{0: 1990, 1: 2010})
	a.Equal(0, g.ledger.Total())
	a.Equal(4000, chipTotal(g))

	a.Equal(ErrNotInProgress, g.Apply(2, action.Check, 0))
}
