package holdem

import (
	"encoding/json"
	"testing"

	"holdem-engine/pkg/holdem/action"

	"github.com/stretchr/testify/assert"
)

func TestStatus_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("waiting-for-players", StatusWaitingForPlayers.String())
	a.Equal("waiting-to-start", StatusWaitingToStart.String())
	a.Equal("in-progress", StatusInProgress.String())
	a.Equal("over", StatusOver.String())
	a.Equal("", Status(99).String())
}

func TestStreet_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("pre-flop", StreetPreFlop.String())
	a.Equal("flop", StreetFlop.String())
	a.Equal("turn", StreetTurn.String())
	a.Equal("river", StreetRiver.String())
	a.Equal("showdown", StreetShowdown.String())
}

func TestGame_State(t *testing.T) {
	a := assert.New(t)

	g := setupGame(t, anyCards, 1, 2)
	state := g.State()
	a.Equal(StatusWaitingForPlayers, state.Status)
	a.Equal(NoSeat, state.TurnSeat)
	a.Equal(NoSeat, state.SmallBlindSeat)
	a.Equal(2, len(state.Seats))

	startGame(t, g, 1, 2)

	state = g.State()
	a.Equal(g.ID(), state.ID)
	a.Equal(StatusInProgress, state.Status)
	a.Equal(StreetPreFlop, state.Street)
	a.Equal(0, state.SmallBlindSeat)
	a.Equal(0, state.TurnSeat)
	a.Equal(20, state.CurrentBet)

	a.Equal(1990, state.Seats[0].Balance)
	a.Equal(10, state.Seats[0].Wager)
	a.Equal(20, state.Seats[1].Wager)
	a.Equal(2, len(state.Seats[0].Cards))

	a.Equal(1, len(state.Pots))
	a.Equal(30, state.Pots[0].Amount)
	a.Equal([]int{0, 1}, state.Pots[0].EligibleSeats)

	a.Equal(4, len(state.Moves))

	// snapshots serialize for clients
	encoded, err := json.Marshal(state)
	a.NoError(err)
	a.Contains(string(encoded), `"status":{"id":2,"name":"in-progress"}`)
	a.Contains(string(encoded), `"street":{"id":0,"name":"pre-flop"}`)

	// the snapshot is detached from the game
	state.Seats[0].Balance = 0
	state.Seats[0].Cards[0] = nil
	a.Equal(1990, g.seats[0].Balance)
	a.NotNil(g.seats[0].cards[0])

	a.NoError(g.Apply(1, action.Fold, 0))

	state = g.State()
	a.Equal(StatusOver, state.Status)
	a.Equal(NoSeat, state.TurnSeat)
	a.Equal(1, state.WinnerSeat)
	a.Equal(int64(2), state.Winner)
	a.True(state.Seats[0].Folded)
}
