package holdem

import (
	"testing"

	"holdem-engine/pkg/deck"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// scriptedSource is a CardSource that deals a fixed sequence of cards
type scriptedSource struct {
	script   deck.Hand
	pos      int
	shuffles int
}

func newScriptedSource(cards string) *scriptedSource {
	return &scriptedSource{
		script: deck.CardsFromString(cards),
	}
}

func (s *scriptedSource) Shuffle(seed int64) {
	s.shuffles++
	s.pos = 0
}

func (s *scriptedSource) Draw() (*deck.Card, error) {
	if s.pos >= len(s.script) {
		return nil, deck.ErrEndOfDeck
	}

	card := s.script[s.pos]
	s.pos++
	return card, nil
}

func (s *scriptedSource) CardsLeft() int {
	return len(s.script) - s.pos
}

// enough cards for any test that doesn't care about the deal
const anyCards = "2c,3c,4c,5c,6c,7c,8c,9c,10c,11c,12c,13c,14c," +
	"2d,3d,4d,5d,6d,7d,8d,9d,10d,11d,12d,13d,14d"

// setupGame returns a game with the players joined but not yet ready
func setupGame(t *testing.T, cards string, playerIDs ...int64) *Game {
	t.Helper()

	g, err := New(logrus.StandardLogger(), newScriptedSource(cards), DefaultOptions(), nil)
	assert.NoError(t, err)

	for _, id := range playerIDs {
		assert.NoError(t, g.Join(id))
	}

	return g
}

// startGame readies every player, dealing the hand
func startGame(t *testing.T, g *Game, playerIDs ...int64) {
	t.Helper()

	for _, id := range playerIDs {
		assert.NoError(t, g.MarkReady(id))
	}

	assert.Equal(t, StatusInProgress, g.Status())
}

// chipTotal is the conserved quantity: every seat balance plus every pot
func chipTotal(g *Game) int {
	total := g.ledger.Total()
	for _, s := range g.seats {
		if s != nil {
			total += s.Balance
		}
	}

	return total
}

func assertBalances(t *testing.T, g *Game, want map[int]int) {
	t.Helper()

	for seat, balance := range want {
		assert.NotNil(t, g.seats[seat], "seat %d should be occupied", seat)
		assert.Equal(t, balance, g.seats[seat].Balance, "seat %d balance", seat)
	}
}
