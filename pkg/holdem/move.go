package holdem

import (
	"holdem-engine/pkg/deck"
	"holdem-engine/pkg/holdem/action"
)

// Move is an entry in the hand's append-only move log. Deal moves carry the
// card that was dealt; a Deal with no seat is a community card. The log is
// the audit trail of the hand and is never rewritten.
type Move struct {
	Seat   int           `json:"seat"` // NoSeat for community deals
	Action action.Action `json:"action"`
	Card   *deck.Card    `json:"card,omitempty"`
	Amount int           `json:"amount,omitempty"`
}

func (g *Game) appendMove(seat int, act action.Action, card *deck.Card, amount int) {
	g.moves = append(g.moves, &Move{
		Seat:   seat,
		Action: act,
		Card:   card,
		Amount: amount,
	})
}

// Moves returns the ordered move log for the hand
func (g *Game) Moves() []*Move {
	moves := make([]*Move, len(g.moves))
	copy(moves, g.moves)

	return moves
}
