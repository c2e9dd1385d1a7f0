package holdem

import "holdem-engine/pkg/deck"

// SeatState is the reportable state of one occupied seat
type SeatState struct {
	Seat     int       `json:"seat"`
	PlayerID int64     `json:"playerId"`
	Balance  int       `json:"balance"`
	Ready    bool      `json:"ready"`
	Folded   bool      `json:"folded"`
	AllIn    bool      `json:"allIn"`
	Wager    int       `json:"currentWager"`
	Cards    deck.Hand `json:"cards,omitempty"`
}

// PotState is the reportable state of one pot
type PotState struct {
	Amount        int   `json:"amount"`
	EligibleSeats []int `json:"eligibleSeats"`
}

// State is a read-only snapshot of the game
type State struct {
	ID             string       `json:"id"`
	Status         Status       `json:"status"`
	Street         Street       `json:"street"`
	Seats          []*SeatState `json:"seats"`
	Community      deck.Hand    `json:"community"`
	Pots           []*PotState  `json:"pots"`
	Moves          []*Move      `json:"moves"`
	SmallBlindSeat int          `json:"smallBlindSeat"`
	TurnSeat       int          `json:"turnSeat"`
	CurrentBet     int          `json:"currentBet"`
	WinnerSeat     int          `json:"winnerSeat"`
	Winner         int64        `json:"winner,omitempty"`
}

// Status returns the lifecycle state of the table
func (g *Game) Status() Status {
	return g.status
}

// State returns a snapshot of the game. Mutating the snapshot has no effect
// on the game.
func (g *Game) State() *State {
	seats := make([]*SeatState, 0, NumSeats)
	for seat, s := range g.seats {
		if s == nil {
			continue
		}

		var wager int
		if g.round != nil {
			wager = g.round.wagers[seat]
		}

		seats = append(seats, &SeatState{
			Seat:     seat,
			PlayerID: s.PlayerID,
			Balance:  s.Balance,
			Ready:    s.Ready,
			Folded:   g.folded[seat],
			AllIn:    g.allIn[seat],
			Wager:    wager,
			Cards:    s.cards.Clone(),
		})
	}

	pots := make([]*PotState, 0)
	for _, pot := range g.ledger.Pots() {
		pots = append(pots, &PotState{
			Amount:        pot.Amount(),
			EligibleSeats: pot.EligibleSeats(),
		})
	}

	turnSeat := NoSeat
	currentBet := 0
	if g.status == StatusInProgress && g.round != nil {
		turnSeat = g.round.turn
		currentBet = g.round.currentBet
	}

	return &State{
		ID:             g.ID(),
		Status:         g.status,
		Street:         g.street,
		Seats:          seats,
		Community:      g.community.Clone(),
		Pots:           pots,
		Moves:          g.Moves(),
		SmallBlindSeat: g.smallBlindSeat,
		TurnSeat:       turnSeat,
		CurrentBet:     currentBet,
		WinnerSeat:     g.winnerSeat,
		Winner:         g.winnerPlayer,
	}
}
