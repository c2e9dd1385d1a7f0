package main

import (
	"flag"
	"os"
	"strings"

	"holdem-engine/internal/config"
	"holdem-engine/internal/rng"
	"holdem-engine/internal/util"
	"holdem-engine/pkg/deck"
	"holdem-engine/pkg/holdem"
	"holdem-engine/pkg/holdem/action"

	"github.com/sirupsen/logrus"
)

// Version is the dealer version
var Version = "v0.0.0-dev"

var (
	hands   = flag.Int("hands", 10, "the number of hands to deal")
	players = flag.Int("players", 4, "the number of players at the table")
	seed    = flag.Int64("seed", 0, "seed for a reproducible simulation (0 seeds off the clock)")
)

type player struct {
	id   int64
	name string
}

func main() {
	flag.Parse()
	setupLogger()

	if *players < 2 || *players > holdem.NumSeats {
		logrus.Fatalf("players must be between 2 and %d", holdem.NumSeats)
	}

	var random rng.Generator = rng.Crypto{}
	if *seed != 0 {
		random = rng.Seeded(*seed)
	}

	opts := config.Instance().Options()

	table := make([]player, *players)
	for i := range table {
		table[i] = player{
			id:   int64(i + 1),
			name: util.RandomPlayerName(random),
		}
	}

	logrus.WithFields(logrus.Fields{
		"version": Version,
		"hands":   *hands,
		"players": *players,
	}).Info("dealing")

	source := deck.New()

	var prev *holdem.Game
	for hand := 1; hand <= *hands; hand++ {
		if *seed != 0 {
			opts.Seed = *seed + int64(hand)
		}

		game, err := playHand(source, opts, prev, table, random)
		if err != nil {
			logrus.WithError(err).WithField("hand", hand).Fatal("could not play hand")
		}

		prev = game
	}

	for _, state := range prev.State().Seats {
		logrus.WithFields(logrus.Fields{
			"player":  table[state.PlayerID-1].name,
			"balance": state.Balance,
		}).Info("final balance")
	}
}

func playHand(source holdem.CardSource, opts holdem.Options, prev *holdem.Game, table []player, random rng.Generator) (*holdem.Game, error) {
	game, err := holdem.New(logrus.StandardLogger(), source, opts, prev)
	if err != nil {
		return nil, err
	}

	for _, p := range table {
		if err := game.Join(p.id); err != nil {
			return nil, err
		}
	}

	for _, p := range table {
		if err := game.MarkReady(p.id); err != nil {
			return nil, err
		}
	}

	for game.Status() == holdem.StatusInProgress {
		state := game.State()

		var turn *holdem.SeatState
		for _, s := range state.Seats {
			if s.Seat == state.TurnSeat {
				turn = s
				break
			}
		}

		act, amount := pickAction(state, turn, opts.BigBlind, random)
		if err := game.Apply(turn.PlayerID, act, amount); err != nil {
			return nil, err
		}
	}

	if winner, ok := game.Winner(); ok {
		logrus.WithField("player", table[winner-1].name).Info("hand won")
	}

	return game, nil
}

// pickAction plays a crude randomized strategy: mostly passive, with the
// occasional raise or fold
func pickAction(state *holdem.State, turn *holdem.SeatState, bigBlind int, random rng.Generator) (action.Action, int) {
	deficit := state.CurrentBet - turn.Wager

	if deficit <= 0 {
		if random.Intn(10) == 0 && turn.Balance >= bigBlind {
			return action.Raise, bigBlind
		}

		return action.Check, 0
	}

	switch random.Intn(10) {
	case 0, 1:
		return action.Fold, 0
	case 2:
		if turn.Balance >= deficit+bigBlind {
			return action.Raise, bigBlind
		}
	}

	return action.Call, 0
}

func setupLogger() {
	if lvl := config.Instance().LogLevel; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
