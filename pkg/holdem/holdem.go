package holdem

import (
	"errors"

	"holdem-engine/pkg/deck"
	"holdem-engine/pkg/holdem/action"
	"holdem-engine/pkg/holdem/potledger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// NumSeats is the fixed size of the table ring
const NumSeats = 8

// NoSeat marks the absence of a seat
const NoSeat = -1

// CardSource produces unique cards without repetition until reshuffled. The
// engine consumes a CardSource; it never builds one. A CardSource must be
// exclusively owned by a single game for the duration of a hand.
type CardSource interface {
	// Shuffle resets the source to a full, shuffled state. A seed of 0
	// shuffles off the clock.
	Shuffle(seed int64)
	Draw() (*deck.Card, error)
	CardsLeft() int
}

// Options configures a table
type Options struct {
	// BuyIn is the balance a newly seated player starts with
	BuyIn int
	// SmallBlind is deducted from the first blind seat at hand start
	SmallBlind int
	// BigBlind is deducted from the second blind seat. If zero it defaults
	// to twice the small blind.
	BigBlind int
	// Seed is passed to the card source's Shuffle. Leave it 0 outside of
	// tests.
	Seed int64
}

// DefaultOptions returns the default table options
func DefaultOptions() Options {
	return Options{
		BuyIn:      2000,
		SmallBlind: 10,
		BigBlind:   20,
	}
}

func validateOptions(opts *Options) error {
	if opts.BuyIn <= 0 {
		return errors.New("buy-in must be greater than zero")
	}

	if opts.SmallBlind <= 0 {
		return errors.New("small blind must be greater than zero")
	}

	if opts.BigBlind == 0 {
		opts.BigBlind = opts.SmallBlind * 2
	}

	if opts.BigBlind <= opts.SmallBlind {
		return errors.New("big blind must be greater than the small blind")
	}

	if opts.BuyIn < opts.SmallBlind+opts.BigBlind {
		return errors.New("buy-in must cover the blinds")
	}

	return nil
}

// Seat holds the player occupying one slot of the ring
type Seat struct {
	PlayerID int64
	Balance  int
	Ready    bool

	cards deck.Hand
}

type prevSeat struct {
	seat    int
	balance int
}

// Game is a single hand of Texas Hold'em, from seating through showdown.
// A Game is not safe for concurrent use; callers must serialize access.
// Construct the next hand at the same table by passing the finished game as
// prev to New: seat preferences and balances carry over, moves and pots do
// not.
type Game struct {
	id     uuid.UUID
	log    logrus.FieldLogger
	opts   Options
	source CardSource

	status    Status
	seats     [NumSeats]*Seat
	folded    map[int]bool
	allIn     map[int]bool
	moves     []*Move
	community deck.Hand
	ledger    *potledger.Ledger
	round     *bettingRound
	street    Street

	smallBlindSeat int
	handStarted    bool

	winnerSeat   int
	winnerPlayer int64

	prevSeats      map[int64]prevSeat
	prevSmallBlind int
}

// New returns a new game. The card source collaborator is required; prev may
// be nil for the table's first hand.
func New(logger logrus.FieldLogger, source CardSource, opts Options, prev *Game) (*Game, error) {
	if err := validateOptions(&opts); err != nil {
		return nil, err
	}

	if source == nil {
		return nil, errors.New("a card source is required")
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	id := uuid.New()
	g := &Game{
		id:             id,
		log:            logger.WithField("game", id.String()),
		opts:           opts,
		source:         source,
		status:         StatusWaitingForPlayers,
		folded:         make(map[int]bool),
		allIn:          make(map[int]bool),
		ledger:         potledger.New(),
		smallBlindSeat: NoSeat,
		winnerSeat:     NoSeat,
		prevSmallBlind: NoSeat,
	}

	if prev != nil {
		g.prevSeats = make(map[int64]prevSeat)
		for seat, s := range prev.seats {
			if s != nil {
				g.prevSeats[s.PlayerID] = prevSeat{seat: seat, balance: s.Balance}
			}
		}

		if prev.handStarted {
			g.prevSmallBlind = prev.smallBlindSeat
		} else {
			// the predecessor never dealt; keep the rotation it inherited
			g.prevSmallBlind = prev.prevSmallBlind
		}
	}

	return g, nil
}

// ID returns the unique identifier for this game
func (g *Game) ID() string {
	return g.id.String()
}

// Join seats the player. A player returning from the predecessor game gets
// their old seat and balance back if the seat is free and they didn't go
// bust; otherwise they take the first empty seat with the default buy-in.
// Filling the last seat moves the table to StatusWaitingToStart.
func (g *Game) Join(playerID int64) error {
	if g.seatOf(playerID) != NoSeat {
		return ErrAlreadySeated
	}

	if g.status == StatusInProgress || g.status == StatusOver {
		return ErrAlreadyStarted
	}

	seat := NoSeat
	balance := g.opts.BuyIn

	if ps, ok := g.prevSeats[playerID]; ok && ps.balance != 0 && g.seats[ps.seat] == nil {
		seat = ps.seat
		balance = ps.balance
	}

	if seat == NoSeat {
		for i := 0; i < NumSeats; i++ {
			if g.seats[i] == nil {
				seat = i
				break
			}
		}
	}

	if seat == NoSeat {
		return ErrTableFull
	}

	g.seats[seat] = &Seat{
		PlayerID: playerID,
		Balance:  balance,
	}

	if g.occupiedCount() == NumSeats {
		g.status = StatusWaitingToStart
	}

	g.log.WithFields(logrus.Fields{
		"player": playerID,
		"seat":   seat,
	}).Debug("player joined")

	return nil
}

// Leave removes the player from the table. Leaving a hand in progress folds
// the seat; if that leaves a single contesting seat, the hand settles
// immediately. Leaving a finished game is a no-op so the final state remains
// reportable.
func (g *Game) Leave(playerID int64) error {
	seat := g.seatOf(playerID)
	if seat == NoSeat {
		return ErrNotSeated
	}

	switch g.status {
	case StatusOver:
		return nil

	case StatusWaitingForPlayers, StatusWaitingToStart:
		g.seats[seat] = nil
		g.status = StatusWaitingForPlayers
		g.log.WithField("player", playerID).Debug("player left")
		return nil
	}

	// hand in progress: vacate the seat and fold it out of the hand
	alreadyFolded := g.folded[seat]
	g.seats[seat] = nil
	g.log.WithField("player", playerID).Debug("player left mid-hand")

	if !alreadyFolded {
		g.folded[seat] = true
		g.appendMove(seat, action.Fold, nil, 0)
	}

	if g.contestingCount() == 1 {
		g.settleFoldOut()
		return nil
	}

	if g.round.anchor == seat {
		g.round.anchor = g.nextLiveSeat(seat)
	}

	if g.round.turn == seat {
		g.round.turn = g.nextLiveSeat(seat)
	}

	if g.roundClosed() {
		g.closeRound()
	}

	return nil
}

// MarkReady marks the player's seat ready to start. When every occupied seat
// is ready the hand starts: blinds post, the initial pot opens, and each
// seat is dealt two cards. Marking an already-ready seat is a no-op.
func (g *Game) MarkReady(playerID int64) error {
	seat := g.seatOf(playerID)
	if seat == NoSeat {
		return ErrNotSeated
	}

	if g.status != StatusWaitingForPlayers && g.status != StatusWaitingToStart {
		return ErrNotStartable
	}

	if g.occupiedCount() < 2 {
		return ErrNotStartable
	}

	if g.seats[seat].Ready {
		return nil
	}

	g.seats[seat].Ready = true

	for _, s := range g.seats {
		if s != nil && !s.Ready {
			return nil
		}
	}

	g.startHand()
	return nil
}

func (g *Game) startHand() {
	small := g.firstSmallBlindSeat()
	big := g.nextOccupiedSeat(small)

	g.smallBlindSeat = small
	g.handStarted = true

	smallPaid := g.postBlind(small, g.opts.SmallBlind)
	bigPaid := g.postBlind(big, g.opts.BigBlind)

	occupied := make([]int, 0, NumSeats)
	for seat := 0; seat < NumSeats; seat++ {
		if g.seats[seat] != nil {
			occupied = append(occupied, seat)
		}
	}
	g.ledger.Seed(smallPaid+bigPaid, occupied)

	anchor := g.nextLiveSeat(big)
	g.round = newBettingRound(anchor, g.opts.BigBlind)
	g.round.wagers[small] = smallPaid
	g.round.wagers[big] = bigPaid

	g.source.Shuffle(g.opts.Seed)
	g.dealHoleCards()

	g.status = StatusInProgress
	g.street = StreetPreFlop

	g.log.WithFields(logrus.Fields{
		"smallBlind": small,
		"bigBlind":   big,
		"firstToAct": anchor,
	}).Info("hand started")

	// blinds can put every seat all-in before anyone acts. There is no
	// betting left; run the board out to showdown.
	if g.roundClosed() {
		g.closeRound()
	}
}

// firstSmallBlindSeat returns the lowest occupied seat for the table's first
// hand, otherwise the next occupied seat after the predecessor's small blind
func (g *Game) firstSmallBlindSeat() int {
	if g.prevSmallBlind == NoSeat {
		for seat := 0; seat < NumSeats; seat++ {
			if g.seats[seat] != nil {
				return seat
			}
		}

		panic("no occupied seats")
	}

	return g.nextOccupiedSeat(g.prevSmallBlind)
}

// postBlind deducts the blind from the seat, going all-in on a short stack.
// Returns the amount actually posted.
func (g *Game) postBlind(seat, amount int) int {
	s := g.seats[seat]
	if amount > s.Balance {
		amount = s.Balance
	}

	s.Balance -= amount
	if s.Balance == 0 {
		g.allIn[seat] = true
	}

	return amount
}

// dealHoleCards deals two cards to every occupied seat, seat 0 through seat
// 7 in ascending order, one card per seat per pass. The ordering is part of
// the move-log contract; clients replay it to animate dealing.
func (g *Game) dealHoleCards() {
	for pass := 0; pass < 2; pass++ {
		for seat := 0; seat < NumSeats; seat++ {
			s := g.seats[seat]
			if s == nil {
				continue
			}

			card, err := g.source.Draw()
			if err != nil {
				// a full shuffle always covers two cards per seat
				panic(err)
			}

			s.cards.AddCard(card)
			g.appendMove(seat, action.Deal, card, 0)
		}
	}
}
