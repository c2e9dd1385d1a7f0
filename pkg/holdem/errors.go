package holdem

import "errors"

// ErrAlreadySeated is an error when a player tries to join a table twice
var ErrAlreadySeated = errors.New("player is already seated")

// ErrTableFull is an error when a player joins and no seat is free
var ErrTableFull = errors.New("no seats are available")

// ErrAlreadyStarted is an error when a player joins after the table stopped waiting for players
var ErrAlreadyStarted = errors.New("the hand has already started")

// ErrNotSeated is an error when the player has no seat at the table
var ErrNotSeated = errors.New("player is not seated")

// ErrNotStartable is an error when the hand cannot be started from the current state
var ErrNotStartable = errors.New("the hand cannot be started")

// ErrNotInProgress is an error when a move is attempted outside a hand
var ErrNotInProgress = errors.New("the hand is not in progress")

// ErrNotYourTurn is returned when it's not the player's turn
var ErrNotYourTurn = errors.New("not player's turn")

// ErrInvalidAction is an error for an illegal move: a check against an active
// bet, a raise without an amount, or a wager the balance cannot cover.
// A failed move never mutates state.
var ErrInvalidAction = errors.New("invalid action")
