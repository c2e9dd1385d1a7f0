package holdem

import "encoding/json"

// Status represents the lifecycle state of the table
type Status int

// constants for Status
const (
	StatusWaitingForPlayers Status = iota
	StatusWaitingToStart
	StatusInProgress
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusWaitingForPlayers:
		return "waiting-for-players"
	case StatusWaitingToStart:
		return "waiting-to-start"
	case StatusInProgress:
		return "in-progress"
	case StatusOver:
		return "over"
	}

	return ""
}

// MarshalJSON encodes JSON
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(s),
		Name: s.String(),
	})
}

// Street is one of the betting phases of a hand
type Street int

// constants for Street
const (
	StreetPreFlop Street = iota
	StreetFlop
	StreetTurn
	StreetRiver
	StreetShowdown
)

func (s Street) String() string {
	switch s {
	case StreetPreFlop:
		return "pre-flop"
	case StreetFlop:
		return "flop"
	case StreetTurn:
		return "turn"
	case StreetRiver:
		return "river"
	case StreetShowdown:
		return "showdown"
	}

	return ""
}

// MarshalJSON encodes JSON
func (s Street) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(s),
		Name: s.String(),
	})
}
