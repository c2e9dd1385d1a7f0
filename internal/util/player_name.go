package util

import (
	"fmt"

	"holdem-engine/internal/rng"
)

var adjectives = []string{
	"Bluffing", "Limping", "Folding", "Raising", "Shoving", "Grinding", "Tilted", "Patient",
	"Loose", "Tight", "Lucky", "Unlucky", "Crafty", "Fearless", "Stone-Faced", "Chatty",
	"Sandbagging", "Check-Raising", "Slow-Rolling", "Steaming", "Stacked", "Short-Stacked",
}

var animals = []string{
	"Shark", "Fish", "Donkey", "Whale", "Rock", "Maniac", "Owl", "Fox", "Badger", "Mule",
	"Rooster", "Coyote", "Rattlesnake", "Magpie", "Raccoon", "Vulture", "Otter", "Walrus",
}

// RandomPlayerName returns a display name for a simulated player
func RandomPlayerName(r rng.Generator) string {
	return fmt.Sprintf("%s %s", adjectives[r.Intn(len(adjectives))], animals[r.Intn(len(animals))])
}
