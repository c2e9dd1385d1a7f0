// Package potledger keeps track of the chips wagered during a hand of poker.
//
// A hand starts with a single pot. Whenever a betting round closes with two
// or more differing all-in thresholds among the contesting seats, the round's
// wagers are partitioned into ordered layers at each distinct threshold, each
// layer with its own eligibility set. A pot bounded by an all-in is capped:
// later wagers accrue to side pots above it.
package potledger

import "sort"

// Pot is a chip amount contended for by a specific set of seats at showdown
type Pot struct {
	amount   int
	eligible map[int]bool

	// capped is set once an all-in bounds this pot. A capped pot never
	// receives chips from a later betting round.
	capped bool
}

// Amount returns the number of chips in the pot
func (p *Pot) Amount() int {
	return p.amount
}

// Eligible returns true if the seat funded this pot in full
func (p *Pot) Eligible(seat int) bool {
	return p.eligible[seat]
}

// EligibleSeats returns the seats eligible for this pot in ascending order
func (p *Pot) EligibleSeats() []int {
	seats := make([]int, 0, len(p.eligible))
	for seat := range p.eligible {
		seats = append(seats, seat)
	}
	sort.Ints(seats)

	return seats
}

// Drain empties the pot and returns the amount that was in it
func (p *Pot) Drain() int {
	amount := p.amount
	p.amount = 0

	return amount
}

// Ledger owns the ordered set of pots for a single hand
type Ledger struct {
	pots []*Pot

	// pending counts the chips added since the last Sweep. Chips land in
	// the newest pot the moment they are wagered, so pot totals are always
	// current; Sweep backs them out again before re-partitioning the round
	// into layers, so nothing is counted twice.
	pending int
}

// New returns a Ledger holding a single empty pot
func New() *Ledger {
	return &Ledger{
		pots: []*Pot{{eligible: make(map[int]bool)}},
	}
}

// Seed places the blinds into the initial pot at hand start. The seats
// eligible for the initial pot are every occupied seat.
func (l *Ledger) Seed(amount int, eligibleSeats []int) {
	l.Add(amount)

	pot := l.pots[0]
	for _, seat := range eligibleSeats {
		pot.eligible[seat] = true
	}
}

// Add drops wagered chips into the newest pot. Layering into side pots
// happens when the betting round closes and Sweep runs.
func (l *Ledger) Add(amount int) {
	l.pots[len(l.pots)-1].amount += amount
	l.pending += amount
}

// Sweep partitions a closed betting round's wagers into the pots. wagers
// maps each seat to its total wager for the round, allIn marks seats whose
// balance reached zero, and folded marks seats out of the hand. Folded seats
// fund the layers they wagered into but are never eligible for them.
func (l *Ledger) Sweep(wagers map[int]int, allIn, folded map[int]bool) {
	current := l.pots[len(l.pots)-1]
	current.amount -= l.pending
	l.pending = 0

	maxWager := 0
	for _, w := range wagers {
		if w > maxWager {
			maxWager = w
		}
	}

	if maxWager == 0 {
		return
	}

	thresholds := l.layerThresholds(wagers, allIn, folded, maxWager)

	prev := 0
	for i, threshold := range thresholds {
		amount := 0
		for _, w := range wagers {
			if w > threshold {
				w = threshold
			}

			if w > prev {
				amount += w - prev
			}
		}

		eligible := make(map[int]bool)
		for seat, w := range wagers {
			if !folded[seat] && w >= threshold {
				eligible[seat] = true
			}
		}

		// an all-in at this threshold caps the pot
		capped := threshold < maxWager
		for seat, w := range wagers {
			if allIn[seat] && !folded[seat] && w == threshold {
				capped = true
			}
		}

		if i == 0 && !current.capped {
			current.amount += amount
			current.intersectEligibility(eligible)
			current.capped = capped
		} else {
			l.pots = append(l.pots, &Pot{
				amount:   amount,
				eligible: eligible,
				capped:   capped,
			})
		}

		prev = threshold
	}
}

func (l *Ledger) layerThresholds(wagers map[int]int, allIn, folded map[int]bool, maxWager int) []int {
	seen := make(map[int]bool)
	for seat, w := range wagers {
		if allIn[seat] && !folded[seat] && w > 0 {
			seen[w] = true
		}
	}
	seen[maxWager] = true

	thresholds := make([]int, 0, len(seen))
	for t := range seen {
		thresholds = append(thresholds, t)
	}
	sort.Ints(thresholds)

	return thresholds
}

func (p *Pot) intersectEligibility(eligible map[int]bool) {
	if len(p.eligible) == 0 {
		p.eligible = eligible
		return
	}

	for seat := range p.eligible {
		if !eligible[seat] {
			delete(p.eligible, seat)
		}
	}
}

// Pots returns the ordered list of pots. The returned slice must not be
// modified; the pots themselves are live.
func (l *Ledger) Pots() []*Pot {
	return l.pots
}

// Live returns the pots that still hold chips
func (l *Ledger) Live() []*Pot {
	live := make([]*Pot, 0, len(l.pots))
	for _, pot := range l.pots {
		if pot.amount > 0 {
			live = append(live, pot)
		}
	}

	return live
}

// Total returns the combined total of all pots
func (l *Ledger) Total() int {
	total := 0
	for _, pot := range l.pots {
		total += pot.amount
	}

	return total
}
