// Package game drives the timed sorting challenge. The round owns no
// timer of its own: whoever presents it calls Tick once per elapsed
// second, so tests advance time by calling Tick directly.
package game

import (
	"math/rand/v2"
	"time"

	"github.com/appengine-ltd/sortcycle/internal/catalog"
)

type State int

const (
	StateIdle State = iota
	StateRunning
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateEnded:
		return "ended"
	}
	return "unknown"
}

// RoundSeconds is the fixed length of a sorting round.
const RoundSeconds = 60

// Resolver returns the correct bin for an item under the caller's active
// region. The round never resolves categories itself.
type Resolver func(catalog.Item) catalog.Category

type SubmitResult struct {
	Item    catalog.Item
	Correct catalog.Category
	Matched bool
}

type Round struct {
	state     State
	pool      []catalog.Item
	current   *catalog.Item
	score     int
	remaining int
	rng       *rand.Rand
}

// NewRound creates an idle round. Seed 0 draws from the wall clock;
// tests pass a fixed seed for reproducible item sequences.
func NewRound(seed int64) *Round {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Round{rng: seededRNG(seed)}
}

// Start resets the round and begins the countdown. An empty pool leaves
// the round untouched.
func (r *Round) Start(pool []catalog.Item) {
	if len(pool) == 0 {
		return
	}
	r.pool = append([]catalog.Item(nil), pool...)
	r.rng.Shuffle(len(r.pool), func(i, j int) {
		r.pool[i], r.pool[j] = r.pool[j], r.pool[i]
	})
	r.score = 0
	r.remaining = RoundSeconds
	r.state = StateRunning
	r.nextItem()
}

// Tick advances the countdown by one second. Outside Running it does
// nothing, so a stopped clock can keep firing harmlessly.
func (r *Round) Tick() {
	if r.state != StateRunning {
		return
	}
	r.remaining--
	if r.remaining <= 0 {
		r.remaining = 0
		r.state = StateEnded
		r.current = nil
	}
}

// Submit scores candidate against the correct bin for the current item:
// +1 on a match, -1 otherwise (the score has no floor). A new current
// item is drawn either way, with replacement. Submissions outside a
// running round, or the rare nil resolver, are silently ignored.
func (r *Round) Submit(candidate catalog.Category, resolve Resolver) (SubmitResult, bool) {
	if r.state != StateRunning || r.current == nil || resolve == nil {
		return SubmitResult{}, false
	}
	item := *r.current
	correct := resolve(item)
	matched := candidate == correct
	if matched {
		r.score++
	} else {
		r.score--
	}
	r.nextItem()
	return SubmitResult{Item: item, Correct: correct, Matched: matched}, true
}

func (r *Round) nextItem() {
	item := r.pool[r.rng.IntN(len(r.pool))]
	r.current = &item
}

func (r *Round) State() State { return r.state }
func (r *Round) Score() int   { return r.score }

// Remaining reports the countdown in whole seconds.
func (r *Round) Remaining() int { return r.remaining }

func (r *Round) Current() (catalog.Item, bool) {
	if r.current == nil {
		return catalog.Item{}, false
	}
	return *r.current, true
}
