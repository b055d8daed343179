package game

import (
	"encoding/json"
	"sort"

	"github.com/appengine-ltd/sortcycle/internal/storage"
)

const (
	bestScoreKey   = "bestScore"
	leaderboardKey = "leaderboardTop5"
	leaderboardCap = 5
)

// Leaderboard persists the best final score and the top five past scores.
// Corrupt or missing blobs load as empty history.
type Leaderboard struct {
	kv     storage.KV
	best   int
	scores []int
}

func NewLeaderboard(kv storage.KV) *Leaderboard {
	lb := &Leaderboard{kv: kv}
	lb.load()
	return lb
}

func (l *Leaderboard) load() {
	l.best = 0
	l.scores = nil

	if data, err := l.kv.Get(bestScoreKey); err == nil {
		var best int
		if json.Unmarshal(data, &best) == nil {
			l.best = best
		}
	}
	if data, err := l.kv.Get(leaderboardKey); err == nil {
		var scores []int
		if json.Unmarshal(data, &scores) == nil {
			l.scores = scores
		}
	}
	l.normalize()
}

func (l *Leaderboard) normalize() {
	sort.Sort(sort.Reverse(sort.IntSlice(l.scores)))
	if len(l.scores) > leaderboardCap {
		l.scores = l.scores[:leaderboardCap]
	}
}

// Record stores a finished round's score, keeping the board sorted
// descending and capped at five entries.
func (l *Leaderboard) Record(final int) {
	if final > l.best {
		l.best = final
	}
	l.scores = append(l.scores, final)
	l.normalize()
	l.save()
}

func (l *Leaderboard) save() {
	if data, err := json.Marshal(l.best); err == nil {
		_ = l.kv.Set(bestScoreKey, data)
	}
	if data, err := json.Marshal(l.scores); err == nil {
		_ = l.kv.Set(leaderboardKey, data)
	}
}

func (l *Leaderboard) Best() int { return l.best }

// Top returns the stored scores, highest first.
func (l *Leaderboard) Top() []int {
	return append([]int(nil), l.scores...)
}
