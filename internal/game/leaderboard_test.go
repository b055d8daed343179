package game

import (
	"testing"

	"github.com/appengine-ltd/sortcycle/internal/storage"
)

func TestLeaderboardKeepsTopFiveDescending(t *testing.T) {
	kv := storage.NewMemoryStore()
	lb := NewLeaderboard(kv)

	for _, score := range []int{10, 50, 30, 20, 5, 40} {
		lb.Record(score)
	}

	want := []int{50, 40, 30, 20, 10}
	got := lb.Top()
	if len(got) != len(want) {
		t.Fatalf("expected %d scores, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if lb.Best() != 50 {
		t.Fatalf("expected best 50, got %d", lb.Best())
	}
}

func TestLeaderboardPersistsAcrossLoads(t *testing.T) {
	kv := storage.NewMemoryStore()
	lb := NewLeaderboard(kv)
	lb.Record(12)
	lb.Record(-4)

	reloaded := NewLeaderboard(kv)
	got := reloaded.Top()
	if len(got) != 2 || got[0] != 12 || got[1] != -4 {
		t.Fatalf("expected [12 -4] after reload, got %v", got)
	}
	if reloaded.Best() != 12 {
		t.Fatalf("expected best 12 after reload, got %d", reloaded.Best())
	}
}

func TestLeaderboardTreatsCorruptBlobsAsEmpty(t *testing.T) {
	kv := storage.NewMemoryStore()
	if err := kv.Set("leaderboardTop5", []byte("{not json")); err != nil {
		t.Fatalf("seeding corrupt blob: %v", err)
	}
	if err := kv.Set("bestScore", []byte("zzz")); err != nil {
		t.Fatalf("seeding corrupt blob: %v", err)
	}

	lb := NewLeaderboard(kv)
	if len(lb.Top()) != 0 {
		t.Fatalf("expected empty board from corrupt data, got %v", lb.Top())
	}
	if lb.Best() != 0 {
		t.Fatalf("expected best 0 from corrupt data, got %d", lb.Best())
	}
}

func TestLeaderboardTopReturnsCopy(t *testing.T) {
	lb := NewLeaderboard(storage.NewMemoryStore())
	lb.Record(3)
	top := lb.Top()
	top[0] = 99
	if lb.Top()[0] != 3 {
		t.Fatalf("Top leaked internal slice")
	}
}
