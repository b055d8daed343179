package tracker

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/appengine-ltd/sortcycle/internal/catalog"
	"github.com/appengine-ltd/sortcycle/internal/storage"
)

// logAt appends an entry with the clock pinned to ts, then restores it.
func logAt(store *Store, clock *fakeClock, ts time.Time, cat catalog.Category) {
	saved := clock.t
	clock.t = ts
	store.Append(cat)
	clock.t = saved
}

func TestEmptyLogStatistics(t *testing.T) {
	store, _, _ := newTestStore(t)

	if c := store.TodayCounts(); c.Total() != 0 {
		t.Fatalf("expected empty today counts, got %+v", c)
	}
	if c := store.WeekCounts(); c.Total() != 0 {
		t.Fatalf("expected empty week counts, got %+v", c)
	}
	if rate := store.DiversionRate(); rate != 0 {
		t.Fatalf("expected diversion rate 0 on empty log, got %v", rate)
	}
	if streak := store.CurrentStreak(); streak != 0 {
		t.Fatalf("expected streak 0 on empty log, got %d", streak)
	}
	if trend := store.Last7Days(); len(trend) != 7 {
		t.Fatalf("expected 7 trend buckets, got %d", len(trend))
	}
	if recent := store.Recent(0); len(recent) != 0 {
		t.Fatalf("expected no recent entries, got %d", len(recent))
	}
}

func TestTodayAndWeekCounts(t *testing.T) {
	store, clock, _ := newTestStore(t)
	now := clock.t

	logAt(store, clock, now.Add(-2*time.Hour), catalog.CategoryRecycle)     // today
	logAt(store, clock, now.AddDate(0, 0, -2), catalog.CategoryCompost)     // this week
	logAt(store, clock, now.AddDate(0, 0, -2), catalog.CategoryLandfill)    // this week
	logAt(store, clock, now.AddDate(0, 0, -10), catalog.CategoryLandfill)   // too old
	logAt(store, clock, now.Add(-30*time.Minute), catalog.CategoryLandfill) // today

	today := store.TodayCounts()
	if today.Recycle != 1 || today.Compost != 0 || today.Landfill != 1 {
		t.Fatalf("unexpected today counts: %+v", today)
	}
	week := store.WeekCounts()
	if week.Recycle != 1 || week.Compost != 1 || week.Landfill != 2 {
		t.Fatalf("unexpected week counts: %+v", week)
	}
}

func TestSummaryAndImpact(t *testing.T) {
	store, clock, _ := newTestStore(t)
	now := clock.t

	logAt(store, clock, now.Add(-time.Hour), catalog.CategoryRecycle)
	logAt(store, clock, now.Add(-time.Hour), catalog.CategoryRecycle)
	logAt(store, clock, now.Add(-time.Hour), catalog.CategoryCompost)
	logAt(store, clock, now.Add(-time.Hour), catalog.CategoryLandfill)

	summary := store.Summary()
	for _, line := range []string{"Trash: 1", "Recycling: 2", "Compost: 1"} {
		if !strings.Contains(summary, line) {
			t.Fatalf("summary missing %q:\n%s", line, summary)
		}
	}

	want := 2*0.5 + 1*0.3
	if got := store.EstimatedImpact(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected impact %v, got %v", want, got)
	}
	if got := store.DiversionRate(); math.Abs(got-0.75) > 1e-9 {
		t.Fatalf("expected diversion 0.75, got %v", got)
	}
}

func TestCurrentStreakWalksBackFromToday(t *testing.T) {
	store, clock, _ := newTestStore(t)
	now := clock.t

	// Entries on D-2, D-1 and D (today); nothing on D-3.
	logAt(store, clock, now.AddDate(0, 0, -2), catalog.CategoryRecycle)
	logAt(store, clock, now.AddDate(0, 0, -1), catalog.CategoryCompost)
	logAt(store, clock, now.Add(-time.Hour), catalog.CategoryRecycle)

	if got := store.CurrentStreak(); got != 3 {
		t.Fatalf("expected streak 3, got %d", got)
	}
}

func TestCurrentStreakBreaksOnEmptyToday(t *testing.T) {
	store, clock, _ := newTestStore(t)
	now := clock.t

	logAt(store, clock, now.AddDate(0, 0, -1), catalog.CategoryRecycle)
	logAt(store, clock, now.AddDate(0, 0, -2), catalog.CategoryCompost)

	if got := store.CurrentStreak(); got != 0 {
		t.Fatalf("expected streak 0 when today is empty, got %d", got)
	}
}

func TestCurrentStreakIgnoresLandfillOnlyDays(t *testing.T) {
	store, clock, _ := newTestStore(t)
	now := clock.t

	logAt(store, clock, now.Add(-time.Hour), catalog.CategoryRecycle)
	// Yesterday had only landfill, which does not qualify.
	logAt(store, clock, now.AddDate(0, 0, -1), catalog.CategoryLandfill)
	logAt(store, clock, now.AddDate(0, 0, -2), catalog.CategoryCompost)

	if got := store.CurrentStreak(); got != 1 {
		t.Fatalf("expected streak 1 across a landfill-only gap, got %d", got)
	}
}

// Timestamps reloaded from JSON carry whatever zone the decoder built,
// not the process's location, so day bucketing must not depend on zone
// identity.
func TestCurrentStreakSurvivesReloadInNonUTCZone(t *testing.T) {
	zone := time.FixedZone("UTC-5", -5*60*60)
	clock := &fakeClock{t: time.Date(2026, time.August, 29, 14, 30, 0, 0, zone)}
	kv := storage.NewMemoryStore()
	store := NewStoreWithClock(kv, clock.now)
	now := clock.t

	logAt(store, clock, now.Add(-time.Hour), catalog.CategoryRecycle)
	logAt(store, clock, now.AddDate(0, 0, -1), catalog.CategoryCompost)

	if got := store.CurrentStreak(); got != 2 {
		t.Fatalf("expected streak 2 before reload, got %d", got)
	}

	reloaded := NewStoreWithClock(kv, clock.now)
	if got := reloaded.CurrentStreak(); got != 2 {
		t.Fatalf("expected streak 2 after reload, got %d", got)
	}
	if today := reloaded.TodayCounts(); today.Recycle != 1 || today.Total() != 1 {
		t.Fatalf("unexpected today counts after reload: %+v", today)
	}
}

func TestLast7DaysBuckets(t *testing.T) {
	store, clock, _ := newTestStore(t)
	now := clock.t

	logAt(store, clock, now.Add(-time.Hour), catalog.CategoryRecycle)
	logAt(store, clock, now.AddDate(0, 0, -3), catalog.CategoryLandfill)
	logAt(store, clock, now.AddDate(0, 0, -6), catalog.CategoryCompost)
	logAt(store, clock, now.AddDate(0, 0, -8), catalog.CategoryCompost) // outside window

	trend := store.Last7Days()
	if len(trend) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(trend))
	}
	for i := 1; i < len(trend); i++ {
		if !trend[i].Day.After(trend[i-1].Day) {
			t.Fatalf("trend not ordered oldest to newest")
		}
	}
	if trend[6].Counts.Recycle != 1 {
		t.Fatalf("today bucket missing recycle entry: %+v", trend[6].Counts)
	}
	if trend[3].Counts.Landfill != 1 {
		t.Fatalf("D-3 bucket missing landfill entry: %+v", trend[3].Counts)
	}
	if trend[0].Counts.Compost != 1 {
		t.Fatalf("oldest bucket missing compost entry: %+v", trend[0].Counts)
	}

	var total int
	for _, day := range trend {
		total += day.Counts.Total()
	}
	if total != 3 {
		t.Fatalf("expected 3 entries inside the window, got %d", total)
	}
}

func TestRecentSortsDescendingAndCaps(t *testing.T) {
	store, clock, _ := newTestStore(t)
	now := clock.t

	for i := 0; i < 60; i++ {
		logAt(store, clock, now.Add(-time.Duration(i)*time.Minute), catalog.CategoryRecycle)
	}

	recent := store.Recent(0)
	if len(recent) != 50 {
		t.Fatalf("expected default cap of 50, got %d", len(recent))
	}
	for i := 1; i < len(recent); i++ {
		if recent[i].LoggedAt.After(recent[i-1].LoggedAt) {
			t.Fatalf("recent not sorted newest first at index %d", i)
		}
	}

	if got := store.Recent(5); len(got) != 5 {
		t.Fatalf("expected explicit cap of 5, got %d", len(got))
	}
}

func TestTipSelection(t *testing.T) {
	cases := []struct {
		name     string
		recycle  int
		compost  int
		landfill int
		want     string
	}{
		{"landfill heavy", 1, 1, 3, "reducing landfill"},
		{"recycler", 3, 1, 1, "composting more"},
		{"composter", 1, 3, 1, "Amazing composting"},
		{"balanced", 2, 2, 1, "Keep going"},
		{"empty", 0, 0, 0, "Keep going"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, clock, _ := newTestStore(t)
			now := clock.t
			for i := 0; i < tc.recycle; i++ {
				logAt(store, clock, now.Add(-time.Hour), catalog.CategoryRecycle)
			}
			for i := 0; i < tc.compost; i++ {
				logAt(store, clock, now.Add(-time.Hour), catalog.CategoryCompost)
			}
			for i := 0; i < tc.landfill; i++ {
				logAt(store, clock, now.Add(-time.Hour), catalog.CategoryLandfill)
			}
			if tip := store.Tip(); !strings.Contains(tip, tc.want) {
				t.Fatalf("expected tip containing %q, got %q", tc.want, tip)
			}
		})
	}
}
