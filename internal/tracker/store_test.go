package tracker

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/appengine-ltd/sortcycle/internal/catalog"
	"github.com/appengine-ltd/sortcycle/internal/storage"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func newTestStore(t *testing.T) (*Store, *fakeClock, storage.KV) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2026, time.August, 29, 14, 30, 0, 0, time.UTC)}
	kv := storage.NewMemoryStore()
	return NewStoreWithClock(kv, clock.now), clock, kv
}

func TestAppendPersistsAndReloads(t *testing.T) {
	store, clock, kv := newTestStore(t)

	store.Append(catalog.CategoryRecycle)
	clock.t = clock.t.Add(time.Hour)
	store.Append(catalog.CategoryLandfill)

	reloaded := NewStoreWithClock(kv, clock.now)
	if reloaded.Len() != 2 {
		t.Fatalf("expected 2 entries after reload, got %d", reloaded.Len())
	}
	a, b := store.Entries(), reloaded.Entries()
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Category != b[i].Category || !a[i].LoggedAt.Equal(b[i].LoggedAt) {
			t.Fatalf("entry %d mismatch after reload: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestLoadTreatsCorruptDataAsEmpty(t *testing.T) {
	kv := storage.NewMemoryStore()
	if err := kv.Set("wasteLogs", []byte("not json at all")); err != nil {
		t.Fatalf("seeding corrupt blob: %v", err)
	}
	store := NewStore(kv)
	if store.Len() != 0 {
		t.Fatalf("expected empty log from corrupt data, got %d entries", store.Len())
	}
}

func TestDeleteByID(t *testing.T) {
	store, _, _ := newTestStore(t)
	first := store.Append(catalog.CategoryCompost)
	second := store.Append(catalog.CategoryRecycle)

	store.DeleteByID(first.ID)
	entries := store.Entries()
	if len(entries) != 1 || entries[0].ID != second.ID {
		t.Fatalf("expected only %s to remain, got %v", second.ID, entries)
	}

	// Unknown ids are a silent no-op.
	store.DeleteByID(uuid.New())
	if store.Len() != 1 {
		t.Fatalf("delete of unknown id changed the log")
	}
}

func TestDeleteAt(t *testing.T) {
	store, _, _ := newTestStore(t)
	store.Append(catalog.CategoryCompost)
	kept := store.Append(catalog.CategoryLandfill)

	store.DeleteAt(0)
	if store.Len() != 1 || store.Entries()[0].ID != kept.ID {
		t.Fatalf("expected first entry removed")
	}

	store.DeleteAt(5)
	store.DeleteAt(-1)
	if store.Len() != 1 {
		t.Fatalf("out-of-range delete changed the log")
	}
}

func TestDeletePersists(t *testing.T) {
	store, clock, kv := newTestStore(t)
	entry := store.Append(catalog.CategoryRecycle)
	store.DeleteByID(entry.ID)

	reloaded := NewStoreWithClock(kv, clock.now)
	if reloaded.Len() != 0 {
		t.Fatalf("expected delete to persist, got %d entries", reloaded.Len())
	}
}
