package prefs

import (
	"testing"

	"github.com/appengine-ltd/sortcycle/internal/catalog"
	"github.com/appengine-ltd/sortcycle/internal/storage"
)

func TestActiveRegionRoundTrip(t *testing.T) {
	kv := storage.NewMemoryStore()
	store := NewStore(kv)

	if store.ActiveRegion() != nil {
		t.Fatalf("expected no region before selection")
	}

	ontario, ok := catalog.RegionByName("Ontario")
	if !ok {
		t.Fatalf("builtin region missing")
	}
	store.SetActiveRegion(&ontario)

	got := store.ActiveRegion()
	if got == nil || got.Name != "Ontario" {
		t.Fatalf("expected Ontario, got %+v", got)
	}

	store.SetActiveRegion(nil)
	if store.ActiveRegion() != nil {
		t.Fatalf("expected cleared selection")
	}
}

func TestActiveRegionUnknownNameFallsBackToDefaults(t *testing.T) {
	kv := storage.NewMemoryStore()
	if err := kv.Set("selectedRegionName", []byte("Gondwana")); err != nil {
		t.Fatalf("seeding: %v", err)
	}
	if got := NewStore(kv).ActiveRegion(); got != nil {
		t.Fatalf("expected nil for unknown stored region, got %+v", got)
	}
}
