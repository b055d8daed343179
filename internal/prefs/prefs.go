// Package prefs persists small user preferences, currently the active
// region rule set.
package prefs

import (
	"strings"

	"github.com/appengine-ltd/sortcycle/internal/catalog"
	"github.com/appengine-ltd/sortcycle/internal/storage"
)

const regionKey = "selectedRegionName"

type Store struct {
	kv storage.KV
}

func NewStore(kv storage.KV) *Store {
	return &Store{kv: kv}
}

// ActiveRegion resolves the persisted region name against the builtin
// catalog. No stored name, or a name the catalog no longer knows,
// means defaults apply.
func (s *Store) ActiveRegion() *catalog.Region {
	data, err := s.kv.Get(regionKey)
	if err != nil {
		return nil
	}
	name := strings.TrimSpace(string(data))
	if name == "" {
		return nil
	}
	region, ok := catalog.RegionByName(name)
	if !ok {
		return nil
	}
	return &region
}

// SetActiveRegion persists the selection; nil clears it.
func (s *Store) SetActiveRegion(region *catalog.Region) {
	if region == nil {
		_ = s.kv.Delete(regionKey)
		return
	}
	_ = s.kv.Set(regionKey, []byte(region.Name))
}
