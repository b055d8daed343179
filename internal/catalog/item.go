package catalog

import "github.com/google/uuid"

// Item is a single sortable catalog entry. The builtin tables are the
// only source of items; nothing mutates them after init.
type Item struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	ImageName    string      `json:"image_name"`
	BaseCategory Category    `json:"base_category"`
	Subcategory  Subcategory `json:"subcategory,omitempty"`
	Fact         string      `json:"fact,omitempty"`
	Keywords     []string    `json:"keywords,omitempty"`
}

// Override replaces an item's effective rule while its region is active.
type Override struct {
	Category    Category    `json:"category"`
	Subcategory Subcategory `json:"subcategory,omitempty"`
}

// Region is a named set of per-item overrides, keyed by image name.
type Region struct {
	Name      string              `json:"name"`
	Overrides map[string]Override `json:"overrides"`
}

// Items returns the builtin item catalog.
func Items() []Item {
	return builtinItems
}

func ItemByImageName(imageName string) (Item, bool) {
	for _, item := range builtinItems {
		if item.ImageName == imageName {
			return item, true
		}
	}
	return Item{}, false
}

// Regions returns the builtin region rule sets.
func Regions() []Region {
	return builtinRegions
}

func RegionByName(name string) (Region, bool) {
	for _, region := range builtinRegions {
		if region.Name == name {
			return region, true
		}
	}
	return Region{}, false
}
