package catalog

// EffectiveCategory resolves the category that applies to item while
// region is active. A nil region, or a region with no override for the
// item, falls through to the item's base category.
func EffectiveCategory(item Item, region *Region) Category {
	if region != nil {
		if override, ok := region.Overrides[item.ImageName]; ok {
			return override.Category
		}
	}
	return item.BaseCategory
}

// EffectiveRule resolves both category and subcategory, for surfaces that
// display the material family alongside the bin.
func EffectiveRule(item Item, region *Region) (Category, Subcategory) {
	if region != nil {
		if override, ok := region.Overrides[item.ImageName]; ok {
			sub := override.Subcategory
			if sub == "" {
				sub = item.Subcategory
			}
			return override.Category, sub
		}
	}
	return item.BaseCategory, item.Subcategory
}
