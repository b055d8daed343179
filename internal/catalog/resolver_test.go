package catalog

import "testing"

func TestEffectiveCategoryUsesBaseWithoutRegion(t *testing.T) {
	for _, item := range Items() {
		if got := EffectiveCategory(item, nil); got != item.BaseCategory {
			t.Fatalf("%s: expected base category %s, got %s", item.ImageName, item.BaseCategory, got)
		}
	}
}

func TestEffectiveCategoryAppliesOverride(t *testing.T) {
	uk, ok := RegionByName("United Kingdom")
	if !ok {
		t.Fatalf("builtin region missing")
	}
	item, ok := ItemByImageName("pizza_box")
	if !ok {
		t.Fatalf("builtin item missing")
	}

	// The UK recycles greasy pizza boxes; the base rule composts them.
	if item.BaseCategory != CategoryCompost {
		t.Fatalf("expected pizza_box base category compost, got %s", item.BaseCategory)
	}
	if got := EffectiveCategory(item, &uk); got != CategoryRecycle {
		t.Fatalf("expected UK override recycle, got %s", got)
	}
}

func TestEffectiveCategoryFallsThroughMissingOverride(t *testing.T) {
	bc, ok := RegionByName("British Columbia")
	if !ok {
		t.Fatalf("builtin region missing")
	}
	item, ok := ItemByImageName("banana_peel")
	if !ok {
		t.Fatalf("builtin item missing")
	}
	if _, overridden := bc.Overrides[item.ImageName]; overridden {
		t.Fatalf("test assumes banana_peel has no BC override")
	}
	if got := EffectiveCategory(item, &bc); got != item.BaseCategory {
		t.Fatalf("expected fallthrough to %s, got %s", item.BaseCategory, got)
	}
}

func TestEffectiveCategoryAllRegionOverrides(t *testing.T) {
	for _, region := range Regions() {
		for imageName, override := range region.Overrides {
			item, ok := ItemByImageName(imageName)
			if !ok {
				t.Fatalf("%s: override references unknown item %q", region.Name, imageName)
			}
			if got := EffectiveCategory(item, &region); got != override.Category {
				t.Fatalf("%s/%s: expected %s, got %s", region.Name, imageName, override.Category, got)
			}
		}
	}
}

func TestEffectiveRuleKeepsItemSubcategoryWhenOverrideOmitsIt(t *testing.T) {
	item := Item{ImageName: "x", BaseCategory: CategoryLandfill, Subcategory: SubPlastic}
	region := Region{Name: "t", Overrides: map[string]Override{"x": {Category: CategoryRecycle}}}

	cat, sub := EffectiveRule(item, &region)
	if cat != CategoryRecycle || sub != SubPlastic {
		t.Fatalf("expected recycle/plastic, got %s/%s", cat, sub)
	}
}

func TestParseCategory(t *testing.T) {
	cases := []struct {
		in   string
		want Category
		ok   bool
	}{
		{"recycle", CategoryRecycle, true},
		{"Recycling", CategoryRecycle, true},
		{"trash", CategoryLandfill, true},
		{"garbage", CategoryLandfill, true},
		{"organics", CategoryCompost, true},
		{" compost ", CategoryCompost, true},
		{"plasma", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseCategory(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseCategory(%q) = %q,%v, expected %q,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
