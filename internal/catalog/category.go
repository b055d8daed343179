package catalog

import "strings"

// Category is the waste stream an item ultimately belongs in.
type Category string

const (
	CategoryRecycle  Category = "recycle"
	CategoryCompost  Category = "compost"
	CategoryLandfill Category = "landfill"
)

func AllCategories() []Category {
	return []Category{CategoryRecycle, CategoryCompost, CategoryLandfill}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryRecycle, CategoryCompost, CategoryLandfill:
		return true
	}
	return false
}

func (c Category) DisplayName() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// ParseCategory maps free text onto a category. Common bin words
// ("trash", "garbage", "organics" ...) resolve too, since both the shell
// and the API accept user-typed input.
func ParseCategory(raw string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "recycle", "recycling", "blue", "blue bin":
		return CategoryRecycle, true
	case "compost", "organics", "green", "green bin", "food waste":
		return CategoryCompost, true
	case "landfill", "trash", "garbage", "waste", "black bin", "general":
		return CategoryLandfill, true
	}
	return "", false
}

// Subcategory is the material family of an item. Items may carry none.
type Subcategory string

const (
	SubOrganic Subcategory = "organic"
	SubPaper   Subcategory = "paper"
	SubPlastic Subcategory = "plastic"
	SubMetal   Subcategory = "metal"
	SubGlass   Subcategory = "glass"
	SubGeneral Subcategory = "general"
)
