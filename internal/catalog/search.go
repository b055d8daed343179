package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Search returns every item whose name, image name or keywords contain
// the query as a case-insensitive substring. An empty or whitespace-only
// query returns nothing, not the whole catalog. Catalog order is kept.
func Search(query string, items []Item) []Item {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var matched []Item
	for _, item := range items {
		if matchesQuery(item, q) {
			matched = append(matched, item)
		}
	}
	return matched
}

func matchesQuery(item Item, q string) bool {
	if strings.Contains(strings.ToLower(item.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(item.ImageName), q) {
		return true
	}
	for _, kw := range item.Keywords {
		if strings.Contains(strings.ToLower(kw), q) {
			return true
		}
	}
	return false
}

type suggestion struct {
	name string
	dist int
}

// Suggest ranks item names by edit distance to the query so the lookup
// can offer "did you mean" hints when a search comes back empty.
func Suggest(query string, items []Item, max int) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || max <= 0 {
		return nil
	}

	candidates := make([]suggestion, 0, len(items))
	for _, item := range items {
		best := levenshtein.ComputeDistance(q, strings.ToLower(item.Name))
		for _, kw := range item.Keywords {
			if d := levenshtein.ComputeDistance(q, strings.ToLower(kw)); d < best {
				best = d
			}
		}
		// Distances beyond half the query length read as noise, not typos.
		if best > (len(q)+1)/2 {
			continue
		}
		candidates = append(candidates, suggestion{name: item.Name, dist: best})
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].dist < candidates[j].dist })
	if len(candidates) > max {
		candidates = candidates[:max]
	}
	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, c.name)
	}
	return names
}
