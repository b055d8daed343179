package tracker

import (
	"fmt"
	"sort"
	"time"

	"github.com/appengine-ltd/sortcycle/internal/catalog"
)

// Counts buckets log entries by category.
type Counts struct {
	Recycle  int `json:"recycle"`
	Compost  int `json:"compost"`
	Landfill int `json:"landfill"`
}

func (c Counts) Total() int {
	return c.Recycle + c.Compost + c.Landfill
}

func (c *Counts) add(cat catalog.Category) {
	switch cat {
	case catalog.CategoryRecycle:
		c.Recycle++
	case catalog.CategoryCompost:
		c.Compost++
	case catalog.CategoryLandfill:
		c.Landfill++
	}
}

// DayCounts is one day's bucket in the trend view.
type DayCounts struct {
	Day    time.Time `json:"day"`
	Counts Counts    `json:"counts"`
}

// Per-item emission estimates in kg CO2 avoided versus landfill.
const (
	impactPerRecycle = 0.5
	impactPerCompost = 0.3
)

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dayKeyLayout identifies a calendar day independent of the timestamp's
// location, so entries reloaded from storage (which carry the zone the
// JSON decoder produced, not the process's) still land on the right day.
const dayKeyLayout = "2006-01-02"

func (s *Store) countsSince(cutoff time.Time) Counts {
	var c Counts
	for _, entry := range s.logs {
		if !entry.LoggedAt.Before(cutoff) {
			c.add(entry.Category)
		}
	}
	return c
}

// TodayCounts buckets entries logged since the start of the current day.
func (s *Store) TodayCounts() Counts {
	return s.countsSince(startOfDay(s.now()))
}

// WeekCounts buckets entries logged in the last seven days.
func (s *Store) WeekCounts() Counts {
	return s.countsSince(s.now().AddDate(0, 0, -7))
}

// Summary renders the weekly breakdown as three lines of text.
func (s *Store) Summary() string {
	c := s.WeekCounts()
	return fmt.Sprintf("Trash: %d\nRecycling: %d\nCompost: %d", c.Landfill, c.Recycle, c.Compost)
}

// EstimatedImpact reports the week's estimated kg of CO2 avoided.
func (s *Store) EstimatedImpact() float64 {
	c := s.WeekCounts()
	return float64(c.Recycle)*impactPerRecycle + float64(c.Compost)*impactPerCompost
}

// DiversionRate is the weekly fraction of waste kept out of landfill.
// An empty week reports 0, not NaN.
func (s *Store) DiversionRate() float64 {
	c := s.WeekCounts()
	total := c.Total()
	if total == 0 {
		return 0
	}
	return float64(c.Recycle+c.Compost) / float64(total)
}

// CurrentStreak counts consecutive days, walking backward from today,
// with at least one recycle or compost entry. The walk stops at the
// first day without one, today included.
func (s *Store) CurrentStreak() int {
	if len(s.logs) == 0 {
		return 0
	}

	now := s.now()
	qualifying := map[string]bool{}
	for _, entry := range s.logs {
		if entry.Category == catalog.CategoryRecycle || entry.Category == catalog.CategoryCompost {
			qualifying[entry.LoggedAt.In(now.Location()).Format(dayKeyLayout)] = true
		}
	}

	streak := 0
	day := startOfDay(now)
	for qualifying[day.Format(dayKeyLayout)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// Last7Days buckets the past seven calendar days, oldest first, today
// included.
func (s *Store) Last7Days() []DayCounts {
	now := s.now()
	data := make([]DayCounts, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		day := startOfDay(now.AddDate(0, 0, -offset))
		next := day.AddDate(0, 0, 1)
		var c Counts
		for _, entry := range s.logs {
			if !entry.LoggedAt.Before(day) && entry.LoggedAt.Before(next) {
				c.add(entry.Category)
			}
		}
		data = append(data, DayCounts{Day: day, Counts: c})
	}
	return data
}

// Recent returns entries newest first, capped at limit (50 when limit
// is not positive).
func (s *Store) Recent(limit int) []Entry {
	if limit <= 0 {
		limit = 50
	}
	recent := append([]Entry(nil), s.logs...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].LoggedAt.After(recent[j].LoggedAt)
	})
	if len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}

// Tip picks a habit suggestion from the weekly balance.
func (s *Store) Tip() string {
	c := s.WeekCounts()

	if c.Landfill > c.Recycle+c.Compost {
		return "Try reducing landfill waste by choosing reusable containers or buying in bulk."
	}
	if c.Recycle > c.Compost {
		return "Great recycling! Consider composting more organic waste when possible."
	}
	if c.Compost > c.Recycle {
		return "Amazing composting! Keep separating organics to reduce methane emissions."
	}
	return "Keep going! Small daily choices make a big environmental difference."
}
