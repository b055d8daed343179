// Package shell is the terminal front-end: a REPL over the catalog,
// tracker and sorting challenge for builds without a display.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/appengine-ltd/sortcycle/internal/catalog"
	"github.com/appengine-ltd/sortcycle/internal/game"
	"github.com/appengine-ltd/sortcycle/internal/parser"
	"github.com/appengine-ltd/sortcycle/internal/prefs"
	"github.com/appengine-ltd/sortcycle/internal/storage"
	"github.com/appengine-ltd/sortcycle/internal/tracker"
)

type App struct {
	parser  *parser.Parser
	items   []catalog.Item
	tracker *tracker.Store
	prefs   *prefs.Store
	board   *game.Leaderboard

	out   io.Writer
	lines chan string

	// Seed fixes the RNG for sorting rounds; 0 draws from the wall clock.
	Seed int64

	// lastListing maps the numbers printed by `logs` onto entry IDs so
	// `delete <n>` can address what the user just saw.
	lastListing []tracker.Entry
}

func New(kv storage.KV, in io.Reader, out io.Writer) *App {
	a := &App{
		parser:  parser.New(),
		items:   catalog.Items(),
		tracker: tracker.NewStore(kv),
		prefs:   prefs.NewStore(kv),
		board:   game.NewLeaderboard(kv),
		out:     out,
		lines:   make(chan string),
	}
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			a.lines <- scanner.Text()
		}
		close(a.lines)
	}()
	return a
}

func (a *App) Run() error {
	fmt.Fprintln(a.out, "sortcycle - waste sorting trainer. Type help for commands.")
	a.printRegion()

	for {
		fmt.Fprint(a.out, "> ")
		line, ok := <-a.lines
		if !ok {
			return nil
		}
		intent := a.parser.Parse(line)
		if intent.Clarify != nil {
			fmt.Fprintln(a.out, intent.Clarify.Prompt)
			if len(intent.Clarify.Options) > 0 {
				fmt.Fprintln(a.out, "  "+strings.Join(intent.Clarify.Options, ", "))
			}
			continue
		}
		if intent.Verb == "quit" {
			fmt.Fprintln(a.out, "Bye.")
			return nil
		}
		a.dispatch(intent)
	}
}

func (a *App) dispatch(intent parser.Intent) {
	switch intent.Verb {
	case "help":
		a.printHelp()
	case "items":
		a.printItems()
	case "search":
		a.search(intent.ArgText())
	case "sort":
		a.runRound()
	case "log":
		a.logWaste(intent.ArgText())
	case "logs":
		a.printLogs(intent.Args)
	case "delete":
		a.deleteLog(intent.Args)
	case "stats":
		a.printStats()
	case "trend":
		a.printTrend()
	case "streak":
		fmt.Fprintf(a.out, "Current streak: %d day(s)\n", a.tracker.CurrentStreak())
	case "region":
		a.setRegion(intent.ArgText())
	case "regions":
		a.printRegions()
	case "score":
		a.printScores()
	default:
		fmt.Fprintln(a.out, "Unknown command. Type help.")
	}
}

func (a *App) printHelp() {
	fmt.Fprintln(a.out, "Commands:")
	fmt.Fprintln(a.out, "  sort                 play a 60 second sorting round")
	fmt.Fprintln(a.out, "  log <category>       record recycle, compost or trash")
	fmt.Fprintln(a.out, "  stats | trend        consumption statistics")
	fmt.Fprintln(a.out, "  logs [n] | delete <n> review or remove entries")
	fmt.Fprintln(a.out, "  search <text>        look up how to sort an item")
	fmt.Fprintln(a.out, "  items                list the catalog")
	fmt.Fprintln(a.out, "  region [name|clear]  show or set local rules")
	fmt.Fprintln(a.out, "  regions              list rule sets")
	fmt.Fprintln(a.out, "  score                best score and leaderboard")
	fmt.Fprintln(a.out, "  quit")
}

func (a *App) resolver() game.Resolver {
	region := a.prefs.ActiveRegion()
	return func(item catalog.Item) catalog.Category {
		return catalog.EffectiveCategory(item, region)
	}
}

func (a *App) printItems() {
	region := a.prefs.ActiveRegion()
	for _, item := range a.items {
		cat, sub := catalog.EffectiveRule(item, region)
		line := fmt.Sprintf("  %-18s %s", item.Name, cat.DisplayName())
		if sub != "" {
			line += " (" + string(sub) + ")"
		}
		fmt.Fprintln(a.out, line)
	}
}

func (a *App) search(query string) {
	results := catalog.Search(query, a.items)
	if len(results) == 0 {
		fmt.Fprintf(a.out, "No items match %q.\n", query)
		if hints := catalog.Suggest(query, a.items, 3); len(hints) > 0 {
			fmt.Fprintln(a.out, "Did you mean: "+strings.Join(hints, ", ")+"?")
		}
		return
	}
	region := a.prefs.ActiveRegion()
	for _, item := range results {
		cat := catalog.EffectiveCategory(item, region)
		fmt.Fprintf(a.out, "  %-18s %-9s %s\n", item.Name, cat.DisplayName(), item.Fact)
	}
}

func (a *App) runRound() {
	round := game.NewRound(a.Seed)
	round.Start(a.items)
	resolve := a.resolver()

	fmt.Fprintf(a.out, "Sort each item: r(ecycle), c(ompost), t(rash). 'stop' abandons the round. %d seconds!\n", game.RoundSeconds)
	a.printCurrent(round)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for round.State() == game.StateRunning {
		select {
		case <-ticker.C:
			round.Tick()
		case line, ok := <-a.lines:
			if !ok {
				return
			}
			trimmed := strings.TrimSpace(strings.ToLower(line))
			if trimmed == "stop" || trimmed == "quit" {
				fmt.Fprintln(a.out, "Round abandoned.")
				return
			}
			candidate, ok := parseAnswer(trimmed)
			if !ok {
				fmt.Fprintln(a.out, "Answer r, c or t.")
				continue
			}
			res, accepted := round.Submit(candidate, resolve)
			if !accepted {
				continue
			}
			if res.Matched {
				fmt.Fprintf(a.out, "Correct! %s\n", res.Item.Fact)
			} else {
				fmt.Fprintf(a.out, "Nope - %s goes in %s.\n", res.Item.Name, res.Correct.DisplayName())
			}
			fmt.Fprintf(a.out, "Score %d, %ds left.\n", round.Score(), round.Remaining())
			a.printCurrent(round)
		}
	}

	final := round.Score()
	a.board.Record(final)
	fmt.Fprintf(a.out, "Time! Final score: %d (best %d)\n", final, a.board.Best())
	a.printScores()
}

func (a *App) printCurrent(round *game.Round) {
	if item, ok := round.Current(); ok {
		fmt.Fprintf(a.out, "Where does this go? %s\n", item.Name)
	}
}

func parseAnswer(s string) (catalog.Category, bool) {
	switch s {
	case "r":
		return catalog.CategoryRecycle, true
	case "c":
		return catalog.CategoryCompost, true
	case "t", "l", "g":
		return catalog.CategoryLandfill, true
	}
	return catalog.ParseCategory(s)
}

func (a *App) logWaste(raw string) {
	cat, ok := catalog.ParseCategory(raw)
	if !ok {
		fmt.Fprintf(a.out, "Unknown category %q. Use recycle, compost or trash.\n", raw)
		return
	}
	a.tracker.Append(cat)
	today := a.tracker.TodayCounts()
	fmt.Fprintf(a.out, "Logged %s. Today: %d recycled, %d composted, %d trashed. Streak: %d day(s).\n",
		cat.DisplayName(), today.Recycle, today.Compost, today.Landfill, a.tracker.CurrentStreak())
}

func (a *App) printLogs(args []string) {
	limit := 10
	if len(args) == 1 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			limit = n
		}
	}
	a.lastListing = a.tracker.Recent(limit)
	if len(a.lastListing) == 0 {
		fmt.Fprintln(a.out, "No entries logged yet.")
		return
	}
	for i, entry := range a.lastListing {
		fmt.Fprintf(a.out, "  %2d. %s %s\n", i+1,
			entry.LoggedAt.Format("Mon 15:04"), entry.Category.DisplayName())
	}
}

func (a *App) deleteLog(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: delete <n> (run logs first)")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(a.lastListing) {
		fmt.Fprintln(a.out, "No such entry. Run logs and use one of the listed numbers.")
		return
	}
	entry := a.lastListing[n-1]
	a.tracker.DeleteByID(entry.ID)
	a.lastListing = nil
	fmt.Fprintf(a.out, "Deleted %s entry from %s.\n", entry.Category.DisplayName(), entry.LoggedAt.Format("Mon 15:04"))
}

func (a *App) printStats() {
	today := a.tracker.TodayCounts()
	fmt.Fprintf(a.out, "Today: %d logged (%d recycle / %d compost / %d trash)\n",
		today.Total(), today.Recycle, today.Compost, today.Landfill)
	fmt.Fprintf(a.out, "This week:\n%s\n", indent(a.tracker.Summary()))
	fmt.Fprintf(a.out, "Diversion rate: %.0f%%\n", a.tracker.DiversionRate()*100)
	fmt.Fprintf(a.out, "Estimated CO2 avoided: %.1f kg\n", a.tracker.EstimatedImpact())
	fmt.Fprintf(a.out, "Streak: %d day(s)\n", a.tracker.CurrentStreak())
	fmt.Fprintln(a.out, a.tracker.Tip())
}

func indent(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}

func (a *App) printTrend() {
	for _, day := range a.tracker.Last7Days() {
		c := day.Counts
		fmt.Fprintf(a.out, "  %s  recycle %-2d compost %-2d trash %-2d\n",
			day.Day.Format("Mon Jan 02"), c.Recycle, c.Compost, c.Landfill)
	}
}

func (a *App) printRegion() {
	if region := a.prefs.ActiveRegion(); region != nil {
		fmt.Fprintf(a.out, "Active region: %s\n", region.Name)
	} else {
		fmt.Fprintln(a.out, "No region selected; default rules apply.")
	}
}

func (a *App) setRegion(raw string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		a.printRegion()
		return
	}
	if strings.EqualFold(raw, "clear") || strings.EqualFold(raw, "none") {
		a.prefs.SetActiveRegion(nil)
		fmt.Fprintln(a.out, "Region cleared; default rules apply.")
		return
	}
	region, ok := matchRegion(raw)
	if !ok {
		fmt.Fprintf(a.out, "Unknown region %q. ", raw)
		a.printRegions()
		return
	}
	a.prefs.SetActiveRegion(&region)
	fmt.Fprintf(a.out, "Region set to %s (%d local overrides).\n", region.Name, len(region.Overrides))
}

// matchRegion accepts any case-insensitive unique prefix or substring of
// a builtin region name.
func matchRegion(raw string) (catalog.Region, bool) {
	needle := strings.ToLower(raw)
	var found catalog.Region
	matches := 0
	for _, region := range catalog.Regions() {
		name := strings.ToLower(region.Name)
		if name == needle {
			return region, true
		}
		if strings.Contains(name, needle) {
			found = region
			matches++
		}
	}
	return found, matches == 1
}

func (a *App) printRegions() {
	fmt.Fprintln(a.out, "Regions:")
	active := a.prefs.ActiveRegion()
	for _, region := range catalog.Regions() {
		marker := " "
		if active != nil && active.Name == region.Name {
			marker = "*"
		}
		fmt.Fprintf(a.out, "  %s %s (%d overrides)\n", marker, region.Name, len(region.Overrides))
	}
}

func (a *App) printScores() {
	top := a.board.Top()
	if len(top) == 0 {
		fmt.Fprintln(a.out, "No rounds played yet.")
		return
	}
	fmt.Fprintf(a.out, "Best score: %d\n", a.board.Best())
	for i, score := range top {
		fmt.Fprintf(a.out, "  %d. %d\n", i+1, score)
	}
}
