//go:build cgo
// +build cgo

package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/sortcycle/internal/catalog"
)

func (ui *appUI) updateLookup() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		ui.screen = screenMenu
		return
	}

	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		if ch >= 32 && ch < 127 && len(ui.searchBuf) < 40 {
			ui.searchBuf += string(rune(ch))
			ui.lookupCursor = 0
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(ui.searchBuf) > 0 {
		ui.searchBuf = ui.searchBuf[:len(ui.searchBuf)-1]
		ui.lookupCursor = 0
	}

	results := catalog.Search(ui.searchBuf, ui.items)
	if ui.searchBuf == "" {
		results = ui.items
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		ui.lookupCursor = wrapIndex(ui.lookupCursor+1, len(results))
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		ui.lookupCursor = wrapIndex(ui.lookupCursor-1, len(results))
	}
}

func (ui *appUI) drawLookup() {
	header := rl.NewRectangle(20, 20, float32(ui.width-40), 80)
	drawPanel(header, "Help Me Sort")
	rl.DrawText("Type to search, Up/Down to browse, Esc for menu", int32(header.X)+18, int32(header.Y)+48, 18, colorDim)

	searchRect := rl.NewRectangle(20, 112, float32(ui.width-40), 50)
	rl.DrawRectangleRounded(searchRect, 0.3, 8, colorPanel)
	rl.DrawRectangleRoundedLinesEx(searchRect, 0.3, 8, 2, colorBorder)
	rl.DrawText("> "+ui.searchBuf+"_", int32(searchRect.X)+18, int32(searchRect.Y)+14, 24, colorText)

	results := catalog.Search(ui.searchBuf, ui.items)
	if ui.searchBuf == "" {
		results = ui.items
	}

	listRect := rl.NewRectangle(20, 176, float32(ui.width)/2-30, float32(ui.height-196))
	drawPanel(listRect, fmt.Sprintf("Items (%d)", len(results)))

	if len(results) == 0 {
		rl.DrawText("No matches.", int32(listRect.X)+18, int32(listRect.Y)+56, 20, colorDim)
		y := int32(listRect.Y) + 92
		for _, s := range catalog.Suggest(ui.searchBuf, ui.items, 3) {
			rl.DrawText("Did you mean: "+s+"?", int32(listRect.X)+18, y, 20, colorWarn)
			y += 28
		}
		return
	}

	if ui.lookupCursor >= len(results) {
		ui.lookupCursor = 0
	}

	rows := int(listRect.Height-70) / 30
	first := 0
	if ui.lookupCursor >= rows {
		first = ui.lookupCursor - rows + 1
	}
	region := ui.prefs.ActiveRegion()
	y := int32(listRect.Y) + 56
	for i := first; i < len(results) && i < first+rows; i++ {
		item := results[i]
		clr := colorText
		if i == ui.lookupCursor {
			clr = colorAccent
			rl.DrawText(">", int32(listRect.X)+18, y, 20, colorAccent)
		}
		rl.DrawText(item.Name, int32(listRect.X)+40, y, 20, clr)
		cat := catalog.EffectiveCategory(item, region)
		rl.DrawText(cat.DisplayName(), int32(listRect.X+listRect.Width)-160, y, 20, categoryColor(cat))
		y += 30
	}

	ui.drawItemDetail(results[ui.lookupCursor], region)
}

func (ui *appUI) drawItemDetail(item catalog.Item, region *catalog.Region) {
	rect := rl.NewRectangle(float32(ui.width)/2+10, 176, float32(ui.width)/2-30, float32(ui.height-196))
	drawPanel(rect, item.Name)

	cat, sub := catalog.EffectiveRule(item, region)
	x := int32(rect.X) + 18
	y := int32(rect.Y) + 60
	rl.DrawText("Goes in:", x, y, 22, colorDim)
	rl.DrawText(cat.DisplayName(), x+110, y, 22, categoryColor(cat))
	y += 36
	rl.DrawText("Type: "+string(sub), x, y, 20, colorText)
	y += 36
	if region != nil {
		if _, ok := region.Overrides[item.ImageName]; ok {
			rl.DrawText("Local rule for "+region.Name, x, y, 20, colorWarn)
			y += 36
		}
	}
	y += 10
	for _, line := range wrapText(item.Fact, int(rect.Width)-36, 20) {
		rl.DrawText(line, x, y, 20, colorDim)
		y += 28
	}
}

func (ui *appUI) updateTracker() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		ui.screen = screenMenu
		return
	}
	switch {
	case rl.IsKeyPressed(rl.KeyR):
		ui.tracker.Append(catalog.CategoryRecycle)
		ui.status = "Logged recycling"
	case rl.IsKeyPressed(rl.KeyC):
		ui.tracker.Append(catalog.CategoryCompost)
		ui.status = "Logged compost"
	case rl.IsKeyPressed(rl.KeyT):
		ui.tracker.Append(catalog.CategoryLandfill)
		ui.status = "Logged trash"
	case rl.IsKeyPressed(rl.KeyD):
		recent := ui.tracker.Recent(1)
		if len(recent) > 0 {
			ui.tracker.DeleteByID(recent[0].ID)
			ui.status = "Deleted last entry"
		}
	}
}

func (ui *appUI) drawTracker() {
	header := rl.NewRectangle(20, 20, float32(ui.width-40), 80)
	drawPanel(header, "Consumption Tracker")
	rl.DrawText("R log recycling   C log compost   T log trash   D delete last   Esc menu", int32(header.X)+18, int32(header.Y)+48, 18, colorDim)

	statsRect := rl.NewRectangle(20, 112, float32(ui.width)/2-30, 300)
	drawPanel(statsRect, "This Week")
	week := ui.tracker.WeekCounts()
	today := ui.tracker.TodayCounts()
	x := int32(statsRect.X) + 18
	y := int32(statsRect.Y) + 56
	lines := []struct {
		label string
		value string
		clr   rl.Color
	}{
		{"Recycling", fmt.Sprintf("%d  (today %d)", week.Recycle, today.Recycle), colorRecycle},
		{"Compost", fmt.Sprintf("%d  (today %d)", week.Compost, today.Compost), colorCompost},
		{"Trash", fmt.Sprintf("%d  (today %d)", week.Landfill, today.Landfill), colorLandfill},
		{"Streak", fmt.Sprintf("%d days", ui.tracker.CurrentStreak()), colorAccent},
		{"Diversion", fmt.Sprintf("%.0f%%", ui.tracker.DiversionRate()*100), colorText},
		{"CO2 avoided", fmt.Sprintf("%.1f kg", ui.tracker.EstimatedImpact()), colorText},
	}
	for _, line := range lines {
		rl.DrawText(line.label, x, y, 22, colorDim)
		rl.DrawText(line.value, x+180, y, 22, line.clr)
		y += 36
	}

	tipRect := rl.NewRectangle(20, 424, float32(ui.width)/2-30, float32(ui.height-444))
	drawPanel(tipRect, "Tip")
	ty := int32(tipRect.Y) + 56
	for _, line := range wrapText(ui.tracker.Tip(), int(tipRect.Width)-36, 20) {
		rl.DrawText(line, int32(tipRect.X)+18, ty, 20, colorText)
		ty += 28
	}
	if ui.status != "" {
		rl.DrawText(ui.status, int32(tipRect.X)+18, int32(tipRect.Y+tipRect.Height)-40, 20, colorAccent)
	}

	ui.drawTrend()
}

// drawTrend renders seven stacked daily bars, oldest on the left.
func (ui *appUI) drawTrend() {
	rect := rl.NewRectangle(float32(ui.width)/2+10, 112, float32(ui.width)/2-30, float32(ui.height-132))
	drawPanel(rect, "Last 7 Days")

	days := ui.tracker.Last7Days()
	maxTotal := 1
	for _, d := range days {
		if t := d.Counts.Total(); t > maxTotal {
			maxTotal = t
		}
	}

	barArea := rl.NewRectangle(rect.X+30, rect.Y+60, rect.Width-60, rect.Height-120)
	barWidth := barArea.Width / 7 * 0.6
	gap := barArea.Width / 7
	for i, d := range days {
		x := barArea.X + float32(i)*gap + (gap-barWidth)/2
		base := barArea.Y + barArea.Height
		unit := barArea.Height / float32(maxTotal)

		segments := []struct {
			count int
			clr   rl.Color
		}{
			{d.Counts.Landfill, colorLandfill},
			{d.Counts.Compost, colorCompost},
			{d.Counts.Recycle, colorRecycle},
		}
		for _, seg := range segments {
			if seg.count == 0 {
				continue
			}
			h := unit * float32(seg.count)
			base -= h
			rl.DrawRectangleRec(rl.NewRectangle(x, base, barWidth, h), seg.clr)
		}

		label := d.Day.Format("Mon")
		lw := rl.MeasureText(label, 16)
		rl.DrawText(label, int32(x+barWidth/2)-lw/2, int32(barArea.Y+barArea.Height)+10, 16, colorDim)
	}
}

func (ui *appUI) regionOptions() []string {
	names := []string{"No region (defaults)"}
	for _, r := range catalog.Regions() {
		names = append(names, r.Name)
	}
	return names
}

func (ui *appUI) updateRegions() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		ui.screen = screenMenu
		return
	}
	options := ui.regionOptions()
	if rl.IsKeyPressed(rl.KeyDown) {
		ui.regionCursor = wrapIndex(ui.regionCursor+1, len(options))
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		ui.regionCursor = wrapIndex(ui.regionCursor-1, len(options))
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		if ui.regionCursor == 0 {
			ui.prefs.SetActiveRegion(nil)
		} else {
			regions := catalog.Regions()
			ui.prefs.SetActiveRegion(&regions[ui.regionCursor-1])
		}
		ui.screen = screenMenu
	}
}

func (ui *appUI) drawRegions() {
	header := rl.NewRectangle(20, 20, float32(ui.width-40), 80)
	drawPanel(header, "Region Rules")
	rl.DrawText("Local rules override the default bin for some items.", int32(header.X)+18, int32(header.Y)+48, 18, colorDim)

	active := ui.prefs.ActiveRegion()
	options := ui.regionOptions()
	regions := catalog.Regions()

	listRect := rl.NewRectangle(float32(ui.width/2-260), 130, 520, float32(70+len(options)*44))
	drawPanel(listRect, "")
	y := int32(listRect.Y) + 30
	for i, name := range options {
		clr := colorText
		if i == ui.regionCursor {
			clr = colorAccent
			rl.DrawText(">", int32(listRect.X)+20, y, 22, colorAccent)
		}
		label := name
		if i > 0 {
			label = fmt.Sprintf("%s  (%d local rules)", name, len(regions[i-1].Overrides))
		}
		if (i == 0 && active == nil) || (i > 0 && active != nil && active.Name == name) {
			label += "  *"
		}
		rl.DrawText(label, int32(listRect.X)+44, y, 22, clr)
		y += 44
	}

	hint := rl.NewRectangle(20, listRect.Y+listRect.Height+16, float32(ui.width-40), 40)
	drawTextCentered("Enter to select, Esc for menu", hint, 8, 18, colorDim)
}

// wrapText splits text into lines that fit width at the given font size.
func wrapText(text string, width int, fontSize int32) []string {
	var lines []string
	line := ""
	word := ""
	flushWord := func() {
		if word == "" {
			return
		}
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if int(rl.MeasureText(candidate, fontSize)) > width && line != "" {
			lines = append(lines, line)
			line = word
		} else {
			line = candidate
		}
		word = ""
	}
	for _, r := range text {
		if r == ' ' {
			flushWord()
			continue
		}
		word += string(r)
	}
	flushWord()
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
