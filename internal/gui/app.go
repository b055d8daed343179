//go:build cgo
// +build cgo

// Package gui is the raylib front-end. Screens own no game or tracker
// logic: they render core state and feed user input back into it, and
// the frame loop converts wall-clock time into round ticks.
package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/sortcycle/internal/catalog"
	"github.com/appengine-ltd/sortcycle/internal/game"
	"github.com/appengine-ltd/sortcycle/internal/prefs"
	"github.com/appengine-ltd/sortcycle/internal/storage"
	"github.com/appengine-ltd/sortcycle/internal/tracker"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
	Seed      int64
}

type App struct {
	cfg AppConfig
	kv  storage.KV
}

func NewApp(cfg AppConfig, kv storage.KV) *App {
	return &App{cfg: cfg, kv: kv}
}

type screen int

const (
	screenMenu screen = iota
	screenGame
	screenLookup
	screenTracker
	screenRegions
)

type menuAction int

const (
	actionPlay menuAction = iota
	actionLookup
	actionTracker
	actionRegions
	actionQuit
)

type menuItem struct {
	Label  string
	Action menuAction
}

var (
	colorBG       = rl.NewColor(10, 20, 14, 255)
	colorPanel    = rl.NewColor(18, 33, 24, 255)
	colorBorder   = rl.NewColor(46, 160, 94, 255)
	colorText     = rl.NewColor(210, 240, 216, 255)
	colorDim      = rl.NewColor(128, 168, 138, 255)
	colorAccent   = rl.NewColor(90, 230, 140, 255)
	colorWarn     = rl.NewColor(255, 198, 96, 255)
	colorRecycle  = rl.NewColor(96, 165, 250, 255)
	colorCompost  = rl.NewColor(110, 231, 140, 255)
	colorLandfill = rl.NewColor(156, 163, 175, 255)
)

type appUI struct {
	cfg AppConfig

	width  int32
	height int32
	quit   bool

	screen     screen
	menuCursor int
	status     string

	items   []catalog.Item
	tracker *tracker.Store
	prefs   *prefs.Store
	board   *game.Leaderboard

	round     *game.Round
	tickAccum time.Duration
	recorded  bool
	lastSort  string

	searchBuf    string
	lookupCursor int

	regionCursor int

	lastFrame time.Time
}

func (a *App) Run() error {
	ui := newAppUI(a.cfg, a.kv)
	return ui.Run()
}

func newAppUI(cfg AppConfig, kv storage.KV) *appUI {
	return &appUI{
		cfg:     cfg,
		width:   1100,
		height:  700,
		screen:  screenMenu,
		items:   catalog.Items(),
		tracker: tracker.NewStore(kv),
		prefs:   prefs.NewStore(kv),
		board:   game.NewLeaderboard(kv),
	}
}

func (ui *appUI) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "sortcycle")
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	ui.lastFrame = time.Now()

	for !ui.quit && !rl.WindowShouldClose() {
		now := time.Now()
		delta := now.Sub(ui.lastFrame)
		if delta < 0 {
			delta = 0
		}
		ui.lastFrame = now

		ui.width = int32(rl.GetScreenWidth())
		ui.height = int32(rl.GetScreenHeight())

		ui.update(delta)

		rl.BeginDrawing()
		rl.ClearBackground(colorBG)
		ui.draw()
		rl.EndDrawing()
	}

	rl.CloseWindow()
	return nil
}

func (ui *appUI) update(delta time.Duration) {
	switch ui.screen {
	case screenMenu:
		ui.updateMenu()
	case screenGame:
		ui.updateGame(delta)
	case screenLookup:
		ui.updateLookup()
	case screenTracker:
		ui.updateTracker()
	case screenRegions:
		ui.updateRegions()
	}
}

func (ui *appUI) draw() {
	switch ui.screen {
	case screenMenu:
		ui.drawMenu()
	case screenGame:
		ui.drawGame()
	case screenLookup:
		ui.drawLookup()
	case screenTracker:
		ui.drawTracker()
	case screenRegions:
		ui.drawRegions()
	}
}

func (ui *appUI) menuItems() []menuItem {
	return []menuItem{
		{Label: "Sorting Challenge", Action: actionPlay},
		{Label: "Help Me Sort", Action: actionLookup},
		{Label: "Consumption Tracker", Action: actionTracker},
		{Label: "Region Rules", Action: actionRegions},
		{Label: "Quit", Action: actionQuit},
	}
}

func (ui *appUI) updateMenu() {
	items := ui.menuItems()
	if rl.IsKeyPressed(rl.KeyDown) {
		ui.menuCursor = wrapIndex(ui.menuCursor+1, len(items))
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		ui.menuCursor = wrapIndex(ui.menuCursor-1, len(items))
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		switch items[ui.menuCursor].Action {
		case actionPlay:
			ui.round = nil
			ui.recorded = false
			ui.lastSort = ""
			ui.screen = screenGame
		case actionLookup:
			ui.searchBuf = ""
			ui.lookupCursor = 0
			ui.screen = screenLookup
		case actionTracker:
			ui.screen = screenTracker
		case actionRegions:
			ui.regionCursor = 0
			ui.screen = screenRegions
		case actionQuit:
			ui.quit = true
		}
	}
	if rl.IsKeyPressed(rl.KeyQ) {
		ui.quit = true
	}
}

func (ui *appUI) drawMenu() {
	titleRect := rl.NewRectangle(20, 20, float32(ui.width-40), 110)
	drawPanel(titleRect, "SORTCYCLE")
	drawTextCentered("Sort it right, track it daily", titleRect, 44, 18, colorDim)
	drawTextCentered(fmt.Sprintf("v%s (%s) %s", ui.cfg.Version, ui.cfg.Commit, ui.cfg.BuildDate), titleRect, 74, 16, colorDim)

	items := ui.menuItems()
	menuRect := rl.NewRectangle(float32(ui.width/2-230), 170, 460, float32(90+len(items)*64))
	drawPanel(menuRect, "Main Menu")
	for i, item := range items {
		y := int32(menuRect.Y) + 64 + int32(i*64)
		r := rl.NewRectangle(menuRect.X+32, float32(y), menuRect.Width-64, 48)
		if i == ui.menuCursor {
			rl.DrawRectangleRounded(r, 0.3, 8, rl.Fade(colorAccent, 0.2))
			rl.DrawRectangleRoundedLinesEx(r, 0.3, 8, 2, colorAccent)
			rl.DrawText(item.Label, int32(r.X)+16, y+12, 26, colorAccent)
		} else {
			rl.DrawRectangleRounded(r, 0.3, 8, rl.Fade(colorPanel, 0.7))
			rl.DrawRectangleRoundedLinesEx(r, 0.3, 8, 1.5, colorBorder)
			rl.DrawText(item.Label, int32(r.X)+16, y+12, 26, colorText)
		}
	}

	footer := "Up/Down to move, Enter to select, Q to quit"
	if region := ui.prefs.ActiveRegion(); region != nil {
		footer = "Region: " + region.Name + "  |  " + footer
	}
	hintRect := rl.NewRectangle(20, float32(ui.height-60), float32(ui.width-40), 40)
	drawTextCentered(footer, hintRect, 8, 18, colorDim)
}

func categoryColor(cat catalog.Category) rl.Color {
	switch cat {
	case catalog.CategoryRecycle:
		return colorRecycle
	case catalog.CategoryCompost:
		return colorCompost
	default:
		return colorLandfill
	}
}

func drawPanel(rect rl.Rectangle, title string) {
	rl.DrawRectangleRounded(rect, 0.06, 8, colorPanel)
	rl.DrawRectangleRoundedLinesEx(rect, 0.06, 8, 2, colorBorder)
	if title != "" {
		rl.DrawText(title, int32(rect.X)+18, int32(rect.Y)+12, 26, colorAccent)
	}
}

func drawTextCentered(text string, rect rl.Rectangle, yOffset int32, fontSize int32, clr rl.Color) {
	w := rl.MeasureText(text, fontSize)
	x := int32(rect.X) + (int32(rect.Width)-w)/2
	rl.DrawText(text, x, int32(rect.Y)+yOffset, fontSize, clr)
}

func wrapIndex(i int, size int) int {
	if size <= 0 {
		return 0
	}
	i %= size
	if i < 0 {
		i += size
	}
	return i
}
