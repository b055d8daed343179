//go:build cgo
// +build cgo

package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/sortcycle/internal/catalog"
	"github.com/appengine-ltd/sortcycle/internal/game"
)

func (ui *appUI) startRound() {
	ui.round = game.NewRound(ui.cfg.Seed)
	ui.round.Start(ui.items)
	ui.tickAccum = 0
	ui.recorded = false
	ui.lastSort = ""
}

func (ui *appUI) resolver() game.Resolver {
	region := ui.prefs.ActiveRegion()
	return func(item catalog.Item) catalog.Category {
		return catalog.EffectiveCategory(item, region)
	}
}

func (ui *appUI) updateGame(delta time.Duration) {
	if rl.IsKeyPressed(rl.KeyEscape) {
		ui.screen = screenMenu
		return
	}

	if ui.round == nil || ui.round.State() == game.StateIdle {
		if rl.IsKeyPressed(rl.KeyEnter) {
			ui.startRound()
		}
		return
	}

	switch ui.round.State() {
	case game.StateRunning:
		ui.tickAccum += delta
		for ui.tickAccum >= time.Second {
			ui.tickAccum -= time.Second
			ui.round.Tick()
		}
		ui.handleSortKeys()
	case game.StateEnded:
		if !ui.recorded {
			ui.board.Record(ui.round.Score())
			ui.recorded = true
		}
		if rl.IsKeyPressed(rl.KeyEnter) {
			ui.startRound()
		}
	}
}

func (ui *appUI) handleSortKeys() {
	var pick catalog.Category
	switch {
	case rl.IsKeyPressed(rl.KeyOne) || rl.IsKeyPressed(rl.KeyR):
		pick = catalog.CategoryRecycle
	case rl.IsKeyPressed(rl.KeyTwo) || rl.IsKeyPressed(rl.KeyC):
		pick = catalog.CategoryCompost
	case rl.IsKeyPressed(rl.KeyThree) || rl.IsKeyPressed(rl.KeyT):
		pick = catalog.CategoryLandfill
	default:
		return
	}
	res, ok := ui.round.Submit(pick, ui.resolver())
	if !ok {
		return
	}
	if res.Matched {
		ui.lastSort = fmt.Sprintf("%s: correct!", res.Item.Name)
	} else {
		ui.lastSort = fmt.Sprintf("%s goes in %s", res.Item.Name, res.Correct.DisplayName())
	}
}

func (ui *appUI) drawGame() {
	header := rl.NewRectangle(20, 20, float32(ui.width-40), 80)
	drawPanel(header, "Sorting Challenge")

	if ui.round == nil || ui.round.State() == game.StateIdle {
		body := rl.NewRectangle(float32(ui.width/2-280), 180, 560, 260)
		drawPanel(body, "")
		drawTextCentered("Sort as many items as you can in 60 seconds.", body, 60, 22, colorText)
		drawTextCentered("1/R recycle   2/C compost   3/T trash", body, 110, 20, colorDim)
		drawTextCentered("Enter to start, Esc for menu", body, 170, 20, colorAccent)
		return
	}

	remaining := ui.round.Remaining()
	timerColor := colorAccent
	if remaining <= 10 {
		timerColor = colorWarn
	}
	rl.DrawText(fmt.Sprintf("Time %2ds", remaining), ui.width-220, 38, 30, timerColor)
	rl.DrawText(fmt.Sprintf("Score %d", ui.round.Score()), ui.width-420, 38, 30, colorText)

	if ui.round.State() == game.StateEnded {
		ui.drawGameOver()
		return
	}

	if item, ok := ui.round.Current(); ok {
		card := rl.NewRectangle(float32(ui.width/2-260), 150, 520, 230)
		drawPanel(card, "")
		drawTextCentered(item.Name, card, 50, 34, colorText)
		drawTextCentered("Where does this go?", card, 110, 20, colorDim)
		drawTextCentered("[1] Recycling   [2] Compost   [3] Trash", card, 165, 22, colorAccent)
	}

	if ui.lastSort != "" {
		status := rl.NewRectangle(float32(ui.width/2-260), 410, 520, 46)
		drawTextCentered(ui.lastSort, status, 12, 20, colorDim)
	}
}

func (ui *appUI) drawGameOver() {
	body := rl.NewRectangle(float32(ui.width/2-280), 150, 560, 400)
	drawPanel(body, "Time's Up")
	drawTextCentered(fmt.Sprintf("Final score: %d", ui.round.Score()), body, 60, 30, colorText)
	drawTextCentered(fmt.Sprintf("Best: %d", ui.board.Best()), body, 105, 22, colorDim)

	top := ui.board.Top()
	y := int32(body.Y) + 160
	rl.DrawText("Top scores", int32(body.X)+40, y, 22, colorAccent)
	y += 34
	for i, score := range top {
		rl.DrawText(fmt.Sprintf("%d. %d", i+1, score), int32(body.X)+40, y, 20, colorText)
		y += 28
	}

	drawTextCentered("Enter to play again, Esc for menu", body, int32(body.Height)-46, 20, colorAccent)
}
