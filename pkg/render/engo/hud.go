// pkg/render/engo/hud.go
package engo

import (
	"fmt"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-asteroids/pkg/entity"
)

const (
	hudFontSize  = 20
	hudMargin    = 10
	hudZIndex    = 1e6
	bannerSpread = 14 // vertical gap between the banner lines
)

// hudText is a text entity owned by the HUD
type hudText struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent

	text string
}

// HUDSystem manages the heads-up display: the running score and, once the
// game is over, a banner with the final score.
type HUDSystem struct {
	font *common.Font

	score  *hudText
	banner *hudText
	prompt *hudText

	board entity.Scoreboard
	dirty bool
}

// NewHUDSystem creates a new HUD system that draws with font. Its text
// entities are added to renderSystem when one is given.
func NewHUDSystem(font *common.Font, renderSystem *common.RenderSystem) *HUDSystem {
	hud := &HUDSystem{
		font:   font,
		score:  newHUDText(),
		banner: newHUDText(),
		prompt: newHUDText(),
		dirty:  true,
	}
	if renderSystem != nil {
		for _, t := range hud.texts() {
			renderSystem.Add(&t.BasicEntity, &t.RenderComponent, &t.SpaceComponent)
		}
	}
	return hud
}

func newHUDText() *hudText {
	t := &hudText{BasicEntity: ecs.NewBasic()}
	t.Color = color.White
	t.SetZIndex(hudZIndex)
	t.SetShader(common.HUDShader)
	return t
}

func (hud *HUDSystem) texts() []*hudText {
	return []*hudText{hud.score, hud.banner, hud.prompt}
}

// Remove satisfies the ecs.System interface
func (hud *HUDSystem) Remove(basic ecs.BasicEntity) {}

// Update lays out the HUD text when the scoreboard changed.
func (hud *HUDSystem) Update(dt float32) {
	if !hud.dirty {
		return
	}
	hud.dirty = false

	hud.layout(engo.GameWidth(), engo.GameHeight())
	for _, t := range hud.texts() {
		t.Drawable = common.Text{Font: hud.font, Text: t.text}
	}
}

// layout sets the text and placement of every HUD line for a screen size.
func (hud *HUDSystem) layout(width, height float32) {
	hud.score.text = fmt.Sprintf("Score: %d", hud.board.Score)
	hud.score.Position = engo.Point{X: hudMargin, Y: hudMargin}

	hud.banner.Hidden = !hud.board.GameOver
	hud.prompt.Hidden = !hud.board.GameOver
	if !hud.board.GameOver {
		return
	}

	hud.banner.text = fmt.Sprintf("GAME OVER  Final score: %d", hud.board.FinalScore)
	hud.prompt.text = "Press R to restart"
	hud.banner.Position = centredText(hud.banner.text, width, height/2-bannerSpread)
	hud.prompt.Position = centredText(hud.prompt.text, width, height/2+bannerSpread)
}

// centredText approximates the position that centres text horizontally
// using the monospace advance of the HUD font.
func centredText(text string, width, y float32) engo.Point {
	advance := float32(hudFontSize) * 0.6
	return engo.Point{X: (width - advance*float32(len(text))) / 2, Y: y}
}

// SetScoreboard records the scoreboard to show from the next Update.
func (hud *HUDSystem) SetScoreboard(board entity.Scoreboard) {
	if board == hud.board {
		return
	}
	hud.board = board
	hud.dirty = true
}

// Scoreboard returns the scoreboard currently shown.
func (hud *HUDSystem) Scoreboard() entity.Scoreboard {
	return hud.board
}
