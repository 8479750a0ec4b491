package render

import (
	"fmt"

	"github.com/automoto/starfall/components"
	cfg "github.com/automoto/starfall/config"
	"github.com/automoto/starfall/fonts"
	"github.com/automoto/starfall/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawHearts draws each visible heart, scaled by its pop animation.
func DrawHearts(e *ecs.ECS, screen *ebiten.Image) {
	components.HeartDisplay.Each(e.World, func(entry *donburi.Entry) {
		hud := components.HeartDisplay.Get(entry)
		for _, heart := range hud.Hearts {
			if !heart.Visible {
				continue
			}
			size := hud.Size * heart.Scale
			cx := cfg.UI.HeartMargin + heart.X + hud.Size/2
			cy := cfg.UI.HeartMargin + hud.Size/2
			vector.FillRect(screen,
				float32(cx-size/2), float32(cy-size/2),
				float32(size), float32(size),
				cfg.UI.HeartColor, false)
		}
	})
}

// DrawScore draws the score in the top-right corner.
func DrawScore(e *ecs.ECS, screen *ebiten.Image) {
	session := systems.GetSession(e)
	face := fonts.Regular.Get()
	label := fmt.Sprintf("SCORE %d", session.Score)
	bounds := text.BoundString(face, label)
	x := cfg.C.Width - bounds.Dx() - int(cfg.UI.HeartMargin)
	text.Draw(screen, label, face, x, int(cfg.UI.HeartMargin)+bounds.Dy(), cfg.UI.ScoreColor)
}

// DrawGameOver overlays the game over banner once the player is defeated.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	session := systems.GetSession(e)
	if !session.GameOver {
		return
	}

	width := float32(cfg.C.Width)
	height := float32(cfg.C.Height)
	vector.FillRect(screen, 0, 0, width, height, cfg.BlackOverlay, false)

	face := fonts.Title.Get()
	title := "GAME OVER"
	bounds := text.BoundString(face, title)
	text.Draw(screen, title, face, (cfg.C.Width-bounds.Dx())/2, cfg.C.Height/2, cfg.Red)

	small := fonts.Regular.Get()
	detail := fmt.Sprintf("Score %d - %d defeated - press R to restart", session.Score, session.EnemiesDefeated)
	bounds = text.BoundString(small, detail)
	text.Draw(screen, detail, small, (cfg.C.Width-bounds.Dx())/2, cfg.C.Height/2+40, cfg.White)
}
