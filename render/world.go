package render

import (
	"image/color"

	"github.com/automoto/starfall/components"
	cfg "github.com/automoto/starfall/config"
	"github.com/automoto/starfall/shared/behavior"
	"github.com/automoto/starfall/systems"
	"github.com/automoto/starfall/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	arenaColor      = color.RGBA{R: 60, G: 60, B: 90, A: 255}
	playerColor     = cfg.LightBlue
	playerShotColor = cfg.Yellow
	enemyShotColor  = cfg.LightRed
	hitboxColor     = color.RGBA{R: 0, G: 255, B: 0, A: 120}
)

// DrawArena outlines the playable area.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	session := systems.GetSession(e)
	if session.ArenaWidth <= 0 || session.ArenaHeight <= 0 {
		return
	}
	v := ViewFor(e)
	x, y := v.WorldToScreen(behavior.Vec3{Y: session.ArenaHeight})
	vector.StrokeRect(screen, x, y, v.Pixels(session.ArenaWidth), v.Pixels(session.ArenaHeight), 2, arenaColor, false)
}

// DrawShips draws the player and enemies as arrowheads along their facing.
func DrawShips(e *ecs.ECS, screen *ebiten.Image) {
	v := ViewFor(e)

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		drawShip(screen, v, components.Transform.Get(entry).Transform, hitboxSize(entry), enemy.TintColor)
	})
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		clr := playerColor
		if components.Health.Get(entry).InvulnRemaining > 0 && systems.GetClock(e).Tick/4%2 == 0 {
			clr = cfg.White
		}
		drawShip(screen, v, components.Transform.Get(entry).Transform, hitboxSize(entry), clr)
	})
}

func drawShip(screen *ebiten.Image, v View, tr behavior.Transform, size float64, clr color.Color) {
	facing := behavior.Facing(tr.Rotation)
	nose := tr.Position.Add(facing.Scale(size * 0.6))
	left := tr.Position.Add(behavior.RotateZ(facing, 140).Scale(size * 0.5))
	right := tr.Position.Add(behavior.RotateZ(facing, -140).Scale(size * 0.5))

	nx, ny := v.WorldToScreen(nose)
	lx, ly := v.WorldToScreen(left)
	rx, ry := v.WorldToScreen(right)
	cx, cy := v.WorldToScreen(tr.Position)

	vector.StrokeLine(screen, nx, ny, lx, ly, 2, clr, true)
	vector.StrokeLine(screen, lx, ly, cx, cy, 2, clr, true)
	vector.StrokeLine(screen, cx, cy, rx, ry, 2, clr, true)
	vector.StrokeLine(screen, rx, ry, nx, ny, 2, clr, true)
}

// DrawProjectiles draws every projectile as a small square.
func DrawProjectiles(e *ecs.ECS, screen *ebiten.Image) {
	v := ViewFor(e)
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		clr := enemyShotColor
		if components.Projectile.Get(entry).Team == components.TeamPlayer {
			clr = playerShotColor
		}
		size := v.Pixels(hitboxSize(entry))
		x, y := v.WorldToScreen(components.Transform.Get(entry).Position)
		vector.FillRect(screen, x-size/2, y-size/2, size, size, clr, false)
	})
}

// DrawHitboxes outlines every collision box when hitbox debugging is on.
func DrawHitboxes(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Hitboxes {
		return
	}
	v := ViewFor(e)
	components.Object.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		// Object Y is the bottom edge in world space
		x, y := v.WorldToScreen(behavior.Vec3{X: obj.X, Y: obj.Y + obj.H})
		vector.StrokeRect(screen, x, y, v.Pixels(obj.W), v.Pixels(obj.H), 1, hitboxColor, false)
	})
}

func hitboxSize(entry *donburi.Entry) float64 {
	if !entry.HasComponent(components.Object) {
		return 1
	}
	return components.Object.Get(entry).W
}
