package scenes

import (
	"github.com/automoto/starfall/components"
	"github.com/automoto/starfall/render"
	"github.com/automoto/starfall/shared/behavior"
	"github.com/hajimehoshi/ebiten/v2"
)

// Key bindings for the arena.
var (
	keysLeft  = []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}
	keysRight = []ebiten.Key{ebiten.KeyRight, ebiten.KeyD}
	keysUp    = []ebiten.Key{ebiten.KeyUp, ebiten.KeyW}
	keysDown  = []ebiten.Key{ebiten.KeyDown, ebiten.KeyS}
	keysFire  = []ebiten.Key{ebiten.KeySpace}
)

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func axis(neg, pos []ebiten.Key) float64 {
	v := 0.0
	if anyPressed(neg) {
		v--
	}
	if anyPressed(pos) {
		v++
	}
	return v
}

// readInput samples the keyboard and mouse. The cursor is converted to a
// world position through the current view.
func readInput(view render.View) components.InputData {
	cx, cy := ebiten.CursorPosition()
	return components.InputData{
		Move: behavior.Vec3{
			X: axis(keysLeft, keysRight),
			Y: axis(keysDown, keysUp),
		},
		Pointer: view.ScreenToWorld(float64(cx), float64(cy)),
		Fire:    anyPressed(keysFire) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}
