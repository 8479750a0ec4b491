// Package render draws the world with ebitengine. It only reads components;
// all simulation happens in systems.
package render

import (
	cfg "github.com/automoto/starfall/config"
	"github.com/automoto/starfall/shared/behavior"
	"github.com/automoto/starfall/systems"
	"github.com/yohamta/donburi/ecs"
)

// Render layers, drawn in order.
const (
	LayerWorld ecs.LayerID = iota
	LayerHUD
)

// View maps world units (Y up) to screen pixels (Y down) around a camera.
type View struct {
	Camera        behavior.Vec3
	Width, Height float64 // Screen size in pixels
	PixelsPerUnit float64
}

// ViewFor returns the view through the world's camera.
func ViewFor(e *ecs.ECS) View {
	v := View{
		Width:         float64(cfg.C.Width),
		Height:        float64(cfg.C.Height),
		PixelsPerUnit: cfg.C.PixelsPerUnit,
	}
	if pos, ok := systems.CameraPosition(e); ok {
		v.Camera = pos
	}
	return v
}

func (v View) WorldToScreen(p behavior.Vec3) (float32, float32) {
	x := (p.X-v.Camera.X)*v.PixelsPerUnit + v.Width/2
	y := v.Height/2 - (p.Y-v.Camera.Y)*v.PixelsPerUnit
	return float32(x), float32(y)
}

// ScreenToWorld is the inverse of WorldToScreen on the z = 0 plane.
func (v View) ScreenToWorld(x, y float64) behavior.Vec3 {
	if v.PixelsPerUnit <= 0 {
		return behavior.Vec3{X: v.Camera.X, Y: v.Camera.Y}
	}
	return behavior.Vec3{
		X: (x-v.Width/2)/v.PixelsPerUnit + v.Camera.X,
		Y: (v.Height/2-y)/v.PixelsPerUnit + v.Camera.Y,
	}
}

// Pixels converts a world length to pixels.
func (v View) Pixels(units float64) float32 {
	return float32(units * v.PixelsPerUnit)
}
