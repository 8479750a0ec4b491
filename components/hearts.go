package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Heart is one slot in the health display.
type Heart struct {
	X       float64 // pixels from the display origin
	Visible bool
	Scale   float64
	Pop     *gween.Tween // Non-nil while the heart is animating
}

// HeartDisplayData mirrors the tracked entity's health as a row of hearts.
type HeartDisplayData struct {
	Tracked Ref
	Size    float64
	Spacing float64
	Hearts  []Heart
	Dirty   bool // Visibility must be recomputed
}

var HeartDisplay = donburi.NewComponentType[HeartDisplayData]()
