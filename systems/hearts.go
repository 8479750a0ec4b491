package systems

import (
	"github.com/automoto/starfall/components"
	cfg "github.com/automoto/starfall/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHearts keeps each heart display in step with its tracked entity's
// health. The row is rebuilt when max health changes; hearts that appear or
// disappear play a short pop.
func UpdateHearts(ecs *ecs.ECS) {
	dt := float32(GetClock(ecs).Delta)

	components.HeartDisplay.Each(ecs.World, func(e *donburi.Entry) {
		hud := components.HeartDisplay.Get(e)

		current, maxHealth := 0, len(hud.Hearts)
		if tracked, ok := hud.Tracked.Resolve(ecs.World); ok && tracked.HasComponent(components.Health) {
			health := components.Health.Get(tracked)
			current, maxHealth = health.Current, health.Max
		} else {
			hud.Dirty = true
		}

		if maxHealth != len(hud.Hearts) {
			rebuildHearts(hud, maxHealth, current)
		} else if hud.Dirty {
			refreshHearts(hud, current)
		}
		hud.Dirty = false

		for i := range hud.Hearts {
			animateHeart(&hud.Hearts[i], dt)
		}
	})
}

func rebuildHearts(hud *components.HeartDisplayData, count, current int) {
	if count < 0 {
		count = 0
	}
	hud.Hearts = make([]components.Heart, count)
	for i := range hud.Hearts {
		hud.Hearts[i] = components.Heart{
			X:       float64(i) * (hud.Size + hud.Spacing),
			Visible: i < current,
			Scale:   1,
		}
	}
}

func refreshHearts(hud *components.HeartDisplayData, current int) {
	for i := range hud.Hearts {
		heart := &hud.Hearts[i]
		visible := i < current
		if heart.Visible == visible {
			continue
		}
		heart.Visible = visible
		heart.Scale = cfg.UI.HeartPopScale
		heart.Pop = gween.New(float32(cfg.UI.HeartPopScale), 1, cfg.UI.HeartPopDuration, ease.OutQuad)
	}
}

func animateHeart(heart *components.Heart, dt float32) {
	if heart.Pop == nil {
		return
	}
	scale, finished := heart.Pop.Update(dt)
	heart.Scale = float64(scale)
	if finished {
		heart.Pop = nil
		heart.Scale = 1
	}
}

func onHealthChanged(w donburi.World, event components.HealthChanged) {
	components.HeartDisplay.Each(w, func(e *donburi.Entry) {
		hud := components.HeartDisplay.Get(e)
		if hud.Tracked.Set && hud.Tracked.Entity == event.Entity {
			hud.Dirty = true
		}
	})
}
