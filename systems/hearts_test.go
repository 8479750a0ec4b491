package systems

import (
	"testing"

	"github.com/automoto/starfall/components"
	cfg "github.com/automoto/starfall/config"
	"github.com/automoto/starfall/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func visibleHearts(hud *components.HeartDisplayData) int {
	n := 0
	for _, h := range hud.Hearts {
		if h.Visible {
			n++
		}
	}
	return n
}

func TestHeartsLayout(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 5, 5)
	hud := components.HeartDisplay.Get(factory.CreateHeartDisplay(e, player))

	setDelta(e, 0)
	UpdateHearts(e)

	require.Len(t, hud.Hearts, cfg.Player.Health)
	for i, heart := range hud.Hearts {
		assert.InDelta(t, float64(i)*(cfg.UI.HeartSize+cfg.UI.HeartSpacing), heart.X, tolerance)
		assert.True(t, heart.Visible)
		assert.Nil(t, heart.Pop)
	}
}

func TestHeartsFollowHealthChanges(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 5, 5)
	hud := components.HeartDisplay.Get(factory.CreateHeartDisplay(e, player))
	setDelta(e, 0)
	UpdateHearts(e)

	ApplyDamage(player, 1, components.Ref{})
	UpdateHealth(e)
	ProcessEvents(e)
	UpdateHearts(e)

	assert.Equal(t, 2, visibleHearts(hud))
	lost := hud.Hearts[2]
	assert.False(t, lost.Visible)
	require.NotNil(t, lost.Pop)
	assert.InDelta(t, cfg.UI.HeartPopScale, lost.Scale, 1e-6)

	setDelta(e, 1)
	UpdateHearts(e)
	assert.Nil(t, hud.Hearts[2].Pop)
	assert.InDelta(t, 1, hud.Hearts[2].Scale, tolerance)
}

func TestHeartsRebuildOnMaxChange(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 5, 5)
	hud := components.HeartDisplay.Get(factory.CreateHeartDisplay(e, player))
	setDelta(e, 0)
	UpdateHearts(e)

	health := components.Health.Get(player)
	health.Max = 5
	health.Current = 4
	UpdateHearts(e)

	require.Len(t, hud.Hearts, 5)
	assert.Equal(t, 4, visibleHearts(hud))
	assert.InDelta(t, 4*(cfg.UI.HeartSize+cfg.UI.HeartSpacing), hud.Hearts[4].X, tolerance)
}

func TestHeartsEmptyWhenTrackedGone(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 5, 5)
	hud := components.HeartDisplay.Get(factory.CreateHeartDisplay(e, player))
	setDelta(e, 0)
	UpdateHearts(e)

	DestroyEntity(e, player, true)
	UpdateHearts(e)

	require.Len(t, hud.Hearts, cfg.Player.Health)
	assert.Equal(t, 0, visibleHearts(hud))
}
