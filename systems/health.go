package systems

import (
	"github.com/automoto/starfall/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHealth consumes queued damage. Entities that reach zero health die:
// enemies publish EnemyDefeated before removal, the player ends the game.
func UpdateHealth(ecs *ecs.ECS) {
	dt := GetClock(ecs).Delta

	components.Health.Each(ecs.World, func(e *donburi.Entry) {
		health := components.Health.Get(e)
		if health.InvulnRemaining > 0 {
			health.InvulnRemaining -= dt
			if health.InvulnRemaining < 0 {
				health.InvulnRemaining = 0
			}
		}
	})

	var damaged []*donburi.Entry
	components.DamageEvent.Each(ecs.World, func(e *donburi.Entry) {
		damaged = append(damaged, e)
	})

	for _, e := range damaged {
		damage := *components.DamageEvent.Get(e)
		e.RemoveComponent(components.DamageEvent)

		if !e.HasComponent(components.Health) {
			continue
		}
		health := components.Health.Get(e)
		if health.InvulnRemaining > 0 || health.Current <= 0 {
			continue
		}

		health.Current -= damage.Amount
		if health.Current < 0 {
			health.Current = 0
		}
		health.InvulnRemaining = health.InvulnSeconds

		components.HealthChangedEvent.Publish(ecs.World, components.HealthChanged{
			Entity:  e.Entity(),
			Current: health.Current,
			Max:     health.Max,
		})

		if health.Current == 0 {
			kill(ecs, e)
		}
	}
}

// kill removes a dead entity. An enemy only counts toward the score when it
// dies before the game is over, even if the player falls later in the same tick.
func kill(ecs *ecs.ECS, e *donburi.Entry) {
	session := GetSession(ecs)
	if e.HasComponent(components.Enemy) && !session.GameOver {
		enemy := components.Enemy.Get(e)
		components.EnemyDefeatedEvent.Publish(ecs.World, components.EnemyDefeated{
			Entity:     e.Entity(),
			TypeName:   enemy.TypeName,
			ScoreValue: enemy.ScoreValue,
		})
	}
	if e.HasComponent(components.Player) {
		session.GameOver = true
	}
	DestroyEntity(ecs, e, true)
}

func onEnemyDefeated(w donburi.World, event components.EnemyDefeated) {
	entry, ok := components.Session.First(w)
	if !ok {
		return
	}
	session := components.Session.Get(entry)
	session.Score += event.ScoreValue
	session.EnemiesDefeated++
}
