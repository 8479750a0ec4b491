package components

// Team decides who a projectile can hurt.
type Team int

const (
	TeamPlayer Team = iota
	TeamEnemy
)

// Opponent returns the team this team's projectiles damage.
func (t Team) Opponent() Team {
	if t == TeamPlayer {
		return TeamEnemy
	}
	return TeamPlayer
}
