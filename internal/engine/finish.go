package engine

import "github.com/ericogr/vecna-cards/internal/game"

// IsFinished reports the winner, if any. An empty field only loses once
// at least one enemy turn has passed.
func IsFinished(s *State) game.Winner {
	if s.Enemy.HP <= 0 {
		return game.WinnerPlayer
	}
	if len(s.Heroes()) == 0 && s.Turn > 0 {
		return game.WinnerEnemy
	}
	return game.WinnerNone
}
