package engine

import "github.com/ericogr/vecna-cards/internal/game"

// housekeeping closes an enemy turn. It runs after attacks, stuns and
// misses alike.
func (tc *turnContext) housekeeping() {
	s := tc.s
	s.AP = s.APPerTurn

	for id, cd := range s.SummonCooldowns {
		if cd > 0 {
			s.SummonCooldowns[id] = cd - 1
		}
	}

	for _, h := range s.Playfield {
		if h == nil {
			continue
		}
		h.Defending = false
		h.Helped = false
		h.HelpSource = ""
	}

	tc.firePending(game.TriggerAfterEnemy)

	for _, h := range s.Playfield {
		if h == nil || h.Protected == nil {
			continue
		}
		h.Protected.Turns--
		if h.Protected.Turns <= 0 {
			h.Protected = nil
		}
	}

	s.SupportUsed = map[string]bool{}
}

// firePending applies every pending effect with the given trigger, in
// scheduling order. Repeating effects are kept with one fewer firing left.
func (tc *turnContext) firePending(trigger game.Trigger) {
	s := tc.s
	kept := s.PendingEffects[:0]
	for _, e := range s.PendingEffects {
		if e.Trigger != trigger {
			kept = append(kept, e)
			continue
		}
		if e.Kind == game.EffectDelayedDamage {
			s.Enemy.HP -= e.Amount
			if s.Enemy.HP < 0 {
				s.Enemy.HP = 0
			}
			tc.emit(game.Event{
				Type:    game.EventEnemyDamage,
				Slot:    -1,
				Dmg:     e.Amount,
				EnemyHP: s.Enemy.HP,
				Source:  e.Source,
			})
		}
		if e.Remaining > 1 {
			e.Remaining--
			kept = append(kept, e)
		}
	}
	s.PendingEffects = kept
}
