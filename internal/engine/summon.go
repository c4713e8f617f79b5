package engine

import "github.com/ericogr/vecna-cards/internal/game"

// SummonResult describes what a summon did.
type SummonResult struct {
	ID            string       `json:"id"`
	Heals         []HealResult `json:"heals,omitempty"`
	TempHPGranted int          `json:"temp_hp_granted,omitempty"`
	TargetSlot    int          `json:"target_slot"`
	Multiplier    float64      `json:"multiplier,omitempty"`
	Damage        int          `json:"dmg,omitempty"`
	EnemyHP       int          `json:"enemy_hp"`
	StunnedTurns  int          `json:"stunned_turns,omitempty"`
	Cooldown      int          `json:"cooldown,omitempty"`
}

// SummonEffect applies one summon. It must validate before mutating so a
// returned error leaves the state untouched.
type SummonEffect func(s *State, def game.SummonDefinition, target Target, res *SummonResult) error

var summonEffects = map[string]SummonEffect{
	game.SummonGaron:      mendParty,
	game.SummonVolo:       empowerNextAttack,
	game.SummonBlackrazor: grantTempHP,
	game.SummonWhelm:      stunEnemy,
	game.SummonWave:       crashingWave,
}

// RegisterSummonEffect adds or replaces the effect for a summon id. Call it
// during program initialization; the registry is not synchronized.
func RegisterSummonEffect(id string, fn SummonEffect) {
	summonEffects[id] = fn
}

// UseSummon casts def. Summons cost no AP but are limited by their
// restriction text and cooldown. Unknown ids heal the party by the
// summon's magnitude, when it has one.
func UseSummon(s *State, def game.SummonDefinition, target Target) (SummonResult, error) {
	if def.ID == "" {
		return SummonResult{}, ErrInvalid
	}
	id := def.ID
	if def.SingleUse() && s.SummonUsed[id] {
		return SummonResult{}, ErrAlreadyUsed
	}
	if s.SummonCooldowns[id] > 0 {
		return SummonResult{}, ErrOnCooldown
	}
	effect, ok := summonEffects[id]
	if !ok {
		effect = magnitudeHeal
	}
	res := SummonResult{ID: id, TargetSlot: -1}
	if err := effect(s, def, target, &res); err != nil {
		return SummonResult{}, err
	}

	if s.SummonUsed == nil {
		s.SummonUsed = map[string]bool{}
	}
	if s.SummonCooldowns == nil {
		s.SummonCooldowns = map[string]int{}
	}
	switch {
	case def.OncePerEncounter() || def.OncePerRun():
		s.SummonUsed[id] = true
		s.SummonCooldowns[id] = exhaustedCooldown
	case def.Cooldown > 0:
		s.SummonCooldowns[id] = def.Cooldown
	}
	res.Cooldown = s.SummonCooldowns[id]
	res.EnemyHP = s.Enemy.HP
	return res, nil
}

func mendParty(s *State, _ game.SummonDefinition, _ Target, res *SummonResult) error {
	res.Heals = s.healParty(1)
	return nil
}

func empowerNextAttack(s *State, _ game.SummonDefinition, _ Target, res *SummonResult) error {
	s.NextAttackMultiplier = 2
	res.Multiplier = 2
	return nil
}

// grantTempHP gives 30 temp hp to the chosen hero, or to the living hero
// with the lowest current hp (first slot wins ties).
func grantTempHP(s *State, _ game.SummonDefinition, target Target, res *SummonResult) error {
	occupied := s.Heroes()
	if len(occupied) == 0 {
		return ErrNoTarget
	}
	dst := -1
	if ts, ok := target.Slot(); ok && s.Hero(ts) != nil {
		dst = ts
	} else {
		for _, i := range occupied {
			if dst == -1 || s.Playfield[i].HP < s.Playfield[dst].HP {
				dst = i
			}
		}
	}
	s.Playfield[dst].TempHP += 30
	res.TempHPGranted = 30
	res.TargetSlot = dst
	return nil
}

func stunEnemy(s *State, _ game.SummonDefinition, _ Target, res *SummonResult) error {
	if s.Enemy.StunnedTurns < 2 {
		s.Enemy.StunnedTurns = 2
	}
	res.StunnedTurns = s.Enemy.StunnedTurns
	return nil
}

func crashingWave(s *State, _ game.SummonDefinition, _ Target, res *SummonResult) error {
	reduce := s.Enemy.MaxHP / 2
	before := s.Enemy.HP
	s.Enemy.HP -= reduce
	if s.Enemy.HP < 0 {
		s.Enemy.HP = 0
	}
	res.Damage = before - s.Enemy.HP
	return nil
}

func magnitudeHeal(s *State, def game.SummonDefinition, _ Target, res *SummonResult) error {
	if v := def.AbilityMagnitude(); v > 0 {
		res.Heals = s.healParty(v)
	}
	return nil
}
