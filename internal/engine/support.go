package engine

import "github.com/ericogr/vecna-cards/internal/game"

// SupportResult describes what a support ability did.
type SupportResult struct {
	Ability      string `json:"ability"`
	Damage       int    `json:"dmg,omitempty"`
	EnemyHP      int    `json:"enemy_hp"`
	APSpent      int    `json:"ap_spent"`
	APGained     int    `json:"ap_gained,omitempty"`
	TargetSlot   int    `json:"target_slot"`
	Refreshed    string `json:"refreshed,omitempty"`
	Scheduled    int    `json:"scheduled,omitempty"`
	Stunned      bool   `json:"stunned,omitempty"`
	StunnedTurns int    `json:"stunned_turns,omitempty"`
}

// SupportAbility is the handler registered for one support hero id.
type SupportAbility struct {
	// Cost is the AP the ability spends.
	Cost int
	// Validate, when set, may reject the action before anything changes.
	Validate func(s *State, slot int, target Target) error
	Apply    func(s *State, slot int, target Target, res *SupportResult)
}

var supportAbilities = map[string]SupportAbility{
	game.HeroShalendra:  {Cost: 1, Apply: refreshVolo},
	game.HeroPiter:      {Cost: 1, Apply: drawAttention},
	game.HeroLumalia:    {Cost: 1, Apply: delayedStrike},
	game.HeroScout:      {Cost: 0, Apply: grantAP},
	game.HeroWillis:     {Cost: 1, Validate: requireHeroTarget, Apply: protectTarget},
	game.HeroBrer:       {Cost: 1, Apply: weakeningStrike},
	game.HeroBjurganmyr: {Cost: 1, Apply: burningStrike},
	game.HeroMiley:      {Cost: 1, Apply: burningStrike},
	game.HeroKiefer:     {Cost: 1, Apply: stunChance},
}

// RegisterSupportAbility adds or replaces the handler for a support hero id.
// Call it during program initialization; the registry is not synchronized.
func RegisterSupportAbility(id string, a SupportAbility) {
	supportAbilities[id] = a
}

func supportAbility(id string) (SupportAbility, bool) {
	a, ok := supportAbilities[id]
	return a, ok
}

func (s *State) heroSupport(slot int, h *game.Hero, target Target) (SupportResult, error) {
	id := h.Base.ID
	ab, ok := supportAbility(id)
	if !ok || ab.Apply == nil {
		return SupportResult{}, ErrNoSupportAction
	}
	if s.SupportUsed[id] {
		return SupportResult{}, ErrAlreadyUsedThisRound
	}
	if ab.Cost > s.AP {
		return SupportResult{}, ErrNoAP
	}
	if ab.Validate != nil {
		if err := ab.Validate(s, slot, target); err != nil {
			return SupportResult{}, err
		}
	}
	res := SupportResult{Ability: id, TargetSlot: -1, APSpent: ab.Cost}
	ab.Apply(s, slot, target, &res)
	s.AP -= ab.Cost
	if s.SupportUsed == nil {
		s.SupportUsed = map[string]bool{}
	}
	s.SupportUsed[id] = true
	res.EnemyHP = s.Enemy.HP
	return res, nil
}

func refreshVolo(s *State, _ int, _ Target, res *SupportResult) {
	delete(s.SummonUsed, game.SummonVolo)
	delete(s.SummonCooldowns, game.SummonVolo)
	res.Refreshed = game.SummonVolo
}

func drawAttention(s *State, slot int, _ Target, res *SupportResult) {
	h := s.Playfield[slot]
	h.Helped = true
	h.HelpSource = h.Base.ID
	res.TargetSlot = slot
}

func delayedStrike(s *State, slot int, _ Target, res *SupportResult) {
	s.schedule(game.Effect{Kind: game.EffectDelayedDamage, Amount: 6, Remaining: 1, Source: s.Playfield[slot].Base.ID})
	res.Scheduled = 1
}

func grantAP(s *State, _ int, _ Target, res *SupportResult) {
	s.AP++
	res.APGained = 1
}

func requireHeroTarget(s *State, _ int, target Target) error {
	ts, ok := target.Slot()
	if !ok || s.Hero(ts) == nil {
		return ErrTargetRequired
	}
	return nil
}

func protectTarget(s *State, slot int, target Target, res *SupportResult) {
	ts, _ := target.Slot()
	s.Playfield[ts].Protected = &game.Protection{Turns: 1, Source: s.Playfield[slot].Base.ID}
	res.TargetSlot = ts
}

func weakeningStrike(s *State, _ int, _ Target, res *SupportResult) {
	s.Enemy.HP -= 5
	s.Enemy.NextAttackHalved = true
	res.Damage = 5
}

// burningStrike hits for 8 now and 8 more after each of the next two enemy
// turns. Recasting stacks another schedule.
func burningStrike(s *State, slot int, _ Target, res *SupportResult) {
	s.Enemy.HP -= 8
	s.schedule(game.Effect{Kind: game.EffectDelayedDamage, Amount: 8, Remaining: 2, Source: s.Playfield[slot].Base.ID})
	res.Damage = 8
	res.Scheduled = 2
}

func stunChance(s *State, _ int, _ Target, res *SupportResult) {
	if s.rand().Int(4) != 0 {
		return
	}
	if s.Enemy.StunnedTurns < 3 {
		s.Enemy.StunnedTurns = 3
	}
	res.Stunned = true
	res.StunnedTurns = s.Enemy.StunnedTurns
}
