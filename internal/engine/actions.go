package engine

import (
	"math"
	"regexp"
	"strings"

	"github.com/ericogr/vecna-cards/internal/game"
)

var (
	healTextPattern  = regexp.MustCompile(`(?i)heal|cure|restore|regen`)
	partyTextPattern = regexp.MustCompile(`(?i)\b(all|party|everyone|entire)\b`)
)

type targetKind int

const (
	targetNone targetKind = iota
	targetSlot
	targetParty
)

// Target is the optional target of a hero action or summon.
type Target struct {
	kind targetKind
	slot int
}

// Untargeted is the zero Target.
var Untargeted = Target{}

// AtSlot targets the hero in slot.
func AtSlot(slot int) Target { return Target{kind: targetSlot, slot: slot} }

// WholeParty targets every living hero.
func WholeParty() Target { return Target{kind: targetParty} }

// Slot returns the targeted slot, if the target is a slot.
func (t Target) Slot() (int, bool) { return t.slot, t.kind == targetSlot }

func (t Target) IsParty() bool { return t.kind == targetParty }

// AttackResult is the outcome of a hero attack on the enemy.
type AttackResult struct {
	Slot       int     `json:"slot"`
	Damage     int     `json:"dmg"`
	EnemyHP    int     `json:"enemy_hp"`
	Multiplier float64 `json:"multiplier"`
}

// HealResult is the hp restored to one hero.
type HealResult struct {
	Slot   int `json:"slot"`
	Healed int `json:"healed"`
	HP     int `json:"hp"`
}

// ActionResult is the outcome of PlayHeroAction. Exactly one of Attack,
// Heals or Support is populated, matching Type.
type ActionResult struct {
	Type    game.ActionType `json:"type"`
	Attack  *AttackResult   `json:"attack,omitempty"`
	Heals   []HealResult    `json:"heals,omitempty"`
	Support *SupportResult  `json:"support,omitempty"`
}

// PlayHeroAttack deals the hero's ability magnitude, scaled by any pending
// multiplier, to the enemy. Enemy hp is not clamped here.
func PlayHeroAttack(s *State, slot int) (AttackResult, error) {
	h, err := s.actor(slot)
	if err != nil {
		return AttackResult{}, err
	}
	return s.heroAttack(slot, h), nil
}

func (s *State) heroAttack(slot int, h *game.Hero) AttackResult {
	mult := s.NextAttackMultiplier
	if mult == 0 {
		mult = 1
	}
	dmg := int(math.Floor(float64(h.Base.AbilityMagnitude()) * mult))
	s.Enemy.HP -= dmg
	if mult != 1 {
		s.NextAttackMultiplier = 1
	}
	s.AP--
	return AttackResult{Slot: slot, Damage: dmg, EnemyHP: s.Enemy.HP, Multiplier: mult}
}

// ResolveActionType decides how a card acts. Registered support ids always
// act as support; otherwise the explicit action type wins, then the ability
// text is matched for healing keywords, defaulting to dps.
func ResolveActionType(card game.CardDefinition) game.ActionType {
	if _, ok := supportAbility(card.ID); ok {
		return game.ActionTypeSupport
	}
	if t := card.ActionType.Normalize(); t != game.ActionTypeNone {
		return t
	}
	if healTextPattern.MatchString(card.Ability) {
		return game.ActionTypeHealer
	}
	return game.ActionTypeDPS
}

// PlayHeroAction runs the hero's card action: an attack, a heal or a
// support ability.
func PlayHeroAction(s *State, slot int, target Target) (ActionResult, error) {
	h, err := s.actor(slot)
	if err != nil {
		return ActionResult{}, err
	}
	kind := ResolveActionType(h.Base)
	switch kind {
	case game.ActionTypeDPS:
		res := s.heroAttack(slot, h)
		return ActionResult{Type: kind, Attack: &res}, nil
	case game.ActionTypeHealer:
		heals, err := s.heroHeal(slot, h, target)
		if err != nil {
			return ActionResult{}, err
		}
		return ActionResult{Type: kind, Heals: heals}, nil
	case game.ActionTypeSupport:
		res, err := s.heroSupport(slot, h, target)
		if err != nil {
			return ActionResult{}, err
		}
		return ActionResult{Type: kind, Support: &res}, nil
	}
	return ActionResult{}, ErrUnsupportedAction
}

func (s *State) heroHeal(slot int, h *game.Hero, target Target) ([]HealResult, error) {
	amount := h.Base.AbilityMagnitude()
	if amount < 1 {
		amount = 1
	}
	party := target.IsParty() ||
		strings.EqualFold(h.Base.ActionTarget, game.ActionTargetParty) ||
		partyTextPattern.MatchString(h.Base.Ability)
	if party {
		heals := s.healParty(amount)
		s.AP--
		return heals, nil
	}
	dst, dstSlot := h, slot
	if ts, ok := target.Slot(); ok {
		th := s.Hero(ts)
		if th == nil {
			return nil, ErrTargetRequired
		}
		dst, dstSlot = th, ts
	}
	res := healHero(dstSlot, dst, amount)
	s.AP--
	return []HealResult{res}, nil
}

func (s *State) healParty(amount int) []HealResult {
	out := make([]HealResult, 0, SlotCount)
	for _, i := range s.Heroes() {
		out = append(out, healHero(i, s.Playfield[i], amount))
	}
	return out
}

func healHero(slot int, h *game.Hero, amount int) HealResult {
	before := h.HP
	healed := h.HP + amount
	if ceiling := h.Base.MaxHitPoints(); healed > ceiling {
		healed = ceiling
	}
	if healed > h.HP {
		h.HP = healed
	}
	return HealResult{Slot: slot, Healed: h.HP - before, HP: h.HP}
}

// DefendHero halves the damage the hero takes during the next enemy turn.
func DefendHero(s *State, slot int) error {
	h, err := s.actor(slot)
	if err != nil {
		return err
	}
	h.Defending = true
	s.AP--
	return nil
}
