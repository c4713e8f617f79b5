package game

import (
	"regexp"
	"strconv"
	"strings"
)

// ActionType is the kind of action a hero card performs when played.
type ActionType string

const (
	ActionTypeNone    ActionType = ""
	ActionTypeDPS     ActionType = "dps"
	ActionTypeAttack  ActionType = "attack"
	ActionTypeHealer  ActionType = "healer"
	ActionTypeHeal    ActionType = "heal"
	ActionTypeSupport ActionType = "support"
)

// Normalize folds the accepted aliases onto dps, healer and support.
// Unknown values are returned unchanged (lower-cased).
func (t ActionType) Normalize() ActionType {
	switch ActionType(strings.ToLower(strings.TrimSpace(string(t)))) {
	case ActionTypeDPS, ActionTypeAttack:
		return ActionTypeDPS
	case ActionTypeHealer, ActionTypeHeal:
		return ActionTypeHealer
	case ActionTypeSupport:
		return ActionTypeSupport
	case ActionTypeNone:
		return ActionTypeNone
	}
	return ActionType(strings.ToLower(strings.TrimSpace(string(t))))
}

// ActionTargetParty marks healers whose heal always covers the whole party.
const ActionTargetParty = "party"

// CardDefinition is a hero card as loaded from data. It is treated as
// immutable by the engine; copies are taken whenever a card changes hands.
type CardDefinition struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	HP      int    `json:"hp" yaml:"hp"`
	// MaxHP is only set on cards returned to the hand in a damaged state.
	// Zero means HP is the maximum.
	MaxHP        int        `json:"max_hp,omitempty" yaml:"max_hp,omitempty"`
	Ability      string     `json:"ability" yaml:"ability"`
	Magnitude    *int       `json:"magnitude,omitempty" yaml:"magnitude,omitempty"`
	ActionType   ActionType `json:"action_type,omitempty" yaml:"action_type,omitempty"`
	ActionTarget string     `json:"action_target,omitempty" yaml:"action_target,omitempty"`
	SlotCost     int        `json:"slot_cost" yaml:"slot_cost"`
	Tier         int        `json:"tier" yaml:"tier"`
	Starter      bool       `json:"starter" yaml:"starter"`
}

// MaxHitPoints returns the hp ceiling used when healing a hero built from c.
func (c CardDefinition) MaxHitPoints() int {
	if c.MaxHP > 0 {
		return c.MaxHP
	}
	return c.HP
}

// AbilityMagnitude returns the explicit magnitude when configured and
// otherwise falls back to the last integer in the ability text.
func (c CardDefinition) AbilityMagnitude() int {
	if c.Magnitude != nil {
		return *c.Magnitude
	}
	return ParseMagnitude(c.Ability)
}

// DisplayName returns the card name, or its id when the name is empty.
func (c CardDefinition) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.ID
}

// SummonDefinition describes a summon that can be cast during an encounter.
type SummonDefinition struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Ability     string `json:"ability" yaml:"ability"`
	Magnitude   *int   `json:"magnitude,omitempty" yaml:"magnitude,omitempty"`
	Restriction string `json:"restriction,omitempty" yaml:"restriction,omitempty"`
	Cooldown    int    `json:"cooldown,omitempty" yaml:"cooldown,omitempty"`
}

// AbilityMagnitude mirrors CardDefinition.AbilityMagnitude for summons.
func (s SummonDefinition) AbilityMagnitude() int {
	if s.Magnitude != nil {
		return *s.Magnitude
	}
	return ParseMagnitude(s.Ability)
}

func (s SummonDefinition) restriction() string { return strings.ToLower(s.Restriction) }

// SingleUse reports whether the restriction limits the summon to one cast.
func (s SummonDefinition) SingleUse() bool { return strings.Contains(s.restriction(), "once") }

// OncePerEncounter reports a "once per encounter" restriction.
func (s SummonDefinition) OncePerEncounter() bool {
	return strings.Contains(s.restriction(), "once per encounter")
}

// OncePerRun reports a "once per run" restriction. Enforcing it across
// encounters is up to the caller.
func (s SummonDefinition) OncePerRun() bool { return strings.Contains(s.restriction(), "once per run") }

// AttackType distinguishes single-target from area attacks.
type AttackType string

const (
	AttackSingle AttackType = "single"
	AttackAOE    AttackType = "aoe"
)

// EnemyAttack is one entry of an enemy's attack table.
type EnemyAttack struct {
	Name string     `json:"name" yaml:"name"`
	Type AttackType `json:"type" yaml:"type"`
	// Dmg is optional; nil falls back to the enemy's flat attack value.
	Dmg *int `json:"dmg,omitempty" yaml:"dmg,omitempty"`
}

// EnemyDefinition is an enemy as loaded from data.
type EnemyDefinition struct {
	ID       string        `json:"id" yaml:"id"`
	Name     string        `json:"name" yaml:"name"`
	HP       int           `json:"hp" yaml:"hp"`
	MaxHP    int           `json:"max_hp,omitempty" yaml:"max_hp,omitempty"`
	Attack   int           `json:"attack,omitempty" yaml:"attack,omitempty"`
	Attacks  []EnemyAttack `json:"attacks,omitempty" yaml:"attacks,omitempty"`
	IPReward int           `json:"ip_reward,omitempty" yaml:"ip_reward,omitempty"`
}

// DisplayName returns the enemy name, or its id when the name is empty.
func (e EnemyDefinition) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}
	return e.ID
}

var magnitudePattern = regexp.MustCompile(`\d+`)

// ParseMagnitude extracts the last integer literal from free ability text,
// so "Cure Wounds (4th level): Restore 5 HP" yields 5. It returns 0 when the
// text holds no digits.
func ParseMagnitude(text string) int {
	all := magnitudePattern.FindAllString(text, -1)
	if len(all) == 0 {
		return 0
	}
	n, err := strconv.Atoi(all[len(all)-1])
	if err != nil {
		return 0
	}
	return n
}
