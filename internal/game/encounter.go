package game

// Protection negates all incoming damage while Turns > 0.
type Protection struct {
	Turns  int    `json:"turns"`
	Source string `json:"source,omitempty"`
}

// Hero is a card placed on the playfield. The slot that holds it owns it.
type Hero struct {
	CardID string         `json:"card_id"`
	HP     int            `json:"hp"`
	TempHP int            `json:"temp_hp"`
	Base   CardDefinition `json:"base"`

	// Defending halves incoming damage until the end of the next enemy turn.
	Defending bool `json:"defending"`
	// Helped forces the next single-target enemy attack onto this hero.
	Helped     bool        `json:"helped"`
	HelpSource string      `json:"help_source,omitempty"`
	Protected  *Protection `json:"protected,omitempty"`
}

// NewHero builds a full-health hero from a card.
func NewHero(card CardDefinition) *Hero {
	return &Hero{CardID: card.ID, HP: card.HP, Base: card}
}

// IsProtected reports whether the hero currently ignores damage.
func (h *Hero) IsProtected() bool { return h.Protected != nil && h.Protected.Turns > 0 }

// Name returns the display name of the hero's card.
func (h *Hero) Name() string { return h.Base.DisplayName() }

// Enemy is the per-encounter working copy of an EnemyDefinition.
type Enemy struct {
	Definition EnemyDefinition `json:"definition"`
	HP         int             `json:"hp"`
	MaxHP      int             `json:"max_hp"`
	// StunnedTurns counts enemy turns that will be skipped.
	StunnedTurns int `json:"stunned_turns"`
	// NextAttackHalved halves (rounding up) the next resolved attack.
	NextAttackHalved bool `json:"next_attack_halved"`
}

// NewEnemy clones def into a fresh working copy.
func NewEnemy(def EnemyDefinition) *Enemy {
	def.Attacks = append([]EnemyAttack(nil), def.Attacks...)
	maxHP := def.MaxHP
	if maxHP <= 0 {
		maxHP = def.HP
	}
	return &Enemy{Definition: def, HP: def.HP, MaxHP: maxHP}
}

// Name returns the enemy display name.
func (e *Enemy) Name() string { return e.Definition.DisplayName() }

// EffectKind identifies what a pending effect does when it fires.
type EffectKind string

const EffectDelayedDamage EffectKind = "delayedDamage"

// Trigger identifies when a pending effect fires.
type Trigger string

const TriggerAfterEnemy Trigger = "afterEnemy"

// Effect is a scheduled state change processed at enemy-turn boundaries.
type Effect struct {
	Kind    EffectKind `json:"kind"`
	Trigger Trigger    `json:"trigger"`
	Amount  int        `json:"amount"`
	// Remaining is the number of times the effect still fires.
	Remaining int    `json:"remaining"`
	Source    string `json:"source,omitempty"`
}

// EventType tags records emitted by an enemy turn.
type EventType string

const (
	EventHit         EventType = "hit"
	EventStunned     EventType = "stunned"
	EventEnemyDamage EventType = "enemyDamage"
)

// Event is one structured record of what happened during an enemy turn.
type Event struct {
	Type EventType `json:"type"`

	Slot        int        `json:"slot"`
	Dmg         int        `json:"dmg"`
	TempTaken   int        `json:"temp_taken"`
	HPTaken     int        `json:"hp_taken"`
	RemainingHP int        `json:"remaining_hp"`
	Died        bool       `json:"died"`
	HeroName    string     `json:"hero_name,omitempty"`
	AttackName  string     `json:"attack_name,omitempty"`
	AttackIndex int        `json:"attack,omitempty"`
	AttackType  AttackType `json:"attack_type,omitempty"`
	Protected   bool       `json:"protected,omitempty"`

	// Set on enemyDamage events.
	EnemyHP int    `json:"enemy_hp,omitempty"`
	Source  string `json:"source,omitempty"`

	Message string `json:"msg,omitempty"`
}
