// Package engine resolves a single encounter: hero placement, the action
// point economy, hero actions, summons, the enemy turn and the win/loss
// check. Every function runs synchronously against one State; callers
// must not share a State across goroutines without their own locking.
package engine

import (
	"github.com/ericogr/vecna-cards/internal/game"
	"github.com/ericogr/vecna-cards/internal/rng"
)

const (
	// SlotCount is the fixed playfield size. Slots 0 and 1 are the
	// frontline, slot 2 is the backline.
	SlotCount = 3
	BackSlot  = 2

	DefaultAPPerTurn = 3

	// exhaustedCooldown blocks a single-use summon for the rest of the encounter.
	exhaustedCooldown = 9999
)

// Hand is the party hand consumed by placement and replacement.
type Hand interface {
	Cards() []game.CardDefinition
	PlayFromHand(index int) (game.CardDefinition, bool)
	Push(card game.CardDefinition)
}

// Options configures a new encounter.
type Options struct {
	APPerTurn int
}

// State is the mutable aggregate of one encounter.
type State struct {
	Enemy     *game.Enemy
	RNG       rng.Source
	Hand      Hand
	Turn      int
	APPerTurn int
	AP        int
	Playfield [SlotCount]*game.Hero

	// ExhaustedThisEncounter holds the cards of heroes that died. It only grows.
	ExhaustedThisEncounter []game.CardDefinition
	SummonUsed             map[string]bool
	SummonCooldowns        map[string]int
	// SupportUsed locks each support hero id until the next enemy turn ends.
	SupportUsed    map[string]bool
	PendingEffects []game.Effect
	// NextAttackMultiplier scales the next hero attack and then resets to 1.
	NextAttackMultiplier float64
	LastTurnSummary      string
}

// StartEncounter clones the enemy definition and returns a fresh state with
// an empty playfield and a full AP pool. A nil source is replaced with a
// crypto-seeded one so no draw ever comes from a global generator.
func StartEncounter(enemy game.EnemyDefinition, hand Hand, r rng.Source, opts Options) *State {
	ap := opts.APPerTurn
	if ap <= 0 {
		ap = DefaultAPPerTurn
	}
	s := &State{
		Enemy:                game.NewEnemy(enemy),
		RNG:                  r,
		Hand:                 hand,
		APPerTurn:            ap,
		AP:                   ap,
		SummonUsed:           map[string]bool{},
		SummonCooldowns:      map[string]int{},
		SupportUsed:          map[string]bool{},
		NextAttackMultiplier: 1,
	}
	s.rand()
	return s
}

func (s *State) rand() rng.Source {
	if s.RNG == nil {
		seed, err := rng.NewSeed()
		if err != nil {
			seed = int64(s.Turn) + 1
		}
		s.RNG = rng.New(seed)
	}
	return s.RNG
}

// Hero returns the hero in slot, or nil for empty or out-of-range slots.
func (s *State) Hero(slot int) *game.Hero {
	if !validSlot(slot) {
		return nil
	}
	return s.Playfield[slot]
}

// Heroes returns the occupied slot indexes in order.
func (s *State) Heroes() []int {
	out := make([]int, 0, SlotCount)
	for i, h := range s.Playfield {
		if h != nil {
			out = append(out, i)
		}
	}
	return out
}

func validSlot(slot int) bool { return slot >= 0 && slot < SlotCount }

// heroAt validates slot and returns its occupant.
func (s *State) heroAt(slot int) (*game.Hero, error) {
	if !validSlot(slot) {
		return nil, ErrInvalidSlot
	}
	h := s.Playfield[slot]
	if h == nil {
		return nil, ErrNoHero
	}
	return h, nil
}

// actor validates the AP pool and the acting hero, in that order.
func (s *State) actor(slot int) (*game.Hero, error) {
	if s.AP <= 0 {
		return nil, ErrNoAP
	}
	return s.heroAt(slot)
}

func (s *State) schedule(e game.Effect) {
	if e.Trigger == "" {
		e.Trigger = game.TriggerAfterEnemy
	}
	if e.Remaining <= 0 {
		e.Remaining = 1
	}
	s.PendingEffects = append(s.PendingEffects, e)
}

// takeFromHand removes the first card with id from the hand, if present.
func (s *State) takeFromHand(id string) bool {
	if s.Hand == nil {
		return false
	}
	for i, c := range s.Hand.Cards() {
		if c.ID == id {
			_, ok := s.Hand.PlayFromHand(i)
			return ok
		}
	}
	return false
}

func halveUp(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + 1) / 2
}
