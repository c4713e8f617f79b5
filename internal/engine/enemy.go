package engine

import (
	"strconv"
	"strings"

	"github.com/ericogr/vecna-cards/internal/game"
)

// TurnOutcome tags the result of an enemy turn.
type TurnOutcome string

const (
	OutcomeEnemyAct     TurnOutcome = "enemyAct"
	OutcomeEnemyStunned TurnOutcome = "enemyStunned"
)

// TurnResult is the ordered record of one enemy turn.
type TurnResult struct {
	Did     TurnOutcome  `json:"did"`
	Events  []game.Event `json:"events"`
	Summary string       `json:"summary"`
}

// resolvedAttack is an enemy attack with its name, type and damage decided.
type resolvedAttack struct {
	index int
	name  string
	kind  game.AttackType
	dmg   int
}

// EnemyAct runs the enemy turn: a stun skip or one attack, followed by the
// end-of-turn housekeeping that always runs.
func EnemyAct(s *State) TurnResult {
	s.Turn++
	tc := newTurnContext(s)
	did := OutcomeEnemyAct

	if s.Enemy.StunnedTurns > 0 {
		s.Enemy.StunnedTurns--
		did = OutcomeEnemyStunned
		tc.emit(game.Event{Type: game.EventStunned, Slot: -1})
	} else if atk, ok := s.chooseAttack(); ok {
		if atk.kind == game.AttackAOE {
			for _, i := range s.Heroes() {
				tc.hit(i, atk)
			}
		} else if idx := s.singleTarget(); idx >= 0 {
			tc.hit(idx, atk)
		} else {
			tc.add("Enemy could not attack (no targets)")
		}
	}

	tc.housekeeping()
	s.LastTurnSummary = tc.joinSummary()
	return TurnResult{Did: did, Events: tc.events, Summary: s.LastTurnSummary}
}

// chooseAttack draws one entry from the attack table. Enemies without a
// table do not attack.
func (s *State) chooseAttack() (resolvedAttack, bool) {
	picks := s.Enemy.Definition.Attacks
	if len(picks) == 0 {
		return resolvedAttack{}, false
	}
	idx := s.rand().Int(len(picks))
	if idx < 0 || idx >= len(picks) {
		idx = 0
	}
	a := picks[idx]
	out := resolvedAttack{index: idx, name: a.Name, kind: game.AttackSingle}
	if out.name == "" {
		out.name = "Attack " + strconv.Itoa(idx+1)
	}
	if game.AttackType(strings.ToLower(string(a.Type))) == game.AttackAOE {
		out.kind = game.AttackAOE
	}
	switch {
	case a.Dmg != nil:
		out.dmg = *a.Dmg
	case s.Enemy.Definition.Attack > 0:
		out.dmg = s.Enemy.Definition.Attack
	default:
		out.dmg = 1
	}
	if s.Enemy.NextAttackHalved {
		out.dmg = halveUp(out.dmg)
		s.Enemy.NextAttackHalved = false
	}
	return out, true
}

// singleTarget picks a helped hero, else a random frontline hero, else the
// backline hero. It returns -1 when the field is empty.
func (s *State) singleTarget() int {
	for i, h := range s.Playfield {
		if h != nil && h.Helped {
			return i
		}
	}
	front := make([]int, 0, BackSlot)
	for i := 0; i < BackSlot; i++ {
		if s.Playfield[i] != nil {
			front = append(front, i)
		}
	}
	if len(front) > 0 {
		pick := s.rand().Int(len(front))
		if pick < 0 || pick >= len(front) {
			pick = 0
		}
		return front[pick]
	}
	if s.Playfield[BackSlot] != nil {
		return BackSlot
	}
	return -1
}

// hit runs the damage pipeline against the hero in slot.
func (tc *turnContext) hit(slot int, atk resolvedAttack) {
	s := tc.s
	h := s.Playfield[slot]
	ev := game.Event{
		Type:        game.EventHit,
		Slot:        slot,
		Dmg:         atk.dmg,
		HeroName:    h.Name(),
		AttackName:  atk.name,
		AttackIndex: atk.index + 1,
		AttackType:  atk.kind,
	}
	if h.IsProtected() {
		ev.Protected = true
		ev.Dmg = 0
		ev.RemainingHP = h.HP
		tc.emit(ev)
		return
	}
	remaining := atk.dmg
	if h.Defending {
		remaining = halveUp(remaining)
	}
	if h.TempHP > 0 && remaining > 0 {
		take := min(h.TempHP, remaining)
		h.TempHP -= take
		remaining -= take
		ev.TempTaken = take
	}
	if remaining > 0 {
		h.HP -= remaining
		ev.HPTaken = remaining
	}
	if h.HP <= 0 {
		ev.Died = true
		s.ExhaustedThisEncounter = append(s.ExhaustedThisEncounter, h.Base)
		s.Playfield[slot] = nil
	} else {
		ev.RemainingHP = h.HP
	}
	tc.emit(ev)
}
