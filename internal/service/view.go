package service

import (
	"github.com/ericogr/vecna-cards/internal/engine"
	"github.com/ericogr/vecna-cards/internal/game"
)

// EncounterView is a detached snapshot of an encounter, safe to encode
// after the session lock is released.
type EncounterView struct {
	ID                   string                       `json:"id"`
	EnemyID              string                       `json:"enemy_id"`
	Enemy                game.Enemy                   `json:"enemy"`
	Turn                 int                          `json:"turn"`
	AP                   int                          `json:"ap"`
	APPerTurn            int                          `json:"ap_per_turn"`
	Playfield            [engine.SlotCount]*game.Hero `json:"playfield"`
	Hand                 []game.CardDefinition        `json:"hand"`
	Exhausted            []game.CardDefinition        `json:"exhausted"`
	SummonUsed           map[string]bool              `json:"summon_used"`
	SummonCooldowns      map[string]int               `json:"summon_cooldowns"`
	SupportUsed          map[string]bool              `json:"support_used"`
	PendingEffects       []game.Effect                `json:"pending_effects"`
	NextAttackMultiplier float64                      `json:"next_attack_multiplier"`
	LastTurnSummary      string                       `json:"last_turn_summary,omitempty"`
	Seed                 int64                        `json:"seed"`
	Finished             bool                         `json:"finished"`
	Winner               game.Winner                  `json:"winner,omitempty"`
	IPReward             int                          `json:"ip_reward,omitempty"`
}

func (s *session) view() EncounterView {
	st := s.state
	v := EncounterView{
		ID:                   s.id,
		EnemyID:              s.enemyID,
		Enemy:                *st.Enemy,
		Turn:                 st.Turn,
		AP:                   st.AP,
		APPerTurn:            st.APPerTurn,
		Hand:                 s.hand.Cards(),
		Exhausted:            append([]game.CardDefinition{}, st.ExhaustedThisEncounter...),
		SummonUsed:           make(map[string]bool, len(st.SummonUsed)),
		SummonCooldowns:      make(map[string]int, len(st.SummonCooldowns)),
		SupportUsed:          make(map[string]bool, len(st.SupportUsed)),
		PendingEffects:       append([]game.Effect{}, st.PendingEffects...),
		NextAttackMultiplier: st.NextAttackMultiplier,
		LastTurnSummary:      st.LastTurnSummary,
		Seed:                 s.seed,
		Finished:             s.winner != game.WinnerNone,
		Winner:               s.winner,
	}
	v.Enemy.Definition.Attacks = append([]game.EnemyAttack(nil), st.Enemy.Definition.Attacks...)
	for i, h := range st.Playfield {
		if h == nil {
			continue
		}
		cp := *h
		if h.Protected != nil {
			p := *h.Protected
			cp.Protected = &p
		}
		v.Playfield[i] = &cp
	}
	for k, val := range st.SummonUsed {
		v.SummonUsed[k] = val
	}
	for k, val := range st.SummonCooldowns {
		v.SummonCooldowns[k] = val
	}
	for k, val := range st.SupportUsed {
		v.SupportUsed[k] = val
	}
	if s.winner == game.WinnerPlayer {
		v.IPReward = s.ipReward
	}
	return v
}
