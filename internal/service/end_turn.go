package service

import (
	"github.com/ericogr/vecna-cards/internal/constants"
	"github.com/ericogr/vecna-cards/internal/engine"
	"github.com/ericogr/vecna-cards/internal/game"
	"github.com/ericogr/vecna-cards/internal/logging"
)

// EndTurn hands control to the enemy and runs its turn.
func (m *Manager) EndTurn(id string) (*Outcome, error) {
	return m.with(id, func(s *session) (interface{}, error) {
		return engine.EnemyAct(s.state), nil
	})
}

// finish marks the session ended and persists its outcome. Persistence
// failures are logged; the encounter result stands.
func (m *Manager) finish(s *session, w game.Winner) {
	s.winner = w
	fields := logging.Fields{
		constants.LogFieldEncounterID: s.id,
		constants.LogFieldEnemyID:     s.enemyID,
		constants.LogFieldWinner:      string(w),
		constants.LogFieldTurn:        s.state.Turn,
	}
	logging.Info("encounter finished", fields)
	m.persist(s, w)
}

// persist writes the encounter record and usage counters. An abandoned
// encounter is stored with no winner.
func (m *Manager) persist(s *session, w game.Winner) {
	if m.repo == nil {
		return
	}
	rec := &game.EncounterRecord{
		EncounterID: s.id,
		EnemyID:     s.enemyID,
		Winner:      w,
		Turns:       s.state.Turn,
		PartyKey:    s.partyKey,
		Seed:        s.seed,
		LastSummary: s.state.LastTurnSummary,
	}
	if w == game.WinnerPlayer {
		rec.IPReward = s.ipReward
	}
	if err := m.repo.SaveEncounterRecord(rec); err != nil {
		logging.Error("failed to save encounter record", err, logging.Fields{constants.LogFieldEncounterID: s.id})
	}
	for cardID, n := range s.placed {
		if err := m.repo.IncrementUsage(game.UsageCard, cardID, n); err != nil {
			logging.Error("failed to update card usage", err, logging.Fields{constants.LogFieldEncounterID: s.id, constants.LogFieldSource: cardID})
		}
	}
	for summonID, n := range s.cast {
		if err := m.repo.IncrementUsage(game.UsageSummon, summonID, n); err != nil {
			logging.Error("failed to update summon usage", err, logging.Fields{constants.LogFieldEncounterID: s.id, constants.LogFieldSource: summonID})
		}
	}
}
