package service

import (
	"context"
	"time"

	"github.com/ericogr/vecna-cards/internal/constants"
	"github.com/ericogr/vecna-cards/internal/game"
	"github.com/ericogr/vecna-cards/internal/logging"
)

// ExpireIdle drops every encounter untouched for longer than the session
// TTL. Unfinished encounters are recorded with no winner. It returns the
// number of encounters removed.
func (m *Manager) ExpireIdle(now time.Time) int {
	return m.expire(func(s *session) bool { return now.Sub(s.lastActive) >= m.opts.SessionTTL })
}

// Shutdown drops every encounter, recording unfinished ones as abandoned.
func (m *Manager) Shutdown() int {
	return m.expire(func(*session) bool { return true })
}

func (m *Manager) expire(drop func(s *session) bool) int {
	m.mu.Lock()
	expired := make([]*session, 0)
	for id, s := range m.sessions {
		s.mu.Lock()
		idle := drop(s)
		s.mu.Unlock()
		if idle {
			expired = append(expired, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range expired {
		s.mu.Lock()
		if s.winner == game.WinnerNone {
			logging.Info("encounter ended due to inactivity", logging.Fields{
				constants.LogFieldEncounterID: s.id,
				constants.LogFieldEnemyID:     s.enemyID,
				constants.LogFieldTurn:        s.state.Turn,
			})
			m.persist(s, game.WinnerNone)
		}
		s.mu.Unlock()
	}
	if len(expired) > 0 {
		logging.Info("expired idle encounters", logging.Fields{constants.LogFieldCount: len(expired)})
	}
	return len(expired)
}

// StartIdleReaper runs ExpireIdle every interval until ctx is done.
func (m *Manager) StartIdleReaper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.ExpireIdle(m.opts.Now())
			}
		}
	}()
}
