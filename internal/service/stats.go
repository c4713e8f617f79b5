package service

import (
	"fmt"

	"github.com/ericogr/vecna-cards/internal/dedupe"
	"github.com/ericogr/vecna-cards/internal/game"
)

// UsageStats lists how often each card was placed and each summon cast.
type UsageStats struct {
	Cards   []game.UsageCounter `json:"cards"`
	Summons []game.UsageCounter `json:"summons"`
}

// EnemyStats returns per-enemy defeat and victory counts. Concurrent
// callers share one query.
func (m *Manager) EnemyStats() ([]game.EnemyStats, error) {
	if m.repo == nil {
		return nil, ErrNoRepository
	}
	v, err := dedupe.Do(&m.stats, "enemies", m.repo.GetEnemyStats)
	if err != nil {
		return nil, fmt.Errorf("load enemy stats: %w", err)
	}
	return v, nil
}

func (m *Manager) UsageStats() (UsageStats, error) {
	if m.repo == nil {
		return UsageStats{}, ErrNoRepository
	}
	v, err := dedupe.Do(&m.stats, "usage", func() (UsageStats, error) {
		cards, err := m.repo.GetUsageCounters(game.UsageCard)
		if err != nil {
			return UsageStats{}, err
		}
		summons, err := m.repo.GetUsageCounters(game.UsageSummon)
		if err != nil {
			return UsageStats{}, err
		}
		return UsageStats{Cards: cards, Summons: summons}, nil
	})
	if err != nil {
		return UsageStats{}, fmt.Errorf("load usage stats: %w", err)
	}
	return v, nil
}
