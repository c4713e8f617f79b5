package storage

import "github.com/ericogr/vecna-cards/internal/game"

type Repository interface {
	// SaveEncounterRecord stores the outcome of a finished or abandoned encounter.
	SaveEncounterRecord(rec *game.EncounterRecord) error
	GetEncounterRecord(encounterID string) (*game.EncounterRecord, error)
	// IncrementUsage adds delta to the counter for (kind, refID), creating it if needed.
	IncrementUsage(kind game.UsageKind, refID string, delta int) error
	GetUsageCounters(kind game.UsageKind) ([]game.UsageCounter, error)
	// GetEnemyStats aggregates player wins (defeats) and losses (victories)
	// per enemy from the encounter records.
	GetEnemyStats() ([]game.EnemyStats, error)
}
