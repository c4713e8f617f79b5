package storage

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ericogr/vecna-cards/internal/game"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) SaveEncounterRecord(rec *game.EncounterRecord) error {
	return r.db.Create(rec).Error
}

func (r *sqliteRepository) GetEncounterRecord(encounterID string) (*game.EncounterRecord, error) {
	var rec game.EncounterRecord
	if err := r.db.Where("encounter_id = ?", encounterID).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *sqliteRepository) IncrementUsage(kind game.UsageKind, refID string, delta int) error {
	if delta == 0 {
		return nil
	}
	c := game.UsageCounter{Kind: kind, RefID: refID, Count: delta}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kind"}, {Name: "ref_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"count": gorm.Expr("count + ?", delta), "updated_at": gorm.Expr("CURRENT_TIMESTAMP")}),
	}).Create(&c).Error
}

// GetUsageCounters returns counters of kind, most used first.
func (r *sqliteRepository) GetUsageCounters(kind game.UsageKind) ([]game.UsageCounter, error) {
	var out []game.UsageCounter
	if err := r.db.Where("kind = ?", kind).
		Order("count DESC").
		Order("ref_id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *sqliteRepository) GetEnemyStats() ([]game.EnemyStats, error) {
	var out []game.EnemyStats
	err := r.db.Model(&game.EncounterRecord{}).
		Select("enemy_id, "+
			"SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END) AS defeats, "+
			"SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END) AS victories",
			game.WinnerPlayer, game.WinnerEnemy).
		Group("enemy_id").
		Order("enemy_id ASC").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
