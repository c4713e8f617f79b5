package game

import "gorm.io/gorm"

// Winner is the terminal state of an encounter.
type Winner string

const (
	WinnerNone   Winner = ""
	WinnerPlayer Winner = "player"
	WinnerEnemy  Winner = "enemy"
)

// EncounterRecord stores the outcome of a finished encounter.
type EncounterRecord struct {
	gorm.Model
	EncounterID string `json:"encounter_id" gorm:"uniqueIndex;size:36"`
	EnemyID     string `json:"enemy_id" gorm:"index"`
	Winner      Winner `json:"winner" gorm:"size:16"`
	Turns       int    `json:"turns"`
	// PartyKey is the canonical key of the card ids brought into the fight.
	PartyKey    string `json:"party_key"`
	Seed        int64  `json:"seed"`
	IPReward    int    `json:"ip_reward"`
	LastSummary string `json:"last_summary"`
}

// Store finished encounters in a table named after what they are.
func (EncounterRecord) TableName() string { return "encounter_records" }

// UsageKind groups usage counters.
type UsageKind string

const (
	UsageCard   UsageKind = "card"
	UsageSummon UsageKind = "summon"
)

// UsageCounter counts how often a card was placed or a summon was cast.
type UsageCounter struct {
	gorm.Model
	Kind  UsageKind `json:"kind" gorm:"size:16;uniqueIndex:idx_usage_kind_ref"`
	RefID string    `json:"ref_id" gorm:"size:64;uniqueIndex:idx_usage_kind_ref"`
	Count int       `json:"count"`
}

func (UsageCounter) TableName() string { return "usage_counters" }

// EnemyStats aggregates encounter outcomes per enemy. It is computed, not stored.
type EnemyStats struct {
	EnemyID   string `json:"enemy_id"`
	Defeats   int    `json:"defeats"`
	Victories int    `json:"victories"`
}
