package api

import (
	"github.com/ericogr/vecna-cards/internal/engine"
	"github.com/ericogr/vecna-cards/internal/game"
	"github.com/ericogr/vecna-cards/internal/service"
)

// Encounters is the encounter service driven by the HTTP layer.
type Encounters interface {
	Start(req service.StartRequest) (service.EncounterView, error)
	Get(id string) (service.EncounterView, error)
	Place(id string, slot int, cardID string) (*service.Outcome, error)
	PlaceAuto(id string, cardID string) (*service.Outcome, error)
	Attack(id string, slot int) (*service.Outcome, error)
	Act(id string, slot int, target engine.Target) (*service.Outcome, error)
	Defend(id string, slot int) (*service.Outcome, error)
	Replace(id string, slot int, cardID string) (*service.Outcome, error)
	Summon(id string, summonID string, target engine.Target) (*service.Outcome, error)
	EndTurn(id string) (*service.Outcome, error)
	EnemyStats() ([]game.EnemyStats, error)
	UsageStats() (service.UsageStats, error)
}

// Catalog lists the definitions served by the catalog endpoints.
type Catalog interface {
	Cards() []game.CardDefinition
	Summons() []game.SummonDefinition
	Enemies() []game.EnemyDefinition
}

// EncounterHandler groups all encounter-related HTTP handlers.
type EncounterHandler struct {
	encounters Encounters
	catalog    Catalog
}

func NewEncounterHandler(encounters Encounters, catalog Catalog) *EncounterHandler {
	return &EncounterHandler{encounters: encounters, catalog: catalog}
}
