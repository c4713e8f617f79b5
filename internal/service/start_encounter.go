package service

import (
	"github.com/google/uuid"

	"github.com/ericogr/vecna-cards/internal/constants"
	"github.com/ericogr/vecna-cards/internal/deck"
	"github.com/ericogr/vecna-cards/internal/engine"
	"github.com/ericogr/vecna-cards/internal/keys"
	"github.com/ericogr/vecna-cards/internal/logging"
	"github.com/ericogr/vecna-cards/internal/rng"
)

// StartRequest describes a new encounter.
type StartRequest struct {
	EnemyID string
	CardIDs []string
	// Seed fixes the encounter RNG when set.
	Seed *int64
}

const defaultIPReward = 1

// Start builds the party hand and opens a new encounter against EnemyID.
func (m *Manager) Start(req StartRequest) (EncounterView, error) {
	enemy, ok := m.catalog.Enemy(req.EnemyID)
	if !ok {
		return EncounterView{}, ErrUnknownEnemy
	}
	if len(req.CardIDs) == 0 {
		return EncounterView{}, ErrEmptyParty
	}
	for _, id := range req.CardIDs {
		if _, ok := m.catalog.Card(id); !ok {
			return EncounterView{}, ErrUnknownCard
		}
	}

	seed, err := m.seedFor(req)
	if err != nil {
		return EncounterView{}, err
	}
	r := rng.New(seed)
	hand, err := deck.Build(m.catalog.Cards(), req.CardIDs, r)
	if err != nil {
		return EncounterView{}, ErrUnknownCard
	}

	ip := enemy.IPReward
	if ip <= 0 {
		ip = defaultIPReward
	}
	s := &session{
		id:         uuid.NewString(),
		enemyID:    enemy.ID,
		partyKey:   keys.PartyKey(req.CardIDs),
		seed:       seed,
		state:      engine.StartEncounter(enemy, hand, r, engine.Options{APPerTurn: m.opts.APPerTurn}),
		hand:       hand,
		lastActive: m.opts.Now(),
		ipReward:   ip,
		placed:     map[string]int{},
		cast:       map[string]int{},
	}

	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()

	logging.Info("encounter started", logging.Fields{
		constants.LogFieldEncounterID: s.id,
		constants.LogFieldEnemyID:     s.enemyID,
		constants.LogFieldPartyKey:    s.partyKey,
		constants.LogFieldSeed:        seed,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(), nil
}

func (m *Manager) seedFor(req StartRequest) (int64, error) {
	if req.Seed != nil {
		return *req.Seed, nil
	}
	if m.opts.FixedSeed != 0 {
		return m.opts.FixedSeed, nil
	}
	return rng.NewSeed()
}
