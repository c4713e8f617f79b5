package service

import (
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/ericogr/vecna-cards/internal/deck"
	"github.com/ericogr/vecna-cards/internal/engine"
	"github.com/ericogr/vecna-cards/internal/game"
	"github.com/ericogr/vecna-cards/internal/logging"
)

var (
	ErrEncounterNotFound = errors.New("encounter not found")
	ErrEncounterFinished = errors.New("encounter is already finished")
	ErrUnknownEnemy      = errors.New("unknown enemy")
	ErrUnknownCard       = errors.New("unknown card")
	ErrUnknownSummon     = errors.New("unknown summon")
	ErrCardNotInHand     = errors.New("card is not in hand")
	ErrEmptyParty        = errors.New("at least one card is required")
	ErrNoRepository      = errors.New("no repository configured")
)

// Catalog is the read-only definition source used by the manager.
type Catalog interface {
	Card(id string) (game.CardDefinition, bool)
	Cards() []game.CardDefinition
	Summon(id string) (game.SummonDefinition, bool)
	Enemy(id string) (game.EnemyDefinition, bool)
}

// EncounterRepo is the persistence used for finished encounters and usage stats.
type EncounterRepo interface {
	SaveEncounterRecord(rec *game.EncounterRecord) error
	IncrementUsage(kind game.UsageKind, refID string, delta int) error
	GetUsageCounters(kind game.UsageKind) ([]game.UsageCounter, error)
	GetEnemyStats() ([]game.EnemyStats, error)
}

// Options tunes a Manager.
type Options struct {
	APPerTurn int
	// SessionTTL is how long an untouched encounter stays in memory.
	SessionTTL time.Duration
	// FixedSeed, when non-zero, seeds every encounter that does not ask for a seed.
	FixedSeed int64
	// Now overrides the clock in tests.
	Now func() time.Time
}

// Manager owns the in-memory encounters. Each encounter is guarded by its
// own mutex; the engine itself is never called concurrently for one state.
type Manager struct {
	repo    EncounterRepo
	catalog Catalog
	opts    Options

	// stats collapses concurrent stats reads against this manager's repo.
	stats singleflight.Group

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	mu sync.Mutex

	id         string
	enemyID    string
	partyKey   string
	seed       int64
	state      *engine.State
	hand       *deck.Hand
	lastActive time.Time
	winner     game.Winner
	ipReward   int
	// usage counts placements per card id and casts per summon id
	placed map[string]int
	cast   map[string]int
}

func NewManager(repo EncounterRepo, catalog Catalog, opts Options) *Manager {
	if opts.APPerTurn <= 0 {
		opts.APPerTurn = engine.DefaultAPPerTurn
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 30 * time.Minute
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if repo == nil {
		logging.Warn("no repository configured, encounter outcomes will not be persisted", nil)
	}
	return &Manager{repo: repo, catalog: catalog, opts: opts, sessions: map[string]*session{}}
}

// Outcome is what every encounter operation returns: the operation's own
// result plus a snapshot of the encounter after it.
type Outcome struct {
	Result    interface{}   `json:"result,omitempty"`
	Encounter EncounterView `json:"encounter"`
}

func (m *Manager) lookup(id string) (*session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrEncounterNotFound
	}
	return s, nil
}

// Get returns a snapshot of the encounter.
func (m *Manager) Get(id string) (EncounterView, error) {
	s, err := m.lookup(id)
	if err != nil {
		return EncounterView{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = m.opts.Now()
	return s.view(), nil
}

// with runs fn against a live encounter under its lock and then checks
// whether the encounter ended.
func (m *Manager) with(id string, fn func(s *session) (interface{}, error)) (*Outcome, error) {
	s, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.winner != game.WinnerNone {
		return nil, ErrEncounterFinished
	}
	s.lastActive = m.opts.Now()
	res, err := fn(s)
	if err != nil {
		return nil, err
	}
	if w := engine.IsFinished(s.state); w != game.WinnerNone {
		m.finish(s, w)
	}
	return &Outcome{Result: res, Encounter: s.view()}, nil
}
