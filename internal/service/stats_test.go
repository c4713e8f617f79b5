package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericogr/vecna-cards/internal/game"
)

func TestEnemyStats(t *testing.T) {
	repo := newMockRepo()
	m := newTestManager(repo)

	stats, err := m.EnemyStats()
	require.NoError(t, err)
	assert.Equal(t, []game.EnemyStats{{EnemyID: "wolf", Defeats: 1}}, stats)

	repo.statsErr = errors.New("locked")
	_, err = m.EnemyStats()
	assert.ErrorIs(t, err, repo.statsErr)
}

func TestUsageStats(t *testing.T) {
	repo := newMockRepo()
	require.NoError(t, repo.IncrementUsage(game.UsageCard, "fighter", 2))
	require.NoError(t, repo.IncrementUsage(game.UsageSummon, "whelm", 1))
	m := newTestManager(repo)

	u, err := m.UsageStats()
	require.NoError(t, err)
	require.Len(t, u.Cards, 1)
	assert.Equal(t, 2, u.Cards[0].Count)
	require.Len(t, u.Summons, 1)
	assert.Equal(t, "whelm", u.Summons[0].RefID)
}

func TestStats_WithoutRepository(t *testing.T) {
	m := NewManager(nil, testCatalog(), Options{})

	_, err := m.EnemyStats()
	assert.ErrorIs(t, err, ErrNoRepository)
	_, err = m.UsageStats()
	assert.ErrorIs(t, err, ErrNoRepository)
}

func TestEnemyStats_ManagersDoNotShareQueries(t *testing.T) {
	slow := newMockRepo()
	slow.entered = make(chan struct{})
	slow.release = make(chan struct{})
	fast := newMockRepo()
	fast.statsErr = errors.New("fast repo")

	a := newTestManager(slow)
	b := newTestManager(fast)

	done := make(chan error, 1)
	go func() {
		_, err := a.EnemyStats()
		done <- err
	}()
	<-slow.entered

	_, err := b.EnemyStats()
	assert.ErrorIs(t, err, fast.statsErr)
	assert.Equal(t, 1, fast.calls)

	close(slow.release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, slow.calls)
}
