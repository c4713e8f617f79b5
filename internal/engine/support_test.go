package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericogr/vecna-cards/internal/game"
	"github.com/ericogr/vecna-cards/internal/rng"
)

func TestSupport_BurningStrikeTicksTwice(t *testing.T) {
	s, _ := newState(game.EnemyDefinition{ID: "ogre", HP: 100}, rng.NewScripted())
	place(s, 0, card(game.HeroBjurganmyr, 10, "Fire"))

	res, err := PlayHeroAction(s, 0, Untargeted)
	require.NoError(t, err)
	require.NotNil(t, res.Support)
	assert.Equal(t, 8, res.Support.Damage)
	assert.Equal(t, 92, s.Enemy.HP)
	require.Len(t, s.PendingEffects, 1)
	assert.Equal(t, 2, s.PendingEffects[0].Remaining)

	first := EnemyAct(s)
	require.Len(t, first.Events, 1)
	assert.Equal(t, game.EventEnemyDamage, first.Events[0].Type)
	assert.Equal(t, 84, s.Enemy.HP)

	second := EnemyAct(s)
	require.Len(t, second.Events, 1)
	assert.Equal(t, 76, s.Enemy.HP)
	assert.Empty(t, s.PendingEffects)

	third := EnemyAct(s)
	assert.Empty(t, third.Events)
	assert.Equal(t, 76, s.Enemy.HP)
}

func TestSupport_MileyRecastStacksSchedules(t *testing.T) {
	s, _ := newState(game.EnemyDefinition{ID: "dragon", HP: 200}, rng.NewScripted())
	place(s, 0, card(game.HeroMiley, 10, "Flame"))

	_, err := PlayHeroAction(s, 0, Untargeted)
	require.NoError(t, err)
	EnemyAct(s)
	assert.Equal(t, 200-8-8, s.Enemy.HP)

	_, err = PlayHeroAction(s, 0, Untargeted)
	require.NoError(t, err)
	require.Len(t, s.PendingEffects, 2)

	for i, want := range []int{2, 1, 0} {
		res := EnemyAct(s)
		n := 0
		for _, ev := range res.Events {
			if ev.Type == game.EventEnemyDamage {
				n++
			}
		}
		assert.Equal(t, want, n, "turn %d", i+1)
	}
	assert.Equal(t, 200-48, s.Enemy.HP)
	assert.Empty(t, s.PendingEffects)
}

func TestSupport_KieferStun(t *testing.T) {
	t.Run("winning roll", func(t *testing.T) {
		s, _ := newState(biter(20), rng.NewScripted(0))
		place(s, 0, card(game.HeroKiefer, 10, "Hold"))

		res, err := PlayHeroAction(s, 0, Untargeted)

		require.NoError(t, err)
		assert.True(t, res.Support.Stunned)
		assert.Equal(t, 3, s.Enemy.StunnedTurns)
		assert.Equal(t, 2, s.AP)
	})
	t.Run("losing roll", func(t *testing.T) {
		s, _ := newState(biter(20), rng.NewScripted(1))
		place(s, 0, card(game.HeroKiefer, 10, "Hold"))

		res, err := PlayHeroAction(s, 0, Untargeted)

		require.NoError(t, err)
		assert.False(t, res.Support.Stunned)
		assert.Equal(t, 0, s.Enemy.StunnedTurns)
		assert.Equal(t, 2, s.AP)
		assert.True(t, s.SupportUsed[game.HeroKiefer])
	})
	t.Run("stun never shortens", func(t *testing.T) {
		s, _ := newState(biter(20), rng.NewScripted(0))
		place(s, 0, card(game.HeroKiefer, 10, "Hold"))
		s.Enemy.StunnedTurns = 5

		_, err := PlayHeroAction(s, 0, Untargeted)

		require.NoError(t, err)
		assert.Equal(t, 5, s.Enemy.StunnedTurns)
	})
}

func TestSupport_OncePerRound(t *testing.T) {
	s, _ := newState(biter(20), rng.NewScripted())
	place(s, 0, card(game.HeroBrer, 10, "Hex"))

	_, err := PlayHeroAction(s, 0, Untargeted)
	require.NoError(t, err)
	assert.Equal(t, 15, s.Enemy.HP)
	assert.True(t, s.Enemy.NextAttackHalved)

	_, err = PlayHeroAction(s, 0, Untargeted)
	assert.ErrorIs(t, err, ErrAlreadyUsedThisRound)
	assert.Equal(t, 15, s.Enemy.HP)
	assert.Equal(t, 2, s.AP)

	EnemyAct(s)
	assert.Empty(t, s.SupportUsed)
	_, err = PlayHeroAction(s, 0, Untargeted)
	assert.NoError(t, err)
}

func TestSupport_ScoutIsFree(t *testing.T) {
	s, _ := newState(biter(20), rng.NewScripted())
	place(s, 0, card(game.HeroScout, 10, "Scout"))

	res, err := PlayHeroAction(s, 0, Untargeted)

	require.NoError(t, err)
	assert.Equal(t, 1, res.Support.APGained)
	assert.Equal(t, 0, res.Support.APSpent)
	assert.Equal(t, 4, s.AP)
}

func TestSupport_WillisNeedsTarget(t *testing.T) {
	s, _ := newState(biter(20), rng.NewScripted())
	place(s, 0, card(game.HeroWillis, 10, "Protect"))

	_, err := PlayHeroAction(s, 0, Untargeted)
	assert.ErrorIs(t, err, ErrTargetRequired)
	_, err = PlayHeroAction(s, 0, AtSlot(1))
	assert.ErrorIs(t, err, ErrTargetRequired)
	assert.Equal(t, 3, s.AP)
	assert.False(t, s.SupportUsed[game.HeroWillis])

	_, err = PlayHeroAction(s, 0, AtSlot(0))
	require.NoError(t, err)
	assert.True(t, s.Playfield[0].IsProtected())
}

func TestSupport_PiterDrawsAttention(t *testing.T) {
	s, _ := newState(biter(20), rng.NewScripted())
	place(s, 0, card("a", 10, ""))
	place(s, 2, card(game.HeroPiter, 10, "Help"))

	_, err := PlayHeroAction(s, 2, Untargeted)
	require.NoError(t, err)
	assert.True(t, s.Playfield[2].Helped)

	res := EnemyAct(s)
	require.Len(t, res.Events, 1)
	assert.Equal(t, 2, res.Events[0].Slot)
	assert.False(t, s.Playfield[2].Helped)
	assert.Empty(t, s.Playfield[2].HelpSource)
}

func TestSupport_LumaliaDelayedOnce(t *testing.T) {
	s, _ := newState(game.EnemyDefinition{ID: "ogre", HP: 4}, rng.NewScripted())
	place(s, 0, card(game.HeroLumalia, 10, "Moon"))

	_, err := PlayHeroAction(s, 0, Untargeted)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Enemy.HP)

	res := EnemyAct(s)
	require.Len(t, res.Events, 1)
	assert.Equal(t, 0, s.Enemy.HP)
	assert.Equal(t, game.EventEnemyDamage, res.Events[0].Type)
	assert.Empty(t, s.PendingEffects)
	assert.Equal(t, game.WinnerPlayer, IsFinished(s))
}

func TestSupport_ShalendraRefreshesVolo(t *testing.T) {
	s, _ := newState(biter(20), rng.NewScripted())
	place(s, 0, card(game.HeroShalendra, 10, "Refresh"))
	volo := game.SummonDefinition{ID: game.SummonVolo, Restriction: "Once per encounter"}

	_, err := UseSummon(s, volo, Untargeted)
	require.NoError(t, err)
	_, err = UseSummon(s, volo, Untargeted)
	require.ErrorIs(t, err, ErrAlreadyUsed)

	_, err = PlayHeroAction(s, 0, Untargeted)
	require.NoError(t, err)

	_, err = UseSummon(s, volo, Untargeted)
	assert.NoError(t, err)
}

func TestSupport_RegisteredAbility(t *testing.T) {
	RegisterSupportAbility("test_bard", SupportAbility{
		Cost: 2,
		Apply: func(s *State, _ int, _ Target, res *SupportResult) {
			s.Enemy.HP--
			res.Damage = 1
		},
	})
	t.Cleanup(func() { delete(supportAbilities, "test_bard") })

	s, _ := newState(biter(20), rng.NewScripted())
	place(s, 0, card("test_bard", 10, "Song"))
	s.AP = 1

	_, err := PlayHeroAction(s, 0, Untargeted)
	assert.ErrorIs(t, err, ErrNoAP)

	s.AP = 3
	res, err := PlayHeroAction(s, 0, Untargeted)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Support.Damage)
	assert.Equal(t, 1, s.AP)
}

func TestNoSupportActionIsUnsupported(t *testing.T) {
	assert.ErrorIs(t, ErrNoSupportAction, ErrUnsupportedAction)
	assert.Equal(t, ReasonNoSupportAction, ReasonOf(ErrNoSupportAction))
}
