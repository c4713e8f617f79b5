package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericogr/vecna-cards/internal/game"
)

const sampleData = `
card_list:
  - id: piter
    name: Piter
    hp: 8
    ability: "Help: draw the next attack"
    action_type: support
  - id: cleric
    name: Cleric
    hp: 9
    ability: "Cure Wounds (4th level): Restore 5 HP"
summon_list:
  - id: whelm
    name: Whelm
    ability: Stun
    restriction: Once per encounter
enemy_list:
  - id: wolf
    name: Wolf
    hp: 20
    ip_reward: 2
    attacks:
      - name: Bite
        type: single
        dmg: 4
      - name: Howl
        type: aoe
encounter:
  ap_per_turn: 4
server:
  address: ":9090"
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeFile(t, sampleData))
	require.NoError(t, err)

	require.Len(t, cfg.Cards, 2)
	assert.Equal(t, game.ActionTypeSupport, cfg.Cards[0].ActionType)
	assert.Equal(t, 5, cfg.Cards[1].AbilityMagnitude())
	require.Len(t, cfg.Summons, 1)
	assert.True(t, cfg.Summons[0].OncePerEncounter())
	require.Len(t, cfg.Enemies, 1)
	wolf := cfg.Enemies[0]
	assert.Equal(t, 2, wolf.IPReward)
	require.Len(t, wolf.Attacks, 2)
	require.NotNil(t, wolf.Attacks[0].Dmg)
	assert.Equal(t, 4, *wolf.Attacks[0].Dmg)
	assert.Nil(t, wolf.Attacks[1].Dmg)
	assert.Equal(t, game.AttackAOE, wolf.Attacks[1].Type)
	assert.Equal(t, 4, cfg.APPerTurn)
	assert.Equal(t, ":9090", cfg.ServerAddress)
}

func TestLoadConfig_JSONAndDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeFile(t, `{"card_list":[{"id":"a","hp":3}],"enemy_list":[{"id":"b","hp":5}]}`))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.APPerTurn)
	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Empty(t, cfg.Summons)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Validation(t *testing.T) {
	cases := map[string]string{
		"empty cards":       `enemy_list: [{id: b, hp: 5}]`,
		"empty enemies":     `card_list: [{id: a, hp: 3}]`,
		"duplicate card":    `{card_list: [{id: a, hp: 3}, {id: A, hp: 4}], enemy_list: [{id: b, hp: 5}]}`,
		"missing id":        `{card_list: [{hp: 3}], enemy_list: [{id: b, hp: 5}]}`,
		"bad hp":            `{card_list: [{id: a, hp: 0}], enemy_list: [{id: b, hp: 5}]}`,
		"bad action type":   `{card_list: [{id: a, hp: 3, action_type: dance}], enemy_list: [{id: b, hp: 5}]}`,
		"bad attack type":   `{card_list: [{id: a, hp: 3}], enemy_list: [{id: b, hp: 5, attacks: [{name: x, type: cone}]}]}`,
		"negative dmg":      `{card_list: [{id: a, hp: 3}], enemy_list: [{id: b, hp: 5, attacks: [{name: x, dmg: -1}]}]}`,
		"negative cooldown": `{card_list: [{id: a, hp: 3}], summon_list: [{id: s, cooldown: -2}], enemy_list: [{id: b, hp: 5}]}`,
		"negative ap":       `{card_list: [{id: a, hp: 3}], enemy_list: [{id: b, hp: 5}], encounter: {ap_per_turn: -1}}`,
		"not yaml":          `card_list: [`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("VECNA_CONFIG", "/data/game.yaml")
	t.Setenv("VECNA_SESSION_TTL", "5m")
	t.Setenv("VECNA_SEED", "42")

	e, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "/data/game.yaml", e.ConfigPath)
	assert.Equal(t, "vecna.db", e.DBPath)
	assert.Equal(t, "5m0s", e.SessionTTL.String())
	assert.Equal(t, int64(42), e.Seed)
}

func TestLoadEnv_Invalid(t *testing.T) {
	t.Setenv("VECNA_SESSION_TTL", "soon")
	_, err := LoadEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")

	t.Setenv("VECNA_SESSION_TTL", "0s")
	_, err = LoadEnv()
	assert.Error(t, err)
}

func TestLoadConfig_SampleDataFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "..", "vecna_config.yaml"))
	require.NoError(t, err)
	assert.Len(t, cfg.Enemies, 4)
	assert.Len(t, cfg.Summons, 6)
	assert.Equal(t, 3, cfg.APPerTurn)
	assert.Equal(t, ":8080", cfg.ServerAddress)
}
