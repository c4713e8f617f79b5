package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericogr/vecna-cards/internal/catalog"
	"github.com/ericogr/vecna-cards/internal/engine"
	"github.com/ericogr/vecna-cards/internal/game"
	"github.com/ericogr/vecna-cards/internal/service"
)

type stubRepo struct {
	records []game.EncounterRecord
	failing bool
}

func (r *stubRepo) SaveEncounterRecord(rec *game.EncounterRecord) error {
	r.records = append(r.records, *rec)
	return nil
}
func (r *stubRepo) IncrementUsage(game.UsageKind, string, int) error { return nil }
func (r *stubRepo) GetUsageCounters(kind game.UsageKind) ([]game.UsageCounter, error) {
	return []game.UsageCounter{{Kind: kind, RefID: "x", Count: 1}}, nil
}
func (r *stubRepo) GetEnemyStats() ([]game.EnemyStats, error) {
	if r.failing {
		return nil, errors.New("boom")
	}
	return []game.EnemyStats{{EnemyID: "wolf", Victories: 2}}, nil
}

func init() { gin.SetMode(gin.TestMode) }

func intp(v int) *int { return &v }

func newTestServer(t *testing.T) (*gin.Engine, *stubRepo) {
	t.Helper()
	cat := catalog.New(
		[]game.CardDefinition{
			{ID: "fighter", Name: "Fighter", HP: 10, Ability: "Slash 5"},
			{ID: "cleric", Name: "Cleric", HP: 8, Ability: "Heal 2", ActionType: game.ActionTypeHealer},
			{ID: game.HeroWillis, Name: "Willis", HP: 9, Ability: "Protect an ally"},
		},
		[]game.SummonDefinition{{ID: game.SummonGaron, Name: "Garon"}},
		[]game.EnemyDefinition{{ID: "wolf", Name: "Wolf", HP: 10, Attacks: []game.EnemyAttack{{Name: "Bite", Dmg: intp(4)}}}},
	)
	repo := &stubRepo{}
	m := service.NewManager(repo, cat, service.Options{FixedSeed: 3})
	return NewRouter(NewEncounterHandler(m, cat)), repo
}

func do(t *testing.T, r http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var out map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func startEncounter(t *testing.T, r http.Handler, cards ...string) string {
	t.Helper()
	w, out := do(t, r, http.MethodPost, "/api/encounters", gin.H{"enemy_id": "wolf", "card_ids": cards})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	enc := out["encounter"].(map[string]interface{})
	return enc["id"].(string)
}

func TestStartEncounter(t *testing.T) {
	r, _ := newTestServer(t)

	w, out := do(t, r, http.MethodPost, "/api/encounters", gin.H{"enemy_id": "wolf", "card_ids": []string{"fighter"}, "seed": 11})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, out["success"])
	enc := out["encounter"].(map[string]interface{})
	assert.Equal(t, float64(11), enc["seed"])
	assert.Equal(t, float64(3), enc["ap"])

	w, _ = do(t, r, http.MethodPost, "/api/encounters", gin.H{"enemy_id": "dragon", "card_ids": []string{"fighter"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = do(t, r, http.MethodPost, "/api/encounters", gin.H{"enemy_id": "wolf", "card_ids": []string{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = do(t, r, http.MethodPost, "/api/encounters", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEncounterLifecycle(t *testing.T) {
	r, repo := newTestServer(t)
	id := startEncounter(t, r, "fighter", "cleric")
	base := "/api/encounters/" + id

	w, out := do(t, r, http.MethodPost, base+"/place", gin.H{"card_id": "fighter"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, float64(0), out["result"].(map[string]interface{})["slot"])

	w, _ = do(t, r, http.MethodPost, base+"/place", gin.H{"slot": 2, "card_id": "cleric"})
	require.Equal(t, http.StatusOK, w.Code)

	w, out = do(t, r, http.MethodPost, base+"/attack", gin.H{"slot": 1})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, false, out["success"])
	assert.Equal(t, string(engine.ReasonNoHero), out["reason"])

	w, out = do(t, r, http.MethodPost, base+"/action", gin.H{"slot": 2, "target": "all"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "healer", out["result"].(map[string]interface{})["type"])

	w, _ = do(t, r, http.MethodPost, base+"/defend", gin.H{"slot": 0})
	require.Equal(t, http.StatusOK, w.Code)

	w, out = do(t, r, http.MethodPost, base+"/summon", gin.H{"summon_id": "garon"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "garon", out["result"].(map[string]interface{})["id"])

	w, out = do(t, r, http.MethodPost, base+"/end-turn", nil)
	require.Equal(t, http.StatusOK, w.Code)
	turn := out["result"].(map[string]interface{})
	assert.Equal(t, "enemyAct", turn["did"])
	assert.Len(t, turn["events"], 1)

	w, out = do(t, r, http.MethodPost, base+"/attack", gin.H{"slot": 0})
	require.Equal(t, http.StatusOK, w.Code)
	w, out = do(t, r, http.MethodPost, base+"/attack", gin.H{"slot": 0})
	require.Equal(t, http.StatusOK, w.Code)
	enc := out["encounter"].(map[string]interface{})
	assert.Equal(t, true, enc["finished"])
	assert.Equal(t, "player", enc["winner"])
	require.Len(t, repo.records, 1)

	w, _ = do(t, r, http.MethodPost, base+"/end-turn", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, out = do(t, r, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, out["id"])
}

func TestActionTargets(t *testing.T) {
	r, _ := newTestServer(t)
	id := startEncounter(t, r, game.HeroWillis, "fighter")
	base := "/api/encounters/" + id
	do(t, r, http.MethodPost, base+"/place", gin.H{"slot": 0, "card_id": game.HeroWillis})

	w, out := do(t, r, http.MethodPost, base+"/action", gin.H{"slot": 0})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, string(engine.ReasonTargetRequired), out["reason"])

	w, _ = do(t, r, http.MethodPost, base+"/action", gin.H{"slot": 0, "target": "left"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, r, http.MethodPost, base+"/action", gin.H{"slot": 0, "target": 0})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReplaceAndHandErrors(t *testing.T) {
	r, _ := newTestServer(t)
	id := startEncounter(t, r, "fighter", "cleric")
	base := "/api/encounters/" + id
	do(t, r, http.MethodPost, base+"/place", gin.H{"slot": 0, "card_id": "fighter"})

	w, _ := do(t, r, http.MethodPost, base+"/replace", gin.H{"slot": 0, "card_id": "fighter"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, out := do(t, r, http.MethodPost, base+"/replace", gin.H{"slot": 0, "card_id": "cleric"})
	require.Equal(t, http.StatusOK, w.Code)
	res := out["result"].(map[string]interface{})
	assert.Equal(t, "fighter", res["returned"].(map[string]interface{})["id"])

	w, _ = do(t, r, http.MethodPost, base+"/summon", gin.H{"summon_id": "unicorn"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = do(t, r, http.MethodPost, base+"/attack", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnknownEncounter(t *testing.T) {
	r, _ := newTestServer(t)
	w, _ := do(t, r, http.MethodGet, "/api/encounters/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = do(t, r, http.MethodPost, "/api/encounters/nope/end-turn", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogAndStats(t *testing.T) {
	r, repo := newTestServer(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cards", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var cards []game.CardDefinition
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cards))
	assert.Len(t, cards, 3)

	for _, p := range []string{"/api/summons", "/api/enemies", "/api/stats/usage", "/api/version", "/healthz"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, p, nil))
		assert.Equal(t, http.StatusOK, w.Code, p)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats/enemies", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var stats []game.EnemyStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats[0].Victories)

	repo.failing = true
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats/enemies", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestParseTarget(t *testing.T) {
	cases := []struct {
		raw    string
		slot   int
		isSlot bool
		party  bool
		err    bool
	}{
		{raw: ``},
		{raw: `null`},
		{raw: `2`, slot: 2, isSlot: true},
		{raw: `"1"`, slot: 1, isSlot: true},
		{raw: `"ALL"`, party: true},
		{raw: `"x"`, err: true},
		{raw: `1.5`, err: true},
	}
	for _, tc := range cases {
		got, err := parseTarget(json.RawMessage(tc.raw))
		if tc.err {
			assert.Error(t, err, tc.raw)
			continue
		}
		require.NoError(t, err, tc.raw)
		slot, ok := got.Slot()
		assert.Equal(t, tc.isSlot, ok, tc.raw)
		if ok {
			assert.Equal(t, tc.slot, slot, tc.raw)
		}
		assert.Equal(t, tc.party, got.IsParty(), tc.raw)
	}
}
