package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/vecna-cards/internal/constants"
	"github.com/ericogr/vecna-cards/internal/service"
)

type StartRequest struct {
	EnemyID string   `json:"enemy_id" binding:"required"`
	CardIDs []string `json:"card_ids" binding:"required"`
	Seed    *int64   `json:"seed"`
}

type PlaceRequest struct {
	// Slot is optional; without it the hero takes the first empty slot.
	Slot   *int   `json:"slot"`
	CardID string `json:"card_id" binding:"required"`
}

type SlotRequest struct {
	Slot *int `json:"slot" binding:"required"`
}

type ActionRequest struct {
	Slot   *int            `json:"slot" binding:"required"`
	Target json.RawMessage `json:"target"`
}

type ReplaceRequest struct {
	Slot   *int   `json:"slot" binding:"required"`
	CardID string `json:"card_id" binding:"required"`
}

type SummonRequest struct {
	SummonID string          `json:"summon_id" binding:"required"`
	Target   json.RawMessage `json:"target"`
}

func encounterID(c *gin.Context) string { return c.Param(constants.ParamEncounterID) }

// StartEncounter opens a new encounter.
func (h *EncounterHandler) StartEncounter(c *gin.Context) {
	var req StartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, constants.ErrInvalidRequest)
		return
	}
	v, err := h.encounters.Start(service.StartRequest{EnemyID: req.EnemyID, CardIDs: req.CardIDs, Seed: req.Seed})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{constants.JSONKeySuccess: true, "encounter": v})
}

func (h *EncounterHandler) GetEncounter(c *gin.Context) {
	v, err := h.encounters.Get(encounterID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header(constants.CacheControlHeader, constants.CacheControlNoCache)
	c.JSON(http.StatusOK, v)
}

// PlaceHero places a card from the hand, into the requested slot or the
// first empty one.
func (h *EncounterHandler) PlaceHero(c *gin.Context) {
	var req PlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, constants.ErrInvalidRequest)
		return
	}
	var (
		out *service.Outcome
		err error
	)
	if req.Slot == nil {
		out, err = h.encounters.PlaceAuto(encounterID(c), req.CardID)
	} else {
		out, err = h.encounters.Place(encounterID(c), *req.Slot, req.CardID)
	}
	respond(c, out, err)
}

func (h *EncounterHandler) Attack(c *gin.Context) {
	var req SlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, constants.ErrInvalidRequest)
		return
	}
	out, err := h.encounters.Attack(encounterID(c), *req.Slot)
	respond(c, out, err)
}

// Act plays the hero's card action with an optional target.
func (h *EncounterHandler) Act(c *gin.Context) {
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, constants.ErrInvalidRequest)
		return
	}
	target, err := parseTarget(req.Target)
	if err != nil {
		badRequest(c, constants.ErrInvalidTarget)
		return
	}
	out, err := h.encounters.Act(encounterID(c), *req.Slot, target)
	respond(c, out, err)
}

func (h *EncounterHandler) Defend(c *gin.Context) {
	var req SlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, constants.ErrInvalidRequest)
		return
	}
	out, err := h.encounters.Defend(encounterID(c), *req.Slot)
	respond(c, out, err)
}

func (h *EncounterHandler) Replace(c *gin.Context) {
	var req ReplaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, constants.ErrInvalidRequest)
		return
	}
	out, err := h.encounters.Replace(encounterID(c), *req.Slot, req.CardID)
	respond(c, out, err)
}

func (h *EncounterHandler) Summon(c *gin.Context) {
	var req SummonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, constants.ErrInvalidRequest)
		return
	}
	target, err := parseTarget(req.Target)
	if err != nil {
		badRequest(c, constants.ErrInvalidTarget)
		return
	}
	out, err := h.encounters.Summon(encounterID(c), req.SummonID, target)
	respond(c, out, err)
}

// EndTurn runs the enemy turn and returns its events.
func (h *EncounterHandler) EndTurn(c *gin.Context) {
	out, err := h.encounters.EndTurn(encounterID(c))
	respond(c, out, err)
}

func respond(c *gin.Context, out *service.Outcome, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	writeOutcome(c, out)
}
