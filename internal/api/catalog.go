package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/vecna-cards/internal/constants"
)

func (h *EncounterHandler) ListCards(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Cards())
}

func (h *EncounterHandler) ListSummons(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Summons())
}

func (h *EncounterHandler) ListEnemies(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Enemies())
}

// GetEnemyStats returns how often each enemy was defeated and how often it won.
func (h *EncounterHandler) GetEnemyStats(c *gin.Context) {
	stats, err := h.encounters.EnemyStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchStats})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *EncounterHandler) GetUsageStats(c *gin.Context) {
	stats, err := h.encounters.UsageStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchStats})
		return
	}
	c.JSON(http.StatusOK, stats)
}
