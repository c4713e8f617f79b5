package api

import (
	"github.com/gin-gonic/gin"

	"github.com/ericogr/vecna-cards/internal/constants"
)

// NewRouter wires every route onto a fresh gin engine.
func NewRouter(h *EncounterHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.GET(constants.RouteHealthz, Healthz)

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, Version)
		apiRoutes.GET(constants.RouteCards, h.ListCards)
		apiRoutes.GET(constants.RouteSummons, h.ListSummons)
		apiRoutes.GET(constants.RouteEnemies, h.ListEnemies)
		apiRoutes.GET(constants.RouteStatsEnemies, h.GetEnemyStats)
		apiRoutes.GET(constants.RouteStatsUsage, h.GetUsageStats)

		apiRoutes.POST(constants.RouteEncounters, h.StartEncounter)
		apiRoutes.GET(constants.RouteEncounterByID, h.GetEncounter)
		apiRoutes.POST(constants.RouteEncounterPlace, h.PlaceHero)
		apiRoutes.POST(constants.RouteEncounterAttack, h.Attack)
		apiRoutes.POST(constants.RouteEncounterAction, h.Act)
		apiRoutes.POST(constants.RouteEncounterDefend, h.Defend)
		apiRoutes.POST(constants.RouteEncounterReplace, h.Replace)
		apiRoutes.POST(constants.RouteEncounterSummon, h.Summon)
		apiRoutes.POST(constants.RouteEncounterEndTurn, h.EndTurn)
	}
	return router
}
