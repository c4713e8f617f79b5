package constants

// Centralized constants for headers, routes, messages and log fields.
const (
	HeaderContentType   = "Content-Type"
	ContentTypeJSON     = "application/json"
	CacheControlHeader  = "Cache-Control"
	CacheControlNoCache = "no-cache, no-store, must-revalidate"
)

// Routes used by the backend router
const (
	RouteHealthz = "/healthz"

	RouteAPIPrefix        = "/api"
	RouteVersion          = "/version"
	RouteCards            = "/cards"
	RouteSummons          = "/summons"
	RouteEnemies          = "/enemies"
	RouteStatsEnemies     = "/stats/enemies"
	RouteStatsUsage       = "/stats/usage"
	RouteEncounters       = "/encounters"
	RouteEncounterByID    = "/encounters/:encounterID"
	RouteEncounterPlace   = "/encounters/:encounterID/place"
	RouteEncounterAttack  = "/encounters/:encounterID/attack"
	RouteEncounterAction  = "/encounters/:encounterID/action"
	RouteEncounterDefend  = "/encounters/:encounterID/defend"
	RouteEncounterReplace = "/encounters/:encounterID/replace"
	RouteEncounterSummon  = "/encounters/:encounterID/summon"
	RouteEncounterEndTurn = "/encounters/:encounterID/end-turn"

	ParamEncounterID = "encounterID"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeySuccess = "success"
	JSONKeyReason  = "reason"
	JSONKeyStatus  = "status"
)

// TargetAll selects the whole party in action and summon payloads.
const TargetAll = "all"

// Common error messages used across API handlers
const (
	ErrInvalidRequest       = "Invalid request"
	ErrInvalidTarget        = "Invalid target: expected a slot number or \"all\""
	ErrEncounterNotFound    = "Encounter not found"
	ErrEncounterFinished    = "Encounter is already finished"
	ErrUnknownEnemy         = "Unknown enemy"
	ErrUnknownCard          = "Unknown card"
	ErrUnknownSummon        = "Unknown summon"
	ErrCardNotInHand        = "Card is not in hand"
	ErrEmptyParty           = "At least one card is required"
	ErrFailedStartEncounter = "Failed to start encounter"
	ErrFailedFetchStats     = "Failed to fetch stats"
	ErrInternal             = "Internal error"
)

// Logging field names
const (
	LogFieldEncounterID = "encounter_id"
	LogFieldEnemyID     = "enemy_id"
	LogFieldWinner      = "winner"
	LogFieldTurn        = "turn"
	LogFieldSeed        = "seed"
	LogFieldPartyKey    = "party_key"
	LogFieldCount       = "count"
	LogFieldAddr        = "addr"
	LogFieldSource      = "source"
	LogFieldVersion     = "version"
)
