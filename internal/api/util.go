package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/vecna-cards/internal/constants"
	"github.com/ericogr/vecna-cards/internal/engine"
	"github.com/ericogr/vecna-cards/internal/logging"
	"github.com/ericogr/vecna-cards/internal/service"
)

var errInvalidTarget = errors.New("invalid target")

// parseTarget reads an optional target: a slot number or "all".
func parseTarget(raw json.RawMessage) (engine.Target, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return engine.Untargeted, nil
	}
	var slot int
	if err := json.Unmarshal(raw, &slot); err == nil {
		return engine.AtSlot(slot), nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return engine.Untargeted, errInvalidTarget
	}
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, constants.TargetAll) {
		return engine.WholeParty(), nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return engine.AtSlot(n), nil
	}
	return engine.Untargeted, errInvalidTarget
}

// writeError maps service and engine errors onto HTTP responses. Engine
// failures are rejected actions, reported with their reason code.
func writeError(c *gin.Context, err error) {
	if reason := engine.ReasonOf(err); reason != "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			constants.JSONKeySuccess: false,
			constants.JSONKeyReason:  reason,
			constants.JSONKeyError:   err.Error(),
		})
		return
	}
	status, msg := http.StatusInternalServerError, constants.ErrInternal
	switch {
	case errors.Is(err, service.ErrEncounterNotFound):
		status, msg = http.StatusNotFound, constants.ErrEncounterNotFound
	case errors.Is(err, service.ErrEncounterFinished):
		status, msg = http.StatusConflict, constants.ErrEncounterFinished
	case errors.Is(err, service.ErrUnknownEnemy):
		status, msg = http.StatusBadRequest, constants.ErrUnknownEnemy
	case errors.Is(err, service.ErrUnknownCard):
		status, msg = http.StatusBadRequest, constants.ErrUnknownCard
	case errors.Is(err, service.ErrUnknownSummon):
		status, msg = http.StatusBadRequest, constants.ErrUnknownSummon
	case errors.Is(err, service.ErrCardNotInHand):
		status, msg = http.StatusBadRequest, constants.ErrCardNotInHand
	case errors.Is(err, service.ErrEmptyParty):
		status, msg = http.StatusBadRequest, constants.ErrEmptyParty
	default:
		logging.Error("request failed", err, logging.Fields{"path": c.FullPath()})
	}
	c.JSON(status, gin.H{constants.JSONKeySuccess: false, constants.JSONKeyError: msg})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeySuccess: false, constants.JSONKeyError: msg})
}

func writeOutcome(c *gin.Context, out *service.Outcome) {
	c.Header(constants.CacheControlHeader, constants.CacheControlNoCache)
	c.JSON(http.StatusOK, gin.H{
		constants.JSONKeySuccess: true,
		"result":                 out.Result,
		"encounter":              out.Encounter,
	})
}

// requestLogger logs one structured line per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logging.Info("http request", logging.Fields{
			"method":      c.Request.Method,
			"path":        c.FullPath(),
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
		})
	}
}
