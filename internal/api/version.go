package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/vecna-cards/internal/constants"
	"github.com/ericogr/vecna-cards/internal/version"
)

// Version returns build and VCS metadata injected at build time.
func Version(c *gin.Context) {
	c.JSON(http.StatusOK, version.Current())
}

// Healthz is the liveness probe used by cmd/healthcheck.
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "ok"})
}
