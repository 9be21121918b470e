package handlers

import (
	"net/http"
	"time"

	"cryoflow/services/facility"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness plus a facility-cache snapshot.
type HealthHandler struct {
	Facilities *facility.Store
	Version    string
}

func NewHealthHandler(store *facility.Store, version string) *HealthHandler {
	return &HealthHandler{Facilities: store, Version: version}
}

func (h *HealthHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"timestamp":   time.Now().Format(time.RFC3339),
		"version":     h.Version,
		"cacheStatus": h.Facilities.Status(),
	})
}
