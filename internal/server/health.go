package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vatsalraicha/portfolio/internal/visits"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Visits    string    `json:"visits"`
}

type HealthHandler struct {
	serviceName string
	version     string
	visits      *visits.Store
}

func NewHealthHandler(serviceName, version string, store *visits.Store) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		visits:      store,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	visitsStatus := "disabled"
	if h.visits != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		defer cancel()

		if err := h.visits.Ping(pingCtx); err != nil {
			visitsStatus = "down"
		} else {
			visitsStatus = "up"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Visits:    visitsStatus,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
