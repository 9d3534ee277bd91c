package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/lmartin/tennis-stats-service/internal/service"
)

// Register mounts all public routes on the given engine: the players API,
// the statistics endpoint, health probes and the docs pages. Routes live at
// the root, there is no version prefix in this API's contract.
func Register(r *gin.Engine, db Pinger, players service.PlayerService, statistics service.StatisticsService) {
	h := NewHealthHandler(db)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	// Docs endpoints
	RegisterDocs(r)

	NewStatisticsHandler(statistics).Register(r)
	NewPlayerHandler(players).Register(r)
}
