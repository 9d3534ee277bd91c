package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lmartin/tennis-stats-service/internal/service"
	"github.com/lmartin/tennis-stats-service/pkg/response"
)

type StatisticsHandler struct {
	svc service.StatisticsService
}

func NewStatisticsHandler(svc service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{svc: svc}
}

func (h *StatisticsHandler) Register(r *gin.Engine) {
	r.GET(StatisticsPath, h.get)
}

func (h *StatisticsHandler) get(c *gin.Context) {
	stats, err := h.svc.GetStatistics(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{"statistics": stats})
}
