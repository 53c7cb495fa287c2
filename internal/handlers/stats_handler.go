package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careerbridge/job-portal-api/internal/services"
)

type StatsHandler struct {
	Stats *services.StatsService
}

func NewStatsHandler(stats *services.StatsService) *StatsHandler {
	return &StatsHandler{Stats: stats}
}

// Public is GET /stats: the landing-page rollup, no auth required.
func (h *StatsHandler) Public(c *gin.Context) {
	stats, err := h.Stats.Public()
	if err != nil {
		fail(c, err, "Error fetching statistics")
		return
	}
	respondData(c, http.StatusOK, stats)
}
