package handler

import (
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	planner *usecase.Planner
}

func NewStatsHandler(planner *usecase.Planner) *StatsHandler {
	return &StatsHandler{planner: planner}
}

// GetStats returns the daily/weekly/monthly completion view for the week
// and month containing today. Pass refresh=true to force a reload of the
// entry collection before aggregating.
func (h *StatsHandler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	if c.Query("refresh") == "true" {
		utils.Success(c, gin.H{"stats": h.planner.RefreshStats(ctx)})
		return
	}
	utils.Success(c, gin.H{"stats": h.planner.Stats(ctx)})
}
