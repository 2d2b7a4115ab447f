package handler

import (
	"time"

	"main/utils"

	"github.com/gin-gonic/gin"
)

var startedAt = time.Now()

// Health reports liveness plus basic host utilization.
func Health(c *gin.Context) {
	utils.Success(c, gin.H{
		"status":         "ok",
		"uptime_seconds": int(time.Since(startedAt).Seconds()),
		"cpu_percent":    utils.GetCPUUsage(),
		"memory_percent": utils.GetMemoryUsage(),
	})
}
