package handler

import (
	"context"
	"main/utils"
	"time"

	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

// HealthCheck reports service liveness plus database and resource status.
func HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "healthy"
	if err := utils.PingMongo(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	status := "healthy"
	if dbStatus != "healthy" {
		status = "degraded"
	}

	utils.Success(c, gin.H{
		"status":         status,
		"uptime":         time.Since(startTime).String(),
		"database":       dbStatus,
		"cpu_percent":    utils.GetCPUUsage(),
		"memory_percent": utils.GetMemoryUsage(),
	})
}
