package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/roybobrovich/meal-prep-app/config"
)

// GET /health
func HealthCheck(c *gin.Context) {
	dbStatus := "connected"
	sqlDB, err := config.DB.DB()
	if err != nil {
		dbStatus = "error: " + err.Error()
	} else if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		dbStatus = "error: " + err.Error()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "meal-prep-backend",
		"version":   "1.0.0",
		"database":  dbStatus,
	})
}
