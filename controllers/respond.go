package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roybobrovich/meal-prep-app/apperrors"
	"github.com/roybobrovich/meal-prep-app/logger"
)

// respondError translates a service error into an HTTP response.
// Server-side failures get logged here; validation errors are the
// caller's problem and only come back in the body.
func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "path", c.FullPath(), "error", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
