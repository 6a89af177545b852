package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/roybobrovich/meal-prep-app/services"
)

// GET /api/search?query=chicken+breast
func SearchFoods(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing query parameter"})
		return
	}

	foodSvc := services.NewFoodService(services.NewUSDAService(), services.Cache)
	result, err := foodSvc.Search(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/food/:id
func GetFoodDetails(c *gin.Context) {
	fdcID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid food ID"})
		return
	}

	foodSvc := services.NewFoodService(services.NewUSDAService(), services.Cache)
	food, err := foodSvc.GetFood(c.Request.Context(), fdcID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}
