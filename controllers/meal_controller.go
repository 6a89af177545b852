package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/roybobrovich/meal-prep-app/config"
	"github.com/roybobrovich/meal-prep-app/logger"
	"github.com/roybobrovich/meal-prep-app/models"
	"github.com/roybobrovich/meal-prep-app/services"
)

type calculateRequest struct {
	Ingredients []services.IngredientRequest `json:"ingredients"`
	Servings    int                          `json:"servings"`
}

// POST /api/calculate
func CalculateMeal(c *gin.Context) {
	var body calculateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.Servings == 0 {
		body.Servings = 1
	}

	result, err := services.CalculateMeal(body.Ingredients, body.Servings)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// POST /api/meals
func SaveMeal(c *gin.Context) {
	var body services.SaveMealRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.Servings == 0 {
		body.Servings = 1
	}

	mealSvc := services.NewMealService(config.DB)
	meal, err := mealSvc.SaveMeal(c.Request.Context(), body)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("meal saved", "id", meal.ID, "name", meal.Name)
	c.JSON(http.StatusCreated, meal.ToResponse())
}

// GET /api/meals
func ListMeals(c *gin.Context) {
	mealSvc := services.NewMealService(config.DB)
	meals, err := mealSvc.ListMeals(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]models.MealResponse, 0, len(meals))
	for i := range meals {
		out = append(out, meals[i].ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{
		"total": len(out),
		"meals": out,
	})
}

// GET /api/meals/:id
func GetMeal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meal ID"})
		return
	}

	mealSvc := services.NewMealService(config.DB)
	meal, err := mealSvc.GetMeal(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal.ToResponse())
}

// DELETE /api/meals/:id
func DeleteMeal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meal ID"})
		return
	}

	mealSvc := services.NewMealService(config.DB)
	if err := mealSvc.DeleteMeal(c.Request.Context(), uint(id)); err != nil {
		respondError(c, err)
		return
	}

	logger.Info("meal deleted", "id", id)
	c.JSON(http.StatusOK, gin.H{"message": "Meal deleted successfully"})
}
