package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/roybobrovich/meal-prep-app/controllers"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// the frontend is served from a different origin
	r.Use(cors.Default())

	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")
	{
		api.GET("/search", controllers.SearchFoods)
		api.GET("/food/:id", controllers.GetFoodDetails)
		api.POST("/calculate", controllers.CalculateMeal)

		api.POST("/meals", controllers.SaveMeal)
		api.GET("/meals", controllers.ListMeals)
		api.GET("/meals/:id", controllers.GetMeal)
		api.DELETE("/meals/:id", controllers.DeleteMeal)
	}

	return r
}
