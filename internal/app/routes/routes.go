package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/riskwatch/internal/app/controllers"
	"github.com/yigit/riskwatch/internal/middleware"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Auth         *controllers.AuthController
	Student      *controllers.StudentController
	Prediction   *controllers.PredictionController
	Intervention *controllers.InterventionController
	Dashboard    *controllers.DashboardController
	Health       *controllers.HealthController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	// --- Public routes ---
	router.GET("/health", c.Health.Health)
	router.POST("/register", c.Auth.Register)
	router.POST("/login", c.Auth.Login)

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Student records
		authenticated.POST("/student", c.Student.CreateStudent)
		authenticated.GET("/students", c.Student.ListStudents)
		authenticated.PUT("/student/:id", c.Student.UpdateStudent)
		authenticated.DELETE("/student/:id", c.Student.DeleteStudent)

		// Risk prediction
		authenticated.GET("/predict/:id", c.Prediction.Predict)

		// Interventions
		authenticated.GET("/student/:id/interventions", c.Intervention.ListInterventions)
		authenticated.POST("/student/:id/intervention", c.Intervention.CreateIntervention)
		authenticated.PUT("/intervention/:id", c.Intervention.UpdateIntervention)

		// Dashboard
		authenticated.GET("/dashboard_stats", c.Dashboard.GetStats)
	}
}
