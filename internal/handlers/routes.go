package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/jobtrackr/internal/middleware"
)

// HealthCheck answers the root probe.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Server is running!"})
}

// RegisterRoutes wires the full HTTP surface. Register/login are the only
// routes outside the auth middleware.
func RegisterRoutes(r *gin.Engine, authH *AuthHandler, appH *ApplicationHandler, resumeH *ResumeHandler, jwtSecret []byte) {
	r.GET("/", HealthCheck)

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authH.Register)
		authGroup.POST("/login", authH.Login)
		authGroup.GET("/me", middleware.RequireAuth(jwtSecret), authH.Me)
	}

	apps := api.Group("/application", middleware.RequireAuth(jwtSecret))
	{
		apps.POST("", appH.Create)
		apps.GET("", appH.List)
		apps.GET("/:id", appH.Get)
		apps.PUT("/:id", appH.Update)
		apps.DELETE("/:id", appH.Delete)
	}

	resumes := api.Group("/resumes", middleware.RequireAuth(jwtSecret))
	{
		resumes.POST("", resumeH.Create)
		resumes.GET("", resumeH.List)
		resumes.GET("/:id", resumeH.Get)
		resumes.PUT("/:id", resumeH.Update)
		resumes.DELETE("/:id", resumeH.Delete)
	}
}
