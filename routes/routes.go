package routes

import (
	"os"

	"github.com/profinder-dev/profinder/controllers"
	"github.com/profinder-dev/profinder/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter() *gin.Engine {
	router := gin.New()

	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	// Session store backs the registration OTP flow
	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		sessionSecret = "profinder-dev-secret"
	}
	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{
		MaxAge:   60 * 60 * 24, // 1 day
		Path:     "/",
		Secure:   false, // Set to true in production with HTTPS
		HttpOnly: true,
	})
	router.Use(sessions.Sessions("profinder", store))

	router.GET("/health", func(c *gin.Context) {
		if err := utils.CheckSessionStore(c); err != nil {
			utils.LogError("Session store check failed: %v", err)
			utils.InternalServerError(c, "Session store unavailable", err.Error())
			return
		}
		utils.Success(c, "OK", gin.H{"service": utils.AppName})
	})

	// Auth routes (for OAuth)
	auth := router.Group("/auth")
	{
		auth.GET("/google/login", controllers.GoogleLogin)
		auth.GET("/google/callback", controllers.GoogleCallback)
	}

	// API version group
	api := router.Group("/v1")
	{
		initUserRoutes(api)
		initProfessionalRoutes(api)
		initSuperAdminRoutes(api)
	}

	return router
}
