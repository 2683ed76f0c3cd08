package routes

import (
	"github.com/profinder-dev/profinder/controllers"
	"github.com/profinder-dev/profinder/middleware"
	"github.com/gin-gonic/gin"
)

// initProfessionalRoutes initializes routes for verified professionals
func initProfessionalRoutes(router *gin.RouterGroup) {
	pro := router.Group("/pro")
	pro.Use(middleware.AuthMiddleware())
	pro.Use(middleware.ProfessionalMiddleware())
	{
		pro.GET("/requests", controllers.ListProfessionalRequests)
		pro.POST("/requests/:id/approve", controllers.ApproveRequest)
		pro.POST("/requests/:id/reject", controllers.RejectRequest)
		pro.POST("/requests/:id/start", controllers.StartRequest)
		pro.POST("/requests/:id/complete", controllers.CompleteRequest)
	}
}
