package routes

import (
	"github.com/profinder-dev/profinder/controllers"
	"github.com/profinder-dev/profinder/middleware"
	"github.com/gin-gonic/gin"
)

// initUserRoutes initializes all user-facing routes
func initUserRoutes(router *gin.RouterGroup) {
	// Public routes (no authentication required)
	router.POST("/signup", controllers.RegisterUser)
	router.POST("/verify-otp", controllers.VerifyOTP)
	router.POST("/login", controllers.LoginUser)
	router.POST("/forgot-password", controllers.ForgotPassword)
	router.POST("/reset-password", controllers.ResetPassword)

	// Browsing is open to everyone
	router.GET("/professionals", controllers.ListProfessionals)
	router.GET("/professions", controllers.ListProfessionFacets)
	router.GET("/professionals/:id", controllers.GetProfessionalDetails)
	router.GET("/geocode/reverse", controllers.ReverseGeocode)

	// Protected routes
	user := router.Group("")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("/me", controllers.GetCurrentUser)

		// Professional application
		user.POST("/apply-professional", controllers.SubmitProfessionalProfile)
		user.POST("/apply-professional/photo", controllers.UploadProfessionalPhoto)

		// Request wizard
		user.POST("/request-drafts", controllers.StartRequestDraft)
		user.GET("/request-drafts/:id", controllers.GetRequestDraft)

		// Checkout callbacks, one per outcome
		user.POST("/checkout/initiate", controllers.InitiateCheckout)
		user.POST("/checkout/verify", controllers.VerifyCheckout)
		user.POST("/checkout/failed", controllers.RecordFailedCheckout)
		user.POST("/checkout/cancelled", controllers.RecordCancelledCheckout)

		// Service requests
		user.GET("/requests", controllers.ListUserRequests)
		user.GET("/requests/:id", controllers.GetUserRequestDetails)
		user.POST("/requests/:id/rate", controllers.RateProfessional)

		// Payments
		user.GET("/payments", controllers.ListUserPayments)
		user.GET("/payments/:id/receipt", controllers.DownloadPaymentReceipt)

		// Notifications
		user.GET("/notifications", controllers.ListUserNotifications)
	}
}
