package routes

import (
	"github.com/profinder-dev/profinder/controllers"
	"github.com/profinder-dev/profinder/middleware"
	"github.com/gin-gonic/gin"
)

// initSuperAdminRoutes initializes the super-admin dashboard routes
func initSuperAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")

	// Public admin routes
	admin.POST("/login", controllers.SuperAdminLogin)

	// Protected admin routes
	protected := admin.Group("")
	protected.Use(middleware.SuperAdminAuthMiddleware())
	{
		protected.POST("/logout", controllers.SuperAdminLogout)
		protected.GET("/dashboard", controllers.GetDashboardStats)

		// User management
		protected.GET("/users", controllers.ListUsersForAdmin)
		protected.PATCH("/users/:id/block", controllers.ToggleUserBlock)

		// Professional verification and management
		protected.GET("/professionals", controllers.ListProfessionalsForReview)
		protected.POST("/professionals/:id/verify", controllers.VerifyProfessional)
		protected.POST("/professionals/:id/reject", controllers.RejectProfessional)
		protected.PUT("/professionals/:id", controllers.UpdateProfessionalByAdmin)
		protected.DELETE("/professionals/:id", controllers.DeleteProfessional)

		// Payments
		protected.GET("/payments", controllers.ListAllPayments)
		protected.PATCH("/payments/:id/status", controllers.UpdatePaymentStatus)
		protected.GET("/payments-report/excel", controllers.DownloadPaymentsReportExcel)

		// Notifications
		protected.GET("/notifications", controllers.ListAdminNotifications)
		protected.GET("/notifications-unread-count", controllers.GetAdminUnreadCount)
		protected.PATCH("/notifications/:id/read", controllers.MarkNotificationRead)
		protected.PATCH("/notifications-read-all", controllers.MarkAllNotificationsRead)

		// Push channel
		protected.GET("/ws", controllers.JoinAdminPushChannel)
	}
}
