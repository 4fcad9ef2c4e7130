// file: routes/router.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/stansam/EduSafaris-sub001/controllers"
	"github.com/stansam/EduSafaris-sub001/middlewares"
	"github.com/stansam/EduSafaris-sub001/models"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	apiV1 := r.Group("/api/v1")
	{
		// --- Users ---
		usersPublic := apiV1.Group("/users")
		{
			usersPublic.POST("/register", controllers.Register)
			usersPublic.POST("/login", controllers.Login)
			usersPublic.POST("/forgot-password", controllers.ForgotPassword)
			usersPublic.POST("/reset-password", controllers.ResetPassword)
		}
		usersAuth := apiV1.Group("/users")
		usersAuth.Use(middlewares.JWTAuthMiddleware())
		{
			usersAuth.GET("/:id", controllers.GetUserDetail)
			usersAuth.PUT("/me", controllers.UpdateProfile)
			usersAuth.POST("/send-verification", controllers.SendVerificationEmail)
			usersAuth.POST("/verify-email", controllers.VerifyEmail)
		}
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin))
		{
			adminRoutes.GET("/users", controllers.GetUserList)
			adminRoutes.PUT("/users/:id/status", controllers.UpdateUserStatus)
			adminRoutes.PUT("/users/:id/role", controllers.UpdateUserRole)
			adminRoutes.PUT("/vendors/:id/status", controllers.UpdateVendorStatus)
		}

		// --- Trips ---
		tripRoutes := apiV1.Group("/trips")
		{
			tripRoutes.GET("", middlewares.JWTTryAuthMiddleware(), controllers.ListTrips)
			tripRoutes.GET("/:id", middlewares.JWTTryAuthMiddleware(), controllers.GetTripDetail)

			organizer := tripRoutes.Group("")
			organizer.Use(middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleTeacher))
			{
				organizer.POST("", controllers.CreateTrip)
				organizer.PUT("/:id", controllers.UpdateTrip)
				organizer.POST("/:id/publish", controllers.PublishTrip)
				organizer.POST("/:id/open-registration", controllers.OpenRegistration)
				organizer.POST("/:id/close-registration", controllers.CloseRegistration)
				organizer.POST("/:id/start", controllers.StartTrip)
				organizer.POST("/:id/complete", controllers.CompleteTrip)
				organizer.POST("/:id/cancel", controllers.CancelTrip)
				organizer.GET("/:id/participants", controllers.ListTripRoster)
				organizer.POST("/:id/bookings", controllers.CreateBooking)
				organizer.GET("/:id/bookings", controllers.ListTripBookings)
				organizer.GET("/:id/revenue", controllers.GetTripRevenueReport)
			}

			// Guardians register children on open trips.
			tripRoutes.POST("/:id/register", middlewares.JWTAuthMiddleware(),
				middlewares.RoleAuthMiddleware(models.RoleParent), controllers.RegisterParticipant)
		}

		// --- Participants ---
		participantRoutes := apiV1.Group("/participants")
		participantRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			participantRoutes.GET("/mine", controllers.ListMyParticipants)
			participantRoutes.POST("/:participant_id/confirm",
				middlewares.RoleAuthMiddleware(models.RoleTeacher), controllers.ConfirmParticipant)
			participantRoutes.POST("/:participant_id/cancel", controllers.CancelParticipant)
			participantRoutes.POST("/:participant_id/consent",
				middlewares.RoleAuthMiddleware(models.RoleParent), controllers.SignConsent)
			participantRoutes.POST("/:participant_id/payments", controllers.RecordParticipantPayment)
		}

		// --- Notifications ---
		notificationRoutes := apiV1.Group("/notifications")
		notificationRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			notificationRoutes.GET("", controllers.ListNotifications)
			notificationRoutes.GET("/unread-count", controllers.GetUnreadCount)
			notificationRoutes.PUT("/:id/read", controllers.MarkNotificationRead)
			notificationRoutes.PUT("/read-all", controllers.MarkAllNotificationsRead)
		}

		// --- Vendors & bookings ---
		vendorRoutes := apiV1.Group("/vendors")
		{
			vendorRoutes.GET("", middlewares.JWTAuthMiddleware(), controllers.ListVendors)
			vendorRoutes.POST("", middlewares.JWTAuthMiddleware(),
				middlewares.RoleAuthMiddleware(models.RoleVendor), controllers.CreateVendorProfile)
		}
		bookingRoutes := apiV1.Group("/bookings")
		bookingRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			bookingRoutes.PUT("/:id/status", controllers.UpdateBookingStatus)
			bookingRoutes.POST("/:id/payments", controllers.RecordBookingPayment)
		}
	}

	return r
}
