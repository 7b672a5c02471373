package routes

import (
	bookingsapi "bookly-backend/internal/api/bookings"
	notificationsapi "bookly-backend/internal/api/notifications"
	paymentsapi "bookly-backend/internal/api/payments"
	plansapi "bookly-backend/internal/api/plans"
	providersapi "bookly-backend/internal/api/providers"
	subscriptionsapi "bookly-backend/internal/api/subscriptions"
	"bookly-backend/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// The payment callback carries its own signature check; it bypasses the
	// sanitizer so the signed fields arrive byte-exact.
	r.POST("/bookings/:username/:id/verify", paymentsapi.VerifyBookingPayment)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.GET("/plans", plansapi.ListPlans)
	public.GET("/providers/:username", providersapi.GetProviderProfile)
	public.POST("/bookings/:username", bookingsapi.SubmitBooking)

	// Provider dashboard surface. Authentication is handled upstream and is
	// out of scope here.
	dashboard := r.Group("/")
	dashboard.Use(middleware.SanitizeAndCleanInputMiddleware())

	dashboard.GET("/providers/:username/bookings", bookingsapi.ListProviderBookings)
	dashboard.POST("/bookings/:username/:id/cancel", bookingsapi.CancelBooking)
	dashboard.POST("/bookings/:username/:id/reschedule", bookingsapi.RescheduleBooking)
	dashboard.POST("/providers/:username/blocked-slots", providersapi.ToggleBlockedSlot)
	dashboard.POST("/providers/:username/blocked-dates", providersapi.ToggleBlockedDates)
	dashboard.POST("/subscriptions/:username", subscriptionsapi.PurchasePlan)
	dashboard.GET("/notifications/:recipient", notificationsapi.ListNotifications)
}
