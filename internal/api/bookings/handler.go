package bookingsapi

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"bookly-backend/config"
	"bookly-backend/database"
	"bookly-backend/internal/domain/bookings"
	"bookly-backend/internal/domain/notifications"
	"bookly-backend/internal/domain/providers"
	"bookly-backend/internal/infra/mailer"
	"bookly-backend/internal/schedule"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// POST /bookings/:username
func SubmitBooking(c *gin.Context) {
	var form BookingForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"_form": []string{"Invalid submission"}}})
		return
	}

	if errs := ValidateForm(&form); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	provider, ok := loadProvider(c, c.Param("username"))
	if !ok {
		return
	}

	// Re-validate the service against the provider's live catalog; the
	// booking page may carry stale state.
	st := provider.FindServiceType(form.ServiceType)
	if st == nil || !st.Enabled {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Service type is not available"})
		return
	}

	// Address fields are only required once the service's category is known.
	if st.Category == providers.CategoryDoorstep {
		if errs := ValidateDoorstepAddress(&form); len(errs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
			return
		}
	}

	// Decide the payment branch before persisting anything: a paid service
	// with no way to collect must never become a pending booking.
	path := DecidePaymentPath(st.Price, provider.Settings.OnlinePaymentsEnabled, provider.Settings.PayLaterEnabled, form.PaymentMethod)
	if path == PathUnavailable {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No payment method is available for this service"})
		return
	}

	scheduledAt, _ := time.Parse(time.RFC3339, form.DateTime)

	address := bookings.AssembleAddress(st.Category, addressParts(&form), provider.Settings.ShopAddress)

	booking := bookings.Booking{
		ID:               uuid.NewString(),
		ProviderUsername: provider.Username,
		CustomerName:     form.CustomerName,
		CustomerEmail:    form.CustomerEmail,
		CustomerPhone:    form.CustomerPhone,
		ServiceType:      form.ServiceType,
		ScheduledAt:      scheduledAt.UTC(),
		Address:          address,
		CustomerTimezone: form.CustomerTimezone,
		Status:           bookings.StatusPending,
	}
	if err := database.DB.Create(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save booking"})
		return
	}

	switch path {
	case PathOnline:
		order, err := Gateway.CreateOrder(st.Price)
		if err != nil {
			log.Printf("order creation for booking %s failed: %v", booking.ID, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Payment could not be initiated"})
			return
		}

		booking.Payment = bookings.Payment{
			OrderID:  order.ID,
			Amount:   st.Price,
			Currency: "INR",
			Status:   bookings.PaymentPending,
		}
		if err := database.DB.Save(&booking).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save booking"})
			return
		}

		// No emails or notifications yet: those wait for the payment
		// callback to verify.
		params := BuildConfirmation(&booking, provider, "", schedule.FormatINR(st.Price))
		c.JSON(http.StatusOK, gin.H{
			"order":              order,
			"bookingId":          booking.ID,
			"confirmationParams": params,
		})

	case PathDeferred:
		booking.Payment = bookings.Payment{
			Amount:   st.Price,
			Currency: "INR",
			Status:   bookings.PaymentPending,
		}

		amountLabel := ""
		totalAmount := ""
		if st.Price > 0 {
			amountLabel = schedule.FormatINR(st.Price) + " (to be paid)"
			totalAmount = schedule.FormatINR(st.Price)
		}

		if err := FinalizeAndNotify(c.Request.Context(), &booking, provider, amountLabel); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm booking", "details": err.Error()})
			return
		}

		params := BuildConfirmation(&booking, provider, "", totalAmount)
		c.Redirect(http.StatusSeeOther, config.APP_URL+"/booking-confirmed?"+params.RedirectQuery().Encode())
	}
}

// addressParts extracts the doorstep address fields from a form.
func addressParts(f *BookingForm) bookings.AddressParts {
	return bookings.AddressParts{
		Flat:     f.Flat,
		Landmark: f.Landmark,
		City:     f.City,
		State:    f.State,
		Pincode:  f.Pincode,
		Country:  f.Country,
	}
}

// GET /providers/:username/bookings
func ListProviderBookings(c *gin.Context) {
	username := c.Param("username")

	var list []bookings.Booking
	if err := database.DB.
		Where("provider_username = ?", username).
		Order("scheduled_at DESC").
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bookings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": list})
}

// POST /bookings/:username/:id/cancel
func CancelBooking(c *gin.Context) {
	username := c.Param("username")
	id := c.Param("id")

	var booking bookings.Booking
	if err := database.DB.First(&booking, "id = ? AND provider_username = ?", id, username).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load booking"})
		return
	}

	if booking.Status == bookings.StatusCanceled {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "booking": booking})
		return
	}

	provider, ok := loadProvider(c, username)
	if !ok {
		return
	}

	booking.Status = bookings.StatusCanceled
	if err := database.DB.Save(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking"})
		return
	}

	notif := cancelNotification(&booking, provider)
	if err := database.DB.Create(&notif).Error; err != nil {
		log.Printf("cancel notification for booking %s failed: %v", booking.ID, err)
	}

	times := schedule.FormatLocalTimes(booking.ScheduledAt, provider.Settings.Timezone, booking.CustomerTimezone, provider.Settings.DateFormat)
	params := mailer.BookingParams{
		CustomerName: booking.CustomerName,
		ProviderName: provider.Name,
		ServiceType:  booking.ServiceType,
		CustomerTime: times.Customer,
		ProviderTime: times.Provider,
	}

	subject, body := mailer.BookingCanceledCustomer(params)
	if err := mailer.Send(booking.CustomerEmail, subject, body); err != nil {
		log.Printf("cancel email for booking %s failed: %v", booking.ID, err)
	}
	subject, body = mailer.BookingCanceledProvider(params)
	if err := mailer.Send(provider.Email, subject, body); err != nil {
		log.Printf("provider cancel email for booking %s failed: %v", booking.ID, err)
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "booking": booking})
}

// cancelNotification is the provider-feed record for a canceled booking,
// mirroring the new-booking record written on confirmation.
func cancelNotification(b *bookings.Booking, p *providers.Provider) notifications.Notification {
	return notifications.Notification{
		Recipient: p.Username,
		Message:   fmt.Sprintf("Booking canceled: %s by %s", b.ServiceType, b.CustomerName),
		Category:  notifications.CategoryGeneral,
		Link:      "/dashboard/bookings/" + b.ID,
	}
}

type rescheduleRequest struct {
	DateTime string `json:"dateTime" binding:"required"` // RFC3339
}

// POST /bookings/:username/:id/reschedule
func RescheduleBooking(c *gin.Context) {
	var req rescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing dateTime"})
		return
	}
	newTime, err := time.Parse(time.RFC3339, req.DateTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dateTime must be an ISO 8601 timestamp"})
		return
	}

	username := c.Param("username")

	var booking bookings.Booking
	if err := database.DB.First(&booking, "id = ? AND provider_username = ?", c.Param("id"), username).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load booking"})
		return
	}
	if booking.Status == bookings.StatusCanceled {
		c.JSON(http.StatusConflict, gin.H{"error": "Booking is canceled"})
		return
	}

	provider, ok := loadProvider(c, username)
	if !ok {
		return
	}

	booking.ScheduledAt = newTime.UTC()
	if err := database.DB.Save(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reschedule booking"})
		return
	}

	times := schedule.FormatLocalTimes(booking.ScheduledAt, provider.Settings.Timezone, booking.CustomerTimezone, provider.Settings.DateFormat)
	params := mailer.BookingParams{
		CustomerName: booking.CustomerName,
		ProviderName: provider.Name,
		ServiceType:  booking.ServiceType,
		CustomerTime: times.Customer,
		ProviderTime: times.Provider,
	}

	subject, body := mailer.BookingRescheduledCustomer(params)
	if err := mailer.Send(booking.CustomerEmail, subject, body); err != nil {
		log.Printf("reschedule email for booking %s failed: %v", booking.ID, err)
	}
	subject, body = mailer.BookingRescheduledProvider(params)
	if err := mailer.Send(provider.Email, subject, body); err != nil {
		log.Printf("provider reschedule email for booking %s failed: %v", booking.ID, err)
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "booking": booking})
}

// loadProvider resolves a provider with settings and services preloaded,
// writing the error response itself on failure.
func loadProvider(c *gin.Context, username string) (*providers.Provider, bool) {
	var provider providers.Provider
	err := database.DB.
		Preload("Settings.ServiceTypes").
		Preload("Plan").
		First(&provider, "username = ?", username).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to load provider: %v", err)})
		}
		return nil, false
	}
	return &provider, true
}
