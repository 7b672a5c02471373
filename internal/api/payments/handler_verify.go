package paymentsapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"bookly-backend/database"
	bookingsapi "bookly-backend/internal/api/bookings"
	"bookly-backend/internal/domain/billing"
	"bookly-backend/internal/domain/bookings"
	"bookly-backend/internal/domain/providers"
	"bookly-backend/internal/infra/razorpay"
	"bookly-backend/internal/schedule"

	"github.com/gin-gonic/gin"
)

// ErrInvalidSignature is the only verification failure exposed to callers;
// it deliberately reveals nothing about the expected signature.
const ErrInvalidSignature = "Invalid payment signature."

type VerifyRequest struct {
	RazorpayOrderID   string  `json:"razorpay_order_id"`
	RazorpayPaymentID string  `json:"razorpay_payment_id"`
	RazorpaySignature string  `json:"razorpay_signature"`
	Amount            float64 `json:"amount"`
}

// POST /bookings/:username/:id/verify
//
// Runs after the gateway captured the money, so every failure past the
// signature check returns {success:false, error} instead of propagating:
// the caller must be able to render a recoverable state.
func VerifyBookingPayment(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid payload"})
		return
	}

	// Untrusted callback: a bad signature is an expected negative outcome,
	// never a thrown error, and nothing is mutated.
	if !razorpay.VerifySignature(bookingsapi.Gateway.Secret(), req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": ErrInvalidSignature})
		return
	}

	result, err := finalizePaidBooking(c.Request.Context(), c.Param("username"), c.Param("id"), &req)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": err.Error()})
		return
	}

	resp := gin.H{"success": true, "confirmationParams": result.Params}
	if result.MeetLink != "" {
		resp["meetLink"] = result.MeetLink
	}
	c.JSON(http.StatusOK, resp)
}

type verifyResult struct {
	Params   bookingsapi.ConfirmationParams
	MeetLink string
}

func finalizePaidBooking(ctx context.Context, username, bookingID string, req *VerifyRequest) (*verifyResult, error) {
	var booking bookings.Booking
	if err := database.DB.First(&booking, "id = ? AND provider_username = ?", bookingID, username).Error; err != nil {
		return nil, errors.New("booking not found")
	}

	var provider providers.Provider
	if err := database.DB.
		Preload("Settings.ServiceTypes").
		First(&provider, "username = ?", username).Error; err != nil {
		return nil, errors.New("provider not found")
	}

	booking.Payment = bookings.Payment{
		OrderID:   req.RazorpayOrderID,
		PaymentID: req.RazorpayPaymentID,
		Amount:    req.Amount,
		Currency:  "INR",
		Status:    bookings.PaymentPaid,
	}

	amountLabel := schedule.FormatINR(req.Amount) + " (paid)"
	if err := bookingsapi.FinalizeAndNotify(ctx, &booking, &provider, amountLabel); err != nil {
		return nil, err
	}

	// Ledger records exist only for verified payments; the signature check
	// already passed by the time we get here.
	ledger := billing.Payment{
		ProviderUsername: provider.Username,
		BookingID:        &booking.ID,
		OrderID:          req.RazorpayOrderID,
		PaymentID:        req.RazorpayPaymentID,
		Amount:           req.Amount,
		Currency:         "INR",
		Status:           bookings.PaymentPaid,
	}
	if err := database.DB.Create(&ledger).Error; err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	paid := schedule.FormatINR(req.Amount)
	params := bookingsapi.BuildConfirmation(&booking, &provider, paid, paid)

	res := &verifyResult{Params: params}
	if booking.MeetLink != nil {
		res.MeetLink = *booking.MeetLink
	}
	return res, nil
}
