package subscriptionsapi

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"bookly-backend/database"
	bookingsapi "bookly-backend/internal/api/bookings"
	"bookly-backend/internal/domain/billing"
	"bookly-backend/internal/domain/notifications"
	"bookly-backend/internal/domain/plans"
	"bookly-backend/internal/domain/providers"
	"bookly-backend/internal/infra/cache"
	"bookly-backend/internal/infra/mailer"
	"bookly-backend/internal/infra/razorpay"
	"bookly-backend/internal/schedule"

	"github.com/gin-gonic/gin"
)

type PurchaseRequest struct {
	PlanID            uint    `json:"planId" binding:"required"`
	Amount            float64 `json:"amount"`
	RazorpayOrderID   string  `json:"razorpay_order_id"`
	RazorpayPaymentID string  `json:"razorpay_payment_id"`
	RazorpaySignature string  `json:"razorpay_signature"`
}

// POST /subscriptions/:username
//
// The whole workflow sits behind one failure boundary: persistence may have
// happened before a later notification or email fails, and that is accepted
// as best-effort rather than rolled back.
func PurchasePlan(c *gin.Context) {
	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid payload"})
		return
	}

	provider, err := applyPlan(c.Request.Context(), c.Param("username"), &req)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "provider": provider})
}

func applyPlan(ctx context.Context, username string, req *PurchaseRequest) (*providers.Provider, error) {
	var plan plans.Plan
	if err := database.DB.First(&plan, "id = ?", req.PlanID).Error; err != nil {
		return nil, errors.New("plan not found")
	}

	var provider providers.Provider
	if err := database.DB.Preload("Plan").First(&provider, "username = ?", username).Error; err != nil {
		return nil, errors.New("provider not found")
	}

	if plan.Duration == plans.DurationTrial && provider.HasUsedTrial {
		return nil, errors.New("trial already used")
	}

	// Paid purchases carry gateway ids and a callback signature; all three
	// must check out before anything is written.
	if req.Amount > 0 {
		if req.RazorpayOrderID == "" || req.RazorpayPaymentID == "" {
			return nil, errors.New("payment details missing")
		}
		if !razorpay.VerifySignature(bookingsapi.Gateway.Secret(), req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
			return nil, errors.New(paymentsInvalidSignature)
		}
	}

	now := time.Now()
	renewal := plans.IsRenewal(provider.PlanExpiry, now)
	expiry := plans.NextExpiry(&plan, provider.PlanExpiry, now)

	updates := map[string]interface{}{
		"plan_id":     plan.ID,
		"plan_expiry": expiry,
	}
	if plan.Duration == plans.DurationTrial {
		updates["has_used_trial"] = true
	}
	if err := database.DB.Model(&providers.Provider{}).
		Where("id = ?", provider.ID).
		Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	// Trials are free: no ledger record for a zero amount.
	if req.Amount > 0 {
		ledger := billing.Payment{
			ProviderUsername: provider.Username,
			PlanID:           &plan.ID,
			OrderID:          req.RazorpayOrderID,
			PaymentID:        req.RazorpayPaymentID,
			Amount:           req.Amount,
			Currency:         "INR",
			Status:           "paid",
		}
		if err := database.DB.Create(&ledger).Error; err != nil {
			return nil, fmt.Errorf("failed to record payment: %w", err)
		}
	}

	notif := notifications.Notification{
		Recipient: notifications.RecipientAdmin,
		Message:   adminMessage(&provider, &plan, renewal),
		Category:  notifications.CategoryGeneral,
		Link:      "/admin/providers/" + provider.Username,
	}
	if err := database.DB.Create(&notif).Error; err != nil {
		return nil, fmt.Errorf("failed to record notification: %w", err)
	}

	subject, body := mailer.SubscriptionPurchased(provider.Name, plan.Name, expiry.Format("02 Jan 2006"))
	if err := mailer.Send(provider.Email, subject, body); err != nil {
		log.Printf("subscription email for %s failed: %v", provider.Username, err)
	}

	cache.InvalidateProvider(ctx, provider.Username)

	var refreshed providers.Provider
	if err := database.DB.Preload("Plan").Preload("Settings.ServiceTypes").
		First(&refreshed, "id = ?", provider.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload provider: %w", err)
	}
	return &refreshed, nil
}

// adminMessage distinguishes upgrade, renewal and new subscription for the
// admin feed. Upgrade means the new plan costs more than the current one.
func adminMessage(p *providers.Provider, newPlan *plans.Plan, renewal bool) string {
	label := schedule.FormatINR(newPlan.PriceINR)
	switch {
	case p.Plan != nil && newPlan.PriceINR > p.Plan.PriceINR:
		return fmt.Sprintf("%s upgraded to %s (%s)", p.Username, newPlan.Name, label)
	case renewal:
		return fmt.Sprintf("%s renewed %s (%s)", p.Username, newPlan.Name, label)
	default:
		return fmt.Sprintf("%s subscribed to %s (%s)", p.Username, newPlan.Name, label)
	}
}

const paymentsInvalidSignature = "Invalid payment signature."
