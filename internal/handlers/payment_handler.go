package handlers

import (
	"log"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	bookingDomain "github.com/grandora/hotel-manager/internal/domain/booking"
	paymentDomain "github.com/grandora/hotel-manager/internal/domain/payment"
	promoDomain "github.com/grandora/hotel-manager/internal/domain/promotion"
	"github.com/grandora/hotel-manager/internal/httperr"
	"github.com/grandora/hotel-manager/internal/httpresp"
	"github.com/grandora/hotel-manager/internal/middleware"
	"github.com/grandora/hotel-manager/internal/models"
	"github.com/grandora/hotel-manager/internal/payments"
	"github.com/grandora/hotel-manager/internal/timezone"
	ucPayment "github.com/grandora/hotel-manager/internal/usecase/payment"
)

// ======================================================
// HANDLER
// ======================================================

type PaymentHandler struct {
	db       *gorm.DB
	payments paymentDomain.Repository
	bookings bookingDomain.Repository
	promos   promoDomain.Repository
	recordUC *ucPayment.RecordPayment
	gateway  *payments.CheckoutGateway
}

func NewPaymentHandler(
	db *gorm.DB,
	paymentRepo paymentDomain.Repository,
	bookingRepo bookingDomain.Repository,
	promoRepo promoDomain.Repository,
	recordUC *ucPayment.RecordPayment,
	gateway *payments.CheckoutGateway,
) *PaymentHandler {
	return &PaymentHandler{
		db:       db,
		payments: paymentRepo,
		bookings: bookingRepo,
		promos:   promoRepo,
		recordUC: recordUC,
		gateway:  gateway,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RecordPaymentRequest struct {
	BookingID       uint    `json:"booking_id" binding:"required"`
	Amount          float64 `json:"amount" binding:"required"`
	PaymentMethod   string  `json:"payment_method" binding:"required"`
	TransactionCode string  `json:"transaction_code"`
	Notes           string  `json:"notes"`
	PromotionCode   string  `json:"promotion_code"`
}

// ======================================================
// FRONT-DESK PAYMENT
// ======================================================

func (h *PaymentHandler) Record(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	p, err := h.recordUC.Execute(c.Request.Context(), ucPayment.RecordPaymentInput{
		BookingID:       req.BookingID,
		Amount:          req.Amount,
		PaymentMethod:   req.PaymentMethod,
		TransactionCode: req.TransactionCode,
		Notes:           req.Notes,
		PromotionCode:   req.PromotionCode,
		ActorID:         staffID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, p)
}

// ======================================================
// PROMOTION PREVIEW
// ======================================================

// ValidatePromotion lets the desk preview a discount before committing
// the payment. Evaluation uses the same rules the payment path applies.
func (h *PaymentHandler) ValidatePromotion(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		httperr.BadRequest(c, "missing_code", "A promotion code is required.")
		return
	}

	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil || amount <= 0 {
		httperr.BadRequest(c, "invalid_amount", "amount must be a positive number.")
		return
	}

	promo, err := h.promos.GetByCode(c.Request.Context(), code)
	if err != nil {
		httperr.NotFound(c, "promo_not_found", "Promotion code not found.")
		return
	}

	discount, err := promoDomain.Evaluate(promo, amount, timezone.Today())
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"code":             promo.Code,
		"discount_percent": promo.DiscountPercent,
		"discount_amount":  discount,
		"payable_amount":   amount - discount,
	})
}

// ======================================================
// ONLINE CHECKOUT
// ======================================================

// CreateCheckout hands the guest a hosted-checkout URL for their own
// booking. The payment itself is recorded when the provider notifies us.
func (h *PaymentHandler) CreateCheckout(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	if h.gateway == nil {
		httperr.Internal(c, "checkout_disabled", "Online checkout is not configured.")
		return
	}

	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Booking id must be numeric.")
		return
	}

	if _, err := h.bookings.GetBookingForUser(c.Request.Context(), uint(bookingID), userID); err != nil {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}

	b, err := h.payments.GetBooking(c.Request.Context(), uint(bookingID))
	if err != nil {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}

	if has, err := h.payments.HasPayment(c.Request.Context(), b.ID); err != nil {
		httperr.Internal(c, "internal_error", "Failed to check payment state.")
		return
	} else if has {
		httperr.Conflict(c, "already_paid", "This booking has already been paid.")
		return
	}

	url, err := h.gateway.CreateCheckout(c.Request.Context(), b, b.TotalPrice)
	if err != nil {
		log.Println("checkout creation error:", err)
		httperr.Internal(c, "checkout_failed", "Failed to create checkout.")
		return
	}

	httpresp.OK(c, gin.H{
		"booking_id":   b.ID,
		"amount":       b.TotalPrice,
		"checkout_url": url,
	})
}

type checkoutNotification struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// Webhook receives provider notifications and records approved payments.
// It always answers 200 for notifications it cannot act on, so the
// provider stops retrying; real failures return 500 to trigger a retry.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	if h.gateway == nil {
		c.Status(200)
		return
	}

	var note checkoutNotification
	if err := c.ShouldBindJSON(&note); err != nil || note.Type != "payment" {
		c.Status(200)
		return
	}

	providerPaymentID, err := strconv.Atoi(note.Data.ID)
	if err != nil {
		c.Status(200)
		return
	}

	externalRef, amount, ok, err := h.gateway.ConfirmedPayment(c.Request.Context(), providerPaymentID)
	if err != nil {
		log.Println("checkout confirmation error:", err)
		c.Status(500)
		return
	}
	if !ok || !strings.HasPrefix(externalRef, "BOOKING:") {
		c.Status(200)
		return
	}

	bookingID, err := strconv.Atoi(strings.TrimPrefix(externalRef, "BOOKING:"))
	if err != nil {
		c.Status(200)
		return
	}

	_, err = h.recordUC.Execute(c.Request.Context(), ucPayment.RecordPaymentInput{
		BookingID:       uint(bookingID),
		Amount:          amount,
		PaymentMethod:   "online",
		TransactionCode: note.Data.ID,
		Notes:           "hosted checkout",
	})
	if err != nil {
		// A duplicate notification is not a failure.
		if httperr.IsBusiness(err, "already_paid") {
			c.Status(200)
			return
		}
		log.Println("webhook payment record error:", err)
		c.Status(500)
		return
	}

	c.Status(200)
}

// ListForBooking returns the payment history of one booking.
func (h *PaymentHandler) ListForBooking(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Booking id must be numeric.")
		return
	}

	if _, err := h.payments.GetBooking(c.Request.Context(), uint(bookingID)); err != nil {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}

	var list []models.Payment
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Promotion").
		Where("booking_id = ?", bookingID).
		Order("paid_at ASC").
		Find(&list).Error; err != nil {
		httperr.Internal(c, "internal_error", "Failed to list payments.")
		return
	}

	httpresp.List(c, list)
}
