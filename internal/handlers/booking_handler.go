package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	bookingDomain "github.com/grandora/hotel-manager/internal/domain/booking"
	"github.com/grandora/hotel-manager/internal/httperr"
	"github.com/grandora/hotel-manager/internal/httpresp"
	"github.com/grandora/hotel-manager/internal/middleware"
	ucBooking "github.com/grandora/hotel-manager/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

// BookingHandler serves the customer-facing booking routes. Front-desk
// operations live in AdminBookingHandler.
type BookingHandler struct {
	repo     bookingDomain.Repository
	createUC *ucBooking.CreateBooking
	cancelUC *ucBooking.CancelBooking
}

func NewBookingHandler(
	repo bookingDomain.Repository,
	createUC *ucBooking.CreateBooking,
	cancelUC *ucBooking.CancelBooking,
) *BookingHandler {
	return &BookingHandler{
		repo:     repo,
		createUC: createUC,
		cancelUC: cancelUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	RoomID       uint   `json:"room_id" binding:"required"`
	CheckIn      string `json:"check_in" binding:"required"`
	CheckOut     string `json:"check_out" binding:"required"`
	ServicesUsed string `json:"services_used"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserID:       userID,
		RoomID:       req.RoomID,
		CheckIn:      req.CheckIn,
		CheckOut:     req.CheckOut,
		ServicesUsed: req.ServicesUsed,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, b)
}

func (h *BookingHandler) MyBookings(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookings, err := h.repo.ListBookingsForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "internal_error", "Failed to list bookings.")
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Booking id must be numeric.")
		return
	}

	b, err := h.cancelUC.Execute(c.Request.Context(), uint(bookingID), userID, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, b)
}
