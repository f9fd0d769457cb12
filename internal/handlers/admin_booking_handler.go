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

// AdminBookingHandler serves the front-desk side of the lifecycle:
// walk-in registration, arrival, departure and corrections.
type AdminBookingHandler struct {
	repo       bookingDomain.Repository
	walkInUC   *ucBooking.CreateWalkInBooking
	checkInUC  *ucBooking.CheckInBooking
	checkOutUC *ucBooking.CheckOutBooking
	cancelUC   *ucBooking.CancelBooking
	deleteUC   *ucBooking.DeleteBooking
}

func NewAdminBookingHandler(
	repo bookingDomain.Repository,
	walkInUC *ucBooking.CreateWalkInBooking,
	checkInUC *ucBooking.CheckInBooking,
	checkOutUC *ucBooking.CheckOutBooking,
	cancelUC *ucBooking.CancelBooking,
	deleteUC *ucBooking.DeleteBooking,
) *AdminBookingHandler {
	return &AdminBookingHandler{
		repo:       repo,
		walkInUC:   walkInUC,
		checkInUC:  checkInUC,
		checkOutUC: checkOutUC,
		cancelUC:   cancelUC,
		deleteUC:   deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateWalkInRequest struct {
	GuestName  string `json:"guest_name" binding:"required"`
	GuestPhone string `json:"guest_phone" binding:"required"`
	GuestEmail string `json:"guest_email"`

	RoomID       uint   `json:"room_id" binding:"required"`
	CheckIn      string `json:"check_in" binding:"required"`
	CheckOut     string `json:"check_out" binding:"required"`
	ServicesUsed string `json:"services_used"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AdminBookingHandler) List(c *gin.Context) {
	bookings, err := h.repo.ListBookings(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "internal_error", "Failed to list bookings.")
		return
	}

	httpresp.List(c, bookings)
}

func (h *AdminBookingHandler) Get(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Booking id must be numeric.")
		return
	}

	b, err := h.repo.GetBookingByID(c.Request.Context(), uint(bookingID))
	if err != nil {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}

	httpresp.OK(c, b)
}

func (h *AdminBookingHandler) CreateWalkIn(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateWalkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.walkInUC.Execute(c.Request.Context(), ucBooking.CreateWalkInBookingInput{
		StaffID:      staffID,
		GuestName:    req.GuestName,
		GuestPhone:   req.GuestPhone,
		GuestEmail:   req.GuestEmail,
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

func (h *AdminBookingHandler) CheckIn(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Booking id must be numeric.")
		return
	}

	b, err := h.checkInUC.Execute(c.Request.Context(), uint(bookingID), staffID)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *AdminBookingHandler) CheckOut(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Booking id must be numeric.")
		return
	}

	b, err := h.checkOutUC.Execute(c.Request.Context(), uint(bookingID), staffID)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *AdminBookingHandler) Cancel(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Booking id must be numeric.")
		return
	}

	// ownerID zero: staff may cancel any booking.
	b, err := h.cancelUC.Execute(c.Request.Context(), uint(bookingID), 0, staffID)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *AdminBookingHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Booking id must be numeric.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), uint(bookingID), adminID); err != nil {
		writeError(c, err)
		return
	}

	c.Status(204)
}
