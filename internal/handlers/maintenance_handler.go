package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/grandora/hotel-manager/internal/audit"
	bookingDomain "github.com/grandora/hotel-manager/internal/domain/booking"
	"github.com/grandora/hotel-manager/internal/httperr"
	"github.com/grandora/hotel-manager/internal/httpresp"
	"github.com/grandora/hotel-manager/internal/middleware"
	"github.com/grandora/hotel-manager/internal/models"
	"github.com/grandora/hotel-manager/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type MaintenanceHandler struct {
	db       *gorm.DB
	bookings bookingDomain.Repository
	audit    *audit.Dispatcher
}

func NewMaintenanceHandler(
	db *gorm.DB,
	bookings bookingDomain.Repository,
	dispatcher *audit.Dispatcher,
) *MaintenanceHandler {
	return &MaintenanceHandler{
		db:       db,
		bookings: bookings,
		audit:    dispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ScheduleMaintenanceRequest struct {
	RoomID          uint   `json:"room_id" binding:"required"`
	Description     string `json:"description" binding:"required"`
	MaintenanceDate string `json:"maintenance_date"`
}

// ======================================================
// HANDLERS
// ======================================================

// Schedule opens a maintenance ticket and pulls the room out of the
// bookable pool immediately.
func (h *MaintenanceHandler) Schedule(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	var req ScheduleMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var room models.Room
	if err := h.db.First(&room, req.RoomID).Error; err != nil {
		httperr.NotFound(c, "room_not_found", "Room not found.")
		return
	}

	date := timezone.Today()
	if req.MaintenanceDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.MaintenanceDate, date.Location())
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "maintenance_date must be YYYY-MM-DD.")
			return
		}
		date = parsed
	}

	m := models.RoomMaintenance{
		RoomID:          room.ID,
		StaffID:         &staffID,
		Description:     req.Description,
		MaintenanceDate: date,
		Status:          models.MaintenanceScheduled,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		return tx.Model(&models.Room{}).
			Where("id = ?", room.ID).
			Update("status", models.RoomStatusMaintenance).Error
	})
	if err != nil {
		httperr.Internal(c, "internal_error", "Failed to schedule maintenance.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &staffID,
		Action:   "maintenance_scheduled",
		Entity:   "room_maintenance",
		EntityID: &m.ID,
	})

	httpresp.Created(c, m)
}

// Complete closes the ticket. The room goes back to Available unless a
// guest currently holds it, in which case it resumes as Booked.
func (h *MaintenanceHandler) Complete(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Maintenance id must be numeric.")
		return
	}

	var m models.RoomMaintenance
	if err := h.db.First(&m, id).Error; err != nil {
		httperr.NotFound(c, "maintenance_not_found", "Maintenance record not found.")
		return
	}

	if m.Status == models.MaintenanceDone {
		httperr.Conflict(c, "invalid_state", "Maintenance is already completed.")
		return
	}

	m.Status = models.MaintenanceDone
	if err := h.db.Save(&m).Error; err != nil {
		httperr.Internal(c, "internal_error", "Failed to complete maintenance.")
		return
	}

	held, err := h.bookings.RoomHeldToday(c.Request.Context(), m.RoomID, 0, timezone.Today())
	if err != nil {
		httperr.Internal(c, "internal_error", "Failed to resolve room state.")
		return
	}

	next := models.RoomStatusAvailable
	if held {
		next = models.RoomStatusBooked
	}
	if err := h.bookings.SetRoomStatus(c.Request.Context(), m.RoomID, next); err != nil {
		httperr.Internal(c, "internal_error", "Failed to update room status.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &staffID,
		Action:   "maintenance_completed",
		Entity:   "room_maintenance",
		EntityID: &m.ID,
	})

	httpresp.OK(c, m)
}

func (h *MaintenanceHandler) List(c *gin.Context) {
	q := h.db.Model(&models.RoomMaintenance{}).Preload("Room")

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if roomID := c.Query("room_id"); roomID != "" {
		q = q.Where("room_id = ?", roomID)
	}

	var records []models.RoomMaintenance
	if err := q.Order("maintenance_date DESC").Find(&records).Error; err != nil {
		httperr.Internal(c, "internal_error", "Failed to list maintenance records.")
		return
	}

	httpresp.List(c, records)
}
