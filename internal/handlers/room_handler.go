package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	bookingDomain "github.com/grandora/hotel-manager/internal/domain/booking"
	"github.com/grandora/hotel-manager/internal/httperr"
	"github.com/grandora/hotel-manager/internal/httpresp"
	"github.com/grandora/hotel-manager/internal/models"
	"github.com/grandora/hotel-manager/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type RoomHandler struct {
	db       *gorm.DB
	bookings bookingDomain.Repository
}

func NewRoomHandler(db *gorm.DB, bookings bookingDomain.Repository) *RoomHandler {
	return &RoomHandler{
		db:       db,
		bookings: bookings,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpsertRoomRequest struct {
	BranchID   uint    `json:"branch_id"`
	RoomNumber string  `json:"room_number" binding:"required"`
	RoomType   string  `json:"room_type"`
	Capacity   int     `json:"capacity"`
	Price      float64 `json:"price" binding:"required,gt=0"`
	Amenities  string  `json:"amenities"`
	ImageURL   string  `json:"image_url"`
	Status     string  `json:"status"`
}

// ======================================================
// LIST / SEARCH
// ======================================================

func (h *RoomHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	q := h.db.Model(&models.Room{}).Preload("Branch")

	if term := c.Query("q"); term != "" {
		like := "%" + term + "%"
		q = q.Where("room_number ILIKE ? OR room_type ILIKE ? OR amenities ILIKE ?", like, like, like)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if roomType := c.Query("room_type"); roomType != "" {
		q = q.Where("room_type = ?", roomType)
	}
	if branchID := c.Query("branch_id"); branchID != "" {
		q = q.Where("branch_id = ?", branchID)
	}
	if capStr := c.Query("min_capacity"); capStr != "" {
		if v, err := strconv.Atoi(capStr); err == nil {
			q = q.Where("capacity >= ?", v)
		}
	}
	if minPrice := c.Query("min_price"); minPrice != "" {
		if v, err := strconv.ParseFloat(minPrice, 64); err == nil {
			q = q.Where("price >= ?", v)
		}
	}
	if maxPrice := c.Query("max_price"); maxPrice != "" {
		if v, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			q = q.Where("price <= ?", v)
		}
	}

	var total int64
	q.Count(&total)

	var rooms []models.Room
	if err := q.
		Order("room_number ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&rooms).Error; err != nil {
		httperr.Internal(c, "internal_error", "Failed to list rooms.")
		return
	}

	httpresp.Page(c, rooms, page, pageSize, total)
}

func (h *RoomHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Room id must be numeric.")
		return
	}

	var room models.Room
	if err := h.db.Preload("Branch").First(&room, id).Error; err != nil {
		httperr.NotFound(c, "room_not_found", "Room not found.")
		return
	}

	httpresp.OK(c, room)
}

// ======================================================
// AVAILABILITY PROBE
// ======================================================

// CheckAvailability answers whether the room is free for a date range
// using the same overlap rule that guards booking creation. A probe is
// advisory; the answer can go stale before the booking call lands.
func (h *RoomHandler) CheckAvailability(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Room id must be numeric.")
		return
	}

	loc := timezone.Today().Location()

	checkIn, err := time.ParseInLocation("2006-01-02", c.Query("check_in"), loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "check_in must be YYYY-MM-DD.")
		return
	}
	checkOut, err := time.ParseInLocation("2006-01-02", c.Query("check_out"), loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "check_out must be YYYY-MM-DD.")
		return
	}
	if !checkOut.After(checkIn) {
		httperr.BadRequest(c, "invalid_range", "check_out must be after check_in.")
		return
	}

	room, err := h.bookings.GetRoomByID(c.Request.Context(), uint(roomID))
	if err != nil {
		httperr.NotFound(c, "room_not_found", "Room not found.")
		return
	}

	available := room.Status != models.RoomStatusMaintenance
	if available {
		has, err := h.bookings.HasOverlap(c.Request.Context(), room.ID, checkIn, checkOut)
		if err != nil {
			httperr.Internal(c, "internal_error", "Failed to check availability.")
			return
		}
		available = !has
	}

	nights := bookingDomain.Nights(checkIn, checkOut)

	resp := gin.H{
		"room_id":   room.ID,
		"check_in":  checkIn.Format("2006-01-02"),
		"check_out": checkOut.Format("2006-01-02"),
		"available": available,
		"nights":    nights,
	}
	if available {
		resp["total_price"] = bookingDomain.TotalPrice(nights, room.Price)
	}

	httpresp.OK(c, resp)
}

// ======================================================
// DASHBOARD STATS
// ======================================================

func (h *RoomHandler) Stats(c *gin.Context) {
	type statusCount struct {
		Status string `json:"status"`
		Count  int64  `json:"count"`
	}

	var counts []statusCount
	if err := h.db.Model(&models.Room{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&counts).Error; err != nil {
		httperr.Internal(c, "internal_error", "Failed to load room stats.")
		return
	}

	stats := gin.H{
		models.RoomStatusAvailable:   int64(0),
		models.RoomStatusBooked:      int64(0),
		models.RoomStatusMaintenance: int64(0),
		models.RoomStatusCleaning:    int64(0),
	}
	var total int64
	for _, sc := range counts {
		stats[sc.Status] = sc.Count
		total += sc.Count
	}
	stats["total"] = total

	httpresp.OK(c, stats)
}

// ======================================================
// ADMIN CRUD
// ======================================================

func (h *RoomHandler) Create(c *gin.Context) {
	var req UpsertRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var count int64
	h.db.Model(&models.Room{}).
		Where("branch_id = ? AND room_number = ?", req.BranchID, req.RoomNumber).
		Count(&count)
	if count > 0 {
		httperr.Conflict(c, "room_number_taken", "A room with this number already exists in the branch.")
		return
	}

	status := req.Status
	if status == "" {
		status = models.RoomStatusAvailable
	}

	room := models.Room{
		BranchID:   req.BranchID,
		RoomNumber: req.RoomNumber,
		RoomType:   req.RoomType,
		Capacity:   req.Capacity,
		Price:      req.Price,
		Amenities:  req.Amenities,
		ImageURL:   req.ImageURL,
		Status:     status,
	}

	if err := h.db.Create(&room).Error; err != nil {
		httperr.Internal(c, "internal_error", "Failed to create room.")
		return
	}

	httpresp.Created(c, room)
}

func (h *RoomHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Room id must be numeric.")
		return
	}

	var room models.Room
	if err := h.db.First(&room, id).Error; err != nil {
		httperr.NotFound(c, "room_not_found", "Room not found.")
		return
	}

	var req UpsertRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	room.RoomNumber = req.RoomNumber
	room.RoomType = req.RoomType
	room.Capacity = req.Capacity
	room.Price = req.Price
	room.Amenities = req.Amenities
	room.ImageURL = req.ImageURL
	if req.BranchID != 0 {
		room.BranchID = req.BranchID
	}
	if req.Status != "" {
		room.Status = req.Status
	}

	if err := h.db.Save(&room).Error; err != nil {
		httperr.Internal(c, "internal_error", "Failed to update room.")
		return
	}

	httpresp.OK(c, room)
}
