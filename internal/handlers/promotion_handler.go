package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	promoDomain "github.com/grandora/hotel-manager/internal/domain/promotion"
	"github.com/grandora/hotel-manager/internal/httperr"
	"github.com/grandora/hotel-manager/internal/httpresp"
	"github.com/grandora/hotel-manager/internal/models"
	"github.com/grandora/hotel-manager/internal/timezone"
)

type PromotionHandler struct {
	repo promoDomain.Repository
}

func NewPromotionHandler(repo promoDomain.Repository) *PromotionHandler {
	return &PromotionHandler{repo: repo}
}

// --------- Requests ---------

type CreatePromotionRequest struct {
	Code            string  `json:"code" binding:"required"`
	Description     string  `json:"description"`
	DiscountPercent float64 `json:"discount_percent" binding:"required,gt=0,lte=100"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
}

// --------- Handlers ---------

func (h *PromotionHandler) Create(c *gin.Context) {
	var req CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	loc := timezone.Today().Location()

	var errs httperr.ValidationErrors
	var start, end *time.Time

	if req.StartDate != "" {
		t, err := time.ParseInLocation("2006-01-02", req.StartDate, loc)
		if err != nil {
			errs.Add("start_date", "invalid_date")
		} else {
			start = &t
		}
	}
	if req.EndDate != "" {
		t, err := time.ParseInLocation("2006-01-02", req.EndDate, loc)
		if err != nil {
			errs.Add("end_date", "invalid_date")
		} else {
			end = &t
		}
	}
	if start != nil && end != nil && end.Before(*start) {
		errs.Add("end_date", "end_before_start")
	}
	if errs.HasErrors() {
		httperr.WriteValidation(c, errs)
		return
	}

	percent := req.DiscountPercent

	p := &models.Promotion{
		Code:            strings.ToUpper(strings.TrimSpace(req.Code)),
		Description:     req.Description,
		DiscountPercent: &percent,
		StartDate:       start,
		EndDate:         end,
	}

	if err := h.repo.Create(c.Request.Context(), p); err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, p)
}

func (h *PromotionHandler) List(c *gin.Context) {
	promos, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "internal_error", "Failed to list promotions.")
		return
	}

	httpresp.List(c, promos)
}
