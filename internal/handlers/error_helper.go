package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/grandora/hotel-manager/internal/httperr"
)

// businessStatus maps business-rule codes to HTTP statuses. Codes not
// listed here fall through to 500 so a new rule cannot silently leak as
// a client error.
var businessStatus = map[string]func(*gin.Context, string, string){
	"room_not_found":    httperr.NotFound,
	"booking_not_found": httperr.NotFound,
	"promo_not_found":   httperr.NotFound,

	"booking_overlap": httperr.Conflict,
	"already_paid":    httperr.Conflict,
	"duplicate_code":  httperr.Conflict,
	"invalid_state":   httperr.Conflict,

	"room_unavailable":     httperr.BadRequest,
	"invalid_amount":       httperr.BadRequest,
	"promo_not_yet_active": httperr.BadRequest,
	"promo_expired":        httperr.BadRequest,
	"promo_invalid":        httperr.BadRequest,
}

var businessMessages = map[string]string{
	"room_not_found":       "Room not found.",
	"booking_not_found":    "Booking not found.",
	"promo_not_found":      "Promotion code not found.",
	"booking_overlap":      "The room is already booked for those dates.",
	"already_paid":         "This booking has already been paid.",
	"duplicate_code":       "A promotion with this code already exists.",
	"invalid_state":        "The booking is not in a state that allows this action.",
	"room_unavailable":     "The room is not available for booking.",
	"invalid_amount":       "The payment amount must be positive.",
	"promo_not_yet_active": "The promotion is not active yet.",
	"promo_expired":        "The promotion has expired.",
	"promo_invalid":        "The promotion is not valid.",
}

func writeError(c *gin.Context, err error) {
	if ve, ok := httperr.IsValidation(err); ok {
		httperr.WriteValidation(c, ve)
		return
	}

	var be httperr.BusinessError
	if errors.As(err, &be) {
		if write, ok := businessStatus[be.Code]; ok {
			write(c, be.Code, businessMessages[be.Code])
			return
		}
	}

	httperr.Internal(c, "internal_error", "Something went wrong.")
}
