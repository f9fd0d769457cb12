package booking

import "github.com/grandora/hotel-manager/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending    Status = "Pending"
	StatusConfirmed  Status = "Confirmed"
	StatusCheckedIn  Status = "CheckedIn"
	StatusCheckedOut Status = "CheckedOut"
	StatusCancelled  Status = "Cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Transitions
// ===============================

// Pending → Confirmed → CheckedIn → CheckedOut; Cancelled is reachable
// from every non-terminal state.

func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCheckIn(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCheckOut(current Status) error {
	if current != StatusCheckedIn {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCancel(current Status) error {
	switch current {
	case StatusPending, StatusConfirmed, StatusCheckedIn:
		return nil
	}
	return httperr.ErrBusiness("invalid_state")
}

// Active reports whether a booking still holds its room. Cancelled and
// checked-out stays never block another reservation.
func Active(current Status) bool {
	switch current {
	case StatusPending, StatusConfirmed, StatusCheckedIn:
		return true
	}
	return false
}
