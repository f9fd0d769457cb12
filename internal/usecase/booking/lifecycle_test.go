package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/grandora/hotel-manager/internal/domain/booking"
	"github.com/grandora/hotel-manager/internal/httperr"
	"github.com/grandora/hotel-manager/internal/models"
	"github.com/grandora/hotel-manager/internal/timezone"
)

// seedStay creates a room plus a booking covering today..today+nights.
func seedStay(repo *fakeRepo, status domain.Status, nights int) (*models.Room, *models.Booking) {
	room := repo.addRoom(models.Room{
		RoomNumber: "301",
		Price:      500000,
		Status:     models.RoomStatusBooked,
	})

	today := timezone.Today()
	b := repo.addBooking(models.Booking{
		UserID:   5,
		RoomID:   room.ID,
		CheckIn:  today,
		CheckOut: today.AddDate(0, 0, nights),
		Status:   string(status),
	})
	return room, b
}

func TestCheckInBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmed booking checks in and books the room", func(t *testing.T) {
		repo := newFakeRepo()
		room, b := seedStay(repo, domain.StatusConfirmed, 2)
		room.Status = models.RoomStatusAvailable

		uc := NewCheckInBooking(repo, nil)
		got, err := uc.Execute(ctx, b.ID, 9)

		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCheckedIn), got.Status)

		r, _ := repo.GetRoomByID(ctx, room.ID)
		assert.Equal(t, models.RoomStatusBooked, r.Status)
	})

	t.Run("pending booking cannot check in", func(t *testing.T) {
		repo := newFakeRepo()
		_, b := seedStay(repo, domain.StatusPending, 2)

		uc := NewCheckInBooking(repo, nil)
		_, err := uc.Execute(ctx, b.ID, 9)

		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	})

	t.Run("unknown booking", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewCheckInBooking(repo, nil)

		_, err := uc.Execute(ctx, 42, 9)
		assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
	})
}

func TestCheckOutBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("checked-in booking checks out into cleaning", func(t *testing.T) {
		repo := newFakeRepo()
		room, b := seedStay(repo, domain.StatusCheckedIn, 2)

		uc := NewCheckOutBooking(repo, nil)
		got, err := uc.Execute(ctx, b.ID, 9)

		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCheckedOut), got.Status)

		r, _ := repo.GetRoomByID(ctx, room.ID)
		assert.Equal(t, models.RoomStatusCleaning, r.Status)
	})

	t.Run("confirmed booking cannot check out", func(t *testing.T) {
		repo := newFakeRepo()
		_, b := seedStay(repo, domain.StatusConfirmed, 2)

		uc := NewCheckOutBooking(repo, nil)
		_, err := uc.Execute(ctx, b.ID, 9)

		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	})
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("owner cancels and the room is released", func(t *testing.T) {
		repo := newFakeRepo()
		room, b := seedStay(repo, domain.StatusConfirmed, 2)

		uc := NewCancelBooking(repo, nil)
		got, err := uc.Execute(ctx, b.ID, b.UserID, b.UserID)

		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), got.Status)
		require.NotNil(t, got.CancelledAt)

		r, _ := repo.GetRoomByID(ctx, room.ID)
		assert.Equal(t, models.RoomStatusAvailable, r.Status)
	})

	t.Run("room stays booked while another guest holds it", func(t *testing.T) {
		repo := newFakeRepo()
		room, b := seedStay(repo, domain.StatusConfirmed, 2)

		today := timezone.Today()
		repo.addBooking(models.Booking{
			UserID:   6,
			RoomID:   room.ID,
			CheckIn:  today,
			CheckOut: today.AddDate(0, 0, 1),
			Status:   string(domain.StatusCheckedIn),
		})

		uc := NewCancelBooking(repo, nil)
		_, err := uc.Execute(ctx, b.ID, b.UserID, b.UserID)

		require.NoError(t, err)
		r, _ := repo.GetRoomByID(ctx, room.ID)
		assert.Equal(t, models.RoomStatusBooked, r.Status)
	})

	t.Run("owner filter hides other users' bookings", func(t *testing.T) {
		repo := newFakeRepo()
		_, b := seedStay(repo, domain.StatusConfirmed, 2)

		uc := NewCancelBooking(repo, nil)
		_, err := uc.Execute(ctx, b.ID, b.UserID+1, b.UserID+1)

		assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
	})

	t.Run("admin path skips the owner filter", func(t *testing.T) {
		repo := newFakeRepo()
		_, b := seedStay(repo, domain.StatusConfirmed, 2)

		uc := NewCancelBooking(repo, nil)
		got, err := uc.Execute(ctx, b.ID, 0, 99)

		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), got.Status)
	})

	t.Run("checked-out booking cannot be cancelled", func(t *testing.T) {
		repo := newFakeRepo()
		_, b := seedStay(repo, domain.StatusCheckedOut, 2)

		uc := NewCancelBooking(repo, nil)
		_, err := uc.Execute(ctx, b.ID, 0, 99)

		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	})
}

func TestDeleteBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the booking and releases the room", func(t *testing.T) {
		repo := newFakeRepo()
		room, b := seedStay(repo, domain.StatusPending, 2)

		uc := NewDeleteBooking(repo, nil)
		err := uc.Execute(ctx, b.ID, 1)

		require.NoError(t, err)
		_, err = repo.GetBookingByID(ctx, b.ID)
		assert.Error(t, err)

		r, _ := repo.GetRoomByID(ctx, room.ID)
		assert.Equal(t, models.RoomStatusAvailable, r.Status)
	})

	t.Run("unknown booking", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewDeleteBooking(repo, nil)

		err := uc.Execute(ctx, 42, 1)
		assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
	})
}
