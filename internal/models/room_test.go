package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Room status values are stored as plain strings, so the constants must
// keep matching what lives in the database. The maintenance record type
// shares the package with the RoomStatusMaintenance constant; both are
// referenced here so a naming clash cannot creep back in.
func TestRoomStatusValues(t *testing.T) {
	assert.Equal(t, "Available", RoomStatusAvailable)
	assert.Equal(t, "Booked", RoomStatusBooked)
	assert.Equal(t, "Maintenance", RoomStatusMaintenance)
	assert.Equal(t, "Cleaning", RoomStatusCleaning)

	m := RoomMaintenance{Room: Room{Status: RoomStatusMaintenance}}
	assert.Equal(t, RoomStatusMaintenance, m.Room.Status)
}
