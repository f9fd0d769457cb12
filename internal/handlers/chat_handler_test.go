package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grandora/hotel-manager/internal/chat"
)

func TestRenderRoomCards(t *testing.T) {
	out := renderRoomCards([]chat.RoomCard{
		{
			RoomID:     3,
			RoomNumber: "301",
			RoomType:   "Deluxe",
			Price:      800000,
			Amenities:  "wifi, minibar",
		},
	})

	assert.Contains(t, out, `data-room-id="3"`)
	assert.Contains(t, out, "Room 301")
	assert.Contains(t, out, "Deluxe")
	assert.Contains(t, out, "800000 VND / night")
	assert.Contains(t, out, "wifi, minibar")
}

func TestRenderRoomCardsEscapesMarkup(t *testing.T) {
	out := renderRoomCards([]chat.RoomCard{
		{RoomNumber: `<script>alert(1)</script>`, Price: 1000},
	})

	assert.NotContains(t, out, "<script>")
}

func TestRenderRoomCardsEmpty(t *testing.T) {
	assert.Empty(t, renderRoomCards(nil))
}
