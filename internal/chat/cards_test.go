package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRoomCards(t *testing.T) {
	rows := []map[string]any{
		{
			"id":          int64(3),
			"room_number": "301",
			"room_type":   "Deluxe",
			"price":       "800000",
			"amenities":   []byte("wifi, minibar"),
		},
		{
			// not a room row, no card
			"total": int64(12),
		},
		{
			"id":          float64(4),
			"room_number": "302",
			"price":       float64(650000),
		},
	}

	cards := ExtractRoomCards(rows)
	require.Len(t, cards, 2)

	assert.Equal(t, uint(3), cards[0].RoomID)
	assert.Equal(t, "301", cards[0].RoomNumber)
	assert.Equal(t, "Deluxe", cards[0].RoomType)
	assert.Equal(t, 800000.0, cards[0].Price)
	assert.Equal(t, "wifi, minibar", cards[0].Amenities)

	assert.Equal(t, "302", cards[1].RoomNumber)
	assert.Equal(t, 650000.0, cards[1].Price)
}

func TestExtractRoomCardsEmpty(t *testing.T) {
	assert.Empty(t, ExtractRoomCards(nil))
	assert.Empty(t, ExtractRoomCards([]map[string]any{{"count": int64(1)}}))
}
