package chat

import "strconv"

// RoomCard is the data-only shape of one room in an assistant reply.
// Rendering (HTML, booking link) belongs to the presentation layer.
type RoomCard struct {
	RoomID     uint    `json:"room_id"`
	RoomNumber string  `json:"room_number"`
	RoomType   string  `json:"room_type"`
	Price      float64 `json:"price"`
	ImageURL   string  `json:"image_url"`
	Amenities  string  `json:"amenities"`
}

// ExtractRoomCards pulls room rows out of a generic result set. Rows
// lacking a room number are not room rows and yield no card.
func ExtractRoomCards(rows []map[string]any) []RoomCard {
	var cards []RoomCard

	for _, row := range rows {
		number := asString(row["room_number"])
		if number == "" {
			continue
		}

		cards = append(cards, RoomCard{
			RoomID:     uint(asFloat(row["id"])),
			RoomNumber: number,
			RoomType:   asString(row["room_type"]),
			Price:      asFloat(row["price"]),
			ImageURL:   asString(row["image_url"]),
			Amenities:  asString(row["amenities"]),
		})
	}

	return cards
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	}
	return ""
}

func asFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int64:
		return float64(t)
	case int32:
		return float64(t)
	case int:
		return float64(t)
	case string:
		f, _ := strconv.ParseFloat(t, 64)
		return f
	case []byte:
		f, _ := strconv.ParseFloat(string(t), 64)
		return f
	}
	return 0
}
