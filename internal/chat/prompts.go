package chat

import "strings"

// Sentinels exchanged with the text backend.
const (
	noSQLToken     = "NO_SQL"
	emptyResultSet = "EMPTY_RESULT_SET"
	sqlErrorPrefix = "SQL_ERROR: "
)

const schemaPrompt = `You are a SQL expert and the receptionist of the Grandora Hotel.

1. DATABASE SCHEMA:
- rooms(id, branch_id, room_number, room_type, capacity, price, amenities, status, image_url)
  + status: 'Available', 'Booked', 'Maintenance', 'Cleaning'.
- hotel_branches(id, name, address, city, country, phone)
- bookings(id, user_id, room_id, check_in, check_out, total_price, status, services_used)
- payments(id, booking_id, amount, payment_method, transaction_code, paid_at, promotion_code)
- users(id, full_name, username, email, phone, role, address)
- promotions(id, code, description, discount_percent, start_date, end_date)
- room_maintenances(id, room_id, description, maintenance_date, status)

JOINS: rooms.branch_id = hotel_branches.id | bookings.room_id = rooms.id

2. SQL RULES (MANDATORY):
- Return exactly ONE SELECT statement, nothing else.
- Room searches ALWAYS select: id, room_number, room_type, price, image_url, amenities.
- Free-room searches must filter rooms.status = 'Available'.

3. NO_SQL RULES (IMPORTANT):
- Small talk (hi, hello) OR questions about travel plans / food -> answer: NO_SQL
- SPECIAL CASE: if the guest asks for a recommendation ("which room should
  I book", "suggest a room", "anything that fits us") -> do NOT answer NO_SQL.
  Use the chat history (budget, party size) to build a matching room query.`

const localKnowledge = `You are the receptionist of the Grandora Hotel in Vinh City, Nghe An.
EXTRA FACTS:
- Room rates: 500,000 to 5,000,000 VND per night.
- NEARBY: Cua Lo beach (15 km), Kim Lien village (13 km), Thanh Chuong tea isles (40 km).
- FOOD: eel porridge and eel soup, the Nghe An specialties.`

func buildQueryPrompt(question, history string) string {
	var b strings.Builder
	b.WriteString(schemaPrompt)
	b.WriteString("\n\nCHAT HISTORY (contains the guest's needs):\n")
	b.WriteString(history)
	b.WriteString("\n\nQuestion: ")
	b.WriteString(question)
	b.WriteString("\nSQL Query:")
	return b.String()
}

func buildAnswerPrompt(question, data, history string) string {
	var b strings.Builder
	b.WriteString(localKnowledge)
	b.WriteString("\n----------------\nCHAT HISTORY: ")
	b.WriteString(history)
	b.WriteString("\n----------------\nQuestion: '")
	b.WriteString(question)
	b.WriteString("'\nDatabase rows: ")
	b.WriteString(data)
	b.WriteString(`

INSTRUCTIONS:
1. Reply in one or two short sentences ("Based on what you need, I found these rooms...").
2. Plain text only. Do NOT format the rooms yourself; the application renders a card per row.`)
	return b.String()
}

func buildGeneralPrompt(question, history string) string {
	var b strings.Builder
	b.WriteString(localKnowledge)
	b.WriteString("\n----------------\nCHAT HISTORY: ")
	b.WriteString(history)
	b.WriteString("\n----------------\nThe guest asks: '")
	b.WriteString(question)
	b.WriteString("'\nINSTRUCTIONS: continue the conversation. Suggest a travel itinerary when asked.")
	return b.String()
}
