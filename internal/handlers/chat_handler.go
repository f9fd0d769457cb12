package handlers

import (
	"html/template"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/grandora/hotel-manager/internal/chat"
	"github.com/grandora/hotel-manager/internal/httperr"
)

// ======================================================
// HANDLER
// ======================================================

type ChatHandler struct {
	assistant *chat.Assistant
}

func NewChatHandler(assistant *chat.Assistant) *ChatHandler {
	return &ChatHandler{assistant: assistant}
}

// ======================================================
// REQUESTS
// ======================================================

type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
}

// ======================================================
// CARD MARKUP
// ======================================================

// The assistant returns structured cards; this layer owns the markup so
// web clients can drop it straight into the conversation view.
var roomCardTmpl = template.Must(template.New("roomCard").Parse(`<div class="room-card" data-room-id="{{.RoomID}}">
  {{if .ImageURL}}<img src="{{.ImageURL}}" alt="Room {{.RoomNumber}}">{{end}}
  <div class="room-card-body">
    <h4>Room {{.RoomNumber}}{{if .RoomType}} &middot; {{.RoomType}}{{end}}</h4>
    <p class="room-card-price">{{printf "%.0f" .Price}} VND / night</p>
    {{if .Amenities}}<p class="room-card-amenities">{{.Amenities}}</p>{{end}}
  </div>
</div>`))

func renderRoomCards(cards []chat.RoomCard) string {
	if len(cards) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, card := range cards {
		if err := roomCardTmpl.Execute(&sb, card); err != nil {
			continue
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ======================================================
// HANDLERS
// ======================================================

func (h *ChatHandler) Message(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	reply := h.assistant.Process(c.Request.Context(), sessionID, req.Message)

	c.JSON(200, gin.H{
		"session_id": sessionID,
		"reply":      reply.Text,
		"cards":      reply.Cards,
		"cards_html": renderRoomCards(reply.Cards),
	})
}
