package chat

import (
	"context"
	"encoding/json"
	"log"
	"regexp"
	"strings"

	"github.com/grandora/hotel-manager/internal/chat/history"
)

// historyWindow is how many stored entries go into each prompt; the store
// itself keeps up to history.MaxEntries.
const historyWindow = 6

const fallbackReply = "Sorry, I cannot answer right now. Please try again in a moment."

// Reply is data-only. The HTTP layer decides how cards become markup.
type Reply struct {
	Text  string     `json:"text"`
	Cards []RoomCard `json:"cards,omitempty"`
}

type Assistant struct {
	backend Backend
	runner  QueryRunner
	history history.Store
}

func NewAssistant(backend Backend, runner QueryRunner, store history.Store) *Assistant {
	return &Assistant{
		backend: backend,
		runner:  runner,
		history: store,
	}
}

// ======================================================
// PIPELINE
// ======================================================

// Process runs the two-stage pipeline: synthesize a read-only query for
// the question, then turn its result into a natural-language reply. All
// backend and SQL failures degrade to text; they never propagate.
func (a *Assistant) Process(ctx context.Context, sessionID, message string) Reply {

	recent, err := a.history.Recent(ctx, sessionID, historyWindow)
	if err != nil {
		log.Println("chat history read error:", err)
	}
	historyContext := strings.Join(recent, "\n")

	query := a.synthesizeQuery(ctx, message, historyContext)

	var reply Reply
	if query == "" {
		reply.Text = a.generate(ctx, buildGeneralPrompt(message, historyContext))
	} else {
		data, rows := a.runQuery(ctx, query)
		reply.Text = a.generate(ctx, buildAnswerPrompt(message, data, historyContext))
		reply.Cards = ExtractRoomCards(rows)
	}

	if err := a.history.Append(ctx, sessionID, "User: "+message); err != nil {
		log.Println("chat history write error:", err)
	}
	if err := a.history.Append(ctx, sessionID, "Bot: "+stripTags(reply.Text)); err != nil {
		log.Println("chat history write error:", err)
	}

	return reply
}

// ======================================================
// STAGE 1 — QUERY SYNTHESIS
// ======================================================

// synthesizeQuery returns a validated SELECT, or "" for the no-query
// path. Anything the gate cannot vouch for is never executed.
func (a *Assistant) synthesizeQuery(ctx context.Context, question, historyContext string) string {

	resp, err := a.backend.Generate(ctx, buildQueryPrompt(question, historyContext))
	if err != nil {
		log.Println("query synthesis error:", err)
		return ""
	}

	resp = strings.ReplaceAll(resp, "```sql", "")
	resp = strings.ReplaceAll(resp, "```", "")
	resp = strings.TrimSpace(resp)

	if resp == "" || strings.Contains(resp, noSQLToken) {
		return ""
	}
	if !strings.HasPrefix(strings.ToUpper(resp), "SELECT") {
		return ""
	}

	if err := ValidateSelect(resp); err != nil {
		log.Println("rejected generated query:", err)
		return ""
	}

	return resp
}

// ======================================================
// STAGE 2 — EXECUTION + RESPONSE SYNTHESIS
// ======================================================

func (a *Assistant) runQuery(ctx context.Context, query string) (string, []map[string]any) {

	rows, err := a.runner.Run(ctx, query)
	if err != nil {
		return sqlErrorPrefix + err.Error(), nil
	}
	if len(rows) == 0 {
		return emptyResultSet, nil
	}

	data, err := json.Marshal(rows)
	if err != nil {
		return sqlErrorPrefix + err.Error(), nil
	}

	return string(data), rows
}

func (a *Assistant) generate(ctx context.Context, prompt string) string {
	text, err := a.backend.Generate(ctx, prompt)
	if err != nil {
		log.Println("response synthesis error:", err)
		return fallbackReply
	}
	return text
}

// --------------------------------------------------

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// stripTags keeps stored history plain even if the backend sneaks markup
// into a reply.
func stripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}
