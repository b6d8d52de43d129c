package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"wellnest/internal/llm"
)

const chatSystemPrompt = `You are a helpful health assistant.
Always keep responses under 3 short sentences.
Focus only on health, wellness, diet, exercise, and medical awareness.
Avoid unrelated topics.`

// ChatHandler serves a stateless single-turn health chat over a
// websocket. Every inbound message is answered independently; there is
// no conversation memory.
type ChatHandler struct {
	providers []llm.Provider
	upgrader  websocket.Upgrader
}

func NewChatHandler(providers ...llm.Provider) *ChatHandler {
	return &ChatHandler{
		providers: providers,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type messagePayload struct {
	Text string `json:"text"`
}

type outboundMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades the connection and answers chat messages until the
// client disconnects. Reads and writes stay on this goroutine, so no
// write lock is needed.
func (h *ChatHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			return
		}

		switch inbound.Type {
		case "message":
			var payload messagePayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil || strings.TrimSpace(payload.Text) == "" {
				h.send(conn, outboundMessage{Type: "error", Payload: errorPayload{Message: "message text is required"}})
				continue
			}

			reply, err := h.reply(r.Context(), payload.Text)
			if err != nil {
				h.send(conn, outboundMessage{Type: "error", Payload: errorPayload{Message: "assistant unavailable"}})
				continue
			}
			h.send(conn, outboundMessage{Type: "reply", Payload: messagePayload{Text: reply}})
		default:
			h.send(conn, outboundMessage{Type: "error", Payload: errorPayload{Message: "unsupported message type"}})
		}
	}
}

// reply walks the provider list in order, same fallback discipline as
// question generation.
func (h *ChatHandler) reply(ctx context.Context, text string) (string, error) {
	prompt := llm.Prompt{
		System:      chatSystemPrompt,
		User:        text,
		Temperature: 0.7,
		MaxTokens:   512,
	}

	var lastErr error
	for _, provider := range h.providers {
		reply, err := provider.Complete(ctx, prompt)
		if err != nil {
			log.Printf("warn: chat via %s failed: %v", provider.Name(), err)
			lastErr = err
			continue
		}
		return strings.TrimSpace(reply), nil
	}
	if lastErr == nil {
		lastErr = errors.New("no chat provider configured")
	}
	return "", lastErr
}

func (h *ChatHandler) send(conn *websocket.Conn, msg outboundMessage) {
	if err := conn.WriteJSON(msg); err != nil {
		log.Printf("ws write error: %v", err)
	}
}
