package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/iamasit07/connectz/internal/domain"
	"github.com/iamasit07/connectz/internal/service/replay"
	"github.com/iamasit07/connectz/pkg/auth"
	"github.com/iamasit07/connectz/pkg/uid"
)

// Handler manages WebSocket dependencies
type Handler struct {
	ConnManager *ConnectionManager
	JWTSecret   string
	Upgrader    websocket.Upgrader

	maxGameBytes int64
}

// NewHandler creates a replay stream handler. A non-empty secret requires a
// token in the opening message.
func NewHandler(cm *ConnectionManager, secret string, maxGameBytes int64) *Handler {
	return &Handler{
		ConnManager: cm,
		JWTSecret:   secret,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		maxGameBytes: maxGameBytes,
	}
}

// HandleWebSocket is the HTTP handler that upgrades the connection
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	h.handleConnection(conn)
}

// handleConnection runs one replay and closes the stream
func (h *Handler) handleConnection(conn *websocket.Conn) {
	id := uid.NewReplayID()
	h.ConnManager.AddConnection(id, conn)
	defer h.ConnManager.RemoveConnection(id)

	if h.maxGameBytes > 0 {
		conn.SetReadLimit(h.maxGameBytes)
	}
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))

	_, data, err := conn.ReadMessage()
	if err != nil {
		log.Printf("[WS] Read error during init: %v", err)
		return
	}

	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil || msg.Type != "replay" {
		h.ConnManager.SendMessage(id, ServerMessage{Type: "error", Message: "Expected a replay message"})
		return
	}

	if h.JWTSecret != "" {
		if _, err := auth.ValidateClientToken(h.JWTSecret, msg.Token); err != nil {
			log.Printf("[WS] Invalid token for stream %s: %v", id, err)
			h.ConnManager.SendMessage(id, ServerMessage{Type: "error", Message: "Invalid token"})
			return
		}
	}

	h.stream(id, []byte(msg.Game))
	conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
}

func (h *Handler) stream(id string, game []byte) {
	sendFailed := false
	res := replay.Run(game, domain.WithObserver(func(turn domain.Turn, b *domain.Board) {
		if sendFailed {
			return
		}
		if err := h.ConnManager.SendMessage(id, ServerMessage{Type: "move", Turn: &turn, Board: b.String()}); err != nil {
			log.Printf("[WS] Stream %s dropped: %v", id, err)
			sendFailed = true
		}
	}))

	log.Printf("[WS] Stream %s finished with %s after %d moves", id, res.Outcome, res.Moves)
	h.ConnManager.SendMessage(id, ServerMessage{Type: "verdict", Outcome: res.Outcome, Code: res.Outcome.Code()})
}
