package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"grand-banquet/internal/game"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Hub fans per-viewer snapshots out to every connection of a session. Each
// connection is registered with the viewer's player id, because no two
// viewers receive the same payload.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]map[*websocket.Conn]string // conn -> viewer player id
	actions  SessionActions
}

func NewHub(actions SessionActions) *Hub {
	return &Hub{
		sessions: make(map[string]map[*websocket.Conn]string),
		actions:  actions,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

type wsEnvelope struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type wsAction struct {
	PlayerID   string `json:"playerId"`
	CardID     string `json:"cardId"`
	Zone       string `json:"zone"`
	TargetID   string `json:"targetPlayerId"`
	HiddenSign string `json:"hiddenSign"`
}

// HandleWS upgrades the connection and serves action messages until the
// client goes away.
func (h *Hub) HandleWS(c *gin.Context) {
	code := c.Query("code")
	playerID := c.Query("playerId")
	if code == "" || playerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code and playerId required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws: upgrade failed: %v", err)
		return
	}

	h.mu.Lock()
	if _, ok := h.sessions[code]; !ok {
		h.sessions[code] = make(map[*websocket.Conn]string)
	}
	h.sessions[code][conn] = playerID
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.sessions[code], conn)
		if len(h.sessions[code]) == 0 {
			delete(h.sessions, code)
		}
		h.mu.Unlock()
		_ = conn.Close()
	}()

	// Initial sync so a reconnecting viewer doesn't wait for the next action.
	h.sendState(conn, code, playerID)

	for {
		var msg wsEnvelope
		if err := conn.ReadJSON(&msg); err != nil {
			break
		}
		switch msg.Action {
		case "refresh":
			h.sendState(conn, code, playerID)
		case "play", "resolve_kill", "cancel_kill":
			h.handleAction(conn, code, playerID, msg)
		default:
			log.Printf("ws: unknown action %q", msg.Action)
		}
	}
}

func (h *Hub) handleAction(conn *websocket.Conn, code, playerID string, msg wsEnvelope) {
	var a wsAction
	if err := json.Unmarshal(msg.Data, &a); err != nil {
		h.sendError(conn, "invalid payload")
		return
	}
	if a.PlayerID == "" {
		a.PlayerID = playerID
	}

	var err error
	switch msg.Action {
	case "play":
		err = h.actions.PlayCard(code, a.PlayerID, a.CardID, game.Zone(a.Zone), a.TargetID)
	case "resolve_kill":
		err = h.actions.ResolveKill(code, a.PlayerID, a.CardID, game.Sign(a.HiddenSign))
	case "cancel_kill":
		err = h.actions.CancelKill(code, a.PlayerID)
	}
	if err != nil {
		// Failed actions go back to the originating client only.
		h.sendError(conn, err.Error())
		return
	}
	h.BroadcastState(code)
}

// BroadcastState pushes a fresh masked snapshot to every connection of the
// session, each built for its own viewer.
func (h *Hub) BroadcastState(code string) {
	h.mu.RLock()
	conns := make(map[*websocket.Conn]string, len(h.sessions[code]))
	for conn, viewer := range h.sessions[code] {
		conns[conn] = viewer
	}
	h.mu.RUnlock()

	for conn, viewer := range conns {
		h.sendState(conn, code, viewer)
	}
}

func (h *Hub) sendState(conn *websocket.Conn, code, viewer string) {
	snap, err := h.actions.State(code, viewer)
	if err != nil {
		h.sendError(conn, err.Error())
		return
	}
	h.write(conn, map[string]any{"action": "state", "data": snap})
}

func (h *Hub) sendError(conn *websocket.Conn, message string) {
	h.write(conn, map[string]any{"action": "error", "data": gin.H{"error": message}})
}

func (h *Hub) write(conn *websocket.Conn, message any) {
	if err := conn.WriteJSON(message); err != nil {
		log.Printf("ws: write failed: %v", err)
	}
}
