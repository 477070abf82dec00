package http

import (
	"errors"
	"net/http"

	"grand-banquet/internal/api/ws"
	"grand-banquet/internal/game"
	"grand-banquet/internal/registry"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, registry.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrUnknownPlayer):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

func fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

// @Summary Create a new session
// @Description Create a session with the given table size and deck options
// @Tags Session
// @Accept json
// @Produce json
// @Param request body http.CreateSessionRequest true "Session options"
// @Success 200 {object} map[string]interface{}
// @Router /create-session [post]
func CreateSessionHandler(reg *registry.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateSessionRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		sc := game.Config{
			MaxPlayers:     req.MaxPlayers,
			DeckMultiplier: req.DeckMultiplier,
		}
		if req.DeckOptions != nil {
			sc.EnabledColors = req.DeckOptions.EnabledColors
			sc.TypeCounts = req.DeckOptions.PerColorTypeCounts
		}
		code := reg.Create(sc)
		c.JSON(http.StatusOK, gin.H{"code": code})
	}
}

// @Summary Join a session
// @Description Add a player to an existing session by code
// @Tags Session
// @Accept json
// @Produce json
// @Param request body http.JoinRequest true "Join info"
// @Success 200 {object} map[string]interface{}
// @Router /join [post]
func JoinHandler(reg *registry.Registry, hub *ws.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JoinRequest
		if err := c.BindJSON(&req); err != nil || req.Code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "code required"})
			return
		}
		playerID, err := reg.Join(req.Code, req.Name)
		if err != nil {
			fail(c, err)
			return
		}
		hub.BroadcastState(req.Code)
		c.JSON(http.StatusOK, gin.H{"playerId": playerID, "code": req.Code})
	}
}

// @Summary Add a bot to a session
// @Description Seat a scripted player in the next free seat
// @Tags Session
// @Accept json
// @Produce json
// @Param request body http.AddBotRequest true "Session code"
// @Success 200 {object} map[string]interface{}
// @Router /add-bot [post]
func AddBotHandler(reg *registry.Registry, hub *ws.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddBotRequest
		if err := c.BindJSON(&req); err != nil || req.Code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "code required"})
			return
		}
		botID, err := reg.AddBot(req.Code)
		if err != nil {
			fail(c, err)
			return
		}
		hub.BroadcastState(req.Code)
		c.JSON(http.StatusOK, gin.H{"playerId": botID})
	}
}

// @Summary Leave a session
// @Description Remove a player; a started game resets, an empty session is destroyed
// @Tags Session
// @Accept json
// @Produce json
// @Param request body http.LeaveRequest true "Leave info"
// @Success 200 {object} map[string]interface{}
// @Router /leave [post]
func LeaveHandler(reg *registry.Registry, hub *ws.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LeaveRequest
		if err := c.BindJSON(&req); err != nil || req.Code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "code required"})
			return
		}
		if err := reg.Leave(req.Code, req.PlayerID); err != nil {
			fail(c, err)
			return
		}
		hub.BroadcastState(req.Code)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// @Summary Start the game
// @Description Shuffle the deck, deal opening hands and begin the first turn
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.StartRequest true "Session code"
// @Success 200 {object} map[string]interface{}
// @Router /start [post]
func StartHandler(reg *registry.Registry, hub *ws.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StartRequest
		if err := c.BindJSON(&req); err != nil || req.Code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "code required"})
			return
		}
		if err := reg.Start(req.Code); err != nil {
			fail(c, err)
			return
		}
		hub.BroadcastState(req.Code)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// @Summary Play a card
// @Description Play one card from hand into a banquet pile, own domain or an opponent's domain
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.PlayRequest true "Play data"
// @Success 200 {object} map[string]interface{}
// @Router /play [post]
func PlayHandler(reg *registry.Registry, hub *ws.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlayRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		err := reg.PlayCard(req.Code, req.PlayerID, req.CardID, game.Zone(req.Zone), req.TargetPlayerID)
		if err != nil {
			fail(c, err)
			return
		}
		hub.BroadcastState(req.Code)
		state, err := reg.State(req.Code, req.PlayerID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "state": state})
	}
}

// @Summary Resolve a pending kill
// @Description Pick the victim of a played killer, by card id or hidden pile sign
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.KillRequest true "Kill data"
// @Success 200 {object} map[string]interface{}
// @Router /resolve-kill [post]
func ResolveKillHandler(reg *registry.Registry, hub *ws.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req KillRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		err := reg.ResolveKill(req.Code, req.PlayerID, req.CardID, game.Sign(req.HiddenSign))
		if err != nil {
			fail(c, err)
			return
		}
		hub.BroadcastState(req.Code)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// @Summary Decline a pending kill
// @Description Let the played killer rest without a victim
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.KillRequest true "Kill data"
// @Success 200 {object} map[string]interface{}
// @Router /cancel-kill [post]
func CancelKillHandler(reg *registry.Registry, hub *ws.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req KillRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		if err := reg.CancelKill(req.Code, req.PlayerID); err != nil {
			fail(c, err)
			return
		}
		hub.BroadcastState(req.Code)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// @Summary Get session state
// @Description Returns the session as seen by the requesting player, hidden cards masked
// @Tags Game
// @Produce json
// @Param code query string true "Session code"
// @Param playerId query string true "Player ID"
// @Success 200 {object} game.Snapshot
// @Router /state [get]
func StateHandler(reg *registry.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Query("code")
		playerID := c.Query("playerId")
		state, err := reg.State(code, playerID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, state)
	}
}

// @Summary Session join QR code
// @Description Renders the session code as a PNG QR image for table-side joining
// @Tags Session
// @Produce png
// @Param code query string true "Session code"
// @Success 200 {file} binary
// @Router /session/qr [get]
func SessionQRHandler(reg *registry.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Query("code")
		if _, err := reg.State(code, ""); err != nil {
			fail(c, err)
			return
		}
		png, err := qrcode.Encode(code, qrcode.Medium, 256)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "qr encode failed"})
			return
		}
		c.Data(http.StatusOK, "image/png", png)
	}
}
