package http

import (
	"grand-banquet/internal/api/ws"
	"grand-banquet/internal/config"
	"grand-banquet/internal/registry"

	"github.com/gin-gonic/gin"
)

func NewRouter(reg *registry.Registry, hub *ws.Hub, cfg config.Config) *gin.Engine {
	r := gin.Default()

	// WebSocket for live per-player state pushes
	r.GET("/ws", hub.HandleWS)

	// --- SESSION ENDPOINTS ---
	r.POST("/create-session", CreateSessionHandler(reg))
	r.POST("/join", JoinHandler(reg, hub))
	r.POST("/add-bot", AddBotHandler(reg, hub))
	r.POST("/leave", LeaveHandler(reg, hub))
	r.GET("/session/qr", SessionQRHandler(reg))

	// --- GAME ENDPOINTS ---
	r.POST("/start", StartHandler(reg, hub))
	r.POST("/play", PlayHandler(reg, hub))
	r.POST("/resolve-kill", ResolveKillHandler(reg, hub))
	r.POST("/cancel-kill", CancelKillHandler(reg, hub))
	r.GET("/state", StateHandler(reg))

	// --- CONFIG ENDPOINTS ---
	r.GET("/config/defaults", GetDefaultsHandler(cfg))

	return r
}
