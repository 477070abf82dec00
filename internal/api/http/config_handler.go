package http

import (
	"net/http"

	"grand-banquet/internal/config"
	"grand-banquet/internal/game"

	"github.com/gin-gonic/gin"
)

// @Summary Get default session settings
// @Description Returns the server's default table size, deck multiplier and bot weights
// @Tags Config
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /config/defaults [get]
func GetDefaultsHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		base := game.Config{
			MaxPlayers:     cfg.DefaultMaxPlayers,
			DeckMultiplier: cfg.DefaultDeckMultiplier,
		}
		base = base.Normalize()
		c.JSON(http.StatusOK, gin.H{
			"maxPlayers":     base.MaxPlayers,
			"deckMultiplier": base.DeckMultiplier,
			"enabledColors":  base.EnabledColors,
			"typeCounts":     base.EffectiveTypeCounts(),
			"deckSize":       base.DeckSize(),
			"botWeights":     cfg.BotWeights,
		})
	}
}
