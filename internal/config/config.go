package config

import (
	"os"
	"strconv"
)

// Weights tunes the bot's play heuristic. Higher means more attractive.
type Weights struct {
	WDoubleDomain int // double-value card into own domain
	WSpyBanquet   int // spy slipped into the banquet
	WKillerThreat int // killer aimed at the leading opponent
	WShieldKeep   int // shield parked in own domain
	WTopOwnColor  int // boosting a color the player holds
	WBottomRival  int // sinking a color a rival holds
}

// Config is the process-wide configuration, read from the environment with
// safe defaults.
type Config struct {
	HTTPAddr string

	DefaultMaxPlayers     int
	DefaultDeckMultiplier int

	BotWeights Weights
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func Load() Config {
	return Config{
		HTTPAddr:              getenvStr("HTTP_ADDR", ":8080"),
		DefaultMaxPlayers:     getenvInt("DEFAULT_MAX_PLAYERS", 4),
		DefaultDeckMultiplier: getenvInt("DEFAULT_DECK_MULTIPLIER", 1),
		BotWeights: Weights{
			WDoubleDomain: getenvInt("W_DOUBLE_DOMAIN", 40),
			WSpyBanquet:   getenvInt("W_SPY_BANQUET", 30),
			WKillerThreat: getenvInt("W_KILLER_THREAT", 25),
			WShieldKeep:   getenvInt("W_SHIELD_KEEP", 20),
			WTopOwnColor:  getenvInt("W_TOP_OWN_COLOR", 15),
			WBottomRival:  getenvInt("W_BOTTOM_RIVAL", 10),
		},
	}
}
