package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"grand-banquet/internal/bot"
	"grand-banquet/internal/config"
	"grand-banquet/internal/game"
)

// Hot-seat console game: one human against one bot, sharing the terminal.
func main() {
	cfg := config.Load()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	s := game.NewSession(game.Config{
		MaxPlayers:     2,
		DeckMultiplier: cfg.DefaultDeckMultiplier,
	}, rng)

	humanID := "you"
	botID := "bot-cpu"
	if _, err := s.AddPlayer(humanID, "You"); err != nil {
		fmt.Println("setup failed:", err)
		return
	}
	if _, err := s.AddPlayer(botID, bot.Name(1)); err != nil {
		fmt.Println("setup failed:", err)
		return
	}
	s.PlayerByID(botID).IsBot = true
	s.StartGame()

	reader := bufio.NewReader(os.Stdin)
	for !s.Revealed {
		player := s.CurrentPlayer()
		if player == nil {
			break
		}
		if player.IsBot {
			if err := bot.TakeTurn(s, player.ID, cfg.BotWeights); err != nil {
				fmt.Println("bot could not move:", err)
				break
			}
			continue
		}
		printView(s.Snapshot(humanID))
		if s.Pending != nil && s.Pending.By == humanID {
			promptKill(s, reader, humanID)
			continue
		}
		promptPlay(s, reader, humanID)
	}

	fmt.Println("\nThe banquet is over!")
	js, _ := json.MarshalIndent(s.Snapshot(humanID), "", "  ")
	fmt.Println(string(js))
}

func printView(v game.Snapshot) {
	fmt.Printf("\nDeck: %d cards left\n", v.DeckCount)
	for _, p := range v.Players {
		fmt.Printf("%s: %d in hand, domain:", p.Name, p.HandCount)
		for _, c := range p.Domain {
			fmt.Printf(" %s", cardLabel(c))
		}
		fmt.Println()
	}
	fmt.Println("Banquet:")
	for color, piles := range v.Banquet.ByColor {
		if len(piles.Top) == 0 && len(piles.Bottom) == 0 {
			continue
		}
		fmt.Printf("  %s: top %d, bottom %d\n", color, len(piles.Top), len(piles.Bottom))
	}
	if v.Banquet.HiddenTopCount+v.Banquet.HiddenBottomCount > 0 {
		fmt.Printf("  hidden: top %d, bottom %d\n", v.Banquet.HiddenTopCount, v.Banquet.HiddenBottomCount)
	}
	if len(v.History) > 0 {
		fmt.Println("Last:", v.History[len(v.History)-1])
	}
	for _, o := range v.Objectives {
		fmt.Printf("Objective (%s): %s\n", o.Kind, o.Description)
	}
}

func cardLabel(c game.SnapshotCard) string {
	if c.Hidden {
		return "[hidden]"
	}
	return fmt.Sprintf("[%s %s]", c.Color, c.Type)
}

func promptPlay(s *game.Session, reader *bufio.Reader, humanID string) {
	hand := s.PlayerByID(humanID).Hand
	fmt.Println("\nYour hand:")
	for i, c := range hand {
		fmt.Printf("  %d: %s %s\n", i+1, c.Color, c.Type)
	}
	fmt.Println("Enter: card-number and zone (banquet_top, banquet_bottom, self, opponent)")
	for {
		fmt.Print("> ")
		line, _ := reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) != 2 {
			fmt.Println("Format: <number> <zone>. Try again.")
			continue
		}
		n, err := strconv.Atoi(parts[0])
		if err != nil || n < 1 || n > len(hand) {
			fmt.Println("No such card. Try again.")
			continue
		}
		if err := s.PlayCard(humanID, hand[n-1].ID, game.Zone(parts[1]), ""); err != nil {
			fmt.Println("Invalid play:", err)
			continue
		}
		return
	}
}

func promptKill(s *game.Session, reader *bufio.Reader, humanID string) {
	k := s.Pending
	fmt.Println("\nYour killer landed. Pick a victim:")
	for i, id := range k.Candidates {
		fmt.Printf("  %d: %s\n", i+1, id)
	}
	if k.HiddenTop > 0 {
		fmt.Printf("  top: one of %d hidden top cards\n", k.HiddenTop)
	}
	if k.HiddenBottom > 0 {
		fmt.Printf("  bottom: one of %d hidden bottom cards\n", k.HiddenBottom)
	}
	fmt.Println("Enter a number, 'top', 'bottom', or 'pass'")
	for {
		fmt.Print("> ")
		line, _ := reader.ReadString('\n')
		choice := strings.TrimSpace(line)
		var err error
		switch choice {
		case "pass":
			err = s.CancelKill(humanID)
		case "top":
			err = s.ResolveKill(humanID, "", game.SignTop)
		case "bottom":
			err = s.ResolveKill(humanID, "", game.SignBottom)
		default:
			n, convErr := strconv.Atoi(choice)
			if convErr != nil || n < 1 || n > len(k.Candidates) {
				fmt.Println("No such choice. Try again.")
				continue
			}
			err = s.ResolveKill(humanID, k.Candidates[n-1], "")
		}
		if err != nil {
			fmt.Println("Invalid choice:", err)
			continue
		}
		return
	}
}
