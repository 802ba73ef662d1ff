package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case JoinResult:
		o.printJoinResult(v)
	case GameResult:
		o.printGameResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsCardzar bool   `json:"is_cardzar"`
	IsVIP     bool   `json:"is_vip"`
	Score     int    `json:"score"`
}

// Game response type
type Game struct {
	ID         string   `json:"id"`
	HasStarted bool     `json:"has_started"`
	Round      int      `json:"round"`
	Players    []Player `json:"players"`
	Submitted  []string `json:"submitted,omitempty"`
}

// Submission response type
type Submission struct {
	PlayerID string `json:"player_id"`
	Card     string `json:"card"`
}

// JoinResult is the response from joining a game
type JoinResult struct {
	PlayerID string `json:"player_id"`
	Token    string `json:"token"`
	Game     Game   `json:"game"`
}

// GameResult wraps a game state view
type GameResult struct {
	Game        Game         `json:"game"`
	Submissions []Submission `json:"submissions,omitempty"`
}

// HealthResult is the health check response
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printJoinResult(r JoinResult) {
	fmt.Printf("Joined game %s as %s\n", r.Game.ID, r.PlayerID)
	fmt.Println("Token saved.")
	o.printGame(r.Game)
}

func (o *Output) printGameResult(r GameResult) {
	o.printGame(r.Game)

	if len(r.Submissions) > 0 {
		fmt.Println("Submissions:")
		for _, s := range r.Submissions {
			fmt.Printf("  %s: %s\n", s.PlayerID, s.Card)
		}
	}
}

func (o *Output) printGame(g Game) {
	state := "waiting for players"
	if g.HasStarted {
		state = fmt.Sprintf("round %d", g.Round)
	}
	fmt.Printf("Game %s (%s)\n", g.ID, state)

	for _, p := range g.Players {
		var tags []string
		if p.IsCardzar {
			tags = append(tags, "cardzar")
		}
		if p.IsVIP {
			tags = append(tags, "VIP")
		}
		label := ""
		if len(tags) > 0 {
			label = " [" + strings.Join(tags, ", ") + "]"
		}
		fmt.Printf("  %s (%s)%s - %d points\n", p.Name, p.ID, label, p.Score)
	}

	if len(g.Submitted) > 0 {
		fmt.Printf("Submitted this round: %s\n", strings.Join(g.Submitted, ", "))
	}
}

func (o *Output) printHealthResult(r HealthResult) {
	fmt.Printf("Server status: %s\n", r.Status)
}
