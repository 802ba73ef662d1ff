package response

import (
	"sort"

	"github.com/mcoot/partycards-go/internal/model"
)

// Player represents a roster entry in API responses
type Player struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsCardzar bool   `json:"is_cardzar"`
	IsVIP     bool   `json:"is_vip"`
	Score     int    `json:"score"`
}

// Game represents a game in API responses
type Game struct {
	ID         string   `json:"id"`
	HasStarted bool     `json:"has_started"`
	Round      int      `json:"round"`
	Players    []Player `json:"players"`

	// Submitted lists which players have a card in this round; the
	// cards themselves stay hidden until the cardzar's view
	Submitted []string `json:"submitted,omitempty"`
}

// Submission pairs a player with their submitted card
type Submission struct {
	PlayerID string `json:"player_id"`
	Card     string `json:"card"`
}

// GameFromModel converts a model.Game to a response Game
func GameFromModel(g *model.Game) Game {
	players := make([]Player, 0, len(g.Players))
	for _, id := range g.PlayerIDs() {
		p := g.Players[id]
		players = append(players, Player{
			ID:        string(id),
			Name:      p.Name,
			IsCardzar: p.IsCardzar,
			IsVIP:     p.IsVIP,
			Score:     p.Score,
		})
	}

	submitted := make([]string, 0, len(g.Submissions))
	for id := range g.Submissions {
		submitted = append(submitted, string(id))
	}
	sort.Strings(submitted)

	return Game{
		ID:         string(g.ID),
		HasStarted: g.HasStarted,
		Round:      g.Round,
		Players:    players,
		Submitted:  submitted,
	}
}

// SubmissionsFromModel converts the round's submissions for the
// cardzar's view
func SubmissionsFromModel(g *model.Game) []Submission {
	subs := make([]Submission, 0, len(g.Submissions))
	for id, card := range g.Submissions {
		subs = append(subs, Submission{PlayerID: string(id), Card: card})
	}
	sort.Slice(subs, func(i, j int) bool { return subs[i].PlayerID < subs[j].PlayerID })
	return subs
}

// JoinResponse is the response for joining a game
type JoinResponse struct {
	PlayerID string `json:"player_id"`
	Token    string `json:"token"`
	Game     Game   `json:"game"`
}

// GameResponse wraps a game state view
type GameResponse struct {
	Game Game `json:"game"`

	// Submissions is only populated for the cardzar once picking
	// becomes possible
	Submissions []Submission `json:"submissions,omitempty"`
}
