package model

import (
	"sort"
	"time"
)

// GameID uniquely identifies a game
type GameID string

// Game represents a single party game session.
//
// HasStarted flips true exactly once, at game start, and never reverts.
// Players is keyed by the identity carried in each player's token.
type Game struct {
	ID         GameID
	HasStarted bool
	Round      int

	Players map[PlayerID]*Player

	// Submissions for the current round, cleared when a winner is picked
	Submissions map[PlayerID]string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Player returns the roster entry for the given ID, or nil if the
// player is not in this game
func (g *Game) Player(id PlayerID) *Player {
	return g.Players[id]
}

// Cardzar returns the current cardzar, or empty/nil if none is assigned
func (g *Game) Cardzar() (PlayerID, *Player) {
	for id, p := range g.Players {
		if p.IsCardzar {
			return id, p
		}
	}
	return "", nil
}

// PlayerIDs returns the roster IDs in a stable order
func (g *Game) PlayerIDs() []PlayerID {
	ids := make([]PlayerID, 0, len(g.Players))
	for id := range g.Players {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// AllSubmitted returns true if every non-cardzar player has submitted
// a card this round
func (g *Game) AllSubmitted() bool {
	for id, p := range g.Players {
		if p.IsCardzar {
			continue
		}
		if _, ok := g.Submissions[id]; !ok {
			return false
		}
	}
	return true
}
