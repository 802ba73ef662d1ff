package model

// PlayerID uniquely identifies a player within a game.
// It is the identity carried in a player's token and the key into a
// game's roster.
type PlayerID string

// Player represents a member of a game's roster
type Player struct {
	Name      string
	IsCardzar bool // judge for the current round
	IsVIP     bool // elevated privilege for game management actions
	Score     int
}
