package model

import "errors"

// Common errors used across the application
var (
	// Identity errors
	ErrBadToken = errors.New("bad token")

	// Game errors
	ErrGameNotFound   = errors.New("game not found")
	ErrGameStarted    = errors.New("game has already started")
	ErrGameNotStarted = errors.New("game has not started")

	// Authorization errors
	ErrNotInGame  = errors.New("player is not in this game")
	ErrNotCardzar = errors.New("player is not the cardzar")
	ErrNotVIP     = errors.New("player is not the VIP")

	// Gameplay errors
	ErrNameTaken           = errors.New("player name is taken")
	ErrInsufficientPlayers = errors.New("insufficient players to start game")
	ErrAlreadySubmitted    = errors.New("player has already submitted this round")
	ErrCardzarCannotSubmit = errors.New("the cardzar does not submit a card")
	ErrNoSubmission        = errors.New("player has not submitted this round")
)
