package gate

import (
	"context"

	"github.com/mcoot/partycards-go/internal/model"
)

type contextKey string

const (
	playerIDContextKey contextKey = "player_id"
	gameContextKey     contextKey = "game"
	playerContextKey   contextKey = "player"
)

// WithPlayerID attaches the caller identity to the context
func WithPlayerID(ctx context.Context, id model.PlayerID) context.Context {
	return context.WithValue(ctx, playerIDContextKey, id)
}

// PlayerID returns the caller identity attached by the identity gate
func PlayerID(ctx context.Context) (model.PlayerID, bool) {
	id, ok := ctx.Value(playerIDContextKey).(model.PlayerID)
	return id, ok
}

// MustPlayerID returns the caller identity or panics
func MustPlayerID(ctx context.Context) model.PlayerID {
	id, ok := PlayerID(ctx)
	if !ok {
		panic("no player id in context - identity gate not applied?")
	}
	return id
}

// WithGame attaches the game record to the context
func WithGame(ctx context.Context, game *model.Game) context.Context {
	return context.WithValue(ctx, gameContextKey, game)
}

// Game returns the game attached by the lookup gate, or nil
func Game(ctx context.Context) *model.Game {
	game, _ := ctx.Value(gameContextKey).(*model.Game)
	return game
}

// MustGame returns the game or panics
func MustGame(ctx context.Context) *model.Game {
	game := Game(ctx)
	if game == nil {
		panic("no game in context - lookup gate not applied?")
	}
	return game
}

// WithPlayer attaches the caller's roster entry to the context
func WithPlayer(ctx context.Context, player *model.Player) context.Context {
	return context.WithValue(ctx, playerContextKey, player)
}

// Player returns the roster entry attached by the membership gate, or nil
func Player(ctx context.Context) *model.Player {
	player, _ := ctx.Value(playerContextKey).(*model.Player)
	return player
}

// MustPlayer returns the roster entry or panics
func MustPlayer(ctx context.Context) *model.Player {
	player := Player(ctx)
	if player == nil {
		panic("no player in context - membership gate not applied?")
	}
	return player
}
