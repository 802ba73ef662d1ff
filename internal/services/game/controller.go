package game

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mcoot/partycards-go/internal/dependencies/clock"
	"github.com/mcoot/partycards-go/internal/dependencies/random"
	"github.com/mcoot/partycards-go/internal/model"
	"github.com/mcoot/partycards-go/internal/storage"
)

const (
	gameIDAlphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	playerIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	// MinPlayers is the minimum roster size to start a game:
	// a cardzar plus at least two submitting players
	MinPlayers = 3
)

// Controller manages game lifecycle and round flow
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new game controller
func NewController(storage storage.Storage, clock clock.Clock, random random.Random, logger *slog.Logger) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// Create initializes a new game with an empty roster
func (c *Controller) Create(ctx context.Context) (*model.Game, error) {
	now := c.clock.Now()

	game := &model.Game{
		ID:          model.GameID(c.random.String(8, gameIDAlphabet)),
		Players:     make(map[model.PlayerID]*model.Player),
		Submissions: make(map[model.PlayerID]string),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game created", slog.String("game_id", string(game.ID)))
	return game, nil
}

// AddPlayer adds a player to the game's roster and returns their new
// identity. The first player to join becomes VIP. Join-window checks
// happen upstream; this assumes the game has not started.
func (c *Controller) AddPlayer(ctx context.Context, game *model.Game, name string) (model.PlayerID, error) {
	name = strings.TrimSpace(name)

	for _, p := range game.Players {
		if strings.EqualFold(p.Name, name) {
			return "", model.ErrNameTaken
		}
	}

	playerID := model.PlayerID("p_" + c.random.String(12, playerIDAlphabet))
	game.Players[playerID] = &model.Player{
		Name:  name,
		IsVIP: len(game.Players) == 0,
	}
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return "", err
	}

	c.logger.Info("player joined",
		slog.String("game_id", string(game.ID)),
		slog.String("player_id", string(playerID)),
		slog.String("name", name),
	)
	return playerID, nil
}

// Start begins the game: flips HasStarted and picks the first cardzar
// at random. HasStarted never reverts once set.
func (c *Controller) Start(ctx context.Context, game *model.Game) error {
	if game.HasStarted {
		return model.ErrGameStarted
	}
	if len(game.Players) < MinPlayers {
		return model.ErrInsufficientPlayers
	}

	ids := game.PlayerIDs()
	first := ids[c.random.Intn(len(ids))]

	game.HasStarted = true
	game.Round = 1
	game.Players[first].IsCardzar = true
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return err
	}

	c.logger.Info("game started",
		slog.String("game_id", string(game.ID)),
		slog.String("cardzar", string(first)),
		slog.Int("player_count", len(game.Players)),
	)
	return nil
}

// SubmitCard records a player's card for the current round
func (c *Controller) SubmitCard(ctx context.Context, game *model.Game, playerID model.PlayerID, card string) error {
	if !game.HasStarted {
		return model.ErrGameNotStarted
	}

	player := game.Player(playerID)
	if player == nil {
		return model.ErrNotInGame
	}
	if player.IsCardzar {
		return model.ErrCardzarCannotSubmit
	}
	if _, ok := game.Submissions[playerID]; ok {
		return model.ErrAlreadySubmitted
	}

	game.Submissions[playerID] = card
	game.UpdatedAt = c.clock.Now()

	return c.storage.SaveGame(ctx, game)
}

// PickWinner awards the round to the given player, rotates the cardzar
// role to them, clears submissions, and advances the round
func (c *Controller) PickWinner(ctx context.Context, game *model.Game, winnerID model.PlayerID) error {
	if !game.HasStarted {
		return model.ErrGameNotStarted
	}

	winner := game.Player(winnerID)
	if winner == nil {
		return model.ErrNotInGame
	}
	if _, ok := game.Submissions[winnerID]; !ok {
		return model.ErrNoSubmission
	}

	if id, cardzar := game.Cardzar(); cardzar != nil {
		cardzar.IsCardzar = false
		c.logger.Info("cardzar rotated",
			slog.String("game_id", string(game.ID)),
			slog.String("from", string(id)),
			slog.String("to", string(winnerID)),
		)
	}

	winner.Score++
	winner.IsCardzar = true
	game.Submissions = make(map[model.PlayerID]string)
	game.Round++
	game.UpdatedAt = c.clock.Now()

	return c.storage.SaveGame(ctx, game)
}

// RemovePlayer drops a player from the roster. If the departing player
// was cardzar, the role passes to another player; VIP passes likewise
// so the game always has one.
func (c *Controller) RemovePlayer(ctx context.Context, game *model.Game, playerID model.PlayerID) error {
	player := game.Player(playerID)
	if player == nil {
		return model.ErrNotInGame
	}

	delete(game.Players, playerID)
	delete(game.Submissions, playerID)

	if len(game.Players) > 0 {
		ids := game.PlayerIDs()
		next := ids[0]
		if player.IsCardzar {
			game.Players[next].IsCardzar = true
		}
		if player.IsVIP {
			hasVIP := false
			for _, p := range game.Players {
				if p.IsVIP {
					hasVIP = true
					break
				}
			}
			if !hasVIP {
				game.Players[next].IsVIP = true
			}
		}
	}
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return err
	}

	c.logger.Info("player removed",
		slog.String("game_id", string(game.ID)),
		slog.String("player_id", string(playerID)),
	)
	return nil
}
