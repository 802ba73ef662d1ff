package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/partycards-go/internal/dependencies/clock"
	"github.com/mcoot/partycards-go/internal/dependencies/mocks"
	"github.com/mcoot/partycards-go/internal/dependencies/random"
	"github.com/mcoot/partycards-go/internal/model"
	"github.com/mcoot/partycards-go/internal/storage/memory"
	"github.com/mcoot/partycards-go/internal/testutil"
)

func newTestController(t *testing.T) (*Controller, *memory.Storage) {
	t.Helper()
	store := memory.New()
	c := NewController(store, clock.New(), random.New(), testutil.NopLogger())
	return c, store
}

// setupGame creates a game with the given number of players joined
func setupGame(t *testing.T, c *Controller, names ...string) (*model.Game, []model.PlayerID) {
	t.Helper()
	ctx := context.Background()

	game, err := c.Create(ctx)
	require.NoError(t, err)

	ids := make([]model.PlayerID, 0, len(names))
	for _, name := range names {
		id, err := c.AddPlayer(ctx, game, name)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return game, ids
}

func TestCreate(t *testing.T) {
	c, store := newTestController(t)

	game, err := c.Create(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, game.ID)
	assert.False(t, game.HasStarted)
	assert.Empty(t, game.Players)

	saved, err := store.GetGame(context.Background(), game.ID)
	require.NoError(t, err)
	assert.Equal(t, game.ID, saved.ID)
}

func TestAddPlayerFirstJoinerIsVIP(t *testing.T) {
	c, _ := newTestController(t)
	game, ids := setupGame(t, c, "Alice", "Bob")

	assert.True(t, game.Players[ids[0]].IsVIP)
	assert.False(t, game.Players[ids[1]].IsVIP)
}

func TestAddPlayerNameTaken(t *testing.T) {
	c, _ := newTestController(t)
	game, _ := setupGame(t, c, "Alice")

	_, err := c.AddPlayer(context.Background(), game, "alice")
	assert.ErrorIs(t, err, model.ErrNameTaken)
}

func TestStart(t *testing.T) {
	c, _ := newTestController(t)
	game, _ := setupGame(t, c, "Alice", "Bob", "Carol")

	require.NoError(t, c.Start(context.Background(), game))
	assert.True(t, game.HasStarted)
	assert.Equal(t, 1, game.Round)

	id, cardzar := game.Cardzar()
	require.NotNil(t, cardzar)
	assert.NotEmpty(t, id)
}

func TestStartInsufficientPlayers(t *testing.T) {
	c, _ := newTestController(t)
	game, _ := setupGame(t, c, "Alice", "Bob")

	err := c.Start(context.Background(), game)
	assert.ErrorIs(t, err, model.ErrInsufficientPlayers)
}

func TestStartTwice(t *testing.T) {
	c, _ := newTestController(t)
	game, _ := setupGame(t, c, "Alice", "Bob", "Carol")

	require.NoError(t, c.Start(context.Background(), game))
	assert.ErrorIs(t, c.Start(context.Background(), game), model.ErrGameStarted)
}

func TestSubmitCard(t *testing.T) {
	c, _ := newTestController(t)
	game, ids := setupGame(t, c, "Alice", "Bob", "Carol")
	require.NoError(t, c.Start(context.Background(), game))

	cardzarID, _ := game.Cardzar()
	for _, id := range ids {
		if id == cardzarID {
			continue
		}
		require.NoError(t, c.SubmitCard(context.Background(), game, id, "a card"))
		assert.ErrorIs(t, c.SubmitCard(context.Background(), game, id, "again"), model.ErrAlreadySubmitted)
	}

	assert.True(t, game.AllSubmitted())
	assert.ErrorIs(t, c.SubmitCard(context.Background(), game, cardzarID, "a card"), model.ErrCardzarCannotSubmit)
}

func TestSubmitCardBeforeStart(t *testing.T) {
	c, _ := newTestController(t)
	game, ids := setupGame(t, c, "Alice", "Bob", "Carol")

	err := c.SubmitCard(context.Background(), game, ids[0], "a card")
	assert.ErrorIs(t, err, model.ErrGameNotStarted)
}

func TestPickWinnerRotatesCardzar(t *testing.T) {
	c, _ := newTestController(t)
	game, ids := setupGame(t, c, "Alice", "Bob", "Carol")
	require.NoError(t, c.Start(context.Background(), game))

	cardzarID, _ := game.Cardzar()
	var winnerID model.PlayerID
	for _, id := range ids {
		if id == cardzarID {
			continue
		}
		require.NoError(t, c.SubmitCard(context.Background(), game, id, "a card"))
		winnerID = id
	}

	require.NoError(t, c.PickWinner(context.Background(), game, winnerID))

	newCardzarID, _ := game.Cardzar()
	assert.Equal(t, winnerID, newCardzarID)
	assert.Equal(t, 1, game.Players[winnerID].Score)
	assert.False(t, game.Players[cardzarID].IsCardzar)
	assert.Empty(t, game.Submissions)
	assert.Equal(t, 2, game.Round)
}

func TestPickWinnerWithoutSubmission(t *testing.T) {
	c, _ := newTestController(t)
	game, ids := setupGame(t, c, "Alice", "Bob", "Carol")
	require.NoError(t, c.Start(context.Background(), game))

	cardzarID, _ := game.Cardzar()
	var other model.PlayerID
	for _, id := range ids {
		if id != cardzarID {
			other = id
			break
		}
	}

	err := c.PickWinner(context.Background(), game, other)
	assert.ErrorIs(t, err, model.ErrNoSubmission)
}

func TestRemovePlayerPassesRoles(t *testing.T) {
	c, _ := newTestController(t)
	game, _ := setupGame(t, c, "Alice", "Bob", "Carol")
	require.NoError(t, c.Start(context.Background(), game))

	cardzarID, _ := game.Cardzar()
	require.NoError(t, c.RemovePlayer(context.Background(), game, cardzarID))

	assert.Len(t, game.Players, 2)
	_, cardzar := game.Cardzar()
	assert.NotNil(t, cardzar, "cardzar role must pass to a remaining player")

	hasVIP := false
	for _, p := range game.Players {
		if p.IsVIP {
			hasVIP = true
		}
	}
	assert.True(t, hasVIP, "VIP role must survive removals")
}

func TestRemovePlayerNotInGame(t *testing.T) {
	c, _ := newTestController(t)
	game, _ := setupGame(t, c, "Alice")

	err := c.RemovePlayer(context.Background(), game, "p_nonexistent")
	assert.ErrorIs(t, err, model.ErrNotInGame)
}

func TestUpdatedAtAdvances(t *testing.T) {
	clk := mocks.NewMockClock(time.Now())
	c := NewController(memory.New(), clk, random.New(), testutil.NopLogger())
	game, _ := setupGame(t, c, "Alice")

	before := game.UpdatedAt
	clk.Advance(time.Minute)
	_, err := c.AddPlayer(context.Background(), game, "Bob")
	require.NoError(t, err)
	assert.True(t, game.UpdatedAt.After(before))
}
