package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/partycards-go/internal/model"
)

func newTestGame(id model.GameID) *model.Game {
	return &model.Game{
		ID: id,
		Players: map[model.PlayerID]*model.Player{
			"p1": {Name: "Alice", IsVIP: true},
		},
		Submissions: make(map[model.PlayerID]string),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestSaveAndGetGame(t *testing.T) {
	s := New()
	ctx := context.Background()

	game := newTestGame("game-1")
	require.NoError(t, s.SaveGame(ctx, game))

	retrieved, err := s.GetGame(ctx, "game-1")
	require.NoError(t, err)
	assert.Equal(t, game.ID, retrieved.ID)
	assert.Equal(t, "Alice", retrieved.Players["p1"].Name)
}

func TestGetGameNotFound(t *testing.T) {
	s := New()

	_, err := s.GetGame(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, model.ErrGameNotFound)
}

func TestDeleteGame(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.SaveGame(ctx, newTestGame("game-1")))
	require.NoError(t, s.DeleteGame(ctx, "game-1"))

	_, err := s.GetGame(ctx, "game-1")
	assert.ErrorIs(t, err, model.ErrGameNotFound)
}

func TestDeleteGameMissingIsNoop(t *testing.T) {
	s := New()
	assert.NoError(t, s.DeleteGame(context.Background(), "nonexistent"))
}
