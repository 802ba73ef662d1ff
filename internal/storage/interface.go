package storage

import (
	"context"

	"github.com/mcoot/partycards-go/internal/model"
)

// Storage defines the interface for game persistence.
// GetGame returns model.ErrGameNotFound when no record exists.
type Storage interface {
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error
}
