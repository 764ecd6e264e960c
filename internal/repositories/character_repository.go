package repositories

import (
	"context"

	"arenaserver/internal/models"
)

// CharacterRepository defines the interface for character data access.
type CharacterRepository interface {
	Create(ctx context.Context, character *models.Character) error
	GetByName(ctx context.Context, name string) (*models.Character, error)
	// GetDetailByName loads the character with its inventory and equipped items.
	GetDetailByName(ctx context.Context, name string) (*models.Character, error)
	Delete(ctx context.Context, name string) error
}
