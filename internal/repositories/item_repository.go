package repositories

import (
	"context"

	"arenaserver/internal/models"
)

// ItemRepository defines the interface for item catalog data access.
type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	GetByCode(ctx context.Context, code int) (*models.Item, error)
	Update(ctx context.Context, item *models.Item) error
	// Delete removes the item and every inventory or equipped reference to it.
	Delete(ctx context.Context, code int) error
}
