package repositories

import (
	"context"

	"arenaserver/internal/models"
)

// AccountRepository defines the interface for account data access.
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByUserID(ctx context.Context, userID string) (*models.Account, error)
	// Delete removes the account together with the characters it owns.
	Delete(ctx context.Context, userID string) error
}
