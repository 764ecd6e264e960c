package repositories

import (
	"context"
	"errors"
	"fmt"

	"arenaserver/internal/models"

	"gorm.io/gorm"
)

// GORMAccountRepository is a GORM implementation of AccountRepository.
type GORMAccountRepository struct {
	db *gorm.DB
}

// NewGORMAccountRepository creates a new instance of GORMAccountRepository.
func NewGORMAccountRepository(db *gorm.DB) *GORMAccountRepository {
	return &GORMAccountRepository{
		db: db,
	}
}

// Create inserts a new account. A taken userID or email surfaces as *DuplicateKeyError.
func (r *GORMAccountRepository) Create(ctx context.Context, account *models.Account) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", translateError(err))
	}
	return nil
}

// GetByUserID retrieves an account by its userID.
func (r *GORMAccountRepository) GetByUserID(ctx context.Context, userID string) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).First(&account, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("account with userID %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get account by userID %s: %w", userID, err)
	}
	return &account, nil
}

// Delete removes the account, its characters and their item relations in one transaction.
func (r *GORMAccountRepository) Delete(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var characterIDs []uint
		if err := tx.Model(&models.Character{}).Where("user_id = ?", userID).Pluck("id", &characterIDs).Error; err != nil {
			return fmt.Errorf("failed to list characters of %s: %w", userID, err)
		}
		if len(characterIDs) > 0 {
			if err := deleteCharacterRelations(tx, characterIDs); err != nil {
				return err
			}
			if err := tx.Where("id IN ?", characterIDs).Delete(&models.Character{}).Error; err != nil {
				return fmt.Errorf("failed to delete characters of %s: %w", userID, err)
			}
		}

		res := tx.Where("user_id = ?", userID).Delete(&models.Account{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete account: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("account with userID %s: %w", userID, ErrNotFound)
		}
		return nil
	})
}
