package repositories

import (
	"context"
	"errors"
	"fmt"

	"arenaserver/internal/models"

	"gorm.io/gorm"
)

// GORMCharacterRepository is a GORM implementation of CharacterRepository.
type GORMCharacterRepository struct {
	db *gorm.DB
}

// NewGORMCharacterRepository creates a new instance of GORMCharacterRepository.
func NewGORMCharacterRepository(db *gorm.DB) *GORMCharacterRepository {
	return &GORMCharacterRepository{
		db: db,
	}
}

// Create inserts a new character. A taken name surfaces as *DuplicateKeyError.
func (r *GORMCharacterRepository) Create(ctx context.Context, character *models.Character) error {
	if err := r.db.WithContext(ctx).Omit("Inventory", "Equipped").Create(character).Error; err != nil {
		return fmt.Errorf("failed to create character: %w", translateError(err))
	}
	return nil
}

// GetByName retrieves a character without its item relations.
func (r *GORMCharacterRepository) GetByName(ctx context.Context, name string) (*models.Character, error) {
	return r.first(r.db.WithContext(ctx), name)
}

// GetDetailByName retrieves a character with inventory and equipped items attached.
func (r *GORMCharacterRepository) GetDetailByName(ctx context.Context, name string) (*models.Character, error) {
	return r.first(r.db.WithContext(ctx).Preload("Inventory").Preload("Equipped"), name)
}

func (r *GORMCharacterRepository) first(db *gorm.DB, name string) (*models.Character, error) {
	var character models.Character
	if err := db.First(&character, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("character with name %s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get character by name %s: %w", name, err)
	}
	return &character, nil
}

// Delete removes the character and its inventory and equipped rows.
func (r *GORMCharacterRepository) Delete(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var character models.Character
		if err := tx.Select("id").First(&character, "name = ?", name).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("character with name %s: %w", name, ErrNotFound)
			}
			return fmt.Errorf("failed to get character by name %s: %w", name, err)
		}
		if err := deleteCharacterRelations(tx, []uint{character.ID}); err != nil {
			return err
		}
		if err := tx.Delete(&models.Character{}, character.ID).Error; err != nil {
			return fmt.Errorf("failed to delete character: %w", err)
		}
		return nil
	})
}

// deleteCharacterRelations clears the inventory and equipped join rows of the given characters.
func deleteCharacterRelations(tx *gorm.DB, characterIDs []uint) error {
	for _, table := range []string{models.InventoryTable, models.EquippedTable} {
		if err := tx.Exec("DELETE FROM "+table+" WHERE character_id IN ?", characterIDs).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}
