package repositories

import (
	"context"
	"errors"
	"fmt"

	"arenaserver/internal/models"

	"gorm.io/gorm"
)

// GORMItemRepository is a GORM implementation of ItemRepository.
type GORMItemRepository struct {
	db *gorm.DB
}

// NewGORMItemRepository creates a new instance of GORMItemRepository.
func NewGORMItemRepository(db *gorm.DB) *GORMItemRepository {
	return &GORMItemRepository{
		db: db,
	}
}

// Create inserts a new catalog item. A taken code surfaces as *DuplicateKeyError.
func (r *GORMItemRepository) Create(ctx context.Context, item *models.Item) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create item: %w", translateError(err))
	}
	return nil
}

// GetByCode retrieves a single item by its catalog code.
func (r *GORMItemRepository) GetByCode(ctx context.Context, code int) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).First(&item, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("item with code %d: %w", code, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get item by code %d: %w", code, err)
	}
	return &item, nil
}

// Update writes every column of a previously loaded item.
func (r *GORMItemRepository) Update(ctx context.Context, item *models.Item) error {
	res := r.db.WithContext(ctx).Model(item).Select("*").Omit("ID", "CreatedAt").Updates(item)
	if res.Error != nil {
		return fmt.Errorf("failed to update item: %w", translateError(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("item with code %d: %w", item.Code, ErrNotFound)
	}
	return nil
}

// Delete removes the item and every character relation that points at it.
func (r *GORMItemRepository) Delete(ctx context.Context, code int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := tx.Select("id").First(&item, "code = ?", code).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("item with code %d: %w", code, ErrNotFound)
			}
			return fmt.Errorf("failed to get item by code %d: %w", code, err)
		}
		for _, table := range []string{models.InventoryTable, models.EquippedTable} {
			if err := tx.Exec("DELETE FROM "+table+" WHERE item_id = ?", item.ID).Error; err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}
		if err := tx.Delete(&models.Item{}, item.ID).Error; err != nil {
			return fmt.Errorf("failed to delete item: %w", err)
		}
		return nil
	})
}
