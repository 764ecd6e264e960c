package services

import (
	"context"
	"errors"

	"arenaserver/internal/apperrors"
	"arenaserver/internal/models"
	"arenaserver/internal/repositories"
)

// ItemService resolves catalog item operations.
type ItemService struct {
	repo      repositories.ItemRepository
	publisher EventPublisher
}

// NewItemService creates a new ItemService. publisher may be nil.
func NewItemService(repo repositories.ItemRepository, publisher EventPublisher) *ItemService {
	return &ItemService{
		repo:      repo,
		publisher: publisher,
	}
}

// CreateItem adds an item whose code is not yet in the catalog.
func (s *ItemService) CreateItem(ctx context.Context, req models.CreateItemRequest) (*models.Item, error) {
	_, err := s.repo.GetByCode(ctx, req.Code)
	switch {
	case err == nil:
		return nil, apperrors.Duplicate(apperrors.MsgDuplicateItemCode)
	case !errors.Is(err, repositories.ErrNotFound):
		return nil, err
	}

	item := req.Item()
	// A concurrent insert of the same code still fails on the unique index.
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	publish(ctx, s.publisher, EventItemCreated, item.View())
	return item, nil
}

// GetItem returns the item with the given code.
func (s *ItemService) GetItem(ctx context.Context, code int) (*models.Item, error) {
	item, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound(apperrors.MsgItemNotFound)
		}
		return nil, err
	}
	return item, nil
}

// UpdateItem overwrites only the fields present in patch.
func (s *ItemService) UpdateItem(ctx context.Context, code int, patch models.ItemPatch) (*models.Item, error) {
	item, err := s.GetItem(ctx, code)
	if err != nil {
		return nil, err
	}

	if patch.Empty() {
		return item, nil
	}

	patch.Apply(item)
	if err := s.repo.Update(ctx, item); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound(apperrors.MsgItemNotFound)
		}
		return nil, err
	}

	publish(ctx, s.publisher, EventItemUpdated, item.View())
	return item, nil
}

// DeleteItem removes the item. Inventory and equipped references are removed by storage.
func (s *ItemService) DeleteItem(ctx context.Context, code int) (*models.Item, error) {
	item, err := s.GetItem(ctx, code)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, code); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound(apperrors.MsgItemNotFound)
		}
		return nil, err
	}

	publish(ctx, s.publisher, EventItemDeleted, item.View())
	return item, nil
}
