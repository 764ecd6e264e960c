package services

import (
	"context"
	"errors"
	"fmt"

	"arenaserver/internal/apperrors"
	"arenaserver/internal/models"
	"arenaserver/internal/repositories"
)

// CharacterService resolves character creation, deletion and lookup.
type CharacterService struct {
	characters  repositories.CharacterRepository
	accounts    repositories.AccountRepository
	hasher      PasswordHasher
	publisher   EventPublisher
	missingHash string
}

// NewCharacterService creates a new CharacterService. publisher may be nil.
func NewCharacterService(characters repositories.CharacterRepository, accounts repositories.AccountRepository, hasher PasswordHasher, publisher EventPublisher) *CharacterService {
	return &CharacterService{
		characters:  characters,
		accounts:    accounts,
		hasher:      hasher,
		publisher:   publisher,
		missingHash: missingAccountHash(hasher),
	}
}

// CreateCharacter creates a character with default stats for an existing account.
func (s *CharacterService) CreateCharacter(ctx context.Context, req models.CreateCharacterRequest) (*models.Character, error) {
	if _, err := s.accounts.GetByUserID(ctx, req.UserID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound(apperrors.MsgAccountNotFound)
		}
		return nil, err
	}

	character := &models.Character{
		Name:   req.Name,
		UserID: req.UserID,
		Health: models.DefaultCharacterHealth,
		Power:  models.DefaultCharacterPower,
		Money:  models.DefaultCharacterMoney,
	}
	if err := s.characters.Create(ctx, character); err != nil {
		return nil, err
	}

	publish(ctx, s.publisher, EventCharacterCreated, character.View())
	return character, nil
}

// DeleteCharacter deletes a character. The checks run in order: the character
// must exist, the password must match the requester's account, and the
// requester must own the character.
func (s *CharacterService) DeleteCharacter(ctx context.Context, req models.DeleteCharacterRequest) (*models.Character, error) {
	character, err := s.characters.GetByName(ctx, req.Name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound(apperrors.MsgDeleteTargetAbsent)
		}
		return nil, err
	}

	// An unknown requester cannot present a matching password.
	account, err := s.accounts.GetByUserID(ctx, req.UserID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}
	if account == nil {
		s.hasher.Verify(s.missingHash, req.Password)
		return nil, apperrors.Unauthorized(apperrors.MsgPasswordIncorrect)
	}
	if !s.hasher.Verify(account.Password, req.Password) {
		return nil, apperrors.Unauthorized(apperrors.MsgPasswordIncorrect)
	}

	if character.UserID != req.UserID {
		return nil, apperrors.Forbidden(apperrors.MsgOwnershipMismatch)
	}

	if err := s.characters.Delete(ctx, character.Name); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound(apperrors.MsgDeleteTargetAbsent)
		}
		return nil, fmt.Errorf("failed to delete character %s: %w", character.Name, err)
	}

	publish(ctx, s.publisher, EventCharacterDeleted, character.View())
	return character, nil
}

// GetCharacter returns a character with its inventory and equipped items.
func (s *CharacterService) GetCharacter(ctx context.Context, name string) (*models.Character, error) {
	character, err := s.characters.GetDetailByName(ctx, name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound(apperrors.MsgCharacterNotFound)
		}
		return nil, err
	}
	return character, nil
}
