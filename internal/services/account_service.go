package services

import (
	"context"
	"errors"
	"fmt"

	"arenaserver/internal/apperrors"
	"arenaserver/internal/models"
	"arenaserver/internal/repositories"
)

// AccountService resolves account creation and deletion against storage.
type AccountService struct {
	repo        repositories.AccountRepository
	hasher      PasswordHasher
	publisher   EventPublisher
	missingHash string
}

// NewAccountService creates a new AccountService. publisher may be nil.
func NewAccountService(repo repositories.AccountRepository, hasher PasswordHasher, publisher EventPublisher) *AccountService {
	return &AccountService{
		repo:        repo,
		hasher:      hasher,
		publisher:   publisher,
		missingHash: missingAccountHash(hasher),
	}
}

// CreateAccount stores a new account. Uniqueness of userID and email is left
// to storage; a violation comes back as *repositories.DuplicateKeyError.
func (s *AccountService) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (*models.Account, error) {
	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		UserID:   req.UserID,
		Password: hashed,
		Email:    req.Email,
	}
	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}

	publish(ctx, s.publisher, EventAccountCreated, account.View())
	return account, nil
}

// DeleteAccount deletes the account after checking its password. An unknown
// userID and a wrong password produce the same error.
func (s *AccountService) DeleteAccount(ctx context.Context, req models.DeleteAccountRequest) (*models.Account, error) {
	account, err := s.repo.GetByUserID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			s.hasher.Verify(s.missingHash, req.Password)
			return nil, apperrors.Unauthorized(apperrors.MsgBadCredentials)
		}
		return nil, err
	}

	if !s.hasher.Verify(account.Password, req.Password) {
		return nil, apperrors.Unauthorized(apperrors.MsgBadCredentials)
	}

	if err := s.repo.Delete(ctx, account.UserID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.Unauthorized(apperrors.MsgBadCredentials)
		}
		return nil, fmt.Errorf("failed to delete account %s: %w", account.UserID, err)
	}

	publish(ctx, s.publisher, EventAccountDeleted, account.View())
	return account, nil
}
