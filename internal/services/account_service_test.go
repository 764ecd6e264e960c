package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"arenaserver/internal/apperrors"
	"arenaserver/internal/models"
	"arenaserver/internal/repositories"
	"arenaserver/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *services.BcryptHasher {
	return services.NewBcryptHasher(bcrypt.MinCost)
}

func TestAccountService_CreateAccount(t *testing.T) {
	ctx := context.Background()
	hasher := newTestHasher()

	t.Run("stores a hashed password and publishes", func(t *testing.T) {
		mockRepo := new(MockAccountRepository)
		mockPub := new(MockPublisher)
		service := services.NewAccountService(mockRepo, hasher, mockPub)

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Account")).Return(nil).Once()
		mockPub.On("PublishEvent", mock.Anything, eventOfType(services.EventAccountCreated)).Return(nil).Once()

		account, err := service.CreateAccount(ctx, models.CreateAccountRequest{
			UserID:   "player0001",
			Password: "secret123",
			Email:    "player@example.com",
		})

		require.NoError(t, err)
		assert.Equal(t, "player0001", account.UserID)
		assert.Equal(t, "player@example.com", account.Email)
		assert.NotEqual(t, "secret123", account.Password)
		assert.True(t, hasher.Verify(account.Password, "secret123"))
		mockRepo.AssertExpectations(t)
		mockPub.AssertExpectations(t)
	})

	t.Run("duplicate key is passed through", func(t *testing.T) {
		mockRepo := new(MockAccountRepository)
		service := services.NewAccountService(mockRepo, hasher, nil)

		dup := fmt.Errorf("failed to create account: %w", &repositories.DuplicateKeyError{Constraint: repositories.ConstraintAccountEmail})
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Account")).Return(dup).Once()

		account, err := service.CreateAccount(ctx, models.CreateAccountRequest{
			UserID:   "player0002",
			Password: "secret123",
			Email:    "player@example.com",
		})

		assert.Nil(t, account)
		var dupErr *repositories.DuplicateKeyError
		require.True(t, errors.As(err, &dupErr))
		assert.Equal(t, repositories.ConstraintAccountEmail, dupErr.Constraint)
		mockRepo.AssertExpectations(t)
	})

	t.Run("publish failure does not fail creation", func(t *testing.T) {
		mockRepo := new(MockAccountRepository)
		mockPub := new(MockPublisher)
		service := services.NewAccountService(mockRepo, hasher, mockPub)

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Account")).Return(nil).Once()
		mockPub.On("PublishEvent", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

		_, err := service.CreateAccount(ctx, models.CreateAccountRequest{
			UserID:   "player0003",
			Password: "secret123",
			Email:    "third@example.com",
		})

		assert.NoError(t, err)
		mockPub.AssertExpectations(t)
	})
}

func TestAccountService_DeleteAccount(t *testing.T) {
	ctx := context.Background()
	hasher := newTestHasher()
	hashed, err := hasher.Hash("secret123")
	require.NoError(t, err)
	stored := &models.Account{UserID: "player0001", Password: hashed, Email: "player@example.com"}

	t.Run("deletes with matching password", func(t *testing.T) {
		mockRepo := new(MockAccountRepository)
		mockPub := new(MockPublisher)
		service := services.NewAccountService(mockRepo, hasher, mockPub)

		mockRepo.On("GetByUserID", mock.Anything, "player0001").Return(stored, nil).Once()
		mockRepo.On("Delete", mock.Anything, "player0001").Return(nil).Once()
		mockPub.On("PublishEvent", mock.Anything, eventOfType(services.EventAccountDeleted)).Return(nil).Once()

		account, err := service.DeleteAccount(ctx, models.DeleteAccountRequest{UserID: "player0001", Password: "secret123"})

		require.NoError(t, err)
		assert.Equal(t, "player@example.com", account.Email)
		mockRepo.AssertExpectations(t)
		mockPub.AssertExpectations(t)
	})

	t.Run("unknown account pays the same hashing cost as a wrong password", func(t *testing.T) {
		mockRepo := new(MockAccountRepository)
		counting := &countingHasher{BcryptHasher: hasher}
		service := services.NewAccountService(mockRepo, counting, nil)

		mockRepo.On("GetByUserID", mock.Anything, "nobody0001").Return(nil, notFound("account")).Once()
		mockRepo.On("GetByUserID", mock.Anything, "player0001").Return(stored, nil).Once()

		_, err := service.DeleteAccount(ctx, models.DeleteAccountRequest{UserID: "nobody0001", Password: "secret123"})
		require.Error(t, err)
		assert.Equal(t, 1, counting.verifies)

		_, err = service.DeleteAccount(ctx, models.DeleteAccountRequest{UserID: "player0001", Password: "wrong-pass"})
		require.Error(t, err)
		assert.Equal(t, 2, counting.verifies)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown account and wrong password are indistinguishable", func(t *testing.T) {
		mockRepo := new(MockAccountRepository)
		service := services.NewAccountService(mockRepo, hasher, nil)

		mockRepo.On("GetByUserID", mock.Anything, "nobody0001").
			Return(nil, fmt.Errorf("account with userID nobody0001: %w", repositories.ErrNotFound)).Once()
		mockRepo.On("GetByUserID", mock.Anything, "player0001").Return(stored, nil).Once()

		_, missingErr := service.DeleteAccount(ctx, models.DeleteAccountRequest{UserID: "nobody0001", Password: "secret123"})
		_, wrongErr := service.DeleteAccount(ctx, models.DeleteAccountRequest{UserID: "player0001", Password: "wrong-pass"})

		require.Error(t, missingErr)
		require.Error(t, wrongErr)
		missingStatus, missingMsg := apperrors.Classify(missingErr)
		wrongStatus, wrongMsg := apperrors.Classify(wrongErr)
		assert.Equal(t, missingStatus, wrongStatus)
		assert.Equal(t, missingMsg, wrongMsg)
		assert.Equal(t, apperrors.MsgBadCredentials, wrongMsg)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
	})

	t.Run("storage failure is not reported as bad credentials", func(t *testing.T) {
		mockRepo := new(MockAccountRepository)
		service := services.NewAccountService(mockRepo, hasher, nil)

		mockRepo.On("GetByUserID", mock.Anything, "player0001").Return(nil, errors.New("connection reset")).Once()

		_, err := service.DeleteAccount(ctx, models.DeleteAccountRequest{UserID: "player0001", Password: "secret123"})

		assert.Equal(t, apperrors.KindInternal, apperrors.KindOf(err))
		assert.Contains(t, err.Error(), "connection reset")
		mockRepo.AssertExpectations(t)
	})
}
