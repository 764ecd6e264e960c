package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"arenaserver/internal/apperrors"
	"arenaserver/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", apperrors.Validation(errors.New("bad field")), http.StatusBadRequest, apperrors.MsgValidation},
		{"malformed payload", apperrors.MalformedPayload(errors.New("unexpected EOF")), http.StatusBadRequest, apperrors.MsgMalformedPayload},
		{"duplicate", apperrors.Duplicate(apperrors.MsgDuplicateItemCode), http.StatusBadRequest, apperrors.MsgDuplicateItemCode},
		{"not found", apperrors.NotFound(apperrors.MsgItemNotFound), http.StatusNotFound, apperrors.MsgItemNotFound},
		{"unauthorized", apperrors.Unauthorized(apperrors.MsgBadCredentials), http.StatusUnauthorized, apperrors.MsgBadCredentials},
		{"forbidden", apperrors.Forbidden(apperrors.MsgOwnershipMismatch), http.StatusForbidden, apperrors.MsgOwnershipMismatch},
		{"wrapped app error", fmt.Errorf("service: %w", apperrors.NotFound(apperrors.MsgCharacterNotFound)), http.StatusNotFound, apperrors.MsgCharacterNotFound},
		{"user id constraint", &repositories.DuplicateKeyError{Constraint: repositories.ConstraintAccountUserID}, http.StatusBadRequest, apperrors.MsgDuplicateUserID},
		{"email constraint", fmt.Errorf("create: %w", &repositories.DuplicateKeyError{Constraint: repositories.ConstraintAccountEmail}), http.StatusBadRequest, apperrors.MsgDuplicateEmail},
		{"character name constraint", &repositories.DuplicateKeyError{Constraint: repositories.ConstraintCharacterName}, http.StatusBadRequest, apperrors.MsgDuplicateCharacter},
		{"item code constraint", &repositories.DuplicateKeyError{Constraint: repositories.ConstraintItemCode}, http.StatusBadRequest, apperrors.MsgDuplicateItemCode},
		{"unknown constraint", &repositories.DuplicateKeyError{}, http.StatusBadRequest, apperrors.MsgDuplicate},
		{"storage failure", errors.New("connection reset by peer"), http.StatusInternalServerError, apperrors.MsgInternal},
		{"bare not found from storage", repositories.ErrNotFound, http.StatusInternalServerError, apperrors.MsgInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := apperrors.Classify(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestClassify_InternalDetailsAreHidden(t *testing.T) {
	_, msg := apperrors.Classify(errors.New(`pq: relation "accounts" does not exist`))
	assert.Equal(t, apperrors.MsgInternal, msg)
	assert.NotContains(t, msg, "accounts")
}

func TestError_IsMatchesKind(t *testing.T) {
	err := fmt.Errorf("lookup: %w", apperrors.NotFound(apperrors.MsgItemNotFound))

	assert.ErrorIs(t, err, apperrors.NotFound(""))
	assert.NotErrorIs(t, err, apperrors.Forbidden(""))
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	assert.Equal(t, apperrors.KindInternal, apperrors.KindOf(errors.New("boom")))
	assert.Equal(t, apperrors.KindDuplicate, apperrors.KindOf(fmt.Errorf("create: %w", &repositories.DuplicateKeyError{})))
}

func TestError_UnwrapKeepsCause(t *testing.T) {
	cause := errors.New("json: unexpected end of input")
	err := apperrors.MalformedPayload(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "malformed_payload")
}

func TestKindForStatus(t *testing.T) {
	tests := []struct {
		status int
		want   apperrors.Kind
	}{
		{http.StatusNotFound, apperrors.KindNotFound},
		{http.StatusUnauthorized, apperrors.KindUnauthorized},
		{http.StatusForbidden, apperrors.KindForbidden},
		{http.StatusMethodNotAllowed, apperrors.KindValidation},
		{http.StatusRequestEntityTooLarge, apperrors.KindValidation},
		{http.StatusServiceUnavailable, apperrors.KindInternal},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.KindForStatus(tt.status))
		})
	}
}
