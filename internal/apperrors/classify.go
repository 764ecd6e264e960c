package apperrors

import (
	"errors"
	"net/http"

	"arenaserver/internal/repositories"
)

// Classify maps err to the response status and message. Unique-constraint
// violations are told apart by the constraint that fired; anything that is
// neither an *Error nor a duplicate key is reported as an internal failure.
func Classify(err error) (int, string) {
	if err == nil {
		return http.StatusOK, ""
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return StatusOf(appErr.Kind), appErr.Message
	}

	var dupErr *repositories.DuplicateKeyError
	if errors.As(err, &dupErr) {
		return http.StatusBadRequest, DuplicateMessage(dupErr.Constraint)
	}

	return http.StatusInternalServerError, MsgInternal
}

// StatusOf returns the HTTP status reported for a kind.
func StatusOf(kind Kind) int {
	switch kind {
	case KindValidation, KindDuplicate, KindMalformedPayload:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// DuplicateMessage returns the message for a violated unique constraint.
func DuplicateMessage(c repositories.Constraint) string {
	switch c {
	case repositories.ConstraintAccountUserID:
		return MsgDuplicateUserID
	case repositories.ConstraintAccountEmail:
		return MsgDuplicateEmail
	case repositories.ConstraintCharacterName:
		return MsgDuplicateCharacter
	case repositories.ConstraintItemCode:
		return MsgDuplicateItemCode
	default:
		return MsgDuplicate
	}
}

// KindOf returns the kind of the first *Error in err's chain. A unique
// violation from storage counts as KindDuplicate; anything else is KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	var dupErr *repositories.DuplicateKeyError
	if errors.As(err, &dupErr) {
		return KindDuplicate
	}
	return KindInternal
}

// KindForStatus maps a status produced outside the classifier, such as an
// unknown route or an oversized body, to the closest kind.
func KindForStatus(status int) Kind {
	switch {
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status == http.StatusForbidden:
		return KindForbidden
	case status >= 400 && status < 500:
		return KindValidation
	default:
		return KindInternal
	}
}
