package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// ErrNotFound is returned (wrapped) when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// Constraint identifies a unique constraint enforced by storage.
type Constraint int

const (
	ConstraintUnknown Constraint = iota
	ConstraintAccountUserID
	ConstraintAccountEmail
	ConstraintCharacterName
	ConstraintItemCode
)

func (c Constraint) String() string {
	switch c {
	case ConstraintAccountUserID:
		return "account_user_id"
	case ConstraintAccountEmail:
		return "account_email"
	case ConstraintCharacterName:
		return "character_name"
	case ConstraintItemCode:
		return "item_code"
	default:
		return "unknown"
	}
}

// DuplicateKeyError reports a unique-constraint violation.
type DuplicateKeyError struct {
	Constraint Constraint
	Cause      error
}

func (e *DuplicateKeyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("duplicate key violates %s: %v", e.Constraint, e.Cause)
	}
	return fmt.Sprintf("duplicate key violates %s", e.Constraint)
}

func (e *DuplicateKeyError) Unwrap() error {
	return e.Cause
}

// pgUniqueViolation is the SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

const sqliteUniquePrefix = "UNIQUE constraint failed: "

// Postgres reports the index name, SQLite reports table.column.
var constraintNames = map[string]Constraint{
	"idx_accounts_user_id": ConstraintAccountUserID,
	"accounts.user_id":     ConstraintAccountUserID,
	"idx_accounts_email":   ConstraintAccountEmail,
	"accounts.email":       ConstraintAccountEmail,
	"idx_characters_name":  ConstraintCharacterName,
	"characters.name":      ConstraintCharacterName,
	"idx_items_code":       ConstraintItemCode,
	"items.code":           ConstraintItemCode,
}

// translateError turns driver-level unique violations into *DuplicateKeyError
// and leaves every other error untouched.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return &DuplicateKeyError{Constraint: constraintNames[pgErr.ConstraintName], Cause: err}
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) && liteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return &DuplicateKeyError{Constraint: sqliteConstraint(liteErr.Error()), Cause: err}
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &DuplicateKeyError{Constraint: ConstraintUnknown, Cause: err}
	}

	return err
}

// sqliteConstraint extracts the first table.column of a SQLite unique failure.
func sqliteConstraint(msg string) Constraint {
	_, cols, ok := strings.Cut(msg, sqliteUniquePrefix)
	if !ok {
		return ConstraintUnknown
	}
	first, _, _ := strings.Cut(cols, ",")
	return constraintNames[strings.TrimSpace(first)]
}
