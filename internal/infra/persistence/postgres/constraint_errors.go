package postgres

import (
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Index names from the accounts model. Keep in sync with model.AccountModel.
const (
	emailIndexName = "idx_accounts_email"
	phoneIndexName = "idx_accounts_phone"
)

// uniqueViolationConstraint reports whether err is a unique-constraint
// violation and, if the driver exposes it, which constraint was hit.
func uniqueViolationConstraint(err error) (constraint string, ok bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return pgErr.ConstraintName, true
	}

	// GORM translates driver errors when its error translator is active.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return "", true
	}

	return "", false
}

func isEmailUniqueViolation(constraint string) bool {
	return strings.Contains(constraint, emailIndexName) || strings.Contains(constraint, "email")
}

func isPhoneUniqueViolation(constraint string) bool {
	return strings.Contains(constraint, phoneIndexName) || strings.Contains(constraint, "phone")
}
