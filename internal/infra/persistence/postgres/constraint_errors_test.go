package postgres

import (
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUniqueViolationConstraint(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantConstraint string
		wantOK         bool
	}{
		{
			name: "email unique violation",
			err: &pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: emailIndexName,
			},
			wantConstraint: emailIndexName,
			wantOK:         true,
		},
		{
			name: "phone unique violation",
			err: &pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: phoneIndexName,
			},
			wantConstraint: phoneIndexName,
			wantOK:         true,
		},
		{
			name: "wrapped driver error is still recognized",
			err: errors.Wrap(&pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: emailIndexName,
			}, "failed to insert account"),
			wantConstraint: emailIndexName,
			wantOK:         true,
		},
		{
			name:           "translated duplicate key without constraint name",
			err:            gorm.ErrDuplicatedKey,
			wantConstraint: "",
			wantOK:         true,
		},
		{
			name: "other postgres error",
			err: &pgconn.PgError{
				Code: pgerrcode.NotNullViolation,
			},
			wantOK: false,
		},
		{
			name:   "plain error",
			err:    errors.New("connection reset"),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			constraint, ok := uniqueViolationConstraint(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantConstraint, constraint)
		})
	}
}

func TestConstraintClassification(t *testing.T) {
	assert.True(t, isEmailUniqueViolation(emailIndexName))
	assert.True(t, isEmailUniqueViolation("accounts_email_key"))
	assert.False(t, isEmailUniqueViolation(phoneIndexName))

	assert.True(t, isPhoneUniqueViolation(phoneIndexName))
	assert.True(t, isPhoneUniqueViolation("accounts_phone_key"))
	assert.False(t, isPhoneUniqueViolation(emailIndexName))
}
