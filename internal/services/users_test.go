package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertUserPromotesOwner(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`INSERT INTO users \(open_id, name, email, login_method, role, last_signed_in\) VALUES \(\$1, \$2, \$3, \$4, \$5, \$6\) ON CONFLICT \(open_id\) DO UPDATE SET name = EXCLUDED.name, email = EXCLUDED.email, login_method = EXCLUDED.login_method, role = EXCLUDED.role, last_signed_in = EXCLUDED.last_signed_in, updated_at = now\(\)`).
		WithArgs("owner-open-id", "Owner", "owner@example.com", "oauth", "admin", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := UpsertUser(db, "owner-open-id", UserUpsert{
		OpenID:      "owner-open-id",
		Name:        strPtr("Owner"),
		Email:       strPtr("owner@example.com"),
		LoginMethod: strPtr("oauth"),
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertUserRegularVisitorKeepsRole(t *testing.T) {
	db, mock := newMockDB(t)

	// No role column at all for a non-owner login without an explicit
	// role, so an existing admin is never demoted by a re-login.
	mock.ExpectExec(`INSERT INTO users \(open_id, name, last_signed_in\) VALUES \(\$1, \$2, \$3\) ON CONFLICT \(open_id\) DO UPDATE SET name = EXCLUDED.name, last_signed_in = EXCLUDED.last_signed_in, updated_at = now\(\)`).
		WithArgs("visitor-1", "Visitor", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := UpsertUser(db, "owner-open-id", UserUpsert{
		OpenID: "visitor-1",
		Name:   strPtr("Visitor"),
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertUserExplicitRoleWins(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`INSERT INTO users \(open_id, role, last_signed_in\) VALUES \(\$1, \$2, \$3\) ON CONFLICT \(open_id\) DO UPDATE SET role = EXCLUDED.role, last_signed_in = EXCLUDED.last_signed_in, updated_at = now\(\)`).
		WithArgs("owner-open-id", "user", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := UpsertUser(db, "owner-open-id", UserUpsert{
		OpenID: "owner-open-id",
		Role:   strPtr("user"),
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertUserRequiresOpenID(t *testing.T) {
	db, mock := newMockDB(t)

	err := UpsertUser(db, "", UserUpsert{OpenID: "  "})
	require.Error(t, err)
	svcErr, ok := err.(ServiceError)
	require.True(t, ok)
	assert.Equal(t, 400, svcErr.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserByOpenIDMissing(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT .+ FROM users WHERE open_id = \$1`).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := UserByOpenID(db, "nobody")
	require.NoError(t, err)
	assert.Nil(t, user)
}
