package httpapi

import (
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRoutesRequireToken(t *testing.T) {
	srv, _, _ := newTestServer(t)
	router := srv.Router()

	rec := doJSON(t, router, http.MethodGet, "/api/admin/inquiries", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/admin/inquiries", nil, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRoutesRejectRefreshToken(t *testing.T) {
	srv, _, _ := newTestServer(t)
	router := srv.Router()

	refresh, err := srv.Tokens.CreateRefreshToken("open-1")
	require.NoError(t, err)
	rec := doJSON(t, router, http.MethodGet, "/api/admin/inquiries", nil, "Bearer "+refresh)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRoutesRejectPlainUsers(t *testing.T) {
	srv, _, _ := newTestServer(t)
	router := srv.Router()

	rec := doJSON(t, router, http.MethodGet, "/api/admin/inquiries", nil, bearerFor(t, srv, "user"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminRoutesAllowAdmins(t *testing.T) {
	srv, mock, _ := newTestServer(t)
	router := srv.Router()

	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM inquiries ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "email", "phone", "type", "message", "status", "admin_notes", "created_at", "updated_at",
		}).AddRow(int64(1), "A", "a@example.com", nil, "personal", "hi", "new", nil, now, now))

	rec := doJSON(t, router, http.MethodGet, "/api/admin/inquiries", nil, bearerFor(t, srv, "admin"))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMeEndpoint(t *testing.T) {
	srv, mock, _ := newTestServer(t)
	router := srv.Router()

	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM users WHERE open_id = \$1`).
		WithArgs("open-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "open_id", "name", "email", "login_method", "role", "last_signed_in", "created_at", "updated_at",
		}).AddRow(int64(1), "open-1", "Admin", "admin@example.com", "oauth", "admin", now, now, now))

	rec := doJSON(t, router, http.MethodGet, "/api/auth/me", nil, bearerFor(t, srv, "admin"))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	decodeBody(t, rec, &resp)
	assert.Equal(t, "open-1", resp["openId"])
	assert.Equal(t, "admin", resp["role"])
}

func TestRefreshEndpoint(t *testing.T) {
	srv, mock, _ := newTestServer(t)
	router := srv.Router()

	refresh, err := srv.Tokens.CreateRefreshToken("open-1")
	require.NoError(t, err)

	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM users WHERE open_id = \$1`).
		WithArgs("open-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "open_id", "name", "email", "login_method", "role", "last_signed_in", "created_at", "updated_at",
		}).AddRow(int64(1), "open-1", "Admin", "admin@example.com", "oauth", "admin", now, now, now))

	rec := doJSON(t, router, http.MethodPost, "/api/auth/refresh", map[string]string{
		"refreshToken": refresh,
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp TokenResponse
	decodeBody(t, rec, &resp)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	require.NotNil(t, resp.User)
	assert.Equal(t, "open-1", resp.User.OpenID)
}

func TestRefreshEndpointRejectsAccessToken(t *testing.T) {
	srv, _, _ := newTestServer(t)
	router := srv.Router()

	access, _, err := srv.Tokens.CreateAccessToken("open-1", "a@example.com", "admin")
	require.NoError(t, err)
	rec := doJSON(t, router, http.MethodPost, "/api/auth/refresh", map[string]string{
		"refreshToken": access,
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginURLUnconfigured(t *testing.T) {
	srv, _, _ := newTestServer(t)
	router := srv.Router()

	rec := doJSON(t, router, http.MethodGet, "/api/auth/login", nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
