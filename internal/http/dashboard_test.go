package httpapi

import (
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSocketRequiresAdminToken(t *testing.T) {
	srv, _, _ := newTestServer(t)
	router := srv.Router()

	rec := doJSON(t, router, http.MethodGet, "/ws/dashboard", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	access, _, err := srv.Tokens.CreateAccessToken("open-1", "u@example.com", "user")
	require.NoError(t, err)
	rec = doJSON(t, router, http.MethodGet, "/ws/dashboard?token="+access, nil, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	refresh, err := srv.Tokens.CreateRefreshToken("open-1")
	require.NoError(t, err)
	rec = doJSON(t, router, http.MethodGet, "/ws/dashboard?token="+refresh, nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDashboardHistoryEndpoint(t *testing.T) {
	srv, mock, _ := newTestServer(t)
	router := srv.Router()
	auth := bearerFor(t, srv, "admin")

	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM status_samples ORDER BY captured_at DESC LIMIT \$1`).
		WithArgs(500).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "captured_at", "visits_today", "unique_ips_today", "inquiries_new",
			"process_rss_bytes", "system_memory_total_bytes", "system_memory_used_bytes",
			"process_cpu_load", "system_cpu_load",
		}).AddRow(int64(1), now, int64(10), int64(3), int64(1), int64(0), int64(0), int64(0), 0.1, 0.2))

	rec := doJSON(t, router, http.MethodGet, "/api/admin/dashboard/history?limit=9999", nil, auth)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp DashboardHistoryResponse
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(10), resp.Items[0].VisitsToday)
	require.NoError(t, mock.ExpectationsWereMet())
}
