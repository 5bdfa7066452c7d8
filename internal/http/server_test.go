package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aicoach-backend-go/internal/config"
	"aicoach-backend-go/internal/services"
	"aicoach-backend-go/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

type stubNotifier struct {
	calls chan [2]string
}

func (n *stubNotifier) Notify(title, content string) error {
	n.calls <- [2]string{title, content}
	return nil
}

func newTestServer(t *testing.T) (*Server, sqlmock.Sqlmock, *stubNotifier) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { _ = db.Close() })

	notifier := &stubNotifier{calls: make(chan [2]string, 1)}
	srv := &Server{
		DB: db,
		Config: config.Config{
			MaxUploadBytes: 1 << 20,
		},
		Tokens: services.TokenService{
			Secret:     []byte("test-secret"),
			Issuer:     "aicoach",
			AccessTTL:  time.Hour,
			RefreshTTL: 24 * time.Hour,
		},
		OAuth:    services.NewOAuthClient("", "", "", "", "", ""),
		Store:    storage.NewLocalStore(t.TempDir()),
		Notifier: notifier,
		StatsHub: services.NewStatsHub(),
	}
	return srv, mock, notifier
}

func bearerFor(t *testing.T, srv *Server, role string) string {
	t.Helper()
	access, _, err := srv.Tokens.CreateAccessToken("open-1", "admin@example.com", role)
	require.NoError(t, err)
	return "Bearer " + access
}

func doJSON(t *testing.T, handler http.Handler, method, path string, payload interface{}, auth string) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
