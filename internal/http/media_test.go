package httpapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaServesLocalUploads(t *testing.T) {
	srv, _, _ := newTestServer(t)
	router := srv.Router()

	url, err := srv.Store.Put("proposals/personal-1.pdf", []byte("%PDF-1.4"), "application/pdf")
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodGet, url, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "%PDF-1.4", rec.Body.String())
}

func TestMediaRejectsTraversal(t *testing.T) {
	srv, _, _ := newTestServer(t)
	router := srv.Router()

	rec := doJSON(t, router, http.MethodGet, "/media/..%2f..%2fetc%2fpasswd", nil, "")
	assert.NotEqual(t, http.StatusOK, rec.Code)
}

func TestMediaMissingFile(t *testing.T) {
	srv, _, _ := newTestServer(t)
	router := srv.Router()

	rec := doJSON(t, router, http.MethodGet, "/media/instructors/missing.png", nil, "")
	// LocalStore resolves the path; ServeFile answers 404 for a file
	// that does not exist.
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
