package httpapi

import (
	"net/http"

	"aicoach-backend-go/internal/storage"

	"github.com/go-chi/chi/v5"
)

// MediaContent serves uploads back when the local-disk storage backend
// is in use; with S3 the stored URLs point at the bucket directly.
func (s *Server) MediaContent(w http.ResponseWriter, r *http.Request) {
	local, ok := s.Store.(*storage.LocalStore)
	if !ok {
		WriteError(w, http.StatusNotFound, "Not found")
		return
	}
	key := chi.URLParam(r, "*")
	if key == "" {
		WriteError(w, http.StatusNotFound, "Not found")
		return
	}
	path, err := local.Open(key)
	if err != nil {
		WriteError(w, http.StatusNotFound, "Not found")
		return
	}
	http.ServeFile(w, r, path)
}
