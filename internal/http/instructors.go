package httpapi

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"aicoach-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type SaveIDResponse struct {
	ID int64 `json:"id"`
}

type UploadPhotoRequest struct {
	ID          *int64 `json:"id"`
	PhotoBase64 string `json:"photoBase64"`
	MimeType    string `json:"mimeType"`
}

type UploadResponse struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

func (s *Server) PublicInstructors(w http.ResponseWriter, r *http.Request) {
	items, err := services.AllInstructors(s.DB)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, items)
}

func (s *Server) PublicInstructorDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	item, err := services.InstructorByID(s.DB, id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	if item == nil {
		WriteError(w, http.StatusNotFound, "Instructor not found")
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

// SaveInstructor accepts an optional id: absent means create (name
// required), present means a partial update of the supplied fields.
func (s *Server) SaveInstructor(w http.ResponseWriter, r *http.Request) {
	var req services.InstructorInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	id, err := services.SaveInstructor(s.DB, req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, SaveIDResponse{ID: id})
}

func (s *Server) UploadInstructorPhoto(w http.ResponseWriter, r *http.Request) {
	var req UploadPhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if req.ID == nil {
		WriteError(w, http.StatusBadRequest, "Instructor id is required")
		return
	}
	if !strings.HasPrefix(req.MimeType, "image/") {
		WriteError(w, http.StatusBadRequest, "Only image uploads are allowed")
		return
	}
	data, err := base64.StdEncoding.DecodeString(req.PhotoBase64)
	if err != nil || len(data) == 0 {
		WriteError(w, http.StatusBadRequest, "Invalid photo payload")
		return
	}
	if int64(len(data)) > s.Config.MaxUploadBytes {
		WriteError(w, http.StatusBadRequest, "File too large")
		return
	}
	ext := strings.TrimPrefix(req.MimeType, "image/")
	key := "instructors/photo-" + uuid.NewString() + "." + ext
	url, err := s.Store.Put(key, data, req.MimeType)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	_, err = services.SaveInstructor(s.DB, services.InstructorInput{
		ID:       req.ID,
		PhotoURL: &url,
		PhotoKey: &key,
	})
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, UploadResponse{URL: url, Key: key})
}
