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

type UploadProposalRequest struct {
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	FileBase64  string  `json:"fileBase64"`
	FileName    string  `json:"fileName"`
}

type ProposalUploadResponse struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
	Key string `json:"key"`
}

func (s *Server) PublicProposals(w http.ResponseWriter, r *http.Request) {
	items, err := services.AllProposals(s.DB)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, items)
}

func (s *Server) PublicProposalByType(w http.ResponseWriter, r *http.Request) {
	proposalType := chi.URLParam(r, "type")
	if !services.ValidProposalType(proposalType) {
		WriteError(w, http.StatusBadRequest, "Invalid proposal type")
		return
	}
	item, err := services.ProposalByType(s.DB, proposalType)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	if item == nil {
		WriteError(w, http.StatusNotFound, "Proposal not found")
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

// UploadProposal stores the PDF and then upserts the row for its type:
// a second upload of the same type replaces the existing document
// instead of creating a duplicate.
func (s *Server) UploadProposal(w http.ResponseWriter, r *http.Request) {
	var req UploadProposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if !services.ValidProposalType(req.Type) {
		WriteError(w, http.StatusBadRequest, "Invalid proposal type")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		WriteError(w, http.StatusBadRequest, "Title is required")
		return
	}
	data, err := base64.StdEncoding.DecodeString(req.FileBase64)
	if err != nil || len(data) == 0 {
		WriteError(w, http.StatusBadRequest, "Invalid file payload")
		return
	}
	if int64(len(data)) > s.Config.MaxUploadBytes {
		WriteError(w, http.StatusBadRequest, "File too large")
		return
	}
	key := "proposals/" + req.Type + "-" + uuid.NewString() + ".pdf"
	url, err := s.Store.Put(key, data, "application/pdf")
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	existing, err := services.ProposalByType(s.DB, req.Type)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	input := services.ProposalInput{
		Type:     &req.Type,
		Title:    &req.Title,
		FileURL:  &url,
		FileKey:  &key,
		FileName: &req.FileName,
	}
	description := ""
	if req.Description != nil {
		description = *req.Description
	}
	input.Description = &description
	size := int64(len(data))
	input.FileSize = &size
	if existing != nil {
		input.ID = &existing.ID
	}
	id, err := services.SaveProposal(s.DB, input)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, ProposalUploadResponse{ID: id, URL: url, Key: key})
}
