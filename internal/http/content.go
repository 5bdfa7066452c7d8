package httpapi

import (
	"encoding/json"
	"net/http"

	"aicoach-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
)

type UpdateSectionRequest struct {
	TitleKo       string  `json:"titleKo"`
	TitleZh       string  `json:"titleZh"`
	TitleEn       string  `json:"titleEn"`
	DescriptionKo string  `json:"descriptionKo"`
	DescriptionZh string  `json:"descriptionZh"`
	DescriptionEn string  `json:"descriptionEn"`
	DisplayOrder  *int    `json:"displayOrder"`
	IsActive      *string `json:"isActive"`
}

func (s *Server) PublicSections(w http.ResponseWriter, r *http.Request) {
	items, err := services.AllSections(s.DB)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, items)
}

func (s *Server) PublicSectionByType(w http.ResponseWriter, r *http.Request) {
	sectionType := chi.URLParam(r, "type")
	if !services.ValidSectionType(sectionType) {
		WriteError(w, http.StatusBadRequest, "Invalid section type")
		return
	}
	item, err := services.SectionByType(s.DB, sectionType)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	if item == nil {
		WriteError(w, http.StatusNotFound, "Section not found")
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

func (s *Server) PublicItems(w http.ResponseWriter, r *http.Request) {
	sectionID, ok := parseID(r.URL.Query().Get("sectionId"))
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid sectionId")
		return
	}
	items, err := services.ItemsBySection(s.DB, sectionID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, items)
}

func (s *Server) UpdateSection(w http.ResponseWriter, r *http.Request) {
	sectionType := chi.URLParam(r, "type")
	var req UpdateSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	err := services.SaveSection(s.DB, services.SectionInput{
		SectionType:   sectionType,
		TitleKo:       req.TitleKo,
		TitleZh:       req.TitleZh,
		TitleEn:       req.TitleEn,
		DescriptionKo: req.DescriptionKo,
		DescriptionZh: req.DescriptionZh,
		DescriptionEn: req.DescriptionEn,
		DisplayOrder:  req.DisplayOrder,
		IsActive:      req.IsActive,
	})
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

func (s *Server) SaveContentItem(w http.ResponseWriter, r *http.Request) {
	var req services.ItemInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	id, err := services.SaveItem(s.DB, req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, SaveIDResponse{ID: id})
}
