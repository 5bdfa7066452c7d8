package httpapi

import (
	"encoding/json"
	"net/http"

	"aicoach-backend-go/internal/services"
)

func (s *Server) PublicAiTrend(w http.ResponseWriter, r *http.Request) {
	item, err := services.AiTrend(s.DB)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	// A missing row is not an error for the public page; it renders
	// nothing for the block.
	WriteJSON(w, http.StatusOK, item)
}

func (s *Server) UpdateAiTrend(w http.ResponseWriter, r *http.Request) {
	var req services.AiTrendInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if _, err := services.SaveAiTrend(s.DB, req); err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
