package httpapi

import (
	"net/http"

	"aicoach-backend-go/internal/models"
	"aicoach-backend-go/internal/services"

	"github.com/gorilla/websocket"
)

type DashboardHistoryResponse struct {
	Items []models.StatusSample `json:"items"`
}

func (s *Server) DashboardHistory(w http.ResponseWriter, r *http.Request) {
	limit := parseInt(r.URL.Query().Get("limit"), 120)
	if limit > 500 {
		limit = 500
	}
	items, err := services.LatestStatusSamples(s.DB, limit)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, DashboardHistoryResponse{Items: items})
}

// DashboardSocket streams status samples to the admin dashboard. The
// token rides the query string because browsers cannot set headers on
// websocket upgrades.
func (s *Server) DashboardSocket(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("token")
	if query == "" {
		WriteError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}
	token, claims, err := s.Tokens.ParseToken(query)
	if err != nil || !token.Valid || claims["typ"] != "access" {
		WriteError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}
	if role, _ := claims["role"].(string); role != "admin" {
		WriteError(w, http.StatusForbidden, "Not allowed")
		return
	}
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.StatsHub.Add(conn)
	defer func() {
		s.StatsHub.Remove(conn)
		_ = conn.Close()
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
