package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"aicoach-backend-go/internal/services"
)

type RecordActivityRequest struct {
	PageURL  string  `json:"pageUrl"`
	PagePath string  `json:"pagePath"`
	Referrer *string `json:"referrer"`
	Action   *string `json:"action"`
}

type ActivityListResponse struct {
	Items interface{} `json:"items"`
}

// RecordActivity logs a page view or named action. IP and user agent
// come from the request itself, not the payload.
func (s *Server) RecordActivity(w http.ResponseWriter, r *http.Request) {
	var req RecordActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	ip := trimString(resolveClientIP(r), 100)
	ua := trimString(r.Header.Get("User-Agent"), 512)
	services.RecordActivity(s.DB, services.ActivityInput{
		IPAddress: nullIfEmpty(ip),
		UserAgent: nullIfEmpty(ua),
		PageURL:   nullIfEmpty(trimString(req.PageURL, 500)),
		PagePath:  nullIfEmpty(trimString(req.PagePath, 500)),
		Referrer:  nullIfEmpty(trimString(ptrToString(req.Referrer), 500)),
		Action:    nullIfEmpty(trimString(ptrToString(req.Action), 100)),
	})
	WriteJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

func (s *Server) ListActivity(w http.ResponseWriter, r *http.Request) {
	limit := parseInt(r.URL.Query().Get("limit"), 100)
	if limit > 1000 {
		limit = 1000
	}
	items, err := services.RecentActivity(s.DB, limit)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, ActivityListResponse{Items: items})
}

func (s *Server) ActivityStats(w http.ResponseWriter, r *http.Request) {
	start, ok := parseTimeParam(r.URL.Query().Get("start"), false)
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid start date")
		return
	}
	end, ok := parseTimeParam(r.URL.Query().Get("end"), true)
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid end date")
		return
	}
	stats, err := services.GetActivityStats(s.DB, start, end)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, stats)
}

// parseTimeParam accepts RFC3339 or a bare date; a bare end date is
// widened to the end of that day so the range stays inclusive.
func parseTimeParam(value string, endOfDay bool) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, true
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, false
	}
	if endOfDay {
		parsed = parsed.Add(24*time.Hour - time.Nanosecond)
	}
	return parsed, true
}
