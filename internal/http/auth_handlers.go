package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"aicoach-backend-go/internal/models"
	"aicoach-backend-go/internal/services"

	"github.com/google/uuid"
)

const stateCookie = "oauth_state"

type LoginURLResponse struct {
	URL string `json:"url"`
}

type TokenResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	ExpiresAt    int64        `json:"expiresAt"`
	User         *models.User `json:"user"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// LoginURL hands the client the IdP authorize URL together with a
// state nonce pinned in a short-lived cookie.
func (s *Server) LoginURL(w http.ResponseWriter, r *http.Request) {
	if !s.OAuth.Enabled() {
		WriteError(w, http.StatusServiceUnavailable, "Login is not configured")
		return
	}
	state := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   600,
		SameSite: http.SameSiteLaxMode,
	})
	WriteJSON(w, http.StatusOK, LoginURLResponse{URL: s.OAuth.AuthCodeURL(state)})
}

func (s *Server) LoginCallback(w http.ResponseWriter, r *http.Request) {
	if !s.OAuth.Enabled() {
		WriteError(w, http.StatusServiceUnavailable, "Login is not configured")
		return
	}
	state := r.URL.Query().Get("state")
	cookie, err := r.Cookie(stateCookie)
	if state == "" || err != nil || cookie.Value != state {
		WriteError(w, http.StatusBadRequest, "Invalid login state")
		return
	}
	code := r.URL.Query().Get("code")
	if code == "" {
		WriteError(w, http.StatusBadRequest, "Missing authorization code")
		return
	}
	identity, err := s.OAuth.FetchIdentity(r.Context(), code)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	err = services.UpsertUser(s.DB, s.Config.OwnerOpenID, services.UserUpsert{
		OpenID:      identity.OpenID,
		Name:        nullIfEmpty(identity.Name),
		Email:       nullIfEmpty(identity.Email),
		LoginMethod: &identity.LoginMethod,
	})
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	s.issueTokens(w, identity.OpenID)
}

func (s *Server) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	token, claims, err := s.Tokens.ParseToken(req.RefreshToken)
	if err != nil || !token.Valid || claims["typ"] != "refresh" {
		WriteError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}
	openID, _ := claims["sub"].(string)
	if openID == "" {
		WriteError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}
	s.issueTokens(w, openID)
}

func (s *Server) issueTokens(w http.ResponseWriter, openID string) {
	user, err := services.UserByOpenID(s.DB, openID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	if user == nil {
		WriteError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}
	pair, err := s.Tokens.IssuePair(user.OpenID, ptrToString(user.Email), user.Role)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.ExpiresAt,
		User:         user,
	})
}

func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	user, err := services.UserByOpenID(s.DB, CurrentOpenID(r))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	if user == nil {
		WriteError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}
	WriteJSON(w, http.StatusOK, user)
}

// Logout is stateless on the server; the client discards its tokens.
// The state cookie is expired for good measure.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
	WriteJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
