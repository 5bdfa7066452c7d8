package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
)

// ExternalIdentity is what the identity provider's userinfo endpoint
// tells us about the logged-in person.
type ExternalIdentity struct {
	OpenID      string
	Name        string
	Email       string
	LoginMethod string
}

type OAuthClient struct {
	conf        *oauth2.Config
	userInfoURL string
}

func NewOAuthClient(clientID, clientSecret, authURL, tokenURL, userInfoURL, redirectURL string) *OAuthClient {
	return &OAuthClient{
		conf: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  authURL,
				TokenURL: tokenURL,
			},
		},
		userInfoURL: userInfoURL,
	}
}

func (c *OAuthClient) Enabled() bool {
	return c != nil &&
		c.conf.ClientID != "" &&
		c.conf.Endpoint.AuthURL != "" &&
		c.conf.Endpoint.TokenURL != "" &&
		c.userInfoURL != ""
}

func (c *OAuthClient) AuthCodeURL(state string) string {
	return c.conf.AuthCodeURL(state)
}

// FetchIdentity exchanges the callback code and resolves the userinfo
// document. Providers disagree on the id field name, so both openId
// and the OIDC sub are accepted.
func (c *OAuthClient) FetchIdentity(ctx context.Context, code string) (ExternalIdentity, error) {
	token, err := c.conf.Exchange(ctx, code)
	if err != nil {
		return ExternalIdentity{}, WrapError(err, "code exchange failed")
	}
	client := c.conf.Client(ctx, token)
	resp, err := client.Get(c.userInfoURL)
	if err != nil {
		return ExternalIdentity{}, WrapError(err, "userinfo request failed")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return ExternalIdentity{}, fmt.Errorf("userinfo request failed: status %d", resp.StatusCode)
	}
	payload := struct {
		OpenID string `json:"openId"`
		Sub    string `json:"sub"`
		Name   string `json:"name"`
		Email  string `json:"email"`
	}{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ExternalIdentity{}, WrapError(err, "userinfo decode failed")
	}
	openID := payload.OpenID
	if openID == "" {
		openID = payload.Sub
	}
	if strings.TrimSpace(openID) == "" {
		return ExternalIdentity{}, ErrUnauthorized("Identity provider returned no user id")
	}
	return ExternalIdentity{
		OpenID:      openID,
		Name:        payload.Name,
		Email:       payload.Email,
		LoginMethod: "oauth",
	}, nil
}
