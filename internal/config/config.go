package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	DatabaseURL       string
	JWTSecret         string
	JWTIssuer         string
	AccessTTLSeconds  int64
	RefreshTTLSeconds int64

	// OwnerOpenID marks the site operator: a login with this external
	// identity is promoted to the admin role.
	OwnerOpenID string

	OAuthClientID     string
	OAuthClientSecret string
	OAuthAuthURL      string
	OAuthTokenURL     string
	OAuthUserInfoURL  string
	OAuthRedirectURL  string

	S3Bucket         string
	S3Region         string
	S3Endpoint       string
	S3PublicBaseURL  string
	MediaStoragePath string
	MaxUploadBytes   int64

	NotifyWebhookURL string

	StatsSampleSeconds    int
	ActivityRetentionDays int
	CorsOrigins           []string
}

func Load() Config {
	return Config{
		DatabaseURL:       mustEnv("DATABASE_URL"),
		JWTSecret:         mustEnv("JWT_SECRET"),
		JWTIssuer:         envOr("JWT_ISSUER", "aicoach"),
		AccessTTLSeconds:  int64(envOrInt("ACCESS_TTL_SECONDS", 14400)),
		RefreshTTLSeconds: int64(envOrInt("REFRESH_TTL_SECONDS", 1209600)),

		OwnerOpenID: envOr("OWNER_OPEN_ID", ""),

		OAuthClientID:     envOr("OAUTH_CLIENT_ID", ""),
		OAuthClientSecret: envOr("OAUTH_CLIENT_SECRET", ""),
		OAuthAuthURL:      envOr("OAUTH_AUTH_URL", ""),
		OAuthTokenURL:     envOr("OAUTH_TOKEN_URL", ""),
		OAuthUserInfoURL:  envOr("OAUTH_USERINFO_URL", ""),
		OAuthRedirectURL:  envOr("OAUTH_REDIRECT_URL", ""),

		S3Bucket:         envOr("S3_BUCKET", ""),
		S3Region:         envOr("S3_REGION", "ap-northeast-2"),
		S3Endpoint:       envOr("S3_ENDPOINT", ""),
		S3PublicBaseURL:  envOr("S3_PUBLIC_BASE_URL", ""),
		MediaStoragePath: envOr("MEDIA_STORAGE_PATH", "storage/media"),
		MaxUploadBytes:   int64(envOrInt("MAX_UPLOAD_BYTES", 10<<20)),

		NotifyWebhookURL: envOr("NOTIFY_WEBHOOK_URL", ""),

		StatsSampleSeconds:    envOrInt("STATS_SAMPLE_INTERVAL", 60),
		ActivityRetentionDays: envOrInt("ACTIVITY_RETENTION_DAYS", 0),
		CorsOrigins:           parseCSV(envOr("CORS_ORIGINS", "")),
	}
}

func mustEnv(key string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		panic("missing env var: " + key)
	}
	return value
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		value := strings.TrimSpace(part)
		if value != "" {
			items = append(items, value)
		}
	}
	return items
}
