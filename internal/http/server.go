package httpapi

import (
	"net/http"
	"time"

	"aicoach-backend-go/internal/config"
	"aicoach-backend-go/internal/notify"
	"aicoach-backend-go/internal/services"
	"aicoach-backend-go/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	DB       *sqlx.DB
	Config   config.Config
	Tokens   services.TokenService
	OAuth    *services.OAuthClient
	Store    storage.Store
	Notifier notify.Notifier
	StatsHub *services.StatsHub
}

func NewServer(db *sqlx.DB, cfg config.Config, store storage.Store, hub *services.StatsHub) *Server {
	tokens := services.TokenService{
		Secret:     []byte(cfg.JWTSecret),
		Issuer:     cfg.JWTIssuer,
		AccessTTL:  time.Duration(cfg.AccessTTLSeconds) * time.Second,
		RefreshTTL: time.Duration(cfg.RefreshTTLSeconds) * time.Second,
	}
	oauth := services.NewOAuthClient(
		cfg.OAuthClientID, cfg.OAuthClientSecret,
		cfg.OAuthAuthURL, cfg.OAuthTokenURL, cfg.OAuthUserInfoURL, cfg.OAuthRedirectURL,
	)
	return &Server{
		DB:       db,
		Config:   cfg,
		Tokens:   tokens,
		OAuth:    oauth,
		Store:    store,
		Notifier: notify.NewWebhook(cfg.NotifyWebhookURL),
		StatsHub: hub,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	if len(s.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.Config.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Route("/api", func(api chi.Router) {
		api.Route("/auth", func(auth chi.Router) {
			auth.Get("/login", s.LoginURL)
			auth.Get("/callback", s.LoginCallback)
			auth.Post("/refresh", s.Refresh)
			auth.Post("/logout", s.Logout)
			auth.With(WithAuth(s.Tokens)).Get("/me", s.Me)
		})

		api.Route("/public", func(pub chi.Router) {
			pub.Get("/instructors", s.PublicInstructors)
			pub.Get("/instructors/{id}", s.PublicInstructorDetail)
			pub.Get("/proposals", s.PublicProposals)
			pub.Get("/proposals/{type}", s.PublicProposalByType)
			pub.Get("/content/sections", s.PublicSections)
			pub.Get("/content/sections/{type}", s.PublicSectionByType)
			pub.Get("/content/items", s.PublicItems)
			pub.Get("/aitrend", s.PublicAiTrend)
			pub.Post("/inquiries", s.CreateInquiry)
			pub.Post("/activity", s.RecordActivity)
		})

		api.Route("/admin", func(admin chi.Router) {
			admin.Use(WithAuth(s.Tokens))
			admin.Use(RequireRole("admin"))
			admin.Put("/instructor", s.SaveInstructor)
			admin.Post("/instructor/photo", s.UploadInstructorPhoto)
			admin.Post("/proposals", s.UploadProposal)
			admin.Get("/inquiries", s.ListInquiries)
			admin.Get("/inquiries/{id}", s.InquiryDetail)
			admin.Put("/inquiries/{id}/status", s.UpdateInquiryStatus)
			admin.Get("/activity", s.ListActivity)
			admin.Get("/activity/stats", s.ActivityStats)
			admin.Put("/content/sections/{type}", s.UpdateSection)
			admin.Put("/content/items", s.SaveContentItem)
			admin.Put("/aitrend", s.UpdateAiTrend)
			admin.Get("/dashboard/history", s.DashboardHistory)
		})
	})

	r.Get("/ws/dashboard", s.DashboardSocket)
	r.Get("/media/*", s.MediaContent)
	return r
}
