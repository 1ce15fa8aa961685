package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	sloghttp "github.com/samber/slog-http"

	dedupService "github.com/reshetovitsme/tag-relay-bot/internal/modules/dedup/service"
	feedService "github.com/reshetovitsme/tag-relay-bot/internal/modules/feed/service"
	relayService "github.com/reshetovitsme/tag-relay-bot/internal/modules/relay/service"
	"github.com/reshetovitsme/tag-relay-bot/internal/shared/config"
)

// Server exposes the health/status endpoints and the recent-relays feed.
type Server struct {
	cfg          *config.Config
	feedService  *feedService.Service
	dedupService *dedupService.Service
	relayService *relayService.Service
	logger       *slog.Logger
	startedAt    time.Time
}

// New creates a new HTTP server
func New(cfg *config.Config, feedService *feedService.Service, dedupService *dedupService.Service, relayService *relayService.Service) *Server {
	return &Server{
		cfg:          cfg,
		feedService:  feedService,
		dedupService: dedupService,
		relayService: relayService,
		logger:       slog.Default(),
		startedAt:    time.Now(),
	}
}

// SetLogger sets the logger
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Start starts the HTTP server
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /feed", s.handleFeed)
	mux.HandleFunc("GET /status", s.handleStatus)
	mux.HandleFunc("GET /health", s.handleHealth)

	addr := fmt.Sprintf(":%s", s.cfg.HTTPPort)
	s.logger.Info("Status server starting", "addr", addr)

	// Use slog-http middleware with recovery
	handler := sloghttp.Recovery(mux)
	handler = sloghttp.New(s.logger)(handler)

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server.ListenAndServe()
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	baseURL := fmt.Sprintf("%s://%s", getScheme(r), r.Host)

	feed := s.feedService.GenerateFeed(baseURL)
	rss, err := feed.ToRss()
	if err != nil {
		s.logger.Error("Error converting feed to RSS", "error", err)
		http.Error(w, "Failed to generate RSS", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=300") // Cache for 5 minutes
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(rss))
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"source_chats":     s.relayService.SourceCount(),
		"tags":             len(s.cfg.Tags),
		"dedup_cache_size": s.dedupService.Size(),
		"uptime_seconds":   int(time.Since(s.startedAt).Seconds()),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(status); err != nil {
		s.logger.Error("Error encoding status", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
