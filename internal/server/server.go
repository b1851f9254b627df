package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/careersphere/career-advisor/internal/advisor"
	"github.com/careersphere/career-advisor/internal/llm"
	"github.com/careersphere/career-advisor/internal/matching"
	"github.com/careersphere/career-advisor/internal/scoring"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	advisor    *advisor.Advisor
	llmClient  llm.Client
	logger     *zap.Logger
	hasLLM     bool
}

// Config holds server configuration
type Config struct {
	Port    int
	APIKey  string
	Timeout time.Duration
	Logger  *zap.Logger

	// Optional model overrides; empty strings keep the defaults.
	Model          string
	LiteModel      string
	EmbeddingModel string
}

// New creates a new server instance. A missing API key is not an error:
// the server starts with the set-overlap matcher, neutral sentiment, and
// the static fallback generator.
func New(ctx context.Context, cfg Config) (*Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{logger: logger}

	var (
		embedder  matching.Embedder
		sentiment scoring.SentimentAnalyzer
		generator advisor.Generator
	)

	if cfg.APIKey != "" {
		llmCfg := llm.DefaultConfig()
		if cfg.Model != "" {
			llmCfg = llmCfg.WithModel(llm.TierStandard, cfg.Model)
		}
		if cfg.LiteModel != "" {
			llmCfg = llmCfg.WithModel(llm.TierLite, cfg.LiteModel)
		}
		if cfg.EmbeddingModel != "" {
			llmCfg.EmbeddingModel = cfg.EmbeddingModel
		}
		client, err := llm.NewClient(ctx, llmCfg, cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		s.llmClient = client
		s.hasLLM = true
		embedder = client
		sentiment = llm.NewSentiment(client)
		generator = advisor.NewLLMGenerator(client)
	} else {
		logger.Warn("no API key configured, running with fallback capabilities only")
	}

	s.advisor = advisor.New(advisor.Options{
		Generator: generator,
		Matcher:   matching.New(embedder, logger),
		Sentiment: sentiment,
		Logger:    logger,
		Timeout:   cfg.Timeout,
	})

	mux := http.NewServeMux()
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("POST /extracttext", s.handleExtractText)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.llmClient != nil {
		if err := s.llmClient.Close(); err != nil {
			s.logger.Warn("failed to close LLM client", zap.Error(err))
		}
	}

	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request handled",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("error encoding JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
