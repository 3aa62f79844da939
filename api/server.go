// Package api provides the HTTP JSON API server for stockinfo.
//
// It exposes the market-data queries (quote, history, dividends, splits,
// financials, analysts, headlines) and the effective configuration.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/seenimoa/stockinfo/internal/config"
	"github.com/seenimoa/stockinfo/internal/provider"
	"github.com/seenimoa/stockinfo/pkg/models"
)

// MarketData is the query surface served by the API.
// *marketdata.Client satisfies it.
type MarketData interface {
	Ping(ctx context.Context) error
	Quote(ctx context.Context, symbol string) (*models.QuoteSnapshot, error)
	Analysts(ctx context.Context, symbol string) (*models.AnalystSummary, error)
	History(ctx context.Context, symbol string, period models.Period, interval models.Interval) (*models.PriceSeries, error)
	Dividends(ctx context.Context, symbol string) (*models.EventSeries, error)
	Splits(ctx context.Context, symbol string) (*models.EventSeries, error)
	Financials(ctx context.Context, symbol string) (*models.FinancialStatementSet, error)
	Headlines(ctx context.Context, symbol string, limit int) ([]models.Headline, error)
}

// Server is the HTTP API server.
type Server struct {
	router  chi.Router
	cfg     *config.Config
	data    MarketData
	logger  zerolog.Logger
	version string
}

// NewServer creates a configured API server with all routes and middleware.
func NewServer(cfg *config.Config, data MarketData, logger zerolog.Logger, version string) *Server {
	srv := &Server{
		cfg:     cfg,
		data:    data,
		logger:  logger,
		version: version,
	}
	srv.router = srv.buildRouter()
	return srv
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.cfg.API.Host, strconv.Itoa(s.cfg.API.Port))
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpSrv := &http.Server{
		Addr:         s.Addr(),
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", httpSrv.Addr).Msg("API server listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	s.logger.Info().Msg("shutting down API server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

// buildRouter configures all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(hlog.NewHandler(s.logger))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Str("request_id", middleware.GetReqID(r.Context())).
			Int("status_code", status).
			Int("size", size).
			Dur("response_time", duration).
			Msg("")
	}))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))

	// CORS
	origins := []string{"*"}
	if len(s.cfg.API.CORSOrigins) > 0 {
		origins = s.cfg.API.CORSOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Get("/quote/{symbol}", s.handleQuote)
		r.Get("/history/{symbol}", s.handleHistory)
		r.Get("/dividends/{symbol}", s.handleDividends)
		r.Get("/splits/{symbol}", s.handleSplits)
		r.Get("/financials/{symbol}", s.handleFinancials)
		r.Get("/analysts/{symbol}", s.handleAnalysts)
		r.Get("/news/{symbol}", s.handleNews)

		r.Get("/config", s.handleGetConfig)
	})

	return r
}

// ============================================================
// Response types
// ============================================================

// APIResponse is the standard JSON envelope.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// HealthInfo is returned by the health endpoints.
type HealthInfo struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Upstream string `json:"upstream"`
}

// ConfigResponse is the JSON envelope returned by GET /api/v1/config.
type ConfigResponse struct {
	Settings []config.SettingStatus `json:"settings"`
}

// ============================================================
// Handlers
// ============================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	info := HealthInfo{Status: "ok", Version: s.version, Upstream: "ok"}
	if err := s.data.Ping(r.Context()); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("upstream ping failed")
		info.Status = "degraded"
		info.Upstream = err.Error()
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: info})
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, func(ctx context.Context, symbol string) (any, error) {
		return s.data.Quote(ctx, symbol)
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		period = s.cfg.History.Period
	}
	interval := r.URL.Query().Get("interval")
	if interval == "" {
		interval = s.cfg.History.Interval
	}
	s.respond(w, r, func(ctx context.Context, symbol string) (any, error) {
		return s.data.History(ctx, symbol, models.Period(period), models.Interval(interval))
	})
}

func (s *Server) handleDividends(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, func(ctx context.Context, symbol string) (any, error) {
		return s.data.Dividends(ctx, symbol)
	})
}

func (s *Server) handleSplits(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, func(ctx context.Context, symbol string) (any, error) {
		return s.data.Splits(ctx, symbol)
	})
}

func (s *Server) handleFinancials(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, func(ctx context.Context, symbol string) (any, error) {
		return s.data.Financials(ctx, symbol)
	})
}

func (s *Server) handleAnalysts(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, func(ctx context.Context, symbol string) (any, error) {
		return s.data.Analysts(ctx, symbol)
	})
}

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	limit := s.cfg.Report.NewsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}
	s.respond(w, r, func(ctx context.Context, symbol string) (any, error) {
		return s.data.Headlines(ctx, symbol, limit)
	})
}

// handleGetConfig returns the effective settings and where each came from.
func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    ConfigResponse{Settings: config.CheckSettings(s.cfg)},
	})
}

// respond runs fetch for the {symbol} URL parameter and writes the result
// or the mapped error.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, fetch func(ctx context.Context, symbol string) (any, error)) {
	symbol := chi.URLParam(r, "symbol")
	if symbol == "" {
		writeError(w, http.StatusBadRequest, "symbol is required")
		return
	}

	data, err := fetch(r.Context(), symbol)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			hlog.FromRequest(r).Error().Err(err).Str("symbol", symbol).Msg("request failed")
		}
		writeError(w, status, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: data})
}

// statusFor maps a market-data error to an HTTP status.
func statusFor(err error) int {
	var invalid *provider.InvalidParamError
	switch {
	case provider.IsNotFound(err):
		return http.StatusNotFound
	case errors.As(err, &invalid):
		return http.StatusBadRequest
	case errors.Is(err, provider.ErrNotSupported):
		return http.StatusNotImplemented
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case provider.IsUpstream(err):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to write JSON response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, APIResponse{
		Success: false,
		Error:   msg,
	})
}
