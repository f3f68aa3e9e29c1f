package server

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/willobee/FarmPatch_Go/internal/economy"
	"github.com/willobee/FarmPatch_Go/internal/farm"
	"github.com/willobee/FarmPatch_Go/internal/handler"
	"github.com/willobee/FarmPatch_Go/internal/land"
	"github.com/willobee/FarmPatch_Go/internal/logger"
	"github.com/willobee/FarmPatch_Go/internal/metrics"
	"github.com/willobee/FarmPatch_Go/internal/user"
)

// Services bundles the domain services the router depends on
type Services struct {
	User    user.Service
	Farm    farm.Service
	Economy economy.Service
	Land    land.Service
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance with the full route table mounted
func NewServer(port string, adminAPIKey string, trustedProxies []string, db handler.Pinger, svcs Services) *Server {
	r := NewRouter(adminAPIKey, trustedProxies, db, svcs)

	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + port,
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// NewRouter builds the chi router. Split out from NewServer so tests can mount
// the exact production route table against httptest.
func NewRouter(adminAPIKey string, trustedProxies []string, db handler.Pinger, svcs Services) chi.Router {
	r := chi.NewRouter()

	// Middleware stack, outermost first
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health and build info (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(db))
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint for Prometheus scraping
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", handler.HandleRegister(svcs.User))
			r.Post("/login", handler.HandleLogin(svcs.User))
		})

		r.Route("/player", func(r chi.Router) {
			r.Get("/state", handler.HandleGetState(svcs.User))
			r.Get("/inventory", handler.HandleGetInventory(svcs.User))
		})

		r.Route("/farm", func(r chi.Router) {
			r.Post("/plant", handler.HandlePlant(svcs.Farm))
			r.Post("/harvest", handler.HandleHarvest(svcs.Farm))
			r.Post("/harvest-all", handler.HandleHarvestAll(svcs.Farm))
		})

		r.Route("/market", func(r chi.Router) {
			r.Post("/buy", handler.HandleBuyItem(svcs.Economy))
			r.Post("/sell", handler.HandleSellItem(svcs.Economy))
			r.Get("/prices", handler.HandleGetPrices(svcs.Economy))
		})

		r.Route("/land", func(r chi.Router) {
			r.Post("/upgrade", handler.HandleUpgradeLand(svcs.Land))
			r.Get("/quote", handler.HandleGetLandQuote(svcs.Land))
		})

		// Operator routes behind the API key
		r.Route("/admin", func(r chi.Router) {
			r.Use(AdminAuthMiddleware(adminAPIKey, trustedProxies, detector))
			r.Get("/players", handler.HandleListPlayers(svcs.User))
			r.Post("/gold", handler.HandleSetGold(svcs.User))
			r.Delete("/player", handler.HandleDeletePlayer(svcs.User))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Health checks and metrics scrapes would swamp the log
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info("Request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, "Authorization") {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug("Request headers", "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info("Server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
