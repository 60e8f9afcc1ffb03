package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/Pickem_Go/internal/contest"
	"github.com/osse101/Pickem_Go/internal/database"
	"github.com/osse101/Pickem_Go/internal/handler"
	"github.com/osse101/Pickem_Go/internal/logger"
	"github.com/osse101/Pickem_Go/internal/metrics"
)

// Options carries the non-dependency settings the router needs
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	ServiceName    string
	Version        string
	BasePoints     int
}

type Server struct {
	httpServer     *http.Server
	dbPool         database.Pool
	contestService contest.Service
}

// NewServer creates a new Server instance
func NewServer(opts Options, dbPool database.Pool, contestService contest.Service) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, dbPool, contestService),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		dbPool:         dbPool,
		contestService: contestService,
	}
}

// NewRouter builds the full middleware stack and route table
func NewRouter(opts Options, dbPool database.Pool, contestService contest.Service) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(requestIDMiddleware)
	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion(opts.ServiceName, opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/odds", func(r chi.Router) {
			r.Get("/convert", handler.HandleConvertOdds())
			r.Get("/validate", handler.HandleValidateOdds())
			r.Get("/suggest", handler.HandleSuggestOdds())
			r.Get("/describe", handler.HandleDescribeOdds())
		})

		r.Route("/match-points", func(r chi.Router) {
			r.Post("/ratio", handler.HandleRatioPoints())
			r.Post("/american", handler.HandleAmericanPoints(opts.BasePoints))
		})

		r.Route("/pick6", func(r chi.Router) {
			r.Post("/score", handler.HandleScoreSelection())
			r.Get("/potential", handler.HandlePotentialPoints())
			r.Post("/validate-entry", handler.HandleValidateEntry())
		})

		contestHandler := handler.NewContestHandler(contestService)
		r.Route("/events", func(r chi.Router) {
			r.Post("/", contestHandler.HandleCreateEvent)
			r.Get("/", contestHandler.HandleListEvents)

			r.Route("/{eventID}", func(r chi.Router) {
				r.Get("/", contestHandler.HandleGetEvent)
				r.Post("/status", contestHandler.HandleSetEventStatus)
				r.Post("/picks", contestHandler.HandleSubmitPicks)
				r.Get("/potential", contestHandler.HandleEventPotential)
				r.Get("/entries/{userID}/potential", contestHandler.HandleEntryPotential)
				r.Get("/leaderboard", contestHandler.HandleLeaderboard)
			})
		})

		r.Post("/matches/{matchID}/result", contestHandler.HandleRecordResult)
	})

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

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// requestIDMiddleware tags the request context and response with an ID,
// keeping one supplied by the caller. It runs first so every later log line carries it.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(logger.WithRequestID(r.Context(), requestID)))
	})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromContext(r.Context())
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
