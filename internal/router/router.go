package router

import (
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/elishalema/portfolio-service/internal/account/repo"
	"github.com/elishalema/portfolio-service/internal/auth"
	"github.com/elishalema/portfolio-service/internal/message"
	messagerepo "github.com/elishalema/portfolio-service/internal/message/repo"
	"github.com/elishalema/portfolio-service/internal/profile"
	profilerepo "github.com/elishalema/portfolio-service/internal/profile/repo"
	"github.com/elishalema/portfolio-service/internal/skill"
	skillrepo "github.com/elishalema/portfolio-service/internal/skill/repo"
	"github.com/elishalema/portfolio-service/internal/stats"
	statsrepo "github.com/elishalema/portfolio-service/internal/stats/repo"
	"github.com/elishalema/portfolio-service/internal/work"
	workrepo "github.com/elishalema/portfolio-service/internal/work/repo"
	"github.com/elishalema/portfolio-service/pkg/utilities"
)

// loggingResponseWriter wraps http.ResponseWriter to capture status and size.
type loggingResponseWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.status = code
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Write(b []byte) (int, error) {
	if lrw.status == 0 {
		lrw.status = http.StatusOK
	}
	n, err := lrw.ResponseWriter.Write(b)
	lrw.size += n
	return n, err
}

// LoggingMiddleware returns a middleware that logs requests at debug level
// using the provided sugared logger. Each request gets a snowflake id echoed
// in the X-Request-Id header.
func LoggingMiddleware(logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqID := utilities.NewRequestID()
			w.Header().Set("X-Request-Id", reqID)
			lrw := &loggingResponseWriter{ResponseWriter: w}
			next.ServeHTTP(lrw, r)
			dur := time.Since(start)
			status := lrw.status
			if status == 0 {
				status = http.StatusOK
			}
			logger.Debugw("http request",
				"request_id", reqID,
				"method", r.Method,
				"path", r.URL.Path,
				"remote", r.RemoteAddr,
				"status", status,
				"duration_ms", float64(dur.Microseconds())/1000.0,
				"size", lrw.size,
			)
		})
	}
}

// CORSMiddleware mirrors the wide-open policy the public site relies on:
// any origin may call the API, preflights are answered here.
func CORSMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SecurityHeadersMiddleware returns a middleware that sets common HTTP security headers.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Prevent MIME sniffing
			w.Header().Set("X-Content-Type-Options", "nosniff")

			// Clickjacking protection
			w.Header().Set("X-Frame-Options", "DENY")

			// Referrer policy
			w.Header().Set("Referrer-Policy", "no-referrer-when-downgrade")

			// HSTS - only set if request is over TLS.
			if r.TLS != nil {
				// 30 days by default
				w.Header().Set("Strict-Transport-Security", "max-age=2592000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RegisterRoutes mounts HTTP handlers using the standard library's http.ServeMux.
// Mutating routes on works, skills and the profile sit behind the bearer gate;
// everything else is public.
func RegisterRoutes(logger *zap.SugaredLogger, db *sqlx.DB, jwtSecret []byte) http.Handler {
	mux := http.NewServeMux()

	accounts := repo.NewAccountRepo(db)
	works := workrepo.NewWorkRepo(db)
	skills := skillrepo.NewSkillRepo(db)
	profiles := profilerepo.NewProfileRepo(db)
	messages := messagerepo.NewMessageRepo(db)
	siteStats := statsrepo.NewStatsRepo(db)

	authSvc := auth.NewService(accounts, nil, jwtSecret)
	authHandler := auth.NewHandler(authSvc, logger)
	workHandler := work.NewHandler(work.NewService(works), logger)
	skillHandler := skill.NewHandler(skill.NewService(skills), logger)
	profileHandler := profile.NewHandler(profiles, logger)
	messageHandler := message.NewHandler(messages, logger)
	statsHandler := stats.NewHandler(stats.NewService(siteStats, works, messages), logger)

	guard := auth.Middleware(authSvc)

	// health
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// auth
	mux.HandleFunc("POST /api/login", authHandler.Login)

	// site interactions
	mux.HandleFunc("POST /api/visit", statsHandler.Visit)
	mux.HandleFunc("POST /api/contact", messageHandler.Submit)
	mux.HandleFunc("GET /api/stats", statsHandler.Dashboard)

	// works
	mux.HandleFunc("GET /api/works", workHandler.List)
	mux.Handle("POST /api/works", guard(http.HandlerFunc(workHandler.Create)))
	mux.Handle("PUT /api/works/{id}", guard(http.HandlerFunc(workHandler.Update)))
	mux.Handle("DELETE /api/works/{id}", guard(http.HandlerFunc(workHandler.Delete)))
	mux.HandleFunc("POST /api/works/{id}/view", workHandler.TrackView)

	// skills
	mux.HandleFunc("GET /api/skills", skillHandler.List)
	mux.Handle("POST /api/skills", guard(http.HandlerFunc(skillHandler.Create)))
	mux.Handle("PUT /api/skills/{id}", guard(http.HandlerFunc(skillHandler.Update)))
	mux.Handle("DELETE /api/skills/{id}", guard(http.HandlerFunc(skillHandler.Delete)))

	// profile
	mux.HandleFunc("GET /api/profile", profileHandler.Get)
	mux.Handle("PUT /api/profile", guard(http.HandlerFunc(profileHandler.Update)))

	// wrap with security headers, then CORS, then request logging
	handler := LoggingMiddleware(logger)(CORSMiddleware()(SecurityHeadersMiddleware()(mux)))
	return handler
}
