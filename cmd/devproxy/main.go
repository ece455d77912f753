// Command devproxy is the local development reverse proxy. It forwards
// /api/* to the configured backend origin with the /api prefix
// stripped, so the client can run against a relative base URL.
package main

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/fruitmall/fruitmall-client/internal/config"
	"github.com/fruitmall/fruitmall-client/internal/logger"
)

const shutdownHeaderTimeout = 10 * time.Second

func main() {
	log := logger.New("devproxy")

	cfg, err := config.Load("app.env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	origin, err := url.Parse(cfg.BackendOrigin)
	if err != nil {
		log.Fatal().Str("origin", cfg.BackendOrigin).Err(err).Msg("invalid backend origin")
	}

	proxy := httputil.NewSingleHostReverseProxy(origin)
	director := proxy.Director
	proxy.Director = func(req *http.Request) {
		director(req)
		req.URL.Path = strings.TrimPrefix(req.URL.Path, "/api")
		if req.URL.Path == "" {
			req.URL.Path = "/"
		}
	}
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		log.Warn().Str("path", r.URL.Path).Err(err).Msg("backend unreachable")
		http.Error(w, "backend unreachable", http.StatusBadGateway)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))
	r.Handle("/api/*", proxy)

	server := &http.Server{
		Addr:              cfg.ProxyListenAddr,
		Handler:           r,
		ReadHeaderTimeout: shutdownHeaderTimeout,
	}

	log.Info().
		Str("listen", cfg.ProxyListenAddr).
		Str("origin", cfg.BackendOrigin).
		Msg("dev proxy listening")
	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("dev proxy stopped")
	}
}

// requestLogger logs one line per proxied request
func requestLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("elapsed", time.Since(start)).
				Msg("proxied")
		})
	}
}
