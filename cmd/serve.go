package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/energyinsights-ai/minai-demo/internal/model"
	"github.com/energyinsights-ai/minai-demo/internal/observability"
	"github.com/energyinsights-ai/minai-demo/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard view and filter setters over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		s, err := initStore(cfg, "serve", observability.NewMetrics())
		if err != nil {
			return err
		}
		defer s.Close()

		_ = loadAll(ctx, s, cfg.Basin.DefaultRadius)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           buildRouter(s),
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			s.Close()
			_ = srv.Shutdown(shutdownCtx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// viewResponse is the body of every endpoint that returns the dashboard.
// Error carries a gateway failure the view has already degraded around.
type viewResponse struct {
	store.View
	Error string `json:"error,omitempty"`
}

func buildRouter(s *store.Store) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/view", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, viewResponse{View: s.Snapshot()})
		})

		r.Post("/radius", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				Radius float64 `json:"radius"`
			}
			if !decodeBody(w, r, &req) {
				return
			}
			if req.Radius <= 0 {
				writeError(w, http.StatusBadRequest, "radius must be > 0")
				return
			}
			err := s.SetRadius(r.Context(), req.Radius)
			if errors.Is(err, store.ErrSuperseded) {
				writeError(w, http.StatusConflict, err.Error())
				return
			}
			writeView(w, s, err)
		})

		r.Post("/operator", func(w http.ResponseWriter, r *http.Request) {
			var sel model.OperatorSelection
			if !decodeBody(w, r, &sel) {
				return
			}
			s.SetSelectedOperator(sel)
			writeView(w, s, nil)
		})

		r.Post("/date", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				Date string `json:"date"`
			}
			if !decodeBody(w, r, &req) {
				return
			}
			if strings.TrimSpace(req.Date) == "" {
				writeError(w, http.StatusBadRequest, "date is required")
				return
			}
			d, err := model.ParseDate(req.Date)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			s.SetCurrentDate(d)
			writeView(w, s, nil)
		})

		r.Post("/trs", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				TRS string `json:"trs"`
			}
			if !decodeBody(w, r, &req) {
				return
			}
			if err := s.SetSelectedTRS(req.TRS); err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeView(w, s, nil)
		})

		r.Get("/events", func(w http.ResponseWriter, r *http.Request) {
			streamEvents(w, r, s)
		})
	})

	return r
}

// streamEvents relays store change notifications as server-sent events
// until the client goes away or the store is closed.
func streamEvents(w http.ResponseWriter, r *http.Request, s *store.Store) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	events, cancel := s.Subscribe()
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, ": subscribed\n\n")
	flusher.Flush()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-events:
			if !ok {
				return
			}
			b, _ := json.Marshal(e)
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", e.Kind, b)
			flusher.Flush()
		}
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func writeView(w http.ResponseWriter, s *store.Store, err error) {
	resp := viewResponse{View: s.Snapshot()}
	if err != nil {
		resp.Error = err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Debug("write response", zap.Error(err))
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		zap.L().Debug("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
