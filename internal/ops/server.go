package ops

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/acproject/password-manager/internal/engine"
)

// Server — диагностический HTTP-сервер плагина: health, метрики и
// локальный командный эндпоинт. Наружу не выставляется, периметр —
// оператор на той же машине.
type Server struct {
	router *chi.Mux
	logger *zap.Logger

	commands *engine.CommandRouter
	agent    StatusSource
	registry *prometheus.Registry
}

// StatusSource — то, что сервер показывает в /health.
type StatusSource interface {
	IsRunning() bool
	PluginID() string
}

type commandPayload struct {
	Command string            `json:"command"`
	Params  map[string]string `json:"params"`
}

func NewServer(commands *engine.CommandRouter, agent StatusSource, registry *prometheus.Registry, logger *zap.Logger) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		logger:   logger.Named("ops-api"),
		commands: commands,
		agent:    agent,
		registry: registry,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Post("/v1/commands", s.handleCommand)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	status := "running"
	code := http.StatusOK
	if !s.agent.IsRunning() {
		status = "stopped"
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, map[string]string{
		"status":    status,
		"plugin_id": s.agent.PluginID(),
	})
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	var payload commandPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	if payload.Command == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "command is required"})
		return
	}

	result := s.commands.Execute(r.Context(), payload.Command, payload.Params)
	code := http.StatusOK
	if !result.Success {
		code = http.StatusUnprocessableEntity
	}
	writeJSON(w, code, result)
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// ServeHTTP позволяет использовать Server как стандартный http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
