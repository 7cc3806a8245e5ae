// Package api HTTP интерфейс движка прогнозов.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"agro-forecast/clock"
	"agro-forecast/engine"
	"agro-forecast/metrics"
	"agro-forecast/providers"
)

const requestIDHeader = "X-Request-ID"

type ctxKey struct{}

type Server struct {
	engine   *engine.Engine
	provider providers.Provider
	clock    clock.Clock
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewServer provider нужен только для /api/health и может быть nil
func NewServer(e *engine.Engine, p providers.Provider, c clock.Clock, m *metrics.Metrics, logger *slog.Logger) *Server {
	if c == nil {
		c = clock.System{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{engine: e, provider: p, clock: c, metrics: m, logger: logger}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(requestID)

	r.Handle("/api/weather", s.metrics.WrapHandler("weather", http.HandlerFunc(s.getWeather))).Methods("GET")
	r.Handle("/api/crops", s.metrics.WrapHandler("crops", http.HandlerFunc(s.getCrops))).Methods("GET")
	r.Handle("/api/prices", s.metrics.WrapHandler("prices", http.HandlerFunc(s.getPrices))).Methods("GET")
	r.Handle("/api/advice", s.metrics.WrapHandler("advice", http.HandlerFunc(s.getAdvice))).Methods("GET")
	r.Handle("/api/advice/publish", s.metrics.WrapHandler("advice_publish", http.HandlerFunc(s.publishAdvice))).Methods("POST")
	r.HandleFunc("/api/health", s.health).Methods("GET")
	r.Handle("/metrics", s.metrics.Handler()).Methods("GET")

	return r
}

// Handler роутер с CORS, восстановлением после паники и журналом доступа
func (s *Server) Handler() http.Handler {
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", requestIDHeader}),
	)
	recovered := handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))
	return handlers.LoggingHandler(os.Stdout, recovered(cors(s.Router())))
}

// requestID сохраняет входящий X-Request-ID или выдает новый
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
