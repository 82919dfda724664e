package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nvohra/replan/pkg/application/services/forecast"
	"github.com/nvohra/replan/pkg/application/services/orchestration"
	"github.com/nvohra/replan/pkg/application/services/policy"
	"github.com/nvohra/replan/pkg/application/services/replenishment"
	"github.com/nvohra/replan/pkg/domain/repositories"
	"github.com/nvohra/replan/pkg/infrastructure/events"
)

// Server exposes the planning pipeline over HTTP. All business validation
// happens here at the boundary; the core services only ever see valid
// inputs.
type Server struct {
	logger       *log.Logger
	salesRepo    repositories.SalesHistoryRepository
	estimator    *forecast.Estimator
	calculator   *policy.Calculator
	planner      *replenishment.Planner
	orchestrator *orchestration.PipelineOrchestrator
	eventStore   events.Store
}

// NewServer creates a server around the given sales history source
func NewServer(logger *log.Logger, salesRepo repositories.SalesHistoryRepository, eventStore events.Store) *Server {
	return &Server{
		logger:       logger,
		salesRepo:    salesRepo,
		estimator:    forecast.NewEstimator(),
		calculator:   policy.NewCalculator(),
		planner:      replenishment.NewPlanner(),
		orchestrator: orchestration.NewPipelineOrchestrator(salesRepo, eventStore),
		eventStore:   eventStore,
	}
}

// Routes returns the HTTP handler with all endpoints registered
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", instrumentedHandler("health", s.handleHealth))
	mux.HandleFunc("/healthz", instrumentedHandler("health", s.handleHealth))
	mux.HandleFunc("/forecast", instrumentedHandler("forecast", s.handleForecast))
	mux.HandleFunc("/policy/compute", instrumentedHandler("policy", s.handlePolicy))
	mux.HandleFunc("/replenish", instrumentedHandler("replenish", s.handleReplenish))
	mux.HandleFunc("/pipeline/run", instrumentedHandler("pipeline", s.handlePipelineRun))
	mux.HandleFunc("/runs", instrumentedHandler("runs", s.handleRuns))
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Printf("Failed to encode response: %v", err)
	}
}

// errorBody is the {"detail": ...} JSON error shape used by all endpoints
type errorBody struct {
	Detail string `json:"detail"`
}

func (s *Server) respondError(w http.ResponseWriter, status int, err error) {
	s.respondJSON(w, status, errorBody{Detail: err.Error()})
}
