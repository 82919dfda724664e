package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nvohra/replan/pkg/application/dto"
	"github.com/nvohra/replan/pkg/application/services/forecast"
	"github.com/nvohra/replan/pkg/application/services/orchestration"
	"github.com/nvohra/replan/pkg/domain/entities"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleForecast(w http.ResponseWriter, r *http.Request) {
	var request ForecastRequest
	if !s.decodePost(w, r, &request) {
		return
	}

	if request.HistoryWindow == 0 {
		request.HistoryWindow = forecast.DefaultHistoryWindow
	}
	if request.ForecastHorizon == 0 {
		request.ForecastHorizon = forecast.DefaultForecastHorizon
	}
	if err := request.Validate(); err != nil {
		s.respondError(w, http.StatusUnprocessableEntity, err)
		return
	}

	skuID := entities.SKUID(request.SKUID)
	siteID := entities.SiteID(request.SiteID)

	history, err := s.salesRepo.GetSalesHistory(skuID, siteID)
	if err != nil {
		s.logger.Printf("Failed to load sales history: %v", err)
		s.respondError(w, http.StatusInternalServerError, fmt.Errorf("failed to load sales history"))
		return
	}

	points, stats := s.estimator.Estimate(history, skuID, siteID, request.HistoryWindow, request.ForecastHorizon)

	s.respondJSON(w, http.StatusOK, dto.ForecastResult{
		SKUID:            skuID,
		SiteID:           siteID,
		MeanDemandPerDay: stats.MeanPerDay,
		StdDemandPerDay:  stats.StdPerDay,
		Predictions:      points,
	})
}

func (s *Server) handlePolicy(w http.ResponseWriter, r *http.Request) {
	var request PolicyRequest
	if !s.decodePost(w, r, &request) {
		return
	}
	if err := request.Validate(); err != nil {
		s.respondError(w, http.StatusUnprocessableEntity, err)
		return
	}

	result := s.calculator.Compute(
		entities.DemandStatistics{MeanPerDay: request.MeanDemandPerDay, StdPerDay: request.StdDemandPerDay},
		entities.LeadTime{MeanDays: request.LeadTimeMean, StdDays: request.LeadTimeStd},
		request.TargetCSL,
	)

	s.respondJSON(w, http.StatusOK, dto.NewPolicyResult(result))
}

func (s *Server) handleReplenish(w http.ResponseWriter, r *http.Request) {
	var request ReplenishRequest
	if !s.decodePost(w, r, &request) {
		return
	}
	if err := request.Validate(); err != nil {
		s.respondError(w, http.StatusUnprocessableEntity, err)
		return
	}

	order := s.planner.Decide(entities.InventoryPosition{
		NetAvailable: request.NetAvailable,
		ReorderPoint: request.ReorderPoint,
		BaseStock:    request.BaseStock,
	})

	s.respondJSON(w, http.StatusOK, dto.ReplenishmentResult{
		OrderQuantity: order.Quantity,
		Triggered:     order.Triggered,
	})
}

func (s *Server) handlePipelineRun(w http.ResponseWriter, r *http.Request) {
	var request PipelineRunRequest
	if !s.decodePost(w, r, &request) {
		return
	}

	result, err := s.orchestrator.RunPipeline(r.Context(), orchestration.PipelineRequest{
		SKUID:           entities.SKUID(request.SKUID),
		SiteID:          entities.SiteID(request.SiteID),
		HistoryWindow:   request.HistoryWindow,
		ForecastHorizon: request.ForecastHorizon,
		LeadTimeMean:    request.LeadTimeMean,
		LeadTimeStd:     request.LeadTimeStd,
		TargetCSL:       request.TargetCSL,
		NetAvailable:    request.NetAvailable,
	})
	if err != nil {
		s.respondError(w, http.StatusUnprocessableEntity, err)
		return
	}

	s.respondJSON(w, http.StatusOK, result)
}

// handleRuns returns the audit events of one pipeline run
func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
		return
	}
	if s.eventStore == nil {
		s.respondError(w, http.StatusNotFound, fmt.Errorf("event store not configured"))
		return
	}

	runID := r.URL.Query().Get("run_id")
	if runID == "" {
		s.respondError(w, http.StatusUnprocessableEntity, fmt.Errorf("run_id query parameter is required"))
		return
	}

	runEvents, err := s.eventStore.ReadRun(runID)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, fmt.Errorf("failed to read run events"))
		return
	}

	s.respondJSON(w, http.StatusOK, runEvents)
}

// decodePost enforces the POST method and decodes the JSON body. It writes
// the error response itself and reports whether the caller should proceed.
func (s *Server) decodePost(w http.ResponseWriter, r *http.Request, into interface{}) bool {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
		return false
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(into); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return false
	}
	return true
}
