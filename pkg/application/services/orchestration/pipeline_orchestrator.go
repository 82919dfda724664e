package orchestration

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nvohra/replan/pkg/application/dto"
	"github.com/nvohra/replan/pkg/application/services/forecast"
	"github.com/nvohra/replan/pkg/application/services/policy"
	"github.com/nvohra/replan/pkg/application/services/replenishment"
	"github.com/nvohra/replan/pkg/domain/entities"
	"github.com/nvohra/replan/pkg/domain/repositories"
	"github.com/nvohra/replan/pkg/infrastructure/events"
)

// PipelineRequest describes a single forecast -> policy -> replenishment run
type PipelineRequest struct {
	SKUID           entities.SKUID
	SiteID          entities.SiteID
	HistoryWindow   int
	ForecastHorizon int
	LeadTimeMean    float64
	LeadTimeStd     float64
	TargetCSL       float64
	NetAvailable    float64
}

// Validate checks the boundary constraints before the core stages run
func (r PipelineRequest) Validate() error {
	if r.SKUID == "" {
		return fmt.Errorf("sku_id cannot be empty")
	}
	if r.SiteID == "" {
		return fmt.Errorf("site_id cannot be empty")
	}
	if r.HistoryWindow < 1 {
		return fmt.Errorf("history_window must be at least 1, got %d", r.HistoryWindow)
	}
	if r.ForecastHorizon < 1 {
		return fmt.Errorf("forecast_horizon must be at least 1, got %d", r.ForecastHorizon)
	}
	if r.LeadTimeMean <= 0 {
		return fmt.Errorf("lead_time_mean must be positive, got %g", r.LeadTimeMean)
	}
	if r.LeadTimeStd < 0 {
		return fmt.Errorf("lead_time_std cannot be negative, got %g", r.LeadTimeStd)
	}
	if r.TargetCSL <= 0 || r.TargetCSL >= 1 {
		return fmt.Errorf("target_csl must be in (0, 1), got %g", r.TargetCSL)
	}
	return nil
}

// PipelineOrchestrator composes the three decision stages in strict sequence
// against a sales history source. Each run gets a UUID and emits stage events
// to the event store for audit.
type PipelineOrchestrator struct {
	estimator  *forecast.Estimator
	calculator *policy.Calculator
	planner    *replenishment.Planner
	salesRepo  repositories.SalesHistoryRepository
	eventStore events.Store
}

// NewPipelineOrchestrator creates an orchestrator with default stage services
func NewPipelineOrchestrator(salesRepo repositories.SalesHistoryRepository, eventStore events.Store) *PipelineOrchestrator {
	return &PipelineOrchestrator{
		estimator:  forecast.NewEstimator(),
		calculator: policy.NewCalculator(),
		planner:    replenishment.NewPlanner(),
		salesRepo:  salesRepo,
		eventStore: eventStore,
	}
}

// RunPipeline executes the full decision pipeline for one SKU/site. Zeroed
// window sizes fall back to the planning defaults (28-day window, 14-day
// horizon). The stages share no state; data passes only through their
// documented contracts.
func (o *PipelineOrchestrator) RunPipeline(ctx context.Context, request PipelineRequest) (*dto.PipelineResult, error) {
	if request.HistoryWindow == 0 {
		request.HistoryWindow = forecast.DefaultHistoryWindow
	}
	if request.ForecastHorizon == 0 {
		request.ForecastHorizon = forecast.DefaultForecastHorizon
	}
	if err := request.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pipeline request: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()

	// Stage 1: demand forecast
	history, err := o.salesRepo.GetSalesHistory(request.SKUID, request.SiteID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales history: %w", err)
	}

	points, stats := o.estimator.Estimate(history, request.SKUID, request.SiteID,
		request.HistoryWindow, request.ForecastHorizon)
	o.emit(events.NewForecastCompletedEvent(runID, request.SKUID, request.SiteID, stats, request.ForecastHorizon))

	// Stage 2: inventory policy
	leadTime := entities.LeadTime{MeanDays: request.LeadTimeMean, StdDays: request.LeadTimeStd}
	inventoryPolicy := o.calculator.Compute(stats, leadTime, request.TargetCSL)
	o.emit(events.NewPolicyComputedEvent(runID, request.SKUID, request.SiteID, request.TargetCSL, inventoryPolicy))

	// Stage 3: replenishment decision
	position := entities.InventoryPosition{
		NetAvailable: request.NetAvailable,
		ReorderPoint: inventoryPolicy.ReorderPoint,
		BaseStock:    inventoryPolicy.BaseStock,
	}
	order := o.planner.Decide(position)
	order.SKUID = request.SKUID
	order.SiteID = request.SiteID
	o.emit(events.NewReplenishmentDecidedEvent(runID, request.SKUID, request.SiteID, order))

	return &dto.PipelineResult{
		RunID:        runID,
		PlanningDate: time.Now().UTC(),
		Forecast: dto.ForecastResult{
			SKUID:            request.SKUID,
			SiteID:           request.SiteID,
			MeanDemandPerDay: stats.MeanPerDay,
			StdDemandPerDay:  stats.StdPerDay,
			Predictions:      points,
		},
		Policy: dto.NewPolicyResult(inventoryPolicy),
		Replenishment: dto.ReplenishmentResult{
			OrderQuantity: order.Quantity,
			Triggered:     order.Triggered,
		},
	}, nil
}

func (o *PipelineOrchestrator) emit(event events.Event) {
	if o.eventStore == nil {
		return
	}
	if err := o.eventStore.Append(event.RunID, event); err != nil {
		// Audit events are best effort; a failing store must not block planning
		fmt.Printf("Warning: failed to append %s event: %v\n", event.EventType, err)
	}
}
