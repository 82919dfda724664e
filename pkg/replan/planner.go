// Package replan offers a one-call planning API for embedding the pipeline
// in other Go programs without wiring repositories and services by hand.
package replan

import (
	"context"
	"fmt"

	"github.com/nvohra/replan/pkg/application/dto"
	"github.com/nvohra/replan/pkg/application/services/orchestration"
	"github.com/nvohra/replan/pkg/domain/entities"
	"github.com/nvohra/replan/pkg/infrastructure/events"
	"github.com/nvohra/replan/pkg/infrastructure/repositories/memory"
)

// Request describes one planning run over caller-supplied sales records
type Request struct {
	SKUID           string
	SiteID          string
	HistoryWindow   int
	ForecastHorizon int
	LeadTimeMean    float64
	LeadTimeStd     float64
	TargetCSL       float64
	NetAvailable    float64
}

// Plan runs the forecast, policy, and replenishment stages over the given
// sales history. It keeps everything in memory and discards the audit trail;
// callers that need the event stream should wire the orchestrator directly.
func Plan(ctx context.Context, records []*entities.SalesRecord, request Request) (*dto.PipelineResult, error) {
	salesRepo := memory.NewSalesRepository()
	if err := salesRepo.LoadSales(records); err != nil {
		return nil, fmt.Errorf("failed to load sales history: %w", err)
	}

	orchestrator := orchestration.NewPipelineOrchestrator(salesRepo, events.NewInMemoryStore())

	return orchestrator.RunPipeline(ctx, orchestration.PipelineRequest{
		SKUID:           entities.SKUID(request.SKUID),
		SiteID:          entities.SiteID(request.SiteID),
		HistoryWindow:   request.HistoryWindow,
		ForecastHorizon: request.ForecastHorizon,
		LeadTimeMean:    request.LeadTimeMean,
		LeadTimeStd:     request.LeadTimeStd,
		TargetCSL:       request.TargetCSL,
		NetAvailable:    request.NetAvailable,
	})
}
