// internal/core/services/completion.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/avdeev/autodealer-be/internal/core/domain"
	"github.com/avdeev/autodealer-be/internal/core/ports"
)

// CompletionService maintains the per-vehicle completed-campaign set. The
// set mutations themselves happen atomically inside the vehicle catalog's
// store; this service adds campaign existence checks and the error taxonomy.
type CompletionService struct {
	vehicles  ports.VehicleCatalog
	campaigns ports.CampaignCatalog
	logger    *slog.Logger
}

// Statically assert that *CompletionService implements the port.
var _ ports.CompletionService = (*CompletionService)(nil)

// NewCompletionService creates a new completion service
func NewCompletionService(vehicles ports.VehicleCatalog, campaigns ports.CampaignCatalog, logger *slog.Logger) *CompletionService {
	return &CompletionService{
		vehicles:  vehicles,
		campaigns: campaigns,
		logger:    logger.With(slog.String("service", "completion")),
	}
}

// MarkCompleted adds campaignID to the vehicle's completed set if absent.
// A missing vehicle and an already-present campaign both report
// domain.ErrNotFound: callers treat it as "nothing to do".
func (s *CompletionService) MarkCompleted(ctx context.Context, vehicleID, campaignID uuid.UUID) (*domain.Vehicle, error) {
	if err := s.requireCampaign(ctx, campaignID); err != nil {
		return nil, err
	}

	vehicle, err := s.vehicles.AddCompletedCampaign(ctx, vehicleID, campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark campaign completed: %w", err)
	}
	if vehicle == nil {
		return nil, fmt.Errorf("vehicle %s or campaign already completed: %w", vehicleID, domain.ErrNotFound)
	}

	s.logger.InfoContext(ctx, "campaign marked completed",
		slog.String("vehicle_id", vehicleID.String()),
		slog.String("campaign_id", campaignID.String()))

	return vehicle, nil
}

// UnmarkCompleted removes campaignID from the vehicle's completed set.
// Removing an absent member is a no-op that still returns the vehicle; only
// a missing vehicle is an error.
func (s *CompletionService) UnmarkCompleted(ctx context.Context, vehicleID, campaignID uuid.UUID) (*domain.Vehicle, error) {
	vehicle, err := s.vehicles.RemoveCompletedCampaign(ctx, vehicleID, campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to unmark campaign: %w", err)
	}
	if vehicle == nil {
		return nil, fmt.Errorf("vehicle %s: %w", vehicleID, domain.ErrNotFound)
	}

	s.logger.InfoContext(ctx, "campaign unmarked",
		slog.String("vehicle_id", vehicleID.String()),
		slog.String("campaign_id", campaignID.String()))

	return vehicle, nil
}

// ClearCompleted resets the vehicle's completed set to empty
func (s *CompletionService) ClearCompleted(ctx context.Context, vehicleID uuid.UUID) (*domain.Vehicle, error) {
	vehicle, err := s.vehicles.ClearCompletedCampaigns(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to clear completed campaigns: %w", err)
	}
	if vehicle == nil {
		return nil, fmt.Errorf("vehicle %s: %w", vehicleID, domain.ErrNotFound)
	}

	s.logger.InfoContext(ctx, "completed campaigns cleared",
		slog.String("vehicle_id", vehicleID.String()))

	return vehicle, nil
}

// VehiclesByCompletedCampaign lists every vehicle whose completed set
// contains campaignID
func (s *CompletionService) VehiclesByCompletedCampaign(ctx context.Context, campaignID uuid.UUID) ([]domain.Vehicle, error) {
	if err := s.requireCampaign(ctx, campaignID); err != nil {
		return nil, err
	}

	vehicles, err := s.vehicles.FindByCompletedCampaign(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles by campaign: %w", err)
	}
	return vehicles, nil
}

func (s *CompletionService) requireCampaign(ctx context.Context, campaignID uuid.UUID) error {
	campaign, err := s.campaigns.FindByID(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("failed to load campaign: %w", err)
	}
	if campaign == nil {
		return fmt.Errorf("campaign %s: %w", campaignID, domain.ErrNotFound)
	}
	return nil
}
