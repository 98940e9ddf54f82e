// internal/core/services/eligibility.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/avdeev/autodealer-be/internal/core/domain"
	"github.com/avdeev/autodealer-be/internal/core/ports"
)

// EligibilityService computes which service campaigns remain outstanding for
// a vehicle. It is a pure filter and sort over catalog data; it holds no
// state and caches nothing between calls.
type EligibilityService struct {
	vehicles  ports.VehicleCatalog
	campaigns ports.CampaignCatalog
	logger    *slog.Logger
}

// Statically assert that *EligibilityService implements the port.
var _ ports.EligibilityService = (*EligibilityService)(nil)

// NewEligibilityService creates a new eligibility service
func NewEligibilityService(vehicles ports.VehicleCatalog, campaigns ports.CampaignCatalog, logger *slog.Logger) *EligibilityService {
	return &EligibilityService{
		vehicles:  vehicles,
		campaigns: campaigns,
		logger:    logger.With(slog.String("service", "eligibility")),
	}
}

// PendingForVehicle lists the outstanding campaigns for a vehicle id.
// A missing vehicle yields an empty list, not an error.
func (s *EligibilityService) PendingForVehicle(ctx context.Context, vehicleID uuid.UUID) ([]domain.ServiceCampaign, error) {
	vehicle, err := s.vehicles.FindByID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load vehicle: %w", err)
	}
	return s.pendingFor(ctx, vehicle)
}

// PendingForVIN lists the outstanding campaigns for a VIN.
// An unknown VIN yields an empty list, not an error.
func (s *EligibilityService) PendingForVIN(ctx context.Context, vin string) ([]domain.ServiceCampaign, error) {
	vehicle, err := s.vehicles.FindByVIN(ctx, vin)
	if err != nil {
		return nil, fmt.Errorf("failed to load vehicle: %w", err)
	}
	return s.pendingFor(ctx, vehicle)
}

func (s *EligibilityService) pendingFor(ctx context.Context, vehicle *domain.Vehicle) ([]domain.ServiceCampaign, error) {
	if vehicle == nil {
		return []domain.ServiceCampaign{}, nil
	}

	candidates, err := s.campaigns.ListActiveByBrandModel(ctx, vehicle.BrandID, vehicle.ModelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active campaigns: %w", err)
	}

	pending := make([]domain.ServiceCampaign, 0, len(candidates))
	for _, c := range candidates {
		if c.AppliesTo(vehicle) {
			pending = append(pending, c)
		}
	}

	// Mandatory campaigns first, newest first within each group
	sort.SliceStable(pending, func(i, j int) bool {
		if pending[i].IsMandatory != pending[j].IsMandatory {
			return pending[i].IsMandatory
		}
		return pending[i].CreatedAt.After(pending[j].CreatedAt)
	})

	s.logger.DebugContext(ctx, "resolved pending campaigns",
		slog.String("vehicle_id", vehicle.ID.String()),
		slog.String("vin", vehicle.VIN),
		slog.Int("candidates", len(candidates)),
		slog.Int("pending", len(pending)))

	return pending, nil
}
