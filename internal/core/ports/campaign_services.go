// internal/core/ports/campaign_services.go
package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/avdeev/autodealer-be/internal/core/domain"
)

// EligibilityService resolves which campaigns remain outstanding for a
// vehicle. It is a pure query: safe to call repeatedly and concurrently.
type EligibilityService interface {
	PendingForVehicle(ctx context.Context, vehicleID uuid.UUID) ([]domain.ServiceCampaign, error)
	PendingForVIN(ctx context.Context, vin string) ([]domain.ServiceCampaign, error)
}

// CompletionService maintains a vehicle's completed-campaign set.
type CompletionService interface {
	MarkCompleted(ctx context.Context, vehicleID, campaignID uuid.UUID) (*domain.Vehicle, error)
	UnmarkCompleted(ctx context.Context, vehicleID, campaignID uuid.UUID) (*domain.Vehicle, error)
	ClearCompleted(ctx context.Context, vehicleID uuid.UUID) (*domain.Vehicle, error)
	VehiclesByCompletedCampaign(ctx context.Context, campaignID uuid.UUID) ([]domain.Vehicle, error)
}
