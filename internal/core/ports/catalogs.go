// internal/core/ports/catalogs.go
package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/avdeev/autodealer-be/internal/core/domain"
)

// PartCatalog is the narrow read port into the externally-owned part table.
// The core reads identity and purchase price only.
type PartCatalog interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Part, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// VehicleCatalog is the port into the externally-owned vehicle table. The
// completed-campaign set is the only slice of the record the core mutates,
// and every mutation is a single conditional update against the stored
// value, not a fetch-mutate-write cycle.
//
// AddCompletedCampaign returns (nil, nil) both when the vehicle is missing
// and when the campaign is already in the set; callers treat the combined
// outcome as "nothing to do". The other mutations return (nil, nil) only for
// a missing vehicle.
type VehicleCatalog interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error)
	FindByVIN(ctx context.Context, vin string) (*domain.Vehicle, error)
	AddCompletedCampaign(ctx context.Context, vehicleID, campaignID uuid.UUID) (*domain.Vehicle, error)
	RemoveCompletedCampaign(ctx context.Context, vehicleID, campaignID uuid.UUID) (*domain.Vehicle, error)
	ClearCompletedCampaigns(ctx context.Context, vehicleID uuid.UUID) (*domain.Vehicle, error)
	FindByCompletedCampaign(ctx context.Context, campaignID uuid.UUID) ([]domain.Vehicle, error)
}

// CampaignCatalog is the narrow read port into the externally-owned
// service-campaign table.
type CampaignCatalog interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.ServiceCampaign, error)
	ListActive(ctx context.Context) ([]domain.ServiceCampaign, error)
	ListActiveByBrandModel(ctx context.Context, brandID, modelID uuid.UUID) ([]domain.ServiceCampaign, error)
}
