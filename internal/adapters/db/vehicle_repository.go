// internal/adapters/db/vehicle_repository.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/avdeev/autodealer-be/internal/core/domain"
	"github.com/avdeev/autodealer-be/internal/core/ports"
)

// vehicleRepository implements ports.VehicleCatalog
type vehicleRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewVehicleRepository creates a new vehicle catalog repository
func NewVehicleRepository(db *Database, logger *slog.Logger) ports.VehicleCatalog {
	return &vehicleRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "vehicles")),
	}
}

const vehicleColumns = `id, vin, brand_id, model_id, completed_service_campaigns,
	created_at, updated_at`

// FindByID retrieves a vehicle by id
func (r *vehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`

	vehicle, err := scanVehicle(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find vehicle: %w", err)
	}
	return vehicle, nil
}

// FindByVIN retrieves a vehicle by its VIN
func (r *vehicleRepository) FindByVIN(ctx context.Context, vin string) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE vin = $1`

	vehicle, err := scanVehicle(r.db.QueryRow(ctx, query, vin))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find vehicle by vin: %w", err)
	}
	return vehicle, nil
}

// AddCompletedCampaign appends campaignID to the vehicle's completed set in a
// single conditional update. The NOT ... = ANY guard keeps the column a set:
// a second mark for the same campaign matches no row instead of appending a
// duplicate. Returns (nil, nil) when no row matched.
func (r *vehicleRepository) AddCompletedCampaign(ctx context.Context, vehicleID, campaignID uuid.UUID) (*domain.Vehicle, error) {
	query := `
		UPDATE vehicles
		SET completed_service_campaigns = array_append(completed_service_campaigns, $1),
			updated_at = $2
		WHERE id = $3 AND NOT $1 = ANY(completed_service_campaigns)
		RETURNING ` + vehicleColumns

	vehicle, err := scanVehicle(r.db.QueryRow(ctx, query, campaignID, time.Now(), vehicleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to add completed campaign: %w", err)
	}

	r.logger.DebugContext(ctx, "completed campaign added",
		slog.String("vehicle_id", vehicleID.String()),
		slog.String("campaign_id", campaignID.String()))

	return vehicle, nil
}

// RemoveCompletedCampaign removes campaignID from the vehicle's completed
// set. array_remove on an absent member leaves the array unchanged, so the
// update is unconditional and a no-op removal still returns the vehicle.
func (r *vehicleRepository) RemoveCompletedCampaign(ctx context.Context, vehicleID, campaignID uuid.UUID) (*domain.Vehicle, error) {
	query := `
		UPDATE vehicles
		SET completed_service_campaigns = array_remove(completed_service_campaigns, $1),
			updated_at = $2
		WHERE id = $3
		RETURNING ` + vehicleColumns

	vehicle, err := scanVehicle(r.db.QueryRow(ctx, query, campaignID, time.Now(), vehicleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to remove completed campaign: %w", err)
	}
	return vehicle, nil
}

// ClearCompletedCampaigns resets the vehicle's completed set to empty
func (r *vehicleRepository) ClearCompletedCampaigns(ctx context.Context, vehicleID uuid.UUID) (*domain.Vehicle, error) {
	query := `
		UPDATE vehicles
		SET completed_service_campaigns = '{}',
			updated_at = $1
		WHERE id = $2
		RETURNING ` + vehicleColumns

	vehicle, err := scanVehicle(r.db.QueryRow(ctx, query, time.Now(), vehicleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to clear completed campaigns: %w", err)
	}

	r.logger.InfoContext(ctx, "completed campaigns cleared",
		slog.String("vehicle_id", vehicleID.String()))

	return vehicle, nil
}

// FindByCompletedCampaign lists vehicles whose completed set contains
// campaignID, newest vehicle first
func (r *vehicleRepository) FindByCompletedCampaign(ctx context.Context, campaignID uuid.UUID) ([]domain.Vehicle, error) {
	query := `
		SELECT ` + vehicleColumns + `
		FROM vehicles
		WHERE $1 = ANY(completed_service_campaigns)
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicles by campaign: %w", err)
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		vehicle, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, *vehicle)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return vehicles, nil
}

func scanVehicle(row pgx.Row) (*domain.Vehicle, error) {
	vehicle := &domain.Vehicle{}
	err := row.Scan(
		&vehicle.ID, &vehicle.VIN, &vehicle.BrandID, &vehicle.ModelID,
		&vehicle.CompletedCampaigns, &vehicle.CreatedAt, &vehicle.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if vehicle.CompletedCampaigns == nil {
		vehicle.CompletedCampaigns = []uuid.UUID{}
	}
	return vehicle, nil
}
