// internal/adapters/db/campaign_repository.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/avdeev/autodealer-be/internal/core/domain"
	"github.com/avdeev/autodealer-be/internal/core/ports"
)

// campaignRepository implements ports.CampaignCatalog
type campaignRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewCampaignRepository creates a new campaign catalog repository
func NewCampaignRepository(db *Database, logger *slog.Logger) ports.CampaignCatalog {
	return &campaignRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "campaigns")),
	}
}

const campaignColumns = `id, article, name, description, brand_id, car_model_id,
	target_vins, required_parts, required_works, is_mandatory, is_completed,
	status, created_at, updated_at`

// FindByID retrieves a campaign by id
func (r *campaignRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.ServiceCampaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM service_campaigns WHERE id = $1`

	campaign, err := scanCampaign(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find campaign: %w", err)
	}
	return campaign, nil
}

// ListActive retrieves all campaigns in active status, newest first
func (r *campaignRepository) ListActive(ctx context.Context) ([]domain.ServiceCampaign, error) {
	query := `
		SELECT ` + campaignColumns + `
		FROM service_campaigns
		WHERE status = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, string(domain.CampaignActive))
	if err != nil {
		return nil, fmt.Errorf("failed to query active campaigns: %w", err)
	}
	defer rows.Close()

	return collectCampaigns(rows)
}

// ListActiveByBrandModel retrieves active campaigns targeting the given
// brand and model, newest first
func (r *campaignRepository) ListActiveByBrandModel(ctx context.Context, brandID, modelID uuid.UUID) ([]domain.ServiceCampaign, error) {
	query := `
		SELECT ` + campaignColumns + `
		FROM service_campaigns
		WHERE status = $1 AND brand_id = $2 AND car_model_id = $3
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, string(domain.CampaignActive), brandID, modelID)
	if err != nil {
		return nil, fmt.Errorf("failed to query campaigns by brand/model: %w", err)
	}
	defer rows.Close()

	return collectCampaigns(rows)
}

func collectCampaigns(rows pgx.Rows) ([]domain.ServiceCampaign, error) {
	var campaigns []domain.ServiceCampaign
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, *campaign)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return campaigns, nil
}

// scanCampaign maps a row to the domain type. An unknown status value in
// storage is surfaced as an error; rows are never silently coerced to a
// known status.
func scanCampaign(row pgx.Row) (*domain.ServiceCampaign, error) {
	campaign := &domain.ServiceCampaign{}
	var description sql.NullString
	var status string

	err := row.Scan(
		&campaign.ID, &campaign.Article, &campaign.Name, &description,
		&campaign.BrandID, &campaign.CarModelID,
		&campaign.TargetVINs, &campaign.RequiredParts, &campaign.RequiredWorks,
		&campaign.IsMandatory, &campaign.IsCompleted,
		&status, &campaign.CreatedAt, &campaign.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	parsed, err := domain.ParseCampaignStatus(status)
	if err != nil {
		return nil, fmt.Errorf("campaign %s: %w", campaign.ID, err)
	}
	campaign.Status = parsed

	campaign.Description = description.String
	if campaign.TargetVINs == nil {
		campaign.TargetVINs = []string{}
	}
	if campaign.RequiredParts == nil {
		campaign.RequiredParts = []uuid.UUID{}
	}
	if campaign.RequiredWorks == nil {
		campaign.RequiredWorks = []uuid.UUID{}
	}
	return campaign, nil
}
