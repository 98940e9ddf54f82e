// internal/core/domain/vehicle.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle is the slice of the vehicle catalog record the core reads. Only
// the completed-campaign set is mutated here; everything else belongs to the
// catalog.
type Vehicle struct {
	ID      uuid.UUID `json:"id"`
	VIN     string    `json:"vin"`
	BrandID uuid.UUID `json:"brand_id"`
	ModelID uuid.UUID `json:"model_id"`

	// CompletedCampaigns is semantically a set: no duplicates, order not
	// meaningful. The storage layer enforces the no-duplicates invariant.
	CompletedCampaigns []uuid.UUID `json:"completed_service_campaigns"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasCompleted reports whether campaignID is in the vehicle's completed set
func (v *Vehicle) HasCompleted(campaignID uuid.UUID) bool {
	for _, id := range v.CompletedCampaigns {
		if id == campaignID {
			return true
		}
	}
	return false
}
