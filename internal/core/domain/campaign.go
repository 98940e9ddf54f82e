// internal/core/domain/campaign.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CampaignStatus represents the lifecycle state of a service campaign
type CampaignStatus string

// Status constants. The storage representation is the lowercase word.
const (
	CampaignActive    CampaignStatus = "active"
	CampaignCompleted CampaignStatus = "completed"
	CampaignCancelled CampaignStatus = "cancelled"
)

// ParseCampaignStatus maps the storage representation to a CampaignStatus.
// Unknown values are rejected rather than defaulted.
func ParseCampaignStatus(s string) (CampaignStatus, error) {
	switch CampaignStatus(s) {
	case CampaignActive, CampaignCompleted, CampaignCancelled:
		return CampaignStatus(s), nil
	default:
		return "", fmt.Errorf("unknown campaign status %q", s)
	}
}

// ServiceCampaign represents a recall-like service action owed by vehicles
// of a given brand and model. An empty TargetVINs set targets every VIN of
// the matching brand/model; a non-empty set restricts to its members.
type ServiceCampaign struct {
	ID            uuid.UUID      `json:"id"`
	Article       string         `json:"article"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	BrandID       uuid.UUID      `json:"brand_id"`
	CarModelID    uuid.UUID      `json:"car_model_id"`
	TargetVINs    []string       `json:"target_vins"`
	RequiredParts []uuid.UUID    `json:"required_parts"`
	RequiredWorks []uuid.UUID    `json:"required_works"`
	IsMandatory   bool           `json:"is_mandatory"`
	IsCompleted   bool           `json:"is_completed"`
	Status        CampaignStatus `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// Validate performs domain validation on the campaign
func (c *ServiceCampaign) Validate() error {
	if c.Article == "" {
		return fmt.Errorf("%w: article is required", ErrValidation)
	}
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if c.BrandID == uuid.Nil {
		return fmt.Errorf("%w: brand_id is required", ErrValidation)
	}
	if c.CarModelID == uuid.Nil {
		return fmt.Errorf("%w: car_model_id is required", ErrValidation)
	}
	if _, err := ParseCampaignStatus(string(c.Status)); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err)
	}
	return nil
}

// TargetsVIN reports whether the campaign's VIN targeting covers vin.
// An empty target set is a wildcard.
func (c *ServiceCampaign) TargetsVIN(vin string) bool {
	if len(c.TargetVINs) == 0 {
		return true
	}
	for _, t := range c.TargetVINs {
		if t == vin {
			return true
		}
	}
	return false
}

// AppliesTo reports whether the campaign is outstanding for the vehicle:
// active status, matching brand and model, covered VIN, and not yet in the
// vehicle's completed set. IsCompleted is a campaign-global display flag and
// deliberately has no effect here.
func (c *ServiceCampaign) AppliesTo(v *Vehicle) bool {
	if c.Status != CampaignActive {
		return false
	}
	if c.BrandID != v.BrandID || c.CarModelID != v.ModelID {
		return false
	}
	if !c.TargetsVIN(v.VIN) {
		return false
	}
	return !v.HasCompleted(c.ID)
}
