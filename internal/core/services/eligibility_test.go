// internal/core/services/eligibility_test.go
package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/avdeev/autodealer-be/internal/core/domain"
	"github.com/avdeev/autodealer-be/internal/core/services"
	"github.com/avdeev/autodealer-be/test/helpers"
	"github.com/avdeev/autodealer-be/test/mocks"
)

func TestEligibilityService_PendingForVehicle(t *testing.T) {
	vehicle := helpers.CreateTestVehicle()

	tests := []struct {
		name        string
		setupMocks  func(*mocks.MockVehicleCatalog, *mocks.MockCampaignCatalog)
		expectedIDs func() []uuid.UUID
		expectError bool
	}{
		{
			name: "missing_vehicle_yields_empty_list",
			setupMocks: func(vehicles *mocks.MockVehicleCatalog, campaigns *mocks.MockCampaignCatalog) {
				vehicles.EXPECT().
					FindByID(gomock.Any(), vehicle.ID).
					Return(nil, nil)
			},
			expectedIDs: func() []uuid.UUID { return []uuid.UUID{} },
		},
		{
			name: "no_candidates_yields_empty_list",
			setupMocks: func(vehicles *mocks.MockVehicleCatalog, campaigns *mocks.MockCampaignCatalog) {
				vehicles.EXPECT().
					FindByID(gomock.Any(), vehicle.ID).
					Return(vehicle, nil)
				campaigns.EXPECT().
					ListActiveByBrandModel(gomock.Any(), vehicle.BrandID, vehicle.ModelID).
					Return([]domain.ServiceCampaign{}, nil)
			},
			expectedIDs: func() []uuid.UUID { return []uuid.UUID{} },
		},
		{
			name: "vehicle_catalog_error_is_propagated",
			setupMocks: func(vehicles *mocks.MockVehicleCatalog, campaigns *mocks.MockCampaignCatalog) {
				vehicles.EXPECT().
					FindByID(gomock.Any(), vehicle.ID).
					Return(nil, errors.New("connection refused"))
			},
			expectError: true,
		},
		{
			name: "campaign_catalog_error_is_propagated",
			setupMocks: func(vehicles *mocks.MockVehicleCatalog, campaigns *mocks.MockCampaignCatalog) {
				vehicles.EXPECT().
					FindByID(gomock.Any(), vehicle.ID).
					Return(vehicle, nil)
				campaigns.EXPECT().
					ListActiveByBrandModel(gomock.Any(), vehicle.BrandID, vehicle.ModelID).
					Return(nil, errors.New("connection refused"))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockVehicles := mocks.NewMockVehicleCatalog(ctrl)
			mockCampaigns := mocks.NewMockCampaignCatalog(ctrl)
			service := services.NewEligibilityService(mockVehicles, mockCampaigns, helpers.TestLogger())

			tt.setupMocks(mockVehicles, mockCampaigns)

			pending, err := service.PendingForVehicle(context.Background(), vehicle.ID)

			if tt.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, pending, "an empty result must be a non-nil slice")

			ids := make([]uuid.UUID, len(pending))
			for i, c := range pending {
				ids[i] = c.ID
			}
			assert.Equal(t, tt.expectedIDs(), ids)
		})
	}
}

func TestEligibilityService_Filtering(t *testing.T) {
	vehicle := helpers.CreateTestVehicle()
	completed := helpers.CampaignForVehicle(vehicle)
	vehicle.CompletedCampaigns = []uuid.UUID{completed.ID}

	wildcard := helpers.CampaignForVehicle(vehicle)
	vinMember := helpers.CampaignForVehicle(vehicle, func(c *domain.ServiceCampaign) {
		c.TargetVINs = []string{vehicle.VIN, "OTHER_VIN_000000001"}
	})
	vinExcluded := helpers.CampaignForVehicle(vehicle, func(c *domain.ServiceCampaign) {
		c.TargetVINs = []string{"OTHER_VIN_000000001"}
	})
	cancelled := helpers.CampaignForVehicle(vehicle, func(c *domain.ServiceCampaign) {
		c.Status = domain.CampaignCancelled
	})
	// Campaign-global display flag, must not affect per-vehicle eligibility
	flaggedComplete := helpers.CampaignForVehicle(vehicle, func(c *domain.ServiceCampaign) {
		c.IsCompleted = true
	})

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVehicles := mocks.NewMockVehicleCatalog(ctrl)
	mockCampaigns := mocks.NewMockCampaignCatalog(ctrl)
	service := services.NewEligibilityService(mockVehicles, mockCampaigns, helpers.TestLogger())

	mockVehicles.EXPECT().
		FindByVIN(gomock.Any(), vehicle.VIN).
		Return(vehicle, nil)
	mockCampaigns.EXPECT().
		ListActiveByBrandModel(gomock.Any(), vehicle.BrandID, vehicle.ModelID).
		Return([]domain.ServiceCampaign{*completed, *wildcard, *vinMember, *vinExcluded, *cancelled, *flaggedComplete}, nil)

	pending, err := service.PendingForVIN(context.Background(), vehicle.VIN)
	require.NoError(t, err)

	ids := make(map[uuid.UUID]bool, len(pending))
	for _, c := range pending {
		ids[c.ID] = true
	}

	assert.True(t, ids[wildcard.ID], "wildcard targeting covers every VIN")
	assert.True(t, ids[vinMember.ID], "explicit VIN member is covered")
	assert.True(t, ids[flaggedComplete.ID], "is_completed flag does not exclude")
	assert.False(t, ids[completed.ID], "vehicle-completed campaign is excluded")
	assert.False(t, ids[vinExcluded.ID], "non-member VIN is excluded")
	assert.False(t, ids[cancelled.ID], "non-active campaign is excluded")
}

func TestEligibilityService_Ordering(t *testing.T) {
	vehicle := helpers.CreateTestVehicle()
	now := time.Now()

	optionalOld := helpers.CampaignForVehicle(vehicle, func(c *domain.ServiceCampaign) {
		c.IsMandatory = false
		c.CreatedAt = now.Add(-48 * time.Hour)
	})
	optionalNew := helpers.CampaignForVehicle(vehicle, func(c *domain.ServiceCampaign) {
		c.IsMandatory = false
		c.CreatedAt = now.Add(-1 * time.Hour)
	})
	mandatoryOld := helpers.CampaignForVehicle(vehicle, func(c *domain.ServiceCampaign) {
		c.CreatedAt = now.Add(-72 * time.Hour)
	})
	mandatoryNew := helpers.CampaignForVehicle(vehicle, func(c *domain.ServiceCampaign) {
		c.CreatedAt = now.Add(-2 * time.Hour)
	})

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVehicles := mocks.NewMockVehicleCatalog(ctrl)
	mockCampaigns := mocks.NewMockCampaignCatalog(ctrl)
	service := services.NewEligibilityService(mockVehicles, mockCampaigns, helpers.TestLogger())

	mockVehicles.EXPECT().
		FindByID(gomock.Any(), vehicle.ID).
		Return(vehicle, nil)
	mockCampaigns.EXPECT().
		ListActiveByBrandModel(gomock.Any(), vehicle.BrandID, vehicle.ModelID).
		Return([]domain.ServiceCampaign{*optionalOld, *mandatoryOld, *optionalNew, *mandatoryNew}, nil)

	pending, err := service.PendingForVehicle(context.Background(), vehicle.ID)
	require.NoError(t, err)
	require.Len(t, pending, 4)

	// Mandatory first, newest first within each group
	assert.Equal(t, mandatoryNew.ID, pending[0].ID)
	assert.Equal(t, mandatoryOld.ID, pending[1].ID)
	assert.Equal(t, optionalNew.ID, pending[2].ID)
	assert.Equal(t, optionalOld.ID, pending[3].ID)
}

func TestEligibilityService_PendingForVIN_UnknownVIN(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVehicles := mocks.NewMockVehicleCatalog(ctrl)
	mockCampaigns := mocks.NewMockCampaignCatalog(ctrl)
	service := services.NewEligibilityService(mockVehicles, mockCampaigns, helpers.TestLogger())

	mockVehicles.EXPECT().
		FindByVIN(gomock.Any(), "UNKNOWN_VIN_0000001").
		Return(nil, nil)

	pending, err := service.PendingForVIN(context.Background(), "UNKNOWN_VIN_0000001")
	require.NoError(t, err)
	assert.Empty(t, pending)
	assert.NotNil(t, pending)
}
