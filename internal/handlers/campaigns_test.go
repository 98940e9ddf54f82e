// internal/handlers/campaigns_test.go
package handlers_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/avdeev/autodealer-be/internal/core/domain"
	"github.com/avdeev/autodealer-be/internal/handlers"
	"github.com/avdeev/autodealer-be/test/helpers"
	"github.com/avdeev/autodealer-be/test/mocks"
)

func newCampaignHandler(t *testing.T) (*handlers.CampaignHandler, *mocks.MockEligibilityService, *mocks.MockCompletionService, *mocks.MockCacheInvalidator) {
	t.Helper()

	ctrl := gomock.NewController(t)
	eligibility := mocks.NewMockEligibilityService(ctrl)
	completion := mocks.NewMockCompletionService(ctrl)
	invalidator := mocks.NewMockCacheInvalidator(ctrl)

	handler := handlers.NewCampaignHandler(eligibility, completion, invalidator, helpers.TestLogger())
	return handler, eligibility, completion, invalidator
}

func TestCampaignHandler_PendingForVehicle(t *testing.T) {
	vehicle := helpers.CreateTestVehicle()
	mandatory := helpers.CampaignForVehicle(vehicle)
	optional := helpers.CampaignForVehicle(vehicle, func(c *domain.ServiceCampaign) {
		c.Article = "SC-2024-002"
		c.IsMandatory = false
	})

	tests := []struct {
		name           string
		vehicleID      string
		setupMocks     func(*mocks.MockEligibilityService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name:      "lists_pending_campaigns_mandatory_first",
			vehicleID: vehicle.ID.String(),
			setupMocks: func(m *mocks.MockEligibilityService) {
				m.EXPECT().
					PendingForVehicle(gomock.Any(), vehicle.ID).
					Return([]domain.ServiceCampaign{*mandatory, *optional}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var response struct {
					Campaigns []domain.ServiceCampaign `json:"campaigns"`
					Count     int                      `json:"count"`
				}
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, 2, response.Count)
				assert.True(t, response.Campaigns[0].IsMandatory)
				assert.Equal(t, "SC-2024-002", response.Campaigns[1].Article)
			},
		},
		{
			name:      "missing_vehicle_yields_empty_list",
			vehicleID: uuid.New().String(),
			setupMocks: func(m *mocks.MockEligibilityService) {
				m.EXPECT().
					PendingForVehicle(gomock.Any(), gomock.Any()).
					Return([]domain.ServiceCampaign{}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var response struct {
					Count int `json:"count"`
				}
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, 0, response.Count)
			},
		},
		{
			name:           "invalid_vehicle_id",
			vehicleID:      "not-a-uuid",
			setupMocks:     func(m *mocks.MockEligibilityService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:      "service_error",
			vehicleID: vehicle.ID.String(),
			setupMocks: func(m *mocks.MockEligibilityService) {
				m.EXPECT().
					PendingForVehicle(gomock.Any(), vehicle.ID).
					Return(nil, errors.New("database connection failed"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, eligibility, _, _ := newCampaignHandler(t)
			tt.setupMocks(eligibility)

			req := httptest.NewRequest("GET", "/api/v1/vehicles/"+tt.vehicleID+"/campaigns/pending", nil)
			req.SetPathValue("id", tt.vehicleID)
			w := httptest.NewRecorder()

			handler.PendingForVehicle(w, req)

			assert.Equal(t, tt.expectedStatus, w.Result().StatusCode)
			if tt.validateBody != nil {
				tt.validateBody(t, w.Body.Bytes())
			}
		})
	}
}

func TestCampaignHandler_PendingForVIN(t *testing.T) {
	t.Run("unknown_vin_yields_empty_list", func(t *testing.T) {
		handler, eligibility, _, _ := newCampaignHandler(t)

		eligibility.EXPECT().
			PendingForVIN(gomock.Any(), "WDB0000000X000000").
			Return([]domain.ServiceCampaign{}, nil)

		req := httptest.NewRequest("GET", "/api/v1/vehicles/vin/WDB0000000X000000/campaigns/pending", nil)
		req.SetPathValue("vin", "WDB0000000X000000")
		w := httptest.NewRecorder()

		handler.PendingForVIN(w, req)

		assert.Equal(t, http.StatusOK, w.Result().StatusCode)
		assert.JSONEq(t, `{"campaigns": [], "count": 0}`, w.Body.String())
	})
}

func TestCampaignHandler_MarkCompleted(t *testing.T) {
	vehicle := helpers.CreateTestVehicle()
	campaignID := uuid.New()

	tests := []struct {
		name           string
		vehicleID      string
		campaignID     string
		setupMocks     func(*mocks.MockCompletionService, *mocks.MockCacheInvalidator)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name:       "successfully_marks_campaign_completed",
			vehicleID:  vehicle.ID.String(),
			campaignID: campaignID.String(),
			setupMocks: func(m *mocks.MockCompletionService, inv *mocks.MockCacheInvalidator) {
				updated := *vehicle
				updated.CompletedCampaigns = []uuid.UUID{campaignID}
				m.EXPECT().
					MarkCompleted(gomock.Any(), vehicle.ID, campaignID).
					Return(&updated, nil)
				inv.EXPECT().OnCompletionChange(gomock.Any(), vehicle.ID.String())
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var response domain.Vehicle
				require.NoError(t, json.Unmarshal(body, &response))
				assert.True(t, response.HasCompleted(campaignID))
			},
		},
		{
			name:           "invalid_campaign_id",
			vehicleID:      vehicle.ID.String(),
			campaignID:     "not-a-uuid",
			setupMocks:     func(m *mocks.MockCompletionService, inv *mocks.MockCacheInvalidator) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:       "already_completed_is_not_found",
			vehicleID:  vehicle.ID.String(),
			campaignID: campaignID.String(),
			setupMocks: func(m *mocks.MockCompletionService, inv *mocks.MockCacheInvalidator) {
				m.EXPECT().
					MarkCompleted(gomock.Any(), vehicle.ID, campaignID).
					Return(nil, fmt.Errorf("vehicle %s, campaign %s: %w",
						vehicle.ID, campaignID, domain.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
			validateBody: func(t *testing.T, body []byte) {
				var response map[string]string
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, "Vehicle or campaign not found, or campaign already completed", response["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _, completion, invalidator := newCampaignHandler(t)
			tt.setupMocks(completion, invalidator)

			req := httptest.NewRequest("POST",
				"/api/v1/vehicles/"+tt.vehicleID+"/campaigns/"+tt.campaignID+"/complete", nil)
			req.SetPathValue("id", tt.vehicleID)
			req.SetPathValue("campaignId", tt.campaignID)
			w := httptest.NewRecorder()

			handler.MarkCompleted(w, req)

			assert.Equal(t, tt.expectedStatus, w.Result().StatusCode)
			if tt.validateBody != nil {
				tt.validateBody(t, w.Body.Bytes())
			}
		})
	}
}

func TestCampaignHandler_VehiclesByCampaign(t *testing.T) {
	campaignID := uuid.New()

	t.Run("lists_vehicles_with_completed_campaign", func(t *testing.T) {
		handler, _, completion, _ := newCampaignHandler(t)

		vehicles := []domain.Vehicle{*helpers.CreateTestVehicle(), *helpers.CreateTestVehicle()}
		completion.EXPECT().
			VehiclesByCompletedCampaign(gomock.Any(), campaignID).
			Return(vehicles, nil)

		req := httptest.NewRequest("GET", "/api/v1/campaigns/"+campaignID.String()+"/vehicles", nil)
		req.SetPathValue("id", campaignID.String())
		w := httptest.NewRecorder()

		handler.VehiclesByCampaign(w, req)

		assert.Equal(t, http.StatusOK, w.Result().StatusCode)

		var response struct {
			Vehicles []domain.Vehicle `json:"vehicles"`
			Count    int              `json:"count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 2, response.Count)
	})

	t.Run("unknown_campaign_is_not_found", func(t *testing.T) {
		handler, _, completion, _ := newCampaignHandler(t)

		completion.EXPECT().
			VehiclesByCompletedCampaign(gomock.Any(), campaignID).
			Return(nil, fmt.Errorf("campaign %s: %w", campaignID, domain.ErrNotFound))

		req := httptest.NewRequest("GET", "/api/v1/campaigns/"+campaignID.String()+"/vehicles", nil)
		req.SetPathValue("id", campaignID.String())
		w := httptest.NewRecorder()

		handler.VehiclesByCampaign(w, req)

		assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
	})
}
