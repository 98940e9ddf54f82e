// internal/handlers/warehouse_test.go
package handlers_test

import (
	"bytes"
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

func TestWarehouseHandler_CreateEntry(t *testing.T) {
	partID := uuid.New()
	testEntry := helpers.CreateTestWarehouseEntry(func(e *domain.WarehouseEntry) {
		e.PartID = partID
	})

	tests := []struct {
		name           string
		body           string
		setupMocks     func(*mocks.MockStockService, *mocks.MockCacheInvalidator)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name: "successfully_creates_entry",
			body: fmt.Sprintf(`{"part_id": %q, "quantity": 25, "location": "A-01-03"}`, partID),
			setupMocks: func(m *mocks.MockStockService, inv *mocks.MockCacheInvalidator) {
				m.EXPECT().
					CreateEntry(gomock.Any(), gomock.Any()).
					Return(testEntry, nil)
				inv.EXPECT().OnStockChange(gomock.Any())
			},
			expectedStatus: http.StatusCreated,
			validateBody: func(t *testing.T, body []byte) {
				var response domain.WarehouseEntry
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, partID, response.PartID)
				assert.Equal(t, int32(25), response.Quantity)
			},
		},
		{
			name:           "invalid_json_body",
			body:           `{not json`,
			setupMocks:     func(m *mocks.MockStockService, inv *mocks.MockCacheInvalidator) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing_part_id",
			body:           `{"quantity": 25}`,
			setupMocks:     func(m *mocks.MockStockService, inv *mocks.MockCacheInvalidator) {},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body []byte) {
				var response map[string]string
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, "part_id is required", response["error"])
			},
		},
		{
			name: "unknown_part_is_not_found",
			body: fmt.Sprintf(`{"part_id": %q, "quantity": 25}`, partID),
			setupMocks: func(m *mocks.MockStockService, inv *mocks.MockCacheInvalidator) {
				m.EXPECT().
					CreateEntry(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("part %s: %w", partID, domain.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
			validateBody: func(t *testing.T, body []byte) {
				var response map[string]string
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, "Part not found", response["error"])
			},
		},
		{
			name: "duplicate_entry_is_conflict",
			body: fmt.Sprintf(`{"part_id": %q, "quantity": 25}`, partID),
			setupMocks: func(m *mocks.MockStockService, inv *mocks.MockCacheInvalidator) {
				m.EXPECT().
					CreateEntry(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("warehouse entry for part %s: %w", partID, domain.ErrConflict))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "service_error",
			body: fmt.Sprintf(`{"part_id": %q, "quantity": 25}`, partID),
			setupMocks: func(m *mocks.MockStockService, inv *mocks.MockCacheInvalidator) {
				m.EXPECT().
					CreateEntry(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database connection failed"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockStockService(ctrl)
			mockInvalidator := mocks.NewMockCacheInvalidator(ctrl)
			handler := handlers.NewWarehouseHandler(mockService, mockInvalidator, helpers.TestLogger())

			tt.setupMocks(mockService, mockInvalidator)

			req := httptest.NewRequest("POST", "/api/v1/warehouse", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.CreateEntry(w, req)

			resp := w.Result()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.validateBody != nil {
				tt.validateBody(t, w.Body.Bytes())
			}
		})
	}
}

func TestWarehouseHandler_ApplyMovement(t *testing.T) {
	partID := uuid.New()

	tests := []struct {
		name           string
		partID         string
		body           string
		setupMocks     func(*mocks.MockStockService, *mocks.MockCacheInvalidator)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name:   "incoming_movement_succeeds",
			partID: partID.String(),
			body:   `{"quantity": 5, "movement_type": "incoming"}`,
			setupMocks: func(m *mocks.MockStockService, inv *mocks.MockCacheInvalidator) {
				updated := helpers.CreateTestWarehouseEntry(func(e *domain.WarehouseEntry) {
					e.PartID = partID
					e.Quantity = 30
				})
				m.EXPECT().
					ApplyMovement(gomock.Any(), partID, domain.StockMovement{
						Quantity: 5,
						Type:     domain.MovementIncoming,
					}).
					Return(updated, nil)
				inv.EXPECT().OnStockChange(gomock.Any())
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var response domain.WarehouseEntry
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, int32(30), response.Quantity)
			},
		},
		{
			name:           "invalid_part_id",
			partID:         "not-a-uuid",
			body:           `{"quantity": 5, "movement_type": "incoming"}`,
			setupMocks:     func(m *mocks.MockStockService, inv *mocks.MockCacheInvalidator) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown_movement_type",
			partID:         partID.String(),
			body:           `{"quantity": 5, "movement_type": "sideways"}`,
			setupMocks:     func(m *mocks.MockStockService, inv *mocks.MockCacheInvalidator) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "non_positive_quantity",
			partID:         partID.String(),
			body:           `{"quantity": 0, "movement_type": "outgoing"}`,
			setupMocks:     func(m *mocks.MockStockService, inv *mocks.MockCacheInvalidator) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "insufficient_stock_is_conflict",
			partID: partID.String(),
			body:   `{"quantity": 500, "movement_type": "outgoing"}`,
			setupMocks: func(m *mocks.MockStockService, inv *mocks.MockCacheInvalidator) {
				m.EXPECT().
					ApplyMovement(gomock.Any(), partID, gomock.Any()).
					Return(nil, fmt.Errorf("part %s: %w", partID, domain.ErrInsufficientStock))
			},
			expectedStatus: http.StatusConflict,
			validateBody: func(t *testing.T, body []byte) {
				var response map[string]string
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, "Insufficient stock for outgoing movement", response["error"])
			},
		},
		{
			name:   "unknown_part_is_not_found",
			partID: partID.String(),
			body:   `{"quantity": 5, "movement_type": "outgoing"}`,
			setupMocks: func(m *mocks.MockStockService, inv *mocks.MockCacheInvalidator) {
				m.EXPECT().
					ApplyMovement(gomock.Any(), partID, gomock.Any()).
					Return(nil, fmt.Errorf("warehouse entry for part %s: %w", partID, domain.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockStockService(ctrl)
			mockInvalidator := mocks.NewMockCacheInvalidator(ctrl)
			handler := handlers.NewWarehouseHandler(mockService, mockInvalidator, helpers.TestLogger())

			tt.setupMocks(mockService, mockInvalidator)

			req := httptest.NewRequest("POST",
				"/api/v1/warehouse/part/"+tt.partID+"/movements",
				bytes.NewBufferString(tt.body))
			req.SetPathValue("partId", tt.partID)
			w := httptest.NewRecorder()

			handler.ApplyMovement(w, req)

			resp := w.Result()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.validateBody != nil {
				tt.validateBody(t, w.Body.Bytes())
			}
		})
	}
}

func TestWarehouseHandler_GetEntry(t *testing.T) {
	testEntry := helpers.CreateTestEntryWithPart()

	tests := []struct {
		name           string
		entryID        string
		setupMocks     func(*mocks.MockStockService, *mocks.MockCacheInvalidator)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name:    "successfully_retrieves_entry",
			entryID: testEntry.ID.String(),
			setupMocks: func(m *mocks.MockStockService, inv *mocks.MockCacheInvalidator) {
				m.EXPECT().
					GetEntry(gomock.Any(), testEntry.ID).
					Return(testEntry, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var response domain.WarehouseEntryWithPart
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, testEntry.ID, response.ID)
				assert.Equal(t, testEntry.PartArticle, response.PartArticle)
			},
		},
		{
			name:           "invalid_uuid_format",
			entryID:        "not-a-uuid",
			setupMocks:     func(m *mocks.MockStockService, inv *mocks.MockCacheInvalidator) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "entry_not_found",
			entryID: uuid.New().String(),
			setupMocks: func(m *mocks.MockStockService, inv *mocks.MockCacheInvalidator) {
				m.EXPECT().
					GetEntry(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("warehouse entry: %w", domain.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
			validateBody: func(t *testing.T, body []byte) {
				var response map[string]string
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, "Warehouse entry not found", response["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockStockService(ctrl)
			mockInvalidator := mocks.NewMockCacheInvalidator(ctrl)
			handler := handlers.NewWarehouseHandler(mockService, mockInvalidator, helpers.TestLogger())

			tt.setupMocks(mockService, mockInvalidator)

			req := httptest.NewRequest("GET", "/api/v1/warehouse/"+tt.entryID, nil)
			req.SetPathValue("id", tt.entryID)
			w := httptest.NewRecorder()

			handler.GetEntry(w, req)

			resp := w.Result()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.validateBody != nil {
				tt.validateBody(t, w.Body.Bytes())
			}
		})
	}
}

func TestWarehouseHandler_LowStock(t *testing.T) {
	t.Run("returns_entries_with_count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		entries := []domain.WarehouseEntryWithPart{
			*helpers.CreateTestEntryWithPart(func(e *domain.WarehouseEntryWithPart) {
				e.Quantity = 2
			}),
		}

		mockService := mocks.NewMockStockService(ctrl)
		mockService.EXPECT().LowStock(gomock.Any()).Return(entries, nil)

		handler := handlers.NewWarehouseHandler(mockService, mocks.NewMockCacheInvalidator(ctrl), helpers.TestLogger())

		req := httptest.NewRequest("GET", "/api/v1/warehouse/low-stock", nil)
		w := httptest.NewRecorder()

		handler.LowStock(w, req)

		assert.Equal(t, http.StatusOK, w.Result().StatusCode)

		var response struct {
			Entries []domain.WarehouseEntryWithPart `json:"entries"`
			Count   int                             `json:"count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 1, response.Count)
		assert.Len(t, response.Entries, 1)
	})

	t.Run("empty_result_is_an_empty_array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockStockService(ctrl)
		mockService.EXPECT().LowStock(gomock.Any()).Return(nil, nil)

		handler := handlers.NewWarehouseHandler(mockService, mocks.NewMockCacheInvalidator(ctrl), helpers.TestLogger())

		req := httptest.NewRequest("GET", "/api/v1/warehouse/low-stock", nil)
		w := httptest.NewRecorder()

		handler.LowStock(w, req)

		assert.Equal(t, http.StatusOK, w.Result().StatusCode)
		assert.JSONEq(t, `{"entries": [], "count": 0}`, w.Body.String())
	})
}
