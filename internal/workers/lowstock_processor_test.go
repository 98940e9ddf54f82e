// internal/workers/lowstock_processor_test.go
package workers_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/avdeev/autodealer-be/internal/core/domain"
	"github.com/avdeev/autodealer-be/internal/workers"
	"github.com/avdeev/autodealer-be/test/helpers"
	"github.com/avdeev/autodealer-be/test/mocks"
)

func TestLowStockProcessor_HandleLowStockScan(t *testing.T) {
	lowEntry := helpers.CreateTestEntryWithPart(func(e *domain.WarehouseEntryWithPart) {
		e.Quantity = 2
		e.MinStockLevel = 5
	})

	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockStockService, *mocks.MockCacheRepository)
		expectedError string
	}{
		{
			name: "snapshot_is_cached_with_positions",
			setupMocks: func(service *mocks.MockStockService, cache *mocks.MockCacheRepository) {
				service.EXPECT().
					LowStock(gomock.Any()).
					Return([]domain.WarehouseEntryWithPart{*lowEntry}, nil)
				cache.EXPECT().
					SetWithTTL(gomock.Any(), "stock:lowstock:latest", gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any, _ any) error {
						snapshot, ok := value.(workers.LowStockSnapshot)
						require.True(t, ok)
						require.Equal(t, 1, snapshot.Total)
						assert.Equal(t, lowEntry.PartArticle, snapshot.Positions[0].Article)
						assert.Equal(t, int32(2), snapshot.Positions[0].Quantity)
						assert.Equal(t, int32(5), snapshot.Positions[0].MinStockLevel)
						return nil
					})
			},
		},
		{
			name: "empty_scan_still_publishes_snapshot",
			setupMocks: func(service *mocks.MockStockService, cache *mocks.MockCacheRepository) {
				service.EXPECT().
					LowStock(gomock.Any()).
					Return([]domain.WarehouseEntryWithPart{}, nil)
				cache.EXPECT().
					SetWithTTL(gomock.Any(), "stock:lowstock:latest", gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any, _ any) error {
						snapshot, ok := value.(workers.LowStockSnapshot)
						require.True(t, ok)
						assert.Zero(t, snapshot.Total)
						assert.NotNil(t, snapshot.Positions)
						return nil
					})
			},
		},
		{
			name: "cache_failure_does_not_fail_the_task",
			setupMocks: func(service *mocks.MockStockService, cache *mocks.MockCacheRepository) {
				service.EXPECT().
					LowStock(gomock.Any()).
					Return([]domain.WarehouseEntryWithPart{*lowEntry}, nil)
				cache.EXPECT().
					SetWithTTL(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("redis unavailable"))
			},
		},
		{
			name: "service_error_fails_the_task",
			setupMocks: func(service *mocks.MockStockService, cache *mocks.MockCacheRepository) {
				service.EXPECT().
					LowStock(gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			expectedError: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockStockService(ctrl)
			mockCache := mocks.NewMockCacheRepository(ctrl)
			processor := workers.NewLowStockProcessor(mockService, mockCache, helpers.TestLogger())

			tt.setupMocks(mockService, mockCache)

			err := processor.HandleLowStockScan(context.Background(), workers.NewLowStockScanTask())

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				return
			}
			require.NoError(t, err)
		})
	}
}
