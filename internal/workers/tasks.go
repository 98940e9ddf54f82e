// internal/workers/tasks.go
package workers

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// Task type identifiers registered with the Asynq mux
const (
	TypeStockExport   = "stock:export"
	TypeLowStockScan  = "stock:low_stock_scan"
	TypeReportCleanup = "reports:cleanup"
)

// StockExportPayload describes a background stock export request
type StockExportPayload struct {
	JobID        string `json:"job_id"`
	Location     string `json:"location,omitempty"`
	LowStockOnly bool   `json:"low_stock_only"`
	RequestedBy  string `json:"requested_by,omitempty"`
}

// NewStockExportTask creates a stock export task
func NewStockExportTask(payload StockExportPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal export payload: %w", err)
	}
	return asynq.NewTask(TypeStockExport, data), nil
}

// NewLowStockScanTask creates a scheduled low stock scan task
func NewLowStockScanTask() *asynq.Task {
	return asynq.NewTask(TypeLowStockScan, nil)
}

// NewReportCleanupTask creates a report retention cleanup task
func NewReportCleanupTask() *asynq.Task {
	return asynq.NewTask(TypeReportCleanup, nil)
}
