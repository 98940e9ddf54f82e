// internal/handlers/export.go
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	redis_a "github.com/avdeev/autodealer-be/internal/adapters/redis_adapter"
	"github.com/avdeev/autodealer-be/internal/core/domain"
	"github.com/avdeev/autodealer-be/internal/core/ports"
	"github.com/avdeev/autodealer-be/internal/pkg/report"
	"github.com/avdeev/autodealer-be/internal/workers"
)

// ExportHandler produces downloadable stock reports
type ExportHandler struct {
	service     ports.StockService
	cache       ports.CacheRepository
	asynqClient *asynq.Client
	logger      *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(service ports.StockService, cache ports.CacheRepository, asynqClient *asynq.Client, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		service:     service,
		cache:       cache,
		asynqClient: asynqClient,
		logger:      logger.With(slog.String("handler", "export")),
	}
}

// ExportExcel handles GET /api/v1/export/excel
func (h *ExportHandler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params := h.parseExportParams(r)

	h.logger.InfoContext(ctx, "starting excel export",
		slog.String("location", params.Location),
		slog.Bool("low_stock_only", params.LowStockOnly))

	entries, err := h.loadEntries(ctx, params)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to retrieve stock data",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve data")
		return
	}

	excelData, err := report.GenerateStockWorkbook(entries)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate excel file",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to generate Excel file")
		return
	}

	filename := fmt.Sprintf("stock_report_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(excelData)))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if _, err := w.Write(excelData); err != nil {
		h.logger.ErrorContext(ctx, "failed to write excel response",
			slog.String("error", err.Error()))
		return
	}

	h.logger.InfoContext(ctx, "excel export completed",
		slog.Int("total_rows", len(entries)),
		slog.String("filename", filename))
}

// ExportJSON handles GET /api/v1/export/json
func (h *ExportHandler) ExportJSON(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params := h.parseExportParams(r)

	cacheKey := redis_a.BuildKey(redis_a.PrefixExport, "json", params.cacheKey())
	var cachedData []byte
	if err := h.cache.Get(ctx, cacheKey, &cachedData); err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Cache", "HIT")
		w.Header().Set("Content-Length", strconv.Itoa(len(cachedData)))

		if _, err := w.Write(cachedData); err != nil {
			h.logger.ErrorContext(ctx, "failed to write cached JSON response",
				slog.String("error", err.Error()))
		}
		return
	}

	entries, err := h.loadEntries(ctx, params)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to retrieve stock data",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve data")
		return
	}

	totalValue, err := h.service.TotalValue(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to compute total value for export",
			slog.String("error", err.Error()))
	}

	response := StockExportResponse{
		Entries: entries,
		Metadata: ExportMetadata{
			ExportDate:   time.Now(),
			TotalRows:    len(entries),
			Location:     params.Location,
			LowStockOnly: params.LowStockOnly,
			TotalValue:   totalValue.String(),
		},
	}

	responseData, err := json.Marshal(response)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to generate JSON")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", "MISS")
	w.Header().Set("Content-Length", strconv.Itoa(len(responseData)))

	if _, err := w.Write(responseData); err != nil {
		h.logger.ErrorContext(ctx, "failed to write JSON response",
			slog.String("error", err.Error()))
		return
	}

	go func() {
		cacheCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := h.cache.SetWithTTL(cacheCtx, cacheKey, responseData, 5*time.Minute); err != nil {
			h.logger.WarnContext(cacheCtx, "failed to cache JSON export",
				slog.String("error", err.Error()))
		}
	}()
}

// ExportAsync handles POST /api/v1/export/async. It enqueues a background
// export and returns the job ID for polling.
func (h *ExportHandler) ExportAsync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.asynqClient == nil {
		h.respondError(w, http.StatusServiceUnavailable, "Background exports are not available")
		return
	}

	params := h.parseExportParams(r)
	jobID := uuid.New().String()

	task, err := workers.NewStockExportTask(workers.StockExportPayload{
		JobID:        jobID,
		Location:     params.Location,
		LowStockOnly: params.LowStockOnly,
		RequestedBy:  r.Header.Get("X-Request-ID"),
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create export task",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to create export task")
		return
	}

	info, err := h.asynqClient.EnqueueContext(ctx, task,
		asynq.Queue("default"),
		asynq.MaxRetry(3),
		asynq.Timeout(10*time.Minute),
	)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to enqueue export task",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to enqueue export task")
		return
	}

	h.logger.InfoContext(ctx, "export job enqueued",
		slog.String("job_id", jobID),
		slog.String("task_id", info.ID),
		slog.String("queue", info.Queue))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]string{
		"job_id": jobID,
		"status": "queued",
	})
}

// ExportStatus handles GET /api/v1/export/status/{jobId}
func (h *ExportHandler) ExportStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	jobID := r.PathValue("jobId")
	if jobID == "" {
		h.respondError(w, http.StatusBadRequest, "Job ID is required")
		return
	}

	cacheKey := redis_a.BuildKey(redis_a.PrefixExport, "job", jobID)
	var result workers.ExportResult
	if err := h.cache.Get(ctx, cacheKey, &result); err != nil {
		// Not cached yet means still queued or running
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{
			"job_id": jobID,
			"status": "pending",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]any{
		"job_id":       result.JobID,
		"status":       "completed",
		"download_url": result.DownloadURL,
		"total_rows":   result.TotalRows,
		"generated_at": result.GeneratedAt,
	})
}

// StockExportParams defines parameters for export operations
type StockExportParams struct {
	Location     string
	LowStockOnly bool
}

func (p *StockExportParams) cacheKey() string {
	return fmt.Sprintf("loc_%s_low_%t", p.Location, p.LowStockOnly)
}

// StockExportResponse represents the JSON export response structure
type StockExportResponse struct {
	Entries  []domain.WarehouseEntryWithPart `json:"entries"`
	Metadata ExportMetadata                  `json:"metadata"`
}

// ExportMetadata contains metadata about the export
type ExportMetadata struct {
	ExportDate   time.Time `json:"export_date"`
	TotalRows    int       `json:"total_rows"`
	Location     string    `json:"location,omitempty"`
	LowStockOnly bool      `json:"low_stock_only"`
	TotalValue   string    `json:"total_value,omitempty"`
}

func (h *ExportHandler) parseExportParams(r *http.Request) *StockExportParams {
	return &StockExportParams{
		Location:     r.URL.Query().Get("location"),
		LowStockOnly: r.URL.Query().Get("low_stock") == "true",
	}
}

func (h *ExportHandler) loadEntries(ctx context.Context, params *StockExportParams) ([]domain.WarehouseEntryWithPart, error) {
	if params.LowStockOnly {
		return h.service.LowStock(ctx)
	}
	return h.service.ListEntries(ctx, ports.StockQueryParams{Location: params.Location})
}

func (h *ExportHandler) respondError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
