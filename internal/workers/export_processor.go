// internal/workers/export_processor.go
package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	redis_a "github.com/avdeev/autodealer-be/internal/adapters/redis_adapter"
	"github.com/avdeev/autodealer-be/internal/adapters/storage"
	"github.com/avdeev/autodealer-be/internal/core/domain"
	"github.com/avdeev/autodealer-be/internal/core/ports"
	"github.com/avdeev/autodealer-be/internal/pkg/config"
	"github.com/avdeev/autodealer-be/internal/pkg/report"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportProcessor generates stock reports in the background and uploads
// them to the report store
type ExportProcessor struct {
	service ports.StockService
	store   storage.ReportStore
	cache   ports.CacheRepository
	config  *config.Config
	logger  *slog.Logger
}

// NewExportProcessor creates a new export processor
func NewExportProcessor(
	service ports.StockService,
	store storage.ReportStore,
	cache ports.CacheRepository,
	cfg *config.Config,
	logger *slog.Logger,
) *ExportProcessor {
	return &ExportProcessor{
		service: service,
		store:   store,
		cache:   cache,
		config:  cfg,
		logger:  logger.With(slog.String("processor", "export")),
	}
}

// ExportResult is cached after a successful export so the API can hand
// out the download link
type ExportResult struct {
	JobID       string    `json:"job_id"`
	Key         string    `json:"key"`
	DownloadURL string    `json:"download_url"`
	TotalRows   int       `json:"total_rows"`
	GeneratedAt time.Time `json:"generated_at"`
}

// HandleStockExport processes a stock export task
func (p *ExportProcessor) HandleStockExport(ctx context.Context, t *asynq.Task) error {
	var payload StockExportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	p.logger.InfoContext(ctx, "processing stock export",
		slog.String("job_id", payload.JobID),
		slog.String("location", payload.Location),
		slog.Bool("low_stock_only", payload.LowStockOnly))

	entries, err := p.loadEntries(ctx, payload)
	if err != nil {
		return fmt.Errorf("failed to load stock data: %w", err)
	}

	data, err := report.GenerateStockWorkbook(entries)
	if err != nil {
		return fmt.Errorf("failed to generate workbook: %w", err)
	}

	key := storage.ReportKey(p.config.Jobs.ReportPrefix, "stock", "xlsx")
	if _, err := p.store.Upload(ctx, key, bytes.NewReader(data), xlsxContentType); err != nil {
		return fmt.Errorf("failed to upload report: %w", err)
	}

	url, err := p.store.GetPresignedURL(ctx, key, 24*time.Hour)
	if err != nil {
		return fmt.Errorf("failed to presign report URL: %w", err)
	}

	result := ExportResult{
		JobID:       payload.JobID,
		Key:         key,
		DownloadURL: url,
		TotalRows:   len(entries),
		GeneratedAt: time.Now(),
	}

	cacheKey := redis_a.BuildKey(redis_a.PrefixExport, "job", payload.JobID)
	if err := p.cache.SetWithTTL(ctx, cacheKey, result, 24*time.Hour); err != nil {
		p.logger.WarnContext(ctx, "failed to cache export result",
			slog.String("job_id", payload.JobID),
			slog.String("error", err.Error()))
	}

	p.logger.InfoContext(ctx, "stock export completed",
		slog.String("job_id", payload.JobID),
		slog.String("key", key),
		slog.Int("total_rows", len(entries)))

	return nil
}

func (p *ExportProcessor) loadEntries(ctx context.Context, payload StockExportPayload) ([]domain.WarehouseEntryWithPart, error) {
	if payload.LowStockOnly {
		return p.service.LowStock(ctx)
	}
	return p.service.ListEntries(ctx, ports.StockQueryParams{Location: payload.Location})
}
