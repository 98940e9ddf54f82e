// internal/workers/lowstock_processor.go
package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	redis_a "github.com/avdeev/autodealer-be/internal/adapters/redis_adapter"
	"github.com/avdeev/autodealer-be/internal/core/domain"
	"github.com/avdeev/autodealer-be/internal/core/ports"
)

// LowStockProcessor periodically scans the warehouse for positions at or
// below their minimum level and publishes a snapshot for the dashboard
type LowStockProcessor struct {
	service ports.StockService
	cache   ports.CacheRepository
	logger  *slog.Logger
}

// NewLowStockProcessor creates a new low stock processor
func NewLowStockProcessor(service ports.StockService, cache ports.CacheRepository, logger *slog.Logger) *LowStockProcessor {
	return &LowStockProcessor{
		service: service,
		cache:   cache,
		logger:  logger.With(slog.String("processor", "low_stock")),
	}
}

// LowStockSnapshot is the cached result of the most recent scan
type LowStockSnapshot struct {
	Positions []LowStockPosition `json:"positions"`
	Total     int                `json:"total"`
	ScannedAt time.Time          `json:"scanned_at"`
}

// LowStockPosition is a single warehouse position below its minimum
type LowStockPosition struct {
	PartID        string `json:"part_id"`
	Article       string `json:"article"`
	Name          string `json:"name"`
	Quantity      int32  `json:"quantity"`
	MinStockLevel int32  `json:"min_stock_level"`
}

// HandleLowStockScan processes a scheduled low stock scan
func (p *LowStockProcessor) HandleLowStockScan(ctx context.Context, t *asynq.Task) error {
	p.logger.InfoContext(ctx, "scanning for low stock positions")

	entries, err := p.service.LowStock(ctx)
	if err != nil {
		return err
	}

	snapshot := buildSnapshot(entries, time.Now())

	cacheKey := redis_a.BuildKey(redis_a.PrefixStock, "lowstock", "latest")
	if err := p.cache.SetWithTTL(ctx, cacheKey, snapshot, 2*time.Hour); err != nil {
		p.logger.WarnContext(ctx, "failed to cache low stock snapshot",
			slog.String("error", err.Error()))
	}

	if snapshot.Total == 0 {
		p.logger.InfoContext(ctx, "no low stock positions found")
		return nil
	}

	// Log the worst offenders so alerting can pick them up
	for i, pos := range snapshot.Positions {
		if i >= 5 {
			break
		}
		p.logger.WarnContext(ctx, "low stock position",
			slog.String("article", pos.Article),
			slog.String("name", pos.Name),
			slog.Int("quantity", int(pos.Quantity)),
			slog.Int("min_stock_level", int(pos.MinStockLevel)))
	}

	p.logger.InfoContext(ctx, "low stock scan completed",
		slog.Int("total", snapshot.Total))

	return nil
}

func buildSnapshot(entries []domain.WarehouseEntryWithPart, scannedAt time.Time) LowStockSnapshot {
	positions := make([]LowStockPosition, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		positions = append(positions, LowStockPosition{
			PartID:        e.PartID.String(),
			Article:       e.PartArticle,
			Name:          e.PartName,
			Quantity:      e.Quantity,
			MinStockLevel: e.MinStockLevel,
		})
	}

	return LowStockSnapshot{
		Positions: positions,
		Total:     len(positions),
		ScannedAt: scannedAt,
	}
}
