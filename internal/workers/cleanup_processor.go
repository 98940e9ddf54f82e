// internal/workers/cleanup_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	redis_a "github.com/avdeev/autodealer-be/internal/adapters/redis_adapter"
	"github.com/avdeev/autodealer-be/internal/adapters/storage"
	"github.com/avdeev/autodealer-be/internal/core/ports"
	"github.com/avdeev/autodealer-be/internal/pkg/config"
)

// CleanupProcessor removes generated reports that have outlived the
// configured retention window
type CleanupProcessor struct {
	store  storage.ReportStore
	cache  ports.CacheRepository
	config *config.Config
	logger *slog.Logger
}

// NewCleanupProcessor creates a new cleanup processor
func NewCleanupProcessor(store storage.ReportStore, cache ports.CacheRepository, cfg *config.Config, logger *slog.Logger) *CleanupProcessor {
	return &CleanupProcessor{
		store:  store,
		cache:  cache,
		config: cfg,
		logger: logger.With(slog.String("processor", "cleanup")),
	}
}

// HandleReportCleanup prunes stale reports from the report store
func (p *CleanupProcessor) HandleReportCleanup(ctx context.Context, t *asynq.Task) error {
	cutoff := time.Now().Add(-p.config.Jobs.ReportRetention)

	p.logger.InfoContext(ctx, "pruning stale reports",
		slog.String("prefix", p.config.Jobs.ReportPrefix),
		slog.Time("cutoff", cutoff))

	deleted, err := p.store.PruneOlderThan(ctx, p.config.Jobs.ReportPrefix, cutoff)
	if err != nil {
		return fmt.Errorf("failed to prune reports: %w", err)
	}

	// Cached export results may reference pruned objects
	if deleted > 0 {
		pattern := fmt.Sprintf("%s:job:*", redis_a.PrefixExport)
		if err := p.cache.DeletePattern(ctx, pattern); err != nil {
			p.logger.WarnContext(ctx, "failed to drop stale export cache entries",
				slog.String("error", err.Error()))
		}
	}

	p.logger.InfoContext(ctx, "report cleanup completed",
		slog.Int("reports_deleted", deleted))

	return nil
}
