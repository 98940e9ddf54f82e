// internal/handlers/dashboard.go
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/avdeev/autodealer-be/internal/adapters/db"
	redis_a "github.com/avdeev/autodealer-be/internal/adapters/redis_adapter"
	"github.com/avdeev/autodealer-be/internal/core/ports"
)

// DashboardHandler serves the back-office overview: stock totals, per-location
// breakdown and campaign status counts. Everything here is a cached read
// model; the ledger itself never goes through this path.
type DashboardHandler struct {
	db     *db.Database
	cache  ports.CacheRepository
	logger *slog.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(db *db.Database, cache ports.CacheRepository, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		db:     db,
		cache:  cache,
		logger: logger.With(slog.String("handler", "dashboard")),
	}
}

// GetDashboard handles GET /api/v1/dashboard
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cacheKey := redis_a.BuildKey(redis_a.PrefixDashboard, "main")
	var dashboard DashboardData

	err := h.cache.GetOrSet(ctx, cacheKey, &dashboard, func() (interface{}, error) {
		return h.loadDashboardData(ctx)
	}, 5*time.Minute)

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load dashboard",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	h.respondJSON(w, http.StatusOK, dashboard)
}

func (h *DashboardHandler) loadDashboardData(ctx context.Context) (*DashboardData, error) {
	dashboard := &DashboardData{
		Timestamp: time.Now(),
	}

	summaryQuery := `
		SELECT
			COUNT(*) as total_positions,
			COALESCE(SUM(w.quantity), 0) as total_units,
			COUNT(*) FILTER (WHERE w.quantity <= w.min_stock_level) as low_stock_positions,
			COALESCE(SUM(w.quantity * p.purchase_price), 0) as total_value
		FROM warehouse w
		JOIN parts p ON w.part_id = p.id`

	err := h.db.QueryRow(ctx, summaryQuery).Scan(
		&dashboard.Summary.TotalPositions,
		&dashboard.Summary.TotalUnits,
		&dashboard.Summary.LowStockPositions,
		&dashboard.Summary.TotalValue,
	)
	if err != nil {
		return nil, err
	}

	locationQuery := `
		SELECT
			COALESCE(location, '') as location,
			COUNT(*) as positions,
			COALESCE(SUM(quantity), 0) as units
		FROM warehouse
		GROUP BY location
		ORDER BY positions DESC
		LIMIT 10`

	rows, err := h.db.Query(ctx, locationQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var loc LocationBreakdown
		if err := rows.Scan(&loc.Location, &loc.Positions, &loc.Units); err != nil {
			continue
		}
		dashboard.LocationBreakdown = append(dashboard.LocationBreakdown, loc)
	}

	// Campaign counts are best effort: the dashboard still renders when the
	// campaign table is empty or unreachable.
	campaignQuery := `
		SELECT status, COUNT(*)
		FROM service_campaigns
		GROUP BY status`

	campRows, err := h.db.Query(ctx, campaignQuery)
	if err == nil {
		defer campRows.Close()
		dashboard.CampaignCounts = make(map[string]int64)
		for campRows.Next() {
			var status string
			var count int64
			if err := campRows.Scan(&status, &count); err == nil {
				dashboard.CampaignCounts[status] = count
			}
		}
	}

	return dashboard, nil
}

// Type definitions

type DashboardData struct {
	Summary           StockSummary        `json:"summary"`
	LocationBreakdown []LocationBreakdown `json:"location_breakdown"`
	CampaignCounts    map[string]int64    `json:"campaign_counts,omitempty"`
	Timestamp         time.Time           `json:"timestamp"`
}

type StockSummary struct {
	TotalPositions    int64           `json:"total_positions"`
	TotalUnits        int64           `json:"total_units"`
	LowStockPositions int64           `json:"low_stock_positions"`
	TotalValue        decimal.Decimal `json:"total_value"`
}

type LocationBreakdown struct {
	Location  string `json:"location"`
	Positions int64  `json:"positions"`
	Units     int64  `json:"units"`
}

// Helper methods

func (h *DashboardHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *DashboardHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
