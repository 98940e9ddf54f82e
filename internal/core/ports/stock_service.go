// internal/core/ports/stock_service.go
package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/avdeev/autodealer-be/internal/core/domain"
)

// StockService defines the application service port for the warehouse
// ledger. This interface is implemented by the application service.
type StockService interface {
	CreateEntry(ctx context.Context, params CreateEntryParams) (*domain.WarehouseEntry, error)
	ApplyMovement(ctx context.Context, partID uuid.UUID, movement domain.StockMovement) (*domain.WarehouseEntry, error)
	UpdateEntry(ctx context.Context, id uuid.UUID, patch EntryPatch) (*domain.WarehouseEntry, error)
	GetEntry(ctx context.Context, id uuid.UUID) (*domain.WarehouseEntryWithPart, error)
	GetEntryByPart(ctx context.Context, partID uuid.UUID) (*domain.WarehouseEntry, error)
	GetEntryByArticle(ctx context.Context, article string) (*domain.WarehouseEntryWithPart, error)
	ListEntries(ctx context.Context, params StockQueryParams) ([]domain.WarehouseEntryWithPart, error)
	LowStock(ctx context.Context) ([]domain.WarehouseEntryWithPart, error)
	TotalValue(ctx context.Context) (decimal.Decimal, error)
	DeleteEntry(ctx context.Context, id uuid.UUID) error
}

// CreateEntryParams holds the inputs for creating a warehouse entry.
// Nil min/max levels take the catalog defaults (0 and 100).
type CreateEntryParams struct {
	PartID        uuid.UUID
	Quantity      int32
	MinStockLevel *int32
	MaxStockLevel *int32
	Location      string
}
