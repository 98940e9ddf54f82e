// internal/core/ports/stock_repository.go
package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/avdeev/autodealer-be/internal/core/domain"
)

// StockRepository defines the persistence port for the warehouse ledger.
// This interface is implemented by the database adapter.
//
// Find methods return (nil, nil) when no row matches. ApplyMovement is the
// one atomic quantity mutation: the insufficient-stock guard runs inside the
// store, never in application memory.
type StockRepository interface {
	Save(ctx context.Context, entry *domain.WarehouseEntry) error
	UpdateFields(ctx context.Context, id uuid.UUID, patch EntryPatch) (*domain.WarehouseEntry, error)
	ApplyMovement(ctx context.Context, partID uuid.UUID, movement domain.StockMovement) (*domain.WarehouseEntry, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.WarehouseEntryWithPart, error)
	FindByPartID(ctx context.Context, partID uuid.UUID) (*domain.WarehouseEntry, error)
	FindByArticle(ctx context.Context, article string) (*domain.WarehouseEntryWithPart, error)
	FindAll(ctx context.Context, params StockQueryParams) ([]domain.WarehouseEntryWithPart, error)
	FindLowStock(ctx context.Context) ([]domain.WarehouseEntryWithPart, error)
	ExistsByPartID(ctx context.Context, partID uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	TotalValue(ctx context.Context) (decimal.Decimal, error)
}

// EntryPatch carries a partial warehouse-entry update. Nil fields are left
// untouched.
type EntryPatch struct {
	Quantity      *int32
	MinStockLevel *int32
	MaxStockLevel *int32
	Location      *string
}

// StockQueryParams holds filters for listing warehouse entries
type StockQueryParams struct {
	Location  string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}
