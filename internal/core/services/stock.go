// internal/core/services/stock.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/avdeev/autodealer-be/internal/core/domain"
	"github.com/avdeev/autodealer-be/internal/core/ports"
)

// StockService owns the warehouse ledger: one row per part, non-negative
// quantity, movement semantics, low-stock detection and valuation.
type StockService struct {
	repo   ports.StockRepository
	parts  ports.PartCatalog
	logger *slog.Logger
}

// Statically assert that *StockService implements the StockService port.
var _ ports.StockService = (*StockService)(nil)

// NewStockService creates a new stock service
func NewStockService(repo ports.StockRepository, parts ports.PartCatalog, logger *slog.Logger) *StockService {
	return &StockService{
		repo:   repo,
		parts:  parts,
		logger: logger.With(slog.String("service", "stock")),
	}
}

// Default stock levels applied when the caller omits them
const (
	defaultMinStockLevel int32 = 0
	defaultMaxStockLevel int32 = 100
)

// CreateEntry creates the single warehouse entry for a part. A duplicate
// part surfaces as domain.ErrConflict from the store's unique constraint.
func (s *StockService) CreateEntry(ctx context.Context, params ports.CreateEntryParams) (*domain.WarehouseEntry, error) {
	entry := &domain.WarehouseEntry{
		PartID:        params.PartID,
		Quantity:      params.Quantity,
		MinStockLevel: defaultMinStockLevel,
		MaxStockLevel: defaultMaxStockLevel,
		Location:      params.Location,
	}
	if params.MinStockLevel != nil {
		entry.MinStockLevel = *params.MinStockLevel
	}
	if params.MaxStockLevel != nil {
		entry.MaxStockLevel = *params.MaxStockLevel
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.parts.Exists(ctx, params.PartID)
	if err != nil {
		return nil, fmt.Errorf("failed to check part existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("part %s: %w", params.PartID, domain.ErrNotFound)
	}

	entry.PrepareForStorage()

	if err := s.repo.Save(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save warehouse entry: %w", err)
	}

	s.logger.InfoContext(ctx, "warehouse entry created",
		slog.String("entry_id", entry.ID.String()),
		slog.String("part_id", entry.PartID.String()),
		slog.Int("quantity", int(entry.Quantity)))

	return entry, nil
}

// ApplyMovement applies an incoming, outgoing or adjustment movement to the
// part's entry. Outgoing movements exceeding the on-hand quantity are
// rejected atomically inside the store and reported as
// domain.ErrInsufficientStock; no row changes in that case.
func (s *StockService) ApplyMovement(ctx context.Context, partID uuid.UUID, movement domain.StockMovement) (*domain.WarehouseEntry, error) {
	if err := movement.Validate(); err != nil {
		return nil, err
	}

	entry, err := s.repo.ApplyMovement(ctx, partID, movement)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "stock movement applied",
		slog.String("part_id", partID.String()),
		slog.String("movement_type", string(movement.Type)),
		slog.Int("movement_quantity", int(movement.Quantity)),
		slog.Int("quantity", int(entry.Quantity)))

	return entry, nil
}

// UpdateEntry patches the editable fields of an entry. Quantity edits here
// use plain last-writer-wins semantics; concurrent-safe quantity changes go
// through ApplyMovement.
func (s *StockService) UpdateEntry(ctx context.Context, id uuid.UUID, patch ports.EntryPatch) (*domain.WarehouseEntry, error) {
	if patch.Quantity != nil && *patch.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity cannot be negative", domain.ErrValidation)
	}
	if patch.MinStockLevel != nil && *patch.MinStockLevel < 0 {
		return nil, fmt.Errorf("%w: min_stock_level cannot be negative", domain.ErrValidation)
	}
	if patch.MaxStockLevel != nil && *patch.MaxStockLevel < 0 {
		return nil, fmt.Errorf("%w: max_stock_level cannot be negative", domain.ErrValidation)
	}

	entry, err := s.repo.UpdateFields(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update warehouse entry: %w", err)
	}
	if entry == nil {
		return nil, fmt.Errorf("warehouse entry %s: %w", id, domain.ErrNotFound)
	}

	s.logger.InfoContext(ctx, "warehouse entry updated",
		slog.String("entry_id", id.String()))

	return entry, nil
}

// GetEntry retrieves an entry by its id, joined with part display fields
func (s *StockService) GetEntry(ctx context.Context, id uuid.UUID) (*domain.WarehouseEntryWithPart, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get warehouse entry: %w", err)
	}
	if entry == nil {
		return nil, fmt.Errorf("warehouse entry %s: %w", id, domain.ErrNotFound)
	}
	return entry, nil
}

// GetEntryByPart retrieves the entry tracking the given part
func (s *StockService) GetEntryByPart(ctx context.Context, partID uuid.UUID) (*domain.WarehouseEntry, error) {
	entry, err := s.repo.FindByPartID(ctx, partID)
	if err != nil {
		return nil, fmt.Errorf("failed to get warehouse entry: %w", err)
	}
	if entry == nil {
		return nil, fmt.Errorf("warehouse entry for part %s: %w", partID, domain.ErrNotFound)
	}
	return entry, nil
}

// GetEntryByArticle retrieves the entry whose part carries the article code
func (s *StockService) GetEntryByArticle(ctx context.Context, article string) (*domain.WarehouseEntryWithPart, error) {
	if article == "" {
		return nil, fmt.Errorf("%w: article is required", domain.ErrValidation)
	}
	entry, err := s.repo.FindByArticle(ctx, article)
	if err != nil {
		return nil, fmt.Errorf("failed to get warehouse entry: %w", err)
	}
	if entry == nil {
		return nil, fmt.Errorf("warehouse entry for article %q: %w", article, domain.ErrNotFound)
	}
	return entry, nil
}

// ListEntries retrieves warehouse entries with optional filters
func (s *StockService) ListEntries(ctx context.Context, params ports.StockQueryParams) ([]domain.WarehouseEntryWithPart, error) {
	entries, err := s.repo.FindAll(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list warehouse entries: %w", err)
	}
	return entries, nil
}

// LowStock lists entries at or below their minimum level, most depleted
// first
func (s *StockService) LowStock(ctx context.Context) ([]domain.WarehouseEntryWithPart, error) {
	entries, err := s.repo.FindLowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock entries: %w", err)
	}
	return entries, nil
}

// TotalValue computes the point-in-time valuation of the whole ledger using
// the latest purchase prices. An empty ledger values to zero.
func (s *StockService) TotalValue(ctx context.Context) (decimal.Decimal, error) {
	total, err := s.repo.TotalValue(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute total stock value: %w", err)
	}
	return total, nil
}

// DeleteEntry removes an entry. The part record it references is untouched.
func (s *StockService) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete warehouse entry: %w", err)
	}
	if !deleted {
		return fmt.Errorf("warehouse entry %s: %w", id, domain.ErrNotFound)
	}

	s.logger.InfoContext(ctx, "warehouse entry deleted",
		slog.String("entry_id", id.String()))

	return nil
}
