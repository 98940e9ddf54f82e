// internal/core/domain/warehouse.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MovementType classifies a stock movement
type MovementType string

// Movement type constants
const (
	MovementIncoming   MovementType = "incoming"
	MovementOutgoing   MovementType = "outgoing"
	MovementAdjustment MovementType = "adjustment"
)

// ParseMovementType maps the wire representation to a MovementType.
// Unknown values are rejected.
func ParseMovementType(s string) (MovementType, error) {
	switch MovementType(s) {
	case MovementIncoming, MovementOutgoing, MovementAdjustment:
		return MovementType(s), nil
	default:
		return "", fmt.Errorf("%w: unknown movement type %q", ErrValidation, s)
	}
}

// WarehouseEntry represents the on-hand stock row for a single part.
// There is at most one entry per part, enforced by a unique constraint.
type WarehouseEntry struct {
	ID            uuid.UUID `json:"id"`
	PartID        uuid.UUID `json:"part_id"`
	Quantity      int32     `json:"quantity"`
	MinStockLevel int32     `json:"min_stock_level"`
	MaxStockLevel int32     `json:"max_stock_level"`
	Location      string    `json:"location,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Validate performs domain validation on the warehouse entry
func (e *WarehouseEntry) Validate() error {
	if e.PartID == uuid.Nil {
		return fmt.Errorf("%w: part_id is required", ErrValidation)
	}
	if e.Quantity < 0 {
		return fmt.Errorf("%w: quantity cannot be negative", ErrValidation)
	}
	if e.MinStockLevel < 0 {
		return fmt.Errorf("%w: min_stock_level cannot be negative", ErrValidation)
	}
	if e.MaxStockLevel < 0 {
		return fmt.Errorf("%w: max_stock_level cannot be negative", ErrValidation)
	}
	return nil
}

// PrepareForStorage prepares the entry for database storage
func (e *WarehouseEntry) PrepareForStorage() {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	now := time.Now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	e.UpdatedAt = now
}

// IsLowStock reports whether the entry is at or below its minimum level
func (e *WarehouseEntry) IsLowStock() bool {
	return e.Quantity <= e.MinStockLevel
}

// WarehouseEntryWithPart joins an entry with part display fields. The part
// fields are owned by the part catalog and are read-only here.
type WarehouseEntryWithPart struct {
	WarehouseEntry
	PartArticle string `json:"part_article"`
	PartName    string `json:"part_name"`
}

// StockMovement is a request to change a part's on-hand quantity. It is not
// persisted; only its effect on the warehouse row is.
type StockMovement struct {
	Quantity int32        `json:"quantity"`
	Type     MovementType `json:"movement_type"`
}

// Validate performs domain validation on the movement
func (m StockMovement) Validate() error {
	if m.Quantity <= 0 {
		return fmt.Errorf("%w: movement quantity must be positive", ErrValidation)
	}
	switch m.Type {
	case MovementIncoming, MovementOutgoing, MovementAdjustment:
		return nil
	default:
		return fmt.Errorf("%w: unknown movement type %q", ErrValidation, m.Type)
	}
}
