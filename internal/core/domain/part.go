// internal/core/domain/part.go
package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Part is the slice of the part catalog record the core reads: identity for
// display and the latest purchase price for valuation.
type Part struct {
	ID            uuid.UUID       `json:"id"`
	Article       string          `json:"article"`
	Name          string          `json:"name"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
}
