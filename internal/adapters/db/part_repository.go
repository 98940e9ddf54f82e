// internal/adapters/db/part_repository.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/avdeev/autodealer-be/internal/core/domain"
	"github.com/avdeev/autodealer-be/internal/core/ports"
)

// partRepository implements ports.PartCatalog
type partRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewPartRepository creates a new part catalog repository
func NewPartRepository(db *Database, logger *slog.Logger) ports.PartCatalog {
	return &partRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "parts")),
	}
}

// FindByID retrieves a part by id
func (r *partRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Part, error) {
	query := `SELECT id, article, name, purchase_price FROM parts WHERE id = $1`

	part := &domain.Part{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&part.ID, &part.Article, &part.Name, &part.PurchasePrice,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find part: %w", err)
	}
	return part, nil
}

// Exists checks whether a part exists
func (r *partRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM parts WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check part existence: %w", err)
	}
	return exists, nil
}
