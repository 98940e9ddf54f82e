// internal/adapters/db/stock_repository.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/avdeev/autodealer-be/internal/core/domain"
	"github.com/avdeev/autodealer-be/internal/core/ports"
)

// pgUniqueViolation is the SQLSTATE for unique constraint violations
const pgUniqueViolation = "23505"

// stockRepository implements ports.StockRepository
type stockRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewStockRepository creates a new stock repository
func NewStockRepository(db *Database, logger *slog.Logger) ports.StockRepository {
	return &stockRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "stock")),
	}
}

// Save inserts the warehouse entry for a part. The unique constraint on
// part_id makes the insert the uniqueness check; a duplicate surfaces as
// domain.ErrConflict without a prior existence query.
func (r *stockRepository) Save(ctx context.Context, entry *domain.WarehouseEntry) error {
	query := `
		INSERT INTO warehouse (
			id, part_id, quantity, min_stock_level, max_stock_level,
			location, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	var location *string
	if entry.Location != "" {
		location = &entry.Location
	}

	_, err := r.db.Exec(ctx, query,
		entry.ID, entry.PartID, entry.Quantity, entry.MinStockLevel,
		entry.MaxStockLevel, location, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("warehouse entry for part %s: %w", entry.PartID, domain.ErrConflict)
		}
		return fmt.Errorf("failed to save warehouse entry: %w", err)
	}

	r.logger.DebugContext(ctx, "warehouse entry saved",
		slog.String("entry_id", entry.ID.String()),
		slog.String("part_id", entry.PartID.String()))

	return nil
}

// UpdateFields patches the provided fields and refreshes updated_at.
// Returns (nil, nil) when the entry does not exist.
func (r *stockRepository) UpdateFields(ctx context.Context, id uuid.UUID, patch ports.EntryPatch) (*domain.WarehouseEntry, error) {
	qb := squirrel.Update("warehouse").
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		Suffix(`RETURNING id, part_id, quantity, min_stock_level, max_stock_level,
			location, created_at, updated_at`).
		PlaceholderFormat(squirrel.Dollar)

	if patch.Quantity != nil {
		qb = qb.Set("quantity", *patch.Quantity)
	}
	if patch.MinStockLevel != nil {
		qb = qb.Set("min_stock_level", *patch.MinStockLevel)
	}
	if patch.MaxStockLevel != nil {
		qb = qb.Set("max_stock_level", *patch.MaxStockLevel)
	}
	if patch.Location != nil {
		qb = qb.Set("location", *patch.Location)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update query: %w", err)
	}

	entry, err := scanEntry(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update warehouse entry: %w", err)
	}

	return entry, nil
}

// ApplyMovement mutates the part's quantity in a single guarded UPDATE. For
// outgoing movements the insufficient-stock check runs inside the statement
// (quantity >= $1), so concurrent movements on the same part cannot drive
// the quantity negative.
func (r *stockRepository) ApplyMovement(ctx context.Context, partID uuid.UUID, movement domain.StockMovement) (*domain.WarehouseEntry, error) {
	var query string
	switch movement.Type {
	case domain.MovementIncoming:
		query = `
			UPDATE warehouse
			SET quantity = quantity + $1, updated_at = $2
			WHERE part_id = $3
			RETURNING id, part_id, quantity, min_stock_level, max_stock_level,
				location, created_at, updated_at`
	case domain.MovementOutgoing:
		query = `
			UPDATE warehouse
			SET quantity = quantity - $1, updated_at = $2
			WHERE part_id = $3 AND quantity >= $1
			RETURNING id, part_id, quantity, min_stock_level, max_stock_level,
				location, created_at, updated_at`
	case domain.MovementAdjustment:
		query = `
			UPDATE warehouse
			SET quantity = $1, updated_at = $2
			WHERE part_id = $3
			RETURNING id, part_id, quantity, min_stock_level, max_stock_level,
				location, created_at, updated_at`
	default:
		return nil, fmt.Errorf("%w: unknown movement type %q", domain.ErrValidation, movement.Type)
	}

	entry, err := scanEntry(r.db.QueryRow(ctx, query, movement.Quantity, time.Now(), partID))
	if err == nil {
		return entry, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to apply stock movement: %w", err)
	}

	// Zero rows: either no entry for the part, or the outgoing guard
	// rejected the movement. A follow-up existence check picks the error;
	// the guard above remains the only quantity mutation.
	if movement.Type == domain.MovementOutgoing {
		exists, exErr := r.ExistsByPartID(ctx, partID)
		if exErr != nil {
			return nil, exErr
		}
		if exists {
			return nil, fmt.Errorf("part %s: %w", partID, domain.ErrInsufficientStock)
		}
	}
	return nil, fmt.Errorf("warehouse entry for part %s: %w", partID, domain.ErrNotFound)
}

// FindByID retrieves an entry by id, joined with part display fields
func (r *stockRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.WarehouseEntryWithPart, error) {
	query := entryWithPartSelect + ` WHERE w.id = $1`

	entry, err := scanEntryWithPart(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find warehouse entry: %w", err)
	}
	return entry, nil
}

// FindByPartID retrieves the entry tracking the given part
func (r *stockRepository) FindByPartID(ctx context.Context, partID uuid.UUID) (*domain.WarehouseEntry, error) {
	query := `
		SELECT id, part_id, quantity, min_stock_level, max_stock_level,
			location, created_at, updated_at
		FROM warehouse
		WHERE part_id = $1`

	entry, err := scanEntry(r.db.QueryRow(ctx, query, partID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find warehouse entry: %w", err)
	}
	return entry, nil
}

// FindByArticle retrieves the entry whose part carries the article code
func (r *stockRepository) FindByArticle(ctx context.Context, article string) (*domain.WarehouseEntryWithPart, error) {
	query := entryWithPartSelect + ` WHERE p.article = $1`

	entry, err := scanEntryWithPart(r.db.QueryRow(ctx, query, article))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find warehouse entry: %w", err)
	}
	return entry, nil
}

// FindAll retrieves entries with optional filters, ordered by part article
// unless told otherwise
func (r *stockRepository) FindAll(ctx context.Context, params ports.StockQueryParams) ([]domain.WarehouseEntryWithPart, error) {
	qb := squirrel.Select(
		"w.id", "w.part_id", "w.quantity", "w.min_stock_level", "w.max_stock_level",
		"w.location", "w.created_at", "w.updated_at",
		"p.article", "p.name",
	).From("warehouse w").
		Join("parts p ON w.part_id = p.id").
		PlaceholderFormat(squirrel.Dollar)

	if params.Location != "" {
		qb = qb.Where("w.location ILIKE ?", "%"+params.Location+"%")
	}

	orderBy := "p.article ASC"
	if params.SortBy != "" {
		direction := "ASC"
		if params.SortOrder == "desc" {
			direction = "DESC"
		}
		switch params.SortBy {
		case "quantity":
			orderBy = fmt.Sprintf("w.quantity %s", direction)
		case "updated":
			orderBy = fmt.Sprintf("w.updated_at %s", direction)
		default:
			orderBy = fmt.Sprintf("p.article %s", direction)
		}
	}
	qb = qb.OrderBy(orderBy)

	if params.Limit > 0 {
		qb = qb.Limit(uint64(params.Limit))
	}
	if params.Offset > 0 {
		qb = qb.Offset(uint64(params.Offset))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query warehouse entries: %w", err)
	}
	defer rows.Close()

	return collectEntriesWithPart(rows)
}

// FindLowStock retrieves entries at or below their minimum level, most
// depleted first
func (r *stockRepository) FindLowStock(ctx context.Context) ([]domain.WarehouseEntryWithPart, error) {
	query := entryWithPartSelect + `
		WHERE w.quantity <= w.min_stock_level
		ORDER BY w.quantity ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query low stock entries: %w", err)
	}
	defer rows.Close()

	return collectEntriesWithPart(rows)
}

// ExistsByPartID checks whether an entry exists for the part
func (r *stockRepository) ExistsByPartID(ctx context.Context, partID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM warehouse WHERE part_id = $1)`, partID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check entry existence: %w", err)
	}
	return exists, nil
}

// Delete removes an entry; reports whether a row existed
func (r *stockRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM warehouse WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete warehouse entry: %w", err)
	}

	if tag.RowsAffected() > 0 {
		r.logger.InfoContext(ctx, "warehouse entry deleted",
			slog.String("entry_id", id.String()))
		return true, nil
	}
	return false, nil
}

// TotalValue sums quantity times the part's latest purchase price over the
// whole ledger. An empty ledger values to zero.
func (r *stockRepository) TotalValue(ctx context.Context) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(w.quantity * p.purchase_price), 0)
		FROM warehouse w
		JOIN parts p ON w.part_id = p.id`

	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute total value: %w", err)
	}
	return total, nil
}

const entryWithPartSelect = `
	SELECT w.id, w.part_id, w.quantity, w.min_stock_level, w.max_stock_level,
		w.location, w.created_at, w.updated_at,
		p.article, p.name
	FROM warehouse w
	JOIN parts p ON w.part_id = p.id`

func scanEntry(row pgx.Row) (*domain.WarehouseEntry, error) {
	entry := &domain.WarehouseEntry{}
	var location sql.NullString

	err := row.Scan(
		&entry.ID, &entry.PartID, &entry.Quantity, &entry.MinStockLevel,
		&entry.MaxStockLevel, &location, &entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.Location = location.String
	return entry, nil
}

func collectEntriesWithPart(rows pgx.Rows) ([]domain.WarehouseEntryWithPart, error) {
	var entries []domain.WarehouseEntryWithPart
	for rows.Next() {
		entry, err := scanEntryWithPart(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan warehouse entry: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return entries, nil
}

func scanEntryWithPart(row pgx.Row) (*domain.WarehouseEntryWithPart, error) {
	entry := &domain.WarehouseEntryWithPart{}
	var location sql.NullString

	err := row.Scan(
		&entry.ID, &entry.PartID, &entry.Quantity, &entry.MinStockLevel,
		&entry.MaxStockLevel, &location, &entry.CreatedAt, &entry.UpdatedAt,
		&entry.PartArticle, &entry.PartName,
	)
	if err != nil {
		return nil, err
	}

	entry.Location = location.String
	return entry, nil
}
