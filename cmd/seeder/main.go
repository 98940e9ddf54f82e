package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx/v3"
)

// CatalogPart is a row from the parts price list
type CatalogPart struct {
	ID            uuid.UUID
	Article       string
	Name          string
	PurchasePrice decimal.Decimal
}

// BrandFixture describes a brand with its car models
type BrandFixture struct {
	Name   string
	Models []string
}

// defaultBrands seeds the catalog when no fixture file is supplied
var defaultBrands = []BrandFixture{
	{Name: "Mercedes-Benz", Models: []string{"C-Class W203", "E-Class W211", "S-Class W220"}},
	{Name: "BMW", Models: []string{"3 Series E46", "5 Series E39", "X5 E53"}},
	{Name: "Audi", Models: []string{"A4 B6", "A6 C5", "Q7 4L"}},
}

// defaultParts is used when no price list file is supplied
var defaultParts = []CatalogPart{
	{Article: "BRK-001", Name: "Brake Pad Set Front", PurchasePrice: decimal.NewFromFloat(45.90)},
	{Article: "BRK-002", Name: "Brake Disc Front Pair", PurchasePrice: decimal.NewFromFloat(89.50)},
	{Article: "OIL-010", Name: "Engine Oil Filter", PurchasePrice: decimal.NewFromFloat(8.20)},
	{Article: "OIL-011", Name: "Engine Oil 5W-30 5L", PurchasePrice: decimal.NewFromFloat(32.00)},
	{Article: "AIR-020", Name: "Air Filter Element", PurchasePrice: decimal.NewFromFloat(14.75)},
	{Article: "SPK-030", Name: "Spark Plug Set", PurchasePrice: decimal.NewFromFloat(28.40)},
	{Article: "BAT-040", Name: "Battery 12V 74Ah", PurchasePrice: decimal.NewFromFloat(112.00)},
	{Article: "WPR-050", Name: "Wiper Blade Set", PurchasePrice: decimal.NewFromFloat(19.90)},
	{Article: "ACU-060", Name: "Airbag Control Unit", PurchasePrice: decimal.NewFromFloat(245.00)},
	{Article: "TMG-070", Name: "Timing Chain Kit", PurchasePrice: decimal.NewFromFloat(178.30)},
}

// Seeder populates the dealership catalog tables
type Seeder struct {
	db     *pgxpool.Pool
	logger *slog.Logger
	dryRun bool
}

func NewSeeder(db *pgxpool.Pool, logger *slog.Logger, dryRun bool) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger,
		dryRun: dryRun,
	}
}

// LoadPartsFile reads a parts price list from an xlsx file. The expected
// columns are article, name, purchase price.
func LoadPartsFile(path string, logger *slog.Logger) ([]CatalogPart, error) {
	file, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parts file: %w", err)
	}
	if len(file.Sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in parts file")
	}
	sheet := file.Sheets[0]

	var parts []CatalogPart
	rowIdx := 0
	err = sheet.ForEachRow(func(r *xlsx.Row) error {
		// Skip header
		if rowIdx == 0 {
			rowIdx++
			return nil
		}
		rowIdx++

		get := func(i int) string {
			c := r.GetCell(i)
			if c == nil {
				return ""
			}
			if s, err := c.FormattedValue(); err == nil {
				return strings.TrimSpace(s)
			}
			return strings.TrimSpace(c.String())
		}

		article := get(0)
		if article == "" {
			return nil
		}

		name := get(1)
		price, err := decimal.NewFromString(strings.ReplaceAll(get(2), ",", ""))
		if err != nil {
			logger.Warn("skipping part with unparseable price",
				slog.String("article", article),
				slog.String("raw_price", get(2)))
			return nil
		}

		parts = append(parts, CatalogPart{
			Article:       article,
			Name:          name,
			PurchasePrice: price,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	logger.Info("loaded parts price list",
		slog.String("file", path),
		slog.Int("count", len(parts)))
	return parts, nil
}

// SeedBrands inserts brands and their car models, returning model IDs
// keyed by brand
func (s *Seeder) SeedBrands(ctx context.Context, fixtures []BrandFixture) (map[uuid.UUID][]uuid.UUID, error) {
	modelsByBrand := make(map[uuid.UUID][]uuid.UUID, len(fixtures))

	for _, fixture := range fixtures {
		brandID := uuid.New()
		if !s.dryRun {
			err := s.db.QueryRow(ctx,
				`INSERT INTO brands (id, name) VALUES ($1, $2)
				 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
				 RETURNING id`,
				brandID, fixture.Name,
			).Scan(&brandID)
			if err != nil {
				return nil, fmt.Errorf("failed to insert brand %s: %w", fixture.Name, err)
			}
		}

		for _, modelName := range fixture.Models {
			modelID := uuid.New()
			if !s.dryRun {
				err := s.db.QueryRow(ctx,
					`INSERT INTO car_models (id, brand_id, name) VALUES ($1, $2, $3)
					 ON CONFLICT (brand_id, name) DO UPDATE SET name = EXCLUDED.name
					 RETURNING id`,
					modelID, brandID, modelName,
				).Scan(&modelID)
				if err != nil {
					return nil, fmt.Errorf("failed to insert model %s: %w", modelName, err)
				}
			}
			modelsByBrand[brandID] = append(modelsByBrand[brandID], modelID)
		}
	}

	s.logger.Info("seeded brands and car models", slog.Int("brands", len(fixtures)))
	return modelsByBrand, nil
}

// SeedParts inserts catalog parts in a single batch
func (s *Seeder) SeedParts(ctx context.Context, parts []CatalogPart) ([]CatalogPart, error) {
	for i := range parts {
		if parts[i].ID == uuid.Nil {
			parts[i].ID = uuid.New()
		}
	}

	if s.dryRun {
		return parts, nil
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, part := range parts {
		batch.Queue(`
			INSERT INTO parts (id, article, name, purchase_price)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (article) DO NOTHING`,
			part.ID, part.Article, part.Name, part.PurchasePrice,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for range parts {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return nil, fmt.Errorf("failed to insert part: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return nil, fmt.Errorf("failed to close batch results: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Info("seeded catalog parts", slog.Int("count", len(parts)))
	return parts, nil
}

// SeedWarehouse creates one stock row per part
func (s *Seeder) SeedWarehouse(ctx context.Context, parts []CatalogPart) error {
	if s.dryRun {
		return nil
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	now := time.Now()
	for i, part := range parts {
		quantity := 10 + (i*7)%40
		minLevel := 5
		maxLevel := 100
		location := fmt.Sprintf("A-%02d-%02d", i/10+1, i%10+1)

		batch.Queue(`
			INSERT INTO warehouse (id, part_id, quantity, min_stock_level, max_stock_level, location, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
			ON CONFLICT (part_id) DO NOTHING`,
			uuid.New(), part.ID, quantity, minLevel, maxLevel, location, now,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for range parts {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to insert warehouse row: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close batch results: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Info("seeded warehouse stock", slog.Int("count", len(parts)))
	return nil
}

// SeedVehicles creates vehicles for each car model
func (s *Seeder) SeedVehicles(ctx context.Context, modelsByBrand map[uuid.UUID][]uuid.UUID, perModel int) (int, error) {
	total := 0
	now := time.Now()

	for brandID, modelIDs := range modelsByBrand {
		for _, modelID := range modelIDs {
			for i := 0; i < perModel; i++ {
				vin := generateVIN(modelID, i)
				if !s.dryRun {
					_, err := s.db.Exec(ctx,
						`INSERT INTO vehicles (id, vin, brand_id, model_id, completed_service_campaigns, created_at, updated_at)
						 VALUES ($1, $2, $3, $4, '{}', $5, $5)
						 ON CONFLICT (vin) DO NOTHING`,
						uuid.New(), vin, brandID, modelID, now,
					)
					if err != nil {
						return total, fmt.Errorf("failed to insert vehicle %s: %w", vin, err)
					}
				}
				total++
			}
		}
	}

	s.logger.Info("seeded vehicles", slog.Int("count", total))
	return total, nil
}

// SeedCampaigns creates one mandatory and one optional campaign per
// brand/model pair
func (s *Seeder) SeedCampaigns(ctx context.Context, modelsByBrand map[uuid.UUID][]uuid.UUID, parts []CatalogPart) (int, error) {
	total := 0
	now := time.Now()
	year := now.Year()

	for brandID, modelIDs := range modelsByBrand {
		for _, modelID := range modelIDs {
			campaigns := []struct {
				name        string
				isMandatory bool
			}{
				{name: "Airbag Control Unit Replacement", isMandatory: true},
				{name: "Infotainment Software Update", isMandatory: false},
			}

			for _, c := range campaigns {
				total++
				if s.dryRun {
					continue
				}

				article := fmt.Sprintf("SC-%d-%03d", year, total)
				var requiredParts []uuid.UUID
				if len(parts) > 0 {
					requiredParts = []uuid.UUID{parts[total%len(parts)].ID}
				}

				_, err := s.db.Exec(ctx,
					`INSERT INTO service_campaigns (
						id, article, name, description, brand_id, car_model_id,
						target_vins, required_parts, required_works,
						is_mandatory, is_completed, status, created_at, updated_at
					) VALUES ($1, $2, $3, $4, $5, $6, '{}', $7, '{}', $8, false, 'active', $9, $9)
					ON CONFLICT (article) DO NOTHING`,
					uuid.New(), article, c.name,
					fmt.Sprintf("%s for all affected vehicles", c.name),
					brandID, modelID, requiredParts, c.isMandatory, now,
				)
				if err != nil {
					return total, fmt.Errorf("failed to insert campaign %s: %w", article, err)
				}
			}
		}
	}

	s.logger.Info("seeded service campaigns", slog.Int("count", total))
	return total, nil
}

// generateVIN builds a deterministic 17-character VIN-like identifier
func generateVIN(modelID uuid.UUID, seq int) string {
	base := strings.ToUpper(strings.ReplaceAll(modelID.String(), "-", ""))
	return fmt.Sprintf("WDB%s%05d", base[:9], seq)[:17]
}

func main() {
	// Parse flags
	var (
		partsFile = flag.String("parts", "", "Excel file with the parts price list (article, name, price)")
		perModel  = flag.Int("vehicles-per-model", 3, "Number of vehicles to create per car model")
		logLevel  = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		dryRun    = flag.Bool("dry-run", false, "Preview changes without modifying database")
	)
	flag.Parse()

	// Setup logging
	var slogLevel slog.Level
	switch *logLevel {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: slogLevel,
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, opts))
	slog.SetDefault(logger)

	// Database connection
	dbURL := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		getEnv("DB_USER", "autodealer"),
		getEnv("DB_PASSWORD", "autodealer_dev"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "autodealer"),
		getEnv("DB_SSL_MODE", "disable"),
	)

	ctx := context.Background()

	var db *pgxpool.Pool
	var err error

	if !*dryRun {
		db, err = pgxpool.New(ctx, dbURL)
		if err != nil {
			logger.Error("failed to connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer db.Close()
	}

	seeder := NewSeeder(db, logger, *dryRun)

	// Load the parts price list or fall back to built-in fixtures
	parts := defaultParts
	if *partsFile != "" {
		loaded, err := LoadPartsFile(*partsFile, logger)
		if err != nil {
			logger.Error("failed to load parts file", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if len(loaded) > 0 {
			parts = loaded
		}
	}

	// Seed in dependency order
	modelsByBrand, err := seeder.SeedBrands(ctx, defaultBrands)
	if err != nil {
		logger.Error("failed to seed brands", slog.String("error", err.Error()))
		os.Exit(1)
	}

	parts, err = seeder.SeedParts(ctx, parts)
	if err != nil {
		logger.Error("failed to seed parts", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := seeder.SeedWarehouse(ctx, parts); err != nil {
		logger.Error("failed to seed warehouse", slog.String("error", err.Error()))
		os.Exit(1)
	}

	vehicleCount, err := seeder.SeedVehicles(ctx, modelsByBrand, *perModel)
	if err != nil {
		logger.Error("failed to seed vehicles", slog.String("error", err.Error()))
		os.Exit(1)
	}

	campaignCount, err := seeder.SeedCampaigns(ctx, modelsByBrand, parts)
	if err != nil {
		logger.Error("failed to seed campaigns", slog.String("error", err.Error()))
		os.Exit(1)
	}

	modelCount := 0
	for _, models := range modelsByBrand {
		modelCount += len(models)
	}

	// Summary
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("SEEDING OPERATION SUMMARY")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Brands:            %d\n", len(defaultBrands))
	fmt.Printf("Car Models:        %d\n", modelCount)
	fmt.Printf("Catalog Parts:     %d\n", len(parts))
	fmt.Printf("Warehouse Rows:    %d\n", len(parts))
	fmt.Printf("Vehicles:          %d\n", vehicleCount)
	fmt.Printf("Service Campaigns: %d\n", campaignCount)

	logger.Info("seed operation completed",
		slog.Int("parts", len(parts)),
		slog.Int("vehicles", vehicleCount),
		slog.Int("campaigns", campaignCount))

	if *dryRun {
		fmt.Println("\n[DRY RUN] No changes were made to the database")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
