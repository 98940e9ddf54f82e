// test/helpers/helpers.go
package helpers

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/avdeev/autodealer-be/internal/adapters/db"
	"github.com/avdeev/autodealer-be/internal/core/domain"
	"github.com/avdeev/autodealer-be/internal/pkg/config"
)

// TestDB represents a test database instance
type TestDB struct {
	PgxPool  *pgxpool.Pool
	Database *db.Database
	Resource *dockertest.Resource
	Pool     *dockertest.Pool
	Config   *db.Config
}

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// SetupTestDB creates a PostgreSQL container for integration tests
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "Could not connect to Docker")

	// Pull PostgreSQL image
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=test_autodealer",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "Could not start PostgreSQL container")

	// Clean up on test completion
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})

	// Get connection details
	dbConfig := &db.Config{
		Host:               "localhost",
		Port:               resource.GetPort("5432/tcp"),
		User:               "test",
		Password:           "test",
		Database:           "test_autodealer",
		SSLMode:            "disable",
		MaxConnections:     5,
		MinConnections:     1,
		MaxConnLifetime:    time.Hour,
		MaxConnIdleTime:    time.Minute * 30,
		HealthCheckPeriod:  time.Minute,
		ConnectTimeout:     time.Second * 10,
		EnableQueryLogging: testing.Verbose(),
	}

	// Wait for database to be ready
	var database *db.Database
	err = pool.Retry(func() error {
		ctx := context.Background()
		var err error
		database, err = db.NewDatabase(ctx, dbConfig, TestLogger())
		if err != nil {
			return err
		}
		return database.Ping(ctx)
	})
	require.NoError(t, err, "Could not connect to PostgreSQL")

	// Run migrations
	ctx := context.Background()
	migrationConfig := &db.MigrationConfig{
		DatabaseURL: fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
			dbConfig.User, dbConfig.Password, dbConfig.Host, dbConfig.Port,
			dbConfig.Database, dbConfig.SSLMode),
		SourcePath: "../../migrations",
		TableName:  "schema_migrations",
		SchemaName: "public",
	}

	err = db.RunMigrationsWithRetry(ctx, migrationConfig, TestLogger(), 3)
	require.NoError(t, err, "Could not run migrations")

	return &TestDB{
		PgxPool:  database.Pool(),
		Database: database,
		Resource: resource,
		Pool:     pool,
		Config:   dbConfig,
	}
}

// SetupTestRedis creates a mock Redis instance for testing
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// SetupMockDB creates a mock database for unit testing
func SetupMockDB(t *testing.T) (sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err, "Failed to create mock DB")

	t.Cleanup(func() {
		db.Close()
	})

	return mock, db
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "test-api",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		Database: config.DatabaseConfig{
			Host:               "localhost",
			Port:               "5432",
			User:               "test",
			Password:           "test",
			Name:               "test_autodealer",
			SSLMode:            "disable",
			MaxConnections:     10,
			MinConnections:     2,
			EnableQueryLogging: true,
		},
		Redis: config.RedisConfig{
			Host:     "localhost",
			Port:     "6379",
			DB:       0,
			TTL:      time.Hour,
			PoolSize: 10,
		},
		Jobs: config.JobsConfig{
			LowStockCheckInterval: time.Hour,
			ExportTimeout:         5 * time.Minute,
			ReportPrefix:          "reports",
			ReportRetention:       24 * time.Hour,
		},
		Security: config.SecurityConfig{
			RateLimitRequests: 100,
			RateLimitDuration: time.Minute,
			AllowedOrigins:    []string{"*"},
			SecureHeaders:     false,
		},
		Server: config.ServerConfig{
			Host:         "localhost",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
	}
}

// CreateTestPart creates a test catalog part
func CreateTestPart(overrides ...func(*domain.Part)) *domain.Part {
	part := &domain.Part{
		ID:            uuid.New(),
		Article:       "BRK-001",
		Name:          "Brake Pad Set Front",
		PurchasePrice: decimal.NewFromFloat(45.90),
	}

	for _, override := range overrides {
		override(part)
	}

	return part
}

// CreateTestWarehouseEntry creates a test warehouse entry
func CreateTestWarehouseEntry(overrides ...func(*domain.WarehouseEntry)) *domain.WarehouseEntry {
	entry := &domain.WarehouseEntry{
		ID:            uuid.New(),
		PartID:        uuid.New(),
		Quantity:      25,
		MinStockLevel: 5,
		MaxStockLevel: 100,
		Location:      "A-01-03",
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	for _, override := range overrides {
		override(entry)
	}

	return entry
}

// CreateTestEntryWithPart creates a test warehouse entry joined with part fields
func CreateTestEntryWithPart(overrides ...func(*domain.WarehouseEntryWithPart)) *domain.WarehouseEntryWithPart {
	entry := &domain.WarehouseEntryWithPart{
		WarehouseEntry: *CreateTestWarehouseEntry(),
		PartArticle:    "BRK-001",
		PartName:       "Brake Pad Set Front",
	}

	for _, override := range overrides {
		override(entry)
	}

	return entry
}

// CreateTestVehicle creates a test vehicle
func CreateTestVehicle(overrides ...func(*domain.Vehicle)) *domain.Vehicle {
	vehicle := &domain.Vehicle{
		ID:                 uuid.New(),
		VIN:                "WDB2030461A123456",
		BrandID:            uuid.New(),
		ModelID:            uuid.New(),
		CompletedCampaigns: []uuid.UUID{},
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}

	for _, override := range overrides {
		override(vehicle)
	}

	return vehicle
}

// CreateTestCampaign creates a test service campaign. By default it is
// active, mandatory and targets all VINs of its brand/model.
func CreateTestCampaign(overrides ...func(*domain.ServiceCampaign)) *domain.ServiceCampaign {
	campaign := &domain.ServiceCampaign{
		ID:            uuid.New(),
		Article:       "SC-2024-001",
		Name:          "Airbag Control Unit Replacement",
		Description:   "Replace airbag control unit due to supplier defect",
		BrandID:       uuid.New(),
		CarModelID:    uuid.New(),
		TargetVINs:    []string{},
		RequiredParts: []uuid.UUID{},
		RequiredWorks: []uuid.UUID{},
		IsMandatory:   true,
		Status:        domain.CampaignActive,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	for _, override := range overrides {
		override(campaign)
	}

	return campaign
}

// CampaignForVehicle creates an active campaign that applies to the vehicle
func CampaignForVehicle(v *domain.Vehicle, overrides ...func(*domain.ServiceCampaign)) *domain.ServiceCampaign {
	base := func(c *domain.ServiceCampaign) {
		c.BrandID = v.BrandID
		c.CarModelID = v.ModelID
	}
	return CreateTestCampaign(append([]func(*domain.ServiceCampaign){base}, overrides...)...)
}

// AssertEventuallyWithTimeout asserts that a condition is met within a timeout
func AssertEventuallyWithTimeout(t *testing.T, condition func() bool, timeout time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(100 * time.Millisecond)
	}

	t.Errorf("Condition not met within %v: %s", timeout, msg)
}

// TruncateAllTables truncates all tables in the test database
func TruncateAllTables(t *testing.T, db *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()
	tables := []string{
		"warehouse",
		"service_campaigns",
		"vehicles",
		"parts",
		"car_models",
		"brands",
	}

	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "Failed to truncate table: %s", table)
	}
}

// SeedPart inserts a catalog part
func SeedPart(t *testing.T, db *pgxpool.Pool, part *domain.Part) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx,
		`INSERT INTO parts (id, article, name, purchase_price) VALUES ($1, $2, $3, $4)`,
		part.ID, part.Article, part.Name, part.PurchasePrice,
	)
	require.NoError(t, err, "Failed to seed part")
}

// SeedBrandModel inserts a brand and a car model for vehicle fixtures
func SeedBrandModel(t *testing.T, db *pgxpool.Pool, brandID, modelID uuid.UUID) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx,
		`INSERT INTO brands (id, name) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		brandID, fmt.Sprintf("Brand %s", brandID.String()[:8]),
	)
	require.NoError(t, err, "Failed to seed brand")

	_, err = db.Exec(ctx,
		`INSERT INTO car_models (id, brand_id, name) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
		modelID, brandID, fmt.Sprintf("Model %s", modelID.String()[:8]),
	)
	require.NoError(t, err, "Failed to seed car model")
}

// SeedVehicle inserts a vehicle, creating its brand and model first
func SeedVehicle(t *testing.T, db *pgxpool.Pool, vehicle *domain.Vehicle) {
	t.Helper()

	SeedBrandModel(t, db, vehicle.BrandID, vehicle.ModelID)

	ctx := context.Background()
	_, err := db.Exec(ctx,
		`INSERT INTO vehicles (id, vin, brand_id, model_id, completed_service_campaigns, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		vehicle.ID, vehicle.VIN, vehicle.BrandID, vehicle.ModelID,
		vehicle.CompletedCampaigns, vehicle.CreatedAt, vehicle.UpdatedAt,
	)
	require.NoError(t, err, "Failed to seed vehicle")
}

// SeedCampaign inserts a service campaign, creating its brand and model first
func SeedCampaign(t *testing.T, db *pgxpool.Pool, campaign *domain.ServiceCampaign) {
	t.Helper()

	SeedBrandModel(t, db, campaign.BrandID, campaign.CarModelID)

	ctx := context.Background()
	_, err := db.Exec(ctx,
		`INSERT INTO service_campaigns (
			id, article, name, description, brand_id, car_model_id,
			target_vins, required_parts, required_works,
			is_mandatory, is_completed, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		campaign.ID, campaign.Article, campaign.Name, campaign.Description,
		campaign.BrandID, campaign.CarModelID,
		campaign.TargetVINs, campaign.RequiredParts, campaign.RequiredWorks,
		campaign.IsMandatory, campaign.IsCompleted, string(campaign.Status),
		campaign.CreatedAt, campaign.UpdatedAt,
	)
	require.NoError(t, err, "Failed to seed campaign")
}

// SeedWarehouseEntry inserts a warehouse row, creating its part first
func SeedWarehouseEntry(t *testing.T, db *pgxpool.Pool, entry *domain.WarehouseEntry, part *domain.Part) {
	t.Helper()

	SeedPart(t, db, part)

	ctx := context.Background()
	var location any
	if entry.Location != "" {
		location = entry.Location
	}
	_, err := db.Exec(ctx,
		`INSERT INTO warehouse (id, part_id, quantity, min_stock_level, max_stock_level, location, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, entry.PartID, entry.Quantity, entry.MinStockLevel,
		entry.MaxStockLevel, location, entry.CreatedAt, entry.UpdatedAt,
	)
	require.NoError(t, err, "Failed to seed warehouse entry")
}
