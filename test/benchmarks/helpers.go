// test/benchmarks/helpers.go
package benchmarks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/avdeev/autodealer-be/internal/core/domain"
	"github.com/avdeev/autodealer-be/test/helpers"
)

// staticVehicleCatalog serves a single vehicle from memory so the eligibility
// benchmarks measure the resolver, not the database round trip.
type staticVehicleCatalog struct {
	vehicle *domain.Vehicle
}

func (c *staticVehicleCatalog) FindByID(_ context.Context, _ uuid.UUID) (*domain.Vehicle, error) {
	return c.vehicle, nil
}

func (c *staticVehicleCatalog) FindByVIN(_ context.Context, _ string) (*domain.Vehicle, error) {
	return c.vehicle, nil
}

func (c *staticVehicleCatalog) AddCompletedCampaign(_ context.Context, _, _ uuid.UUID) (*domain.Vehicle, error) {
	return c.vehicle, nil
}

func (c *staticVehicleCatalog) RemoveCompletedCampaign(_ context.Context, _, _ uuid.UUID) (*domain.Vehicle, error) {
	return c.vehicle, nil
}

func (c *staticVehicleCatalog) ClearCompletedCampaigns(_ context.Context, _ uuid.UUID) (*domain.Vehicle, error) {
	return c.vehicle, nil
}

func (c *staticVehicleCatalog) FindByCompletedCampaign(_ context.Context, _ uuid.UUID) ([]domain.Vehicle, error) {
	return []domain.Vehicle{*c.vehicle}, nil
}

// staticCampaignCatalog serves a fixed candidate list from memory.
type staticCampaignCatalog struct {
	campaigns []domain.ServiceCampaign
}

func (c *staticCampaignCatalog) FindByID(_ context.Context, id uuid.UUID) (*domain.ServiceCampaign, error) {
	for i := range c.campaigns {
		if c.campaigns[i].ID == id {
			return &c.campaigns[i], nil
		}
	}
	return nil, nil
}

func (c *staticCampaignCatalog) ListActive(_ context.Context) ([]domain.ServiceCampaign, error) {
	return c.campaigns, nil
}

func (c *staticCampaignCatalog) ListActiveByBrandModel(_ context.Context, _, _ uuid.UUID) ([]domain.ServiceCampaign, error) {
	return c.campaigns, nil
}

// benchmarkCampaigns builds a realistic candidate mix for a vehicle: a blend
// of mandatory and optional campaigns, every fifth one VIN-targeted at the
// vehicle and every seventh targeted at some other VIN so the filter has
// members to reject.
func benchmarkCampaigns(vehicle *domain.Vehicle, n int) []domain.ServiceCampaign {
	campaigns := make([]domain.ServiceCampaign, 0, n)
	base := time.Now().Add(-time.Duration(n) * time.Hour)

	for i := 0; i < n; i++ {
		c := helpers.CampaignForVehicle(vehicle, func(c *domain.ServiceCampaign) {
			c.Article = fmt.Sprintf("SC-BENCH-%04d", i)
			c.IsMandatory = i%2 == 0
			c.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		})
		switch {
		case i%5 == 0:
			c.TargetVINs = []string{vehicle.VIN}
		case i%7 == 0:
			c.TargetVINs = []string{"WDB0000000X999999"}
		}
		campaigns = append(campaigns, *c)
	}

	return campaigns
}

// benchmarkEntries builds warehouse rows joined with part fields, with a mix
// of healthy and low stock balances.
func benchmarkEntries(n int) []domain.WarehouseEntryWithPart {
	entries := make([]domain.WarehouseEntryWithPart, 0, n)

	for i := 0; i < n; i++ {
		quantity := int32(10 + (i*7)%90)
		if i%10 == 0 {
			quantity = 2
		}
		entries = append(entries, domain.WarehouseEntryWithPart{
			WarehouseEntry: domain.WarehouseEntry{
				ID:            uuid.New(),
				PartID:        uuid.New(),
				Quantity:      quantity,
				MinStockLevel: 5,
				MaxStockLevel: 100,
				Location:      fmt.Sprintf("A-%02d-%02d", i%20, i%5),
				CreatedAt:     time.Now(),
				UpdatedAt:     time.Now(),
			},
			PartArticle: fmt.Sprintf("BENCH-%04d", i),
			PartName:    fmt.Sprintf("Benchmark Part %d", i),
		})
	}

	return entries
}

// benchmarkPart builds a catalog part with a unique article
func benchmarkPart(i int) *domain.Part {
	return &domain.Part{
		ID:            uuid.New(),
		Article:       fmt.Sprintf("BENCH-DB-%04d", i),
		Name:          fmt.Sprintf("Benchmark Part %d", i),
		PurchasePrice: decimal.NewFromFloat(45.90),
	}
}
