//go:build integration
// +build integration

package db_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/avdeev/autodealer-be/internal/adapters/db"
	"github.com/avdeev/autodealer-be/internal/core/domain"
	"github.com/avdeev/autodealer-be/internal/core/ports"
	"github.com/avdeev/autodealer-be/test/helpers"
)

type VehicleRepositorySuite struct {
	suite.Suite
	testDB *helpers.TestDB
	repo   ports.VehicleCatalog
	ctx    context.Context
}

func (s *VehicleRepositorySuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	s.repo = db.NewVehicleRepository(s.testDB.Database, helpers.TestLogger())
	s.ctx = context.Background()
}

func (s *VehicleRepositorySuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)
}

func (s *VehicleRepositorySuite) seedVehicle(vin string) *domain.Vehicle {
	vehicle := helpers.CreateTestVehicle(func(v *domain.Vehicle) {
		v.VIN = vin
	})
	helpers.SeedVehicle(s.T(), s.testDB.PgxPool, vehicle)
	return vehicle
}

func (s *VehicleRepositorySuite) TestFindByVIN() {
	vehicle := s.seedVehicle("WDB2030461A700001")

	found, err := s.repo.FindByVIN(s.ctx, vehicle.VIN)
	s.NoError(err)
	s.Require().NotNil(found)
	s.Equal(vehicle.ID, found.ID)
	s.Empty(found.CompletedCampaigns)

	missing, err := s.repo.FindByVIN(s.ctx, "WDB0000000X000000")
	s.NoError(err)
	s.Nil(missing)
}

func (s *VehicleRepositorySuite) TestAddCompletedCampaign() {
	vehicle := s.seedVehicle("WDB2030461A700002")
	campaignID := uuid.New()

	s.Run("first_mark_appends", func() {
		updated, err := s.repo.AddCompletedCampaign(s.ctx, vehicle.ID, campaignID)
		s.NoError(err)
		s.Require().NotNil(updated)
		s.Equal([]uuid.UUID{campaignID}, updated.CompletedCampaigns)
	})

	s.Run("second_mark_matches_no_row", func() {
		updated, err := s.repo.AddCompletedCampaign(s.ctx, vehicle.ID, campaignID)
		s.NoError(err)
		s.Nil(updated)

		// The set must still hold a single copy
		found, err := s.repo.FindByID(s.ctx, vehicle.ID)
		s.NoError(err)
		s.Require().NotNil(found)
		s.Equal([]uuid.UUID{campaignID}, found.CompletedCampaigns)
	})

	s.Run("missing_vehicle_matches_no_row", func() {
		updated, err := s.repo.AddCompletedCampaign(s.ctx, uuid.New(), campaignID)
		s.NoError(err)
		s.Nil(updated)
	})
}

func (s *VehicleRepositorySuite) TestAddCompletedCampaign_ConcurrentMarks() {
	vehicle := s.seedVehicle("WDB2030461A700003")
	campaignID := uuid.New()

	// Concurrent marks of the same campaign: the guard lets exactly one
	// append through.
	results := make(chan *domain.Vehicle, 10)
	for i := 0; i < 10; i++ {
		go func() {
			updated, err := s.repo.AddCompletedCampaign(context.Background(), vehicle.ID, campaignID)
			s.NoError(err)
			results <- updated
		}()
	}

	appended := 0
	for i := 0; i < 10; i++ {
		if <-results != nil {
			appended++
		}
	}
	s.Equal(1, appended)

	found, err := s.repo.FindByID(s.ctx, vehicle.ID)
	s.NoError(err)
	s.Require().NotNil(found)
	s.Equal([]uuid.UUID{campaignID}, found.CompletedCampaigns)
}

func (s *VehicleRepositorySuite) TestRemoveCompletedCampaign() {
	vehicle := s.seedVehicle("WDB2030461A700004")
	campaignID := uuid.New()

	_, err := s.repo.AddCompletedCampaign(s.ctx, vehicle.ID, campaignID)
	s.NoError(err)

	s.Run("removes_member", func() {
		updated, err := s.repo.RemoveCompletedCampaign(s.ctx, vehicle.ID, campaignID)
		s.NoError(err)
		s.Require().NotNil(updated)
		s.Empty(updated.CompletedCampaigns)
	})

	s.Run("absent_member_is_a_noop", func() {
		updated, err := s.repo.RemoveCompletedCampaign(s.ctx, vehicle.ID, uuid.New())
		s.NoError(err)
		s.Require().NotNil(updated)
		s.Empty(updated.CompletedCampaigns)
	})

	s.Run("missing_vehicle_matches_no_row", func() {
		updated, err := s.repo.RemoveCompletedCampaign(s.ctx, uuid.New(), campaignID)
		s.NoError(err)
		s.Nil(updated)
	})
}

func (s *VehicleRepositorySuite) TestClearCompletedCampaigns() {
	vehicle := s.seedVehicle("WDB2030461A700005")

	for i := 0; i < 3; i++ {
		_, err := s.repo.AddCompletedCampaign(s.ctx, vehicle.ID, uuid.New())
		s.NoError(err)
	}

	updated, err := s.repo.ClearCompletedCampaigns(s.ctx, vehicle.ID)
	s.NoError(err)
	s.Require().NotNil(updated)
	s.Empty(updated.CompletedCampaigns)
}

func (s *VehicleRepositorySuite) TestFindByCompletedCampaign() {
	campaignID := uuid.New()

	// Three vehicles, two with the campaign completed, seeded oldest first
	var marked []*domain.Vehicle
	for i := 0; i < 3; i++ {
		vehicle := helpers.CreateTestVehicle(func(v *domain.Vehicle) {
			v.VIN = fmt.Sprintf("WDB2030461A70001%d", i)
			v.CreatedAt = time.Now().Add(time.Duration(i) * time.Minute)
		})
		helpers.SeedVehicle(s.T(), s.testDB.PgxPool, vehicle)

		if i != 1 {
			_, err := s.repo.AddCompletedCampaign(s.ctx, vehicle.ID, campaignID)
			s.NoError(err)
			marked = append(marked, vehicle)
		}
	}

	vehicles, err := s.repo.FindByCompletedCampaign(s.ctx, campaignID)
	s.NoError(err)
	s.Require().Len(vehicles, 2)

	// Newest first
	s.Equal(marked[1].ID, vehicles[0].ID)
	s.Equal(marked[0].ID, vehicles[1].ID)

	none, err := s.repo.FindByCompletedCampaign(s.ctx, uuid.New())
	s.NoError(err)
	s.Empty(none)
}

func TestVehicleRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(VehicleRepositorySuite))
}
