//go:build integration
// +build integration

package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/avdeev/autodealer-be/internal/adapters/db"
	"github.com/avdeev/autodealer-be/internal/core/domain"
	"github.com/avdeev/autodealer-be/internal/core/ports"
	"github.com/avdeev/autodealer-be/test/helpers"
)

type StockRepositorySuite struct {
	suite.Suite
	testDB *helpers.TestDB
	repo   ports.StockRepository
	ctx    context.Context
}

func (s *StockRepositorySuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	s.repo = db.NewStockRepository(s.testDB.Database, helpers.TestLogger())
	s.ctx = context.Background()
}

func (s *StockRepositorySuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)
}

// seedEntry inserts a part and its ledger row, returning both
func (s *StockRepositorySuite) seedEntry(article string, quantity int32) (*domain.WarehouseEntry, *domain.Part) {
	part := helpers.CreateTestPart(func(p *domain.Part) {
		p.Article = article
	})
	entry := helpers.CreateTestWarehouseEntry(func(e *domain.WarehouseEntry) {
		e.PartID = part.ID
		e.Quantity = quantity
	})
	helpers.SeedWarehouseEntry(s.T(), s.testDB.PgxPool, entry, part)
	return entry, part
}

func (s *StockRepositorySuite) TestSave() {
	part := helpers.CreateTestPart()
	helpers.SeedPart(s.T(), s.testDB.PgxPool, part)

	entry := helpers.CreateTestWarehouseEntry(func(e *domain.WarehouseEntry) {
		e.PartID = part.ID
	})

	err := s.repo.Save(s.ctx, entry)
	s.NoError(err)

	saved, err := s.repo.FindByPartID(s.ctx, part.ID)
	s.NoError(err)
	s.Require().NotNil(saved)
	s.Equal(entry.ID, saved.ID)
	s.Equal(entry.Quantity, saved.Quantity)
	s.Equal(entry.Location, saved.Location)
}

func (s *StockRepositorySuite) TestSave_DuplicatePartIsConflict() {
	_, part := s.seedEntry("DUP-001", 10)

	duplicate := helpers.CreateTestWarehouseEntry(func(e *domain.WarehouseEntry) {
		e.PartID = part.ID
	})

	err := s.repo.Save(s.ctx, duplicate)
	s.ErrorIs(err, domain.ErrConflict)
}

func (s *StockRepositorySuite) TestApplyMovement() {
	_, part := s.seedEntry("MOV-001", 10)

	s.Run("incoming_adds", func() {
		entry, err := s.repo.ApplyMovement(s.ctx, part.ID,
			domain.StockMovement{Quantity: 5, Type: domain.MovementIncoming})
		s.NoError(err)
		s.Require().NotNil(entry)
		s.Equal(int32(15), entry.Quantity)
	})

	s.Run("outgoing_subtracts", func() {
		entry, err := s.repo.ApplyMovement(s.ctx, part.ID,
			domain.StockMovement{Quantity: 12, Type: domain.MovementOutgoing})
		s.NoError(err)
		s.Require().NotNil(entry)
		s.Equal(int32(3), entry.Quantity)
	})

	s.Run("outgoing_beyond_balance_is_rejected", func() {
		_, err := s.repo.ApplyMovement(s.ctx, part.ID,
			domain.StockMovement{Quantity: 10, Type: domain.MovementOutgoing})
		s.ErrorIs(err, domain.ErrInsufficientStock)

		// The failed movement must not have touched the row
		entry, err := s.repo.FindByPartID(s.ctx, part.ID)
		s.NoError(err)
		s.Require().NotNil(entry)
		s.Equal(int32(3), entry.Quantity)
	})

	s.Run("adjustment_sets_absolute", func() {
		entry, err := s.repo.ApplyMovement(s.ctx, part.ID,
			domain.StockMovement{Quantity: 42, Type: domain.MovementAdjustment})
		s.NoError(err)
		s.Require().NotNil(entry)
		s.Equal(int32(42), entry.Quantity)
	})

	s.Run("unknown_part_is_not_found", func() {
		_, err := s.repo.ApplyMovement(s.ctx, uuid.New(),
			domain.StockMovement{Quantity: 1, Type: domain.MovementOutgoing})
		s.ErrorIs(err, domain.ErrNotFound)
	})
}

func (s *StockRepositorySuite) TestApplyMovement_ConcurrentOutgoing() {
	_, part := s.seedEntry("RACE-001", 10)

	// Ten concurrent withdrawals of 3 against a balance of 10: exactly
	// three can succeed, the guard must reject the rest.
	results := make(chan error, 10)
	for i := 0; i < 10; i++ {
		go func() {
			_, err := s.repo.ApplyMovement(context.Background(), part.ID,
				domain.StockMovement{Quantity: 3, Type: domain.MovementOutgoing})
			results <- err
		}()
	}

	succeeded := 0
	for i := 0; i < 10; i++ {
		if err := <-results; err == nil {
			succeeded++
		} else {
			s.ErrorIs(err, domain.ErrInsufficientStock)
		}
	}
	s.Equal(3, succeeded)

	entry, err := s.repo.FindByPartID(s.ctx, part.ID)
	s.NoError(err)
	s.Require().NotNil(entry)
	s.Equal(int32(1), entry.Quantity)
}

func (s *StockRepositorySuite) TestUpdateFields() {
	entry, _ := s.seedEntry("UPD-001", 10)

	newMin := int32(8)
	newLocation := "B-02-04"
	updated, err := s.repo.UpdateFields(s.ctx, entry.ID, ports.EntryPatch{
		MinStockLevel: &newMin,
		Location:      &newLocation,
	})
	s.NoError(err)
	s.Require().NotNil(updated)
	s.Equal(int32(8), updated.MinStockLevel)
	s.Equal("B-02-04", updated.Location)
	s.Equal(int32(10), updated.Quantity)

	missing, err := s.repo.UpdateFields(s.ctx, uuid.New(), ports.EntryPatch{MinStockLevel: &newMin})
	s.NoError(err)
	s.Nil(missing)
}

func (s *StockRepositorySuite) TestFindByArticle() {
	s.seedEntry("ART-001", 7)

	found, err := s.repo.FindByArticle(s.ctx, "ART-001")
	s.NoError(err)
	s.Require().NotNil(found)
	s.Equal("ART-001", found.PartArticle)
	s.Equal(int32(7), found.Quantity)

	missing, err := s.repo.FindByArticle(s.ctx, "NO-SUCH-ARTICLE")
	s.NoError(err)
	s.Nil(missing)
}

func (s *StockRepositorySuite) TestFindLowStock() {
	// min_stock_level defaults to 5 in the fixture
	s.seedEntry("LOW-001", 2)
	s.seedEntry("LOW-002", 5)
	s.seedEntry("OK-001", 50)

	entries, err := s.repo.FindLowStock(s.ctx)
	s.NoError(err)
	s.Require().Len(entries, 2)

	// Lowest balance first
	s.Equal("LOW-001", entries[0].PartArticle)
	s.Equal("LOW-002", entries[1].PartArticle)
}

func (s *StockRepositorySuite) TestTotalValue() {
	for i := 0; i < 3; i++ {
		part := helpers.CreateTestPart(func(p *domain.Part) {
			p.Article = fmt.Sprintf("VAL-%03d", i)
			p.PurchasePrice = decimal.NewFromInt(10)
		})
		entry := helpers.CreateTestWarehouseEntry(func(e *domain.WarehouseEntry) {
			e.PartID = part.ID
			e.Quantity = 4
		})
		helpers.SeedWarehouseEntry(s.T(), s.testDB.PgxPool, entry, part)
	}

	total, err := s.repo.TotalValue(s.ctx)
	s.NoError(err)
	s.True(decimal.NewFromInt(120).Equal(total), "expected 120, got %s", total)
}

func (s *StockRepositorySuite) TestTotalValue_EmptyLedgerIsZero() {
	total, err := s.repo.TotalValue(s.ctx)
	s.NoError(err)
	s.True(total.IsZero())
}

func (s *StockRepositorySuite) TestDelete() {
	entry, part := s.seedEntry("DEL-001", 10)

	deleted, err := s.repo.Delete(s.ctx, entry.ID)
	s.NoError(err)
	s.True(deleted)

	found, err := s.repo.FindByPartID(s.ctx, part.ID)
	s.NoError(err)
	s.Nil(found)

	deleted, err = s.repo.Delete(s.ctx, entry.ID)
	s.NoError(err)
	s.False(deleted)
}

func TestStockRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(StockRepositorySuite))
}
