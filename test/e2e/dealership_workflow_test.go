//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/avdeev/autodealer-be/internal/adapters/db"
	redis_a "github.com/avdeev/autodealer-be/internal/adapters/redis_adapter"
	"github.com/avdeev/autodealer-be/internal/core/domain"
	"github.com/avdeev/autodealer-be/internal/core/services"
	"github.com/avdeev/autodealer-be/internal/handlers"
	"github.com/avdeev/autodealer-be/test/helpers"
)

// DealershipE2ESuite runs the warehouse and campaign workflows against a real
// PostgreSQL container with the full handler stack in between.
type DealershipE2ESuite struct {
	suite.Suite
	server    *httptest.Server
	client    *http.Client
	baseURL   string
	testDB    *helpers.TestDB
	testRedis *helpers.TestRedis
}

func (s *DealershipE2ESuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	s.testRedis = helpers.SetupTestRedis(s.T())

	s.server = s.startTestServer()
	s.client = &http.Client{Timeout: 10 * time.Second}
	s.baseURL = s.server.URL + "/api/v1"
}

func (s *DealershipE2ESuite) TearDownSuite() {
	s.server.Close()
}

func (s *DealershipE2ESuite) TestStockLedgerLifecycle() {
	part := helpers.CreateTestPart(func(p *domain.Part) {
		p.Article = "E2E-BRK-001"
		p.Name = "Brake Disc Rear"
	})
	helpers.SeedPart(s.T(), s.testDB.PgxPool, part)

	// 1. Create the ledger row for the part
	minLevel := int32(5)
	createReq := map[string]interface{}{
		"part_id":         part.ID.String(),
		"quantity":        20,
		"min_stock_level": minLevel,
		"location":        "E2E-A-01",
	}

	resp := s.makeRequest("POST", "/warehouse", createReq)
	s.Equal(http.StatusCreated, resp.StatusCode)

	var entry map[string]interface{}
	s.decodeResponse(resp, &entry)
	entryID := entry["id"].(string)
	s.NotEmpty(entryID)

	// 2. A second row for the same part is a conflict
	resp = s.makeRequest("POST", "/warehouse", createReq)
	s.Equal(http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// 3. Retrieve by ID and by article
	resp = s.makeRequest("GET", fmt.Sprintf("/warehouse/%s", entryID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var withPart map[string]interface{}
	s.decodeResponse(resp, &withPart)
	s.Equal("E2E-BRK-001", withPart["part_article"])
	s.Equal(float64(20), withPart["quantity"])

	resp = s.makeRequest("GET", "/warehouse/article/E2E-BRK-001", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// 4. Outgoing movement decrements the balance
	resp = s.makeRequest("POST", fmt.Sprintf("/warehouse/part/%s/movements", part.ID), map[string]interface{}{
		"quantity":      15,
		"movement_type": "outgoing",
	})
	s.Equal(http.StatusOK, resp.StatusCode)
	s.decodeResponse(resp, &entry)
	s.Equal(float64(5), entry["quantity"])

	// 5. Taking more than is on hand is rejected without changing the row
	resp = s.makeRequest("POST", fmt.Sprintf("/warehouse/part/%s/movements", part.ID), map[string]interface{}{
		"quantity":      100,
		"movement_type": "outgoing",
	})
	s.Equal(http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = s.makeRequest("GET", fmt.Sprintf("/warehouse/part/%s", part.ID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.decodeResponse(resp, &entry)
	s.Equal(float64(5), entry["quantity"])

	// 6. At quantity == min level the row shows up in the low stock report
	resp = s.makeRequest("GET", "/warehouse/low-stock", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var lowStock map[string]interface{}
	s.decodeResponse(resp, &lowStock)
	s.lowStockContains(lowStock, "E2E-BRK-001")

	// 7. Incoming movement restocks
	resp = s.makeRequest("POST", fmt.Sprintf("/warehouse/part/%s/movements", part.ID), map[string]interface{}{
		"quantity":      30,
		"movement_type": "incoming",
	})
	s.Equal(http.StatusOK, resp.StatusCode)
	s.decodeResponse(resp, &entry)
	s.Equal(float64(35), entry["quantity"])

	// 8. Valuation reflects the seeded stock
	resp = s.makeRequest("GET", "/warehouse/total-value", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var valuation map[string]interface{}
	s.decodeResponse(resp, &valuation)
	s.Contains(valuation, "total_value")

	// 9. Excel export streams a workbook
	resp = s.makeRequest("GET", "/export/excel", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))
	resp.Body.Close()

	// 10. Delete and verify it is gone
	resp = s.makeRequest("DELETE", fmt.Sprintf("/warehouse/%s", entryID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.makeRequest("GET", fmt.Sprintf("/warehouse/%s", entryID), nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func (s *DealershipE2ESuite) TestCampaignEligibilityWorkflow() {
	vehicle := helpers.CreateTestVehicle(func(v *domain.Vehicle) {
		v.VIN = "WDBE2E0001A000001"
	})
	helpers.SeedVehicle(s.T(), s.testDB.PgxPool, vehicle)

	mandatory := helpers.CampaignForVehicle(vehicle, func(c *domain.ServiceCampaign) {
		c.Article = "SC-E2E-001"
		c.IsMandatory = true
		c.CreatedAt = time.Now().Add(-48 * time.Hour)
	})
	optional := helpers.CampaignForVehicle(vehicle, func(c *domain.ServiceCampaign) {
		c.Article = "SC-E2E-002"
		c.Name = "Infotainment Software Update"
		c.IsMandatory = false
	})
	// Campaign for an unrelated brand/model must never show up
	unrelated := helpers.CreateTestCampaign(func(c *domain.ServiceCampaign) {
		c.Article = "SC-E2E-OTHER"
	})
	helpers.SeedCampaign(s.T(), s.testDB.PgxPool, mandatory)
	helpers.SeedCampaign(s.T(), s.testDB.PgxPool, optional)
	helpers.SeedCampaign(s.T(), s.testDB.PgxPool, unrelated)

	// 1. Both applicable campaigns are pending, mandatory first
	pending := s.fetchPending(fmt.Sprintf("/vehicles/%s/campaigns/pending", vehicle.ID))
	s.Require().Len(pending, 2)
	s.Equal("SC-E2E-001", pending[0]["article"])
	s.Equal(true, pending[0]["is_mandatory"])
	s.Equal("SC-E2E-002", pending[1]["article"])

	// 2. VIN lookup resolves the same list
	pending = s.fetchPending(fmt.Sprintf("/vehicles/vin/%s/campaigns/pending", vehicle.VIN))
	s.Len(pending, 2)

	// 3. An unknown VIN yields an empty list, not an error
	pending = s.fetchPending("/vehicles/vin/WDBUNKNOWN0000000/campaigns/pending")
	s.Empty(pending)

	// 4. Completing the mandatory campaign removes it from the pending list
	resp := s.makeRequest("POST",
		fmt.Sprintf("/vehicles/%s/campaigns/%s/complete", vehicle.ID, mandatory.ID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var updated map[string]interface{}
	s.decodeResponse(resp, &updated)
	completed := updated["completed_service_campaigns"].([]interface{})
	s.Len(completed, 1)

	pending = s.fetchPending(fmt.Sprintf("/vehicles/%s/campaigns/pending", vehicle.ID))
	s.Require().Len(pending, 1)
	s.Equal("SC-E2E-002", pending[0]["article"])

	// 5. Completing it again is rejected
	resp = s.makeRequest("POST",
		fmt.Sprintf("/vehicles/%s/campaigns/%s/complete", vehicle.ID, mandatory.ID), nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// 6. The campaign lists the vehicle among its completions
	resp = s.makeRequest("GET", fmt.Sprintf("/campaigns/%s/vehicles", mandatory.ID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var byCampaign map[string]interface{}
	s.decodeResponse(resp, &byCampaign)
	s.Equal(float64(1), byCampaign["count"])

	// 7. Unmarking restores eligibility
	resp = s.makeRequest("DELETE",
		fmt.Sprintf("/vehicles/%s/campaigns/%s/complete", vehicle.ID, mandatory.ID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	pending = s.fetchPending(fmt.Sprintf("/vehicles/%s/campaigns/pending", vehicle.ID))
	s.Len(pending, 2)

	// 8. Clearing wipes the whole completed set
	resp = s.makeRequest("POST",
		fmt.Sprintf("/vehicles/%s/campaigns/%s/complete", vehicle.ID, optional.ID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.makeRequest("DELETE", fmt.Sprintf("/vehicles/%s/campaigns/completed", vehicle.ID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.decodeResponse(resp, &updated)
	s.Empty(updated["completed_service_campaigns"])
}

func (s *DealershipE2ESuite) TestValidationErrors() {
	resp := s.makeRequest("GET", "/warehouse/not-a-uuid", nil)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = s.makeRequest("POST", "/warehouse", map[string]interface{}{
		"quantity": 10,
	})
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = s.makeRequest("POST", fmt.Sprintf("/warehouse/part/%s/movements", uuid.New()), map[string]interface{}{
		"quantity":      -5,
		"movement_type": "incoming",
	})
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

// Helper methods

func (s *DealershipE2ESuite) startTestServer() *httptest.Server {
	logger := helpers.TestLogger()

	stockRepo := db.NewStockRepository(s.testDB.Database, logger)
	partCatalog := db.NewPartRepository(s.testDB.Database, logger)
	vehicleCatalog := db.NewVehicleRepository(s.testDB.Database, logger)
	campaignCatalog := db.NewCampaignRepository(s.testDB.Database, logger)

	stockService := services.NewStockService(stockRepo, partCatalog, logger)
	eligibilitySvc := services.NewEligibilityService(vehicleCatalog, campaignCatalog, logger)
	completionSvc := services.NewCompletionService(vehicleCatalog, campaignCatalog, logger)

	cache := redis_a.NewCache(s.testRedis.Client, time.Minute, logger)
	invalidator := redis_a.NewInvalidator(cache, logger)

	warehouseHandler := handlers.NewWarehouseHandler(stockService, invalidator, logger)
	campaignHandler := handlers.NewCampaignHandler(eligibilitySvc, completionSvc, invalidator, logger)
	exportHandler := handlers.NewExportHandler(stockService, cache, nil, logger)

	const apiV1 = "/api/v1"
	mux := http.NewServeMux()

	mux.HandleFunc("POST "+apiV1+"/warehouse", warehouseHandler.CreateEntry)
	mux.HandleFunc("GET "+apiV1+"/warehouse", warehouseHandler.ListEntries)
	mux.HandleFunc("GET "+apiV1+"/warehouse/low-stock", warehouseHandler.LowStock)
	mux.HandleFunc("GET "+apiV1+"/warehouse/total-value", warehouseHandler.TotalValue)
	mux.HandleFunc("GET "+apiV1+"/warehouse/part/{partId}", warehouseHandler.GetEntryByPart)
	mux.HandleFunc("POST "+apiV1+"/warehouse/part/{partId}/movements", warehouseHandler.ApplyMovement)
	mux.HandleFunc("GET "+apiV1+"/warehouse/article/{article}", warehouseHandler.GetEntryByArticle)
	mux.HandleFunc("GET "+apiV1+"/warehouse/{id}", warehouseHandler.GetEntry)
	mux.HandleFunc("PUT "+apiV1+"/warehouse/{id}", warehouseHandler.UpdateEntry)
	mux.HandleFunc("DELETE "+apiV1+"/warehouse/{id}", warehouseHandler.DeleteEntry)

	mux.HandleFunc("GET "+apiV1+"/vehicles/{id}/campaigns/pending", campaignHandler.PendingForVehicle)
	mux.HandleFunc("GET "+apiV1+"/vehicles/vin/{vin}/campaigns/pending", campaignHandler.PendingForVIN)
	mux.HandleFunc("POST "+apiV1+"/vehicles/{id}/campaigns/{campaignId}/complete", campaignHandler.MarkCompleted)
	mux.HandleFunc("DELETE "+apiV1+"/vehicles/{id}/campaigns/{campaignId}/complete", campaignHandler.UnmarkCompleted)
	mux.HandleFunc("DELETE "+apiV1+"/vehicles/{id}/campaigns/completed", campaignHandler.ClearCompleted)
	mux.HandleFunc("GET "+apiV1+"/campaigns/{id}/vehicles", campaignHandler.VehiclesByCampaign)

	mux.HandleFunc("GET "+apiV1+"/export/excel", exportHandler.ExportExcel)
	mux.HandleFunc("GET "+apiV1+"/export/json", exportHandler.ExportJSON)

	return httptest.NewServer(mux)
}

func (s *DealershipE2ESuite) fetchPending(path string) []map[string]interface{} {
	resp := s.makeRequest("GET", path, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var body struct {
		Campaigns []map[string]interface{} `json:"campaigns"`
		Count     int                      `json:"count"`
	}
	s.decodeResponse(resp, &body)
	s.Equal(len(body.Campaigns), body.Count)

	return body.Campaigns
}

func (s *DealershipE2ESuite) lowStockContains(body map[string]interface{}, article string) {
	entries, ok := body["entries"].([]interface{})
	s.Require().True(ok, "low stock response has no entries")

	for _, e := range entries {
		if entry, ok := e.(map[string]interface{}); ok && entry["part_article"] == article {
			return
		}
	}
	s.Failf("low stock", "article %s not found in low stock report", article)
}

func (s *DealershipE2ESuite) makeRequest(method, path string, body interface{}) *http.Response {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		s.Require().NoError(err)
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reqBody)
	s.Require().NoError(err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	s.Require().NoError(err)

	return resp
}

func (s *DealershipE2ESuite) decodeResponse(resp *http.Response, v interface{}) {
	defer resp.Body.Close()
	err := json.NewDecoder(resp.Body).Decode(v)
	s.Require().NoError(err)
}

func TestDealershipE2ESuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E tests in short mode")
	}
	suite.Run(t, new(DealershipE2ESuite))
}
