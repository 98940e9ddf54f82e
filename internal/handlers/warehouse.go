// internal/handlers/warehouse.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/avdeev/autodealer-be/internal/core/domain"
	"github.com/avdeev/autodealer-be/internal/core/ports"
)

// WarehouseHandler handles warehouse stock HTTP requests
type WarehouseHandler struct {
	service     ports.StockService
	invalidator ports.CacheInvalidator
	logger      *slog.Logger
}

// NewWarehouseHandler creates a new warehouse handler. A nil invalidator
// disables cache invalidation, leaving cached views to expire with the TTL.
func NewWarehouseHandler(service ports.StockService, invalidator ports.CacheInvalidator, logger *slog.Logger) *WarehouseHandler {
	return &WarehouseHandler{
		service:     service,
		invalidator: invalidator,
		logger:      logger.With(slog.String("handler", "warehouse")),
	}
}

// invalidateStockViews drops the ledger-derived cached views after a write
func (h *WarehouseHandler) invalidateStockViews(ctx context.Context) {
	if h.invalidator != nil {
		h.invalidator.OnStockChange(ctx)
	}
}

// CreateEntry handles POST /api/v1/warehouse
func (h *WarehouseHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	params, err := req.ToParams()
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.service.CreateEntry(ctx, params)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create warehouse entry",
			slog.String("part_id", req.PartID),
			slog.String("error", err.Error()))
		h.respondStockError(w, err, "Part not found")
		return
	}

	h.logger.InfoContext(ctx, "warehouse entry created",
		slog.String("entry_id", entry.ID.String()),
		slog.String("part_id", entry.PartID.String()))

	h.invalidateStockViews(ctx)
	h.respondJSON(w, http.StatusCreated, entry)
}

// GetEntry handles GET /api/v1/warehouse/{id}
func (h *WarehouseHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid entry ID format")
		return
	}

	entry, err := h.service.GetEntry(ctx, id)
	if err != nil {
		h.respondStockError(w, err, "Warehouse entry not found")
		return
	}

	h.respondJSON(w, http.StatusOK, entry)
}

// GetEntryByPart handles GET /api/v1/warehouse/part/{partId}
func (h *WarehouseHandler) GetEntryByPart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	partID, err := uuid.Parse(r.PathValue("partId"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid part ID format")
		return
	}

	entry, err := h.service.GetEntryByPart(ctx, partID)
	if err != nil {
		h.respondStockError(w, err, "No warehouse entry for part")
		return
	}

	h.respondJSON(w, http.StatusOK, entry)
}

// GetEntryByArticle handles GET /api/v1/warehouse/article/{article}
func (h *WarehouseHandler) GetEntryByArticle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	article := r.PathValue("article")
	if article == "" {
		h.respondError(w, http.StatusBadRequest, "Article is required")
		return
	}

	entry, err := h.service.GetEntryByArticle(ctx, article)
	if err != nil {
		h.respondStockError(w, err, "No warehouse entry for article")
		return
	}

	h.respondJSON(w, http.StatusOK, entry)
}

// ListEntries handles GET /api/v1/warehouse
func (h *WarehouseHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entries, err := h.service.ListEntries(ctx, h.parseListParams(r))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list warehouse entries",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to list warehouse entries")
		return
	}

	if entries == nil {
		entries = []domain.WarehouseEntryWithPart{}
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"entries": entries,
		"count":   len(entries),
	})
}

// UpdateEntry handles PUT /api/v1/warehouse/{id}
func (h *WarehouseHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid entry ID format")
		return
	}

	var req UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry, err := h.service.UpdateEntry(ctx, id, req.ToPatch())
	if err != nil {
		h.respondStockError(w, err, "Warehouse entry not found")
		return
	}

	h.logger.InfoContext(ctx, "warehouse entry updated",
		slog.String("entry_id", id.String()))

	h.invalidateStockViews(ctx)
	h.respondJSON(w, http.StatusOK, entry)
}

// DeleteEntry handles DELETE /api/v1/warehouse/{id}
func (h *WarehouseHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid entry ID format")
		return
	}

	if err := h.service.DeleteEntry(ctx, id); err != nil {
		h.respondStockError(w, err, "Warehouse entry not found")
		return
	}

	h.logger.InfoContext(ctx, "warehouse entry deleted",
		slog.String("entry_id", id.String()))

	h.invalidateStockViews(ctx)
	h.respondJSON(w, http.StatusOK, map[string]string{
		"message":  "Warehouse entry deleted successfully",
		"entry_id": id.String(),
	})
}

// ApplyMovement handles POST /api/v1/warehouse/part/{partId}/movements
func (h *WarehouseHandler) ApplyMovement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	partID, err := uuid.Parse(r.PathValue("partId"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid part ID format")
		return
	}

	var req MovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	movement, err := req.ToDomain()
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.service.ApplyMovement(ctx, partID, movement)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to apply stock movement",
			slog.String("part_id", partID.String()),
			slog.String("movement_type", string(movement.Type)),
			slog.Int("quantity", int(movement.Quantity)),
			slog.String("error", err.Error()))
		h.respondStockError(w, err, "No warehouse entry for part")
		return
	}

	h.logger.InfoContext(ctx, "stock movement applied",
		slog.String("part_id", partID.String()),
		slog.String("movement_type", string(movement.Type)),
		slog.Int("quantity", int(movement.Quantity)),
		slog.Int("new_quantity", int(entry.Quantity)))

	h.invalidateStockViews(ctx)
	h.respondJSON(w, http.StatusOK, entry)
}

// LowStock handles GET /api/v1/warehouse/low-stock
func (h *WarehouseHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entries, err := h.service.LowStock(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list low stock entries",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to list low stock entries")
		return
	}

	if entries == nil {
		entries = []domain.WarehouseEntryWithPart{}
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"entries": entries,
		"count":   len(entries),
	})
}

// TotalValue handles GET /api/v1/warehouse/total-value
func (h *WarehouseHandler) TotalValue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	total, err := h.service.TotalValue(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to compute total stock value",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to compute total stock value")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"total_value": total,
	})
}

// parseListParams parses query parameters for listing warehouse entries
func (h *WarehouseHandler) parseListParams(r *http.Request) ports.StockQueryParams {
	params := ports.StockQueryParams{
		SortBy:    "article",
		SortOrder: "asc",
	}

	params.Location = r.URL.Query().Get("location")

	if sortBy := r.URL.Query().Get("sort"); sortBy != "" {
		params.SortBy = sortBy
	}
	if order := r.URL.Query().Get("order"); order == "asc" || order == "desc" {
		params.SortOrder = order
	}

	if limit := r.URL.Query().Get("limit"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil && l > 0 {
			if l > 500 {
				l = 500
			}
			params.Limit = l
		}
	}
	if offset := r.URL.Query().Get("offset"); offset != "" {
		if o, err := strconv.Atoi(offset); err == nil && o > 0 {
			params.Offset = o
		}
	}

	return params
}

// respondStockError maps stock domain errors to HTTP responses. Insufficient
// stock and duplicate entries are conflicts, never not-found: the row exists,
// the operation just cannot proceed.
func (h *WarehouseHandler) respondStockError(w http.ResponseWriter, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInsufficientStock):
		h.respondError(w, http.StatusConflict, "Insufficient stock for outgoing movement")
	case errors.Is(err, domain.ErrConflict):
		h.respondError(w, http.StatusConflict, "Warehouse entry already exists for this part")
	case errors.Is(err, domain.ErrNotFound):
		h.respondError(w, http.StatusNotFound, notFoundMsg)
	default:
		h.respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Helper methods

func (h *WarehouseHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *WarehouseHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// Request/Response DTOs

// CreateEntryRequest represents the request body for creating a warehouse entry
type CreateEntryRequest struct {
	PartID        string `json:"part_id"`
	Quantity      int32  `json:"quantity"`
	MinStockLevel *int32 `json:"min_stock_level,omitempty"`
	MaxStockLevel *int32 `json:"max_stock_level,omitempty"`
	Location      string `json:"location,omitempty"`
}

// ToParams validates the request and converts it to service parameters
func (r *CreateEntryRequest) ToParams() (ports.CreateEntryParams, error) {
	if r.PartID == "" {
		return ports.CreateEntryParams{}, fmt.Errorf("part_id is required")
	}

	partID, err := uuid.Parse(r.PartID)
	if err != nil {
		return ports.CreateEntryParams{}, fmt.Errorf("part_id is not a valid UUID")
	}

	return ports.CreateEntryParams{
		PartID:        partID,
		Quantity:      r.Quantity,
		MinStockLevel: r.MinStockLevel,
		MaxStockLevel: r.MaxStockLevel,
		Location:      r.Location,
	}, nil
}

// UpdateEntryRequest represents the request body for patching a warehouse
// entry. Absent fields are left unchanged.
type UpdateEntryRequest struct {
	Quantity      *int32  `json:"quantity,omitempty"`
	MinStockLevel *int32  `json:"min_stock_level,omitempty"`
	MaxStockLevel *int32  `json:"max_stock_level,omitempty"`
	Location      *string `json:"location,omitempty"`
}

// ToPatch converts the request to a repository patch
func (r *UpdateEntryRequest) ToPatch() ports.EntryPatch {
	return ports.EntryPatch{
		Quantity:      r.Quantity,
		MinStockLevel: r.MinStockLevel,
		MaxStockLevel: r.MaxStockLevel,
		Location:      r.Location,
	}
}

// MovementRequest represents the request body for a stock movement
type MovementRequest struct {
	Quantity     int32  `json:"quantity"`
	MovementType string `json:"movement_type"`
}

// ToDomain validates the request and converts it to a domain movement
func (r *MovementRequest) ToDomain() (domain.StockMovement, error) {
	movementType, err := domain.ParseMovementType(r.MovementType)
	if err != nil {
		return domain.StockMovement{}, err
	}

	movement := domain.StockMovement{
		Quantity: r.Quantity,
		Type:     movementType,
	}
	if err := movement.Validate(); err != nil {
		return domain.StockMovement{}, err
	}

	return movement, nil
}
