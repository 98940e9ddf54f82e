// internal/handlers/campaigns.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/avdeev/autodealer-be/internal/core/domain"
	"github.com/avdeev/autodealer-be/internal/core/ports"
)

// CampaignHandler handles service-campaign HTTP requests: resolving the
// pending list for a vehicle and maintaining the completed set.
type CampaignHandler struct {
	eligibility ports.EligibilityService
	completion  ports.CompletionService
	invalidator ports.CacheInvalidator
	logger      *slog.Logger
}

// NewCampaignHandler creates a new campaign handler. A nil invalidator
// disables cache invalidation, leaving cached views to expire with the TTL.
func NewCampaignHandler(eligibility ports.EligibilityService, completion ports.CompletionService, invalidator ports.CacheInvalidator, logger *slog.Logger) *CampaignHandler {
	return &CampaignHandler{
		eligibility: eligibility,
		completion:  completion,
		invalidator: invalidator,
		logger:      logger.With(slog.String("handler", "campaigns")),
	}
}

// invalidateCompletionViews drops the cached views derived from a vehicle's
// completed set after it changes
func (h *CampaignHandler) invalidateCompletionViews(ctx context.Context, vehicleID uuid.UUID) {
	if h.invalidator != nil {
		h.invalidator.OnCompletionChange(ctx, vehicleID.String())
	}
}

// PendingForVehicle handles GET /api/v1/vehicles/{id}/campaigns/pending
func (h *CampaignHandler) PendingForVehicle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	vehicleID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid vehicle ID format")
		return
	}

	campaigns, err := h.eligibility.PendingForVehicle(ctx, vehicleID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to resolve pending campaigns",
			slog.String("vehicle_id", vehicleID.String()),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to resolve pending campaigns")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"campaigns": campaigns,
		"count":     len(campaigns),
	})
}

// PendingForVIN handles GET /api/v1/vehicles/vin/{vin}/campaigns/pending
func (h *CampaignHandler) PendingForVIN(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	vin := r.PathValue("vin")
	if vin == "" {
		h.respondError(w, http.StatusBadRequest, "VIN is required")
		return
	}

	campaigns, err := h.eligibility.PendingForVIN(ctx, vin)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to resolve pending campaigns",
			slog.String("vin", vin),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to resolve pending campaigns")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"campaigns": campaigns,
		"count":     len(campaigns),
	})
}

// MarkCompleted handles POST /api/v1/vehicles/{id}/campaigns/{campaignId}/complete
func (h *CampaignHandler) MarkCompleted(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	vehicleID, campaignID, ok := h.parsePairIDs(w, r)
	if !ok {
		return
	}

	vehicle, err := h.completion.MarkCompleted(ctx, vehicleID, campaignID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to mark campaign completed",
			slog.String("vehicle_id", vehicleID.String()),
			slog.String("campaign_id", campaignID.String()),
			slog.String("error", err.Error()))
		h.respondCampaignError(w, err, "Vehicle or campaign not found, or campaign already completed")
		return
	}

	h.invalidateCompletionViews(ctx, vehicleID)
	h.respondJSON(w, http.StatusOK, vehicle)
}

// UnmarkCompleted handles DELETE /api/v1/vehicles/{id}/campaigns/{campaignId}/complete
func (h *CampaignHandler) UnmarkCompleted(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	vehicleID, campaignID, ok := h.parsePairIDs(w, r)
	if !ok {
		return
	}

	vehicle, err := h.completion.UnmarkCompleted(ctx, vehicleID, campaignID)
	if err != nil {
		h.respondCampaignError(w, err, "Vehicle not found")
		return
	}

	h.invalidateCompletionViews(ctx, vehicleID)
	h.respondJSON(w, http.StatusOK, vehicle)
}

// ClearCompleted handles DELETE /api/v1/vehicles/{id}/campaigns/completed
func (h *CampaignHandler) ClearCompleted(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	vehicleID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid vehicle ID format")
		return
	}

	vehicle, err := h.completion.ClearCompleted(ctx, vehicleID)
	if err != nil {
		h.respondCampaignError(w, err, "Vehicle not found")
		return
	}

	h.logger.InfoContext(ctx, "completed campaigns cleared",
		slog.String("vehicle_id", vehicleID.String()))

	h.invalidateCompletionViews(ctx, vehicleID)
	h.respondJSON(w, http.StatusOK, vehicle)
}

// VehiclesByCampaign handles GET /api/v1/campaigns/{id}/vehicles
func (h *CampaignHandler) VehiclesByCampaign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	campaignID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid campaign ID format")
		return
	}

	vehicles, err := h.completion.VehiclesByCompletedCampaign(ctx, campaignID)
	if err != nil {
		h.respondCampaignError(w, err, "Campaign not found")
		return
	}

	if vehicles == nil {
		vehicles = []domain.Vehicle{}
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"vehicles": vehicles,
		"count":    len(vehicles),
	})
}

func (h *CampaignHandler) parsePairIDs(w http.ResponseWriter, r *http.Request) (vehicleID, campaignID uuid.UUID, ok bool) {
	vehicleID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid vehicle ID format")
		return uuid.Nil, uuid.Nil, false
	}

	campaignID, err = uuid.Parse(r.PathValue("campaignId"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid campaign ID format")
		return uuid.Nil, uuid.Nil, false
	}

	return vehicleID, campaignID, true
}

func (h *CampaignHandler) respondCampaignError(w http.ResponseWriter, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		h.respondError(w, http.StatusNotFound, notFoundMsg)
	default:
		h.respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Helper methods

func (h *CampaignHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *CampaignHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
