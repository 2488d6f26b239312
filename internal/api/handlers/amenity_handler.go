package handlers

import (
	"net/http"

	"github.com/yemitan/staylodge/internal/application/services"
	"github.com/yemitan/staylodge/internal/domain/entities"
)

// AmenityHandler handles amenity-related HTTP requests
type AmenityHandler struct {
	facade *services.Facade
}

// NewAmenityHandler creates a new amenity handler
func NewAmenityHandler(facade *services.Facade) *AmenityHandler {
	return &AmenityHandler{facade: facade}
}

// CreateAmenity handles POST /api/v1/amenities
func (h *AmenityHandler) CreateAmenity(w http.ResponseWriter, r *http.Request) {
	var input entities.NewAmenityInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithAppError(w, err)
		return
	}

	amenity, err := h.facade.CreateAmenity(r.Context(), input)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, amenity)
}

// ListAmenities handles GET /api/v1/amenities
func (h *AmenityHandler) ListAmenities(w http.ResponseWriter, r *http.Request) {
	amenities, err := h.facade.ListAmenities(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, amenities)
}

// GetAmenity handles GET /api/v1/amenities/{id}
func (h *AmenityHandler) GetAmenity(w http.ResponseWriter, r *http.Request) {
	amenityID := r.PathValue("id")
	if amenityID == "" {
		respondWithError(w, http.StatusBadRequest, "amenity ID is required")
		return
	}

	amenity, err := h.facade.GetAmenity(r.Context(), amenityID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, amenity)
}

// UpdateAmenity handles PUT /api/v1/amenities/{id}
func (h *AmenityHandler) UpdateAmenity(w http.ResponseWriter, r *http.Request) {
	amenityID := r.PathValue("id")
	if amenityID == "" {
		respondWithError(w, http.StatusBadRequest, "amenity ID is required")
		return
	}

	var update entities.AmenityUpdate
	if err := decodeJSON(r, &update); err != nil {
		respondWithAppError(w, err)
		return
	}

	amenity, err := h.facade.UpdateAmenity(r.Context(), amenityID, update)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, amenity)
}
