package handlers

import (
	"net/http"

	"github.com/yemitan/staylodge/internal/application/services"
	"github.com/yemitan/staylodge/internal/domain/entities"
)

// PlaceHandler handles place-related HTTP requests
type PlaceHandler struct {
	facade *services.Facade
}

// NewPlaceHandler creates a new place handler
func NewPlaceHandler(facade *services.Facade) *PlaceHandler {
	return &PlaceHandler{facade: facade}
}

// placeDetail is the GET /places/{id} response shape: the place with
// its owner, amenities and reviews embedded.
type placeDetail struct {
	*entities.Place
	Owner     *ownerSummary      `json:"owner,omitempty"`
	Amenities []amenitySummary   `json:"amenities"`
	Reviews   []*entities.Review `json:"reviews"`
}

type ownerSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type amenitySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreatePlace handles POST /api/v1/places
func (h *PlaceHandler) CreatePlace(w http.ResponseWriter, r *http.Request) {
	var input entities.NewPlaceInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithAppError(w, err)
		return
	}

	place, err := h.facade.CreatePlace(r.Context(), input)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, place)
}

// ListPlaces handles GET /api/v1/places
func (h *PlaceHandler) ListPlaces(w http.ResponseWriter, r *http.Request) {
	places, err := h.facade.ListPlaces(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, places)
}

// GetPlace handles GET /api/v1/places/{id}
func (h *PlaceHandler) GetPlace(w http.ResponseWriter, r *http.Request) {
	placeID := r.PathValue("id")
	if placeID == "" {
		respondWithError(w, http.StatusBadRequest, "place ID is required")
		return
	}

	place, err := h.facade.GetPlace(r.Context(), placeID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	detail := placeDetail{
		Place:     place,
		Amenities: []amenitySummary{},
		Reviews:   []*entities.Review{},
	}

	if owner, err := h.facade.GetUser(r.Context(), place.OwnerID); err == nil {
		detail.Owner = &ownerSummary{
			ID:        owner.ID,
			FirstName: owner.FirstName,
			LastName:  owner.LastName,
			Email:     owner.Email,
		}
	}
	for _, amenityID := range place.AmenityIDs {
		if amenity, err := h.facade.GetAmenity(r.Context(), amenityID); err == nil {
			detail.Amenities = append(detail.Amenities, amenitySummary{
				ID:   amenity.ID,
				Name: amenity.Name,
			})
		}
	}
	if reviews, err := h.facade.ListReviewsByPlace(r.Context(), placeID); err == nil {
		detail.Reviews = reviews
	}

	respondWithJSON(w, http.StatusOK, detail)
}

// UpdatePlace handles PUT /api/v1/places/{id}
func (h *PlaceHandler) UpdatePlace(w http.ResponseWriter, r *http.Request) {
	placeID := r.PathValue("id")
	if placeID == "" {
		respondWithError(w, http.StatusBadRequest, "place ID is required")
		return
	}

	var update entities.PlaceUpdate
	if err := decodeJSON(r, &update); err != nil {
		respondWithAppError(w, err)
		return
	}

	place, err := h.facade.UpdatePlace(r.Context(), placeID, update)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, place)
}

// ListPlaceReviews handles GET /api/v1/places/{id}/reviews
func (h *PlaceHandler) ListPlaceReviews(w http.ResponseWriter, r *http.Request) {
	placeID := r.PathValue("id")
	if placeID == "" {
		respondWithError(w, http.StatusBadRequest, "place ID is required")
		return
	}

	reviews, err := h.facade.ListReviewsByPlace(r.Context(), placeID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, reviews)
}
