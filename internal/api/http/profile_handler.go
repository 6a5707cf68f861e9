package http

import (
	"encoding/json"
	"net/http"

	"greenhire-backend/internal/domain"
	"greenhire-backend/internal/service"
)

type ProfileHandler struct {
	profileSvc service.ProfileService
}

func NewProfileHandler(profileSvc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileSvc: profileSvc}
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	caller := IdentityFromContext(r.Context())
	if caller == nil {
		respondError(w, domain.ErrNotAuthenticated)
		return
	}

	user, err := h.profileSvc.LoadProfile(r.Context(), caller.UID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

type updateProfileRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	caller := IdentityFromContext(r.Context())
	if caller == nil {
		respondError(w, domain.ErrNotAuthenticated)
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	user, err := h.profileSvc.UpdateProfile(r.Context(), caller.UID, req.FirstName, req.LastName, req.PhoneNumber)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// GetOverview branches on the stored role: owners see machine and booking
// counts plus incoming bookings, clients see their own bookings.
func (h *ProfileHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	caller := IdentityFromContext(r.Context())
	if caller == nil {
		respondError(w, domain.ErrNotAuthenticated)
		return
	}

	user, err := h.profileSvc.LoadProfile(r.Context(), caller.UID)
	if err != nil {
		respondError(w, err)
		return
	}

	if user.Role == domain.RoleOwner {
		overview, err := h.profileSvc.LoadOwnerOverview(r.Context(), caller.UID)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, overview)
		return
	}

	overview, err := h.profileSvc.LoadClientOverview(r.Context(), caller.UID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, overview)
}
