package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"greenhire-backend/internal/domain"
	"greenhire-backend/internal/service"
)

type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

type createBookingRequest struct {
	MachineID string `json:"machineId"`
	StartDate int64  `json:"startDate"` // epoch millis
	EndDate   int64  `json:"endDate"`   // epoch millis
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	caller := IdentityFromContext(r.Context())

	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.MachineID == "" {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "machineId is required"})
		return
	}

	booking, err := h.bookingSvc.CreateBooking(r.Context(), caller, req.MachineID, req.StartDate, req.EndDate)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, booking)
}

type transitionResponse struct {
	Booking        *domain.Booking      `json:"booking"`
	PreviousStatus domain.BookingStatus `json:"previousStatus"`
}

func (h *BookingHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, domain.BookingStatusApproved)
}

func (h *BookingHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, domain.BookingStatusRejected)
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, domain.BookingStatusCancelled)
}

func (h *BookingHandler) transition(w http.ResponseWriter, r *http.Request, target domain.BookingStatus) {
	caller := IdentityFromContext(r.Context())
	bookingID := mux.Vars(r)["id"]

	result, err := h.bookingSvc.Transition(r.Context(), caller, bookingID, target)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, transitionResponse{
		Booking:        result.Booking,
		PreviousStatus: result.PreviousStatus,
	})
}

// ListMine returns the caller's own bookings (client view), newest first.
func (h *BookingHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	caller := IdentityFromContext(r.Context())
	if caller == nil {
		respondError(w, domain.ErrNotAuthenticated)
		return
	}

	bookings, err := h.bookingSvc.ListForClient(r.Context(), caller.UID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, h.filtered(r, bookings))
}

// ListIncoming returns bookings against the caller's machines (owner view),
// newest first.
func (h *BookingHandler) ListIncoming(w http.ResponseWriter, r *http.Request) {
	caller := IdentityFromContext(r.Context())
	if caller == nil {
		respondError(w, domain.ErrNotAuthenticated)
		return
	}

	bookings, err := h.bookingSvc.ListForOwner(r.Context(), caller.UID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, h.filtered(r, bookings))
}

// filtered applies the optional ?status= query parameter. "All" or an
// absent parameter returns the list unchanged.
func (h *BookingHandler) filtered(r *http.Request, bookings []domain.Booking) []domain.Booking {
	status := r.URL.Query().Get("status")
	if status == "" {
		return bookings
	}
	return domain.FilterBookingsByStatus(bookings, status)
}
