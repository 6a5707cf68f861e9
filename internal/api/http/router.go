package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"greenhire-backend/internal/security"
)

// RouterConfig bundles the handlers and middleware dependencies for the API.
type RouterConfig struct {
	Verifier       security.TokenVerifier
	AuthHandler    *AuthHandler
	MachineHandler *MachineHandler
	BookingHandler *BookingHandler
	ProfileHandler *ProfileHandler
	ImageHandler   *ImageHandler // nil unless the mock storage backend is active
}

// NewRouter wires all API routes. Machine listing and signup are public;
// everything else requires a verified ID token.
func NewRouter(cfg RouterConfig) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/signup", cfg.AuthHandler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/machines", cfg.MachineHandler.ListMachines).Methods(http.MethodGet)
	if cfg.ImageHandler != nil {
		api.HandleFunc("/images/{key}", cfg.ImageHandler.Download).Methods(http.MethodGet)
	}

	// Authenticated routes
	authed := api.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(cfg.Verifier))
	authed.HandleFunc("/machines", cfg.MachineHandler.CreateMachine).Methods(http.MethodPost)
	authed.HandleFunc("/bookings", cfg.BookingHandler.CreateBooking).Methods(http.MethodPost)
	authed.HandleFunc("/bookings", cfg.BookingHandler.ListMine).Methods(http.MethodGet)
	authed.HandleFunc("/bookings/incoming", cfg.BookingHandler.ListIncoming).Methods(http.MethodGet)
	authed.HandleFunc("/bookings/{id}/approve", cfg.BookingHandler.Approve).Methods(http.MethodPost)
	authed.HandleFunc("/bookings/{id}/reject", cfg.BookingHandler.Reject).Methods(http.MethodPost)
	authed.HandleFunc("/bookings/{id}/cancel", cfg.BookingHandler.Cancel).Methods(http.MethodPost)
	authed.HandleFunc("/profile", cfg.ProfileHandler.GetProfile).Methods(http.MethodGet)
	authed.HandleFunc("/profile", cfg.ProfileHandler.UpdateProfile).Methods(http.MethodPatch)
	authed.HandleFunc("/profile/overview", cfg.ProfileHandler.GetOverview).Methods(http.MethodGet)

	return r
}
