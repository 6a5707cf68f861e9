package http

import (
	"errors"
	"io"
	"net/http"

	"greenhire-backend/internal/service"
)

// maxImageUploadBytes caps machine image uploads at 10 MiB.
const maxImageUploadBytes = 10 << 20

// multipartFormSlack is headroom on top of the image cap for the text form
// fields and multipart framing.
const multipartFormSlack = 1 << 20

type MachineHandler struct {
	catalogSvc service.CatalogService
}

func NewMachineHandler(catalogSvc service.CatalogService) *MachineHandler {
	return &MachineHandler{catalogSvc: catalogSvc}
}

// CreateMachine accepts a multipart form with the listing fields and an
// "image" file part. Uploads over the size cap are rejected outright, never
// truncated.
func (h *MachineHandler) CreateMachine(w http.ResponseWriter, r *http.Request) {
	caller := IdentityFromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxImageUploadBytes+multipartFormSlack)
	if err := r.ParseMultipartForm(maxImageUploadBytes); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			respondJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "image exceeds the 10 MiB limit"})
			return
		}
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid multipart form"})
		return
	}

	input := service.CreateMachineInput{
		Name:           r.FormValue("name"),
		MachineType:    r.FormValue("machineType"),
		Description:    r.FormValue("description"),
		PricePerDay:    r.FormValue("pricePerDay"),
		OwnerFirstName: r.FormValue("firstName"),
		OwnerLastName:  r.FormValue("lastName"),
		OwnerEmail:     r.FormValue("email"),
		OwnerPhone:     r.FormValue("phone"),
	}

	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		// Read one byte past the cap so an at-the-limit file is
		// distinguishable from an oversized one.
		data, readErr := io.ReadAll(io.LimitReader(file, maxImageUploadBytes+1))
		if readErr != nil {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "failed to read image"})
			return
		}
		if len(data) > maxImageUploadBytes {
			respondJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "image exceeds the 10 MiB limit"})
			return
		}
		input.ImageBytes = data
		input.ImageFilename = header.Filename
		input.ImageMimeType = header.Header.Get("Content-Type")
	}

	machine, err := h.catalogSvc.CreateMachine(r.Context(), caller, input)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, machine)
}

func (h *MachineHandler) ListMachines(w http.ResponseWriter, r *http.Request) {
	machines, err := h.catalogSvc.ListMachines(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, machines)
}
