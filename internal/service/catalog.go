package service

import (
	"context"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"greenhire-backend/internal/domain"
	"greenhire-backend/internal/logger"
	"greenhire-backend/internal/repository"
	"greenhire-backend/internal/storage"
)

type catalogService struct {
	machineRepo repository.MachineRepository
	store       storage.StorageInterface
}

func NewCatalogService(machineRepo repository.MachineRepository, store storage.StorageInterface) CatalogService {
	return &catalogService{
		machineRepo: machineRepo,
		store:       store,
	}
}

func (s *catalogService) CreateMachine(ctx context.Context, caller *domain.Identity, input CreateMachineInput) (*domain.Machine, error) {
	if caller == nil {
		return nil, domain.ErrNotAuthenticated
	}
	logger.EnterMethod("catalogService.CreateMachine", "ownerID", caller.UID, "name", input.Name)

	name := strings.TrimSpace(input.Name)
	machineType := strings.TrimSpace(input.MachineType)
	description := strings.TrimSpace(input.Description)
	priceStr := strings.TrimSpace(input.PricePerDay)
	firstName := strings.TrimSpace(input.OwnerFirstName)
	lastName := strings.TrimSpace(input.OwnerLastName)
	email := strings.TrimSpace(input.OwnerEmail)
	phone := strings.TrimSpace(input.OwnerPhone)

	required := []struct {
		field string
		value string
	}{
		{"name", name},
		{"machineType", machineType},
		{"description", description},
		{"pricePerDay", priceStr},
		{"firstName", firstName},
		{"lastName", lastName},
		{"email", email},
		{"phone", phone},
	}
	for _, f := range required {
		if f.value == "" {
			return nil, &domain.ValidationError{Field: f.field, Reason: "must not be empty"}
		}
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || price <= 0 {
		return nil, &domain.ValidationError{Field: "pricePerDay", Reason: "must be a positive number"}
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return nil, &domain.ValidationError{Field: "email", Reason: "must be a valid email address"}
	}

	if len(input.ImageBytes) == 0 {
		return nil, &domain.ValidationError{Field: "image", Reason: "an image is required"}
	}

	// Upload strictly precedes the metadata write; a failed upload means no
	// machine record at all.
	key := storage.ImageKey(time.Now(), input.ImageFilename)
	if err := s.store.Upload(ctx, key, input.ImageMimeType, input.ImageBytes); err != nil {
		logger.ExitMethodWithError("catalogService.CreateMachine", err, "key", key)
		return nil, &domain.UploadError{Key: key, Err: err}
	}

	machine := &domain.Machine{
		Name:           name,
		MachineType:    machineType,
		Description:    description,
		PricePerDay:    price,
		ImageURL:       s.store.PublicURL(key),
		OwnerFirstName: firstName,
		OwnerLastName:  lastName,
		OwnerEmail:     email,
		OwnerPhone:     phone,
		OwnerID:        caller.UID,
	}

	if err := s.machineRepo.Create(ctx, machine); err != nil {
		// The uploaded object is now unreferenced; the nightly sweep
		// removes it once it ages past the grace period.
		logger.Warn("Machine metadata write failed after upload; image orphaned", "key", key, "error", err)
		logger.ExitMethodWithError("catalogService.CreateMachine", err, "key", key)
		return nil, err
	}

	logger.ExitMethod("catalogService.CreateMachine", "machineID", machine.ID)
	return machine, nil
}

func (s *catalogService) ListMachines(ctx context.Context) ([]domain.Machine, error) {
	return s.machineRepo.List(ctx)
}

func (s *catalogService) ResolveOwnerAndPrice(ctx context.Context, machineID string) (*MachineSnapshot, error) {
	machine, err := s.machineRepo.GetByID(ctx, machineID)
	if err != nil {
		return nil, err
	}
	return &MachineSnapshot{
		OwnerID:     machine.OwnerID,
		OwnerEmail:  machine.OwnerEmail,
		PricePerDay: machine.PricePerDay,
		Name:        machine.Name,
		ImageURL:    machine.ImageURL,
	}, nil
}
