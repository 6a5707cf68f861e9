package service

import (
	"context"
	"strings"

	"greenhire-backend/internal/domain"
	"greenhire-backend/internal/logger"
	"greenhire-backend/internal/repository"
)

type profileService struct {
	userRepo    repository.UserRepository
	machineRepo repository.MachineRepository
	bookingRepo repository.BookingRepository
}

func NewProfileService(
	userRepo repository.UserRepository,
	machineRepo repository.MachineRepository,
	bookingRepo repository.BookingRepository,
) ProfileService {
	return &profileService{
		userRepo:    userRepo,
		machineRepo: machineRepo,
		bookingRepo: bookingRepo,
	}
}

// LoadProfile reads the caller's profile document. ErrNotFound means no
// profile was provisioned for this identity; the sign-in flow treats that
// as a hard failure rather than silently creating one.
func (s *profileService) LoadProfile(ctx context.Context, uid string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if user.Role == "" {
		user.Role = domain.RoleClient
	}
	return user, nil
}

func (s *profileService) LoadOwnerOverview(ctx context.Context, uid string) (*OwnerOverview, error) {
	machineCount, err := s.machineRepo.CountByOwner(ctx, uid)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListByOwner(ctx, uid)
	if err != nil {
		return nil, err
	}

	return &OwnerOverview{
		MachineCount: machineCount,
		BookingCount: len(bookings),
		Bookings:     bookings,
	}, nil
}

func (s *profileService) LoadClientOverview(ctx context.Context, uid string) (*ClientOverview, error) {
	bookings, err := s.bookingRepo.ListByClient(ctx, uid)
	if err != nil {
		return nil, err
	}
	return &ClientOverview{Bookings: bookings}, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, uid, firstName, lastName, phone string) (*domain.User, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	phone = strings.TrimSpace(phone)

	if firstName == "" {
		return nil, &domain.ValidationError{Field: "firstName", Reason: "must not be empty"}
	}
	if lastName == "" {
		return nil, &domain.ValidationError{Field: "lastName", Reason: "must not be empty"}
	}
	if phone == "" {
		return nil, &domain.ValidationError{Field: "phone", Reason: "must not be empty"}
	}

	logger.EnterMethod("profileService.UpdateProfile", "uid", uid)
	user, err := s.userRepo.UpdateContactFields(ctx, uid, firstName, lastName, phone)
	if err != nil {
		logger.ExitMethodWithError("profileService.UpdateProfile", err, "uid", uid)
		return nil, err
	}
	logger.ExitMethod("profileService.UpdateProfile", "uid", uid)
	return user, nil
}
