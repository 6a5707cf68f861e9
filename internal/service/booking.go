package service

import (
	"context"
	"time"

	"greenhire-backend/internal/domain"
	"greenhire-backend/internal/logger"
	"greenhire-backend/internal/repository"
	"greenhire-backend/internal/utils"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	userRepo    repository.UserRepository
	catalogSvc  CatalogService
	emailSvc    EmailService
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	userRepo repository.UserRepository,
	catalogSvc CatalogService,
	emailSvc EmailService,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		catalogSvc:  catalogSvc,
		emailSvc:    emailSvc,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, caller *domain.Identity, machineID string, startMillis, endMillis int64) (*domain.Booking, error) {
	if caller == nil || caller.UID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	if startMillis >= endMillis {
		return nil, domain.ErrInvalidRange
	}
	logger.EnterMethod("bookingService.CreateBooking", "clientID", caller.UID, "machineID", machineID)

	// Owner and price come from the machine document, never from the
	// caller; a stale or forged owner ID cannot redirect the booking.
	snapshot, err := s.catalogSvc.ResolveOwnerAndPrice(ctx, machineID)
	if err != nil {
		logger.ExitMethodWithError("bookingService.CreateBooking", err, "machineID", machineID)
		return nil, err
	}

	booking := &domain.Booking{
		MachineID:       machineID,
		MachineName:     snapshot.Name,
		MachineImageURL: snapshot.ImageURL,
		ClientID:        caller.UID,
		ClientName:      s.clientName(ctx, caller),
		OwnerID:         snapshot.OwnerID,
		StartDate:       startMillis,
		EndDate:         endMillis,
		TotalPrice:      utils.TotalPrice(startMillis, endMillis, snapshot.PricePerDay),
		Status:          domain.BookingStatusPending,
		CreatedAt:       time.Now().UnixMilli(),
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		logger.ExitMethodWithError("bookingService.CreateBooking", err, "machineID", machineID)
		return nil, err
	}

	// Notify the owner; failures are logged by the email service and never
	// surfaced to the booking flow.
	_ = s.emailSvc.SendBookingRequestNotification(ctx, snapshot.OwnerEmail, booking.ClientName, booking.MachineName)

	logger.ExitMethod("bookingService.CreateBooking", "bookingID", booking.ID, "total", booking.TotalPrice)
	return booking, nil
}

func (s *bookingService) Transition(ctx context.Context, caller *domain.Identity, bookingID string, target domain.BookingStatus) (*BookingTransition, error) {
	if caller == nil || caller.UID == "" {
		return nil, domain.ErrNotAuthenticated
	}

	logger.EnterMethod("bookingService.Transition", "callerID", caller.UID, "bookingID", bookingID, "target", target)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		logger.ExitMethodWithError("bookingService.Transition", err, "bookingID", bookingID)
		return nil, err
	}

	// Only the machine's owner decides, and only the requesting client
	// cancels.
	switch target {
	case domain.BookingStatusApproved, domain.BookingStatusRejected:
		if booking.OwnerID != caller.UID {
			return nil, domain.ErrUnauthorized
		}
	case domain.BookingStatusCancelled:
		if booking.ClientID != caller.UID {
			return nil, domain.ErrUnauthorized
		}
	default:
		return nil, domain.ErrInvalidTransition
	}

	if !booking.Status.CanTransitionTo(target) {
		return nil, domain.ErrInvalidTransition
	}

	previous := booking.Status
	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, target); err != nil {
		// Stored status is unchanged; callers keep showing the prior state.
		logger.ExitMethodWithError("bookingService.Transition", err, "bookingID", bookingID, "target", target)
		return nil, err
	}
	booking.Status = target

	s.notifyTransition(ctx, booking, target)

	logger.ExitMethod("bookingService.Transition", "bookingID", bookingID, "from", previous, "to", target)
	return &BookingTransition{
		Booking:        booking,
		PreviousStatus: previous,
	}, nil
}

func (s *bookingService) ListForOwner(ctx context.Context, ownerID string) ([]domain.Booking, error) {
	return s.bookingRepo.ListByOwner(ctx, ownerID)
}

func (s *bookingService) ListForClient(ctx context.Context, clientID string) ([]domain.Booking, error) {
	return s.bookingRepo.ListByClient(ctx, clientID)
}

// clientName resolves the display name snapshot stamped onto the booking:
// the stored profile name when one exists, otherwise the identity
// provider's display name or email.
func (s *bookingService) clientName(ctx context.Context, caller *domain.Identity) string {
	if user, err := s.userRepo.GetByID(ctx, caller.UID); err == nil {
		if name := user.DisplayName(); name != "" {
			return name
		}
	}
	return caller.DisplayName()
}

func (s *bookingService) notifyTransition(ctx context.Context, booking *domain.Booking, target domain.BookingStatus) {
	switch target {
	case domain.BookingStatusApproved, domain.BookingStatusRejected:
		client, err := s.userRepo.GetByID(ctx, booking.ClientID)
		if err != nil {
			return
		}
		_ = s.emailSvc.SendBookingDecisionNotification(ctx, client.Email, booking.MachineName, target)
	case domain.BookingStatusCancelled:
		owner, err := s.userRepo.GetByID(ctx, booking.OwnerID)
		if err != nil {
			return
		}
		_ = s.emailSvc.SendBookingCancellationNotification(ctx, owner.Email, booking.ClientName, booking.MachineName)
	}
}
