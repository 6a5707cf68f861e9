package service

import (
	"context"

	"greenhire-backend/internal/domain"
)

// CreateMachineInput carries the machine-listing form fields. PricePerDay
// arrives as the raw form string and is validated here, not at the edge.
type CreateMachineInput struct {
	Name           string
	MachineType    string
	Description    string
	PricePerDay    string
	OwnerFirstName string
	OwnerLastName  string
	OwnerEmail     string
	OwnerPhone     string
	ImageBytes     []byte
	ImageFilename  string
	ImageMimeType  string
}

// MachineSnapshot is the authoritative machine state resolved at booking
// time. Owner and price always come from here, never from caller input.
type MachineSnapshot struct {
	OwnerID     string
	OwnerEmail  string
	PricePerDay float64
	Name        string
	ImageURL    string
}

type CatalogService interface {
	CreateMachine(ctx context.Context, caller *domain.Identity, input CreateMachineInput) (*domain.Machine, error)
	ListMachines(ctx context.Context) ([]domain.Machine, error)
	ResolveOwnerAndPrice(ctx context.Context, machineID string) (*MachineSnapshot, error)
}

// BookingTransition is the result of a status transition. PreviousStatus
// lets callers apply the change optimistically and revert on failure.
type BookingTransition struct {
	Booking        *domain.Booking
	PreviousStatus domain.BookingStatus
}

type BookingService interface {
	CreateBooking(ctx context.Context, caller *domain.Identity, machineID string, startMillis, endMillis int64) (*domain.Booking, error)
	Transition(ctx context.Context, caller *domain.Identity, bookingID string, target domain.BookingStatus) (*BookingTransition, error)
	ListForOwner(ctx context.Context, ownerID string) ([]domain.Booking, error)
	ListForClient(ctx context.Context, clientID string) ([]domain.Booking, error)
}

// OwnerOverview aggregates an owner's listings and incoming bookings.
type OwnerOverview struct {
	MachineCount int              `json:"machineCount"`
	BookingCount int              `json:"bookingCount"`
	Bookings     []domain.Booking `json:"bookings"`
}

// ClientOverview aggregates a client's outgoing bookings.
type ClientOverview struct {
	Bookings []domain.Booking `json:"bookings"`
}

type ProfileService interface {
	LoadProfile(ctx context.Context, uid string) (*domain.User, error)
	LoadOwnerOverview(ctx context.Context, uid string) (*OwnerOverview, error)
	LoadClientOverview(ctx context.Context, uid string) (*ClientOverview, error)
	UpdateProfile(ctx context.Context, uid, firstName, lastName, phone string) (*domain.User, error)
}

// SignupInput carries the account-creation form fields.
type SignupInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Password    string
	Role        string
}

type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)
}

type EmailService interface {
	SendBookingRequestNotification(ctx context.Context, ownerEmail, clientName, machineName string) error
	SendBookingDecisionNotification(ctx context.Context, clientEmail, machineName string, status domain.BookingStatus) error
	SendBookingCancellationNotification(ctx context.Context, ownerEmail, clientName, machineName string) error
}
