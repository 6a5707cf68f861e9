package repository

import (
	"context"

	"greenhire-backend/internal/domain"
)

type MachineRepository interface {
	Create(ctx context.Context, machine *domain.Machine) error
	GetByID(ctx context.Context, id string) (*domain.Machine, error)
	List(ctx context.Context) ([]domain.Machine, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Machine, error)
	CountByOwner(ctx context.Context, ownerID string) (int, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// UpdateStatus writes only the status field of the booking document.
	// Concurrent writers resolve last-write-wins at the storage layer.
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	ListByClient(ctx context.Context, clientID string) ([]domain.Booking, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Booking, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateContactFields overwrites firstName, lastName, and phoneNumber
	// only. Email and role are never touched through this path.
	UpdateContactFields(ctx context.Context, id, firstName, lastName, phone string) (*domain.User, error)
}
