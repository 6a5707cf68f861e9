// Package firestore implements the repository interfaces on Cloud Firestore.
// Every write is a single-document set or update with no transaction or
// version check; concurrent conflicting writes resolve last-write-wins.
package firestore

import (
	"cloud.google.com/go/firestore"

	"greenhire-backend/internal/repository"
)

const (
	machinesCollection = "machines"
	bookingsCollection = "bookings"
	usersCollection    = "users"
)

// Store bundles the Firestore-backed repositories over one shared client.
type Store struct {
	MachineRepository repository.MachineRepository
	BookingRepository repository.BookingRepository
	UserRepository    repository.UserRepository
}

// NewStore creates all repositories over the given Firestore client
func NewStore(client *firestore.Client) *Store {
	return &Store{
		MachineRepository: NewMachineRepository(client),
		BookingRepository: NewBookingRepository(client),
		UserRepository:    NewUserRepository(client),
	}
}
