package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"greenhire-backend/internal/domain"
	"greenhire-backend/internal/logger"
	"greenhire-backend/internal/repository"
)

type bookingRepository struct {
	client *firestore.Client
}

func NewBookingRepository(client *firestore.Client) repository.BookingRepository {
	return &bookingRepository{client: client}
}

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	ref := r.client.Collection(bookingsCollection).NewDoc()
	booking.ID = ref.ID
	logger.ExternalServiceCall("firestore", "bookings.create", "doc_id", ref.ID)

	if _, err := ref.Set(ctx, booking); err != nil {
		logger.ExternalServiceResult("firestore", "bookings.create", err)
		booking.ID = ""
		return &domain.PersistenceError{Op: "create booking", Err: err}
	}
	logger.ExternalServiceResult("firestore", "bookings.create", nil)
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	snap, err := r.client.Collection(bookingsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrNotFound
		}
		return nil, &domain.PersistenceError{Op: "get booking", Err: err}
	}

	var b domain.Booking
	if err := snap.DataTo(&b); err != nil {
		return nil, &domain.PersistenceError{Op: "decode booking", Err: err}
	}
	b.ID = snap.Ref.ID
	return &b, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id string, newStatus domain.BookingStatus) error {
	logger.ExternalServiceCall("firestore", "bookings.updateStatus", "doc_id", id, "status", newStatus)

	_, err := r.client.Collection(bookingsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(newStatus)},
	})
	if err != nil {
		logger.ExternalServiceResult("firestore", "bookings.updateStatus", err)
		if status.Code(err) == codes.NotFound {
			return domain.ErrNotFound
		}
		return &domain.PersistenceError{Op: "update booking status", Err: err}
	}
	logger.ExternalServiceResult("firestore", "bookings.updateStatus", nil)
	return nil
}

func (r *bookingRepository) ListByClient(ctx context.Context, clientID string) ([]domain.Booking, error) {
	return r.query(ctx, r.client.Collection(bookingsCollection).Where("clientId", "==", clientID))
}

func (r *bookingRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Booking, error) {
	return r.query(ctx, r.client.Collection(bookingsCollection).Where("ownerId", "==", ownerID))
}

func (r *bookingRepository) query(ctx context.Context, q firestore.Query) ([]domain.Booking, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	bookings := make([]domain.Booking, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, &domain.PersistenceError{Op: "list bookings", Err: err}
		}

		var b domain.Booking
		if err := snap.DataTo(&b); err != nil {
			return nil, &domain.PersistenceError{Op: "decode booking", Err: err}
		}
		b.ID = snap.Ref.ID
		bookings = append(bookings, b)
	}

	// Sorted in memory; an orderBy on top of the equality filter would
	// require a composite Firestore index.
	domain.SortBookingsByCreatedAtDesc(bookings)
	return bookings, nil
}
