package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"greenhire-backend/internal/domain"
	"greenhire-backend/internal/repository"
)

type userRepository struct {
	client *firestore.Client
}

func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	// Keyed by the identity provider's subject ID, not a generated doc ID.
	_, err := r.client.Collection(usersCollection).Doc(user.ID).Set(ctx, user)
	if err != nil {
		return &domain.PersistenceError{Op: "create user profile", Err: err}
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	snap, err := r.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrNotFound
		}
		return nil, &domain.PersistenceError{Op: "get user profile", Err: err}
	}

	var u domain.User
	if err := snap.DataTo(&u); err != nil {
		return nil, &domain.PersistenceError{Op: "decode user profile", Err: err}
	}
	u.ID = snap.Ref.ID
	return &u, nil
}

func (r *userRepository) UpdateContactFields(ctx context.Context, id, firstName, lastName, phone string) (*domain.User, error) {
	_, err := r.client.Collection(usersCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "firstName", Value: firstName},
		{Path: "lastName", Value: lastName},
		{Path: "phoneNumber", Value: phone},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrNotFound
		}
		return nil, &domain.PersistenceError{Op: "update user profile", Err: err}
	}
	return r.GetByID(ctx, id)
}
