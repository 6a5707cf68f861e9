package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"firebase.google.com/go/v4/auth"

	"greenhire-backend/internal/domain"
	"greenhire-backend/internal/logger"
	"greenhire-backend/internal/repository"
)

// identityProvider is the slice of the Firebase Auth admin client the
// signup flow needs. *auth.Client satisfies it.
type identityProvider interface {
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
}

type authService struct {
	provider identityProvider
	userRepo repository.UserRepository
}

func NewAuthService(provider identityProvider, userRepo repository.UserRepository) AuthService {
	return &authService{
		provider: provider,
		userRepo: userRepo,
	}
}

// Signup creates the identity-provider account and provisions the matching
// profile document. Sign-in itself happens directly against the provider
// from the client; the backend only ever sees verified ID tokens.
func (s *authService) Signup(ctx context.Context, input SignupInput) (*domain.User, error) {
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	email := strings.TrimSpace(input.Email)
	phone := strings.TrimSpace(input.PhoneNumber)

	if firstName == "" {
		return nil, &domain.ValidationError{Field: "firstName", Reason: "must not be empty"}
	}
	if lastName == "" {
		return nil, &domain.ValidationError{Field: "lastName", Reason: "must not be empty"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, &domain.ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	if len(input.Password) < 6 {
		return nil, &domain.ValidationError{Field: "password", Reason: "must be at least 6 characters"}
	}

	role := domain.RoleClient
	if strings.EqualFold(input.Role, string(domain.RoleOwner)) {
		role = domain.RoleOwner
	}

	logger.EnterMethod("authService.Signup", "email", email, "role", role)

	params := (&auth.UserToCreate{}).
		Email(email).
		Password(input.Password).
		DisplayName(firstName + " " + lastName)

	record, err := s.provider.CreateUser(ctx, params)
	if err != nil {
		logger.ExitMethodWithError("authService.Signup", err, "email", email)
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	user := &domain.User{
		ID:          record.UID,
		FirstName:   firstName,
		LastName:    lastName,
		Email:       email,
		PhoneNumber: phone,
		Role:        role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The provider account exists but the profile write failed; the
		// client sees "no profile provisioned" on next sign-in.
		logger.ExitMethodWithError("authService.Signup", err, "uid", record.UID)
		return nil, err
	}

	logger.ExitMethod("authService.Signup", "uid", user.ID, "role", user.Role)
	return user, nil
}
