package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"

	"greenhire-backend/internal/domain"
	"greenhire-backend/internal/logger"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// googleJWKSURL serves the signing keys for Firebase Authentication ID
// tokens (the securetoken service account's key set).
const googleJWKSURL = "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"

// IDTokenClaims are the claims carried by a Firebase ID token that the
// backend cares about.
type IDTokenClaims struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// TokenVerifier validates identity-provider ID tokens and resolves the
// caller identity.
type TokenVerifier interface {
	VerifyIDToken(tokenString string) (*domain.Identity, error)
}

type tokenVerifier struct {
	jwks      *keyfunc.JWKS
	projectID string
}

// NewTokenVerifier builds a verifier for ID tokens minted for the given
// Firebase project. The key set is fetched once and refreshed in the
// background for the life of the process.
func NewTokenVerifier(projectID string) (TokenVerifier, error) {
	jwks, err := keyfunc.Get(googleJWKSURL, keyfunc.Options{
		RefreshInterval: time.Hour,
		RefreshTimeout:  10 * time.Second,
		RefreshErrorHandler: func(err error) {
			logger.Error("Failed to refresh ID token signing keys", "error", err)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ID token signing keys: %w", err)
	}

	return &tokenVerifier{
		jwks:      jwks,
		projectID: projectID,
	}, nil
}

func (v *tokenVerifier) VerifyIDToken(tokenString string) (*domain.Identity, error) {
	claims := &IDTokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, v.jwks.Keyfunc,
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithIssuer("https://securetoken.google.com/"+v.projectID),
		jwt.WithAudience(v.projectID),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &domain.Identity{
		UID:   claims.Subject,
		Email: claims.Email,
		Name:  claims.Name,
	}, nil
}
