package test

import (
	"os"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/fne-platform/hours-backend/internal/auth"
	fne_uuid "github.com/fne-platform/hours-backend/internal/uuid"
)

func init() {
	// The auth guard reads the secret per request, setting it here covers
	// every test process
	if os.Getenv("JWT_SECRET") == "" {
		os.Setenv("JWT_SECRET", "test-secret")
	}
}

// Token mints a bearer token for the given role and subject.
func Token(t *testing.T, role auth.Role, subject fne_uuid.UUID, schools ...fne_uuid.UUID) string {
	token, err := auth.Sign(auth.Claims{
		Role:    role,
		Schools: schools,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: subject.String(),
		},
	})
	require.NoError(t, err, "could not sign test token")

	return token
}

// AuthHeader builds the Authorization header map for Request.
func AuthHeader(t *testing.T, role auth.Role, subject fne_uuid.UUID, schools ...fne_uuid.UUID) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + Token(t, role, subject, schools...),
	}
}
