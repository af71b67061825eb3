// Package auth guards the API with JWT bearer tokens.
//
// Tokens carry a role claim plus the scope claims the role needs. Verification
// uses a shared HMAC secret from the JWT_SECRET environment variable.
package auth

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/fne-platform/hours-backend/internal/uuid"
)

// Role is the caller's access level.
type Role string

const (
	// RoleAdmin has full access and is the only role allowed mutations.
	RoleAdmin Role = "admin"

	// RoleEquipoDirectivo reads contracts of the schools in its claim.
	RoleEquipoDirectivo Role = "equipo_directivo"

	// RoleConsultor reads ledger entries of sessions it facilitates.
	RoleConsultor Role = "consultor"
)

const claimsKey = "auth:claims"

var (
	ErrMissingToken       = errors.New("a bearer token is required for this endpoint")
	ErrInvalidToken       = errors.New("the bearer token is invalid or expired")
	ErrForbidden          = errors.New("your role does not allow this operation")
	ErrContractNotInScope = errors.New("this contract is outside your school scope")
)

// Claims are the token claims the API cares about.
type Claims struct {
	Role    Role        `json:"role"`
	Schools []uuid.UUID `json:"schools,omitempty"` // school scope for equipo_directivo
	jwt.RegisteredClaims
}

// UserID returns the subject claim as a UUID. The zero UUID is returned for
// tokens without a parseable subject.
func (claims Claims) UserID() uuid.UUID {
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.UUID{}
	}

	return id
}

func secret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// Sign mints a token for the given claims, valid for 24 hours.
func Sign(claims Claims) (string, error) {
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(24 * time.Hour))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret())
}

// Middleware verifies the Authorization header and stores the claims in the
// gin context. Requests without a valid token are rejected with 401.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrMissingToken.Error()})
			return
		}

		var claims Claims
		token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrInvalidKeyType
			}

			return secret(), nil
		})
		if err != nil || !token.Valid || !validRole(claims.Role) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrInvalidToken.Error()})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

func validRole(role Role) bool {
	switch role {
	case RoleAdmin, RoleEquipoDirectivo, RoleConsultor:
		return true
	}

	return false
}

// FromContext returns the claims stored by Middleware.
func FromContext(c *gin.Context) (Claims, bool) {
	value, exists := c.Get(claimsKey)
	if !exists {
		return Claims{}, false
	}

	claims, ok := value.(Claims)
	return claims, ok
}
