package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fne-platform/hours-backend/internal/auth"
	"github.com/fne-platform/hours-backend/internal/models"
)

// requireAdmin answers 403 and returns false when the caller is not an admin.
// Mutations are admin-only across the API.
func requireAdmin(c *gin.Context) (auth.Claims, bool) {
	claims, ok := auth.FromContext(c)
	if !ok || claims.Role != auth.RoleAdmin {
		c.JSON(http.StatusForbidden, httpError{Error: auth.ErrForbidden.Error()})
		return auth.Claims{}, false
	}

	return claims, true
}

// schoolScope returns the google UUIDs of the schools in the claim.
func schoolScope(claims auth.Claims) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(claims.Schools))
	for _, school := range claims.Schools {
		ids = append(ids, school.UUID)
	}

	return ids
}

// requireContractRead answers 403 and returns false when the caller may not
// read the contract. Admins read everything, equipo_directivo only contracts
// of their schools. Consultores have no contract level access, their ledger
// reads are scoped per entry instead.
func requireContractRead(c *gin.Context, contract models.Contract) (auth.Claims, bool) {
	claims, ok := auth.FromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, httpError{Error: auth.ErrForbidden.Error()})
		return auth.Claims{}, false
	}

	switch claims.Role {
	case auth.RoleAdmin:
		return claims, true
	case auth.RoleEquipoDirectivo:
		if contract.BelongsToSchools(schoolScope(claims)) {
			return claims, true
		}

		c.JSON(http.StatusForbidden, httpError{Error: auth.ErrContractNotInScope.Error()})
		return auth.Claims{}, false
	}

	c.JSON(http.StatusForbidden, httpError{Error: auth.ErrForbidden.Error()})
	return auth.Claims{}, false
}
