package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"guestadmin/internal/backend"
)

const (
	userRoleKey  = "userRole"
	userNameKey  = "userName"
	userEmailKey = "userEmail"

	// SessionTTL is how long a minted session stays valid.
	SessionTTL = 24 * time.Hour
)

// SessionClaims wraps the backend API token plus the operator identity
// into the gateway's own signed session.
type SessionClaims struct {
	BackendToken string `json:"backend_token"`
	Role         string `json:"role"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	jwt.RegisteredClaims
}

// MintSession signs a session JWT for a freshly logged-in operator.
func MintSession(secret, backendToken, role, name, email string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		BackendToken: backendToken,
		Role:         role,
		Name:         name,
		Email:        email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSession verifies a session JWT and returns its claims.
func ParseSession(secret, raw string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// Session authenticates requests with a "Bearer <jwt>" header, puts
// the operator identity on the gin context, and threads the backend
// token into the request context for the service clients.
func Session(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader("Authorization"))
		if raw == "" || !strings.HasPrefix(raw, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing session token",
			})
			return
		}
		claims, err := ParseSession(secret, strings.TrimPrefix(raw, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired session",
			})
			return
		}

		c.Set(userRoleKey, claims.Role)
		c.Set(userNameKey, claims.Name)
		c.Set(userEmailKey, claims.Email)
		c.Request = c.Request.WithContext(
			backend.ContextWithToken(c.Request.Context(), claims.BackendToken),
		)
		c.Next()
	}
}
