package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"rentora/internal/domain/entities"
	"rentora/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

// Claims carries the marketplace identity: subject is the user id, role is
// either "tenant" or "landlord". Authorization decisions stay in the
// usecases; the middleware only authenticates.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type AuthMiddleware struct {
	secretKey []byte
}

func NewAuthMiddleware(secretKey string) *AuthMiddleware {
	return &AuthMiddleware{secretKey: []byte(secretKey)}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "access token required"})
			return
		}

		claims, err := m.validate(token)
		if err != nil {
			log.Printf("[auth][middleware] token rejected err=%v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ctxUserIDKey, claims.Subject)
		c.Set(ctxUserRoleKey, entities.Role(claims.Role))
		c.Next()
	}
}

func (m *AuthMiddleware) validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// GenerateToken issues an HS256 token for the given user. The marketplace's
// account service signs with the same secret; this is used by local tooling
// and tests.
func (m *AuthMiddleware) GenerateToken(userID string, role entities.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secretKey)
}

// GetActor extracts the authenticated caller set by RequireAuth.
func GetActor(c *gin.Context) (usecase.Actor, bool) {
	rawID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return usecase.Actor{}, false
	}
	userID, ok := rawID.(string)
	if !ok || userID == "" {
		return usecase.Actor{}, false
	}

	rawRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return usecase.Actor{}, false
	}
	role, ok := rawRole.(entities.Role)
	if !ok {
		return usecase.Actor{}, false
	}

	return usecase.Actor{UserID: userID, Role: role}, true
}
