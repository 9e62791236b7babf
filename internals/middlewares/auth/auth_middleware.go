// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	helper "unischedule_backend/internals/helpers"
)

// AuthMiddleware verifies the bearer token and stores a typed Principal in
// Locals. Token issuance lives outside this service; only HS256 access
// tokens signed with the shared secret are accepted.
func AuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			log.Println("[ERROR] JWT secret is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT secret")
		}

		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(secret), nil
		}); err != nil {
			log.Println("[ERROR] token parse:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		principal, err := principalFromClaims(claims)
		if err != nil {
			log.Println("[ERROR] claims:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid token claims")
		}
		c.Locals(helper.LocPrincipal, principal)

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	const prefix = "Bearer "
	auth := c.Get("Authorization")
	if strings.HasPrefix(auth, prefix) {
		if v := strings.TrimSpace(auth[len(prefix):]); v != "" {
			return v, nil
		}
	}
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v, nil
	}
	return "", fmt.Errorf("Unauthorized - missing bearer token")
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return fmt.Errorf("missing exp claim")
	}
	if time.Now().Add(-leeway).After(time.Unix(int64(exp), 0)) {
		return fmt.Errorf("token expired")
	}
	return nil
}

func principalFromClaims(claims jwt.MapClaims) (helper.Principal, error) {
	rawID, ok := claims["sub"].(string)
	if !ok || rawID == "" {
		if rawID, ok = claims["user_id"].(string); !ok || rawID == "" {
			return helper.Principal{}, fmt.Errorf("missing user id claim")
		}
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return helper.Principal{}, fmt.Errorf("invalid user id claim: %w", err)
	}

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return helper.Principal{}, fmt.Errorf("missing role claim")
	}

	return helper.Principal{ID: id, Role: role}, nil
}
