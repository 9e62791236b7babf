package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals key under which the auth middleware stores the decoded caller.
const LocPrincipal = "principal"

// Principal is the strongly-typed identity produced once at the auth
// boundary and passed into core operations. Nothing downstream re-inspects
// the raw token.
type Principal struct {
	ID   uuid.UUID
	Role string
}

// GetPrincipal returns the caller stored by the auth middleware.
func GetPrincipal(c *fiber.Ctx) (Principal, error) {
	p, ok := c.Locals(LocPrincipal).(Principal)
	if !ok || p.ID == uuid.Nil {
		return Principal{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing principal")
	}
	return p, nil
}
