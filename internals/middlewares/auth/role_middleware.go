package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "unischedule_backend/internals/helpers"
)

// RoleMiddlewareWithCustomError gates a route on the principal's role.
func RoleMiddlewareWithCustomError(allowedRoles []string, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := helper.GetPrincipal(c)
		if err != nil {
			return err
		}

		for _, allowed := range allowedRoles {
			if principal.Role == allowed {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": customForbiddenMessage,
		})
	}
}

// OnlyRoles is a shortcut for the common case.
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}
