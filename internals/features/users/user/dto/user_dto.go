// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"github.com/google/uuid"
)

type CreateUserRequest struct {
	UserFullName string `json:"user_full_name" validate:"required,min=1,max=100"`
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required,min=8"`

	// Role is immutable once set; there is no role-change endpoint.
	UserRole string `json:"user_role" validate:"required,oneof=admin teacher student"`

	UserAddress    *string `json:"user_address,omitempty"`
	UserDepartment *string `json:"user_department,omitempty" validate:"omitempty,max=100"`
}

// UserLite is the trimmed listing shape used by scheduling requirements.
type UserLite struct {
	UserID       uuid.UUID `json:"user_id"`
	UserFullName string    `json:"user_full_name"`
}
