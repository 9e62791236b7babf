// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   UserModel (table: users)
   Role is immutable once set; there is no role-change path.
   ======================================================= */

type UserModel struct {
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey;column:user_id;default:gen_random_uuid()"`

	UserFullName string `json:"user_full_name" gorm:"type:varchar(100);not null;column:user_full_name"`
	UserEmail    string `json:"user_email" gorm:"type:varchar(100);not null;uniqueIndex:uq_users_email;column:user_email"`
	UserPassword string `json:"-" gorm:"type:varchar(255);not null;column:user_password"`

	// admin | teacher | student
	UserRole string `json:"user_role" gorm:"type:varchar(20);not null;column:user_role"`

	UserProfilePic *string `json:"user_profile_pic,omitempty" gorm:"type:text;column:user_profile_pic"`
	UserAddress    *string `json:"user_address,omitempty" gorm:"type:text;column:user_address"`
	UserDepartment *string `json:"user_department,omitempty" gorm:"type:varchar(100);column:user_department"`

	UserCreatedAt time.Time `json:"user_created_at" gorm:"column:user_created_at;not null;autoCreateTime"`
	UserUpdatedAt time.Time `json:"user_updated_at" gorm:"column:user_updated_at;not null;autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}
