package users

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"unischedule_backend/internals/constants"
	"unischedule_backend/internals/features/users/user/model"
)

type seedUser struct {
	FullName string
	Email    string
	Password string
	Role     string
}

var defaultUsers = []seedUser{
	{FullName: "Site Administrator", Email: "admin@unischedule.local", Password: "admin-change-me", Role: constants.RoleAdmin},
	{FullName: "Alice Lecturer", Email: "alice.lecturer@unischedule.local", Password: "teacher-change-me", Role: constants.RoleTeacher},
	{FullName: "Bob Student", Email: "bob.student@unischedule.local", Password: "student-change-me", Role: constants.RoleStudent},
	{FullName: "Carol Student", Email: "carol.student@unischedule.local", Password: "student-change-me", Role: constants.RoleStudent},
}

// SeedUsers provisions the starter accounts, skipping emails that exist.
func SeedUsers(db *gorm.DB) error {
	for _, su := range defaultUsers {
		var count int64
		if err := db.Model(&model.UserModel{}).
			Where("user_email = ?", su.Email).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u := model.UserModel{
			UserFullName: su.FullName,
			UserEmail:    su.Email,
			UserPassword: string(hashed),
			UserRole:     su.Role,
		}
		if err := db.Create(&u).Error; err != nil {
			return err
		}
		log.Printf("[INFO] seeded user %s (%s)", su.Email, su.Role)
	}
	return nil
}
