// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"unischedule_backend/internals/constants"
	"unischedule_backend/internals/features/users/user/dto"
	"unischedule_backend/internals/features/users/user/model"
	helper "unischedule_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

// List returns users, optionally filtered by ?role=.
func (ctl *UserController) List(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())

	if role := strings.TrimSpace(c.Query("role")); role != "" {
		valid := false
		for _, r := range constants.AllRoles {
			if role == r {
				valid = true
				break
			}
		}
		if !valid {
			return helper.Error(c, fiber.StatusBadRequest, "unknown role filter")
		}
		db = db.Where("user_role = ?", role)
	}

	var users []model.UserModel
	if err := db.Order("user_full_name ASC").Find(&users).Error; err != nil {
		log.Printf("[ERROR] list users: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": users})
}

// Create provisions an account with a bcrypt-hashed password. The role is
// fixed at creation; there is no role-change endpoint.
func (ctl *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] hash password: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	user := model.UserModel{
		UserFullName:   strings.TrimSpace(req.UserFullName),
		UserEmail:      strings.ToLower(strings.TrimSpace(req.UserEmail)),
		UserPassword:   string(hashed),
		UserRole:       req.UserRole,
		UserAddress:    req.UserAddress,
		UserDepartment: req.UserDepartment,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		s := strings.ToLower(err.Error())
		if strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "23505") {
			return helper.Error(c, fiber.StatusBadRequest, "Email already registered")
		}
		log.Printf("[ERROR] create user: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create user")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": true})
}
