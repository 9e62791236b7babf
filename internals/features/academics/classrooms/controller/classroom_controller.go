// file: internals/features/academics/classrooms/controller/classroom_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"unischedule_backend/internals/features/academics/classrooms/dto"
	"unischedule_backend/internals/features/academics/classrooms/model"
	helper "unischedule_backend/internals/helpers"
)

type ClassroomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassroomController(db *gorm.DB) *ClassroomController {
	return &ClassroomController{DB: db, Validate: validator.New()}
}

func (ctl *ClassroomController) List(c *fiber.Ctx) error {
	var rooms []model.ClassroomModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("classroom_name ASC").
		Find(&rooms).Error; err != nil {
		log.Printf("[ERROR] list classrooms: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch classrooms")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": rooms})
}

func (ctl *ClassroomController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	room := model.ClassroomModel{
		ClassroomName:     strings.TrimSpace(req.ClassroomName),
		ClassroomCapacity: req.ClassroomCapacity,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&room).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Classroom name already exists")
		}
		log.Printf("[ERROR] create classroom: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create classroom")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": true})
}

func (ctl *ClassroomController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid classroom id")
	}

	var req dto.UpdateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var room model.ClassroomModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&room, "classroom_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Classroom not found")
		}
		log.Printf("[ERROR] load classroom: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update classroom")
	}

	if req.ClassroomName != nil {
		room.ClassroomName = strings.TrimSpace(*req.ClassroomName)
	}
	if req.ClassroomCapacity != nil {
		room.ClassroomCapacity = *req.ClassroomCapacity
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&room).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Classroom name already exists")
		}
		log.Printf("[ERROR] update classroom: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update classroom")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": true})
}

func (ctl *ClassroomController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid classroom id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.ClassroomModel{}, "classroom_id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] delete classroom: %v", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete classroom")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Classroom not found")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": true})
}

// isDuplicateKey: Postgres unique violation (SQLSTATE 23505), checked by
// substring to stay portable across driver error types.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "23505")
}
