// file: internals/features/academics/courses/controller/course_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"unischedule_backend/internals/features/academics/courses/dto"
	"unischedule_backend/internals/features/academics/courses/model"
	helper "unischedule_backend/internals/helpers"
)

type CourseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db, Validate: validator.New()}
}

func (ctl *CourseController) List(c *fiber.Ctx) error {
	var courses []model.CourseModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("course_name ASC").
		Find(&courses).Error; err != nil {
		log.Printf("[ERROR] list courses: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": courses})
}

func (ctl *CourseController) Create(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	course := model.CourseModel{
		CourseName:        strings.TrimSpace(req.CourseName),
		CourseCode:        strings.TrimSpace(req.CourseCode),
		CourseCredits:     req.CourseCredits,
		CoursePic:         req.CoursePic,
		CourseCategory:    req.CourseCategory,
		CourseDescription: req.CourseDescription,
		CourseTags:        req.CourseTags,
		CourseStatus:      model.CourseActive,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&course).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Course name or code already exists")
		}
		log.Printf("[ERROR] create course: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create course")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": true})
}

func (ctl *CourseController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid course id")
	}

	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var course model.CourseModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&course, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Course not found")
		}
		log.Printf("[ERROR] load course: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update course")
	}

	if req.CourseName != nil {
		course.CourseName = strings.TrimSpace(*req.CourseName)
	}
	if req.CourseCode != nil {
		course.CourseCode = strings.TrimSpace(*req.CourseCode)
	}
	if req.CourseCredits != nil {
		course.CourseCredits = *req.CourseCredits
	}
	if req.CoursePic != nil {
		course.CoursePic = req.CoursePic
	}
	if req.CourseCategory != nil {
		course.CourseCategory = req.CourseCategory
	}
	if req.CourseDescription != nil {
		course.CourseDescription = req.CourseDescription
	}
	if len(req.CourseTags) > 0 {
		course.CourseTags = req.CourseTags
	}
	if req.CourseStatus != nil {
		course.CourseStatus = model.CourseStatus(*req.CourseStatus)
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&course).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Course name or code already exists")
		}
		log.Printf("[ERROR] update course: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update course")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": true})
}

func (ctl *CourseController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid course id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.CourseModel{}, "course_id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] delete course: %v", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete course")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Course not found")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": true})
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "23505")
}
