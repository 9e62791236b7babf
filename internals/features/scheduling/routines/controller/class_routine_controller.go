// file: internals/features/scheduling/routines/controller/class_routine_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"unischedule_backend/internals/constants"
	classroommodel "unischedule_backend/internals/features/academics/classrooms/model"
	coursemodel "unischedule_backend/internals/features/academics/courses/model"
	timeslotmodel "unischedule_backend/internals/features/academics/timeslots/model"
	"unischedule_backend/internals/features/scheduling/routines/dto"
	"unischedule_backend/internals/features/scheduling/routines/model"
	"unischedule_backend/internals/features/scheduling/routines/service"
	usermodel "unischedule_backend/internals/features/users/user/model"
	helper "unischedule_backend/internals/helpers"
)

type ClassRoutineController struct {
	DB           *gorm.DB
	Validate     *validator.Validate
	Service      *service.ScheduleService
	HorizonWeeks int
}

func NewClassRoutineController(db *gorm.DB, horizonWeeks int) *ClassRoutineController {
	return &ClassRoutineController{
		DB:           db,
		Validate:     validator.New(),
		Service:      service.NewScheduleService(db),
		HorizonWeeks: horizonWeeks,
	}
}

/* =========================
   Create (admin)
   ========================= */

func (ctl *ClassRoutineController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassRoutineRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	students, err := req.StudentIDs.ToSet()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if len(students) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "student_ids must not be empty")
	}

	classRoomID := uuid.MustParse(req.ClassRoomID)
	courseID := uuid.MustParse(req.CourseID)
	lecturerID := uuid.MustParse(req.LecturerID)

	if req.SingleSlot {
		if req.TimeSlotID == nil {
			return helper.Error(c, fiber.StatusBadRequest, "time_slot_id is required for a single-slot routine")
		}
		_, err = ctl.Service.Create(c.UserContext(), service.CreateInput{
			ClassRoomID: classRoomID,
			CourseID:    courseID,
			TimeSlotID:  uuid.MustParse(*req.TimeSlotID),
			LecturerID:  lecturerID,
			StudentIDs:  students,
		})
	} else {
		_, err = ctl.Service.CreateRecurring(c.UserContext(), service.RecurringInput{
			ClassRoomID:  classRoomID,
			CourseID:     courseID,
			LecturerID:   lecturerID,
			StudentIDs:   students,
			HorizonWeeks: ctl.HorizonWeeks,
		})
	}
	if err != nil {
		return renderScheduleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": true})
}

/* =========================
   Patch (admin)
   ========================= */

func (ctl *ClassRoutineController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid routine id")
	}

	var req dto.PatchClassRoutineRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	in := service.UpdateInput{}
	if req.ClassRoomID != nil {
		v := uuid.MustParse(*req.ClassRoomID)
		in.ClassRoomID = &v
	}
	if req.CourseID != nil {
		v := uuid.MustParse(*req.CourseID)
		in.CourseID = &v
	}
	if req.TimeSlotID != nil {
		v := uuid.MustParse(*req.TimeSlotID)
		in.TimeSlotID = &v
	}
	if req.LecturerID != nil {
		v := uuid.MustParse(*req.LecturerID)
		in.LecturerID = &v
	}
	if req.StudentIDs != nil {
		set, err := req.StudentIDs.ToSet()
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		in.StudentIDs = &set
	}

	if _, err := ctl.Service.Update(c.UserContext(), id, in); err != nil {
		return renderScheduleError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": true})
}

func renderScheduleError(c *fiber.Ctx, err error) error {
	var conflict *service.ConflictError
	switch {
	case errors.As(err, &conflict):
		return helper.Error(c, fiber.StatusBadRequest, conflict.Reason)
	case errors.Is(err, service.ErrRoutineNotFound):
		return helper.Error(c, fiber.StatusNotFound, "Class routine not found")
	default:
		log.Printf("[ERROR] scheduling: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
}

/* =========================
   Listings
   ========================= */

// ListAdmin returns every routine with joined display data.
func (ctl *ClassRoutineController) ListAdmin(c *fiber.Ctx) error {
	var routines []model.ClassRoutineModel
	if err := ctl.DB.WithContext(c.UserContext()).Find(&routines).Error; err != nil {
		log.Printf("[ERROR] list routines: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch class routines")
	}
	return ctl.respondWithRoutines(c, routines, false)
}

// ListTeacher returns the caller's routines, today or later.
func (ctl *ClassRoutineController) ListTeacher(c *fiber.Ctx) error {
	principal, err := helper.GetPrincipal(c)
	if err != nil {
		return err
	}

	var routines []model.ClassRoutineModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("class_routine_lecturer_id = ?", principal.ID).
		Find(&routines).Error; err != nil {
		log.Printf("[ERROR] list teacher routines: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch class routines")
	}
	return ctl.respondWithRoutines(c, routines, true)
}

// ListStudent returns routines whose student set contains the caller,
// today or later. Membership is exact token match, not substring.
func (ctl *ClassRoutineController) ListStudent(c *fiber.Ctx) error {
	principal, err := helper.GetPrincipal(c)
	if err != nil {
		return err
	}

	var routines []model.ClassRoutineModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("? = ANY(string_to_array(class_routine_student_ids, ','))", principal.ID.String()).
		Find(&routines).Error; err != nil {
		log.Printf("[ERROR] list student routines: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch class routines")
	}
	return ctl.respondWithRoutines(c, routines, true)
}

func (ctl *ClassRoutineController) respondWithRoutines(c *fiber.Ctx, routines []model.ClassRoutineModel, futureOnly bool) error {
	responses, err := ctl.buildResponses(c, routines, futureOnly)
	if err != nil {
		log.Printf("[ERROR] join routines: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch class routines")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": responses})
}

// buildResponses joins routines to classroom, course, slot and user display
// data in four batch lookups.
func (ctl *ClassRoutineController) buildResponses(c *fiber.Ctx, routines []model.ClassRoutineModel, futureOnly bool) ([]dto.ClassRoutineResponse, error) {
	db := ctl.DB.WithContext(c.UserContext())

	classroomIDs := make(map[uuid.UUID]struct{})
	courseIDs := make(map[uuid.UUID]struct{})
	slotIDs := make(map[uuid.UUID]struct{})
	userIDs := make(map[uuid.UUID]struct{})
	for _, r := range routines {
		classroomIDs[r.ClassRoutineClassRoomID] = struct{}{}
		courseIDs[r.ClassRoutineCourseID] = struct{}{}
		slotIDs[r.ClassRoutineTimeSlotID] = struct{}{}
		userIDs[r.ClassRoutineLecturerID] = struct{}{}
		for _, sid := range r.ClassRoutineStudentIDs {
			userIDs[sid] = struct{}{}
		}
	}

	classrooms := make(map[uuid.UUID]classroommodel.ClassroomModel)
	if len(classroomIDs) > 0 {
		var rows []classroommodel.ClassroomModel
		if err := db.Where("classroom_id IN ?", keys(classroomIDs)).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, row := range rows {
			classrooms[row.ClassroomID] = row
		}
	}

	courses := make(map[uuid.UUID]coursemodel.CourseModel)
	if len(courseIDs) > 0 {
		var rows []coursemodel.CourseModel
		if err := db.Where("course_id IN ?", keys(courseIDs)).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, row := range rows {
			courses[row.CourseID] = row
		}
	}

	slots := make(map[uuid.UUID]timeslotmodel.TimeSlotModel)
	if len(slotIDs) > 0 {
		var rows []timeslotmodel.TimeSlotModel
		if err := db.Where("time_slot_id IN ?", keys(slotIDs)).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, row := range rows {
			slots[row.TimeSlotID] = row
		}
	}

	users := make(map[uuid.UUID]usermodel.UserModel)
	if len(userIDs) > 0 {
		var rows []usermodel.UserModel
		if err := db.Where("user_id IN ?", keys(userIDs)).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, row := range rows {
			users[row.UserID] = row
		}
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)

	responses := make([]dto.ClassRoutineResponse, 0, len(routines))
	for _, r := range routines {
		slot := slots[r.ClassRoutineTimeSlotID]
		if futureOnly && slot.TimeSlotDay.Before(today) {
			continue
		}

		classroom := classrooms[r.ClassRoutineClassRoomID]
		course := courses[r.ClassRoutineCourseID]
		lecturer := users[r.ClassRoutineLecturerID]

		students := make([]dto.RoutineUser, 0, len(r.ClassRoutineStudentIDs))
		for _, sid := range r.ClassRoutineStudentIDs {
			u := users[sid]
			students = append(students, dto.RoutineUser{
				UserID:       sid,
				UserFullName: u.UserFullName,
				UserEmail:    u.UserEmail,
			})
		}

		responses = append(responses, dto.ClassRoutineResponse{
			ClassRoutineID: r.ClassRoutineID,
			Classroom: dto.RoutineClassroom{
				ClassroomID:   classroom.ClassroomID,
				ClassroomName: classroom.ClassroomName,
			},
			Course: dto.RoutineCourse{
				CourseID:   course.CourseID,
				CourseName: course.CourseName,
				CourseCode: course.CourseCode,
			},
			TimeSlot: dto.RoutineTimeSlot{
				TimeSlotID:        slot.TimeSlotID,
				TimeSlotDay:       slot.TimeSlotDay,
				TimeSlotStartTime: slot.TimeSlotStartTime,
				TimeSlotEndTime:   slot.TimeSlotEndTime,
			},
			Lecturer: dto.RoutineUser{
				UserID:       lecturer.UserID,
				UserFullName: lecturer.UserFullName,
			},
			Students: students,
		})
	}
	return responses, nil
}

func keys(set map[uuid.UUID]struct{}) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}

/* =========================
   Requirements (any authenticated)
   ========================= */

// Requirements returns everything a client needs to build a scheduling
// request: courses, lecturers, students, classrooms, and upcoming slots.
func (ctl *ClassRoutineController) Requirements(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.UserContext())

	var courses []coursemodel.CourseModel
	if err := db.Find(&courses).Error; err != nil {
		return requirementsError(c, err)
	}

	var lecturers []usermodel.UserModel
	if err := db.Where("user_role = ?", constants.RoleTeacher).Find(&lecturers).Error; err != nil {
		return requirementsError(c, err)
	}

	var students []usermodel.UserModel
	if err := db.Where("user_role = ?", constants.RoleStudent).Find(&students).Error; err != nil {
		return requirementsError(c, err)
	}

	var classrooms []classroommodel.ClassroomModel
	if err := db.Find(&classrooms).Error; err != nil {
		return requirementsError(c, err)
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	var timeSlots []timeslotmodel.TimeSlotModel
	if err := db.
		Where("time_slot_day BETWEEN ? AND ?", today, today.AddDate(0, 0, 5)).
		Order("time_slot_day ASC, time_slot_start_time ASC").
		Find(&timeSlots).Error; err != nil {
		return requirementsError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": fiber.Map{
		"courses":    courses,
		"lecturers":  toUserLite(lecturers),
		"students":   toUserLite(students),
		"classrooms": classrooms,
		"time_slots": timeSlots,
	}})
}

func requirementsError(c *fiber.Ctx, err error) error {
	log.Printf("[ERROR] requirements: %v", err)
	return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch scheduling requirements")
}

func toUserLite(users []usermodel.UserModel) []fiber.Map {
	out := make([]fiber.Map, 0, len(users))
	for _, u := range users {
		out = append(out, fiber.Map{
			"user_id":        u.UserID,
			"user_full_name": u.UserFullName,
		})
	}
	return out
}
