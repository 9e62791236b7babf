// file: internals/features/attendance/attendances/service/stats_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	coursemodel "unischedule_backend/internals/features/academics/courses/model"
	"unischedule_backend/internals/features/attendance/attendances/model"
	routinemodel "unischedule_backend/internals/features/scheduling/routines/model"
	usermodel "unischedule_backend/internals/features/users/user/model"
)

// StatsService fetches the rows the aggregator needs. Any read failure
// aborts the whole aggregation; no partial results.
type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

// StudentStats returns per-course stats for one student.
func (s *StatsService) StudentStats(ctx context.Context, studentID uuid.UUID) ([]CourseStat, error) {
	var routines []routinemodel.ClassRoutineModel
	if err := s.DB.WithContext(ctx).
		Where("? = ANY(string_to_array(class_routine_student_ids, ','))", studentID.String()).
		Find(&routines).Error; err != nil {
		return nil, err
	}

	attendances, err := s.attendancesFor(ctx, routines)
	if err != nil {
		return nil, err
	}
	courseNames, err := s.courseNamesFor(ctx, routines)
	if err != nil {
		return nil, err
	}

	return ComputeStudentCourseStats(studentID, routines, attendances, courseNames), nil
}

// TeacherStats returns per-course stats for one lecturer.
func (s *StatsService) TeacherStats(ctx context.Context, teacherID uuid.UUID) ([]CourseStat, error) {
	var routines []routinemodel.ClassRoutineModel
	if err := s.DB.WithContext(ctx).
		Where("class_routine_lecturer_id = ?", teacherID).
		Find(&routines).Error; err != nil {
		return nil, err
	}

	attendances, err := s.attendancesFor(ctx, routines)
	if err != nil {
		return nil, err
	}
	courseNames, err := s.courseNamesFor(ctx, routines)
	if err != nil {
		return nil, err
	}

	return ComputeTeacherCourseStats(teacherID, routines, attendances, courseNames), nil
}

// AdminStats returns org-wide per-lecturer and per-student totals.
func (s *StatsService) AdminStats(ctx context.Context) (lecturers, students []ParticipantStat, err error) {
	var attendances []model.AttendanceModel
	if err := s.DB.WithContext(ctx).Find(&attendances).Error; err != nil {
		return nil, nil, err
	}

	var routines []routinemodel.ClassRoutineModel
	if err := s.DB.WithContext(ctx).Find(&routines).Error; err != nil {
		return nil, nil, err
	}

	ids := make(map[uuid.UUID]struct{})
	for _, a := range attendances {
		ids[a.AttendanceLecturerID] = struct{}{}
		for _, sid := range a.AttendanceStudentIDs {
			ids[sid] = struct{}{}
		}
	}
	userNames, err := s.userNamesFor(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	lecturers, students = ComputeAdminStats(routines, attendances, userNames)
	return lecturers, students, nil
}

func (s *StatsService) attendancesFor(ctx context.Context, routines []routinemodel.ClassRoutineModel) ([]model.AttendanceModel, error) {
	if len(routines) == 0 {
		return nil, nil
	}
	ids := make([]uuid.UUID, len(routines))
	for i, r := range routines {
		ids[i] = r.ClassRoutineID
	}
	var attendances []model.AttendanceModel
	if err := s.DB.WithContext(ctx).
		Where("attendance_class_routine_id IN ?", ids).
		Find(&attendances).Error; err != nil {
		return nil, err
	}
	return attendances, nil
}

func (s *StatsService) courseNamesFor(ctx context.Context, routines []routinemodel.ClassRoutineModel) (map[uuid.UUID]string, error) {
	if len(routines) == 0 {
		return map[uuid.UUID]string{}, nil
	}
	seen := make(map[uuid.UUID]struct{}, len(routines))
	ids := make([]uuid.UUID, 0, len(routines))
	for _, r := range routines {
		if _, ok := seen[r.ClassRoutineCourseID]; !ok {
			seen[r.ClassRoutineCourseID] = struct{}{}
			ids = append(ids, r.ClassRoutineCourseID)
		}
	}

	var courses []coursemodel.CourseModel
	if err := s.DB.WithContext(ctx).
		Where("course_id IN ?", ids).
		Find(&courses).Error; err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(courses))
	for _, c := range courses {
		names[c.CourseID] = c.CourseName
	}
	return names, nil
}

func (s *StatsService) userNamesFor(ctx context.Context, idSet map[uuid.UUID]struct{}) (map[uuid.UUID]string, error) {
	if len(idSet) == 0 {
		return map[uuid.UUID]string{}, nil
	}
	ids := make([]uuid.UUID, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	var users []usermodel.UserModel
	if err := s.DB.WithContext(ctx).
		Where("user_id IN ?", ids).
		Find(&users).Error; err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(users))
	for _, u := range users {
		names[u.UserID] = u.UserFullName
	}
	return names, nil
}
