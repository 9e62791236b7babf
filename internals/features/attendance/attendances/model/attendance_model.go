// file: internals/features/attendance/attendances/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	routinemodel "unischedule_backend/internals/features/scheduling/routines/model"
)

/* =======================================================
   AttendanceModel (table: attendances)
   One record per held session, created by the teacher who
   ran it. Append-only: no update or delete path.
   ======================================================= */

type AttendanceModel struct {
	AttendanceID uuid.UUID `json:"attendance_id" gorm:"type:uuid;primaryKey;column:attendance_id;default:gen_random_uuid()"`

	AttendanceClassRoutineID uuid.UUID `json:"attendance_class_routine_id" gorm:"type:uuid;not null;index:idx_attendances_class_routine;column:attendance_class_routine_id"`
	AttendanceLecturerID     uuid.UUID `json:"attendance_lecturer_id" gorm:"type:uuid;not null;index:idx_attendances_lecturer;column:attendance_lecturer_id"`

	// Students marked present for this occurrence.
	AttendanceStudentIDs routinemodel.StudentIDSet `json:"attendance_student_ids" gorm:"type:text;not null;column:attendance_student_ids"`

	AttendanceCreatedAt time.Time `json:"attendance_created_at" gorm:"column:attendance_created_at;not null;autoCreateTime"`
}

func (AttendanceModel) TableName() string {
	return "attendances"
}
