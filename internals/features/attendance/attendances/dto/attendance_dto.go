// file: internals/features/attendance/attendances/dto/attendance_dto.go
package dto

import (
	routinedto "unischedule_backend/internals/features/scheduling/routines/dto"
)

type CreateAttendanceRequest struct {
	ClassRoutineID string                   `json:"class_routine_id" validate:"required,uuid4"`
	StudentIDs     routinedto.StudentIDList `json:"student_ids" validate:"required"`
}
