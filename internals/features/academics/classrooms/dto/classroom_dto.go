// file: internals/features/academics/classrooms/dto/classroom_dto.go
package dto

type CreateClassroomRequest struct {
	ClassroomName     string `json:"classroom_name" validate:"required,min=1,max=100"`
	ClassroomCapacity int    `json:"classroom_capacity" validate:"required,gt=0"`
}

type UpdateClassroomRequest struct {
	ClassroomName     *string `json:"classroom_name,omitempty" validate:"omitempty,min=1,max=100"`
	ClassroomCapacity *int    `json:"classroom_capacity,omitempty" validate:"omitempty,gt=0"`
}
