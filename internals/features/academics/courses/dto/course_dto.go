// file: internals/features/academics/courses/dto/course_dto.go
package dto

import "gorm.io/datatypes"

type CreateCourseRequest struct {
	CourseName    string `json:"course_name" validate:"required,min=1,max=100"`
	CourseCode    string `json:"course_code" validate:"required,min=1,max=20"`
	CourseCredits int    `json:"course_credits" validate:"required,gt=0"`

	CoursePic         *string        `json:"course_pic,omitempty"`
	CourseCategory    *string        `json:"course_category,omitempty" validate:"omitempty,max=50"`
	CourseDescription *string        `json:"course_description,omitempty"`
	CourseTags        datatypes.JSON `json:"course_tags,omitempty"`
}

type UpdateCourseRequest struct {
	CourseName    *string `json:"course_name,omitempty" validate:"omitempty,min=1,max=100"`
	CourseCode    *string `json:"course_code,omitempty" validate:"omitempty,min=1,max=20"`
	CourseCredits *int    `json:"course_credits,omitempty" validate:"omitempty,gt=0"`

	CoursePic         *string        `json:"course_pic,omitempty"`
	CourseCategory    *string        `json:"course_category,omitempty" validate:"omitempty,max=50"`
	CourseDescription *string        `json:"course_description,omitempty"`
	CourseTags        datatypes.JSON `json:"course_tags,omitempty"`
	CourseStatus      *string        `json:"course_status,omitempty" validate:"omitempty,oneof=active archived"`
}
