// file: internals/features/comments/comments/dto/comment_dto.go
package dto

type CreateCommentRequest struct {
	ClassRoutineID string `json:"class_routine_id" validate:"required,uuid4"`
	CommentText    string `json:"comment_text" validate:"required,min=1"`
}
