package dto

import (
	"time"

	"github.com/google/uuid"

	m "tuitiontrack_backend/internals/features/school/students/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type StudentInput struct {
	Name  string  `json:"name"  validate:"required,max=120"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type AddStudentsRequest struct {
	Students []StudentInput `json:"students" validate:"required,min=1,dive"`
}

type UpdateStudentRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type StudentResponse struct {
	StudentID        uuid.UUID `json:"student_id"`
	StudentName      string    `json:"student_name"`
	StudentEmail     *string   `json:"student_email,omitempty"`
	StudentBatchID   uuid.UUID `json:"student_batch_id"`
	StudentCreatedAt time.Time `json:"student_created_at"`
}

func FromStudentModel(mdl m.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:        mdl.StudentID,
		StudentName:      mdl.StudentName,
		StudentEmail:     mdl.StudentEmail,
		StudentBatchID:   mdl.StudentBatchID,
		StudentCreatedAt: mdl.StudentCreatedAt,
	}
}

func FromStudentModels(models []m.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(models))
	for _, mdl := range models {
		out = append(out, FromStudentModel(mdl))
	}
	return out
}
