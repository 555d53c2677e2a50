package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTeacherRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	City     string `json:"city"     validate:"required"`
}

type TeacherSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	City  string    `json:"city"`
}

type BatchSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	BatchType *string   `json:"batch_type"`
}

// Satu entri attendance untuk tampilan drill-down admin; nama student
// sudah melalui rantai resolusi live/snapshot.
type AttendanceView struct {
	ID          uuid.UUID `json:"id"`
	Date        time.Time `json:"date"`
	StudentName  string    `json:"student_name"`
	StudentEmail *string   `json:"student_email,omitempty"`
	BatchName    string    `json:"batch_name"`
	Status      string    `json:"status"`
	Remarks     string    `json:"remarks,omitempty"`
}
