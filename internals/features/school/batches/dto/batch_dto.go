package dto

import (
	"time"

	"github.com/google/uuid"

	m "tuitiontrack_backend/internals/features/school/batches/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateBatchRequest struct {
	Name string `json:"name" validate:"required,max=120"`
	// BatchType opsional; jika dikenal di subject map, subjects batch diisi otomatis
	BatchType *string `json:"batch_type" validate:"omitempty,max=60"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type BatchResponse struct {
	BatchID        uuid.UUID   `json:"batch_id"`
	BatchName      string      `json:"batch_name"`
	BatchTeacherID uuid.UUID   `json:"batch_teacher_id"`
	BatchCity      string      `json:"batch_city"`
	BatchType      *string     `json:"batch_type,omitempty"`
	BatchSubjects  []m.Subject `json:"batch_subjects"`
	BatchCreatedAt time.Time   `json:"batch_created_at"`
}

func FromBatchModel(mdl m.BatchModel) BatchResponse {
	subjects, _ := mdl.Subjects()
	if subjects == nil {
		subjects = []m.Subject{}
	}
	return BatchResponse{
		BatchID:        mdl.BatchID,
		BatchName:      mdl.BatchName,
		BatchTeacherID: mdl.BatchTeacherID,
		BatchCity:      mdl.BatchCity,
		BatchType:      mdl.BatchType,
		BatchSubjects:  subjects,
		BatchCreatedAt: mdl.BatchCreatedAt,
	}
}

func FromBatchModels(models []m.BatchModel) []BatchResponse {
	out := make([]BatchResponse, 0, len(models))
	for _, mdl := range models {
		out = append(out, FromBatchModel(mdl))
	}
	return out
}
