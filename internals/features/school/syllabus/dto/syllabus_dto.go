package dto

import (
	"time"

	"github.com/google/uuid"

	"tuitiontrack_backend/internals/features/school/syllabus/model"
)

type SyllabusEntryInput struct {
	Subject string `json:"subject" validate:"required"`
	Chapter string `json:"chapter" validate:"required"`
	Remark  string `json:"remark"`
}

type UpsertSyllabusRequest struct {
	Date    string               `json:"date"    validate:"required"`
	Entries []SyllabusEntryInput `json:"entries" validate:"required,min=1,dive"`
}

type SyllabusResponse struct {
	ID         uuid.UUID             `json:"id"`
	BatchID    uuid.UUID             `json:"batch_id"`
	Date       time.Time             `json:"date"`
	Entries    []model.SyllabusEntry `json:"entries"`
	AuthorName string                `json:"author_name"`
	UpdatedAt  time.Time             `json:"updated_at"`
}

func FromSyllabusModel(m model.SyllabusModel) SyllabusResponse {
	entries := m.Entries()
	if entries == nil {
		entries = []model.SyllabusEntry{}
	}
	return SyllabusResponse{
		ID:         m.SyllabusID,
		BatchID:    m.SyllabusBatchID,
		Date:       m.SyllabusDate,
		Entries:    entries,
		AuthorName: m.SyllabusAuthorName,
		UpdatedAt:  m.SyllabusUpdatedAt,
	}
}

func FromSyllabusModels(ms []model.SyllabusModel) []SyllabusResponse {
	out := make([]SyllabusResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromSyllabusModel(m))
	}
	return out
}
