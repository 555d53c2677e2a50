package dto

import (
	"time"

	"github.com/google/uuid"

	"tuitiontrack_backend/internals/features/school/attendance/model"
)

// Tanpa tag validasi di level record: satu student_id rusak tidak boleh
// menggagalkan seluruh request — kegagalannya dilaporkan per item oleh
// controller (207).
type AttendanceRecordInput struct {
	StudentID string `json:"student_id"`
	Status    string `json:"status"`
	Remarks   string `json:"remarks"`
}

type MarkAttendanceRequest struct {
	BatchID       string                  `json:"batch_id" validate:"required,uuid4"`
	Date          string                  `json:"date"     validate:"required"`
	IsHoliday     bool                    `json:"is_holiday"`
	HolidayReason string                  `json:"holiday_reason"`
	Records       []AttendanceRecordInput `json:"records" validate:"required,min=1,dive"`
}

// Hasil per record; bulk mark tidak gagal total hanya karena satu record rusak.
type MarkResult struct {
	StudentID string `json:"student_id"`
	OK        bool   `json:"ok"`
	Error     string `json:"error,omitempty"`
}

type MarkAttendanceResponse struct {
	BatchID uuid.UUID    `json:"batch_id"`
	Date    string       `json:"date"`
	Saved   int          `json:"saved"`
	Failed  int          `json:"failed"`
	Results []MarkResult `json:"results"`
}

type AttendanceResponse struct {
	ID          uuid.UUID `json:"id"`
	StudentID   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name"`
	BatchID     uuid.UUID `json:"batch_id"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	Remarks     string    `json:"remarks"`
}

func FromAttendanceModel(m model.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		ID:          m.AttendanceID,
		StudentID:   m.AttendanceStudentID,
		StudentName: m.AttendanceStudentName,
		BatchID:     m.AttendanceBatchID,
		Date:        m.AttendanceDate,
		Status:      m.AttendanceStatus,
		Remarks:     m.AttendanceRemarks,
	}
}

func FromAttendanceModels(ms []model.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromAttendanceModel(m))
	}
	return out
}
