package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Validasi struct hanya menjaga level request (batch, date, records tidak
// kosong); record dengan student_id rusak TIDAK boleh menggagalkan seluruh
// payload — nasibnya diputuskan per item saat diproses.
func TestMarkAttendanceRequestValidation(t *testing.T) {
	validate := validator.New()

	req := MarkAttendanceRequest{
		BatchID: uuid.New().String(),
		Date:    "2025-01-05",
		Records: []AttendanceRecordInput{
			{StudentID: uuid.New().String(), Status: "Present"},
			{StudentID: "not-a-uuid", Status: "Present"},
			{StudentID: uuid.New().String(), Status: "Absent"},
		},
	}
	if err := validate.Struct(req); err != nil {
		t.Errorf("malformed record student_id must not fail the whole request: %v", err)
	}

	// Level request tetap dijaga.
	if err := validate.Struct(MarkAttendanceRequest{
		BatchID: "nope",
		Date:    "2025-01-05",
		Records: req.Records,
	}); err == nil {
		t.Errorf("malformed batch_id should fail validation")
	}
	if err := validate.Struct(MarkAttendanceRequest{
		BatchID: uuid.New().String(),
		Date:    "2025-01-05",
	}); err == nil {
		t.Errorf("empty records should fail validation")
	}
}
