package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tuitiontrack_backend/internals/features/school/attendance/dto"
	"tuitiontrack_backend/internals/features/school/attendance/model"
	"tuitiontrack_backend/internals/features/school/attendance/service"
	batchmodel "tuitiontrack_backend/internals/features/school/batches/model"
	reportservice "tuitiontrack_backend/internals/features/reports/service"
	helper "tuitiontrack_backend/internals/helpers"
	"tuitiontrack_backend/internals/helpers/dbtime"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Validate: validator.New()}
}

func (ctrl *AttendanceController) ownedBatch(c *fiber.Ctx, batchID uuid.UUID) (*batchmodel.BatchModel, error) {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	var batch batchmodel.BatchModel
	if err := ctrl.DB.Where("batch_id = ? AND batch_teacher_id = ?", batchID, teacherID).Take(&batch).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Batch not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil batch")
	}
	return &batch, nil
}

/* =========================== MARK (UPSERT) =========================== */

// POST /api/teacher/attendance
// Bulk upsert per tanggal: tiap record diproses independen, hasil per item
// dikumpulkan. Semua sukses -> 201, sebagian -> 207, semua gagal -> 400.
func (ctrl *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	batchID, err := uuid.Parse(req.BatchID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "batch_id tidak valid")
	}
	batch, err := ctrl.ownedBatch(c, batchID)
	if err != nil {
		return err
	}

	day, ok := dbtime.ParseDay(req.Date)
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "date harus berformat YYYY-MM-DD")
	}

	results := make([]dto.MarkResult, 0, len(req.Records))
	saved := 0

	for _, record := range req.Records {
		result := dto.MarkResult{StudentID: record.StudentID}

		studentID, status, remarks, err := service.ResolveMarkInput(
			record.StudentID, record.Status, record.Remarks,
			req.IsHoliday, req.HolidayReason,
		)
		if err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}

		entry := model.AttendanceModel{
			AttendanceStudentID:   studentID,
			AttendanceStudentName: service.SnapshotStudentName(ctrl.DB, studentID),
			AttendanceBatchID:     batch.BatchID,
			AttendanceDate:        day,
			AttendanceStatus:      status,
			AttendanceRemarks:     remarks,
		}
		if err := service.UpsertEntry(ctrl.DB, &entry); err != nil {
			log.Printf("[ERROR] upsert attendance student=%s date=%s: %v", studentID, req.Date, err)
			result.Error = "gagal menyimpan attendance"
			results = append(results, result)
			continue
		}

		result.OK = true
		saved++
		results = append(results, result)
	}

	resp := dto.MarkAttendanceResponse{
		BatchID: batch.BatchID,
		Date:    req.Date,
		Saved:   saved,
		Failed:  len(results) - saved,
		Results: results,
	}

	switch {
	case saved == len(results):
		return helper.SuccessWithCode(c, fiber.StatusCreated, "Attendance tersimpan", resp)
	case saved > 0:
		return helper.SuccessWithCode(c, fiber.StatusMultiStatus, "Sebagian attendance gagal disimpan", resp)
	default:
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Semua record gagal disimpan", resp)
	}
}

/* ============================== READS ============================== */

// GET /api/teacher/attendance/today/:batch_id
func (ctrl *AttendanceController) GetTodayAttendance(c *fiber.Ctx) error {
	batchID, err := uuid.Parse(c.Params("batch_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "batch_id tidak valid")
	}
	if _, err := ctrl.ownedBatch(c, batchID); err != nil {
		return err
	}

	today := dbtime.AtMidnight(time.Now())
	var entries []model.AttendanceModel
	if err := ctrl.DB.
		Where("attendance_batch_id = ? AND attendance_date >= ? AND attendance_date < ?",
			batchID, today, today.AddDate(0, 0, 1)).
		Order("attendance_student_name ASC").
		Find(&entries).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil attendance")
	}
	return helper.Success(c, "OK", dto.FromAttendanceModels(entries))
}

// GET /api/teacher/attendance/history/:batch_id
// Rentang dari query (date / start_date+end_date / period / year+month).
func (ctrl *AttendanceController) GetAttendanceHistory(c *fiber.Ctx) error {
	batchID, err := uuid.Parse(c.Params("batch_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "batch_id tidak valid")
	}
	if _, err := ctrl.ownedBatch(c, batchID); err != nil {
		return err
	}

	rng, err := reportservice.ResolveDateRange(reportservice.RangeRequest{
		SingleDate: c.Query("date"),
		StartDate:  firstNonEmpty(c.Query("start_date"), c.Query("from"), c.Query("from_date")),
		EndDate:    firstNonEmpty(c.Query("end_date"), c.Query("to"), c.Query("to_date")),
		Period:     c.Query("period"),
		Year:       c.Query("year"),
		Month:      c.Query("month"),
	}, time.Now())
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	q := ctrl.DB.Where("attendance_batch_id = ?", batchID)
	if rng != nil {
		q = q.Where("attendance_date >= ? AND attendance_date < ?", rng.Start, rng.End)
	}
	// History: terbaru dulu.
	var entries []model.AttendanceModel
	if err := q.Order("attendance_date DESC, attendance_student_name ASC").Find(&entries).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil attendance")
	}
	return helper.Success(c, fmt.Sprintf("%d entri", len(entries)), dto.FromAttendanceModels(entries))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
