package controller

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tuitiontrack_backend/internals/features/reports/service"
	helper "tuitiontrack_backend/internals/helpers"
)

type ReportsController struct {
	DB *gorm.DB
}

func NewReportsController(db *gorm.DB) *ReportsController {
	return &ReportsController{DB: db}
}

// Nilai sel default untuk (student, tanggal) tanpa entri; bisa dioverride
// per-request lewat ?empty_cell=.
const defaultEmptyCell = "Not in Batch"

// buildFilters menerjemahkan query + principal ke Filters. Teacher selalu
// dikunci ke batch miliknya sendiri; admin bebas memfilter city/teacher.
func (ctrl *ReportsController) buildFilters(c *fiber.Ctx) (service.Filters, error) {
	var f service.Filters

	if helper.GetRoleFromToken(c) == "teacher" {
		teacherID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return f, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}
		f.TeacherID = &teacherID
	} else {
		f.City = c.Query("city")
		if raw := c.Query("teacher_id"); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				return f, fiber.NewError(fiber.StatusBadRequest, "teacher_id tidak valid")
			}
			f.TeacherID = &id
		}
	}

	if raw := c.Query("batch_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return f, fiber.NewError(fiber.StatusBadRequest, "batch_id tidak valid")
		}
		f.BatchID = &id
	}
	if raw := c.Query("student_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return f, fiber.NewError(fiber.StatusBadRequest, "student_id tidak valid")
		}
		f.StudentID = &id
	}

	rng, err := service.ResolveDateRange(rangeRequestFromQuery(c), time.Now())
	if err != nil {
		return f, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	f.Range = rng
	return f, nil
}

// Alias historis (from/to/from_date/to_date) dinormalkan di sini; ke bawah
// hanya ada start_date/end_date.
func rangeRequestFromQuery(c *fiber.Ctx) service.RangeRequest {
	return service.RangeRequest{
		SingleDate: c.Query("date"),
		StartDate:  firstNonEmpty(c.Query("start_date"), c.Query("from"), c.Query("from_date")),
		EndDate:    firstNonEmpty(c.Query("end_date"), c.Query("to"), c.Query("to_date")),
		Period:     c.Query("period"),
		Year:       c.Query("year"),
		Month:      c.Query("month"),
	}
}

// GET /api/reports/summary
func (ctrl *ReportsController) GetSummary(c *fiber.Ctx) error {
	filters, err := ctrl.buildFilters(c)
	if err != nil {
		return err
	}
	records, err := service.GetFilteredAttendance(ctrl.DB, filters)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil attendance")
	}
	summaries := service.SummarizeAttendance(records)
	return helper.Success(c, fmt.Sprintf("%d batch", len(summaries)), summaries)
}

// GET /api/reports/export
// Mengirim workbook xlsx; rentang tanpa entri ber-batch valid = 404.
func (ctrl *ReportsController) ExportAttendance(c *fiber.Ctx) error {
	filters, err := ctrl.buildFilters(c)
	if err != nil {
		return err
	}
	records, err := service.GetFilteredAttendance(ctrl.DB, filters)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil attendance")
	}

	emptyCell := defaultEmptyCell
	if c.Query("empty_cell") != "" || queryHas(c, "empty_cell") {
		emptyCell = c.Query("empty_cell")
	}

	f, filename, err := service.BuildAttendanceWorkbook(records, emptyCell)
	if err != nil {
		if err == service.ErrNoRecords {
			return helper.Error(c, fiber.StatusNotFound, "Tidak ada record untuk diekspor pada rentang ini")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat spreadsheet")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	if err := f.Write(c.Response().BodyWriter()); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menulis spreadsheet")
	}
	return nil
}

// queryHas membedakan ?empty_cell= (eksplisit kosong) dari absennya param.
func queryHas(c *fiber.Ctx, key string) bool {
	found := false
	c.Request().URI().QueryArgs().VisitAll(func(k, _ []byte) {
		if string(k) == key {
			found = true
		}
	})
	return found
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
