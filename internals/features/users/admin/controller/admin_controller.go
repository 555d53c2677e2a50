package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	reportservice "tuitiontrack_backend/internals/features/reports/service"
	batchmodel "tuitiontrack_backend/internals/features/school/batches/model"
	"tuitiontrack_backend/internals/features/users/admin/dto"
	authmodel "tuitiontrack_backend/internals/features/users/auth/model"
	helper "tuitiontrack_backend/internals/helpers"
)

type AdminController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db, Validate: validator.New()}
}

// GET /api/admin/cities
// City diambil dari teacher, bukan batch: city tanpa batch pun harus
// muncul di drill-down.
func (ctrl *AdminController) GetCities(c *fiber.Ctx) error {
	var cities []string
	if err := ctrl.DB.Model(&authmodel.TeacherModel{}).
		Distinct().
		Where("teacher_city <> ''").
		Order("teacher_city ASC").
		Pluck("teacher_city", &cities).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar city")
	}
	return helper.Success(c, "OK", cities)
}

// GET /api/admin/cities/:city/teachers
func (ctrl *AdminController) GetTeachersByCity(c *fiber.Ctx) error {
	city := c.Params("city")
	if city == "" {
		return helper.Error(c, fiber.StatusBadRequest, "city wajib diisi")
	}

	var teachers []authmodel.TeacherModel
	if err := ctrl.DB.Where("teacher_city = ?", city).
		Order("teacher_name ASC").Find(&teachers).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar teacher")
	}

	out := make([]dto.TeacherSummary, 0, len(teachers))
	for _, t := range teachers {
		out = append(out, dto.TeacherSummary{
			ID:    t.TeacherID,
			Name:  t.TeacherName,
			Email: t.TeacherEmail,
			City:  t.TeacherCity,
		})
	}
	return helper.Success(c, "OK", out)
}

// GET /api/admin/teachers/:id/batches
func (ctrl *AdminController) GetBatchesByTeacher(c *fiber.Ctx) error {
	teacherID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "teacher_id tidak valid")
	}

	var batches []batchmodel.BatchModel
	if err := ctrl.DB.Where("batch_teacher_id = ?", teacherID).
		Order("batch_created_at ASC").
		Find(&batches).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar batch")
	}

	out := make([]dto.BatchSummary, 0, len(batches))
	for _, b := range batches {
		out = append(out, dto.BatchSummary{
			ID:        b.BatchID,
			Name:      b.BatchName,
			City:      b.BatchCity,
			BatchType: b.BatchType,
		})
	}
	return helper.Success(c, "OK", out)
}

// GET /api/admin/attendance?batch_id=&period=&year=&month=
// Drill-down terakhir: entri attendance satu batch pada rentang terpilih,
// nama student lewat rantai resolusi (live -> snapshot -> unknown).
func (ctrl *AdminController) GetAttendance(c *fiber.Ctx) error {
	batchID, err := uuid.Parse(c.Query("batch_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "batch_id tidak valid")
	}

	rng, err := reportservice.ResolveDateRange(reportservice.RangeRequest{
		SingleDate: c.Query("date"),
		StartDate:  c.Query("start_date"),
		EndDate:    c.Query("end_date"),
		Period:     c.Query("period"),
		Year:       c.Query("year"),
		Month:      c.Query("month"),
	}, time.Now())
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	records, err := reportservice.GetFilteredAttendance(ctrl.DB, reportservice.Filters{
		BatchID: &batchID,
		Range:   rng,
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil attendance")
	}

	out := make([]dto.AttendanceView, 0, len(records))
	for _, rec := range records {
		view := dto.AttendanceView{
			ID:          rec.ID,
			Date:        rec.Date,
			StudentName:  rec.Student.DisplayName,
			StudentEmail: rec.Student.Email,
			Status:       rec.Status,
			Remarks:      rec.Remarks,
		}
		if rec.Batch != nil {
			view.BatchName = rec.Batch.Name
		}
		out = append(out, view)
	}
	return helper.Success(c, "OK", out)
}

// POST /api/admin/teachers
func (ctrl *AdminController) CreateTeacher(c *fiber.Ctx) error {
	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	var count int64
	ctrl.DB.Model(&authmodel.TeacherModel{}).Where("teacher_email = ?", email).Count(&count)
	if count > 0 {
		return helper.Error(c, fiber.StatusConflict, "Email sudah terdaftar")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	teacher := authmodel.TeacherModel{
		TeacherName:     strings.TrimSpace(req.Name),
		TeacherEmail:    email,
		TeacherPassword: string(hashed),
		TeacherCity:     strings.TrimSpace(req.City),
	}
	if err := ctrl.DB.Create(&teacher).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat teacher")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Teacher dibuat", dto.TeacherSummary{
		ID:    teacher.TeacherID,
		Name:  teacher.TeacherName,
		Email: teacher.TeacherEmail,
		City:  teacher.TeacherCity,
	})
}
