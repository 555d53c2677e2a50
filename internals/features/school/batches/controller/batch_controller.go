package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tuitiontrack_backend/internals/configs"
	"tuitiontrack_backend/internals/features/school/batches/dto"
	"tuitiontrack_backend/internals/features/school/batches/model"
	attendanceModel "tuitiontrack_backend/internals/features/school/attendance/model"
	studentModel "tuitiontrack_backend/internals/features/school/students/model"
	syllabusModel "tuitiontrack_backend/internals/features/school/syllabus/model"
	helper "tuitiontrack_backend/internals/helpers"
)

type BatchController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	// SubjectMap di-inject saat setup route (lihat configs.LoadBatchSubjectMap)
	SubjectMap configs.BatchSubjectMap
}

func NewBatchController(db *gorm.DB, subjectMap configs.BatchSubjectMap) *BatchController {
	return &BatchController{DB: db, Validate: validator.New(), SubjectMap: subjectMap}
}

/* ===================== CREATE ===================== */
// POST /api/teacher/batches
func (ctrl *BatchController) CreateBatch(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	city := helper.GetCityFromToken(c)

	var req dto.CreateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.BatchModel{
		BatchName:      req.Name,
		BatchTeacherID: teacherID,
		BatchCity:      city,
		BatchType:      req.BatchType,
	}

	// Alokasi subjects otomatis dari map batch type (jika dikenal)
	subjects := []model.Subject{}
	if req.BatchType != nil {
		if cfg, ok := ctrl.SubjectMap[*req.BatchType]; ok {
			for _, s := range cfg {
				chapters := append([]string(nil), s.Chapters...)
				subjects = append(subjects, model.Subject{Name: s.Name, Chapters: chapters})
			}
		}
	}
	encoded, err := model.EncodeSubjects(subjects)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to encode subjects")
	}
	m.BatchSubjects = encoded

	if err := ctrl.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create batch")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Batch created", dto.FromBatchModel(m))
}

/* ===================== LIST ===================== */
// GET /api/teacher/batches
func (ctrl *BatchController) ListBatches(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var batches []model.BatchModel
	if err := ctrl.DB.
		Where("batch_teacher_id = ?", teacherID).
		Order("batch_created_at ASC").
		Find(&batches).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch batches")
	}

	// daftar kosong bukan error
	return helper.Success(c, "OK", dto.FromBatchModels(batches))
}

/* ===================== DELETE (cascade) ===================== */
// DELETE /api/teacher/batches/:id
func (ctrl *BatchController) DeleteBatch(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	batchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid batch ID")
	}

	var batch model.BatchModel
	if err := ctrl.DB.
		Where("batch_id = ? AND batch_teacher_id = ?", batchID, teacherID).
		First(&batch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Batch not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	// ===== TRANSACTION START =====
	tx := ctrl.DB.Begin()
	if tx.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, tx.Error.Error())
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := tx.Where("student_batch_id = ?", batchID).
		Delete(&studentModel.StudentModel{}).Error; err != nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete students")
	}
	if err := tx.Where("attendance_batch_id = ?", batchID).
		Delete(&attendanceModel.AttendanceModel{}).Error; err != nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete attendance")
	}
	if err := tx.Where("syllabus_batch_id = ?", batchID).
		Delete(&syllabusModel.SyllabusModel{}).Error; err != nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete syllabus records")
	}
	if err := tx.Delete(&batch).Error; err != nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete batch")
	}

	if err := tx.Commit().Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	// ===== TRANSACTION END =====

	return helper.Success(c, "Batch and related data deleted successfully", fiber.Map{
		"batch_id": batchID,
	})
}
