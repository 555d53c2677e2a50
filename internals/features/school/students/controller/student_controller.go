package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	batchModel "tuitiontrack_backend/internals/features/school/batches/model"
	"tuitiontrack_backend/internals/features/school/students/dto"
	"tuitiontrack_backend/internals/features/school/students/model"
	helper "tuitiontrack_backend/internals/helpers"
)

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, Validate: validator.New()}
}

// guard: batch harus milik teacher yang login
func (ctrl *StudentController) ownedBatch(c *fiber.Ctx, batchID uuid.UUID) (*batchModel.BatchModel, error) {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}
	var batch batchModel.BatchModel
	if err := ctrl.DB.
		Where("batch_id = ? AND batch_teacher_id = ?", batchID, teacherID).
		First(&batch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Batch not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &batch, nil
}

/* ===================== ADD (bulk) ===================== */
// POST /api/teacher/batches/:id/students
func (ctrl *StudentController) AddStudents(c *fiber.Ctx) error {
	batchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid batch ID")
	}
	if _, err := ctrl.ownedBatch(c, batchID); err != nil {
		return err
	}

	var req dto.AddStudentsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	docs := make([]model.StudentModel, 0, len(req.Students))
	for _, s := range req.Students {
		docs = append(docs, model.StudentModel{
			StudentName:    strings.TrimSpace(s.Name),
			StudentEmail:   s.Email,
			StudentBatchID: batchID,
		})
	}
	if err := ctrl.DB.Create(&docs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to add students")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Students added", dto.FromStudentModels(docs))
}

/* ===================== LIST ===================== */
// GET /api/teacher/batches/:id/students
func (ctrl *StudentController) ListStudents(c *fiber.Ctx) error {
	batchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid batch ID")
	}
	if _, err := ctrl.ownedBatch(c, batchID); err != nil {
		return err
	}

	var students []model.StudentModel
	if err := ctrl.DB.
		Where("student_batch_id = ?", batchID).
		Order("student_created_at ASC").
		Find(&students).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}

	return helper.Success(c, "OK", dto.FromStudentModels(students))
}

/* ===================== UPDATE ===================== */
// PUT /api/teacher/students/:studentId
func (ctrl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student ID")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var student model.StudentModel
	if err := ctrl.DB.Where("student_id = ?", studentID).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if _, err := ctrl.ownedBatch(c, student.StudentBatchID); err != nil {
		return err
	}

	student.StudentName = strings.TrimSpace(req.Name)
	if err := ctrl.DB.Save(&student).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update student")
	}

	return helper.Success(c, "Student updated successfully", dto.FromStudentModel(student))
}

/* ===================== DELETE ===================== */
// DELETE /api/teacher/students/:studentId
// Attendance milik student TIDAK ikut dihapus: laporan tetap jalan
// lewat snapshot nama di attendance (lihat reports/service/filter.go).
func (ctrl *StudentController) DeleteStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student ID")
	}

	var student model.StudentModel
	if err := ctrl.DB.Where("student_id = ?", studentID).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if _, err := ctrl.ownedBatch(c, student.StudentBatchID); err != nil {
		return err
	}

	if err := ctrl.DB.Delete(&student).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete student")
	}

	return helper.Success(c, "Student deleted successfully", fiber.Map{
		"student_id": studentID,
	})
}
