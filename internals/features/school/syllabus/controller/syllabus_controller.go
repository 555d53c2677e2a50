package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	batchmodel "tuitiontrack_backend/internals/features/school/batches/model"
	reportservice "tuitiontrack_backend/internals/features/reports/service"
	"tuitiontrack_backend/internals/features/school/syllabus/dto"
	"tuitiontrack_backend/internals/features/school/syllabus/model"
	"tuitiontrack_backend/internals/features/school/syllabus/service"
	helper "tuitiontrack_backend/internals/helpers"
	"tuitiontrack_backend/internals/helpers/dbtime"
)

type SyllabusController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSyllabusController(db *gorm.DB) *SyllabusController {
	return &SyllabusController{DB: db, Validate: validator.New()}
}

func (ctrl *SyllabusController) ownedBatch(c *fiber.Ctx, batchID uuid.UUID) (*batchmodel.BatchModel, error) {
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

// PUT /api/teacher/batches/:batch_id/syllabus
// Upsert per (batch, tanggal); subject & chapter divalidasi terhadap
// definisi subjects milik batch saat definisinya tidak kosong.
func (ctrl *SyllabusController) UpsertSyllabus(c *fiber.Ctx) error {
	batchID, err := uuid.Parse(c.Params("batch_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "batch_id tidak valid")
	}

	var req dto.UpsertSyllabusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	batch, err := ctrl.ownedBatch(c, batchID)
	if err != nil {
		return err
	}

	day, ok := dbtime.ParseDay(req.Date)
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "date harus berformat YYYY-MM-DD")
	}

	entries := make([]model.SyllabusEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, model.SyllabusEntry{Subject: e.Subject, Chapter: e.Chapter, Remark: e.Remark})
	}
	if err := service.ValidateEntries(batch, entries); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	encoded, err := model.EncodeEntries(entries)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal meng-encode entries")
	}

	record := model.SyllabusModel{
		SyllabusBatchID:    batch.BatchID,
		SyllabusDate:       day,
		SyllabusEntries:    encoded,
		SyllabusAuthorName: helper.GetUserNameFromToken(c),
	}
	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "syllabus_batch_id"}, {Name: "syllabus_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"syllabus_entries", "syllabus_author_name", "syllabus_updated_at",
		}),
	}).Create(&record).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan syllabus")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Syllabus tersimpan", dto.FromSyllabusModel(record))
}

// GET /api/teacher/batches/:batch_id/syllabus
// Query rentang sama dengan attendance history; view=report mengembalikan
// bentuk terkelompok bulan -> hari.
func (ctrl *SyllabusController) GetSyllabus(c *fiber.Ctx) error {
	batchID, err := uuid.Parse(c.Params("batch_id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "batch_id tidak valid")
	}
	if _, err := ctrl.ownedBatch(c, batchID); err != nil {
		return err
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

	q := ctrl.DB.Where("syllabus_batch_id = ?", batchID)
	if rng != nil {
		q = q.Where("syllabus_date >= ? AND syllabus_date < ?", rng.Start, rng.End)
	}
	var records []model.SyllabusModel
	if err := q.Order("syllabus_date ASC").Find(&records).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil syllabus")
	}

	if c.Query("view") == "report" {
		return helper.Success(c, "OK", service.AssembleReport(records))
	}
	return helper.Success(c, "OK", dto.FromSyllabusModels(records))
}
