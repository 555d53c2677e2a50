package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tuitiontrack_backend/internals/features/school/syllabus/controller"
)

func SyllabusTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSyllabusController(db)

	// Menempel di bawah batch: satu syllabus milik satu batch.
	r.Put("/batches/:batch_id/syllabus", ctrl.UpsertSyllabus)
	r.Get("/batches/:batch_id/syllabus", ctrl.GetSyllabus)
}
