package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tuitiontrack_backend/internals/features/users/admin/controller"
)

func AdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAdminController(db)

	// Drill-down: city -> teacher -> batch -> attendance.
	r.Get("/cities", ctrl.GetCities)
	r.Get("/cities/:city/teachers", ctrl.GetTeachersByCity)
	r.Get("/teachers/:id/batches", ctrl.GetBatchesByTeacher)
	r.Get("/attendance", ctrl.GetAttendance)
	r.Post("/teachers", ctrl.CreateTeacher)
}
