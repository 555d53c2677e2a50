package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tuitiontrack_backend/internals/features/reports/controller"
)

func ReportsRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReportsController(db)

	r.Get("/summary", ctrl.GetSummary)
	r.Get("/export", ctrl.ExportAttendance)
}
