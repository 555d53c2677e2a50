package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tuitiontrack_backend/internals/features/school/attendance/controller"
)

func AttendanceTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)

	attendance := r.Group("/attendance")
	attendance.Post("/", ctrl.MarkAttendance)
	attendance.Get("/today/:batch_id", ctrl.GetTodayAttendance)
	attendance.Get("/history/:batch_id", ctrl.GetAttendanceHistory)
}
