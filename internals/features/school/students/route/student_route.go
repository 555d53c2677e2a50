package route

import (
	studentCtrl "tuitiontrack_backend/internals/features/school/students/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func StudentTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := studentCtrl.NewStudentController(db)

	r.Post("/batches/:id/students", ctrl.AddStudents)
	r.Get("/batches/:id/students", ctrl.ListStudents)
	r.Put("/students/:studentId", ctrl.UpdateStudent)
	r.Delete("/students/:studentId", ctrl.DeleteStudent)
}
