package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tuitiontrack_backend/internals/configs"
	reportsRoute "tuitiontrack_backend/internals/features/reports/route"
	attendanceRoute "tuitiontrack_backend/internals/features/school/attendance/route"
	batchRoute "tuitiontrack_backend/internals/features/school/batches/route"
	studentRoute "tuitiontrack_backend/internals/features/school/students/route"
	syllabusRoute "tuitiontrack_backend/internals/features/school/syllabus/route"
	adminRoute "tuitiontrack_backend/internals/features/users/admin/route"
	authRoute "tuitiontrack_backend/internals/features/users/auth/route"
	authMiddleware "tuitiontrack_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	subjectMap := configs.LoadBatchSubjectMap()

	// Public
	authRoute.AuthRoutes(api, db)
	log.Println("[INFO] Auth routes terdaftar di /api/auth")

	// Teacher area
	teacher := api.Group("/teacher",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyTeacher(),
	)
	batchRoute.BatchTeacherRoutes(teacher, db, subjectMap)
	studentRoute.StudentTeacherRoutes(teacher, db)
	attendanceRoute.AttendanceTeacherRoutes(teacher, db)
	syllabusRoute.SyllabusTeacherRoutes(teacher, db)
	log.Println("[INFO] Teacher routes terdaftar di /api/teacher")

	// Admin area
	admin := api.Group("/admin",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyAdmin(),
	)
	adminRoute.AdminRoutes(admin, db)
	log.Println("[INFO] Admin routes terdaftar di /api/admin")

	// Reports: admin & teacher sama-sama boleh; scoping per-role terjadi
	// di controller (teacher dikunci ke batch miliknya).
	reports := api.Group("/reports",
		authMiddleware.AuthMiddleware(),
		authMiddleware.AdminOrTeacher(),
	)
	reportsRoute.ReportsRoutes(reports, db)
	log.Println("[INFO] Reports routes terdaftar di /api/reports")
}
