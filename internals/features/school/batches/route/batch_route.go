package route

import (
	"tuitiontrack_backend/internals/configs"
	batchCtrl "tuitiontrack_backend/internals/features/school/batches/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func BatchTeacherRoutes(r fiber.Router, db *gorm.DB, subjectMap configs.BatchSubjectMap) {
	ctrl := batchCtrl.NewBatchController(db, subjectMap)

	group := r.Group("/batches")
	group.Post("/", ctrl.CreateBatch)
	group.Get("/", ctrl.ListBatches)
	group.Delete("/:id", ctrl.DeleteBatch)
}
