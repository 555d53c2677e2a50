package route

import (
	authCtrl "tuitiontrack_backend/internals/features/users/auth/controller"
	middlewares "tuitiontrack_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authCtrl.NewAuthController(db)

	group := api.Group("/auth")
	group.Post("/register", ctrl.Register)
	group.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}
