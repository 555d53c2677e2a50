package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tuitiontrack_backend/internals/configs"
	"tuitiontrack_backend/internals/features/users/auth/dto"
	"tuitiontrack_backend/internals/features/users/auth/model"
	helper "tuitiontrack_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

const tokenTTL = 7 * 24 * time.Hour

func generateToken(userID, role, name, city string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   userID,
		"role":      role,
		"user_name": name,
		"city":      city,
		"exp":       time.Now().Add(tokenTTL).Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

/* ===================== REGISTER ===================== */
// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	switch req.Role {
	case "admin":
		m := model.AdminModel{
			AdminName:     req.Name,
			AdminEmail:    req.Email,
			AdminPassword: string(hash),
		}
		if err := ctrl.DB.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusConflict, "Registration failed: email already in use")
		}
		token, err := generateToken(m.AdminID.String(), "admin", m.AdminName, "")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to sign token")
		}
		return helper.SuccessWithCode(c, fiber.StatusCreated, "admin registered successfully", dto.AuthResponse{
			Token: token,
			Role:  "admin",
			User:  dto.UserSummary{ID: m.AdminID.String(), Name: m.AdminName, City: nil},
		})
	case "teacher":
		if req.City == "" {
			return fiber.NewError(fiber.StatusBadRequest, "City is required for teachers")
		}
		m := model.TeacherModel{
			TeacherName:     req.Name,
			TeacherEmail:    req.Email,
			TeacherPassword: string(hash),
			TeacherCity:     req.City,
		}
		if err := ctrl.DB.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusConflict, "Registration failed: email already in use")
		}
		token, err := generateToken(m.TeacherID.String(), "teacher", m.TeacherName, m.TeacherCity)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to sign token")
		}
		city := m.TeacherCity
		return helper.SuccessWithCode(c, fiber.StatusCreated, "teacher registered successfully", dto.AuthResponse{
			Token: token,
			Role:  "teacher",
			User:  dto.UserSummary{ID: m.TeacherID.String(), Name: m.TeacherName, City: &city},
		})
	default:
		return fiber.NewError(fiber.StatusBadRequest, "Invalid role")
	}
}

/* ===================== LOGIN ===================== */
// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var (
		id, name, passwordHash string
		city                   *string
	)
	switch req.Role {
	case "admin":
		var m model.AdminModel
		if err := ctrl.DB.Where("admin_email = ?", req.Email).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "User not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		id, name, passwordHash = m.AdminID.String(), m.AdminName, m.AdminPassword
	case "teacher":
		var m model.TeacherModel
		if err := ctrl.DB.Where("teacher_email = ?", req.Email).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "User not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		id, name, passwordHash = m.TeacherID.String(), m.TeacherName, m.TeacherPassword
		city = &m.TeacherCity
	default:
		return fiber.NewError(fiber.StatusBadRequest, "Invalid role")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	cityValue := ""
	if city != nil {
		cityValue = *city
	}
	token, err := generateToken(id, req.Role, name, cityValue)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to sign token")
	}

	return helper.Success(c, "Login berhasil", dto.AuthResponse{
		Token: token,
		Role:  req.Role,
		User:  dto.UserSummary{ID: id, Name: name, City: city},
	})
}
