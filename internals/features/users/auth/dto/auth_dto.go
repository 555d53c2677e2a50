package dto

/* =========================================================
 * REQUESTS
 * ========================================================= */

type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,max=120"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required,oneof=admin teacher"`
	// City wajib untuk teacher, diabaikan untuk admin
	City string `json:"city" validate:"omitempty,max=120"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=admin teacher"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type UserSummary struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	City *string `json:"city"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	Role  string      `json:"role"`
	User  UserSummary `json:"user"`
}
