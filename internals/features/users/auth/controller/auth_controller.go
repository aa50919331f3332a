// 📁 controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/configs"
	"pesantrenku_backend/internals/features/users/auth/dto"
	"pesantrenku_backend/internals/features/users/auth/model"
	helper "pesantrenku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

const accessTokenTTL = 12 * time.Hour

// 🟢 POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	var user model.User
	if err := ctrl.DB.Where("user_email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		log.Printf("[ERROR] login query: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	claims := jwt.MapClaims{
		"user_id":   user.UserID.String(),
		"user_name": user.UserName,
		"role":      user.UserRole,
		"exp":       time.Now().Add(accessTokenTTL).Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		log.Printf("[ERROR] sign token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken: signed,
		UserID:      user.UserID.String(),
		UserName:    user.UserName,
		Role:        user.UserRole,
	})
}

// 🟢 POST /api/auth/logout — masukkan token ke blacklist
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token tidak ditemukan")
	}

	entry := model.TokenBlacklist{
		Token:     parts[1],
		ExpiredAt: time.Now().Add(accessTokenTTL),
	}
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		log.Printf("[ERROR] blacklist token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal logout")
	}

	return helper.JsonOK(c, "Logout berhasil", nil)
}

// 🔵 GET /api/auth/me — info user dari token
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	if userID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user model.User
	if err := ctrl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.JsonOK(c, "ok", user)
}
