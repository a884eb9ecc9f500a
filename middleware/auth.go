package middleware

import (
	"gate-app/config"
	"gate-app/models"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type AuthMiddlewareStruct struct {
	DB *gorm.DB
}

func NewAuthMiddleware(db *gorm.DB) *AuthMiddlewareStruct {
	return &AuthMiddlewareStruct{DB: db}
}

// Handler validates the bearer token and the active session, then stores the
// caller's identity in Locals for the handlers behind it.
func (a *AuthMiddlewareStruct) Handler() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Missing Authorization header",
			})
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid Authorization header format",
			})
		}

		token, err := jwt.Parse(tokenParts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: Invalid signing method")
			}
			return []byte(config.JWTSecret), nil
		})
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: Invalid token",
			})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !token.Valid {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: Invalid token",
			})
		}

		userID, ok := claims["user_id"].(float64)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: Invalid user ID",
			})
		}
		sessionID, ok := claims["session_id"].(string)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: Invalid session ID",
			})
		}
		role, _ := claims["role"].(string)

		var session models.UserSession
		err = a.DB.Where("session_id = ? AND is_active = ? AND expires_at > ?", sessionID, true, time.Now()).
			First(&session).Error
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: Session expired",
			})
		}
		session.LastActivityAt = time.Now()
		a.DB.Save(&session)

		ctx.Locals("userID", userID)
		ctx.Locals("sessionID", sessionID)
		ctx.Locals("role", role)

		return ctx.Next()
	}
}

// CheckRole gates a route group to the listed workflow roles. Admin always
// passes.
func (a *AuthMiddlewareStruct) CheckRole(roles ...string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role, _ := ctx.Locals("role").(string)
		if role == models.RoleAdmin {
			return ctx.Next()
		}
		for _, r := range roles {
			if role == r {
				return ctx.Next()
			}
		}
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Forbidden: You do not have permission",
		})
	}
}

// UserID reads the authenticated user id stored by Handler.
func UserID(ctx *fiber.Ctx) int {
	userID, _ := ctx.Locals("userID").(float64)
	return int(userID)
}
