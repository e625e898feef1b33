package authRoutes

import (
	authControllers "fintrack/controllers/auth"
	"fintrack/middleware"
	authValidators "fintrack/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidators.Register(), authControllers.Register)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Get("/getUser", middleware.JWTMiddleware, authControllers.GetUser)
	authGroup.Post("/google", authControllers.GoogleLogin)
	authGroup.Post("/github", authControllers.GithubLogin)
	authGroup.Post("/upload-image", middleware.JWTMiddleware, authControllers.UploadProfileImage)
}
