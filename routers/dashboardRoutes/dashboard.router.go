package dashboardRoutes

import (
	dashboardControllers "fintrack/controllers/dashboard"
	"fintrack/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/dashboard", middleware.JWTMiddleware, dashboardControllers.GetDashboardData)
}
