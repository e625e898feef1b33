package incomeRoutes

import (
	incomeControllers "fintrack/controllers/income"
	"fintrack/middleware"
	incomeValidators "fintrack/validators/income"

	"github.com/gofiber/fiber/v2"
)

func SetupIncomeRoutes(app *fiber.App) {
	incomeGroup := app.Group("/income")

	incomeGroup.Get("/", middleware.JWTMiddleware, incomeControllers.IncomeList)
	incomeGroup.Post("/add", incomeValidators.AddIncome(), middleware.JWTMiddleware, incomeControllers.AddIncome)
	incomeGroup.Get("/downloadcsv", middleware.JWTMiddleware, incomeControllers.DownloadIncomeCSV)
	incomeGroup.Delete("/:id", middleware.JWTMiddleware, incomeControllers.DeleteIncome)
}
