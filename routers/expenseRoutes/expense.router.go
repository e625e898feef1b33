package expenseRoutes

import (
	expenseControllers "fintrack/controllers/expense"
	"fintrack/middleware"
	expenseValidators "fintrack/validators/expense"

	"github.com/gofiber/fiber/v2"
)

func SetupExpenseRoutes(app *fiber.App) {
	expenseGroup := app.Group("/expense")

	expenseGroup.Get("/", middleware.JWTMiddleware, expenseControllers.ExpenseList)
	expenseGroup.Post("/add", expenseValidators.AddExpense(), middleware.JWTMiddleware, expenseControllers.AddExpense)
	expenseGroup.Get("/downloadcsv", middleware.JWTMiddleware, expenseControllers.DownloadExpenseCSV)
	expenseGroup.Delete("/:id", middleware.JWTMiddleware, expenseControllers.DeleteExpense)
}
