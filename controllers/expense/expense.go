package expenseController

import (
	"fintrack/database"
	"fintrack/middleware"
	"fintrack/models"
	"fintrack/utils"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AddExpense creates a new expense record for the authenticated user
func AddExpense(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedExpense").(*struct {
		Icon     string  `json:"icon"`
		Category string  `json:"category"`
		Amount   float64 `json:"amount"`
		Date     string  `json:"date"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Date defaults to creation time when omitted
	date := time.Now()
	if reqData.Date != "" {
		parsed, err := utils.ParseTransactionDate(reqData.Date)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid date!", nil)
		}
		date = parsed
	}

	expense := models.Expense{
		UserID:   userId,
		Icon:     reqData.Icon,
		Category: reqData.Category,
		Amount:   reqData.Amount,
		Date:     date,
	}

	if err := database.Database.Db.Create(&expense).Error; err != nil {
		log.Printf("Error saving expense: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add expense!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Expense added successfully.", expense)
}

// ExpenseList returns the user's expense records, newest first
func ExpenseList(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	expenses := []models.Expense{}
	if err := database.Database.Db.
		Where("user_id = ?", userId).
		Order("date desc").
		Find(&expenses).Error; err != nil {
		log.Printf("Error fetching expenses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch expenses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Expense list.", expenses)
}

// DeleteExpense removes a record after verifying ownership. Deleting
// another user's record fails with an authorization error, not 404.
func DeleteExpense(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid expense id!", nil)
	}

	var expense models.Expense
	if err := database.Database.Db.First(&expense, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Expense not found!", nil)
		}
		log.Printf("Error fetching expense %d: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete expense!", nil)
	}

	if expense.UserID != userId {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Not authorized!", nil)
	}

	if err := database.Database.Db.Delete(&expense).Error; err != nil {
		log.Printf("Error deleting expense %d: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete expense!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Expense deleted successfully.", nil)
}

// DownloadExpenseCSV streams the user's expenses as a CSV attachment
func DownloadExpenseCSV(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var expenses []models.Expense
	if err := database.Database.Db.
		Where("user_id = ?", userId).
		Order("date desc").
		Find(&expenses).Error; err != nil {
		log.Printf("Error fetching expenses for export: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to export expenses!", nil)
	}

	rows := make([]utils.CSVRow, 0, len(expenses))
	for _, expense := range expenses {
		rows = append(rows, utils.CSVRow{
			Icon:   expense.Icon,
			Label:  expense.Category,
			Amount: expense.Amount,
			Date:   expense.Date,
		})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=expenses.csv`)
	return c.Status(fiber.StatusOK).SendString(utils.BuildTransactionCSV("Category", rows))
}
