package incomeController

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

// AddIncome creates a new income record for the authenticated user
func AddIncome(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedIncome").(*struct {
		Icon   string  `json:"icon"`
		Source string  `json:"source"`
		Amount float64 `json:"amount"`
		Date   string  `json:"date"`
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

	income := models.Income{
		UserID: userId,
		Icon:   reqData.Icon,
		Source: reqData.Source,
		Amount: reqData.Amount,
		Date:   date,
	}

	if err := database.Database.Db.Create(&income).Error; err != nil {
		log.Printf("Error saving income: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add income!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Income added successfully.", income)
}

// IncomeList returns the user's income records, newest first
func IncomeList(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	incomes := []models.Income{}
	if err := database.Database.Db.
		Where("user_id = ?", userId).
		Order("date desc").
		Find(&incomes).Error; err != nil {
		log.Printf("Error fetching incomes: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch incomes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Income list.", incomes)
}

// DeleteIncome removes a record after verifying ownership. Deleting
// another user's record fails with an authorization error, not 404.
func DeleteIncome(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid income id!", nil)
	}

	var income models.Income
	if err := database.Database.Db.First(&income, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Income not found!", nil)
		}
		log.Printf("Error fetching income %d: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete income!", nil)
	}

	if income.UserID != userId {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Not authorized!", nil)
	}

	if err := database.Database.Db.Delete(&income).Error; err != nil {
		log.Printf("Error deleting income %d: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete income!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Income deleted successfully.", nil)
}

// DownloadIncomeCSV streams the user's incomes as a CSV attachment
func DownloadIncomeCSV(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var incomes []models.Income
	if err := database.Database.Db.
		Where("user_id = ?", userId).
		Order("date desc").
		Find(&incomes).Error; err != nil {
		log.Printf("Error fetching incomes for export: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to export incomes!", nil)
	}

	rows := make([]utils.CSVRow, 0, len(incomes))
	for _, income := range incomes {
		rows = append(rows, utils.CSVRow{
			Icon:   income.Icon,
			Label:  income.Source,
			Amount: income.Amount,
			Date:   income.Date,
		})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=incomes.csv`)
	return c.Status(fiber.StatusOK).SendString(utils.BuildTransactionCSV("Source", rows))
}
