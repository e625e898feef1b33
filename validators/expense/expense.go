package expenseValidator

import (
	"fintrack/middleware"
	"fintrack/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AddExpense validates a new expense request
func AddExpense() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Icon     string  `json:"icon"`
			Category string  `json:"category"`
			Amount   float64 `json:"amount"`
			Date     string  `json:"date"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Icon) == "" {
			errors["icon"] = "Icon is required!"
		}
		if strings.TrimSpace(reqData.Category) == "" {
			errors["category"] = "Category is required!"
		}
		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than 0!"
		}
		if reqData.Date != "" {
			if _, err := utils.ParseTransactionDate(reqData.Date); err != nil {
				errors["date"] = "Date must be RFC 3339 or YYYY-MM-DD!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedExpense", reqData)
		return c.Next()
	}
}
